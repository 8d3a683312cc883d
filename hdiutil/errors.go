package hdiutil

import "fmt"

// SpawnError indicates the hdiutil binary could not be started at all
// (missing binary, permission denied).
type SpawnError struct {
	Cause error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("could not start %s: %v", diskCommand, e.Cause)
}

func (e *SpawnError) Unwrap() error {
	return e.Cause
}

// ToolError indicates hdiutil ran but exited nonzero. Stderr holds the
// tool's diagnostic text verbatim.
type ToolError struct {
	Subcommand string
	ExitCode   int
	Stderr     string
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s %s failed with exit code %d: %s", diskCommand, e.Subcommand, e.ExitCode, e.Stderr)
}
