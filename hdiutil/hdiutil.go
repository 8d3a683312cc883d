// Package hdiutil invokes the macOS `hdiutil` command and maps its failures
// to typed errors. It captures stdout and stderr separately so callers get
// the tool's diagnostics verbatim when it exits nonzero.
//
// Every call blocks until the child process exits. Note that hdiutil itself
// does not tolerate concurrent attach/detach of the same image file; callers
// that attach concurrently must serialize access per image themselves.
package hdiutil

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/banksean/dmg/hdiutil/options"
)

const diskCommand = "hdiutil"

// Run executes an hdiutil subcommand and returns its stdout. A nonzero exit
// yields a *ToolError carrying the exit code and stderr; a process that
// could not be started yields a *SpawnError.
func Run(ctx context.Context, subcommand string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, diskCommand, append([]string{subcommand}, args...)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.InfoContext(ctx, "hdiutil.Run", "cmd", strings.Join(cmd.Args, " "))
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			slog.ErrorContext(ctx, "hdiutil.Run tool failed", "subcommand", subcommand, "exit", exitErr.ExitCode(), "stderr", stderr.String())
			return nil, &ToolError{
				Subcommand: subcommand,
				ExitCode:   exitErr.ExitCode(),
				Stderr:     stderr.String(),
			}
		}
		slog.ErrorContext(ctx, "hdiutil.Run spawn failed", "subcommand", subcommand, "error", err)
		return nil, &SpawnError{Cause: err}
	}
	slog.InfoContext(ctx, "hdiutil.Run done", "subcommand", subcommand, "exit", 0)
	return stdout.Bytes(), nil
}

type DiskSvc struct{}

// Disk is a service interface to interact with macOS disk images via hdiutil.
var Disk DiskSvc

// Attach attaches a disk image and returns hdiutil's raw plist output.
// Decode it with types.ParseAttachOutput.
func (d *DiskSvc) Attach(ctx context.Context, opts *options.AttachOptions, image string) ([]byte, error) {
	return Run(ctx, "attach", attachArgs(opts, image)...)
}

// Detach detaches the given device node or mount point. No structured
// output is produced, so none is returned.
func (d *DiskSvc) Detach(ctx context.Context, opts *options.DetachOptions, target string) error {
	_, err := Run(ctx, "detach", detachArgs(opts, target)...)
	return err
}

// Create creates a new disk image at the given path. hdiutil writes the
// image file directly; success is signaled only by the exit status.
func (d *DiskSvc) Create(ctx context.Context, opts *options.CreateOptions, image string) error {
	_, err := Run(ctx, "create", createArgs(opts, image)...)
	return err
}

// Info returns hdiutil's plist report of all attached images.
func (d *DiskSvc) Info(ctx context.Context) ([]byte, error) {
	return Run(ctx, "info", "-plist")
}

func attachArgs(opts *options.AttachOptions, image string) []string {
	var args []string
	if opts != nil {
		args = options.ToArgs(*opts)
	}
	// -plist requests machine-readable output; the human-readable table is
	// unstable across hdiutil versions.
	return append(args, "-plist", image)
}

func detachArgs(opts *options.DetachOptions, target string) []string {
	var args []string
	if opts != nil {
		args = options.ToArgs(*opts)
	}
	return append(args, target)
}

func createArgs(opts *options.CreateOptions, image string) []string {
	var args []string
	if opts != nil {
		args = options.ToArgs(*opts)
	}
	return append(args, image)
}
