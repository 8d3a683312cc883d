package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
)

type diagnosticCheck struct {
	Name string
	Run  func(context.Context) error
}

var diagnosticChecks = []diagnosticCheck{
	{
		Name: "Running on MacOS",
		Run: func(ctx context.Context) error {
			if runtime.GOOS != "darwin" {
				return fmt.Errorf("hdiutil only exists on macOS, but detected OS: %s", runtime.GOOS)
			}
			return nil
		},
	},
	{
		Name: "Have hdiutil on PATH",
		Run: func(ctx context.Context) error {
			path, err := exec.LookPath("hdiutil")
			if err != nil {
				return fmt.Errorf("could not locate hdiutil, which ships with macOS: %w", err)
			}
			slog.InfoContext(ctx, "verifyPrerequisites", "hdiutil", path)
			return nil
		},
	},
}

func verifyPrerequisites(ctx context.Context) error {
	for _, check := range diagnosticChecks {
		if err := check.Run(ctx); err != nil {
			slog.ErrorContext(ctx, "diagnosticCheck failed", "name", check.Name, "error", err)
			return err
		}
		slog.InfoContext(ctx, "diagnosticCheck passed", "name", check.Name)
	}
	return nil
}
