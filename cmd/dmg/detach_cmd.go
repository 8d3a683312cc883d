package main

import (
	"context"
	"log/slog"

	"github.com/banksean/dmg"
)

type DetachCmd struct {
	Target string `arg:"" help:"device node (/dev/diskN) or mount point (/Volumes/Name) to detach"`
	Force  bool   `help:"ignore open files on the volume; risks data loss for unflushed writes"`
}

func (c *DetachCmd) Run(cctx *Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := dmg.Detach(ctx, c.Target, c.Force); err != nil {
		slog.ErrorContext(ctx, "DetachCmd Detach", "target", c.Target, "force", c.Force, "error", err)
		return err
	}
	return nil
}
