package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/banksean/dmg/hdiutil"
)

type InfoCmd struct{}

func (c *InfoCmd) Run(cctx *Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out, err := hdiutil.Disk.Info(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "InfoCmd Info", "error", err)
		return err
	}
	fmt.Print(string(out))
	return nil
}
