package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/banksean/dmg"
)

type AttachCmd struct {
	Image       string `arg:"" help:"path to the disk image to attach"`
	ReadWrite   bool   `help:"attach read-write instead of the read-only default"`
	SkipVerify  bool   `help:"skip image checksum verification"`
	Hidden      bool   `help:"render the volume invisible in applications like Finder"`
	MountPoint  string `placeholder:"<path>" help:"mount the volume at this path instead of under /Volumes"`
	MountRoot   string `placeholder:"<dir>" help:"mount volumes on subdirectories of this path"`
	MountRandom string `placeholder:"<dir>" help:"mount under this path with a random unique directory name"`
	JSON        bool   `help:"print the full parsed attach info as JSON"`
}

func (c *AttachCmd) Run(cctx *Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := dmg.NewAttach(c.Image)
	if c.ReadWrite {
		a = a.ReadWrite()
	}
	if c.SkipVerify {
		a = a.SkipVerify()
	}
	if c.Hidden {
		a = a.Hidden()
	}
	if c.MountPoint != "" {
		a = a.MountPoint(c.MountPoint)
	}
	if c.MountRoot != "" {
		a = a.MountRoot(c.MountRoot)
	}
	if c.MountRandom != "" {
		a = a.MountRandom(c.MountRandom)
	}

	h, err := a.Attach(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "AttachCmd Attach", "image", c.Image, "error", err)
		return err
	}

	info := h.Info()
	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DEVICE\tMOUNT POINT\t")
	fmt.Fprintf(w, "%s\t%s\t\n", info.Device, info.MountPoint)
	return w.Flush()
}
