package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/banksean/dmg"
)

type CreateCmd struct {
	Image          string `arg:"" help:"destination path for the new disk image"`
	SrcFolder      string `required:"" placeholder:"<dir>" help:"folder whose contents populate the image"`
	VolName        string `placeholder:"<name>" help:"volume name (defaults to the source folder's name)"`
	Format         string `default:"UDZO" help:"image format code (UDZO, UDRW, UDRO, ...)"`
	Overwrite      bool   `help:"clobber an existing file at the destination"`
	SkipUnreadable bool   `help:"skip files the copying user can't read"`
}

func (c *CreateCmd) Run(cctx *Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f := dmg.NewFromFolder(c.SrcFolder).Format(dmg.FolderImageFormat(c.Format))
	if c.VolName != "" {
		f = f.VolumeName(c.VolName)
	}
	if c.Overwrite {
		f = f.Overwrite()
	}
	if c.SkipUnreadable {
		f = f.SkipUnreadable()
	}

	path, err := f.Create(ctx, c.Image)
	if err != nil {
		slog.ErrorContext(ctx, "CreateCmd Create", "srcFolder", c.SrcFolder, "image", c.Image, "error", err)
		return err
	}
	fmt.Println(path)
	return nil
}
