package dmg

import (
	"context"

	"github.com/banksean/dmg/hdiutil"
	"github.com/banksean/dmg/hdiutil/options"
)

// DiskOps is the seam between the lifecycle types and the hdiutil binary.
// Tests substitute a mock; everything else uses NewHdiutilOps.
type DiskOps interface {
	Attach(ctx context.Context, opts *options.AttachOptions, image string) ([]byte, error)
	Detach(ctx context.Context, opts *options.DetachOptions, target string) error
	Create(ctx context.Context, opts *options.CreateOptions, image string) error
}

type hdiutilOps struct{}

// NewHdiutilOps returns the DiskOps implementation backed by the real
// hdiutil command.
func NewHdiutilOps() DiskOps {
	return &hdiutilOps{}
}

func (h *hdiutilOps) Attach(ctx context.Context, opts *options.AttachOptions, image string) ([]byte, error) {
	return hdiutil.Disk.Attach(ctx, opts, image)
}

func (h *hdiutilOps) Detach(ctx context.Context, opts *options.DetachOptions, target string) error {
	return hdiutil.Disk.Detach(ctx, opts, target)
}

func (h *hdiutilOps) Create(ctx context.Context, opts *options.CreateOptions, image string) error {
	return hdiutil.Disk.Create(ctx, opts, image)
}
