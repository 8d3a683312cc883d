package dmg

import (
	"context"

	"github.com/banksean/dmg/hdiutil/options"
)

// Detach detaches an attached disk image without a handle. The target may
// be either a device node path or a mount point; it is forwarded to hdiutil
// untouched. Useful when the attachment identity was tracked elsewhere,
// e.g. across process restarts.
//
// Forcing ignores open files on the mounted volume and risks data loss for
// unflushed writes.
func Detach(ctx context.Context, target string, force bool) error {
	return NewHdiutilOps().Detach(ctx, &options.DetachOptions{Force: force}, target)
}
