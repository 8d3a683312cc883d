package dmg

import (
	"context"
	"log/slog"
	"os"

	"github.com/banksean/dmg/hdiutil/options"
	"github.com/banksean/dmg/hdiutil/types"
)

type attachState int

const (
	stateUnattached attachState = iota
	stateAttaching
	stateAttached
	stateDetached
)

// Attach is a builder for attaching a disk image. The zero defaults are
// read-only with checksum verification on; builder methods loosen those.
// A builder is consumed by its first Attach or With call. Builder methods
// are no-ops once an attach has begun.
type Attach struct {
	image  string
	opts   options.AttachOptions
	state  attachState
	logger *slog.Logger
	ops    DiskOps
}

// NewAttach creates a new attach builder for the given disk image path. The
// path is handed to hdiutil untouched.
func NewAttach(image string) *Attach {
	return &Attach{
		image:  image,
		opts:   options.AttachOptions{ReadOnly: true},
		logger: slog.Default(),
		ops:    NewHdiutilOps(),
	}
}

// ReadWrite attaches the image writable instead of the read-only default.
func (a *Attach) ReadWrite() *Attach {
	if a.state == stateUnattached {
		a.opts.ReadOnly = false
	}
	return a
}

// SkipVerify skips image checksum verification on attach.
func (a *Attach) SkipVerify() *Attach {
	if a.state == stateUnattached {
		a.opts.NoVerify = true
	}
	return a
}

// Hidden renders the volume invisible in applications like Finder.
func (a *Attach) Hidden() *Attach {
	if a.state == stateUnattached {
		a.opts.NoBrowse = true
	}
	return a
}

// MountPoint mounts the volume at path instead of under /Volumes. Assumes
// the image exposes a single volume.
func (a *Attach) MountPoint(path string) *Attach {
	if a.state == stateUnattached {
		a.opts.MountPoint = path
	}
	return a
}

// MountRoot mounts volumes on subdirectories of path instead of under
// /Volumes.
func (a *Attach) MountRoot(path string) *Attach {
	if a.state == stateUnattached {
		a.opts.MountRoot = path
	}
	return a
}

// MountRandom mounts under path with a unique random mount point directory
// name.
func (a *Attach) MountRandom(path string) *Attach {
	if a.state == stateUnattached {
		a.opts.MountRandom = path
	}
	return a
}

// MountTemp mounts in a random folder inside the OS temporary directory.
// Equivalent to MountRandom(os.TempDir()).
func (a *Attach) MountTemp() *Attach {
	return a.MountRandom(os.TempDir())
}

// Logger sets the logger used to report detach failures that With's cleanup
// swallows. Defaults to slog.Default().
func (a *Attach) Logger(logger *slog.Logger) *Attach {
	if a.state == stateUnattached && logger != nil {
		a.logger = logger
	}
	return a
}

// Ops substitutes the hdiutil backend, mainly for tests.
func (a *Attach) Ops(ops DiskOps) *Attach {
	if a.state == stateUnattached && ops != nil {
		a.ops = ops
	}
	return a
}

func (a *Attach) attachInfo(ctx context.Context) (*types.AttachInfo, error) {
	if a.state != stateUnattached {
		return nil, ErrBuilderConsumed
	}
	a.state = stateAttaching
	raw, err := a.ops.Attach(ctx, &a.opts, a.image)
	if err != nil {
		return nil, err
	}
	info, err := types.ParseAttachOutput(raw)
	if err != nil {
		return nil, err
	}
	a.state = stateAttached
	return info, nil
}

// Attach attaches the disk image and returns a handle the caller must
// detach.
func (a *Attach) Attach(ctx context.Context) (*Handle, error) {
	info, err := a.attachInfo(ctx)
	if err != nil {
		return nil, err
	}
	return &Handle{info: info, ops: a.ops, logger: a.logger}, nil
}

// With attaches the disk image and wraps the handle in a close-guard that
// detaches it on Close. Use with defer to release the attachment on every
// exit path.
func (a *Attach) With(ctx context.Context) (*With, error) {
	h, err := a.Attach(ctx)
	if err != nil {
		return nil, err
	}
	return &With{handle: h}, nil
}

// Handle represents a live attachment. It owns its AttachInfo exclusively.
type Handle struct {
	info     *types.AttachInfo
	ops      DiskOps
	logger   *slog.Logger
	detached bool
}

// Info returns the parsed attach result for this handle.
func (h *Handle) Info() *types.AttachInfo {
	return h.info
}

// Detach detaches the image. Calling it on an already-detached handle
// returns ErrAlreadyDetached without invoking hdiutil.
func (h *Handle) Detach(ctx context.Context) error {
	return h.detach(ctx, false)
}

// ForceDetach detaches the image ignoring open files. This risks data loss
// for unflushed writes; reach for it only after a plain Detach reported the
// device busy.
func (h *Handle) ForceDetach(ctx context.Context) error {
	return h.detach(ctx, true)
}

func (h *Handle) detach(ctx context.Context, force bool) error {
	if h.detached {
		return ErrAlreadyDetached
	}
	if err := h.ops.Detach(ctx, &options.DetachOptions{Force: force}, h.info.Device); err != nil {
		return err
	}
	h.detached = true
	return nil
}

// With is an attached disk image handle that detaches on Close.
type With struct {
	handle *Handle
}

// Info returns the parsed attach result for this handle.
func (w *With) Info() *types.AttachInfo {
	return w.handle.info
}

// Close performs a best-effort plain detach if the image is still attached.
// Failures cannot propagate out of cleanup; they are reported through the
// logger set on the builder. Close is safe to call more than once.
func (w *With) Close() {
	if w.handle.detached {
		return
	}
	// Cleanup has to run even when the caller's context is already done.
	if err := w.handle.Detach(context.Background()); err != nil {
		w.handle.logger.Error("detach during cleanup failed", "device", w.handle.info.Device, "error", err)
	}
}
