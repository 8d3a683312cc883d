// Package dmg manages the attach/detach/create lifecycle of macOS disk
// images by wrapping the `hdiutil` command.
//
// Attach a disk image until the guard is closed:
//
//	w, err := dmg.NewAttach("Test.dmg").With(ctx)
//	if err != nil {
//		return err
//	}
//	defer w.Close()
//	fmt.Println("mounted at", w.Info().MountPoint)
//
// If you prefer to handle detaching yourself, use Attach:
//
//	h, err := dmg.NewAttach("Test.dmg").Attach(ctx)
//	if err != nil {
//		return err
//	}
//	fmt.Println("device node", h.Info().Device)
//	if err := h.Detach(ctx); err != nil { // there is also h.ForceDetach
//		return err
//	}
//
// If you already know the device node or mount point, you can detach it
// without holding a handle:
//
//	err := dmg.Detach(ctx, "/Volumes/Test", false) // do not force detach
//
// All operations block until hdiutil exits; there is no internal queueing or
// timeout. hdiutil does not tolerate concurrent attach/detach of the same
// image file, so callers that may race on one image must serialize those
// calls themselves.
package dmg
