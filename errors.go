package dmg

import "errors"

var (
	// ErrAlreadyDetached is returned when Detach or ForceDetach is called on
	// a handle whose image was already detached. No second OS detach is ever
	// attempted for one handle.
	ErrAlreadyDetached = errors.New("disk image already detached")

	// ErrBuilderConsumed is returned when an attach builder is used after it
	// already started an attach.
	ErrBuilderConsumed = errors.New("attach builder already consumed")

	// ErrSourceNotFound is returned by FromFolder.Create when the source
	// folder does not exist. hdiutil is not invoked in that case.
	ErrSourceNotFound = errors.New("source folder not found")
)
