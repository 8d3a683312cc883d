// Package options defines structs describing the flags accepted by the
// various `hdiutil` subcommands, plus a reflection helper to turn them into
// CLI args.
package options

import (
	"fmt"
	"reflect"
	"strings"
)

// AttachOptions are the flags for `hdiutil attach`.
type AttachOptions struct {
	ReadOnly    bool   `flag:"-readonly"`    // Force the device to be read-only
	NoVerify    bool   `flag:"-noverify"`    // Skip image checksum verification
	NoBrowse    bool   `flag:"-nobrowse"`    // Render the volume invisible in applications like Finder
	MountPoint  string `flag:"-mountpoint"`  // Assuming only one volume, mount it at the given path instead of under /Volumes
	MountRoot   string `flag:"-mountroot"`   // Mount volumes on subdirectories of the given path instead of under /Volumes
	MountRandom string `flag:"-mountrandom"` // Mount under the given path with a unique random directory name
}

// DetachOptions are the flags for `hdiutil detach`.
type DetachOptions struct {
	Force bool `flag:"-force"` // Ignore open files on mounted volumes; risks data loss for unflushed writes
}

// CreateOptions are the flags for `hdiutil create` when imaging a source
// folder.
type CreateOptions struct {
	SrcFolder string `flag:"-srcfolder"` // Folder whose contents populate the new image
	VolName   string `flag:"-volname"`   // Volume name; hdiutil defaults to the source folder's name
	Format    string `flag:"-format"`    // Image format code, e.g. UDZO or UDRW
	Overwrite bool   `flag:"-ov"`        // Clobber an existing file at the destination

	// hdiutil treats these as -flag/-noflag pairs, so they are always
	// emitted, in whichever polarity the field holds.
	Spotlight      bool `flag:"-spotlight,binary"`      // Create a Spotlight index
	AnyOwners      bool `flag:"-anyowners,binary"`      // Don't fail if correct file ownership can't be ensured
	SkipUnreadable bool `flag:"-skipunreadable,binary"` // Skip files the copying user can't read
	Atomic         bool `flag:"-atomic,binary"`         // Copy to a temporary location, then rename into place
}

// ToArgs creates an array of strings that you can pass to exec.Command(...)
// as CLI args.
func ToArgs(s any) []string {
	var ret []string
	st := reflect.TypeOf(s)
	sv := reflect.ValueOf(s)
	for i := 0; i < st.NumField(); i++ {
		field := st.Field(i)
		flagTag, ok := field.Tag.Lookup("flag")
		if !ok {
			continue
		}
		flagParts := strings.Split(flagTag, ",")
		flagName := flagParts[0]
		binary := len(flagParts) > 1 && strings.EqualFold(flagParts[1], "binary")

		fv := sv.Field(i)
		if binary {
			// -flag / -noflag pair, emitted regardless of value.
			if fv.Bool() {
				ret = append(ret, flagName)
			} else {
				ret = append(ret, "-no"+strings.TrimPrefix(flagName, "-"))
			}
			continue
		}
		if fv.IsZero() {
			continue
		}
		ret = append(ret, flagName)
		if field.Type.Kind() != reflect.Bool {
			ret = append(ret, fmt.Sprintf("%v", fv.Interface()))
		}
	}
	return ret
}
