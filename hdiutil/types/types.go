// Package types defines structs for unmarshaling the plist output from
// `hdiutil attach`.
package types

import (
	"errors"
	"fmt"

	"howett.net/plist"
)

// ErrMalformedPlist indicates the attach output was not a decodable plist of
// the expected shape. This is a compatibility mismatch with the installed
// hdiutil, not a transient fault.
var ErrMalformedPlist = errors.New("malformed hdiutil plist output")

// MissingFieldError indicates a decodable plist that lacks a required field
// in every system entity.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("hdiutil attach output missing field %q", e.Field)
}

// SystemEntity is one entry of the attach output's system-entities array.
// Raw partitions carry no mount point.
type SystemEntity struct {
	DevEntry             string `json:"dev-entry"`
	MountPoint           string `json:"mount-point,omitempty"`
	ContentHint          string `json:"content-hint,omitempty"`
	UnmappedContentHint  string `json:"unmapped-content-hint,omitempty"`
	PotentiallyMountable bool   `json:"potentially-mountable"`
	VolumeKind           string `json:"volume-kind,omitempty"`
}

// AttachInfo is the parsed result of a successful attach.
type AttachInfo struct {
	// Device node path, e.g. /dev/disk4.
	Device string `json:"device"`

	// Path at which the attached volume is mounted. Empty for headless
	// attachments where no entity exposes a filesystem.
	MountPoint string `json:"mount-point,omitempty"`

	// Every entity reported by hdiutil, mount point or not.
	Entities []SystemEntity `json:"system-entities"`
}

// ParseAttachOutput decodes the `-plist` output of `hdiutil attach`.
//
// The payload is decoded into a loose tree first and projected into
// AttachInfo with explicit presence checks, since the exact set of keys per
// entity varies across hdiutil versions and image layouts.
func ParseAttachOutput(raw []byte) (*AttachInfo, error) {
	var tree map[string]any
	if _, err := plist.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPlist, err)
	}

	rawEntities, ok := tree["system-entities"].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: no system-entities array", ErrMalformedPlist)
	}

	info := &AttachInfo{}
	for _, re := range rawEntities {
		props, ok := re.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: system entity is not a dict", ErrMalformedPlist)
		}
		entity := SystemEntity{
			DevEntry:            stringProp(props, "dev-entry"),
			MountPoint:          stringProp(props, "mount-point"),
			ContentHint:         stringProp(props, "content-hint"),
			UnmappedContentHint: stringProp(props, "unmapped-content-hint"),
			VolumeKind:          stringProp(props, "volume-kind"),
		}
		if b, ok := props["potentially-mountable"].(bool); ok {
			entity.PotentiallyMountable = b
		}
		info.Entities = append(info.Entities, entity)

		// First mounted entity wins; headless entities only contribute a
		// device node when nothing mounted at all.
		if info.MountPoint == "" && entity.MountPoint != "" && entity.DevEntry != "" {
			info.Device = entity.DevEntry
			info.MountPoint = entity.MountPoint
		}
		if info.Device == "" && entity.DevEntry != "" {
			info.Device = entity.DevEntry
		}
	}

	if info.Device == "" {
		return nil, &MissingFieldError{Field: "dev-entry"}
	}
	return info, nil
}

func stringProp(props map[string]any, key string) string {
	s, _ := props[key].(string)
	return s
}
