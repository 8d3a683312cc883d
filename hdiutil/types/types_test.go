package types

import (
	"errors"
	"testing"
)

const multiEntityPlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>system-entities</key>
	<array>
		<dict>
			<key>content-hint</key>
			<string>GUID_partition_scheme</string>
			<key>dev-entry</key>
			<string>/dev/disk4</string>
			<key>potentially-mountable</key>
			<false/>
			<key>unmapped-content-hint</key>
			<string>GUID_partition_scheme</string>
		</dict>
		<dict>
			<key>content-hint</key>
			<string>Apple_HFS</string>
			<key>dev-entry</key>
			<string>/dev/disk4s1</string>
			<key>mount-point</key>
			<string>/Volumes/Test</string>
			<key>potentially-mountable</key>
			<true/>
			<key>unmapped-content-hint</key>
			<string>48465300-0000-11AA-AA11-00306543ECAC</string>
			<key>volume-kind</key>
			<string>hfs</string>
		</dict>
	</array>
</dict>
</plist>`

const headlessPlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>system-entities</key>
	<array>
		<dict>
			<key>dev-entry</key>
			<string>/dev/disk5</string>
			<key>potentially-mountable</key>
			<false/>
		</dict>
	</array>
</dict>
</plist>`

const noDevEntryPlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>system-entities</key>
	<array>
		<dict>
			<key>content-hint</key>
			<string>Apple_HFS</string>
		</dict>
	</array>
</dict>
</plist>`

const noEntitiesKeyPlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>image-path</key>
	<string>Test.dmg</string>
</dict>
</plist>`

func TestParseAttachOutput(t *testing.T) {
	tests := map[string]struct {
		raw            string
		wantDevice     string
		wantMountPoint string
		wantEntities   int
	}{
		"multiple entities picks the mounted one": {
			raw:            multiEntityPlist,
			wantDevice:     "/dev/disk4s1",
			wantMountPoint: "/Volumes/Test",
			wantEntities:   2,
		},
		"headless attach has no mount point": {
			raw:            headlessPlist,
			wantDevice:     "/dev/disk5",
			wantMountPoint: "",
			wantEntities:   1,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			info, err := ParseAttachOutput([]byte(tc.raw))
			if err != nil {
				t.Fatalf("ParseAttachOutput: %v", err)
			}
			if info.Device != tc.wantDevice {
				t.Errorf("Device = %q, want %q", info.Device, tc.wantDevice)
			}
			if info.MountPoint != tc.wantMountPoint {
				t.Errorf("MountPoint = %q, want %q", info.MountPoint, tc.wantMountPoint)
			}
			if len(info.Entities) != tc.wantEntities {
				t.Errorf("len(Entities) = %d, want %d", len(info.Entities), tc.wantEntities)
			}
		})
	}
}

func TestParseAttachOutputEntities(t *testing.T) {
	info, err := ParseAttachOutput([]byte(multiEntityPlist))
	if err != nil {
		t.Fatalf("ParseAttachOutput: %v", err)
	}
	scheme := info.Entities[0]
	if scheme.DevEntry != "/dev/disk4" {
		t.Errorf("Entities[0].DevEntry = %q, want /dev/disk4", scheme.DevEntry)
	}
	if scheme.MountPoint != "" {
		t.Errorf("Entities[0].MountPoint = %q, want empty", scheme.MountPoint)
	}
	if scheme.ContentHint != "GUID_partition_scheme" {
		t.Errorf("Entities[0].ContentHint = %q", scheme.ContentHint)
	}
	vol := info.Entities[1]
	if !vol.PotentiallyMountable {
		t.Error("Entities[1].PotentiallyMountable = false, want true")
	}
	if vol.VolumeKind != "hfs" {
		t.Errorf("Entities[1].VolumeKind = %q, want hfs", vol.VolumeKind)
	}
}

func TestParseAttachOutputMalformed(t *testing.T) {
	tests := map[string]string{
		"not a plist at all":   "this is not a plist",
		"empty input":          "",
		"missing entities key": noEntitiesKeyPlist,
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseAttachOutput([]byte(raw))
			if !errors.Is(err, ErrMalformedPlist) {
				t.Errorf("ParseAttachOutput = %v, want ErrMalformedPlist", err)
			}
		})
	}
}

func TestParseAttachOutputMissingDevEntry(t *testing.T) {
	_, err := ParseAttachOutput([]byte(noDevEntryPlist))
	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("ParseAttachOutput = %v, want *MissingFieldError", err)
	}
	if missing.Field != "dev-entry" {
		t.Errorf("Field = %q, want dev-entry", missing.Field)
	}
}
