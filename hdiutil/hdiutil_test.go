package hdiutil

import (
	"reflect"
	"testing"

	"github.com/banksean/dmg/hdiutil/options"
)

func TestAttachArgs(t *testing.T) {
	tests := map[string]struct {
		opts     *options.AttachOptions
		image    string
		expected []string
	}{
		"nil options": {
			opts:     nil,
			image:    "Test.dmg",
			expected: []string{"-plist", "Test.dmg"},
		},
		"defaults from the attach builder": {
			opts: &options.AttachOptions{
				ReadOnly: true,
			},
			image:    "Test.dmg",
			expected: []string{"-readonly", "-plist", "Test.dmg"},
		},
		"mountpoint with spaces passed through untouched": {
			opts: &options.AttachOptions{
				MountPoint: "/tmp/my mnt",
			},
			image:    "../images/Test Image.dmg",
			expected: []string{"-mountpoint", "/tmp/my mnt", "-plist", "../images/Test Image.dmg"},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := attachArgs(tc.opts, tc.image)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("attachArgs = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestDetachArgs(t *testing.T) {
	got := detachArgs(&options.DetachOptions{Force: true}, "/dev/disk4")
	want := []string{"-force", "/dev/disk4"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("detachArgs = %v, want %v", got, want)
	}

	got = detachArgs(nil, "/Volumes/Test")
	want = []string{"/Volumes/Test"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("detachArgs = %v, want %v", got, want)
	}
}

func TestCreateArgs(t *testing.T) {
	got := createArgs(&options.CreateOptions{
		SrcFolder: "fixture_dir",
		VolName:   "My Volume",
		Format:    "UDZO",
		Atomic:    true,
	}, "Out.dmg")
	want := []string{
		"-srcfolder", "fixture_dir",
		"-volname", "My Volume",
		"-format", "UDZO",
		"-nospotlight",
		"-noanyowners",
		"-noskipunreadable",
		"-atomic",
		"Out.dmg",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("createArgs = %v, want %v", got, want)
	}
}

func TestToolErrorMessage(t *testing.T) {
	err := &ToolError{Subcommand: "detach", ExitCode: 1, Stderr: "hdiutil: detach failed - No such file or directory\n"}
	want := "hdiutil detach failed with exit code 1: hdiutil: detach failed - No such file or directory\n"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
