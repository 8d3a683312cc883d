package dmg

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/banksean/dmg/hdiutil/options"
)

// FolderImageFormat is an image format code accepted by `hdiutil create
// -format`.
type FolderImageFormat string

const (
	UDRO         FolderImageFormat = "UDRO"         // read-only
	UDCO         FolderImageFormat = "UDCO"         // compressed (ADC)
	UDZO         FolderImageFormat = "UDZO"         // compressed
	UDBZ         FolderImageFormat = "UDBZ"         // compressed (bzip2); deprecated in `hdiutil create -help`
	ULFO         FolderImageFormat = "ULFO"         // compressed (lzfse)
	ULMO         FolderImageFormat = "ULMO"         // compressed (lzma)
	UFBI         FolderImageFormat = "UFBI"         // entire device
	IPOD         FolderImageFormat = "IPOD"         // iPod image
	UDSB         FolderImageFormat = "UDSB"         // sparsebundle
	UDSP         FolderImageFormat = "UDSP"         // sparse
	UDRW         FolderImageFormat = "UDRW"         // read/write
	UDTO         FolderImageFormat = "UDTO"         // DVD/CD master
	UNIV         FolderImageFormat = "UNIV"         // hybrid image (HFS+/ISO/UDF)
	SPARSEBUNDLE FolderImageFormat = "SPARSEBUNDLE" // sparse bundle disk image
	SPARSE       FolderImageFormat = "SPARSE"       // sparse disk image
	UDIF         FolderImageFormat = "UDIF"         // read/write disk image
)

// FromFolder is a builder for creating a disk image from a source folder.
// Defaults follow `hdiutil create -help`: UDZO format, atomic copy, no
// Spotlight index.
type FromFolder struct {
	srcFolder string
	opts      options.CreateOptions
	ops       DiskOps
}

// NewFromFolder creates a builder that images the given source folder.
func NewFromFolder(srcFolder string) *FromFolder {
	return &FromFolder{
		srcFolder: srcFolder,
		opts: options.CreateOptions{
			Format: string(UDZO),
			Atomic: true,
		},
		ops: NewHdiutilOps(),
	}
}

// VolumeName sets the volume name of the disk image. hdiutil defaults to
// the source folder's name.
func (f *FromFolder) VolumeName(name string) *FromFolder {
	f.opts.VolName = name
	return f
}

// Overwrite clobbers an existing file at the destination path.
func (f *FromFolder) Overwrite() *FromFolder {
	f.opts.Overwrite = true
	return f
}

// Format selects the image format instead of the UDZO default.
func (f *FromFolder) Format(format FolderImageFormat) *FromFolder {
	f.opts.Format = string(format)
	return f
}

// Spotlight creates a Spotlight index on the image.
func (f *FromFolder) Spotlight() *FromFolder {
	f.opts.Spotlight = true
	return f
}

// AnyOwners does not fail when the invoking user can't ensure correct file
// ownership for the files in the image.
func (f *FromFolder) AnyOwners() *FromFolder {
	f.opts.AnyOwners = true
	return f
}

// SkipUnreadable skips files that can't be read by the copying user instead
// of failing.
func (f *FromFolder) SkipUnreadable() *FromFolder {
	f.opts.SkipUnreadable = true
	return f
}

// NonAtomic skips the copy-to-temporary-then-rename step. May be slightly
// faster.
func (f *FromFolder) NonAtomic() *FromFolder {
	f.opts.Atomic = false
	return f
}

// Ops substitutes the hdiutil backend, mainly for tests.
func (f *FromFolder) Ops(ops DiskOps) *FromFolder {
	if ops != nil {
		f.ops = ops
	}
	return f
}

// Create writes a new disk image at imagePath and returns that same path.
// The source folder is checked first so a missing source yields
// ErrSourceNotFound instead of hdiutil's generic diagnostic; hdiutil is not
// invoked in that case.
func (f *FromFolder) Create(ctx context.Context, imagePath string) (string, error) {
	if _, err := os.Stat(f.srcFolder); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrSourceNotFound, f.srcFolder)
		}
		return "", err
	}

	opts := f.opts
	opts.SrcFolder = f.srcFolder
	if err := f.ops.Create(ctx, &opts, imagePath); err != nil {
		return "", err
	}
	return imagePath, nil
}

// CreateTemp writes the disk image to a random path in the OS temporary
// directory. The image is deleted when the returned TempImage is closed.
// Useful for tests.
func (f *FromFolder) CreateTemp(ctx context.Context) (*TempImage, error) {
	tmp, err := os.CreateTemp("", "*.dmg")
	if err != nil {
		return nil, err
	}
	path := tmp.Name()
	if err := tmp.Close(); err != nil {
		return nil, err
	}

	// CreateTemp already created the file, so the tool must clobber it.
	if _, err := f.Overwrite().Create(ctx, path); err != nil {
		os.Remove(path)
		return nil, err
	}
	return &TempImage{path: path}, nil
}

// TempImage is a disk image in the temporary directory, deleted on Close.
type TempImage struct {
	path string
}

// Path returns the image file's path.
func (t *TempImage) Path() string {
	return t.path
}

// Close deletes the image file.
func (t *TempImage) Close() error {
	return os.Remove(t.path)
}
