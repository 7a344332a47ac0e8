// Package bridge moves images between files on disk and the clipboard.
package bridge

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/zhubert/pixclip/internal/clipboard"
	"github.com/zhubert/pixclip/internal/codec"
	pcerrors "github.com/zhubert/pixclip/internal/errors"
	"github.com/zhubert/pixclip/internal/logger"
	"github.com/zhubert/pixclip/internal/selection"
)

// Options configures encoding and default names.
type Options struct {
	JPEGQuality int
	PasteName   string // Used when the destination is a directory
}

// Bridge runs copy and paste against one clipboard.
type Bridge struct {
	clip *clipboard.Clipboard
	opts Options
}

// New returns a Bridge over clip.
func New(clip *clipboard.Clipboard, opts Options) *Bridge {
	return &Bridge{clip: clip, opts: opts}
}

// HasImage reports whether a paste would find an image right now.
func (b *Bridge) HasImage() bool {
	return b.clip.HasImage()
}

// CopyResult describes an image placed on the clipboard.
type CopyResult struct {
	OpID    string
	Path    string
	Format  codec.Format
	Width   int
	Height  int
	Changed <-chan struct{} // Closed when another program replaces the image
}

// Copy decodes the first image of items and puts it on the clipboard.
// Nothing is written to the clipboard when it fails.
func (b *Bridge) Copy(items []string) (*CopyResult, error) {
	opID := uuid.New().String()
	log := logger.WithOperation("Bridge", opID)

	path, err := pickSource(items)
	if err != nil {
		log.Warn("copy aborted", "items", len(items), "error", err)
		return nil, err
	}

	img, f, err := codec.DecodeFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = pcerrors.FileNotFound(path)
		}
		log.Warn("copy aborted", "path", path, "error", err)
		return nil, err
	}

	changed, err := b.clip.WriteImage(img)
	if err != nil {
		log.Error("clipboard write failed", "path", path, "error", err)
		return nil, err
	}

	bounds := img.Bounds()
	log.Info("copied", "path", path, "format", f.Name, "width", bounds.Dx(), "height", bounds.Dy())
	return &CopyResult{
		OpID:    opID,
		Path:    path,
		Format:  f,
		Width:   bounds.Dx(),
		Height:  bounds.Dy(),
		Changed: changed,
	}, nil
}

// pickSource returns the first existing image of items. A selection whose
// images all vanished reports the first one as missing.
func pickSource(items []string) (string, error) {
	if images := selection.Images(items); len(images) > 0 {
		return images[0], nil
	}
	if candidates := selection.Candidates(items); len(candidates) > 0 {
		return "", pcerrors.FileNotFound(candidates[0])
	}
	return "", pcerrors.NoImageSelected(len(items))
}

// PasteResult describes a written clipboard image.
type PasteResult struct {
	OpID   string
	Path   string
	Format codec.Format
	Width  int
	Height int
}

// Fetch returns the clipboard image or a KindNotFound error when there is none.
func (b *Bridge) Fetch() (*clipboard.ImageData, error) {
	img, err := b.clip.ReadImage()
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, pcerrors.ClipboardEmpty()
	}
	return img, nil
}

// Paste fetches the clipboard image and saves it to dest.
func (b *Bridge) Paste(dest string) (*PasteResult, error) {
	img, err := b.Fetch()
	if err != nil {
		return nil, err
	}
	return b.Save(img, dest)
}

// Save encodes img to dest. The format comes from the destination
// extension; unrecognized extensions get ".png" appended. The file appears
// only once it is completely written.
func (b *Bridge) Save(img *clipboard.ImageData, dest string) (*PasteResult, error) {
	opID := uuid.New().String()
	log := logger.WithOperation("Bridge", opID)

	if img == nil {
		return nil, pcerrors.ClipboardEmpty()
	}

	target, err := b.Destination(dest)
	if err != nil {
		return nil, err
	}
	path, f := codec.ResolveTarget(target)

	if err := writeImage(path, img, f, codec.EncodeOptions{JPEGQuality: b.opts.JPEGQuality}); err != nil {
		log.Error("paste failed", "path", path, "format", f.Name, "error", err)
		return nil, err
	}

	log.Info("pasted", "path", path, "format", f.Name, "source", img.Source, "width", img.Width, "height", img.Height)
	return &PasteResult{
		OpID:   opID,
		Path:   path,
		Format: f,
		Width:  img.Width,
		Height: img.Height,
	}, nil
}

// Destination expands dest to a file path: an existing directory gets the
// configured paste name appended.
func (b *Bridge) Destination(dest string) (string, error) {
	if dest == "" {
		return "", pcerrors.E(pcerrors.Op("bridge.Paste"), pcerrors.KindInvalid, "no destination given")
	}
	if info, err := os.Stat(dest); err == nil && info.IsDir() {
		name := b.opts.PasteName
		if name == "" {
			name = "from_copy_paste.png"
		}
		return filepath.Join(dest, name), nil
	}
	return dest, nil
}

// FinalPath reports where Save would write dest without writing anything.
func (b *Bridge) FinalPath(dest string) (string, error) {
	target, err := b.Destination(dest)
	if err != nil {
		return "", err
	}
	path, _ := codec.ResolveTarget(target)
	return path, nil
}
