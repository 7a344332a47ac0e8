package codec

import (
	"image"
	"io"
	"path/filepath"
	"slices"
	"strings"

	pcerrors "github.com/zhubert/pixclip/internal/errors"
)

// SaveExtensions are the destination extensions paste recognizes.
var SaveExtensions = []string{".png", ".jpg", ".tif", ".ico", ".bmp"}

// DefaultSaveExtension is appended to destinations without a recognized extension.
const DefaultSaveExtension = ".png"

// IsSaveExtension reports whether ext (any case) picks an encoder on paste.
func IsSaveExtension(ext string) bool {
	ext = strings.ToLower(ext)
	return slices.Contains(SaveExtensions, ext)
}

// ResolveTarget decides where and how a pasted image is written. A path with
// a recognized extension is returned unchanged together with its format;
// anything else gets DefaultSaveExtension appended.
func ResolveTarget(path string) (string, Format) {
	ext := filepath.Ext(path)
	if IsSaveExtension(ext) {
		if f, ok := Lookup(ext); ok {
			return path, f
		}
	}
	f, _ := Lookup(DefaultSaveExtension)
	return path + DefaultSaveExtension, f
}

// Encode writes m to w in format f.
func (f Format) Encode(w io.Writer, m image.Image, opts EncodeOptions) error {
	if f.encode == nil {
		return pcerrors.UnsupportedFormat(f.Name)
	}
	if err := f.encode(w, m, opts); err != nil {
		return pcerrors.EncodeFailed(f.Name, err)
	}
	return nil
}
