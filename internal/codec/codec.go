// Package codec knows which image formats pixclip can read and write.
//
// The registry is fixed at build time. The supported-extension set used to
// classify selected files is derived from it once and never changes while the
// process runs.
package codec

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/nfnt/resize"
	"github.com/sergeymakinen/go-bmp"
	"github.com/sergeymakinen/go-ico"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// MaxIconSize is the largest width or height an ICO entry can hold.
const MaxIconSize = 256

// EncodeOptions tunes lossy encoders.
type EncodeOptions struct {
	JPEGQuality int
}

// Format describes one registered image codec.
type Format struct {
	Name       string   // Short name, e.g. "jpeg"
	MediaType  string   // MIME type
	Extensions []string // Lowercase, without the dot; the first one is canonical

	decode func(io.Reader) (image.Image, error)
	encode func(io.Writer, image.Image, EncodeOptions) error
}

// Extension returns the canonical extension with a leading dot.
func (f Format) Extension() string {
	return "." + f.Extensions[0]
}

// CanEncode reports whether pixclip can write this format.
func (f Format) CanEncode() bool {
	return f.encode != nil
}

// Decode reads an image in this format.
func (f Format) Decode(r io.Reader) (image.Image, error) {
	return f.decode(r)
}

var registry = []Format{
	{
		Name:       "png",
		MediaType:  "image/png",
		Extensions: []string{"png"},
		decode:     png.Decode,
		encode: func(w io.Writer, m image.Image, _ EncodeOptions) error {
			return png.Encode(w, m)
		},
	},
	{
		Name:       "jpeg",
		MediaType:  "image/jpeg",
		Extensions: []string{"jpg", "jpeg", "jpe"},
		decode:     jpeg.Decode,
		encode: func(w io.Writer, m image.Image, opts EncodeOptions) error {
			q := opts.JPEGQuality
			if q <= 0 || q > 100 {
				q = jpeg.DefaultQuality
			}
			return jpeg.Encode(w, m, &jpeg.Options{Quality: q})
		},
	},
	{
		Name:       "gif",
		MediaType:  "image/gif",
		Extensions: []string{"gif"},
		decode:     gif.Decode,
		encode: func(w io.Writer, m image.Image, _ EncodeOptions) error {
			return gif.Encode(w, m, nil)
		},
	},
	{
		Name:       "bmp",
		MediaType:  "image/bmp",
		Extensions: []string{"bmp"},
		decode:     bmp.Decode,
		encode: func(w io.Writer, m image.Image, _ EncodeOptions) error {
			return bmp.Encode(w, m)
		},
	},
	{
		Name:       "ico",
		MediaType:  "image/x-icon",
		Extensions: []string{"ico"},
		decode:     ico.Decode,
		encode: func(w io.Writer, m image.Image, _ EncodeOptions) error {
			return ico.Encode(w, fitIcon(m))
		},
	},
	{
		Name:       "tiff",
		MediaType:  "image/tiff",
		Extensions: []string{"tif", "tiff"},
		decode:     tiff.Decode,
		encode: func(w io.Writer, m image.Image, _ EncodeOptions) error {
			return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
		},
	},
	{
		Name:       "webp",
		MediaType:  "image/webp",
		Extensions: []string{"webp"},
		decode:     webp.Decode,
	},
}

// fitIcon scales m down so both sides fit in an ICO entry.
func fitIcon(m image.Image) image.Image {
	b := m.Bounds()
	if b.Dx() <= MaxIconSize && b.Dy() <= MaxIconSize {
		return m
	}
	return resize.Thumbnail(MaxIconSize, MaxIconSize, m, resize.Lanczos3)
}

// Formats returns every registered format.
func Formats() []Format {
	return slices.Clone(registry)
}

// byExtension indexes the registry by extension without the dot.
var byExtension = sync.OnceValue(func() map[string]Format {
	m := make(map[string]Format)
	for _, f := range registry {
		for _, ext := range f.Extensions {
			m[ext] = f
		}
	}
	return m
})

var supportedExtensions = sync.OnceValue(func() []string {
	exts := make([]string, 0, len(byExtension()))
	for ext := range byExtension() {
		exts = append(exts, "."+ext)
	}
	slices.Sort(exts)
	return exts
})

// SupportedExtensions returns the sorted set of readable extensions, each
// with a leading dot.
func SupportedExtensions() []string {
	return slices.Clone(supportedExtensions())
}

// Lookup finds the format for an extension. The leading dot and case are
// ignored.
func Lookup(ext string) (Format, bool) {
	f, ok := byExtension()[strings.ToLower(strings.TrimPrefix(ext, "."))]
	return f, ok
}

// ByName finds a format by its short name.
func ByName(name string) (Format, bool) {
	for _, f := range registry {
		if f.Name == name {
			return f, true
		}
	}
	return Format{}, false
}

// IsSupported reports whether the lowercase extension of path belongs to the
// supported set.
func IsSupported(path string) bool {
	ext := filepath.Ext(path)
	if ext == "" {
		return false
	}
	_, ok := byExtension()[strings.ToLower(ext[1:])]
	return ok
}
