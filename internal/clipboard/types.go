// Package clipboard provides image and text access to the system clipboard.
package clipboard

import (
	"image"

	"github.com/zhubert/pixclip/internal/codec"
)

// Format selects a clipboard slot.
type Format int

const (
	// FormatText is the UTF-8 text slot.
	FormatText Format = iota
	// FormatImage is the image slot, exchanged as PNG bytes.
	FormatImage
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatImage:
		return "image"
	default:
		return "unknown"
	}
}

// Board is the raw clipboard. Write returns a channel that is closed once
// another writer replaces the data.
type Board interface {
	Read(f Format) []byte
	Write(f Format, data []byte) <-chan struct{}
}

// ImageData represents a decoded clipboard image
type ImageData struct {
	Image  image.Image
	Data   []byte       // Raw bytes as found on the clipboard or on disk
	Format codec.Format // Codec the bytes were decoded with
	Source string       // Where the bytes came from, SourceClipboard for the image slot
	Width  int
	Height int
}

// SizeKB returns the raw image size in kilobytes
func (img *ImageData) SizeKB() int {
	return len(img.Data) / 1024
}
