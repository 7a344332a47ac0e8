package clipboard

import (
	"bytes"
	"image"
	"image/png"
	"log/slog"

	"github.com/zhubert/pixclip/internal/codec"
	pcerrors "github.com/zhubert/pixclip/internal/errors"
	"github.com/zhubert/pixclip/internal/logger"
)

// SourceClipboard marks images read from the image slot itself.
const SourceClipboard = "clipboard"

// Clipboard reads and writes images on a Board.
type Clipboard struct {
	board Board
	log   *slog.Logger
}

// New wraps board.
func New(board Board) *Clipboard {
	return &Clipboard{
		board: board,
		log:   logger.ComponentLogger("Clipboard"),
	}
}

// HasImage reports whether the image slot holds data. Copied file URIs in
// the text slot do not count.
func (c *Clipboard) HasImage() bool {
	return len(c.board.Read(FormatImage)) > 0
}

// ReadImage returns the clipboard image, or nil if the clipboard doesn't
// contain one.
func (c *Clipboard) ReadImage() (*ImageData, error) {
	data := c.board.Read(FormatImage)
	if len(data) == 0 {
		c.log.Debug("no image data found")
		return nil, nil
	}

	c.log.Debug("read image data", "bytes", len(data))
	img, f, err := codec.Decode(data, "")
	if err != nil {
		c.log.Warn("failed to decode clipboard image", "error", err)
		return nil, err
	}
	return newImageData(img, data, f, SourceClipboard), nil
}

func newImageData(img image.Image, data []byte, f codec.Format, source string) *ImageData {
	b := img.Bounds()
	return &ImageData{
		Image:  img,
		Data:   data,
		Format: f,
		Source: source,
		Width:  b.Dx(),
		Height: b.Dy(),
	}
}

// WriteImage places img on the clipboard as PNG. The returned channel is
// closed when another program takes over the clipboard.
func (c *Clipboard) WriteImage(img image.Image) (<-chan struct{}, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, pcerrors.EncodeFailed("png", err)
	}
	changed := c.board.Write(FormatImage, buf.Bytes())
	c.log.Debug("image written", "bytes", buf.Len())
	return changed, nil
}

// ReadText reads text from the clipboard.
func (c *Clipboard) ReadText() string {
	return string(c.board.Read(FormatText))
}
