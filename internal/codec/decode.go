package codec

import (
	"bytes"
	"image"
	"os"
	"path/filepath"

	"github.com/h2non/filetype"

	pcerrors "github.com/zhubert/pixclip/internal/errors"
)

// sniffLen is how many leading bytes filetype needs to match any image type.
const sniffLen = 4100

// Sniff detects the format of data from its content.
func Sniff(data []byte) (Format, bool) {
	head := data
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	kind, err := filetype.Match(head)
	if err != nil || kind == filetype.Unknown {
		return Format{}, false
	}
	return Lookup(kind.Extension)
}

// Decode decodes data into a bitmap. The content decides the codec; hint (a
// file name) is only consulted when sniffing fails.
func Decode(data []byte, hint string) (image.Image, Format, error) {
	if f, ok := Sniff(data); ok {
		img, err := f.decode(bytes.NewReader(data))
		if err != nil {
			return nil, f, pcerrors.DecodeFailed(source(hint, f), err)
		}
		return img, f, nil
	}

	if f, ok := Lookup(filepath.Ext(hint)); ok {
		img, err := f.decode(bytes.NewReader(data))
		if err == nil {
			return img, f, nil
		}
	}

	img, name, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, Format{}, pcerrors.DecodeFailed(source(hint, Format{}), err)
	}
	f, ok := ByName(name)
	if !ok {
		return nil, Format{}, pcerrors.UnsupportedFormat(name)
	}
	return img, f, nil
}

// DecodeFile reads and decodes the image at path.
func DecodeFile(path string) (image.Image, Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Format{}, err
	}
	return Decode(data, path)
}

func source(hint string, f Format) string {
	switch {
	case hint != "":
		return hint
	case f.Name != "":
		return f.Name + " data"
	default:
		return "image data"
	}
}
