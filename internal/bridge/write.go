package bridge

import (
	"os"
	"path/filepath"

	"github.com/zhubert/pixclip/internal/clipboard"
	"github.com/zhubert/pixclip/internal/codec"
	pcerrors "github.com/zhubert/pixclip/internal/errors"
)

// writeImage encodes into a temp file next to path and renames it into
// place, so a failed encode never leaves a partial file behind.
func writeImage(path string, img *clipboard.ImageData, f codec.Format, opts codec.EncodeOptions) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".pixclip-*"+f.Extension())
	if err != nil {
		return pcerrors.WriteFailed(path, err)
	}
	tmpName := tmp.Name()
	defer func() {
		// No-op after a successful rename.
		os.Remove(tmpName)
	}()

	if err := f.Encode(tmp, img.Image, opts); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return pcerrors.WriteFailed(path, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return pcerrors.WriteFailed(path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return pcerrors.WriteFailed(path, err)
	}
	return nil
}
