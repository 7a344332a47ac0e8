package clipboard

import (
	"sync"

	"golang.design/x/clipboard"

	pcerrors "github.com/zhubert/pixclip/internal/errors"
	"github.com/zhubert/pixclip/internal/logger"
)

var (
	initOnce sync.Once
	initErr  error
)

// systemBoard is the Board backed by golang.design/x/clipboard.
type systemBoard struct{}

// System returns the OS clipboard. The underlying library is initialized on
// the first call; later calls return the same result.
func System() (Board, error) {
	initOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			logger.Warn("Clipboard: failed to initialize: %v", err)
			initErr = pcerrors.ClipboardUnavailable(err)
			return
		}
		logger.Debug("Clipboard: initialized")
	})
	if initErr != nil {
		return nil, initErr
	}
	return systemBoard{}, nil
}

func (systemBoard) Read(f Format) []byte {
	return clipboard.Read(libFormat(f))
}

func (systemBoard) Write(f Format, data []byte) <-chan struct{} {
	return clipboard.Write(libFormat(f), data)
}

func libFormat(f Format) clipboard.Format {
	if f == FormatImage {
		return clipboard.FmtImage
	}
	return clipboard.FmtText
}
