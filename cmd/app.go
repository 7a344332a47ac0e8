package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zhubert/pixclip/internal/bridge"
	"github.com/zhubert/pixclip/internal/clipboard"
	"github.com/zhubert/pixclip/internal/config"
	"github.com/zhubert/pixclip/internal/logger"
	"github.com/zhubert/pixclip/internal/notification"
)

// Swapped in tests.
var (
	newBoard    = clipboard.System
	loadConfig  = config.Load
	newPrompter = func() prompter { return huhPrompter{} }
)

// app bundles what a command needs to run one operation.
type app struct {
	cfg    *config.Config
	clip   *clipboard.Clipboard
	bridge *bridge.Bridge
	prompt prompter
	out    io.Writer
	errOut io.Writer
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	board, err := newBoard()
	if err != nil {
		return nil, err
	}
	clip := clipboard.New(board)

	return &app{
		cfg:  cfg,
		clip: clip,
		bridge: bridge.New(clip, bridge.Options{
			JPEGQuality: cfg.JPEGQuality,
			PasteName:   cfg.PasteName,
		}),
		prompt: newPrompter(),
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
	}, nil
}

// fail records err and, when enabled, raises it as a desktop notification.
// The error is returned so commands can end with `return a.fail(err)`.
func (a *app) fail(err error) error {
	if err == nil || errors.Is(err, errCanceled) {
		return err
	}
	logger.Error("%v", err)
	if a.cfg.NotificationsEnabled() {
		_ = notification.Failed(err)
	}
	return err
}

// notify sends a success notification when enabled.
func (a *app) notify(send func(path string) error, path string) {
	if a.cfg.NotificationsEnabled() {
		_ = send(path)
	}
}
