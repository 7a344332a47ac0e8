package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zhubert/pixclip/internal/logger"
)

// runHold is the body of a holder process: copy path, then keep running
// until the clipboard changes hands or we are told to stop.
func runHold(cmd *cobra.Command, path string) error {
	if err := logger.Init(logger.HoldLogPath(os.Getpid())); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	return a.hold(ctx, path)
}

func (a *app) hold(ctx context.Context, path string) error {
	log := logger.ComponentLogger("holder")

	res, err := a.bridge.Copy([]string{path})
	if err != nil {
		log.Error("copy failed", "path", path, "error", err)
		return err
	}
	log.Info("holding clipboard", "path", res.Path, "op", res.OpID)

	select {
	case <-res.Changed:
		log.Info("clipboard replaced, exiting", "path", res.Path)
	case <-ctx.Done():
		log.Info("stopped", "path", res.Path, "reason", ctx.Err())
	}
	return nil
}
