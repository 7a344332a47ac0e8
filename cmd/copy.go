package cmd

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/zhubert/pixclip/internal/bridge"
	"github.com/zhubert/pixclip/internal/logger"
	"github.com/zhubert/pixclip/internal/notification"
	"github.com/zhubert/pixclip/internal/process"
	"github.com/zhubert/pixclip/internal/selection"
)

var (
	noPersist bool
	fromStdin bool
	holdPath  string
)

var copyCmd = &cobra.Command{
	Use:   "copy FILES...",
	Short: "Put the first image among FILES on the clipboard",
	Long: `Decodes the first existing image among FILES and places it on the
clipboard. Files may be paths or file:// URIs; non-image files are skipped.

With --stdin, a text/uri-list (one file:// URI or path per line, as file
managers produce) is read from standard input and appended to FILES.

On Linux the clipboard is served by the program that set it, so a small
background process keeps the image available after this command exits. It
stops by itself once something else is copied. Use --no-persist to skip it.`,
	RunE: runCopy,
}

func init() {
	copyCmd.Flags().BoolVar(&noPersist, "no-persist", false, "Do not keep the image on the clipboard after exit")
	copyCmd.Flags().BoolVar(&fromStdin, "stdin", false, "Also read a text/uri-list of files from standard input")
	copyCmd.Flags().StringVar(&holdPath, "hold", "", "Serve FILE on the clipboard until it is replaced")
	_ = copyCmd.Flags().MarkHidden("hold")
	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, args []string) error {
	if holdPath != "" {
		return runHold(cmd, holdPath)
	}

	items, err := copyItems(args, cmd.InOrStdin(), fromStdin)
	if err != nil {
		return err
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	_, err = a.doCopy(items, !noPersist)
	return err
}

// copyItems returns args followed, when fromStdin is set, by the entries of
// the uri-list read from r.
func copyItems(args []string, r io.Reader, fromStdin bool) ([]string, error) {
	if !fromStdin {
		return args, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading file list: %w", err)
	}
	return append(slices.Clone(args), selection.ParseURIList(string(data))...), nil
}

// startHolder launches the background process that serves path.
var startHolder = func(path string) (int, error) {
	exe, err := os.Executable()
	if err != nil {
		return 0, err
	}
	return process.StartHolder(exe, "copy", process.HoldFlag+"="+path)
}

// doCopy copies the first image of items and, when persist is set and the
// platform needs it, hands the clipboard to a holder.
func (a *app) doCopy(items []string, persist bool) (*bridge.CopyResult, error) {
	res, err := a.bridge.Copy(items)
	if err != nil {
		return nil, a.fail(err)
	}

	fmt.Fprintf(a.out, "%s %s %s\n",
		successStyle.Render("Copied"),
		res.Path,
		mutedStyle.Render(fmt.Sprintf("(%s, %dx%d)", res.Format.Name, res.Width, res.Height)))

	if persist && a.cfg.ShouldPersist() && process.NeedsHolder() && !process.IsHolder() {
		pid, err := startHolder(res.Path)
		if err != nil {
			// The image is on the clipboard for as long as we run.
			logger.Warn("could not start clipboard holder: %v", err)
			fmt.Fprintln(a.errOut, warningStyle.Render("Warning: the image will leave the clipboard when pixclip exits"))
		} else {
			logger.Debug("clipboard holder pid=%d path=%s", pid, res.Path)
		}
	}

	a.notify(notification.Copied, res.Path)
	return res, nil
}
