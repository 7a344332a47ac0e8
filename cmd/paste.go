package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zhubert/pixclip/internal/bridge"
	pcerrors "github.com/zhubert/pixclip/internal/errors"
	"github.com/zhubert/pixclip/internal/notification"
)

var forcePaste bool

var pasteCmd = &cobra.Command{
	Use:   "paste [DEST]",
	Short: "Save the clipboard image to a file",
	Long: `Saves the image on the clipboard to DEST. The extension of DEST picks the
format (.png, .jpg, .tif, .ico or .bmp); any other name gets ".png" appended.
When DEST is a directory the configured paste name is used inside it.

Without DEST you are asked for a file name, starting from the configured
default. Replacing an existing file asks for confirmation unless --force.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPaste,
}

func init() {
	pasteCmd.Flags().BoolVarP(&forcePaste, "force", "f", false, "Replace an existing file without asking")
	rootCmd.AddCommand(pasteCmd)
}

func runPaste(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	var dest string
	if len(args) > 0 {
		dest = args[0]
	}
	_, err = a.doPaste(dest, forcePaste)
	return err
}

// doPaste saves the clipboard image. It returns nil, nil when the user
// cancels a prompt.
func (a *app) doPaste(dest string, force bool) (*bridge.PasteResult, error) {
	// Check the clipboard before asking for a name.
	img, err := a.bridge.Fetch()
	if err != nil {
		return nil, a.fail(err)
	}

	if dest == "" {
		dest = a.cfg.DefaultDestination()
		if isInteractive() {
			dest, err = a.prompt.Destination(dest)
			if err != nil {
				return nil, a.canceled(err)
			}
		}
	}

	final, err := a.bridge.FinalPath(dest)
	if err != nil {
		return nil, a.fail(err)
	}

	if _, statErr := os.Stat(final); statErr == nil && !force && a.cfg.ShouldConfirmOverwrite() {
		if !isInteractive() {
			return nil, a.fail(pcerrors.E(pcerrors.Op("cmd.Paste"), pcerrors.KindInvalid,
				fmt.Sprintf("%s already exists (use --force to replace it)", final)))
		}
		ok, err := a.prompt.ConfirmOverwrite(final)
		if err != nil {
			return nil, a.canceled(err)
		}
		if !ok {
			fmt.Fprintln(a.out, "Aborted.")
			return nil, nil
		}
	}

	res, err := a.bridge.Save(img, dest)
	if err != nil {
		return nil, a.fail(err)
	}

	fmt.Fprintf(a.out, "%s %s %s\n",
		successStyle.Render("Saved"),
		res.Path,
		mutedStyle.Render(fmt.Sprintf("(%s, %dx%d)", res.Format.Name, res.Width, res.Height)))
	a.notify(notification.Pasted, res.Path)
	return res, nil
}

// canceled turns a dismissed prompt into a quiet abort.
func (a *app) canceled(err error) error {
	if errors.Is(err, errCanceled) {
		fmt.Fprintln(a.out, "Aborted.")
		return nil
	}
	return a.fail(err)
}
