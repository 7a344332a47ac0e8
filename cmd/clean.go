package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/zhubert/pixclip/internal/logger"
	"github.com/zhubert/pixclip/internal/process"
)

var skipConfirm bool

// maxPathWidth caps the held image paths listed before cleaning.
const maxPathWidth = 60

// Swapped in tests.
var (
	findHolders = process.FindHolders
	stopHolders = process.StopHolders
	clearLogs   = logger.ClearLogs
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Stop clipboard holders and remove log files",
	Long: `Stops every background process that keeps a copied image on the
clipboard and removes pixclip's log files from /tmp.

Images held by those processes leave the clipboard. It will prompt for
confirmation before proceeding unless the --yes flag is used.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	return runCleanWithReader(os.Stdin, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// runCleanWithReader allows injecting a reader for testing
func runCleanWithReader(input io.Reader, out, errOut io.Writer) error {
	holders, err := findHolders()
	if err != nil {
		fmt.Fprintf(errOut, "Warning: error finding clipboard holders: %v\n", err)
	}

	fmt.Fprintln(out, "This will clean:")
	if len(holders) > 0 {
		fmt.Fprintf(out, "  - %d clipboard holder(s)\n", len(holders))
		for _, h := range holders {
			fmt.Fprintf(out, "      PID %d  %s\n", h.PID, ansi.Truncate(h.Path, maxPathWidth, "…"))
		}
	}
	fmt.Fprintf(out, "  - Log files in %s\n", "/tmp/pixclip-*.log")

	// Confirm unless --yes flag is set
	if !skipConfirm {
		fmt.Fprint(out, "Continue? [y/N]: ")
		if !confirm(input, "") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	stopped := 0
	if len(holders) > 0 {
		stopped, err = stopHolders()
		if err != nil {
			fmt.Fprintf(errOut, "Warning: error stopping clipboard holders: %v\n", err)
		}
	}

	logsCleared, err := clearLogs()
	if err != nil {
		fmt.Fprintf(errOut, "Warning: error clearing logs: %v\n", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Cleaned:")
	fmt.Fprintf(out, "  - %d clipboard holder(s) stopped\n", stopped)
	fmt.Fprintf(out, "  - %d log file(s) removed\n", logsCleared)
	return nil
}

// confirm reads a y/n answer; anything but y or yes declines.
func confirm(input io.Reader, prompt string) bool {
	reader := bufio.NewReader(input)
	if prompt != "" {
		fmt.Printf("%s [y/N]: ", prompt)
	}
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
