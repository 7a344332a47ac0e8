package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhubert/pixclip/internal/logger"
)

var (
	debugMode             bool
	quietMode             bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "pixclip [FILES...]",
	Short: "Copy and paste images between files and the clipboard",
	Long: `Pixclip puts image files on the system clipboard and saves clipboard
images back to disk in the format chosen by the file extension.

Run without a subcommand it shows the "CopyPaste Images" menu for the given
files, or for the current folder when no files are given.`,
	RunE:          runMenu,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to "+logger.DefaultLogPath)
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Only log warnings and errors")
	rootCmd.Flags().BoolVar(&menuJSON, "json", false, "Print the menu as JSON instead of prompting")
}

func initConfig() {
	if quietMode {
		logger.SetLevel(logger.LevelWarn)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	defer logger.Close()

	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("pixclip %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("pixclip %s\n", version)
}
