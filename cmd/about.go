package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
)

const (
	aboutTitle   = "CopyPaste Images"
	aboutComment = "Tools to copy and paste images"
	aboutWebsite = "https://github.com/zhubert/pixclip"
	aboutLicense = "GNU General Public License, version 3"
)

var aboutAuthors = []string{"pixclip contributors"}

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show program information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), aboutBox(version))
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

// aboutBox renders the about dialog as a bordered box.
func aboutBox(v string) string {
	if v == "" {
		v = "dev"
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(aboutTitle)+" "+mutedStyle.Render(v),
		"",
		aboutComment,
		"",
		mutedStyle.Render("Authors: ")+strings.Join(aboutAuthors, ", "),
		mutedStyle.Render("License: ")+aboutLicense,
		mutedStyle.Render("Website: ")+aboutWebsite,
	)
	return boxStyle.Render(body)
}
