package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/pixclip/internal/codec"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the image formats pixclip can copy and paste",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), formatsTable())
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

func formatsTable() string {
	name := lipgloss.NewStyle().Width(8)
	exts := lipgloss.NewStyle().Width(20)

	var b strings.Builder
	b.WriteString(titleStyle.Render(name.Render("FORMAT") + exts.Render("EXTENSIONS") + "PASTE"))
	b.WriteString("\n")
	for _, f := range codec.Formats() {
		paste := mutedStyle.Render("no")
		if f.CanEncode() && savable(f) {
			paste = successStyle.Render("yes")
		}
		b.WriteString(name.Render(f.Name))
		b.WriteString(exts.Render("." + strings.Join(f.Extensions, " .")))
		b.WriteString(paste)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("Pasting to any other extension appends %s.", codec.DefaultSaveExtension)))
	b.WriteString("\n")
	return b.String()
}

// savable reports whether f is chosen by one of the paste extensions.
func savable(f codec.Format) bool {
	for _, ext := range f.Extensions {
		if codec.IsSaveExtension("." + ext) {
			return true
		}
	}
	return false
}
