package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/pixclip/internal/menu"
)

var menuJSON bool

func runMenu(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	return a.runMenu(args, menuJSON)
}

// buildMenu returns the file menu for items, or the folder menu when no
// items are given.
func (a *app) buildMenu(items []string) menu.Item {
	if len(items) == 0 {
		return menu.BackgroundItems(a.clip)
	}
	return menu.FileItems(items, a.clip)
}

func (a *app) runMenu(items []string, asJSON bool) error {
	top := a.buildMenu(items)

	if asJSON {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(top)
	}

	if !isInteractive() {
		fmt.Fprint(a.out, renderMenu(top))
		return nil
	}

	action, err := a.prompt.ChooseAction(top)
	if err != nil {
		return a.canceled(err)
	}
	return a.activate(action, items)
}

// activate runs the operation behind a menu entry.
func (a *app) activate(action menu.Action, items []string) error {
	switch action {
	case menu.ActionCopy:
		_, err := a.doCopy(items, true)
		return err
	case menu.ActionPaste:
		_, err := a.doPaste("", false)
		return err
	case menu.ActionAbout:
		fmt.Fprintln(a.out, aboutBox(version))
		return nil
	default:
		return nil
	}
}

// renderMenu draws the menu tree for non-interactive output.
func renderMenu(top menu.Item) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(top.Label))
	b.WriteString("\n")

	width := 0
	for _, it := range top.Submenu {
		width = max(width, lipgloss.Width(it.Label))
	}
	label := lipgloss.NewStyle().Width(width + 2)

	for _, it := range top.Submenu {
		b.WriteString("  ")
		if it.IsSeparator() {
			b.WriteString(mutedStyle.Render(it.Label))
		} else {
			b.WriteString(label.Render(it.Label))
			b.WriteString(mutedStyle.Render(it.Tip))
		}
		b.WriteString("\n")
	}
	return b.String()
}
