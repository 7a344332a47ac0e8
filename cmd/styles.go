package cmd

import (
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

var (
	colorPrimary     = lipgloss.Color("#7C3AED") // Purple
	colorSecondary   = lipgloss.Color("#06B6D4") // Cyan
	colorText        = lipgloss.Color("#F9FAFB")
	colorTextMuted   = lipgloss.Color("#B0B8C4")
	colorTextInverse = lipgloss.Color("#1F2937")
	colorWarning     = lipgloss.Color("#F59E0B")
	colorSuccess     = lipgloss.Color("#10B981")
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorTextMuted)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 3)
)

// formTheme styles the prompts with the same palette as the rest of the output.
func formTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		t.Focused.Base = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(colorPrimary)
		t.Focused.Card = t.Focused.Base
		t.Focused.Title = lipgloss.NewStyle().Foreground(colorText).Bold(true)
		t.Focused.Description = lipgloss.NewStyle().Foreground(colorTextMuted).Italic(true)
		t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(colorWarning).SetString(" *")
		t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(colorWarning)

		t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(colorPrimary).SetString("> ")
		t.Focused.Option = lipgloss.NewStyle().Foreground(colorText)
		t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(colorSecondary)

		t.Focused.FocusedButton = lipgloss.NewStyle().
			Padding(0, 2).
			MarginRight(1).
			Foreground(colorTextInverse).
			Background(colorPrimary)
		t.Focused.BlurredButton = lipgloss.NewStyle().
			Padding(0, 2).
			MarginRight(1).
			Foreground(colorTextMuted)

		t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(colorPrimary)
		t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(colorTextMuted)
		t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(colorPrimary)
		t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(colorText)

		t.Blurred = t.Focused
		t.Blurred.Base = lipgloss.NewStyle().PaddingLeft(2)
		t.Blurred.Card = t.Blurred.Base

		return t
	})
}
