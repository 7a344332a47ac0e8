package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	huh "charm.land/huh/v2"
	"github.com/charmbracelet/x/term"

	"github.com/zhubert/pixclip/internal/codec"
	"github.com/zhubert/pixclip/internal/menu"
)

// errCanceled is returned when the user dismisses a prompt.
var errCanceled = errors.New("canceled")

// prompter asks the user the questions the commands need.
type prompter interface {
	// Destination asks where to save the clipboard image.
	Destination(initial string) (string, error)
	// ConfirmOverwrite asks whether an existing file may be replaced.
	ConfirmOverwrite(path string) (bool, error)
	// ChooseAction lets the user pick one of the menu's actions.
	ChooseAction(top menu.Item) (menu.Action, error)
}

// isInteractive reports whether prompts can be shown.
var isInteractive = func() bool {
	return term.IsTerminal(os.Stdin.Fd())
}

// huhPrompter shows terminal forms.
type huhPrompter struct{}

func (huhPrompter) Destination(initial string) (string, error) {
	dest := initial
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Save clipboard image as").
				Description("The extension picks the format: " + strings.Join(codec.SaveExtensions, " ")).
				Value(&dest).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("enter a file name")
					}
					return nil
				}),
		),
	).WithTheme(formTheme())

	if err := runForm(form); err != nil {
		return "", err
	}
	return strings.TrimSpace(dest), nil
}

func (huhPrompter) ConfirmOverwrite(path string) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("%s already exists. Replace it?", filepath.Base(path))).
				Description(filepath.Dir(path)).
				Affirmative("Replace").
				Negative("Cancel").
				Value(&ok),
		),
	).WithTheme(formTheme())

	if err := runForm(form); err != nil {
		return false, err
	}
	return ok, nil
}

func (huhPrompter) ChooseAction(top menu.Item) (menu.Action, error) {
	actions := menu.Actions(top)
	if len(actions) == 0 {
		return menu.ActionNone, errCanceled
	}

	options := make([]huh.Option[menu.Action], len(actions))
	for i, item := range actions {
		options[i] = huh.NewOption(item.Label, item.Action)
	}
	choice := actions[0].Action

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[menu.Action]().
				Title(top.Label).
				Description(top.Tip).
				Options(options...).
				Value(&choice),
		),
	).WithTheme(formTheme())

	if err := runForm(form); err != nil {
		return menu.ActionNone, err
	}
	return choice, nil
}

func runForm(form *huh.Form) error {
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return errCanceled
		}
		return err
	}
	return nil
}
