// Package menu builds the "CopyPaste Images" context menu.
//
// A file manager asks for two kinds of menus: one for selected files and one
// for the folder background. Both are rebuilt on every request so the paste
// entry reflects what the clipboard holds at that moment.
package menu

import (
	"strings"

	"github.com/zhubert/pixclip/internal/selection"
)

// Action identifies what activating an item does.
type Action string

const (
	ActionNone  Action = ""
	ActionCopy  Action = "copy"
	ActionPaste Action = "paste"
	ActionAbout Action = "about"
)

const namePrefix = "PixclipMenuProvider::"

// SeparatorLabel is the label of the inert divider before About.
var SeparatorLabel = strings.Repeat("―", 10)

// Item is one menu entry. Only the top-level item has a submenu.
type Item struct {
	Name    string `json:"name"`
	Label   string `json:"label"`
	Tip     string `json:"tip,omitempty"`
	Icon    string `json:"icon,omitempty"`
	Action  Action `json:"action,omitempty"`
	Submenu []Item `json:"submenu,omitempty"`
}

// IsSeparator reports whether the item is the inert divider.
func (i Item) IsSeparator() bool {
	return i.Action == ActionNone && len(i.Submenu) == 0
}

// ImageProber answers whether the clipboard currently holds an image.
type ImageProber interface {
	HasImage() bool
}

// FileItems returns the menu for a file selection. Copy is offered when every
// selected item is a supported image; paste when the clipboard has an image.
func FileItems(selected []string, clip ImageProber) Item {
	var entries []Item
	if selection.AllImages(selected) {
		entries = append(entries, copyItem())
	}
	return top(append(entries, common(clip)...))
}

// BackgroundItems returns the menu for a click on empty folder space.
func BackgroundItems(clip ImageProber) Item {
	return top(common(clip))
}

func top(submenu []Item) Item {
	return Item{
		Name:    namePrefix + "image-tools",
		Label:   "CopyPaste Images",
		Tip:     "Tools to copy and paste images",
		Icon:    "image",
		Submenu: submenu,
	}
}

func copyItem() Item {
	return Item{
		Name:   namePrefix + "copy-image",
		Label:  "Copy image",
		Tip:    "Copy image to clipboard",
		Icon:   "edit-copy",
		Action: ActionCopy,
	}
}

func common(clip ImageProber) []Item {
	var items []Item
	if clip != nil && clip.HasImage() {
		items = append(items, Item{
			Name:   namePrefix + "paste-image",
			Label:  "Paste image",
			Tip:    "Paste image from the clipboard",
			Icon:   "edit-paste",
			Action: ActionPaste,
		})
	}
	return append(items,
		Item{
			Name:  namePrefix + "separator",
			Label: SeparatorLabel,
		},
		Item{
			Name:   namePrefix + "about",
			Label:  "About",
			Tip:    "About",
			Icon:   "help-about",
			Action: ActionAbout,
		},
	)
}

// Actions returns the actionable entries of a top-level item in menu order.
func Actions(top Item) []Item {
	var out []Item
	for _, it := range top.Submenu {
		if !it.IsSeparator() {
			out = append(out, it)
		}
	}
	return out
}

// Offers reports whether the menu contains an entry for action.
func Offers(top Item, action Action) bool {
	for _, it := range top.Submenu {
		if it.Action == action {
			return true
		}
	}
	return false
}
