// Package selection turns the items handed over by a file manager into the
// ordered list of image files pixclip can act on.
package selection

import (
	"net/url"
	"os"
	"strings"

	"github.com/zhubert/pixclip/internal/codec"
)

// Resolve converts file:// URIs to local paths and drops blank entries.
// Plain paths pass through unchanged, surrounding spaces included, and the
// order is preserved.
func Resolve(items []string) []string {
	paths := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		paths = append(paths, toPath(item))
	}
	return paths
}

func toPath(item string) string {
	if !strings.HasPrefix(item, "file://") {
		return item
	}
	u, err := url.Parse(item)
	if err != nil || (u.Host != "" && u.Host != "localhost") {
		// Undecodable or remote; strip the scheme the way a raw slice would.
		return strings.TrimPrefix(item, "file://")
	}
	return u.Path
}

// Images returns the resolved items that have a supported extension and are
// regular files on disk.
func Images(items []string) []string {
	var images []string
	for _, p := range Resolve(items) {
		if !codec.IsSupported(p) {
			continue
		}
		info, err := os.Stat(p)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		images = append(images, p)
	}
	return images
}

// Candidates returns the resolved items with a supported extension, whether
// or not they exist.
func Candidates(items []string) []string {
	var out []string
	for _, p := range Resolve(items) {
		if codec.IsSupported(p) {
			out = append(out, p)
		}
	}
	return out
}

// AllImages reports whether items is non-empty and every entry has a
// supported extension. Existence is not checked.
func AllImages(items []string) bool {
	paths := Resolve(items)
	if len(paths) == 0 {
		return false
	}
	for _, p := range paths {
		if !codec.IsSupported(p) {
			return false
		}
	}
	return true
}

// ParseURIList splits a text/uri-list or a file manager clipboard payload
// into items. Comment lines and the "copy"/"cut" verb line are skipped.
func ParseURIList(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		switch {
		case line == "", strings.HasPrefix(line, "#"):
			continue
		case line == "copy", line == "cut", strings.HasPrefix(line, "x-special/"):
			continue
		}
		items = append(items, line)
	}
	return items
}
