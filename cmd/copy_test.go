package cmd

import (
	"context"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/zhubert/pixclip/internal/clipboard"
	pcerrors "github.com/zhubert/pixclip/internal/errors"
	"github.com/zhubert/pixclip/internal/process"
)

func TestDoCopy(t *testing.T) {
	env := newTestEnv(t, false)
	src := env.writePNG(t, "cat.png")

	res, err := env.app.doCopy([]string{src}, true)
	if err != nil {
		t.Fatalf("doCopy() error = %v", err)
	}
	if res.Path != src {
		t.Errorf("copied %q, want %q", res.Path, src)
	}
	if !env.app.clip.HasImage() {
		t.Error("clipboard should hold an image")
	}
	if !strings.Contains(env.out.String(), src) || !strings.Contains(env.out.String(), "3x2") {
		t.Errorf("output = %q", env.out.String())
	}

	wantHeld := 0
	if process.NeedsHolder() {
		wantHeld = 1
	}
	if len(env.held) != wantHeld {
		t.Errorf("holders started = %d, want %d", len(env.held), wantHeld)
	}
}

func TestCopyItems(t *testing.T) {
	list := "x-special/nautilus-clipboard\ncopy\nfile:///tmp/a.png\n  /tmp/b.jpg  \n"

	tests := []struct {
		name      string
		args      []string
		fromStdin bool
		want      []string
	}{
		{"args only", []string{"/x.png"}, false, []string{"/x.png"}},
		{"stdin list appended", []string{"/x.png"}, true, []string{"/x.png", "file:///tmp/a.png", "/tmp/b.jpg"}},
		{"stdin only", nil, true, []string{"file:///tmp/a.png", "/tmp/b.jpg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := copyItems(tt.args, strings.NewReader(list), tt.fromStdin)
			if err != nil {
				t.Fatalf("copyItems() error = %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("copyItems() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDoCopy_NoPersist(t *testing.T) {
	tests := []struct {
		name    string
		persist bool
		config  bool
		holder  string
	}{
		{"flag off", false, true, ""},
		{"config off", true, false, ""},
		{"inside holder", true, true, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, false)
			env.app.cfg.Persist = &tt.config
			t.Setenv(process.HoldEnv, tt.holder)
			src := env.writePNG(t, "cat.png")

			if _, err := env.app.doCopy([]string{src}, tt.persist); err != nil {
				t.Fatalf("doCopy() error = %v", err)
			}
			if len(env.held) != 0 {
				t.Errorf("holder started for %v", env.held)
			}
		})
	}
}

func TestDoCopy_MissingFileLeavesClipboard(t *testing.T) {
	env := newTestEnv(t, false)
	env.board.Write(clipboard.FormatText, []byte("keep me"))

	_, err := env.app.doCopy([]string{filepath.Join(env.dir, "gone.png")}, true)
	if !pcerrors.Is(err, pcerrors.KindNotFound) {
		t.Fatalf("doCopy() error = %v, want KindNotFound", err)
	}
	if got := env.app.clip.ReadText(); got != "keep me" {
		t.Errorf("clipboard = %q, want unchanged", got)
	}
	if len(env.held) != 0 {
		t.Error("no holder should start after a failed copy")
	}
}

func TestDoCopy_Notifications(t *testing.T) {
	env := newTestEnv(t, false)
	env.app.cfg.Notifications = true
	src := env.writePNG(t, "dog.png")

	if _, err := env.app.doCopy([]string{src}, false); err != nil {
		t.Fatalf("doCopy() error = %v", err)
	}
	if _, err := env.app.doCopy([]string{filepath.Join(env.dir, "readme.txt")}, false); err == nil {
		t.Fatal("expected error for a non-image selection")
	}

	if len(env.notes) != 2 {
		t.Fatalf("notifications = %v, want 2", env.notes)
	}
	if env.notes[0] != "Copied dog.png to the clipboard" {
		t.Errorf("success note = %q", env.notes[0])
	}
}

func TestDoCopy_NotificationsOff(t *testing.T) {
	env := newTestEnv(t, false)
	src := env.writePNG(t, "dog.png")

	if _, err := env.app.doCopy([]string{src}, false); err != nil {
		t.Fatalf("doCopy() error = %v", err)
	}
	if len(env.notes) != 0 {
		t.Errorf("notifications sent while disabled: %v", env.notes)
	}
}

func TestHold_ExitsWhenClipboardReplaced(t *testing.T) {
	env := newTestEnv(t, false)
	src := env.writePNG(t, "cat.png")

	done := make(chan error, 1)
	go func() { done <- env.app.hold(context.Background(), src) }()

	deadline := time.Now().Add(5 * time.Second)
	for env.board.Writes() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("holder never wrote the clipboard")
		}
		time.Sleep(5 * time.Millisecond)
	}
	env.board.Write(clipboard.FormatText, []byte("something else"))

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("hold() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("holder did not exit after the clipboard changed")
	}
}

func TestHold_ExitsOnCancel(t *testing.T) {
	env := newTestEnv(t, false)
	src := env.writePNG(t, "cat.png")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := env.app.hold(ctx, src); err != nil {
		t.Errorf("hold() error = %v", err)
	}
	if !env.app.clip.HasImage() {
		t.Error("holder should have copied the image before stopping")
	}
}

func TestHold_MissingFile(t *testing.T) {
	env := newTestEnv(t, false)

	err := env.app.hold(context.Background(), filepath.Join(env.dir, "gone.png"))
	if !pcerrors.Is(err, pcerrors.KindNotFound) {
		t.Errorf("hold() error = %v, want KindNotFound", err)
	}
}
