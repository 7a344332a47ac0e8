package cmd

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/zhubert/pixclip/internal/bridge"
	"github.com/zhubert/pixclip/internal/clipboard"
	"github.com/zhubert/pixclip/internal/config"
	"github.com/zhubert/pixclip/internal/menu"
	"github.com/zhubert/pixclip/internal/notification"
	"github.com/zhubert/pixclip/internal/process"
)

// fakePrompter answers prompts from canned values and records the questions.
type fakePrompter struct {
	dest        string
	destErr     error
	destInitial string
	destCalls   int

	overwrite      bool
	overwriteErr   error
	overwritePath  string
	overwriteCalls int

	action    menu.Action
	actionErr error
	offered   menu.Item
}

func (f *fakePrompter) Destination(initial string) (string, error) {
	f.destCalls++
	f.destInitial = initial
	return f.dest, f.destErr
}

func (f *fakePrompter) ConfirmOverwrite(path string) (bool, error) {
	f.overwriteCalls++
	f.overwritePath = path
	return f.overwrite, f.overwriteErr
}

func (f *fakePrompter) ChooseAction(top menu.Item) (menu.Action, error) {
	f.offered = top
	return f.action, f.actionErr
}

type testEnv struct {
	app    *app
	board  *clipboard.Memory
	prompt *fakePrompter
	out    *bytes.Buffer
	errOut *bytes.Buffer
	dir    string
	held   []string
	notes  []string
}

// newTestEnv builds an app over an in-memory clipboard with prompts,
// holders and notifications stubbed out.
func newTestEnv(t *testing.T, interactive bool) *testEnv {
	t.Helper()
	env := &testEnv{
		board:  clipboard.NewMemory(),
		prompt: &fakePrompter{},
		out:    &bytes.Buffer{},
		errOut: &bytes.Buffer{},
		dir:    t.TempDir(),
	}

	cfg := config.DefaultConfig()
	cfg.PasteDir = env.dir
	clip := clipboard.New(env.board)
	env.app = &app{
		cfg:    cfg,
		clip:   clip,
		bridge: bridge.New(clip, bridge.Options{JPEGQuality: cfg.JPEGQuality, PasteName: cfg.PasteName}),
		prompt: env.prompt,
		out:    env.out,
		errOut: env.errOut,
	}

	t.Setenv(process.HoldEnv, "")

	origInteractive, origStart := isInteractive, startHolder
	isInteractive = func() bool { return interactive }
	startHolder = func(path string) (int, error) {
		env.held = append(env.held, path)
		return 99999, nil
	}
	notification.SetNotifier(func(title, message string, icon any) error {
		env.notes = append(env.notes, message)
		return nil
	})
	t.Cleanup(func() {
		isInteractive, startHolder = origInteractive, origStart
		notification.ResetNotifier()
	})
	return env
}

func (e *testEnv) writePNG(t *testing.T, name string) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(80 * x), G: uint8(100 * y), B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(e.dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// putImage places an image on the clipboard by copying a file.
func (e *testEnv) putImage(t *testing.T) {
	t.Helper()
	src := e.writePNG(t, "source.png")
	if _, err := e.app.bridge.Copy([]string{src}); err != nil {
		t.Fatalf("Copy() error = %v", err)
	}
}
