package cmd

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/zhubert/pixclip/internal/process"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"lowercase y", "y\n", true},
		{"uppercase Y", "Y\n", true},
		{"lowercase yes", "yes\n", true},
		{"uppercase YES", "YES\n", true},
		{"mixed case Yes", "Yes\n", true},
		{"lowercase n", "n\n", false},
		{"lowercase no", "no\n", false},
		{"empty input", "\n", false},
		{"random text", "maybe\n", false},
		{"y with spaces", "  y  \n", true},
		{"yes with spaces", "  yes  \n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.input)
			result := confirm(reader, "Test?")
			if result != tt.expected {
				t.Errorf("confirm(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestConfirm_EOF(t *testing.T) {
	// Test with empty reader (simulates EOF)
	reader := strings.NewReader("")
	result := confirm(reader, "Test?")
	if result != false {
		t.Errorf("confirm(EOF) = %v, want false", result)
	}
}

func TestConfirm_ErrorReader(t *testing.T) {
	// Test with a reader that returns an error
	reader := &errorReader{}
	result := confirm(reader, "Test?")
	if result != false {
		t.Errorf("confirm(error) = %v, want false", result)
	}
}

// errorReader is a reader that always returns an error
type errorReader struct{}

func (e *errorReader) Read(p []byte) (n int, err error) {
	return 0, io.ErrUnexpectedEOF
}

// stubClean replaces the process and log hooks for one test.
func stubClean(t *testing.T, holders []process.Holder) (stopCalls, clearCalls *int) {
	t.Helper()
	origFind, origStop, origClear, origSkip := findHolders, stopHolders, clearLogs, skipConfirm
	t.Cleanup(func() {
		findHolders, stopHolders, clearLogs, skipConfirm = origFind, origStop, origClear, origSkip
	})

	stopCalls, clearCalls = new(int), new(int)
	findHolders = func() ([]process.Holder, error) { return holders, nil }
	stopHolders = func() (int, error) {
		*stopCalls++
		return len(holders), nil
	}
	clearLogs = func() (int, error) {
		*clearCalls++
		return 2, nil
	}
	return stopCalls, clearCalls
}

func TestRunClean_Confirmed(t *testing.T) {
	stops, clears := stubClean(t, []process.Holder{{PID: 4242, Path: "/home/u/cat.png"}})
	skipConfirm = false

	var out, errOut bytes.Buffer
	if err := runCleanWithReader(strings.NewReader("y\n"), &out, &errOut); err != nil {
		t.Fatalf("runCleanWithReader() error = %v", err)
	}

	if *stops != 1 || *clears != 1 {
		t.Errorf("stop calls = %d, clear calls = %d, want 1 and 1", *stops, *clears)
	}
	for _, want := range []string{"PID 4242", "/home/u/cat.png", "1 clipboard holder(s) stopped", "2 log file(s) removed"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunClean_Declined(t *testing.T) {
	stops, clears := stubClean(t, []process.Holder{{PID: 1}})
	skipConfirm = false

	var out, errOut bytes.Buffer
	if err := runCleanWithReader(strings.NewReader("n\n"), &out, &errOut); err != nil {
		t.Fatalf("runCleanWithReader() error = %v", err)
	}
	if *stops != 0 || *clears != 0 {
		t.Errorf("nothing should be cleaned after declining (stops=%d clears=%d)", *stops, *clears)
	}
	if !strings.Contains(out.String(), "Aborted.") {
		t.Errorf("output = %q, want Aborted.", out.String())
	}
}

func TestRunClean_SkipConfirmNoHolders(t *testing.T) {
	stops, clears := stubClean(t, nil)
	skipConfirm = true

	var out, errOut bytes.Buffer
	if err := runCleanWithReader(strings.NewReader(""), &out, &errOut); err != nil {
		t.Fatalf("runCleanWithReader() error = %v", err)
	}
	if *stops != 0 {
		t.Errorf("stopHolders called %d times with no holders", *stops)
	}
	if *clears != 1 {
		t.Errorf("clearLogs called %d times, want 1", *clears)
	}
}

func TestRunClean_FindErrorIsWarning(t *testing.T) {
	stubClean(t, nil)
	skipConfirm = true
	findHolders = func() ([]process.Holder, error) { return nil, errors.New("pgrep exploded") }

	var out, errOut bytes.Buffer
	if err := runCleanWithReader(strings.NewReader(""), &out, &errOut); err != nil {
		t.Fatalf("runCleanWithReader() error = %v", err)
	}
	if !strings.Contains(errOut.String(), "pgrep exploded") {
		t.Errorf("stderr = %q, want the find error", errOut.String())
	}
}

func TestRunClean_TruncatesLongPaths(t *testing.T) {
	long := "/home/u/" + strings.Repeat("nested/", 20) + "cat.png"
	stubClean(t, []process.Holder{{PID: 7, Path: long}})
	skipConfirm = true

	var out, errOut bytes.Buffer
	if err := runCleanWithReader(strings.NewReader(""), &out, &errOut); err != nil {
		t.Fatalf("runCleanWithReader() error = %v", err)
	}
	if strings.Contains(out.String(), long) {
		t.Error("long path should be truncated")
	}
	if !strings.Contains(out.String(), "…") {
		t.Errorf("output = %q, want a truncation marker", out.String())
	}
}
