// Package errors provides structured error types for pixclip.
// These errors provide context about what operation failed and where.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindPermission
	KindIO
	KindConfig
	KindClipboard
	KindCodec
	KindUnsupported
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindPermission:
		return "permission denied"
	case KindIO:
		return "I/O error"
	case KindConfig:
		return "configuration error"
	case KindClipboard:
		return "clipboard error"
	case KindCodec:
		return "codec error"
	case KindUnsupported:
		return "unsupported format"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for pixclip.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Selection and source file errors
func FileNotFound(path string) error {
	return E(Op("bridge.Copy"), KindNotFound, fmt.Sprintf("file %s does not exist", path))
}

func NoImageSelected(count int) error {
	return E(Op("bridge.Copy"), KindInvalid, fmt.Sprintf("none of the %d selected item(s) is a supported image", count))
}

// Clipboard errors
func ClipboardEmpty() error {
	return E(Op("bridge.Paste"), KindNotFound, "clipboard does not hold an image")
}

func ClipboardUnavailable(err error) error {
	return E(Op("clipboard.Init"), KindClipboard, "system clipboard is unavailable", err)
}

// Codec errors
func DecodeFailed(source string, err error) error {
	return E(Op("codec.Decode"), KindCodec, fmt.Sprintf("failed to decode %s", source), err)
}

func EncodeFailed(format string, err error) error {
	return E(Op("codec.Encode"), KindCodec, fmt.Sprintf("failed to encode image as %s", format), err)
}

func UnsupportedFormat(name string) error {
	return E(Op("codec.Lookup"), KindUnsupported, fmt.Sprintf("no codec for %q", name))
}

// Destination errors
func WriteFailed(path string, err error) error {
	return E(Op("bridge.Paste"), KindIO, fmt.Sprintf("failed to write %s", path), err)
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}
