// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"path/filepath"

	"github.com/gen2brain/beeep"
	"github.com/zhubert/pixclip/internal/logger"
)

// AppName is the notification title used by the helpers below.
const AppName = "pixclip"

// IconName is the freedesktop icon name shown next to notifications.
const IconName = "image"

// notifyFunc matches beeep.Notify and is swapped out in tests.
type notifyFunc func(title, message string, icon any) error

var notify notifyFunc = beeep.Notify

// SetNotifier replaces the function used to deliver notifications.
func SetNotifier(fn func(title, message string, icon any) error) {
	notify = fn
}

// ResetNotifier restores beeep as the delivery function.
func ResetNotifier() {
	notify = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	logger.Debug("Notification: title=%q message=%q", title, message)
	err := notify(title, message, IconName)
	if err != nil {
		logger.Warn("Notification: failed to send: %v", err)
	}
	return err
}

// Copied reports that path is now on the clipboard.
func Copied(path string) error {
	return Send(AppName, "Copied "+filepath.Base(path)+" to the clipboard")
}

// Pasted reports that the clipboard image was saved to path.
func Pasted(path string) error {
	return Send(AppName, "Saved clipboard image as "+filepath.Base(path))
}

// Failed reports an aborted operation.
func Failed(err error) error {
	return Send(AppName, err.Error())
}
