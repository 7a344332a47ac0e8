//go:build !windows

package process

import "syscall"

// detachedAttr puts the holder in a new session so closing the terminal
// does not hang it up.
func detachedAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
