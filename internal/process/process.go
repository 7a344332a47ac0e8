// Package process starts and finds the detached processes that keep copied
// images on the clipboard.
//
// On X11 and Wayland the clipboard is served by the program that set it, so
// the image disappears when that program exits. A holder is a second copy of
// pixclip, started with HoldFlag, that owns the clipboard until another
// program replaces its contents.
package process

import (
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/zhubert/pixclip/internal/logger"
)

// HoldFlag marks a pixclip command line as a holder.
const HoldFlag = "--hold"

// HoldEnv is set in a holder's environment so it never spawns another holder.
const HoldEnv = "PIXCLIP_HOLDER"

// Holder is a running holder process.
type Holder struct {
	PID     int    // Process ID
	Command string // Full command line
	Path    string // Image the holder serves
}

// NeedsHolder reports whether clipboard contents die with their owner on
// this platform. macOS and Windows copy the data into the system.
func NeedsHolder() bool {
	switch runtime.GOOS {
	case "darwin", "windows":
		return false
	default:
		return true
	}
}

// IsHolder reports whether the current process was started as a holder.
func IsHolder() bool {
	return os.Getenv(HoldEnv) == "1"
}

// StartHolder launches exe with args in its own session and returns its PID
// without waiting for it.
func StartHolder(exe string, args ...string) (int, error) {
	log := logger.ComponentLogger("process")

	cmd := exec.Command(exe, args...)
	cmd.Env = append(os.Environ(), HoldEnv+"=1")
	cmd.SysProcAttr = detachedAttr()
	if err := cmd.Start(); err != nil {
		log.Error("failed to start holder", "exe", exe, "error", err)
		return 0, err
	}
	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		log.Warn("failed to release holder", "pid", pid, "error", err)
	}
	log.Info("holder started", "pid", pid, "args", strings.Join(args, " "))
	return pid, nil
}

// FindHolders lists running holder processes.
func FindHolders() ([]Holder, error) {
	var holders []Holder
	log := logger.ComponentLogger("process")

	if runtime.GOOS == "windows" {
		return holders, nil
	}

	cmd := exec.Command("pgrep", "-f", "pixclip.*"+HoldFlag)
	output, err := cmd.Output()
	if err != nil {
		// pgrep returns exit code 1 if no processes found
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return holders, nil
		}
		return nil, err
	}

	self := os.Getpid()
	for _, pidStr := range strings.Fields(string(output)) {
		pid, err := strconv.Atoi(strings.TrimSpace(pidStr))
		if err != nil || pid == self {
			continue
		}

		psOutput, err := exec.Command("ps", "-p", pidStr, "-o", "args=").Output()
		if err != nil {
			continue
		}
		command := strings.TrimSpace(string(psOutput))
		holders = append(holders, Holder{
			PID:     pid,
			Command: command,
			Path:    extractHoldPath(command),
		})
	}

	log.Debug("found holders", "count", len(holders))
	return holders, nil
}

// extractHoldPath returns the image argument that follows HoldFlag.
func extractHoldPath(cmdLine string) string {
	_, after, ok := strings.Cut(cmdLine, HoldFlag)
	if !ok {
		return ""
	}
	rest := strings.TrimLeft(after, " =")
	// Paths may contain spaces; everything after the flag is the argument list.
	return strings.TrimSpace(rest)
}

// KillProcess asks a process to terminate.
func KillProcess(pid int) error {
	switch runtime.GOOS {
	case "windows":
		return exec.Command("taskkill", "/PID", strconv.Itoa(pid)).Run()
	default:
		return exec.Command("kill", strconv.Itoa(pid)).Run()
	}
}

// StopHolders terminates every running holder and returns how many stopped.
func StopHolders() (int, error) {
	holders, err := FindHolders()
	if err != nil {
		return 0, err
	}

	log := logger.ComponentLogger("process")
	stopped := 0
	for _, h := range holders {
		log.Info("stopping holder", "pid", h.PID, "path", h.Path)
		if err := KillProcess(h.PID); err != nil {
			log.Error("failed to stop holder", "pid", h.PID, "error", err)
			continue
		}
		stopped++
	}
	return stopped, nil
}
