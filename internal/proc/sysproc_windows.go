//go:build windows

package proc

import (
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
)

// detachedProcess is DETACHED_PROCESS from the Win32 API.
const detachedProcess = 0x00000008

func detachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP | detachedProcess,
	}
}

var executableExts = map[string]bool{
	".exe": true,
	".com": true,
	".bat": true,
	".cmd": true,
}

// launchCommand runs executables directly and hands anything else (shortcuts,
// documents) to the shell's file association via "start".
func launchCommand(path string) *exec.Cmd {
	if executableExts[strings.ToLower(filepath.Ext(path))] {
		return exec.Command(path)
	}
	return exec.Command("cmd", "/c", "start", "", path)
}
