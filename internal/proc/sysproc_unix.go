//go:build unix

package proc

import (
	"os/exec"
	"syscall"
)

// detachAttr places the child in a new session so closing our terminal
// does not take it down.
func detachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}

func launchCommand(path string) *exec.Cmd {
	return exec.Command(path)
}
