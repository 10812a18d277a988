// Package proc is the process-control facility: spawning detached programs,
// finding running processes by name, and terminating them.
package proc

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
)

// Errors returned by process control operations.
var (
	ErrNotFound = errors.New("process not found")
	ErrTimeout  = errors.New("process did not terminate before the timeout")
)

// Command describes a program to spawn.
type Command struct {
	// Path is the executable or document to start.
	Path string
	// Dir is the working directory. Empty inherits ours.
	Dir string
}

// Process identifies a running process found by name.
type Process struct {
	PID  int32
	Name string
}

// Controller spawns, enumerates, and terminates OS processes.
type Controller interface {
	// Spawn starts the command detached and returns its PID.
	Spawn(ctx context.Context, cmd Command) (int, error)
	// FindByName returns every running process whose name matches.
	FindByName(ctx context.Context, name string) ([]Process, error)
	// Terminate kills the process and waits until it exits or ctx is done.
	Terminate(ctx context.Context, pid int32) error
}

// MatchName reports whether an OS process name refers to want.
// A trailing ".exe" on the OS name is ignored, so "obs64" matches "obs64.exe".
func MatchName(procName, want string) bool {
	if want == "" {
		return false
	}
	if procName == want {
		return true
	}
	ext := filepath.Ext(procName)
	return strings.EqualFold(ext, ".exe") && strings.TrimSuffix(procName, ext) == want
}
