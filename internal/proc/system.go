package proc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// DefaultPollInterval is how often Terminate checks whether a killed process is gone.
const DefaultPollInterval = 100 * time.Millisecond

// System is the Controller backed by the host OS.
type System struct {
	// PollInterval overrides DefaultPollInterval when positive.
	PollInterval time.Duration
}

// NewSystem creates a System controller.
func NewSystem() *System {
	return &System{PollInterval: DefaultPollInterval}
}

// Spawn starts cmd in its own session so it outlives startstream.
// The process handle is released immediately; no exit status is collected.
func (s *System) Spawn(ctx context.Context, c Command) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	cmd := launchCommand(c.Path)
	cmd.Dir = c.Dir
	cmd.SysProcAttr = detachAttr()

	if err := cmd.Start(); err != nil {
		return 0, err
	}

	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		slog.Debug("release process handle failed", "pid", pid, "error", err)
	}
	slog.Debug("spawned process", "path", c.Path, "dir", c.Dir, "pid", pid)
	return pid, nil
}

// FindByName enumerates running processes and returns those matching name.
func (s *System) FindByName(ctx context.Context, name string) ([]Process, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}

	var matches []Process
	for _, p := range procs {
		n, err := p.NameWithContext(ctx)
		if err != nil {
			// Processes can exit between listing and inspection.
			continue
		}
		if MatchName(n, name) {
			matches = append(matches, Process{PID: p.Pid, Name: n})
		}
	}
	return matches, nil
}

// Terminate kills the process and polls until it exits.
// Returns ErrTimeout if ctx's deadline passes first.
func (s *System) Terminate(ctx context.Context, pid int32) error {
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		if errors.Is(err, process.ErrorProcessNotRunning) {
			return fmt.Errorf("pid %d: %w", pid, ErrNotFound)
		}
		return fmt.Errorf("open pid %d: %w", pid, err)
	}

	if err := p.KillWithContext(ctx); err != nil {
		if exited(ctx, p) {
			return nil
		}
		return fmt.Errorf("kill pid %d: %w", pid, err)
	}

	return s.waitExit(ctx, p)
}

func (s *System) waitExit(ctx context.Context, p *process.Process) error {
	interval := s.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if exited(ctx, p) {
			return nil
		}
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return fmt.Errorf("pid %d: %w", p.Pid, ErrTimeout)
			}
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// exited reports whether p is gone. Zombies count as exited: they hold no
// resources and are waiting on a parent we do not control.
func exited(ctx context.Context, p *process.Process) bool {
	running, err := p.IsRunningWithContext(ctx)
	if err != nil || !running {
		return err == nil || errors.Is(err, process.ErrorProcessNotRunning)
	}
	status, err := p.StatusWithContext(ctx)
	if err != nil {
		return false
	}
	return slices.Contains(status, process.Zombie)
}
