package programs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tessro/startstream/internal/proc"
)

// DefaultMarker is the executable that identifies an OBS install directory.
const DefaultMarker = "obs64.exe"

// DefaultKillTimeout bounds the wait for one killed process to exit.
const DefaultKillTimeout = 10 * time.Second

// Options configures a Manager.
type Options struct {
	// ListPath is the program list file.
	ListPath string
	// Marker is the known executable looked up inside each configured path.
	Marker string
	// KillTimeout bounds the wait for each killed process to exit.
	KillTimeout time.Duration
}

// Manager opens and closes the programs named in a program list.
// It holds no state between calls; every batch reloads the list.
type Manager struct {
	ctl         proc.Controller
	listPath    string
	marker      string
	killTimeout time.Duration
}

// New creates a Manager that acts through ctl.
func New(ctl proc.Controller, opts Options) *Manager {
	if opts.Marker == "" {
		opts.Marker = DefaultMarker
	}
	if opts.KillTimeout <= 0 {
		opts.KillTimeout = DefaultKillTimeout
	}
	return &Manager{
		ctl:         ctl,
		listPath:    opts.ListPath,
		marker:      opts.Marker,
		killTimeout: opts.KillTimeout,
	}
}

// ListPath returns the program list file this manager loads.
func (m *Manager) ListPath() string {
	return m.listPath
}

// Programs loads the program list. See LoadProgramList.
func (m *Manager) Programs() ([]string, error) {
	return LoadProgramList(m.listPath)
}

// markerIn returns the marker executable inside path and whether it exists
// as a regular file.
func (m *Manager) markerIn(path string) (string, bool) {
	exe := filepath.Join(path, m.marker)
	info, err := os.Stat(exe)
	return exe, err == nil && info.Mode().IsRegular()
}

// ResolveLaunch returns how a program entry is started: the marker inside the
// directory with the directory as working directory, or the path itself.
func (m *Manager) ResolveLaunch(path string) proc.Command {
	if exe, ok := m.markerIn(path); ok {
		return proc.Command{Path: exe, Dir: path}
	}
	return proc.Command{Path: path}
}

// DeriveProcessName returns the process name a program entry runs under.
func (m *Manager) DeriveProcessName(path string) string {
	if _, ok := m.markerIn(path); ok {
		return trimExt(m.marker)
	}
	return trimExt(filepath.Base(path))
}

func trimExt(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// OpenPrograms starts every configured program in list order.
// A failure to start one entry is recorded and the rest are still attempted.
func (m *Manager) OpenPrograms(ctx context.Context) *Report {
	programs, loadErr := m.Programs()
	report := &Report{Action: ActionOpen, Source: m.listPath, LoadErr: loadErr}

	for _, path := range programs {
		report.Results = append(report.Results, m.open(ctx, path))
	}

	slog.Info("open batch finished",
		"source", m.listPath,
		"programs", len(programs),
		"started", report.Count(StatusStarted),
		"failed", report.Failures(),
	)
	return report
}

func (m *Manager) open(ctx context.Context, path string) Result {
	cmd := m.ResolveLaunch(path)
	res := Result{Path: path, Target: cmd.Path}

	if err := ctx.Err(); err != nil {
		res.Status = StatusFailed
		res.Err = err
		return res
	}

	pid, err := m.ctl.Spawn(ctx, cmd)
	if err != nil {
		slog.Warn("failed to start program", "path", path, "target", cmd.Path, "error", err)
		res.Status = StatusFailed
		res.Err = err
		return res
	}

	slog.Info("started program", "path", path, "target", cmd.Path, "dir", cmd.Dir, "pid", pid)
	res.Status = StatusStarted
	res.PID = pid
	return res
}

// ClosePrograms kills the running processes of every configured program.
// Each entry is handled independently; failures never stop the batch.
func (m *Manager) ClosePrograms(ctx context.Context) *Report {
	programs, loadErr := m.Programs()
	report := &Report{Action: ActionClose, Source: m.listPath, LoadErr: loadErr}

	for _, path := range programs {
		name := m.DeriveProcessName(path)
		res := m.close(ctx, name)
		res.Path = path
		report.Results = append(report.Results, res)
	}

	slog.Info("close batch finished",
		"source", m.listPath,
		"programs", len(programs),
		"closed", report.Count(StatusClosed),
		"not_running", report.Count(StatusNotRunning),
		"failed", report.Failures(),
	)
	return report
}

// Kill runs KillProcess for a single name and reports it like a batch.
func (m *Manager) Kill(ctx context.Context, name string) *Report {
	res := m.close(ctx, name)
	res.Path = name
	return &Report{Action: ActionKill, Results: []Result{res}}
}

func (m *Manager) close(ctx context.Context, name string) Result {
	res := Result{Target: name}

	terms, err := m.KillProcess(ctx, name)
	if err != nil {
		res.Status = StatusFailed
		res.Err = err
		return res
	}

	res.Terminations = terms
	res.Status, res.Err = summarize(terms)
	return res
}

// KillProcess terminates every running process named name and waits for each
// to exit, bounded by the kill timeout. No match is not an error. A failure
// on one process does not stop the others.
func (m *Manager) KillProcess(ctx context.Context, name string) ([]Termination, error) {
	matches, err := m.ctl.FindByName(ctx, name)
	if err != nil {
		slog.Warn("failed to list processes", "name", name, "error", err)
		return nil, fmt.Errorf("find %s: %w", name, err)
	}

	if len(matches) == 0 {
		slog.Info("no running process found", "name", name)
		return nil, nil
	}

	terms := make([]Termination, 0, len(matches))
	for _, p := range matches {
		terms = append(terms, m.terminate(ctx, name, p))
	}
	return terms, nil
}

func (m *Manager) terminate(ctx context.Context, name string, p proc.Process) Termination {
	t := Termination{PID: p.PID}

	tctx, cancel := context.WithTimeout(ctx, m.killTimeout)
	err := m.ctl.Terminate(tctx, p.PID)
	cancel()

	switch {
	case err == nil:
		slog.Info("closed process", "name", name, "pid", p.PID)
		t.Status = StatusClosed
	case errors.Is(err, proc.ErrNotFound):
		// Exited between lookup and kill.
		slog.Debug("process already gone", "name", name, "pid", p.PID)
		t.Status = StatusClosed
	case errors.Is(err, proc.ErrTimeout):
		slog.Warn("process did not terminate", "name", name, "pid", p.PID, "timeout", m.killTimeout)
		t.Status = StatusTimedOut
		t.Err = err
	default:
		slog.Warn("failed to close process", "name", name, "pid", p.PID, "error", err)
		t.Status = StatusFailed
		t.Err = err
	}
	return t
}
