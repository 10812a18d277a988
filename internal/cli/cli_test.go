package cli

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tessro/startstream/internal/config"
	"github.com/tessro/startstream/internal/paths"
	"github.com/tessro/startstream/internal/proc"
	"github.com/tessro/startstream/internal/report"
)

type fakeController struct {
	spawned    []proc.Command
	failPaths  map[string]bool
	running    map[string][]proc.Process
	terminated []int32
}

func (f *fakeController) Spawn(ctx context.Context, cmd proc.Command) (int, error) {
	f.spawned = append(f.spawned, cmd)
	if f.failPaths[cmd.Path] {
		return 0, errors.New("executable file not found")
	}
	return 4242, nil
}

func (f *fakeController) FindByName(ctx context.Context, name string) ([]proc.Process, error) {
	return f.running[name], nil
}

func (f *fakeController) Terminate(ctx context.Context, pid int32) error {
	f.terminated = append(f.terminated, pid)
	return nil
}

// runCLI executes the root command with args against a fake controller.
func runCLI(t *testing.T, ctl *fakeController, args ...string) (string, error) {
	t.Helper()

	t.Setenv(paths.EnvBaseDir, t.TempDir())
	t.Setenv(paths.EnvProgramsPath, "")

	prevLogger := slog.Default()
	prevController := newController
	t.Cleanup(func() {
		slog.SetDefault(prevLogger)
		newController = prevController
		configPath, programsPath, logLevel = "", "", ""
		killTimeout = 0
		noPause = false
		settings = nil
	})
	newController = func() proc.Controller { return ctl }

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--no-pause"))

	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpenCommand(t *testing.T) {
	list := writeFile(t, "Programs.json", `["/opt/missing","/usr/bin/discord"]`)
	ctl := &fakeController{failPaths: map[string]bool{"/opt/missing": true}}

	out, err := runCLI(t, ctl, "open", "--programs", list)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if len(ctl.spawned) != 2 {
		t.Errorf("spawned %d, want 2", len(ctl.spawned))
	}
	for _, want := range []string{
		"Failed to start /opt/missing: executable file not found",
		"Started: /usr/bin/discord",
		report.Summary,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestOpenCommandMissingList(t *testing.T) {
	ctl := &fakeController{}
	missing := filepath.Join(t.TempDir(), "Programs.json")

	out, err := runCLI(t, ctl, "open", "--programs", missing)
	if err != nil {
		t.Fatalf("open should not fail on a missing list: %v", err)
	}
	if !strings.Contains(out, "No programs found in "+missing) {
		t.Errorf("unexpected output:\n%s", out)
	}
	if len(ctl.spawned) != 0 {
		t.Errorf("spawned %d, want 0", len(ctl.spawned))
	}
}

func TestCloseCommand(t *testing.T) {
	list := writeFile(t, "Programs.json", `["/usr/bin/discord","/opt/chat.exe"]`)
	ctl := &fakeController{running: map[string][]proc.Process{
		"discord": {{PID: 7, Name: "discord"}},
	}}

	out, err := runCLI(t, ctl, "close", "--programs", list)
	if err != nil {
		t.Fatalf("close: %v", err)
	}

	if len(ctl.terminated) != 1 || ctl.terminated[0] != 7 {
		t.Errorf("terminated = %v, want [7]", ctl.terminated)
	}
	for _, want := range []string{
		"Closed process: discord (pid 7)",
		"No running process found for: chat",
		report.Summary,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestKillCommand(t *testing.T) {
	ctl := &fakeController{running: map[string][]proc.Process{
		"obs64": {{PID: 1}, {PID: 2}},
	}}

	out, err := runCLI(t, ctl, "kill", "obs64")
	if err != nil {
		t.Fatalf("kill: %v", err)
	}
	if len(ctl.terminated) != 2 {
		t.Errorf("terminated = %v, want 2 pids", ctl.terminated)
	}
	if !strings.Contains(out, "Closed process: obs64 (pid 2)") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestKillCommandRequiresName(t *testing.T) {
	if _, err := runCLI(t, &fakeController{}, "kill"); err == nil {
		t.Fatal("expected error without a name")
	}
}

func TestListCommandUsesSettings(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "streamlabs.exe"), nil, 0755); err != nil {
		t.Fatal(err)
	}
	list := writeFile(t, "programs.yaml", "- "+dir+"\n")
	cfg := writeFile(t, "config.toml", `
marker = "streamlabs.exe"
programs_file = "`+filepath.ToSlash(list)+`"
`)

	out, err := runCLI(t, &fakeController{}, "list", "--config", cfg)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{
		"1 programs in",
		"(in " + dir + ")",
		"close: streamlabs",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestInvalidSettingsFails(t *testing.T) {
	cfg := writeFile(t, "config.toml", `kill_timeout = "later"`)

	_, err := runCLI(t, &fakeController{}, "open", "--config", cfg)
	if !errors.Is(err, config.ErrInvalidKillTimeout) {
		t.Errorf("error = %v, want ErrInvalidKillTimeout", err)
	}
}

func TestInvalidLogLevelFails(t *testing.T) {
	_, err := runCLI(t, &fakeController{}, "version", "--log-level", "loud")
	if !errors.Is(err, config.ErrInvalidLogLevel) {
		t.Errorf("error = %v, want ErrInvalidLogLevel", err)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, &fakeController{}, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "startstream dev") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestNewManagerPrecedence(t *testing.T) {
	t.Setenv(paths.EnvProgramsPath, "")
	defer func() {
		settings = nil
		programsPath = ""
		killTimeout = 0
	}()

	settings = &config.GlobalConfig{ProgramsFile: "from-settings.json", KillTimeout: "3s"}
	if got := newManager().ListPath(); got != "from-settings.json" {
		t.Errorf("ListPath() = %q, want settings value", got)
	}

	programsPath = "from-flag.json"
	killTimeout = time.Second
	if got := newManager().ListPath(); got != "from-flag.json" {
		t.Errorf("ListPath() = %q, want flag value", got)
	}
}

func TestPauseModel(t *testing.T) {
	m := pauseModel{prompt: pausePrompt}

	if _, cmd := m.Update(tea.WindowSizeMsg{Width: 80}); cmd != nil {
		t.Error("non-key message should not quit")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if cmd == nil {
		t.Fatal("key press should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("key press should return tea.Quit")
	}

	if !strings.Contains(m.View(), pausePrompt) {
		t.Errorf("View() = %q", m.View())
	}
}

func TestShouldPauseRespectsFlagAndSettings(t *testing.T) {
	defer func() {
		noPause = false
		settings = nil
	}()

	noPause = true
	if shouldPause() {
		t.Error("--no-pause should disable the pause")
	}

	noPause = false
	off := false
	settings = &config.GlobalConfig{Pause: &off}
	if shouldPause() {
		t.Error("pause = false in settings should disable the pause")
	}
}
