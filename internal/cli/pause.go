package cli

import (
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const pausePrompt = "Press any key to exit..."

// pauseModel waits for a single key press.
type pauseModel struct {
	prompt string
}

func (m pauseModel) Init() tea.Cmd {
	return nil
}

func (m pauseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return m, tea.Quit
	}
	return m, nil
}

func (m pauseModel) View() string {
	return m.prompt + "\n"
}

// stdinIsTerminal reports whether a key press can be read from stdin.
func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// shouldPause reports whether to hold the console open after a batch.
func shouldPause() bool {
	return !noPause && settings.GetPause() && stdinIsTerminal()
}

// pause waits for a key press when running interactively, so a console
// window opened from a shortcut stays up long enough to read the results.
func pause(cmd *cobra.Command) error {
	if !shouldPause() {
		return nil
	}
	return waitForKey(cmd, os.Stdin, cmd.OutOrStdout())
}

func waitForKey(cmd *cobra.Command, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(
		pauseModel{prompt: pausePrompt},
		tea.WithContext(cmd.Context()),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
