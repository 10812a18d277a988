// Package report renders batch results as human-readable console text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/tessro/startstream/internal/programs"
)

// MaxErrorWidth caps how much of an error message is shown per line.
const MaxErrorWidth = 160

// Summary is printed after every open or close batch.
const Summary = "All programs processed."

// Printer writes reports to a console.
type Printer struct {
	w      io.Writer
	styles styles
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		w:      w,
		styles: newStyles(lipgloss.NewRenderer(w)),
	}
}

// Print writes one line per result followed by a summary line.
func (p *Printer) Print(r *programs.Report) {
	if r.LoadErr != nil {
		p.line(p.styles.error, "Error loading configuration: %s", errText(r.LoadErr))
	}

	if r.Empty() && r.Action != programs.ActionKill {
		p.line(p.styles.warning, "No programs found in %s.", r.Source)
		return
	}

	for _, res := range r.Results {
		switch r.Action {
		case programs.ActionOpen:
			p.printOpen(res)
		default:
			p.printClose(res)
		}
	}

	p.line(p.styles.summary, "%s", Summary)
	if counts := p.counts(r); counts != "" {
		p.line(p.styles.muted, "%s", counts)
	}
}

func (p *Printer) printOpen(res programs.Result) {
	if res.Status == programs.StatusStarted {
		p.line(p.styles.success, "Started: %s", res.Path)
		return
	}
	p.line(p.styles.error, "Failed to start %s: %s", res.Path, errText(res.Err))
}

func (p *Printer) printClose(res programs.Result) {
	if res.Status == programs.StatusNotRunning {
		p.line(p.styles.muted, "No running process found for: %s", res.Target)
		return
	}

	if len(res.Terminations) == 0 {
		p.line(p.styles.error, "Failed to close %s: %s", res.Target, errText(res.Err))
		return
	}

	for _, t := range res.Terminations {
		switch t.Status {
		case programs.StatusClosed:
			p.line(p.styles.success, "Closed process: %s (pid %d)", res.Target, t.PID)
		case programs.StatusTimedOut:
			p.line(p.styles.warning, "Process did not terminate: %s (pid %d)", res.Target, t.PID)
		default:
			p.line(p.styles.error, "Failed to close %s (pid %d): %s", res.Target, t.PID, errText(t.Err))
		}
	}
}

func (p *Printer) counts(r *programs.Report) string {
	var parts []string
	add := func(n int, label string) {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, label))
		}
	}

	add(r.Count(programs.StatusStarted), "started")
	add(r.Count(programs.StatusClosed), "closed")
	add(r.Count(programs.StatusNotRunning), "not running")
	add(r.Count(programs.StatusTimedOut), "timed out")
	add(r.Count(programs.StatusFailed), "failed")

	return strings.Join(parts, ", ")
}

func (p *Printer) line(style lipgloss.Style, format string, args ...any) {
	fmt.Fprintln(p.w, style.Render(fmt.Sprintf(format, args...)))
}

// errText flattens joined errors onto one line and caps its width.
func errText(err error) string {
	if err == nil {
		return "unknown error"
	}
	msg := strings.ReplaceAll(err.Error(), "\n", "; ")
	return truncate.StringWithTail(msg, MaxErrorWidth, "…")
}
