package report

import "github.com/tessro/startstream/internal/proc"

// Entry describes how one configured program is handled.
type Entry struct {
	Path        string
	Launch      proc.Command
	ProcessName string
}

// PrintPrograms lists the configured programs from source.
func (p *Printer) PrintPrograms(source string, entries []Entry, loadErr error) {
	if loadErr != nil {
		p.line(p.styles.error, "Error loading configuration: %s", errText(loadErr))
	}
	if len(entries) == 0 {
		p.line(p.styles.warning, "No programs found in %s.", source)
		return
	}

	p.line(p.styles.summary, "%d programs in %s", len(entries), source)
	for _, e := range entries {
		p.line(p.styles.success, "%s", e.Path)
		if e.Launch.Dir != "" {
			p.line(p.styles.muted, "  start: %s (in %s)", e.Launch.Path, e.Launch.Dir)
		} else {
			p.line(p.styles.muted, "  start: %s", e.Launch.Path)
		}
		p.line(p.styles.muted, "  close: %s", e.ProcessName)
	}
}
