package report

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	successColor = lipgloss.Color("#10B981") // Green
	mutedColor   = lipgloss.Color("#6B7280") // Gray
	errorColor   = lipgloss.Color("#EF4444") // Red
	warningColor = lipgloss.Color("#F59E0B") // Amber/Yellow
)

type styles struct {
	success lipgloss.Style
	warning lipgloss.Style
	error   lipgloss.Style
	muted   lipgloss.Style
	summary lipgloss.Style
}

// newStyles binds the palette to a renderer so color output follows the
// destination writer's capabilities.
func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		success: r.NewStyle().Foreground(successColor),
		warning: r.NewStyle().Foreground(warningColor),
		error:   r.NewStyle().Foreground(errorColor),
		muted:   r.NewStyle().Foreground(mutedColor),
		summary: r.NewStyle().Bold(true),
	}
}
