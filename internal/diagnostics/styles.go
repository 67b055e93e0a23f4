package diagnostics

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorError  = lipgloss.Color("#EF4444")
	colorAccent = lipgloss.Color("#F59E0B")
	colorMuted  = lipgloss.Color("#6B7280")
	colorOK     = lipgloss.Color("#10B981")
	colorPath   = lipgloss.Color("#06B6D4")
)

// styles groups the styles of one renderer
type styles struct {
	severity lipgloss.Style
	code     lipgloss.Style
	message  lipgloss.Style
	location lipgloss.Style
	gutter   lipgloss.Style
	caret    lipgloss.Style
	note     lipgloss.Style
	ok       lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		severity: r.NewStyle().Bold(true).Foreground(colorError),
		code:     r.NewStyle().Foreground(colorError),
		message:  r.NewStyle().Bold(true),
		location: r.NewStyle().Foreground(colorPath),
		gutter:   r.NewStyle().Foreground(colorMuted),
		caret:    r.NewStyle().Bold(true).Foreground(colorError),
		note:     r.NewStyle().Foreground(colorAccent),
		ok:       r.NewStyle().Foreground(colorOK),
	}
}
