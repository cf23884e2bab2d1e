package tui

import "github.com/charmbracelet/lipgloss"

// Dark palette.
var (
	colorAccent  = lipgloss.Color("#6366F1")
	colorMuted   = lipgloss.Color("#9CA3AF")
	colorText    = lipgloss.Color("#F3F4F6")
	colorSuccess = lipgloss.Color("#4ADE80")
	colorError   = lipgloss.Color("#EF4444")
)

// Styles groups the lipgloss styles used by the calculator view.
type Styles struct {
	Title     lipgloss.Style
	Section   lipgloss.Style
	Row       lipgloss.Style
	Active    lipgloss.Style
	Focused   lipgloss.Style
	Muted     lipgloss.Style
	Bailable  lipgloss.Style
	Error     lipgloss.Style
	Citation  lipgloss.Style
	Help      lipgloss.Style
	Container lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true).
			MarginBottom(1),

		Section: lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			MarginTop(1),

		Row: lipgloss.NewStyle().
			Foreground(colorText).
			PaddingLeft(2),

		Active: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(colorAccent).
			PaddingLeft(2),

		Focused: lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(colorMuted),

		Bailable: lipgloss.NewStyle().
			Foreground(colorSuccess),

		Error: lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true),

		Citation: lipgloss.NewStyle().
			Foreground(colorMuted).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(colorAccent).
			PaddingLeft(1),

		Help: lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1),

		Container: lipgloss.NewStyle().
			Padding(1, 2),
	}
}
