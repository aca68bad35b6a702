package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	box      lipgloss.Style
	title    lipgloss.Style
	help     lipgloss.Style
	item     lipgloss.Style
	selected lipgloss.Style
	paused   lipgloss.Style
	pauseTag lipgloss.Style
	resumed  lipgloss.Style
	errorTag lipgloss.Style
	dim      lipgloss.Style
}

func newStyles(c Colors) styles {
	return styles{
		box: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#585858")). // Dark Gray
			Padding(0, 1),

		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")). // White
			Background(lipgloss.Color("#7D56F4")). // Purple
			Padding(0, 1),

		help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#767676")), // Dimmed Gray

		item: lipgloss.NewStyle().PaddingLeft(1),

		selected: lipgloss.NewStyle().
			PaddingLeft(1).
			Foreground(lipgloss.Color("#ffffaf")). // Light Yellow
			Background(lipgloss.Color("#5f00d7")), // Purple

		paused:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Paused)),
		pauseTag: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Paused)).Bold(true),
		resumed:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Running)).Bold(true),
		errorTag: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Error)).Bold(true),
		dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("#767676")),
	}
}
