package tui

import "github.com/charmbracelet/lipgloss"

// accent matches the web page's active trigger colour
const accent = lipgloss.Color("#3B00B9")

type styles struct {
	title    lipgloss.Style
	count    lipgloss.Style
	clear    lipgloss.Style
	active   lipgloss.Style
	inactive lipgloss.Style
	cursor   lipgloss.Style
	help     lipgloss.Style
	course   lipgloss.Style
	meta     lipgloss.Style
	panel    lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		count:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		clear:    lipgloss.NewStyle().Foreground(accent).Underline(true),
		active:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		inactive: lipgloss.NewStyle(),
		cursor:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		help:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		course:   lipgloss.NewStyle().Bold(true),
		meta:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		panel:    lipgloss.NewStyle().Bold(true).Foreground(accent),
	}
}
