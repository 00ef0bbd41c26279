package ui

import "github.com/charmbracelet/lipgloss"

// Accent colors used by the lipgloss styles.
var (
	accentColor = lipgloss.AdaptiveColor{Light: "#005FAF", Dark: "#FF8C00"}
	dimColor    = lipgloss.AdaptiveColor{Light: "#585858", Dark: "#8A8A8A"}
)

// SummaryStyle returns the framed style for the execution summary.
// With the no-color theme it renders a plain border without colors.
func SummaryStyle() lipgloss.Style {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if GetCurrentTheme().Name == NoColorTheme.Name {
		return style
	}
	return style.BorderForeground(accentColor)
}

// LabelStyle returns the style for summary labels.
func LabelStyle() lipgloss.Style {
	if GetCurrentTheme().Name == NoColorTheme.Name {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(dimColor)
}
