package tui

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.AdaptiveColor{Light: "4", Dark: "12"}
	dimColor    = lipgloss.AdaptiveColor{Light: "240", Dark: "245"}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Width(18)
	faintStyle = lipgloss.NewStyle().
			Foreground(dimColor)
	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "3", Dark: "11"})
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})
	selectedUnitStyle = lipgloss.NewStyle().
				Bold(true).
				Reverse(true).
				Padding(0, 1)
	unitStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			Padding(0, 1)
	massStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "10"})
)

// cardStyle returns the bordered panel used for the compound and the mass.
func cardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(0, 1)
}
