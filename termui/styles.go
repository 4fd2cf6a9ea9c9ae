// Package termui drives a light controller from a terminal.
package termui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("#F59E0B") // Amber
	dimColor     = lipgloss.Color("#6B7280") // Gray
	offColor     = lipgloss.Color("#EF4444") // Red
	onColor      = lipgloss.Color("#10B981") // Green
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1)

	activeSectionStyle = sectionStyle.
				Foreground(primaryColor)

	rowStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(primaryColor)

	statusStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			MarginTop(1)

	onStyle  = lipgloss.NewStyle().Foreground(onColor)
	offStyle = lipgloss.NewStyle().Foreground(offColor)
)
