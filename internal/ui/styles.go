package ui

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	CountStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	WarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	DimText = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))
)
