package cli

import "github.com/charmbracelet/lipgloss"

var (
	validStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	invalidStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	violationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			PaddingLeft(2)

	kindNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Width(24)

	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
