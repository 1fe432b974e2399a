package cli

import "github.com/charmbracelet/lipgloss"

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4dca7d"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)
