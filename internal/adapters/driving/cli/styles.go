package cli

import "github.com/charmbracelet/lipgloss"

// Output styles for the ask command.
var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	sourceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	chunkLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
)
