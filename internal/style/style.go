// Package style holds the shared lipgloss styles for terminal output.
package style

import "github.com/charmbracelet/lipgloss"

var (
	// Bold marks successes and important tokens.
	Bold = lipgloss.NewStyle().Bold(true)

	// Dim renders secondary hints such as follow-up commands.
	Dim = lipgloss.NewStyle().Faint(true)

	// Name renders shortcut names in listings.
	Name = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
)
