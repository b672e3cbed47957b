// Package ui provides the interactive bitmap viewer for figsearch.
package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds the viewer's lipgloss styles.
type Styles struct {
	Header    lipgloss.Style
	Status    lipgloss.Style
	Filled    lipgloss.Style
	Empty     lipgloss.Style
	Highlight lipgloss.Style
}

// DefaultStyles returns the viewer's color scheme.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BC34A")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9E9E9E")),
		Filled: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f2f2f2")),
		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2a3850")),
		Highlight: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#141d2b")).
			Background(lipgloss.Color("#8BC34A")),
	}
}
