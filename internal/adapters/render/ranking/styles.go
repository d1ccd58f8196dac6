package ranking

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	handle     lipgloss.Style
	detail     lipgloss.Style
	empty      lipgloss.Style
	cell       lipgloss.Style
	headerCell lipgloss.Style
	border     lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		handle:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		empty:      lipgloss.NewStyle().Faint(true),
		cell:       lipgloss.NewStyle().Padding(0, 1),
		headerCell: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("250")),
		border:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
