package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by Printer.
type Styles struct {
	Success lipgloss.Style
	Heading lipgloss.Style
	Key     lipgloss.Style
	Dim     lipgloss.Style
	Marker  lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Border  lipgloss.Style
}

// DefaultStyles returns styles with colors enabled.
func DefaultStyles() Styles {
	return Styles{
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")), // green
		Heading: lipgloss.NewStyle().Bold(true),
		Key:     lipgloss.NewStyle().Foreground(lipgloss.Color("6")), // cyan
		Dim:     lipgloss.NewStyle().Faint(true),
		Marker:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // yellow
		Header:  lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Cell:    lipgloss.NewStyle().Padding(0, 1),
		Border:  lipgloss.NewStyle().Faint(true),
	}
}

// NoColorStyles returns plain styles, keeping only cell padding.
func NoColorStyles() Styles {
	return Styles{
		Success: lipgloss.NewStyle(),
		Heading: lipgloss.NewStyle(),
		Key:     lipgloss.NewStyle(),
		Dim:     lipgloss.NewStyle(),
		Marker:  lipgloss.NewStyle(),
		Header:  lipgloss.NewStyle().Padding(0, 1),
		Cell:    lipgloss.NewStyle().Padding(0, 1),
		Border:  lipgloss.NewStyle(),
	}
}
