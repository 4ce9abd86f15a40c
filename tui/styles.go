// ABOUTME: Defines lipgloss style constants for the info panel, card panels, pass summary, and help bar.
// ABOUTME: Provides PanelStyle to pick a bordered or borderless frame for a panel.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Panel borders
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62"))

	// Borderless panels keep a one-cell margin so text lines up with bordered layouts.
	PlainStyle = lipgloss.NewStyle().
			Padding(1, 1)

	// Title styling
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	// Info panel
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(7)
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
	RightStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	WrongStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	ActionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true)

	// Card text
	FrontStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	BackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))

	// Pass summary
	SummaryStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(1, 2)

	// Warnings such as the small-terminal notice
	WarnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
)

// PanelStyle returns the frame style for a panel with or without borders.
func PanelStyle(borders bool) lipgloss.Style {
	if borders {
		return BorderStyle
	}
	return PlainStyle
}
