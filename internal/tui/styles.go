package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 1)

	docStyle = lipgloss.NewStyle().Margin(1, 2)

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Padding(0, 1)

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	perfectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	passStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	plainStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
)
