package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorSubtle    = lipgloss.Color("240")
	colorHighlight = lipgloss.Color("81")
	colorError     = lipgloss.Color("196")
	colorSuccess   = lipgloss.Color("40")
	colorWhite     = lipgloss.Color("231")
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			MarginBottom(1)

	helpStyle    = lipgloss.NewStyle().Foreground(colorSubtle).MarginTop(1)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(colorSubtle)

	// The short URL field; selected mirrors a full-range text selection
	fieldStyle         = lipgloss.NewStyle().Foreground(colorWhite)
	selectedFieldStyle = lipgloss.NewStyle().Foreground(colorWhite).Background(colorHighlight)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.Color("237")).
			Padding(0, 3).
			MarginTop(1)

	disabledButtonStyle = buttonStyle.
				Foreground(colorSubtle)

	qrStyle = lipgloss.NewStyle().MarginTop(1)
)
