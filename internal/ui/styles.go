package ui

import "github.com/charmbracelet/lipgloss"

var (
	accentColor  = lipgloss.Color("#119EFF")
	lightColor   = lipgloss.Color("#ECEDEE")
	successColor = lipgloss.Color("#4ADE80")
	errorColor   = lipgloss.Color("#F87171")
	mutedColor   = lipgloss.Color("#64748B")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			MarginBottom(1)

	connectedStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	disconnectedStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	deviceStyle = lipgloss.NewStyle().
			Foreground(lightColor).
			PaddingLeft(2)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lightColor).
			Background(accentColor).
			Bold(true).
			Padding(0, 2).
			MarginTop(1)

	buttonDisabledStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Padding(0, 2).
				MarginTop(1)

	successStyle = lipgloss.NewStyle().
			Foreground(successColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(1, 2)
)
