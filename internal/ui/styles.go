package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Terminal styles for the interactive prompts and the rename plan output.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33"))

	selectStyle = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color("33")).
			Foreground(lipgloss.Color("255"))

	inputStyle = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color("10")).
			Foreground(lipgloss.Color("232"))

	indexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	newEntryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	warningStyle = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color("11")).
			Foreground(lipgloss.Color("232"))

	// Token provenance colors for the template echo.
	variableStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("27")).
			Foreground(lipgloss.Color("255"))

	parameterStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("178")).
			Foreground(lipgloss.Color("232"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	actionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))
)

// Title renders a bold section label, e.g. "Template" or "File".
func Title(text string) string {
	return labelStyle.Render(text)
}

// Action renders an operation verb, e.g. "Copy" or "Rename".
func Action(text string) string {
	return actionStyle.Render(text)
}

// Warning renders an inline warning badge.
func Warning(text string) string {
	return warningStyle.Render(text)
}
