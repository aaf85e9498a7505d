package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModel asks a yes/no question; no is the default.
type ConfirmModel struct {
	question string
	answer   bool
	done     bool
	canceled bool
}

// NewConfirm creates a confirmation prompt.
func NewConfirm(question string) ConfirmModel {
	return ConfirmModel{question: question}
}

// Init implements tea.Model.
func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.canceled = true
		m.done = true
		return m, tea.Quit
	case "y", "Y":
		m.answer = true
		m.done = true
		return m, tea.Quit
	case "n", "N", "enter":
		m.answer = false
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m ConfirmModel) View() string {
	if m.done {
		return ""
	}
	return warningStyle.Render("Warning") + ": " + m.question + " <y/N> "
}

// Answer returns the confirmation result.
func (m ConfirmModel) Answer() bool {
	return m.answer
}

// Canceled reports whether the user aborted the prompt.
func (m ConfirmModel) Canceled() bool {
	return m.canceled
}
