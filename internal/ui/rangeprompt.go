package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// RangeModel shows an indexed list and reads a raw range expression over
// it. Validation belongs to the caller, which re-prompts on bad input;
// empty input means "keep everything".
type RangeModel struct {
	label string
	items []string

	input    textinput.Model
	result   string
	done     bool
	canceled bool
}

// NewRangePrompt creates a range prompt over the given items.
func NewRangePrompt(label string, items []string) RangeModel {
	input := textinput.New()
	input.Focus()
	input.CharLimit = 255
	input.Placeholder = fmt.Sprintf("1-%d", len(items))
	return RangeModel{label: label, items: items, input: input}
}

// Init implements tea.Model.
func (m RangeModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m RangeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.canceled = true
		m.done = true
		return m, tea.Quit
	case "enter":
		m.result = strings.TrimSpace(m.input.Value())
		m.done = true
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	return m, cmd
}

// View implements tea.Model.
func (m RangeModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Choices for " + m.label + ":"))
	b.WriteString("\n")
	for i, item := range m.items {
		b.WriteString(indexStyle.Render(fmt.Sprintf("[%d]", i+1)))
		b.WriteString(" " + item + "\n")
	}
	b.WriteString(selectStyle.Render("Keep"))
	b.WriteString(" " + m.input.View())
	b.WriteString("\n")
	return b.String()
}

// Result returns the raw range expression, possibly empty.
func (m RangeModel) Result() string {
	return m.result
}

// Canceled reports whether the user aborted the prompt.
func (m RangeModel) Canceled() bool {
	return m.canceled
}
