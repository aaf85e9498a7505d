package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// pickerState is the prompt's position in its Prompting -> Validating ->
// Committed flow. Validation failures stay in statePrompting with an inline
// error; stateEntering is the free-text "new entry" branch.
type pickerState int

const (
	statePrompting pickerState = iota
	stateEntering
	stateDone
)

// PickerModel presents numbered choices plus a new-entry path.
//
// Input grammar: a display number selects that choice, 0 (or an empty
// choice list) switches to free-text entry, "/text" enters the remainder
// directly, and an empty submission defaults to choice 1. Anything else is
// rejected and re-prompted.
type PickerModel struct {
	name       string
	choices    []string
	filterable bool
	maxShown   int

	input   textinput.Model
	state   pickerState
	errMsg  string
	visible []int // indices into choices currently displayed

	result   string
	isNew    bool
	canceled bool
}

// NewPicker creates a picker over the stored choices for one variable.
// filterable enables fuzzy narrowing of the list while typing; maxShown
// caps the displayed choices (0 means no cap).
func NewPicker(name string, choices []string, filterable bool, maxShown int) PickerModel {
	input := textinput.New()
	input.Focus()
	input.CharLimit = 255

	m := PickerModel{
		name:       name,
		choices:    choices,
		filterable: filterable,
		maxShown:   maxShown,
		input:      input,
	}
	if len(choices) == 0 {
		m.state = stateEntering
	}
	m.refilter("")
	return m
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.canceled = true
		m.state = stateDone
		return m, tea.Quit
	case "enter":
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	if m.state == statePrompting && m.filterable {
		m.refilter(strings.TrimSpace(m.input.Value()))
	}
	return m, cmd
}

// submit validates the pending input and either commits or re-prompts.
func (m PickerModel) submit() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.input.Value())

	if m.state == stateEntering {
		if raw == "" {
			m.errMsg = "value cannot be empty"
			return m, nil
		}
		return m.commit(raw, true)
	}

	if after, ok := strings.CutPrefix(raw, "/"); ok {
		value := strings.TrimSpace(after)
		if value == "" {
			m.errMsg = "value cannot be empty"
			return m, nil
		}
		return m.commit(value, true)
	}

	if raw == "" {
		if len(m.visible) > 0 {
			return m.commit(m.choices[m.visible[0]], false)
		}
		return m.enterNewEntry()
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		m.reject()
		return m, nil
	}
	switch {
	case n == 0:
		return m.enterNewEntry()
	case n >= 1 && n <= len(m.visible):
		return m.commit(m.choices[m.visible[n-1]], false)
	default:
		m.reject()
		return m, nil
	}
}

func (m *PickerModel) reject() {
	m.errMsg = fmt.Sprintf("enter a number from 0 to %d, or /text", len(m.visible))
	m.input.SetValue("")
	if m.filterable {
		m.refilter("")
	}
}

func (m PickerModel) enterNewEntry() (tea.Model, tea.Cmd) {
	m.state = stateEntering
	m.errMsg = ""
	m.input.SetValue("")
	return m, nil
}

func (m PickerModel) commit(value string, isNew bool) (tea.Model, tea.Cmd) {
	m.result = value
	m.isNew = isNew
	m.errMsg = ""
	m.state = stateDone
	return m, tea.Quit
}

// refilter recomputes the displayed choice indices for a filter query.
// Numeric queries are selections, not filters, and show the full list.
func (m *PickerModel) refilter(query string) {
	m.visible = m.visible[:0]
	if m.filterable && query != "" && !isNumeric(query) && !strings.HasPrefix(query, "/") {
		for _, match := range fuzzy.Find(query, m.choices) {
			m.visible = append(m.visible, match.Index)
			if m.maxShown > 0 && len(m.visible) >= m.maxShown {
				break
			}
		}
		return
	}
	for i := range m.choices {
		m.visible = append(m.visible, i)
		if m.maxShown > 0 && len(m.visible) >= m.maxShown {
			break
		}
	}
}

func isNumeric(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// View implements tea.Model.
func (m PickerModel) View() string {
	if m.state == stateDone {
		return ""
	}

	var b strings.Builder
	if m.state == stateEntering {
		b.WriteString(inputStyle.Render("Input " + m.name))
		b.WriteString(": ")
		b.WriteString(m.input.View())
	} else {
		b.WriteString(titleStyle.Render("Choices for " + m.name + ":"))
		b.WriteString("\n")
		b.WriteString("[0] " + newEntryStyle.Render("<new entry>"))
		b.WriteString("\n")
		for i, idx := range m.visible {
			b.WriteString(indexStyle.Render(fmt.Sprintf("[%d]", i+1)))
			b.WriteString(" " + m.choices[idx] + "\n")
		}
		b.WriteString(selectStyle.Render("Select"))
		b.WriteString(" <1>: ")
		b.WriteString(m.input.View())
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}
	b.WriteString("\n")
	return b.String()
}

// Result returns the committed value and whether it was newly entered.
func (m PickerModel) Result() (string, bool) {
	return m.result, m.isNew
}

// Canceled reports whether the user aborted the prompt.
func (m PickerModel) Canceled() bool {
	return m.canceled
}
