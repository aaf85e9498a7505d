package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zerosofts/nameit/internal/errors"
)

// Console runs one terminal prompt program per question and implements the
// prompter interfaces consumed by the renderer, the service and the editor.
// Each prompt blocks the process until answered; cancellation (Esc, Ctrl+C)
// surfaces as a CANCELED error so the batch can flush and stop cleanly.
type Console struct {
	// MaxChoices caps how many stored choices a picker displays; 0 shows all.
	MaxChoices int
}

// Pick resolves a variable through the numbered-choice prompt.
func (c *Console) Pick(name string, choices []string) (string, bool, error) {
	return c.runPicker(name, choices, false)
}

// PickFormat selects a format from the history; typing filters the list.
func (c *Console) PickFormat(choices []string) (string, bool, error) {
	return c.runPicker("Format", choices, true)
}

func (c *Console) runPicker(name string, choices []string, filterable bool) (string, bool, error) {
	p := tea.NewProgram(NewPicker(name, choices, filterable, c.MaxChoices))
	final, err := p.Run()
	if err != nil {
		return "", false, errors.Wrap(err, errors.ErrCodeInternalError, "prompt failed")
	}
	m := final.(PickerModel)
	if m.Canceled() {
		return "", false, errors.Canceled()
	}
	value, isNew := m.Result()
	return value, isNew, nil
}

// Confirm asks a yes/no question; no is the default.
func (c *Console) Confirm(question string) (bool, error) {
	p := tea.NewProgram(NewConfirm(question))
	final, err := p.Run()
	if err != nil {
		return false, errors.Wrap(err, errors.ErrCodeInternalError, "prompt failed")
	}
	m := final.(ConfirmModel)
	if m.Canceled() {
		return false, errors.Canceled()
	}
	return m.Answer(), nil
}

// Range reads a raw range expression over an indexed item list.
func (c *Console) Range(label string, items []string) (string, error) {
	p := tea.NewProgram(NewRangePrompt(label, items))
	final, err := p.Run()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInternalError, "prompt failed")
	}
	m := final.(RangeModel)
	if m.Canceled() {
		return "", errors.Canceled()
	}
	return m.Result(), nil
}
