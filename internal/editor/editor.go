// Package editor implements the interactive pruning session over the
// persisted history: range-filter the stored formats, cascade away orphaned
// variables, then range-filter each surviving variable's choice list.
package editor

import (
	"fmt"
	"io"
	"os"

	"github.com/zerosofts/nameit/internal/errors"
	"github.com/zerosofts/nameit/internal/models"
)

// Prompter supplies raw range expressions for an indexed item list.
type Prompter interface {
	Range(label string, items []string) (string, error)
}

// Editor runs one edit session over an in-memory history. The caller
// persists the result after the session completes.
type Editor struct {
	history  *models.History
	prompter Prompter
	warnings io.Writer
}

// New creates an editor over the given history.
func New(history *models.History, prompter Prompter) *Editor {
	return &Editor{history: history, prompter: prompter, warnings: os.Stderr}
}

// Run drives the edit session. Malformed range input is re-prompted, never
// fatal; a cancellation aborts the session without touching the history any
// further.
func (e *Editor) Run() error {
	if len(e.history.Formats) == 0 {
		fmt.Fprintln(e.warnings, "Warning: history is empty, nothing to edit")
		return nil
	}

	refs := e.history.ReferencedVariables()
	for _, name := range e.history.VariableNames() {
		if !refs[name] {
			fmt.Fprintf(e.warnings, "Warning: variable %s does not appear in any format\n", name)
		}
	}

	keep, err := e.promptRange("Formats", e.history.FormatTexts())
	if err != nil {
		return err
	}
	if keep != nil {
		pruned := e.history.KeepFormats(keep)
		for _, name := range pruned {
			fmt.Fprintf(e.warnings, "Warning: removed choices of %s, no surviving format references it\n", name)
		}
	}

	for _, name := range e.history.VariableNames() {
		keep, err := e.promptRange(name, e.history.ChoicesFor(name))
		if err != nil {
			return err
		}
		if keep == nil {
			continue
		}
		e.history.KeepChoices(name, keep)
	}
	return nil
}

// promptRange asks until the expression parses. Empty input yields a nil
// keep set, meaning the list stays untouched.
func (e *Editor) promptRange(label string, items []string) (map[int]bool, error) {
	for {
		expr, err := e.prompter.Range(label, items)
		if err != nil {
			return nil, err
		}
		keep, err := ParseRange(expr, len(items))
		if err != nil {
			fmt.Fprintln(e.warnings, errors.GetAppError(err).Error())
			continue
		}
		return keep, nil
	}
}
