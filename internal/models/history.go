package models

import (
	"sort"
	"time"
)

// CurrentHistoryVersion is the store format version this build writes.
const CurrentHistoryVersion = 1

// FormatEntry is one remembered template, with the variable names it
// references recorded so pruning never needs to re-parse stored formats.
type FormatEntry struct {
	Text      string   `yaml:"text"`
	Variables []string `yaml:"variables,omitempty"`
}

// History holds every template ever used and, per variable, the ordered list
// of previously entered values. Both tables are append-only during rendering;
// only the edit session removes entries. Display indices are 1-based and
// stable for the lifetime of an entry.
type History struct {
	Version int                 `yaml:"version"`
	Formats []FormatEntry       `yaml:"formats"`
	Choices map[string][]string `yaml:"choices"`
}

// NewHistory returns an empty history at the current store version.
func NewHistory() *History {
	return &History{
		Version: CurrentHistoryVersion,
		Choices: make(map[string][]string),
	}
}

// AddFormat records a template on first use. Returns true if appended.
func (h *History) AddFormat(t *Template) bool {
	for _, f := range h.Formats {
		if f.Text == t.Text {
			return false
		}
	}
	h.Formats = append(h.Formats, FormatEntry{Text: t.Text, Variables: t.Variables()})
	return true
}

// AddChoice records a newly entered value for a variable. An immediate
// repeat of the list's last entry is a no-op; the same value entered again
// after an intervening different value appends a second occurrence.
func (h *History) AddChoice(name, value string) bool {
	if h.Choices == nil {
		h.Choices = make(map[string][]string)
	}
	list := h.Choices[name]
	if len(list) > 0 && list[len(list)-1] == value {
		return false
	}
	h.Choices[name] = append(list, value)
	return true
}

// ChoicesFor returns the ordered choice list for a variable, possibly empty.
func (h *History) ChoicesFor(name string) []string {
	return h.Choices[name]
}

// FormatTexts returns the stored format strings in display order.
func (h *History) FormatTexts() []string {
	texts := make([]string, len(h.Formats))
	for i, f := range h.Formats {
		texts[i] = f.Text
	}
	return texts
}

// VariableNames returns the variables that have stored choices, sorted.
func (h *History) VariableNames() []string {
	names := make([]string, 0, len(h.Choices))
	for name := range h.Choices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReferencedVariables returns the set of variable names referenced by at
// least one stored format.
func (h *History) ReferencedVariables() map[string]bool {
	refs := make(map[string]bool)
	for _, f := range h.Formats {
		for _, v := range f.Variables {
			refs[v] = true
		}
	}
	return refs
}

// KeepFormats retains only the formats whose 1-based display index is in
// keep, then cascades: choices of variables no longer referenced by any
// surviving format are removed. Returns the pruned variable names, sorted.
func (h *History) KeepFormats(keep map[int]bool) []string {
	var kept []FormatEntry
	for i, f := range h.Formats {
		if keep[i+1] {
			kept = append(kept, f)
		}
	}
	h.Formats = kept

	refs := h.ReferencedVariables()
	var pruned []string
	for name := range h.Choices {
		if !refs[name] {
			delete(h.Choices, name)
			pruned = append(pruned, name)
		}
	}
	sort.Strings(pruned)
	return pruned
}

// KeepChoices retains only the choices of a variable whose 1-based display
// index is in keep. A variable left with no choices is dropped entirely.
func (h *History) KeepChoices(name string, keep map[int]bool) {
	var kept []string
	for i, c := range h.Choices[name] {
		if keep[i+1] {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		delete(h.Choices, name)
		return
	}
	h.Choices[name] = kept
}

// RenderContext carries the per-file state a render pass needs.
type RenderContext struct {
	// Index is the 1-based position of the file in the batch.
	Index int
	// OldName is the file's original name without extension.
	OldName string
	// Now is the timestamp date tokens are resolved against.
	Now time.Time
}
