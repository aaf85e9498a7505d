// Package renderer resolves a parsed template against a per-file context,
// consulting the choice history and the interactive prompt for variables.
package renderer

import (
	"fmt"
	"strings"

	"github.com/lestrrat-go/strftime"
	"github.com/zerosofts/nameit/internal/errors"
	"github.com/zerosofts/nameit/internal/models"
)

// Prompter resolves a variable by presenting its stored choices. isNew
// reports that the returned value was freshly entered rather than selected.
type Prompter interface {
	Pick(name string, choices []string) (value string, isNew bool, err error)
}

// Renderer handles filename rendering for one template.
type Renderer struct {
	template *models.Template
	history  *models.History
	prompter Prompter

	// repeatLast skips prompting and reuses each variable's most recently
	// appended choice. A variable with no stored choices still prompts.
	repeatLast bool
}

// New creates a renderer instance.
func New(t *models.Template, h *models.History, p Prompter, repeatLast bool) *Renderer {
	return &Renderer{template: t, history: h, prompter: p, repeatLast: repeatLast}
}

// RenderFile produces the new filename for one file. Each distinct variable
// name is resolved once per file and reused for repeats within the template;
// a freshly entered value is recorded in the history immediately.
func (r *Renderer) RenderFile(ctx models.RenderContext) (string, error) {
	parts, err := r.RenderParts(ctx)
	if err != nil {
		return "", err
	}
	return strings.Join(parts, ""), nil
}

// RenderParts resolves the template into one fragment per token, aligned
// with the template's token sequence. Spaces never survive into a rendered
// fragment.
func (r *Renderer) RenderParts(ctx models.RenderContext) ([]string, error) {
	resolved := make(map[string]string)
	parts := make([]string, 0, len(r.template.Tokens))

	for _, tok := range r.template.Tokens {
		var part string
		switch tok.Kind {
		case models.TokenLiteral:
			part = tok.Text
		case models.TokenSeparator:
			part = "_"
		case models.TokenNumbering:
			part = fmt.Sprintf("%0*d", tok.Width, ctx.Index)
		case models.TokenDateTime:
			f, err := strftime.New(tok.Text)
			if err != nil {
				return nil, errors.DateFormatError(tok.Text, err)
			}
			part = f.FormatString(ctx.Now)
		case models.TokenOldNameParts:
			segs := strings.Split(ctx.OldName, "_")
			if tok.Width < len(segs) {
				segs = segs[:tok.Width]
			}
			part = strings.Join(segs, "_")
		case models.TokenOldName:
			part = ctx.OldName
		case models.TokenVariable:
			value, err := r.resolveVariable(tok.Text, resolved)
			if err != nil {
				return nil, err
			}
			part = value
		}
		parts = append(parts, strings.ReplaceAll(part, " ", "-"))
	}
	return parts, nil
}

func (r *Renderer) resolveVariable(name string, resolved map[string]string) (string, error) {
	if value, ok := resolved[name]; ok {
		return value, nil
	}

	choices := r.history.ChoicesFor(name)
	if r.repeatLast && len(choices) > 0 {
		value := choices[len(choices)-1]
		resolved[name] = value
		return value, nil
	}

	value, isNew, err := r.prompter.Pick(name, choices)
	if err != nil {
		return "", err
	}
	if isNew {
		r.history.AddChoice(name, value)
	}
	resolved[name] = value
	return value, nil
}
