package ui

import (
	"strings"

	"github.com/zerosofts/nameit/internal/models"
)

// RenderTemplate echoes a template with its tokens colored by provenance:
// variables on blue, positional parameters (numbering, date, old-name
// reuse) on yellow, literals and separators plain.
func RenderTemplate(t *models.Template) string {
	var b strings.Builder
	for _, tok := range t.Tokens {
		switch tok.Kind {
		case models.TokenVariable:
			b.WriteString(variableStyle.Render(tok.Text))
		case models.TokenNumbering, models.TokenDateTime, models.TokenOldNameParts, models.TokenOldName:
			b.WriteString(parameterStyle.Render(tok.Text))
		case models.TokenLiteral:
			b.WriteString(tok.Text)
		default:
			b.WriteString(tok.Text)
		}
	}
	return b.String()
}

// RenderResolved echoes a rendered name with the same provenance coloring,
// pairing each resolved fragment with the token it came from.
func RenderResolved(t *models.Template, fragments []string) string {
	var b strings.Builder
	for i, tok := range t.Tokens {
		if i >= len(fragments) {
			break
		}
		switch tok.Kind {
		case models.TokenVariable:
			b.WriteString(variableStyle.Render(fragments[i]))
		case models.TokenNumbering, models.TokenDateTime, models.TokenOldNameParts, models.TokenOldName:
			b.WriteString(parameterStyle.Render(fragments[i]))
		default:
			b.WriteString(fragments[i])
		}
	}
	return b.String()
}
