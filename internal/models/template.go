package models

import (
	"fmt"
	"strings"

	"github.com/zerosofts/nameit/internal/errors"
)

// TokenKind identifies one classified unit of a template. The set is closed;
// parsing assigns exactly one kind to every segment.
type TokenKind int

const (
	// TokenLiteral is content written inside {...}, emitted verbatim.
	TokenLiteral TokenKind = iota
	// TokenSeparator is an underscore between segments, preserved so that
	// rendering is a positional concatenation of resolved tokens.
	TokenSeparator
	// TokenNumbering is a run of '#', rendered as the zero-padded file index.
	TokenNumbering
	// TokenDateTime is a strftime pattern segment (contains '%').
	TokenDateTime
	// TokenOldNameParts is a run of '*', reusing leading parts of the old name.
	TokenOldNameParts
	// TokenOldName is a single '?', reusing the whole old name.
	TokenOldName
	// TokenVariable is any other segment, resolved through the choice history.
	TokenVariable
)

// Token is one classified unit of a template.
type Token struct {
	Kind TokenKind
	// Text holds the literal body, the date pattern, or the variable name.
	Text string
	// Width holds the numbering width or the old-name part count.
	Width int
}

// Template is a parsed format string defining how a new filename is
// assembled. Text is the raw format and serves as the history key.
type Template struct {
	Text   string
	Tokens []Token
}

// ParseTemplate turns a raw format string into an ordered token sequence.
//
// A '{' opens literal mode, consumed until the matching '}'; no nesting.
// Outside literal mode segments are split on '_' and classified by their
// dominant character. Empty segments (double, leading or trailing
// underscores) are a parse error.
func ParseTemplate(format string) (*Template, error) {
	if format == "" {
		return nil, errors.ParseError("empty format")
	}

	t := &Template{Text: format}
	var segment strings.Builder
	// filled tracks whether the current slot between separators has produced
	// any token or segment text, to reject empty segments.
	filled := false
	inLiteral := false
	literalStart := 0

	flushSegment := func() error {
		if segment.Len() == 0 {
			return nil
		}
		tok, err := classifySegment(segment.String())
		if err != nil {
			return err
		}
		t.Tokens = append(t.Tokens, tok)
		segment.Reset()
		return nil
	}

	for i, r := range format {
		if inLiteral {
			switch r {
			case '{':
				return nil, errors.ParseError(fmt.Sprintf("unexpected '{' at position %d", i))
			case '}':
				t.Tokens = append(t.Tokens, Token{Kind: TokenLiteral, Text: format[literalStart:i]})
				inLiteral = false
				filled = true
			}
			continue
		}
		switch r {
		case '{':
			if err := flushSegment(); err != nil {
				return nil, err
			}
			inLiteral = true
			literalStart = i + 1
		case '}':
			return nil, errors.ParseError(fmt.Sprintf("unexpected '}' at position %d", i))
		case '_':
			if err := flushSegment(); err != nil {
				return nil, err
			}
			if !filled {
				return nil, errors.ParseError(fmt.Sprintf("empty segment at position %d", i))
			}
			t.Tokens = append(t.Tokens, Token{Kind: TokenSeparator, Text: "_"})
			filled = false
		default:
			segment.WriteRune(r)
			filled = true
		}
	}
	if inLiteral {
		return nil, errors.ParseError("unterminated '{'")
	}
	if err := flushSegment(); err != nil {
		return nil, err
	}
	if !filled {
		return nil, errors.ParseError("trailing underscore")
	}

	return t, nil
}

// classifySegment maps a non-empty segment to exactly one token kind.
func classifySegment(seg string) (Token, error) {
	switch {
	case allRunes(seg, '#'):
		return Token{Kind: TokenNumbering, Text: seg, Width: len(seg)}, nil
	case allRunes(seg, '*'):
		return Token{Kind: TokenOldNameParts, Text: seg, Width: len(seg)}, nil
	case seg == "?":
		return Token{Kind: TokenOldName, Text: seg}, nil
	case strings.ContainsRune(seg, '%'):
		return Token{Kind: TokenDateTime, Text: seg}, nil
	default:
		return Token{Kind: TokenVariable, Text: seg}, nil
	}
}

func allRunes(s string, r rune) bool {
	for _, c := range s {
		if c != r {
			return false
		}
	}
	return true
}

// String re-serializes the template to its canonical text.
func (t *Template) String() string {
	var b strings.Builder
	for _, tok := range t.Tokens {
		if tok.Kind == TokenLiteral {
			b.WriteString("{")
			b.WriteString(tok.Text)
			b.WriteString("}")
			continue
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}

// Variables returns the names of the template's variable tokens,
// deduplicated and order-preserving.
func (t *Template) Variables() []string {
	var names []string
	seen := make(map[string]bool)
	for _, tok := range t.Tokens {
		if tok.Kind != TokenVariable || seen[tok.Text] {
			continue
		}
		seen[tok.Text] = true
		names = append(names, tok.Text)
	}
	return names
}
