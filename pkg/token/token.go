// Package token defines the lexical units of a properties file.
//
// A token's Text is an exact slice of the decoded source. Everything that is
// not significant to the grammar (comments, blank runs, line terminators) is
// carried as leading Trivia of the next token, so concatenating every trivia
// and token text in order reproduces the input unchanged.
package token

import "fmt"

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

const (
	// EOF is the zero-width token closing every file. It owns the trailing trivia.
	EOF TokenType = iota
	// BOM is the byte-order mark, only ever the first token of a file.
	BOM
	// KEY is the identifier on the left-hand side of a property.
	KEY
	// SEPARATOR is the '=' or ':' operator between key and value.
	SEPARATOR
	// VALUE is the literal on the right-hand side, including continuation lines.
	VALUE
)

var tokenNames = map[TokenType]string{
	EOF:       "EOF",
	BOM:       "BOM",
	KEY:       "KEY",
	SEPARATOR: "SEPARATOR",
	VALUE:     "VALUE",
}

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// Token is a lexical unit with its exact source text and leading trivia.
type Token struct {
	Type   TokenType
	Text   string
	Span   Span
	Trivia []Trivia
}

// Line returns the line the token starts on.
func (t *Token) Line() int {
	return t.Span.Start.Line
}

// Comments returns the comment trivia attached before the token.
func (t *Token) Comments() []Trivia {
	var out []Trivia
	for _, tr := range t.Trivia {
		if tr.IsComment() {
			out = append(out, tr)
		}
	}
	return out
}

// FullText returns the token text prefixed with all of its trivia.
func (t *Token) FullText() string {
	if len(t.Trivia) == 0 {
		return t.Text
	}
	n := len(t.Text)
	for _, tr := range t.Trivia {
		n += len(tr.Text)
	}
	buf := make([]byte, 0, n)
	for _, tr := range t.Trivia {
		buf = append(buf, tr.Text...)
	}
	buf = append(buf, t.Text...)
	return string(buf)
}
