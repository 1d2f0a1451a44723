package parser

import (
	"unicode/utf8"

	"github.com/leapstack-labs/proplint/pkg/token"
)

// lexMode tracks where on a logical line the lexer is, since the same
// character means different things before and after a key.
type lexMode int

const (
	modeLineStart lexMode = iota // expecting a key; '#' and '!' start comments
	modeAfterKey                 // expecting a separator or a value
	modeAfterSep                 // expecting a value
)

// Lexer tokenizes decoded properties text.
type Lexer struct {
	input string
	pos   int  // byte offset of ch
	ch    rune // current rune, or -1 at EOF
	width int  // byte width of ch
	line  int  // 1-based line of ch
	col   int  // 0-based rune column of ch
	mode  lexMode

	hold []token.Trivia // trivia collected for the next token
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
	}
	l.decode()
	return l
}

// decode loads the rune at l.pos into l.ch.
func (l *Lexer) decode() {
	if l.pos >= len(l.input) {
		l.ch, l.width = -1, 0
		return
	}
	l.ch, l.width = utf8.DecodeRuneInString(l.input[l.pos:])
}

// peek returns the rune after ch without advancing.
func (l *Lexer) peek() rune {
	next := l.pos + l.width
	if next >= len(l.input) {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(l.input[next:])
	return r
}

// advance moves past ch, keeping line and column current. "\r\n" counts as a
// single line break.
func (l *Lexer) advance() {
	switch {
	case l.ch == '\n', l.ch == '\r' && l.peek() != '\n':
		l.line++
		l.col = 0
	case l.ch >= 0:
		l.col++
	}
	l.pos += l.width
	l.decode()
}

func (l *Lexer) currentPos() token.Position {
	return token.Position{Line: l.line, Column: l.col, Offset: l.pos}
}

// advanceTerminator consumes one line terminator and reports whether ch was one.
func (l *Lexer) advanceTerminator() bool {
	switch l.ch {
	case '\r':
		if l.peek() == '\n' {
			l.advance()
		}
		l.advance()
		return true
	case '\n':
		l.advance()
		return true
	}
	return false
}

// NextToken returns the next token with its leading trivia.
func (l *Lexer) NextToken() token.Token {
	l.collectTrivia()
	start := l.currentPos()

	var tt token.TokenType
	switch {
	case l.ch < 0:
		tt = token.EOF
	case l.pos == 0 && l.ch == '\uFEFF':
		l.advance()
		tt = token.BOM
	case l.mode == modeAfterKey && isSeparator(l.ch):
		l.advance()
		tt = token.SEPARATOR
		l.mode = modeAfterSep
	case l.mode == modeLineStart:
		l.scanKey()
		tt = token.KEY
		l.mode = modeAfterKey
	default:
		l.scanValue()
		tt = token.VALUE
		l.mode = modeLineStart
	}

	tok := token.Token{
		Type:   tt,
		Text:   l.input[start.Offset:l.pos],
		Span:   token.Span{Start: start, End: l.currentPos()},
		Trivia: l.hold,
	}
	l.hold = nil
	return tok
}

// collectTrivia gathers blanks, line terminators and comment lines.
//   - runs of ' ', '\t', '\f' coalesce into one whitespace trivia
//   - each terminator is its own newline trivia, kept verbatim
//   - '#' or '!' as the first non-blank rune of a line starts a comment that
//     runs to the terminator (exclusive)
func (l *Lexer) collectTrivia() {
	for l.ch >= 0 {
		start := l.currentPos()
		switch {
		case isBlank(l.ch):
			for isBlank(l.ch) {
				l.advance()
			}
			l.pushTrivia(token.TriviaWhitespace, start)
		case isTerminator(l.ch):
			l.advanceTerminator()
			l.pushTrivia(token.TriviaNewline, start)
			l.mode = modeLineStart
		case l.mode == modeLineStart && isCommentMarker(l.ch):
			for l.ch >= 0 && !isTerminator(l.ch) {
				l.advance()
			}
			l.pushTrivia(token.TriviaComment, start)
		default:
			return
		}
	}
}

func (l *Lexer) pushTrivia(kind token.TriviaKind, start token.Position) {
	l.hold = append(l.hold, token.Trivia{
		Kind: kind,
		Text: l.input[start.Offset:l.pos],
		Pos:  start,
	})
}

// scanKey consumes a key: everything up to an unescaped separator, blank or
// terminator. A backslash escapes the following rune; a trailing backslash
// before a terminator stays part of the key.
func (l *Lexer) scanKey() {
	for l.ch >= 0 && !isSeparator(l.ch) && !isBlank(l.ch) && !isTerminator(l.ch) {
		if l.ch == '\\' {
			l.advance()
			if l.ch < 0 || isTerminator(l.ch) {
				return
			}
		}
		l.advance()
	}
}

// scanValue consumes the rest of the logical line. A backslash immediately
// before a terminator continues the value on the next line.
func (l *Lexer) scanValue() {
	for l.ch >= 0 && !isTerminator(l.ch) {
		if l.ch == '\\' {
			l.advance()
			if l.advanceTerminator() || l.ch < 0 {
				continue
			}
		}
		l.advance()
	}
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t' || r == '\f'
}

func isTerminator(r rune) bool {
	return r == '\n' || r == '\r'
}

func isSeparator(r rune) bool {
	return r == '=' || r == ':'
}

func isCommentMarker(r rune) bool {
	return r == '#' || r == '!'
}
