package tree

import (
	"strconv"
	"strings"
)

// Text serialises n back to source text, trivia included. For the root node
// this reproduces the decoded file exactly.
func Text(n Node) string {
	var sb strings.Builder
	for _, t := range Tokens(n) {
		for _, tr := range t.Trivia {
			sb.WriteString(tr.Text)
		}
		sb.WriteString(t.Text)
	}
	return sb.String()
}

// Unescape decodes the escape sequences of the properties format:
// \t \n \r \f, \uXXXX, escaped literal characters, and line continuations
// (backslash, terminator, then any leading blanks of the next line).
// Malformed \u sequences are kept verbatim.
func Unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch next := s[i]; next {
		case 't':
			sb.WriteByte('\t')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 'f':
			sb.WriteByte('\f')
		case 'u':
			if i+4 < len(s) {
				if r, err := strconv.ParseUint(s[i+1:i+5], 16, 32); err == nil {
					sb.WriteRune(rune(r))
					i += 4
					continue
				}
			}
			sb.WriteString(`\u`)
		case '\r', '\n':
			if next == '\r' && i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			for i+1 < len(s) && isBlank(s[i+1]) {
				i++
			}
		default:
			sb.WriteByte(next)
		}
	}
	return sb.String()
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\f'
}
