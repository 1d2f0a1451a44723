// Package charset decodes source files under a declared character encoding.
//
// Callers always supply the encoding; nothing here sniffs content. A leading
// byte-order mark survives decoding as U+FEFF so the lexer can surface it as
// its own token.
package charset

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// DefaultName is the charset assumed when none is configured. Properties
// files are ISO-8859-1 unless a project says otherwise.
const DefaultName = "ISO-8859-1"

// Default is the encoding named by DefaultName.
var Default encoding.Encoding = charmap.ISO8859_1

// Lookup resolves an IANA charset name such as "UTF-8" or "ISO-8859-1".
// The empty name resolves to Default.
func Lookup(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Default, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown charset %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", name)
	}
	return enc, nil
}

// Name returns the IANA name of enc, or "unknown".
func Name(enc encoding.Encoding) string {
	if enc == nil {
		return DefaultName
	}
	if name, err := ianaindex.MIME.Name(enc); err == nil && name != "" {
		return name
	}
	if name, err := ianaindex.IANA.Name(enc); err == nil && name != "" {
		return name
	}
	return "unknown"
}

// Decode converts raw bytes to text under enc. A nil enc means Default.
// UTF-8 input is validated rather than silently repaired.
func Decode(b []byte, enc encoding.Encoding) (string, error) {
	if enc == nil {
		enc = Default
	}
	if enc == unicode.UTF8 || enc == encoding.Nop {
		if !utf8.Valid(b) {
			return "", fmt.Errorf("invalid UTF-8 sequence at byte %d", firstInvalid(b))
		}
		return string(b), nil
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ReadFile reads and decodes the file at path. Failures are *ReadError.
func ReadFile(path string, enc encoding.Encoding) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{Path: path, Charset: Name(enc), Err: err}
	}
	s, err := Decode(b, enc)
	if err != nil {
		return "", &ReadError{Path: path, Charset: Name(enc), Err: err}
	}
	return s, nil
}

func firstInvalid(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(b)
}
