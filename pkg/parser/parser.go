// Package parser builds the concrete syntax tree of a properties file.
//
// # Usage
//
//	props, err := parser.Parse(content, charmap.ISO8859_1)
//	if err != nil {
//	    // the bytes could not be decoded under the declared charset
//	}
//
// Parsing never fails on property syntax: "key", "key=" and "key:" are
// degenerate but legal properties with no value. A line starting with a
// separator, such as "=v" or ":v", has an empty key: its KEY token is zero
// width and sits where the line starts. The only error is a
// *charset.ReadError when the input cannot be decoded.
//
// # Grammar Overview
//
//	properties → [BOM] property* EOF
//	property   → KEY [SEPARATOR] [VALUE]
//
// Comments, blanks and line terminators never appear in the grammar; they are
// leading trivia of the next token. See lexer.go for the token rules.
package parser

import (
	"golang.org/x/text/encoding"

	"github.com/leapstack-labs/proplint/pkg/charset"
	"github.com/leapstack-labs/proplint/pkg/token"
	"github.com/leapstack-labs/proplint/pkg/tree"
)

// Parser builds a tree from a token stream.
type Parser struct {
	lexer *Lexer
	token token.Token // current token
}

// NewParser creates a new parser for decoded input.
func NewParser(input string) *Parser {
	p := &Parser{lexer: NewLexer(input)}
	p.nextToken()
	return p
}

// Parse decodes content under enc and builds its tree. A nil enc means the
// default charset.
func Parse(content []byte, enc encoding.Encoding) (*tree.Properties, error) {
	text, err := charset.Decode(content, enc)
	if err != nil {
		return nil, &charset.ReadError{Charset: charset.Name(enc), Err: err}
	}
	return ParseString(text), nil
}

// ParseFile reads, decodes and parses the file at path.
func ParseFile(path string, enc encoding.Encoding) (*tree.Properties, error) {
	text, err := charset.ReadFile(path, enc)
	if err != nil {
		return nil, err
	}
	return ParseString(text), nil
}

// ParseString parses already-decoded text.
func ParseString(input string) *tree.Properties {
	return NewParser(input).parseProperties()
}

// nextToken advances to the next token.
func (p *Parser) nextToken() {
	p.token = p.lexer.NextToken()
}

// check returns true if the current token is of the given type.
func (p *Parser) check(t token.TokenType) bool {
	return p.token.Type == t
}

// take wraps the current token as a node and advances.
func (p *Parser) take() *tree.Token {
	t := &tree.Token{Token: p.token}
	p.nextToken()
	return t
}

// properties → [BOM] property* EOF
func (p *Parser) parseProperties() *tree.Properties {
	root := &tree.Properties{}
	if p.check(token.BOM) {
		root.BOM = p.take()
	}
	for !p.check(token.EOF) {
		root.Properties = append(root.Properties, p.parseProperty())
	}
	root.EOF = p.take()
	return root
}

// property → KEY [SEPARATOR] [VALUE]
//
// The lexer only yields a separator or value right after a key on the same
// logical line, so a line holding just a key ends the property.
func (p *Parser) parseProperty() *tree.Property {
	prop := &tree.Property{Key: &tree.Key{Token: p.take()}}
	if p.check(token.SEPARATOR) {
		prop.Separator = p.take()
	}
	if p.check(token.VALUE) {
		prop.Value = &tree.Value{Token: p.take()}
	}
	return prop
}
