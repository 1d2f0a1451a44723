// Package tree defines the concrete syntax tree of a properties file.
//
// Nodes are immutable once built by the parser. Every node exposes a fixed,
// ordered list of children in which absent optional children are nil, so a
// traversal always sees the same shape for the same kind of node:
//
//	Properties → [BOM] Property* EOF
//	Property   → Key [Separator] [Value]
//	Key        → Token
//	Value      → Token
package tree

import "github.com/leapstack-labs/proplint/pkg/token"

// Kind identifies the type of a tree node.
type Kind int

// Node kinds.
const (
	KindProperties Kind = iota
	KindProperty
	KindKey
	KindValue
	KindToken
)

func (k Kind) String() string {
	switch k {
	case KindProperties:
		return "Properties"
	case KindProperty:
		return "Property"
	case KindKey:
		return "Key"
	case KindValue:
		return "Value"
	case KindToken:
		return "Token"
	default:
		return "Unknown"
	}
}

// Node is implemented by every tree node.
type Node interface {
	Kind() Kind
	// Children returns the node's children in source order. Absent optional
	// children are reported as nil entries.
	Children() []Node
	// Accept dispatches to the visitor method for the node's kind.
	Accept(v Visitor)
	// Span covers the node's tokens, trivia excluded.
	Span() token.Span
}

// Token is a leaf node wrapping a lexical token.
type Token struct {
	token.Token
}

func (t *Token) Kind() Kind       { return KindToken }
func (t *Token) Children() []Node { return nil }
func (t *Token) Accept(v Visitor) { v.VisitToken(t) }
func (t *Token) Span() token.Span { return t.Token.Span }

// Is reports whether t is present and of type tt.
func (t *Token) Is(tt token.TokenType) bool {
	return t != nil && t.Type == tt
}

// Properties is the root of every parsed file.
type Properties struct {
	BOM        *Token // nil when the file has no byte-order mark
	Properties []*Property
	EOF        *Token
}

func (p *Properties) Kind() Kind       { return KindProperties }
func (p *Properties) Accept(v Visitor) { v.VisitProperties(p) }

func (p *Properties) Children() []Node {
	children := make([]Node, 0, len(p.Properties)+2)
	children = append(children, tokenOrNil(p.BOM))
	for _, prop := range p.Properties {
		children = append(children, prop)
	}
	return append(children, tokenOrNil(p.EOF))
}

func (p *Properties) Span() token.Span {
	return spanOf(p)
}

// HasByteOrderMark reports whether the file started with a BOM.
func (p *Properties) HasByteOrderMark() bool {
	return p.BOM != nil
}

// Property is a single key/value entry.
type Property struct {
	Key       *Key
	Separator *Token // '=' or ':'; nil for "key" or "key value"
	Value     *Value // nil for "key", "key=" and "key:"
}

func (p *Property) Kind() Kind       { return KindProperty }
func (p *Property) Accept(v Visitor) { v.VisitProperty(p) }

func (p *Property) Children() []Node {
	children := []Node{p.Key, tokenOrNil(p.Separator), nil}
	if p.Value != nil {
		children[2] = p.Value
	}
	return children
}

func (p *Property) Span() token.Span {
	return spanOf(p)
}

// HasValue reports whether the property has a non-empty value.
func (p *Property) HasValue() bool {
	return p.Value != nil
}

// Key is the left-hand side of a property.
type Key struct {
	Token *Token
}

func (k *Key) Kind() Kind       { return KindKey }
func (k *Key) Accept(v Visitor) { v.VisitKey(k) }
func (k *Key) Children() []Node { return []Node{k.Token} }
func (k *Key) Span() token.Span { return k.Token.Span() }

// Text returns the key exactly as written.
func (k *Key) Text() string {
	return k.Token.Text
}

// Name returns the key with escape sequences decoded.
func (k *Key) Name() string {
	return Unescape(k.Token.Text)
}

// Value is the right-hand side of a property.
type Value struct {
	Token *Token
}

func (v *Value) Kind() Kind         { return KindValue }
func (v *Value) Accept(vis Visitor) { vis.VisitValue(v) }
func (v *Value) Children() []Node   { return []Node{v.Token} }
func (v *Value) Span() token.Span   { return v.Token.Span() }

// Text returns the value exactly as written, continuation lines included.
func (v *Value) Text() string {
	return v.Token.Text
}

// Unescaped returns the logical value: continuations joined and escapes decoded.
func (v *Value) Unescaped() string {
	return Unescape(v.Token.Text)
}

func tokenOrNil(t *Token) Node {
	if t == nil {
		return nil
	}
	return t
}

// spanOf computes a node's span from its first and last tokens.
func spanOf(n Node) token.Span {
	toks := Tokens(n)
	if len(toks) == 0 {
		return token.Span{}
	}
	return token.Span{Start: toks[0].Token.Span.Start, End: toks[len(toks)-1].Token.Span.End}
}
