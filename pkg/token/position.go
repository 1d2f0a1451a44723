package token

// Position represents a location in the source text.
type Position struct {
	Line   int // 1-based line number
	Column int // 0-based column, counted in runes
	Offset int // 0-based byte offset into the decoded text
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Before reports whether p comes strictly before o.
func (p Position) Before(o Position) bool {
	if p.Line != o.Line {
		return p.Line < o.Line
	}
	return p.Column < o.Column
}

// Span represents a range in source code. End is exclusive.
type Span struct {
	Start Position
	End   Position
}

// Contains returns true if the span contains the given offset.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start.Offset && offset < s.End.Offset
}

// IsValid returns true if both start and end positions are valid.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid()
}

// Union returns the smallest span covering both s and o.
func (s Span) Union(o Span) Span {
	out := s
	if o.Start.Before(out.Start) {
		out.Start = o.Start
	}
	if out.End.Before(o.End) {
		out.End = o.End
	}
	return out
}
