package token

// TriviaKind distinguishes the kinds of non-significant text.
type TriviaKind int

// Trivia kinds.
const (
	TriviaComment    TriviaKind = iota // # comment or ! comment, terminator excluded
	TriviaWhitespace                   // run of spaces, tabs and form feeds
	TriviaNewline                      // exactly one line terminator: \n, \r or \r\n
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaComment:
		return "comment"
	case TriviaWhitespace:
		return "whitespace"
	case TriviaNewline:
		return "newline"
	default:
		return "unknown"
	}
}

// Trivia is non-significant text preserved verbatim before a token.
type Trivia struct {
	Kind TriviaKind
	Text string
	Pos  Position
}

// Line returns the line the trivia starts on.
func (t Trivia) Line() int {
	return t.Pos.Line
}

// IsComment returns true if this trivia is a comment line.
func (t Trivia) IsComment() bool {
	return t.Kind == TriviaComment
}

// IsNewline returns true if this trivia is a line terminator.
func (t Trivia) IsNewline() bool {
	return t.Kind == TriviaNewline
}
