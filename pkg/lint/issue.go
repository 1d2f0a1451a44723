package lint

import (
	"fmt"
	"unicode/utf8"

	"github.com/leapstack-labs/proplint/pkg/token"
	"github.com/leapstack-labs/proplint/pkg/tree"
)

// Issue is a finding emitted by a check. It is one of *FileIssue,
// *LineIssue or *PreciseIssue.
type Issue interface {
	// Line is the issue's primary line: 0 for file issues.
	Line() int
	Message() string
	// Cost returns the effort to fix, if the check supplied one.
	Cost() (float64, bool)
}

// IssueLocation is a range in a file with its own message.
// Lines are 1-based; line offsets are 0-based rune columns.
type IssueLocation struct {
	File            *InputFile // nil means the file the issue is reported on
	StartLine       int
	StartLineOffset int
	EndLine         int
	EndLineOffset   int // exclusive
	Message         string
}

// NewLocation spans the tokens of n.
func NewLocation(n tree.Node, message string) IssueLocation {
	return spanLocation(n.Span(), message)
}

// NewRangeLocation spans from the start of from to the end of to.
func NewRangeLocation(from, to tree.Node, message string) IssueLocation {
	return spanLocation(token.Span{Start: from.Span().Start, End: to.Span().End}, message)
}

// NewTriviaLocation spans a single-line trivia such as a comment.
func NewTriviaLocation(tr token.Trivia, message string) IssueLocation {
	return IssueLocation{
		StartLine:       tr.Pos.Line,
		StartLineOffset: tr.Pos.Column,
		EndLine:         tr.Pos.Line,
		EndLineOffset:   tr.Pos.Column + utf8.RuneCountInString(tr.Text),
		Message:         message,
	}
}

// NewFileLocation refers to a whole file rather than a range in it.
func NewFileLocation(file *InputFile, message string) IssueLocation {
	return IssueLocation{File: file, Message: message}
}

func spanLocation(span token.Span, message string) IssueLocation {
	return IssueLocation{
		StartLine:       span.Start.Line,
		StartLineOffset: span.Start.Column,
		EndLine:         span.End.Line,
		EndLineOffset:   span.End.Column,
		Message:         message,
	}
}

// InFile returns a copy of l anchored to file.
func (l IssueLocation) InFile(file *InputFile) IssueLocation {
	l.File = file
	return l
}

// StartColumn returns the 1-based start column.
func (l IssueLocation) StartColumn() int {
	return l.StartLineOffset + 1
}

// EndColumn returns the 1-based end column.
func (l IssueLocation) EndColumn() int {
	return l.EndLineOffset + 1
}

// IsFileLevel reports whether the location names a file but no range.
func (l IssueLocation) IsFileLevel() bool {
	return l.StartLine == 0
}

// effort is the optional cost shared by every issue shape.
type effort struct {
	cost    float64
	hasCost bool
}

func (e *effort) Cost() (float64, bool) {
	return e.cost, e.hasCost
}

func (e *effort) set(cost float64) {
	if cost <= 0 {
		panic(fmt.Sprintf("lint: effort to fix must be positive, got %v", cost))
	}
	e.cost, e.hasCost = cost, true
}

// FileIssue is reported on a file as a whole.
type FileIssue struct {
	effort
	message     string
	secondaries []IssueLocation
}

// NewFileIssue creates a file-level issue.
func NewFileIssue(message string) *FileIssue {
	return &FileIssue{message: message}
}

func (i *FileIssue) Line() int       { return 0 }
func (i *FileIssue) Message() string { return i.message }

// WithCost sets the effort to fix. It panics if cost is not positive.
func (i *FileIssue) WithCost(cost float64) *FileIssue {
	i.set(cost)
	return i
}

// AddSecondary attaches a related location, usually another file.
func (i *FileIssue) AddSecondary(loc IssueLocation) *FileIssue {
	i.secondaries = append(i.secondaries, loc)
	return i
}

// SecondaryLocations returns the related locations in attachment order.
func (i *FileIssue) SecondaryLocations() []IssueLocation {
	return i.secondaries
}

// LineIssue is reported on a whole line.
type LineIssue struct {
	effort
	message string
	line    int
}

// NewLineIssue creates a line-level issue.
func NewLineIssue(line int, message string) *LineIssue {
	return &LineIssue{message: message, line: line}
}

func (i *LineIssue) Line() int       { return i.line }
func (i *LineIssue) Message() string { return i.message }

// WithCost sets the effort to fix. It panics if cost is not positive.
func (i *LineIssue) WithCost(cost float64) *LineIssue {
	i.set(cost)
	return i
}

// PreciseIssue is reported on a range, with optional secondary ranges.
type PreciseIssue struct {
	effort
	primary     IssueLocation
	secondaries []IssueLocation
}

// NewPreciseIssue creates a range-level issue.
func NewPreciseIssue(primary IssueLocation) *PreciseIssue {
	return &PreciseIssue{primary: primary}
}

func (i *PreciseIssue) Line() int       { return i.primary.StartLine }
func (i *PreciseIssue) Message() string { return i.primary.Message }

// PrimaryLocation returns the range the issue is reported on.
func (i *PreciseIssue) PrimaryLocation() IssueLocation {
	return i.primary
}

// WithCost sets the effort to fix. It panics if cost is not positive.
func (i *PreciseIssue) WithCost(cost float64) *PreciseIssue {
	i.set(cost)
	return i
}

// Secondary attaches the span of n as a secondary location.
func (i *PreciseIssue) Secondary(n tree.Node, message string) *PreciseIssue {
	return i.AddSecondary(NewLocation(n, message))
}

// AddSecondary attaches a secondary location.
func (i *PreciseIssue) AddSecondary(loc IssueLocation) *PreciseIssue {
	i.secondaries = append(i.secondaries, loc)
	return i
}

// SecondaryLocations returns the secondary locations in attachment order.
func (i *PreciseIssue) SecondaryLocations() []IssueLocation {
	return i.secondaries
}

// SecondaryLocations returns the secondary locations of any issue shape.
func SecondaryLocations(issue Issue) []IssueLocation {
	switch i := issue.(type) {
	case *PreciseIssue:
		return i.secondaries
	case *FileIssue:
		return i.secondaries
	default:
		return nil
	}
}
