package verifier

import "fmt"

// AnnotationError reports a malformed Noncompliant comment.
type AnnotationError struct {
	Line   int
	Param  string
	Reason string
}

func (e *AnnotationError) Error() string {
	return fmt.Sprintf("invalid param at line %d: %s: %s", e.Line, e.Param, e.Reason)
}

// MismatchError reports a difference between the expected and actual issues.
type MismatchError struct {
	Line     int    // expected line, or the actual line for unexpected issues
	Field    string // "message", "effortToFix", "start column", ...; empty for missing or unexpected issues
	Expected any
	Actual   any
	Message  string
}

func (e *MismatchError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: expected %v but was %v", e.Message, e.Expected, e.Actual)
}

func missingIssue(line int) *MismatchError {
	return &MismatchError{Line: line, Message: fmt.Sprintf("Missing issue at line %d", line)}
}

func unexpectedIssue(line int, message string) *MismatchError {
	return &MismatchError{Line: line, Message: fmt.Sprintf("Unexpected issue at line %d: %q", line, message)}
}

func badField(line int, field string, expected, actual any) *MismatchError {
	return &MismatchError{
		Line:     line,
		Field:    field,
		Expected: expected,
		Actual:   actual,
		Message:  fmt.Sprintf("Bad %s at line %d", field, line),
	}
}
