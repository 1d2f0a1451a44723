package verifier

import (
	"sort"
	"strconv"
	"strings"

	"github.com/leapstack-labs/proplint/pkg/lint"
	"github.com/leapstack-labs/proplint/pkg/tree"
)

const marker = "Noncompliant"

// expectedIssue is an issue announced by a Noncompliant comment. Nil fields
// were not specified and are not compared.
type expectedIssue struct {
	line        int
	message     *string
	effortToFix *float64
	startColumn *int
	endColumn   *int
	endLine     *int
	secondary   []int // nil when not specified
}

// annotationReader collects expectations from comment trivia.
type annotationReader struct {
	lint.SubscriptionCheck
	expected []*expectedIssue
}

func (r *annotationReader) ScanFile(ctx *lint.Context) ([]lint.Issue, error) {
	return r.Subscribe(ctx, r)
}

func (r *annotationReader) NodesToVisit() []tree.Kind {
	return []tree.Kind{tree.KindToken}
}

func (r *annotationReader) VisitNode(n tree.Node) {
	for _, tr := range n.(*tree.Token).Comments() {
		if len(tr.Text) < 2 {
			continue
		}
		text := strings.TrimSpace(tr.Text[2:])
		if !strings.HasPrefix(text, marker) {
			continue
		}
		issue, err := parseAnnotation(tr.Line(), strings.TrimSpace(text[len(marker):]))
		if err != nil {
			r.Fail(err)
		}
		r.expected = append(r.expected, issue)
	}
}

// parseAnnotation reads the parameter and message blocks following the
// marker in a comment on commentLine.
func parseAnnotation(commentLine int, rest string) (*expectedIssue, error) {
	issue := &expectedIssue{line: commentLine + 1}

	if strings.HasPrefix(rest, "[[") {
		end := strings.Index(rest, "]]")
		if end < 0 {
			return nil, &AnnotationError{Line: commentLine, Param: rest, Reason: "unterminated [[ block"}
		}
		if err := issue.addParams(commentLine, rest[2:end]); err != nil {
			return nil, err
		}
		rest = strings.TrimSpace(rest[end+2:])
	}

	if strings.HasPrefix(rest, "{{") {
		end := strings.Index(rest, "}}")
		if end < 0 {
			return nil, &AnnotationError{Line: commentLine, Param: rest, Reason: "unterminated {{ block"}
		}
		message := rest[2:end]
		issue.message = &message
	}
	return issue, nil
}

func (e *expectedIssue) addParams(commentLine int, params string) error {
	for _, param := range strings.Split(params, ";") {
		name, value, ok := strings.Cut(param, "=")
		if !ok {
			return &AnnotationError{Line: commentLine, Param: param, Reason: "expected name=value"}
		}
		bad := func(err error) error {
			return &AnnotationError{Line: commentLine, Param: param, Reason: err.Error()}
		}

		switch strings.ToLower(name) {
		case "efforttofix":
			cost, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return bad(err)
			}
			e.effortToFix = &cost
		case "sc":
			col, err := strconv.Atoi(value)
			if err != nil {
				return bad(err)
			}
			e.startColumn = &col
		case "ec":
			col, err := strconv.Atoi(value)
			if err != nil {
				return bad(err)
			}
			e.endColumn = &col
		case "sl":
			line, err := lineValue(e.line-1, value)
			if err != nil {
				return bad(err)
			}
			e.line = line
		case "el":
			line, err := lineValue(e.line, value)
			if err != nil {
				return bad(err)
			}
			e.endLine = &line
		case "secondary":
			lines := []int{}
			if value != "" {
				for _, shift := range strings.Split(value, ",") {
					line, err := lineValue(e.line, strings.TrimSpace(shift))
					if err != nil {
						return bad(err)
					}
					lines = append(lines, line)
				}
			}
			sort.Ints(lines)
			e.secondary = lines
		default:
			return &AnnotationError{Line: commentLine, Param: param, Reason: "unknown parameter " + strconv.Quote(name)}
		}
	}
	return nil
}

// lineValue resolves "+N" and "-N" against base; other values are absolute.
func lineValue(base int, shift string) (int, error) {
	switch {
	case strings.HasPrefix(shift, "+"):
		n, err := strconv.Atoi(shift[1:])
		return base + n, err
	case strings.HasPrefix(shift, "-"):
		n, err := strconv.Atoi(shift[1:])
		return base - n, err
	default:
		return strconv.Atoi(shift)
	}
}
