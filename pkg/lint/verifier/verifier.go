package verifier

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"

	"github.com/leapstack-labs/proplint/pkg/charset"
	"github.com/leapstack-labs/proplint/pkg/lint"
)

// Verify parses the sample file at path, reads its Noncompliant comments and
// checks that check raises exactly the announced issues. A nil enc means
// ISO-8859-1.
//
// The returned error is a *MismatchError when the issues differ, an
// *AnnotationError for a malformed comment, or the read or check error that
// prevented the comparison.
func Verify(check lint.Check, path string, enc encoding.Encoding) error {
	if enc == nil {
		enc = charset.Default
	}
	ctx, err := lint.ParseContext(path, enc)
	if err != nil {
		return err
	}
	return VerifyContext(check, ctx)
}

// VerifyContext is Verify for an already parsed file.
func VerifyContext(check lint.Check, ctx *lint.Context) error {
	expected, err := readExpectations(ctx)
	if err != nil {
		return err
	}

	if ca, ok := check.(lint.CharsetAware); ok {
		ca.SetCharset(ctx.File.Encoding())
	}
	actual, err := check.ScanFile(ctx)
	if err != nil {
		return err
	}
	return compare(expected, actual)
}

// Require fails the test when Verify reports an error.
func Require(t testing.TB, check lint.Check, path string) {
	t.Helper()
	RequireWithCharset(t, check, path, charset.Default)
}

// RequireWithCharset is Require for a file in another charset.
func RequireWithCharset(t testing.TB, check lint.Check, path string, enc encoding.Encoding) {
	t.Helper()
	require.NoError(t, Verify(check, path, enc), "verifying %s", path)
}

func readExpectations(ctx *lint.Context) ([]*expectedIssue, error) {
	reader := &annotationReader{}
	if _, err := reader.ScanFile(ctx); err != nil {
		var aerr *AnnotationError
		if errors.As(err, &aerr) {
			return nil, aerr
		}
		return nil, err
	}
	sort.SliceStable(reader.expected, func(i, j int) bool {
		return reader.expected[i].line < reader.expected[j].line
	})
	return reader.expected, nil
}

// compare walks both line-sorted lists in lock-step.
func compare(expected []*expectedIssue, actual []lint.Issue) error {
	actual = append([]lint.Issue(nil), actual...)
	sort.SliceStable(actual, func(i, j int) bool {
		return actual[i].Line() < actual[j].Line()
	})

	for i, exp := range expected {
		if i >= len(actual) {
			return missingIssue(exp.line)
		}
		if err := compareIssue(exp, actual[i]); err != nil {
			return err
		}
	}
	if len(actual) > len(expected) {
		extra := actual[len(expected)]
		return unexpectedIssue(extra.Line(), extra.Message())
	}
	return nil
}

func compareIssue(exp *expectedIssue, act lint.Issue) error {
	switch {
	case act.Line() > exp.line:
		return missingIssue(exp.line)
	case act.Line() < exp.line:
		return unexpectedIssue(act.Line(), act.Message())
	}

	if exp.message != nil && *exp.message != act.Message() {
		return badField(exp.line, "message", *exp.message, act.Message())
	}
	if exp.effortToFix != nil {
		cost, ok := act.Cost()
		if !ok {
			return badField(exp.line, "effortToFix", *exp.effortToFix, "none")
		}
		if cost != *exp.effortToFix {
			return badField(exp.line, "effortToFix", *exp.effortToFix, cost)
		}
	}

	if exp.startColumn != nil || exp.endColumn != nil || exp.endLine != nil {
		precise, ok := act.(*lint.PreciseIssue)
		if !ok {
			return badField(exp.line, "issue type", "precise issue", fmt.Sprintf("%T", act))
		}
		loc := precise.PrimaryLocation()
		if exp.startColumn != nil && *exp.startColumn != loc.StartColumn() {
			return badField(exp.line, "start column", *exp.startColumn, loc.StartColumn())
		}
		if exp.endColumn != nil && *exp.endColumn != loc.EndColumn() {
			return badField(exp.line, "end column", *exp.endColumn, loc.EndColumn())
		}
		if exp.endLine != nil && *exp.endLine != loc.EndLine {
			return badField(exp.line, "end line", *exp.endLine, loc.EndLine)
		}
	}

	if exp.secondary != nil {
		lines := secondaryLines(act)
		if !slices.Equal(exp.secondary, lines) {
			return badField(exp.line, "secondary locations", exp.secondary, lines)
		}
	}
	return nil
}

func secondaryLines(issue lint.Issue) []int {
	lines := []int{}
	for _, loc := range lint.SecondaryLocations(issue) {
		lines = append(lines, loc.StartLine)
	}
	slices.Sort(lines)
	return lines
}
