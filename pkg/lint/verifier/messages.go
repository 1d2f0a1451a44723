package verifier

import (
	"cmp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"

	"github.com/leapstack-labs/proplint/pkg/charset"
	"github.com/leapstack-labs/proplint/pkg/lint"
)

// Messages walks the issues of a check one at a time, for tests that state
// their expectations in Go rather than in the sample file:
//
//	verifier.Issues(t, check, "testdata/sample.properties", nil).
//		Next().AtLine(2).WithMessage("Remove this duplicated key.").
//		Next().AtLine(8).WithCost(2).
//		NoMore()
type Messages struct {
	t       testing.TB
	issues  []lint.Issue
	current lint.Issue
	pos     int
}

// Issues scans the file at path with check. Issues are ordered by line, then
// by message. A nil enc means ISO-8859-1.
func Issues(t testing.TB, check lint.Check, path string, enc encoding.Encoding) *Messages {
	t.Helper()
	if enc == nil {
		enc = charset.Default
	}
	ctx, err := lint.ParseContext(path, enc)
	require.NoError(t, err)
	return IssuesOf(t, check, ctx)
}

// IssuesOf is Issues for an already parsed file.
func IssuesOf(t testing.TB, check lint.Check, ctx *lint.Context) *Messages {
	t.Helper()
	if ca, ok := check.(lint.CharsetAware); ok {
		ca.SetCharset(ctx.File.Encoding())
	}
	issues, err := check.ScanFile(ctx)
	require.NoError(t, err)

	issues = slices.Clone(issues)
	slices.SortStableFunc(issues, func(a, b lint.Issue) int {
		return cmp.Or(cmp.Compare(a.Line(), b.Line()), cmp.Compare(a.Message(), b.Message()))
	})
	return &Messages{t: t, issues: issues}
}

// Next moves to the next issue and fails if there is none.
func (m *Messages) Next() *Messages {
	m.t.Helper()
	require.Less(m.t, m.pos, len(m.issues), "no more issues")
	m.current = m.issues[m.pos]
	m.pos++
	return m
}

// AtLine asserts the line of the current issue. File issues are at line 0.
func (m *Messages) AtLine(line int) *Messages {
	m.t.Helper()
	m.requireCurrent()
	assert.Equal(m.t, line, m.current.Line(), "line of issue %d", m.pos)
	return m
}

// WithMessage asserts the message of the current issue.
func (m *Messages) WithMessage(message string) *Messages {
	m.t.Helper()
	m.requireCurrent()
	assert.Equal(m.t, message, m.current.Message(), "message of issue %d", m.pos)
	return m
}

// WithCost asserts the effort to fix of the current issue.
func (m *Messages) WithCost(cost float64) *Messages {
	m.t.Helper()
	m.requireCurrent()
	actual, ok := m.current.Cost()
	require.True(m.t, ok, "issue %d has no effort to fix", m.pos)
	assert.InDelta(m.t, cost, actual, 0, "effort to fix of issue %d", m.pos)
	return m
}

// NoMore asserts that every issue has been visited.
func (m *Messages) NoMore() {
	m.t.Helper()
	if m.pos < len(m.issues) {
		extra := m.issues[m.pos]
		assert.Fail(m.t, "unexpected issue", "at line %d: %q", extra.Line(), extra.Message())
	}
}

func (m *Messages) requireCurrent() {
	m.t.Helper()
	require.NotNil(m.t, m.current, "call Next first")
}
