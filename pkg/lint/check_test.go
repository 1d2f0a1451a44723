package lint_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/proplint/pkg/lint"
	"github.com/leapstack-labs/proplint/pkg/tree"
)

func newContext(t *testing.T, src string) *lint.Context {
	t.Helper()
	ctx, err := lint.NewContextFromSource("test.properties", []byte(src), nil)
	require.NoError(t, err)
	return ctx
}

// keyLister reports every key through a subscription and records hook order.
type keyLister struct {
	lint.SubscriptionCheck
	events []string
}

func (c *keyLister) ScanFile(ctx *lint.Context) ([]lint.Issue, error) { return c.Subscribe(ctx, c) }
func (c *keyLister) NodesToVisit() []tree.Kind                        { return []tree.Kind{tree.KindKey} }
func (c *keyLister) VisitFile(*lint.Context)                          { c.events = append(c.events, "enter") }
func (c *keyLister) LeaveFile(*lint.Context)                          { c.events = append(c.events, "leave") }

func (c *keyLister) VisitNode(n tree.Node) {
	key := n.(*tree.Key)
	c.events = append(c.events, key.Name())
	c.AddPreciseIssue(key, "key "+key.Name())
}

func TestSubscriptionCheck(t *testing.T) {
	ctx := newContext(t, "b=1\n# comment\na=2\nc\n")
	check := &keyLister{}

	issues, err := check.ScanFile(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"enter", "b", "a", "c", "leave"}, check.events)
	require.Len(t, issues, 3)
	assert.Equal(t, "key b", issues[0].Message())
	assert.Equal(t, 3, issues[1].Line())
	assert.Equal(t, 4, issues[2].Line())
	assert.Nil(t, check.Context(), "context is released after the scan")
}

func TestSubscriptionCheck_FreshIssuesPerScan(t *testing.T) {
	check := &keyLister{}

	first, err := check.ScanFile(newContext(t, "a=1\n"))
	require.NoError(t, err)
	second, err := check.ScanFile(newContext(t, "x=1\ny=2\n"))
	require.NoError(t, err)

	assert.Len(t, first, 1)
	assert.Len(t, second, 2)
}

// propertyCounter intercepts the root, then keeps descending to count keys.
type propertyCounter struct {
	lint.DoubleDispatchCheck
	visited []string
}

func (c *propertyCounter) ScanFile(ctx *lint.Context) ([]lint.Issue, error) {
	return c.Dispatch(ctx, c)
}

func (c *propertyCounter) VisitProperties(n *tree.Properties) {
	c.visited = append(c.visited, "properties")
	c.AddFileIssue("file")
	c.VisitChildren(n)
}

func (c *propertyCounter) VisitKey(n *tree.Key) {
	c.visited = append(c.visited, "key:"+n.Name())
	c.AddLineIssue(n.Token.Line(), "line")
}

func TestDoubleDispatchCheck(t *testing.T) {
	ctx := newContext(t, "a=1\nb\n")
	check := &propertyCounter{}

	issues, err := check.ScanFile(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"properties", "key:a", "key:b"}, check.visited)
	require.Len(t, issues, 3)
	assert.Equal(t, 0, issues[0].Line())
	assert.Equal(t, 1, issues[1].Line())
	assert.Equal(t, 2, issues[2].Line())
}

// tokenTexts relies on the default recursion all the way down to tokens.
type tokenTexts struct {
	lint.DoubleDispatchCheck
	texts []string
}

func (c *tokenTexts) ScanFile(ctx *lint.Context) ([]lint.Issue, error) { return c.Dispatch(ctx, c) }
func (c *tokenTexts) VisitToken(n *tree.Token)                         { c.texts = append(c.texts, n.Text) }

func TestDoubleDispatchCheck_DefaultRecursion(t *testing.T) {
	check := &tokenTexts{}

	_, err := check.ScanFile(newContext(t, "k = v\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"k", "=", "v", ""}, check.texts)
}

type faultyCheck struct {
	lint.SubscriptionCheck
	fail func(c *faultyCheck)
}

func (c *faultyCheck) ScanFile(ctx *lint.Context) ([]lint.Issue, error) { return c.Subscribe(ctx, c) }
func (c *faultyCheck) NodesToVisit() []tree.Kind                        { return []tree.Kind{tree.KindProperty} }

func (c *faultyCheck) VisitNode(n tree.Node) {
	c.AddPreciseIssue(n, "before fault")
	c.fail(c)
}

func TestCheckFaults(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name    string
		fail    func(c *faultyCheck)
		wantErr string
		wantIs  error
	}{
		{
			name:    "explicit fail",
			fail:    func(c *faultyCheck) { c.Fail(errBoom) },
			wantErr: "boom",
			wantIs:  errBoom,
		},
		{
			name:    "panic with value",
			fail:    func(*faultyCheck) { panic("unexpected") },
			wantErr: "panic: unexpected",
		},
		{
			name:    "panic with error",
			fail:    func(*faultyCheck) { panic(errBoom) },
			wantErr: "panic: boom",
			wantIs:  errBoom,
		},
		{
			name:    "non-positive cost",
			fail:    func(c *faultyCheck) { c.AddLineIssue(1, "x").WithCost(0) },
			wantErr: "effort to fix must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := &faultyCheck{fail: tt.fail}

			issues, err := check.ScanFile(newContext(t, "a=1\n"))

			assert.Nil(t, issues)
			var cerr *lint.CheckError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, "*lint_test.faultyCheck", cerr.Check)
			assert.Contains(t, cerr.Error(), tt.wantErr)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
		})
	}
}

func TestContext_ReadContent(t *testing.T) {
	src := "a=caf\xe9\r\n"
	ctx := newContext(t, src)

	content, err := ctx.ReadContent()
	require.NoError(t, err)
	assert.Equal(t, "a=caf\u00e9\r\n", content)
	assert.Equal(t, "test.properties", ctx.File.Name())
}
