package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/proplint/pkg/parser"
	"github.com/leapstack-labs/proplint/pkg/tree"
)

type kindRecorder struct {
	kinds []tree.Kind
}

func (r *kindRecorder) VisitProperties(n *tree.Properties) {
	r.kinds = append(r.kinds, n.Kind())
	tree.AcceptChildren(n, r)
}

func (r *kindRecorder) VisitProperty(n *tree.Property) {
	r.kinds = append(r.kinds, n.Kind())
	tree.AcceptChildren(n, r)
}

func (r *kindRecorder) VisitKey(n *tree.Key) {
	r.kinds = append(r.kinds, n.Kind())
	tree.AcceptChildren(n, r)
}

func (r *kindRecorder) VisitValue(n *tree.Value) {
	r.kinds = append(r.kinds, n.Kind())
	tree.AcceptChildren(n, r)
}

func (r *kindRecorder) VisitToken(n *tree.Token) {
	r.kinds = append(r.kinds, n.Kind())
}

func TestAccept_PreOrder(t *testing.T) {
	props := parser.ParseString("a=1\nb\n")

	r := &kindRecorder{}
	props.Accept(r)

	assert.Equal(t, []tree.Kind{
		tree.KindProperties,
		tree.KindProperty, tree.KindKey, tree.KindToken, tree.KindToken, tree.KindValue, tree.KindToken,
		tree.KindProperty, tree.KindKey, tree.KindToken,
		tree.KindToken, // EOF
	}, r.kinds)
}

func TestWalk_MatchesAccept(t *testing.T) {
	props := parser.ParseString("a=1\nb\n")

	var kinds []tree.Kind
	tree.Walk(props, func(n tree.Node) bool {
		kinds = append(kinds, n.Kind())
		return true
	})

	r := &kindRecorder{}
	props.Accept(r)
	assert.Equal(t, r.kinds, kinds)
}

func TestWalk_SkipChildren(t *testing.T) {
	props := parser.ParseString("a=1\nb=2\n")

	count := 0
	tree.Walk(props, func(n tree.Node) bool {
		count++
		return n.Kind() != tree.KindProperty
	})
	// root, two properties, EOF
	assert.Equal(t, 4, count)
}

func TestChildren_FixedShape(t *testing.T) {
	props := parser.ParseString("k\n")
	children := props.Children()
	require.Len(t, children, 3)
	assert.Nil(t, children[0], "no BOM")
	assert.Equal(t, tree.KindProperty, children[1].Kind())
	assert.Equal(t, tree.KindToken, children[2].Kind())

	prop := props.Properties[0].Children()
	require.Len(t, prop, 3)
	assert.NotNil(t, prop[0])
	assert.Nil(t, prop[1])
	assert.Nil(t, prop[2])
}

func TestSpan_Root(t *testing.T) {
	props := parser.ParseString("a=1\nbb=22")
	span := props.Span()
	assert.Equal(t, 1, span.Start.Line)
	assert.Equal(t, 0, span.Start.Column)
	assert.Equal(t, 2, span.End.Line)
	assert.Equal(t, 5, span.End.Column)
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: `a\tb`, want: "a\tb"},
		{in: `a\nb\rc\fd`, want: "a\nb\rc\fd"},
		{in: `\u00e9t\u00e9`, want: "été"},
		{in: `bad\u12`, want: `bad\u12`},
		{in: `\=\:\ \\`, want: `=: \`},
		{in: "one \\\r\n   two", want: "one two"},
		{in: "trailing\\", want: "trailing\\"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, tree.Unescape(tt.in))
		})
	}
}
