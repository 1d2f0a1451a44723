package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/proplint/pkg/lint"
	"github.com/leapstack-labs/proplint/pkg/parser"
)

func TestIssueLocation_Columns(t *testing.T) {
	props := parser.ParseString("first=1\n  second = two\n")
	key := props.Properties[1].Key

	loc := lint.NewLocation(key, "msg")
	assert.Equal(t, 2, loc.StartLine)
	assert.Equal(t, 2, loc.StartLineOffset)
	assert.Equal(t, 3, loc.StartColumn())
	assert.Equal(t, 8, loc.EndLineOffset)
	assert.Equal(t, 9, loc.EndColumn())
	assert.False(t, loc.IsFileLevel())

	whole := lint.NewRangeLocation(props.Properties[1].Key, props.Properties[1].Value, "range")
	assert.Equal(t, 2, whole.StartLine)
	assert.Equal(t, 2, whole.StartLineOffset)
	assert.Equal(t, 14, whole.EndLineOffset)
}

func TestIssueLocation_Trivia(t *testing.T) {
	props := parser.ParseString("a=1\n  # TODO later\nb=2\n")
	comments := props.Properties[1].Key.Token.Comments()
	require.Len(t, comments, 1)

	loc := lint.NewTriviaLocation(comments[0], "todo")
	assert.Equal(t, 2, loc.StartLine)
	assert.Equal(t, 3, loc.StartColumn())
	assert.Equal(t, 2, loc.EndLine)
	assert.Equal(t, 15, loc.EndColumn())
}

func TestIssue_Shapes(t *testing.T) {
	file := lint.NewFileIssue("file")
	assert.Equal(t, 0, file.Line())
	_, ok := file.Cost()
	assert.False(t, ok)

	line := lint.NewLineIssue(4, "line").WithCost(2.5)
	assert.Equal(t, 4, line.Line())
	cost, ok := line.Cost()
	assert.True(t, ok)
	assert.InDelta(t, 2.5, cost, 0)

	precise := lint.NewPreciseIssue(lint.IssueLocation{StartLine: 7, Message: "precise"}).
		AddSecondary(lint.IssueLocation{StartLine: 3, Message: "first"}).
		AddSecondary(lint.IssueLocation{StartLine: 1, Message: "second"})
	assert.Equal(t, 7, precise.Line())
	assert.Equal(t, "precise", precise.Message())
	secondaries := lint.SecondaryLocations(precise)
	require.Len(t, secondaries, 2)
	assert.Equal(t, 3, secondaries[0].StartLine)
	assert.Equal(t, 1, secondaries[1].StartLine)

	assert.Nil(t, lint.SecondaryLocations(line))
}

func TestIssue_NonPositiveCostPanics(t *testing.T) {
	tests := []struct {
		name string
		cost float64
	}{
		{name: "zero", cost: 0},
		{name: "negative", cost: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, func() { lint.NewFileIssue("x").WithCost(tt.cost) })
			assert.Panics(t, func() { lint.NewLineIssue(1, "x").WithCost(tt.cost) })
			assert.Panics(t, func() { lint.NewPreciseIssue(lint.IssueLocation{}).WithCost(tt.cost) })
		})
	}
}
