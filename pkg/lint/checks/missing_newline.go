package checks

import (
	"github.com/leapstack-labs/proplint/pkg/core"
	"github.com/leapstack-labs/proplint/pkg/lint"
	"github.com/leapstack-labs/proplint/pkg/tree"
)

func init() {
	lint.Register(MissingNewlineAtEndOfFile)
}

// MissingNewlineAtEndOfFile flags files whose last line has no terminator.
var MissingNewlineAtEndOfFile = lint.RuleDef{
	Key:         "missing-newline-at-end-of-file",
	Name:        "Files should end with a newline",
	Group:       GroupConvention,
	Description: "The last line of a non-empty file should be terminated.",
	Severity:    core.SeverityInfo,
	Remediation: "1min",
	New: func(map[string]any) (lint.Check, error) {
		return &MissingNewlineCheck{}, nil
	},

	Rationale: `Tools that append or concatenate files join an unterminated last line
with whatever comes next.`,
}

// MissingNewlineCheck inspects the trivia before the end-of-file token.
type MissingNewlineCheck struct {
	lint.DoubleDispatchCheck
}

func (c *MissingNewlineCheck) ScanFile(ctx *lint.Context) ([]lint.Issue, error) {
	return c.Dispatch(ctx, c)
}

func (c *MissingNewlineCheck) VisitProperties(n *tree.Properties) {
	trivia := n.EOF.Trivia
	switch {
	case len(trivia) > 0:
		if !trivia[len(trivia)-1].IsNewline() {
			c.AddFileIssue("Add a new line at the end of this file.")
		}
	case len(n.Properties) > 0:
		c.AddFileIssue("Add a new line at the end of this file.")
	}
}
