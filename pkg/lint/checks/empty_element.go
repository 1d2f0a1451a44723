package checks

import (
	"github.com/leapstack-labs/proplint/pkg/core"
	"github.com/leapstack-labs/proplint/pkg/lint"
	"github.com/leapstack-labs/proplint/pkg/tree"
)

func init() {
	lint.Register(EmptyElement)
}

// EmptyElement flags properties without a value.
var EmptyElement = lint.RuleDef{
	Key:         "empty-element",
	Name:        "Properties should have a value",
	Group:       GroupPitfall,
	Description: "A property without a value reads as an empty string.",
	Severity:    core.SeverityWarning,
	Remediation: "2min",
	New: func(map[string]any) (lint.Check, error) {
		return &EmptyElementCheck{}, nil
	},

	Rationale: `An empty value is rarely intended. It is usually a placeholder that was
never filled in, and it silently overrides any default the application has.`,

	BadExample:  `database.url=`,
	GoodExample: `database.url=jdbc:postgresql://localhost/app`,
}

// EmptyElementCheck reports each property that has no value.
type EmptyElementCheck struct {
	lint.SubscriptionCheck
}

func (c *EmptyElementCheck) ScanFile(ctx *lint.Context) ([]lint.Issue, error) {
	return c.Subscribe(ctx, c)
}

func (c *EmptyElementCheck) NodesToVisit() []tree.Kind {
	return []tree.Kind{tree.KindProperty}
}

func (c *EmptyElementCheck) VisitNode(n tree.Node) {
	if p := n.(*tree.Property); !p.HasValue() {
		c.AddLineIssue(p.Key.Token.Line(), "Either remove this empty element or fill it with a value.")
	}
}
