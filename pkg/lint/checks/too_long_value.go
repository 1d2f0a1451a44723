package checks

import (
	"fmt"
	"unicode/utf8"

	"github.com/leapstack-labs/proplint/pkg/core"
	"github.com/leapstack-labs/proplint/pkg/lint"
	"github.com/leapstack-labs/proplint/pkg/tree"
)

func init() {
	lint.Register(TooLongValue)
}

const defaultMaximumLength = 200

// TooLongValue flags values longer than a maximum.
var TooLongValue = lint.RuleDef{
	Key:         "too-long-value",
	Name:        "Values should not be too long",
	Group:       GroupConvention,
	Description: "Logical values should not exceed the configured number of characters.",
	Severity:    core.SeverityWarning,
	Remediation: "5min",
	ConfigKeys:  []string{"maximum_length"},
	New:         newTooLongValueCheck,

	Rationale: `Very long values are hard to review and usually belong in a separate
resource. Continuation lines count toward the logical value.`,
}

// ValueLengthOptions configures too-long-value.
type ValueLengthOptions struct {
	MaximumLength int `mapstructure:"maximum_length"`
}

// TooLongValueCheck reports values whose unescaped length exceeds the maximum.
type TooLongValueCheck struct {
	lint.SubscriptionCheck
	maximum int
}

func newTooLongValueCheck(opts map[string]any) (lint.Check, error) {
	o := ValueLengthOptions{MaximumLength: defaultMaximumLength}
	if err := lint.DecodeOptions(opts, &o); err != nil {
		return nil, err
	}
	if o.MaximumLength <= 0 {
		return nil, fmt.Errorf("maximum_length: must be positive, got %d", o.MaximumLength)
	}
	return &TooLongValueCheck{maximum: o.MaximumLength}, nil
}

func (c *TooLongValueCheck) ScanFile(ctx *lint.Context) ([]lint.Issue, error) {
	return c.Subscribe(ctx, c)
}

func (c *TooLongValueCheck) NodesToVisit() []tree.Kind {
	return []tree.Kind{tree.KindValue}
}

func (c *TooLongValueCheck) VisitNode(n tree.Node) {
	value := n.(*tree.Value)
	if length := utf8.RuneCountInString(value.Unescaped()); length > c.maximum {
		c.AddLineIssue(value.Token.Line(),
			fmt.Sprintf("Reduce the length of this value from %d to at most %d characters.", length, c.maximum))
	}
}
