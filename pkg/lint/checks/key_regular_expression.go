package checks

import (
	"fmt"
	"regexp"

	"github.com/leapstack-labs/proplint/pkg/core"
	"github.com/leapstack-labs/proplint/pkg/lint"
	"github.com/leapstack-labs/proplint/pkg/tree"
)

func init() {
	lint.Register(KeyRegularExpression)
}

// DefaultKeyFormat accepts dotted segments of letters, digits, '-' and '_'.
const DefaultKeyFormat = `^[A-Za-z][-_A-Za-z0-9]*(\.[-_A-Za-z0-9]+)*$`

// KeyRegularExpression enforces a naming convention on keys.
var KeyRegularExpression = lint.RuleDef{
	Key:         "key-regular-expression",
	Name:        "Keys should follow a naming convention",
	Group:       GroupConvention,
	Description: "Keys should match the configured regular expression.",
	Severity:    core.SeverityInfo,
	Remediation: "10min",
	ConfigKeys:  []string{"format"},
	New:         newKeyRegularExpressionCheck,

	BadExample:  `Server Port=8080`,
	GoodExample: `server.port=8080`,
}

// KeyFormatOptions configures key-regular-expression.
type KeyFormatOptions struct {
	Format string `mapstructure:"format"`
}

// KeyRegularExpressionCheck reports keys not matching its pattern.
type KeyRegularExpressionCheck struct {
	lint.SubscriptionCheck
	format  string
	pattern *regexp.Regexp
}

func newKeyRegularExpressionCheck(opts map[string]any) (lint.Check, error) {
	o := KeyFormatOptions{Format: DefaultKeyFormat}
	if err := lint.DecodeOptions(opts, &o); err != nil {
		return nil, err
	}
	pattern, err := regexp.Compile(o.Format)
	if err != nil {
		return nil, fmt.Errorf("format: invalid regular expression %q: %w", o.Format, err)
	}
	return &KeyRegularExpressionCheck{format: o.Format, pattern: pattern}, nil
}

func (c *KeyRegularExpressionCheck) ScanFile(ctx *lint.Context) ([]lint.Issue, error) {
	return c.Subscribe(ctx, c)
}

func (c *KeyRegularExpressionCheck) NodesToVisit() []tree.Kind {
	return []tree.Kind{tree.KindKey}
}

func (c *KeyRegularExpressionCheck) VisitNode(n tree.Node) {
	key := n.(*tree.Key)
	if !c.pattern.MatchString(key.Name()) {
		c.AddPreciseIssue(key, fmt.Sprintf("Rename key %q to match the regular expression: %s", key.Name(), c.format))
	}
}
