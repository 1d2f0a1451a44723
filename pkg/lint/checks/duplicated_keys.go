package checks

import (
	"fmt"

	"github.com/leapstack-labs/proplint/pkg/core"
	"github.com/leapstack-labs/proplint/pkg/lint"
	"github.com/leapstack-labs/proplint/pkg/tree"
)

func init() {
	lint.Register(DuplicatedKeys)
}

// DuplicatedKeys flags keys defined more than once in a file.
var DuplicatedKeys = lint.RuleDef{
	Key:         "duplicated-keys",
	Name:        "Keys should not be duplicated",
	Group:       GroupPitfall,
	Description: "A key should be defined only once in a file.",
	Severity:    core.SeverityError,
	Remediation: "5min",
	New: func(map[string]any) (lint.Check, error) {
		return &DuplicatedKeysCheck{}, nil
	},

	Rationale: `Only the last definition of a key is read. Earlier definitions are
dead text that readers still take at face value.`,

	BadExample: `timeout=10
retries=3
timeout=30`,

	GoodExample: `timeout=30
retries=3`,
}

// DuplicatedKeysCheck reports every definition of a key after the first,
// pointing back at the first one. Keys are compared unescaped.
type DuplicatedKeysCheck struct {
	lint.SubscriptionCheck
	first map[string]*tree.Key
}

func (c *DuplicatedKeysCheck) ScanFile(ctx *lint.Context) ([]lint.Issue, error) {
	return c.Subscribe(ctx, c)
}

func (c *DuplicatedKeysCheck) NodesToVisit() []tree.Kind {
	return []tree.Kind{tree.KindKey}
}

func (c *DuplicatedKeysCheck) VisitFile(*lint.Context) {
	c.first = make(map[string]*tree.Key)
}

func (c *DuplicatedKeysCheck) VisitNode(n tree.Node) {
	key := n.(*tree.Key)
	name := key.Name()
	first, ok := c.first[name]
	if !ok {
		c.first[name] = key
		return
	}
	c.AddPreciseIssue(key, fmt.Sprintf("Remove the duplicated key %q.", name)).
		Secondary(first, "First definition")
}
