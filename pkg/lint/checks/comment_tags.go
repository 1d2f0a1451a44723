package checks

import (
	"regexp"

	"github.com/leapstack-labs/proplint/pkg/core"
	"github.com/leapstack-labs/proplint/pkg/lint"
	"github.com/leapstack-labs/proplint/pkg/tree"
)

func init() {
	lint.Register(TodoTag)
	lint.Register(FixmeTag)
}

// TodoTag flags TODO comments.
var TodoTag = lint.RuleDef{
	Key:         "todo-tag",
	Name:        "TODO tags should be handled",
	Group:       GroupTag,
	Description: "TODO comments mark work that was never finished.",
	Severity:    core.SeverityInfo,
	Remediation: "20min",
	New: func(map[string]any) (lint.Check, error) {
		return newCommentTagCheck("TODO", "Complete the task associated to this TODO comment."), nil
	},

	BadExample: `# TODO use the production host
service.host=localhost`,
}

// FixmeTag flags FIXME comments.
var FixmeTag = lint.RuleDef{
	Key:         "fixme-tag",
	Name:        "FIXME tags should be handled",
	Group:       GroupTag,
	Description: "FIXME comments mark known problems.",
	Severity:    core.SeverityWarning,
	Remediation: "20min",
	New: func(map[string]any) (lint.Check, error) {
		return newCommentTagCheck("FIXME", "Take the required action to fix the issue indicated by this FIXME comment."), nil
	},

	BadExample: `# FIXME this leaks the password
db.password=secret`,
}

// CommentTagCheck reports comments containing a tag as a whole word, in any case.
type CommentTagCheck struct {
	lint.SubscriptionCheck
	pattern *regexp.Regexp
	message string
}

func newCommentTagCheck(tag, message string) *CommentTagCheck {
	return &CommentTagCheck{
		pattern: regexp.MustCompile(`(?i)(^|[^\pL])` + tag + `($|[^\pL])`),
		message: message,
	}
}

func (c *CommentTagCheck) ScanFile(ctx *lint.Context) ([]lint.Issue, error) {
	return c.Subscribe(ctx, c)
}

func (c *CommentTagCheck) NodesToVisit() []tree.Kind {
	return []tree.Kind{tree.KindToken}
}

func (c *CommentTagCheck) VisitNode(n tree.Node) {
	for _, comment := range n.(*tree.Token).Comments() {
		if c.pattern.MatchString(comment.Text) {
			c.AddTriviaIssue(comment, c.message)
		}
	}
}
