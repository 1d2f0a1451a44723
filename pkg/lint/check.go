package lint

import (
	"golang.org/x/text/encoding"

	"github.com/leapstack-labs/proplint/pkg/token"
	"github.com/leapstack-labs/proplint/pkg/tree"
)

// Check scans one parsed file and returns its issues in emission order.
//
// A check instance scans one file at a time. Options are fixed when the
// instance is built by its Factory.
type Check interface {
	ScanFile(ctx *Context) ([]Issue, error)
}

// CharsetAware is implemented by checks that inspect raw file content and
// need the charset before scanning.
type CharsetAware interface {
	SetCharset(enc encoding.Encoding)
}

// Reporter collects the issues of a single scan. Checks get it by embedding
// SubscriptionCheck or DoubleDispatchCheck.
type Reporter struct {
	ctx    *Context
	issues []Issue
}

// Context returns the file being scanned. It is nil outside a scan.
func (r *Reporter) Context() *Context {
	return r.ctx
}

// AddFileIssue reports an issue on the whole file.
func (r *Reporter) AddFileIssue(message string) *FileIssue {
	issue := NewFileIssue(message)
	r.issues = append(r.issues, issue)
	return issue
}

// AddLineIssue reports an issue on a 1-based line.
func (r *Reporter) AddLineIssue(line int, message string) *LineIssue {
	issue := NewLineIssue(line, message)
	r.issues = append(r.issues, issue)
	return issue
}

// AddPreciseIssue reports an issue on the span of n.
func (r *Reporter) AddPreciseIssue(n tree.Node, message string) *PreciseIssue {
	return r.AddIssueAt(NewLocation(n, message))
}

// AddTriviaIssue reports an issue on a comment or other trivia.
func (r *Reporter) AddTriviaIssue(tr token.Trivia, message string) *PreciseIssue {
	return r.AddIssueAt(NewTriviaLocation(tr, message))
}

// AddIssueAt reports an issue on an explicit location.
func (r *Reporter) AddIssueAt(loc IssueLocation) *PreciseIssue {
	issue := NewPreciseIssue(loc)
	r.issues = append(r.issues, issue)
	return issue
}

// AddIssue reports an already built issue.
func (r *Reporter) AddIssue(issue Issue) {
	r.issues = append(r.issues, issue)
}

// Fail aborts the scan. ScanFile returns a *CheckError wrapping err.
func (r *Reporter) Fail(err error) {
	panic(checkFault{err: err})
}

// scan runs walk with r bound to ctx and turns any panic into a CheckError.
func (r *Reporter) scan(owner any, ctx *Context, walk func()) (issues []Issue, err error) {
	r.ctx, r.issues = ctx, nil
	defer func() {
		if rec := recover(); rec != nil {
			issues, err = nil, newCheckError(owner, rec)
		}
		r.ctx, r.issues = nil, nil
	}()
	walk()
	return r.issues, nil
}

// =============================================================================
// Subscription
// =============================================================================

// SubscriptionVisitor is implemented by checks built on SubscriptionCheck.
type SubscriptionVisitor interface {
	// NodesToVisit lists the node kinds VisitNode is called for.
	NodesToVisit() []tree.Kind
	VisitNode(n tree.Node)
}

// FileVisitor is an optional hook called before the walk.
type FileVisitor interface {
	VisitFile(ctx *Context)
}

// FileLeaver is an optional hook called after the walk.
type FileLeaver interface {
	LeaveFile(ctx *Context)
}

// SubscriptionCheck walks the tree once and calls VisitNode for every node
// of a subscribed kind, in source order.
type SubscriptionCheck struct {
	Reporter
}

// Subscribe scans ctx with v, which is normally the embedding check itself.
func (s *SubscriptionCheck) Subscribe(ctx *Context, v SubscriptionVisitor) ([]Issue, error) {
	return s.scan(v, ctx, func() {
		kinds := make(map[tree.Kind]bool)
		for _, k := range v.NodesToVisit() {
			kinds[k] = true
		}
		if fv, ok := v.(FileVisitor); ok {
			fv.VisitFile(ctx)
		}
		tree.Walk(ctx.Tree, func(n tree.Node) bool {
			if kinds[n.Kind()] {
				v.VisitNode(n)
			}
			return true
		})
		if fl, ok := v.(FileLeaver); ok {
			fl.LeaveFile(ctx)
		}
	})
}

// =============================================================================
// Double dispatch
// =============================================================================

// DoubleDispatchCheck provides a tree.Visitor whose methods all recurse into
// children. A check embeds it, overrides the kinds it cares about and calls
// VisitChildren to keep descending.
type DoubleDispatchCheck struct {
	Reporter
	visitor tree.Visitor
}

// Dispatch scans ctx with v, which is normally the embedding check itself.
func (d *DoubleDispatchCheck) Dispatch(ctx *Context, v tree.Visitor) ([]Issue, error) {
	d.visitor = v
	return d.scan(v, ctx, func() {
		ctx.Tree.Accept(v)
	})
}

// VisitChildren dispatches the children of n back to the check.
func (d *DoubleDispatchCheck) VisitChildren(n tree.Node) {
	var v tree.Visitor = d
	if d.visitor != nil {
		v = d.visitor
	}
	tree.AcceptChildren(n, v)
}

func (d *DoubleDispatchCheck) VisitProperties(n *tree.Properties) { d.VisitChildren(n) }
func (d *DoubleDispatchCheck) VisitProperty(n *tree.Property)     { d.VisitChildren(n) }
func (d *DoubleDispatchCheck) VisitKey(n *tree.Key)               { d.VisitChildren(n) }
func (d *DoubleDispatchCheck) VisitValue(n *tree.Value)           { d.VisitChildren(n) }
func (d *DoubleDispatchCheck) VisitToken(n *tree.Token)           { d.VisitChildren(n) }
