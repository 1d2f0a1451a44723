// Package lint provides the check framework for properties files.
//
// # Architecture
//
// The lint package follows a modular architecture with three layers:
//
//  1. Root package (pkg/lint/): issue model, check bases, registry and analyzer
//  2. File checks (pkg/lint/checks/): rules that inspect one parsed file
//  3. Cross-file checks (pkg/lint/crossfile/): rules that compare many parsed files
//
// The verifier in pkg/lint/verifier turns "Noncompliant" comments in sample
// files into expectations and asserts them against a check's output.
//
// # Writing a Check
//
// A check embeds one of two bases and implements ScanFile by handing itself
// back to the base:
//
//	type TodoCheck struct {
//		lint.SubscriptionCheck
//	}
//
//	func (c *TodoCheck) ScanFile(ctx *lint.Context) ([]lint.Issue, error) {
//		return c.Subscribe(ctx, c)
//	}
//
//	func (c *TodoCheck) NodesToVisit() []tree.Kind { return []tree.Kind{tree.KindToken} }
//
//	func (c *TodoCheck) VisitNode(n tree.Node) { ... c.AddPreciseIssue(n, "...") }
//
// DoubleDispatchCheck instead provides a default Visit method per node kind
// that recurses into children; a check overrides only the kinds it needs and
// calls VisitChildren to keep descending.
//
// # Rule Registration
//
// Rules are registered via init() functions when their packages are imported:
//
//	import _ "github.com/leapstack-labs/proplint/pkg/lint/checks"
//
// # Configuration
//
// Use Config to control which rules are enabled, their severity and options:
//
//	config := lint.NewConfig()
//	config.Disable("todo-tag")
//	config.SetSeverity("duplicated-keys", core.SeverityError)
//	config.SetRuleOptions("end-line-characters", map[string]any{"end_line_characters": "CRLF"})
package lint
