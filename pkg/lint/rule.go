package lint

import "github.com/leapstack-labs/proplint/pkg/core"

// Severity is re-exported from core for rule packages.
type Severity = core.Severity

// Severity levels.
const (
	SeverityError   = core.SeverityError
	SeverityWarning = core.SeverityWarning
	SeverityInfo    = core.SeverityInfo
	SeverityHint    = core.SeverityHint
)

// Factory builds a check from its options. It validates the options and
// returns a descriptive error when they are unusable.
type Factory func(opts map[string]any) (Check, error)

// RuleDef describes a file check and how to build it.
type RuleDef struct {
	Key         string   // e.g. "duplicated-keys"
	Name        string   // human-readable title
	Group       string   // e.g. "convention", "pitfall"
	Description string   // one-line summary
	Severity    Severity // default severity
	Remediation string   // constant effort to fix, e.g. "5min"
	ConfigKeys  []string // option names accepted by New
	New         Factory

	// Documentation fields
	Rationale   string
	BadExample  string
	GoodExample string
}

// Info returns the rule's metadata for documentation and tooling.
func (r RuleDef) Info() core.RuleInfo {
	return core.RuleInfo{
		Key:             r.Key,
		Name:            r.Name,
		Group:           r.Group,
		Description:     r.Description,
		DefaultSeverity: r.Severity,
		Remediation:     r.Remediation,
		ConfigKeys:      r.ConfigKeys,
		Type:            "file",
		Rationale:       r.Rationale,
		BadExample:      r.BadExample,
		GoodExample:     r.GoodExample,
	}
}
