package lint

import "fmt"

// Finding is an issue together with the rule that raised it.
type Finding struct {
	RuleKey          string
	Severity         Severity
	File             *InputFile
	Issue            Issue
	DocumentationURL string
}

// Analyzer runs the enabled registered rules against parsed files.
//
// Each call to Analyze builds fresh check instances, so one Analyzer may be
// shared by goroutines analyzing different files.
type Analyzer struct {
	config *Config
	rules  []RuleDef
}

// NewAnalyzer selects the enabled rules and validates their options once.
// A rule whose options are invalid makes the whole analyzer unusable.
func NewAnalyzer(config *Config) (*Analyzer, error) {
	if config == nil {
		config = NewConfig()
	}
	a := &Analyzer{config: config}
	for _, rule := range GetAll() {
		if config.IsDisabled(rule.Key) {
			continue
		}
		if rule.New == nil {
			return nil, fmt.Errorf("rule %s has no factory", rule.Key)
		}
		if _, err := rule.New(config.GetRuleOptions(rule.Key)); err != nil {
			return nil, fmt.Errorf("rule %s: %w", rule.Key, err)
		}
		a.rules = append(a.rules, rule)
	}
	return a, nil
}

// Rules returns the rules the analyzer runs, sorted by key.
func (a *Analyzer) Rules() []RuleDef {
	return a.rules
}

// Analyze runs every rule over ctx. Findings are grouped by rule in key
// order, and in emission order within a rule. A fault in any check aborts
// the file with a *CheckError.
func (a *Analyzer) Analyze(ctx *Context) ([]Finding, error) {
	var findings []Finding
	for _, rule := range a.rules {
		check, err := rule.New(a.config.GetRuleOptions(rule.Key))
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", rule.Key, err)
		}
		if ca, ok := check.(CharsetAware); ok {
			ca.SetCharset(ctx.File.Encoding())
		}
		issues, err := check.ScanFile(ctx)
		if err != nil {
			return nil, withCheckName(err, rule.Key)
		}
		severity := a.config.GetSeverity(rule.Key, rule.Severity)
		for _, issue := range issues {
			findings = append(findings, Finding{
				RuleKey:          rule.Key,
				Severity:         severity,
				File:             ctx.File,
				Issue:            issue,
				DocumentationURL: BuildDocURL(rule.Key),
			})
		}
	}
	return findings, nil
}
