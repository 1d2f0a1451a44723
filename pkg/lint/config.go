package lint

import (
	"fmt"

	"github.com/leapstack-labs/proplint/pkg/core"
)

// Config controls which rules are enabled, their severity and their options.
type Config struct {
	// DisabledRules contains rule keys to skip
	DisabledRules map[string]bool

	// SeverityOverrides changes the default severity of rules
	SeverityOverrides map[string]Severity

	// RuleOptions holds per-rule options passed to the rule's factory
	RuleOptions map[string]map[string]any
}

// NewConfig creates a default configuration with all rules enabled.
func NewConfig() *Config {
	return &Config{
		DisabledRules:     make(map[string]bool),
		SeverityOverrides: make(map[string]Severity),
		RuleOptions:       make(map[string]map[string]any),
	}
}

// ConfigFromProject converts the lint section of a project file.
// Unknown severity names are rejected.
func ConfigFromProject(lc *core.LintConfig) (*Config, error) {
	config := NewConfig()
	if lc == nil {
		return config, nil
	}
	for _, key := range lc.Disabled {
		config.Disable(key)
	}
	for key, name := range lc.Severity {
		sev, ok := core.ParseSeverity(name)
		if !ok {
			return nil, fmt.Errorf("rule %s: unknown severity %q", key, name)
		}
		config.SetSeverity(key, sev)
	}
	for key, opts := range lc.Rules {
		config.SetRuleOptions(key, opts)
	}
	return config, nil
}

// IsDisabled returns true if the rule should be skipped.
func (c *Config) IsDisabled(ruleKey string) bool {
	if c == nil {
		return false
	}
	return c.DisabledRules[ruleKey]
}

// GetSeverity returns the severity for a rule, applying any override.
func (c *Config) GetSeverity(ruleKey string, defaultSeverity Severity) Severity {
	if c != nil {
		if sev, ok := c.SeverityOverrides[ruleKey]; ok {
			return sev
		}
	}
	return defaultSeverity
}

// GetRuleOptions returns the options configured for a rule, or nil.
func (c *Config) GetRuleOptions(ruleKey string) map[string]any {
	if c == nil {
		return nil
	}
	return c.RuleOptions[ruleKey]
}

// Disable disables a rule by key.
func (c *Config) Disable(ruleKey string) *Config {
	c.DisabledRules[ruleKey] = true
	return c
}

// SetSeverity overrides the severity for a rule.
func (c *Config) SetSeverity(ruleKey string, severity Severity) *Config {
	c.SeverityOverrides[ruleKey] = severity
	return c
}

// SetRuleOptions sets the options for a rule.
func (c *Config) SetRuleOptions(ruleKey string, opts map[string]any) *Config {
	c.RuleOptions[ruleKey] = opts
	return c
}
