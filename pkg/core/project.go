package core

// ProjectConfig holds project-level configuration.
type ProjectConfig struct {
	Sources  []string    `koanf:"sources"`  // directories or files to analyze
	Suffixes []string    `koanf:"suffixes"` // file suffixes to analyze, without dot
	Charset  string      `koanf:"charset"`  // IANA charset of the analyzed files
	Lint     *LintConfig `koanf:"lint"`
}

// LintConfig holds lint rule configuration.
type LintConfig struct {
	// Disabled contains rule keys to disable
	Disabled []string `koanf:"disabled"`

	// Severity maps rule key to severity override (error, warning, info, hint)
	Severity map[string]string `koanf:"severity"`

	// Rules contains rule-specific options
	Rules map[string]RuleOptions `koanf:"rules"`

	// CrossFile holds cross-file check configuration
	CrossFile *CrossFileConfig `koanf:"cross_file"`
}

// RuleOptions holds rule-specific configuration options.
type RuleOptions map[string]any

// CrossFileConfig holds configuration for cross-file checks.
type CrossFileConfig struct {
	// Enabled controls whether cross-file checks run (default: true)
	Enabled *bool `koanf:"enabled"`

	// Checks restricts the run to the named checks; empty means all registered
	Checks []string `koanf:"checks"`
}

// IsEnabled returns whether cross-file checks are enabled.
func (c *CrossFileConfig) IsEnabled() bool {
	if c == nil || c.Enabled == nil {
		return true
	}
	return *c.Enabled
}
