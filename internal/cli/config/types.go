// Package config provides configuration management for the proplint CLI.
//
// This package extends the shared configuration types from pkg/core
// with CLI-specific fields. The shared types (ProjectConfig, LintConfig)
// are defined in pkg/core and re-exported here via type aliases.
package config

import (
	"github.com/leapstack-labs/proplint/pkg/charset"
	"github.com/leapstack-labs/proplint/pkg/core"
)

// ProjectConfig is an alias for the shared project configuration.
type ProjectConfig = core.ProjectConfig

// LintConfig is an alias for the shared lint configuration.
type LintConfig = core.LintConfig

// RuleOptions is an alias for the shared rule options type.
type RuleOptions = core.RuleOptions

// CrossFileConfig is an alias for the shared cross-file configuration.
type CrossFileConfig = core.CrossFileConfig

// Config holds all CLI configuration options.
type Config struct {
	ProjectConfig `koanf:",squash"`

	Verbose      bool   `koanf:"verbose"`
	OutputFormat string `koanf:"output"`
	Jobs         int    `koanf:"jobs"` // parallel file analysis; 0 means one per CPU

	// ProjectRoot is the directory of the config file, or the working
	// directory when there is none. Relative sources resolve against it.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultSource  = "."
	DefaultSuffix  = "properties"
	DefaultCharset = charset.DefaultName
	DefaultOutput  = "auto" // Auto-detect: TTY=text, non-TTY=plain text without styles
)

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	return &Config{
		ProjectConfig: ProjectConfig{
			Sources:  []string{DefaultSource},
			Suffixes: []string{DefaultSuffix},
			Charset:  DefaultCharset,
		},
		OutputFormat: DefaultOutput,
	}
}
