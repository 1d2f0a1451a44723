package config

import (
	"fmt"
	"slices"

	"github.com/leapstack-labs/proplint/pkg/charset"
	"github.com/leapstack-labs/proplint/pkg/core"
)

// OutputFormats lists the accepted values of the output setting.
var OutputFormats = []string{"auto", "text", "table", "json", "yaml"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if len(c.Sources) == 0 {
		return fmt.Errorf("sources must not be empty")
	}
	if len(c.Suffixes) == 0 {
		return fmt.Errorf("suffixes must not be empty")
	}
	if _, err := charset.Lookup(c.Charset); err != nil {
		return err
	}
	if c.OutputFormat != "" && !slices.Contains(OutputFormats, c.OutputFormat) {
		return fmt.Errorf("unknown output format %q (expected one of %v)", c.OutputFormat, OutputFormats)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}
	if c.Lint != nil {
		for key, sev := range c.Lint.Severity {
			if _, ok := core.ParseSeverity(sev); !ok {
				return fmt.Errorf("lint.severity.%s: unknown severity %q", key, sev)
			}
		}
	}
	return nil
}
