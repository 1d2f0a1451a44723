package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/proplint/internal/cli/config"
)

// ConfigField represents a configuration field definition.
type ConfigField struct {
	Name        string
	Type        string
	Default     string
	Description string
	Category    string // "project", "cli", "lint"
}

// getConfigSchema returns the configuration schema definition.
// This is based on internal/cli/config/types.go and pkg/core/project.go.
func getConfigSchema() []ConfigField {
	return []ConfigField{
		// Project settings
		{Name: "sources", Type: "[]string", Default: config.DefaultSource, Description: "Files or directories to analyze, relative to the config file", Category: "project"},
		{Name: "suffixes", Type: "[]string", Default: config.DefaultSuffix, Description: "File suffixes selected inside directories", Category: "project"},
		{Name: "charset", Type: "string", Default: config.DefaultCharset, Description: "Charset the files are decoded with", Category: "project"},

		// CLI settings
		{Name: "output", Type: "string", Default: config.DefaultOutput, Description: "Output format: " + strings.Join(config.OutputFormats, ", "), Category: "cli"},
		{Name: "jobs", Type: "int", Default: "0", Description: "Files analyzed in parallel; 0 means one per CPU", Category: "cli"},
		{Name: "verbose", Type: "bool", Default: "false", Description: "Enable debug logging", Category: "cli"},

		// Lint settings
		{Name: "lint.disabled", Type: "[]string", Description: "Rule keys to skip", Category: "lint"},
		{Name: "lint.severity", Type: "map[string]string", Description: "Severity override per rule key: error, warning, info, hint", Category: "lint"},
		{Name: "lint.rules", Type: "map[string]map", Description: "Options per rule key", Category: "lint"},
		{Name: "lint.cross_file.enabled", Type: "bool", Default: "true", Description: "Run the cross-file checks", Category: "lint"},
		{Name: "lint.cross_file.checks", Type: "[]string", Description: "Cross-file checks to run; empty means all", Category: "lint"},
	}
}

// generateConfigDocs generates the configuration reference page.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating configuration docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()

	w.Frontmatter("Configuration", "proplint configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph("proplint is configured via `proplint.yaml`, searched upward from the working directory. " +
		"Environment variables prefixed with `PROPLINT_` override the file, and flags override both.")

	sections := []struct {
		category string
		title    string
	}{
		{"project", "Project Settings"},
		{"cli", "CLI Settings"},
		{"lint", "Lint Settings"},
	}

	fields := getConfigSchema()
	for _, section := range sections {
		w.Header(2, section.title)
		var rows [][]string
		for _, f := range fields {
			if f.Category != section.category {
				continue
			}
			defVal := f.Default
			if defVal == "" {
				defVal = "-"
			}
			rows = append(rows, []string{InlineCode(f.Name), f.Type, InlineCode(defVal), f.Description})
		}
		w.Table([]string{"Field", "Type", "Default", "Description"}, rows)
	}

	w.Header(2, "Example")
	w.CodeBlock("yaml", `sources:
  - src/main/resources
charset: UTF-8
lint:
  disabled:
    - todo-tag
  severity:
    too-long-value: error
  rules:
    too-long-value:
      maximum_length: 120
  cross_file:
    checks:
      - missing-translations`)

	log.Printf("  Generated configuration.md")
	return os.WriteFile(filepath.Join(outDir, "configuration.md"), w.Bytes(), 0600)
}
