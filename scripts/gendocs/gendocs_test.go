package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/proplint/internal/cli/config"
)

func TestMarkdownWriter(t *testing.T) {
	w := NewMarkdownWriter()
	w.Header(2, "Title")
	w.Table([]string{"A", "B"}, [][]string{{"x|y", InlineCode("z")}})
	w.CodeBlock("yaml", "a: b\n")

	assert.Equal(t, "## Title\n\n"+
		"| A | B |\n| --- | --- |\n| x\\|y | `z` |\n\n"+
		"```yaml\na: b\n```\n\n", w.String())
}

func TestCleanExample(t *testing.T) {
	assert.Equal(t, "# List\nproplint rules\n\n  nested", cleanExample("  # List\n  proplint rules\n\n    nested\n"))
	assert.Equal(t, "flat", cleanExample("flat"))
}

func TestGenerateAll(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, generate(root, "all", ""))

	for _, file := range []string{
		"docs/configuration.md",
		"docs/cli/index.md",
		"docs/cli/lint.md",
		"docs/rules/index.md",
		"docs/rules/file-rules.md",
		"docs/rules/cross-file-rules.md",
	} {
		assert.FileExists(t, filepath.Join(root, file))
	}

	rules, err := os.ReadFile(filepath.Join(root, "docs/rules/file-rules.md"))
	require.NoError(t, err)
	assert.Contains(t, string(rules), "### duplicated-keys - ")
	assert.Contains(t, string(rules), "maximum_length")

	cross, err := os.ReadFile(filepath.Join(root, "docs/rules/cross-file-rules.md"))
	require.NoError(t, err)
	assert.Contains(t, string(cross), "{#missing-translations}")
}

func TestGenerateOutDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out")
	require.NoError(t, generate(t.TempDir(), "config", out))
	assert.FileExists(t, filepath.Join(out, "configuration.md"))
}

func TestEnvironmentRows(t *testing.T) {
	rows := environmentRows()
	require.Len(t, rows, len(config.DefaultValues()))

	byVar := make(map[string][]string)
	for _, row := range rows {
		byVar[row[0]] = row
	}
	for key := range config.DefaultValues() {
		assert.Contains(t, byVar, InlineCode(config.EnvVar(key)))
	}

	sources := byVar["`PROPLINT_SOURCES`"]
	assert.Equal(t, "`.`", sources[1])
	assert.Contains(t, sources[2], "(comma-separated)")
	assert.Equal(t, "`"+config.DefaultCharset+"`", byVar["`PROPLINT_CHARSET`"][1])
	assert.Equal(t, "`0`", byVar["`PROPLINT_JOBS`"][1])
	assert.NotContains(t, byVar["`PROPLINT_JOBS`"][2], "comma-separated")
}
