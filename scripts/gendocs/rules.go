package main

import (
	"cmp"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/leapstack-labs/proplint/pkg/core"
	"github.com/leapstack-labs/proplint/pkg/lint"
	_ "github.com/leapstack-labs/proplint/pkg/lint/checks"
	"github.com/leapstack-labs/proplint/pkg/lint/crossfile"
)

// groupDescriptions provides human-readable descriptions for rule groups.
var groupDescriptions = map[string]string{
	"convention": "Rules about formatting and naming conventions.",
	"i18n":       "Checks that translation bundles define the same keys.",
	"pitfall":    "Rules about mistakes that silently change the loaded values.",
	"tag":        "Rules about task tags left in comments.",
}

// generateRuleDocs generates all rule documentation files.
func generateRuleDocs(outDir string) error {
	log.Printf("Generating rule docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var fileRules, crossFileRules []core.RuleInfo
	for _, def := range lint.GetAll() {
		fileRules = append(fileRules, def.Info())
	}
	for _, def := range crossfile.All() {
		crossFileRules = append(crossFileRules, def.Info())
	}

	if err := generateRulesIndex(outDir, len(fileRules), len(crossFileRules)); err != nil {
		return err
	}
	log.Printf("  Generated index.md")

	pages := []struct {
		file, title, summary string
		rules                []core.RuleInfo
	}{
		{"file-rules.md", "File Rules", "Rules run on each properties file on its own.", fileRules},
		{"cross-file-rules.md", "Cross-File Checks", "Checks run once over every analyzed file.", crossFileRules},
	}
	for _, page := range pages {
		if err := generateRulesPage(outDir, page.file, page.title, page.summary, page.rules); err != nil {
			return err
		}
		log.Printf("  Generated %s", page.file)
	}

	return nil
}

// generateRulesIndex generates the rules overview page.
func generateRulesIndex(outDir string, fileCount, crossFileCount int) error {
	w := NewMarkdownWriter()

	w.Frontmatter("Rules", "Lint rules for Java properties files")
	w.GeneratedMarker()

	w.Header(1, "Rules")
	w.Paragraph(fmt.Sprintf("proplint includes **%d file rules** and **%d cross-file checks**.", fileCount, crossFileCount))

	w.Header(2, "Rule Types")
	w.BulletList([]string{
		"[" + Bold("File Rules") + "](/rules/file-rules): analyze one file at a time",
		"[" + Bold("Cross-File Checks") + "](/rules/cross-file-rules): compare the files of a translation bundle",
	})

	w.Header(2, "Severity Levels")
	w.Table(
		[]string{"Severity", "Description"},
		[][]string{
			{InlineCode("error"), "Critical issue that should be fixed"},
			{InlineCode("warning"), "Potential issue that should be reviewed"},
			{InlineCode("info"), "Informational feedback"},
			{InlineCode("hint"), "Suggestion for improvement"},
		},
	)

	w.Header(2, "Configuration")
	w.Paragraph("Rules can be configured in `proplint.yaml`:")
	w.CodeBlock("yaml", `lint:
  disabled:
    - todo-tag                 # disable rule
  severity:
    too-long-value: error      # override severity
  rules:
    too-long-value:
      maximum_length: 120      # rule-specific option`)

	return os.WriteFile(filepath.Join(outDir, "index.md"), w.Bytes(), 0600)
}

// generateRulesPage writes one page documenting rules grouped by group.
func generateRulesPage(outDir, file, title, summary string, rules []core.RuleInfo) error {
	w := NewMarkdownWriter()

	w.Frontmatter(title, summary)
	w.GeneratedMarker()

	w.Header(1, title)
	w.Paragraph(summary)

	slices.SortFunc(rules, func(a, b core.RuleInfo) int {
		return cmp.Or(cmp.Compare(a.Group, b.Group), cmp.Compare(a.Key, b.Key))
	})

	group := ""
	for _, rule := range rules {
		if rule.Group != group {
			group = rule.Group
			w.Line(fmt.Sprintf("## %s {#%s}", capitalizeFirst(group), group))
			w.Newline()
			if desc, ok := groupDescriptions[group]; ok {
				w.Paragraph(desc)
			}
		}
		writeRuleDoc(w, rule)
	}

	return os.WriteFile(filepath.Join(outDir, file), w.Bytes(), 0600)
}

// capitalizeFirst capitalizes the first letter of a string.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// writeRuleDoc writes detailed documentation for a single rule.
func writeRuleDoc(w *MarkdownWriter, rule core.RuleInfo) {
	// Rule header with anchor: ### duplicated-keys - Keys should not be duplicated {#duplicated-keys}
	w.Line(fmt.Sprintf("### %s - %s {#%s}", rule.Key, rule.Name, rule.Key))
	w.Newline()

	w.Line(fmt.Sprintf("**Severity:** %s", InlineCode(rule.DefaultSeverity.String())))
	if rule.Remediation != "" {
		w.Line(fmt.Sprintf("**Remediation:** %s", rule.Remediation))
	}
	w.Newline()

	w.Paragraph(cleanDescription(rule.Description))

	if rule.Rationale != "" {
		w.Header(4, "Why This Matters")
		w.Paragraph(rule.Rationale)
	}

	if rule.BadExample != "" {
		w.Header(4, "Bad")
		w.CodeBlock("properties", rule.BadExample)
	}

	if rule.GoodExample != "" {
		w.Header(4, "Good")
		w.CodeBlock("properties", rule.GoodExample)
	}

	if len(rule.ConfigKeys) > 0 {
		w.Header(4, "Configuration")
		w.Paragraph(fmt.Sprintf("This rule accepts the following configuration options: %s",
			InlineCode(strings.Join(rule.ConfigKeys, ", "))))
	}

	// Horizontal rule between rules for readability
	w.Line("---")
	w.Newline()
}
