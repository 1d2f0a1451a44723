package commands

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/proplint/internal/cli/output"
	"github.com/leapstack-labs/proplint/pkg/core"
	"github.com/leapstack-labs/proplint/pkg/lint"
	"github.com/leapstack-labs/proplint/pkg/lint/crossfile"

	_ "github.com/leapstack-labs/proplint/pkg/lint/checks" // register file rules
)

// Rule types as reported by core.RuleInfo.Type.
const (
	ruleTypeFile      = "file"
	ruleTypeCrossFile = "cross-file"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group   string // Filter by group
	Type    string // Filter by type: file, cross-file
	Verbose bool   // Show full documentation
	Format  string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-key]",
		Short: "List available lint rules",
		Long: `List all available lint rules with their documentation.

Rules are organized by type (file or cross-file) and group (e.g., convention, pitfall).
Use --verbose to see full documentation including examples.`,
		Example: `  # List all rules
  proplint rules

  # Show details for a specific rule
  proplint rules duplicated-keys

  # List cross-file checks only
  proplint rules --type cross-file

  # Output as JSON
  proplint rules --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return completeRuleKeys(cmd, args, toComplete)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().StringVar(&opts.Type, "type", "", "Filter by type: file, cross-file")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show full documentation")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, table, json, yaml")

	return cmd
}

// allRuleInfos returns the metadata of every registered rule, file rules
// first, each type sorted by group and key.
func allRuleInfos() []core.RuleInfo {
	var infos []core.RuleInfo
	for _, def := range lint.GetAll() {
		infos = append(infos, def.Info())
	}
	for _, def := range crossfile.All() {
		infos = append(infos, def.Info())
	}
	slices.SortStableFunc(infos, func(a, b core.RuleInfo) int {
		return cmp.Or(
			cmp.Compare(typeOrder(a.Type), typeOrder(b.Type)),
			cmp.Compare(a.Group, b.Group),
			cmp.Compare(a.Key, b.Key),
		)
	})
	return infos
}

func typeOrder(t string) int {
	if t == ruleTypeFile {
		return 0
	}
	return 1
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	r := NewCommandContext(cmd, opts.Format).Renderer
	rules := filterRulesByOptions(allRuleInfos(), opts)

	out := make([]output.RuleOutput, 0, len(rules))
	for _, rule := range rules {
		out = append(out, ruleOutputOf(rule))
	}
	if written, err := r.Encode(map[string]any{"rules": out, "count": len(out)}); written {
		return err
	}

	if r.EffectiveMode() == output.ModeTable {
		var rows []table.Row
		for _, rule := range rules {
			rows = append(rows, table.Row{rule.Key, rule.Type, rule.Group, rule.DefaultSeverity.String(), rule.Name})
		}
		r.Table(table.Row{"Key", "Type", "Group", "Severity", "Name"}, rows)
		return nil
	}

	listRulesText(r, rules, opts.Verbose)
	return nil
}

func filterRulesByOptions(rules []core.RuleInfo, opts *RulesOptions) []core.RuleInfo {
	if opts.Group == "" && opts.Type == "" {
		return rules
	}

	var filtered []core.RuleInfo
	for _, r := range rules {
		if opts.Group != "" && r.Group != opts.Group {
			continue
		}
		if opts.Type != "" && r.Type != opts.Type {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

func showRule(cmd *cobra.Command, key string, opts *RulesOptions) error {
	r := NewCommandContext(cmd, opts.Format).Renderer

	idx := slices.IndexFunc(allRuleInfos(), func(info core.RuleInfo) bool { return info.Key == key })
	if idx < 0 {
		return fmt.Errorf("rule %q not found", key)
	}
	rule := allRuleInfos()[idx]

	if written, err := r.Encode(ruleOutputOf(rule)); written {
		return err
	}
	showRuleText(r, rule)
	return nil
}

func ruleOutputOf(rule core.RuleInfo) output.RuleOutput {
	return output.RuleOutput{
		Key:             rule.Key,
		Name:            rule.Name,
		Type:            rule.Type,
		Group:           rule.Group,
		DefaultSeverity: rule.DefaultSeverity.String(),
		Description:     rule.Description,
		Remediation:     rule.Remediation,
		ConfigKeys:      rule.ConfigKeys,
		Rationale:       rule.Rationale,
		BadExample:      rule.BadExample,
		GoodExample:     rule.GoodExample,
		DocURL:          lint.BuildDocURL(rule.Key),
	}
}

// listRulesText outputs rules in styled text format.
func listRulesText(r *output.Renderer, rules []core.RuleInfo, verbose bool) {
	styles := r.Styles()

	fileCount, crossCount := 0, 0
	for _, rule := range rules {
		if rule.Type == ruleTypeFile {
			fileCount++
		} else {
			crossCount++
		}
	}

	r.Println("")
	r.Header(1, fmt.Sprintf("Lint Rules (%d file, %d cross-file)", fileCount, crossCount))
	r.Println("")

	currentType := ""
	currentGroup := ""

	for _, rule := range rules {
		// Type header
		if rule.Type != currentType {
			currentType = rule.Type
			currentGroup = ""
			typeLabel := "File Rules"
			if currentType == ruleTypeCrossFile {
				typeLabel = "Cross-File Checks"
			}
			r.Header(2, typeLabel)
			r.Println("")
		}

		// Group header
		if rule.Group != currentGroup {
			currentGroup = rule.Group
			r.Println(styles.Bold.Render("  " + capitalizeFirst(currentGroup)))
		}

		r.Printf("    %s  %s - %s\n",
			styles.Muted.Render(rule.Key),
			rule.Name,
			getSeverityStyle(styles, rule.DefaultSeverity).Render(rule.DefaultSeverity.String()),
		)

		if verbose {
			r.Println(styles.Muted.Render("        " + rule.Description))
			if rule.Rationale != "" {
				r.Println(styles.Muted.Render("        Why: " + truncateOneLine(rule.Rationale, 80)))
			}
			r.Println("")
		}
	}

	r.Println("")
	r.Println(styles.Muted.Render("Use 'proplint rules <rule-key>' for detailed documentation"))
	r.Println("")
}

// showRuleText displays detailed rule info in text format.
func showRuleText(r *output.Renderer, rule core.RuleInfo) {
	styles := r.Styles()

	r.Println("")
	r.Header(1, fmt.Sprintf("%s - %s", rule.Key, rule.Name))
	r.Println("")

	r.Printf("  %s: %s\n", styles.Bold.Render("Type"), rule.Type)
	r.Printf("  %s: %s\n", styles.Bold.Render("Group"), rule.Group)
	r.Printf("  %s: %s\n", styles.Bold.Render("Severity"), rule.DefaultSeverity.String())
	if rule.Remediation != "" {
		r.Printf("  %s: %s\n", styles.Bold.Render("Remediation"), rule.Remediation)
	}
	r.Println("")

	r.Println(styles.Bold.Render("Description"))
	r.Println("  " + rule.Description)
	r.Println("")

	if rule.Rationale != "" {
		r.Println(styles.Bold.Render("Why This Matters"))
		for _, line := range strings.Split(rule.Rationale, "\n") {
			r.Println("  " + line)
		}
		r.Println("")
	}

	if rule.BadExample != "" {
		r.Println(styles.Bold.Render("Bad Example"))
		for _, line := range strings.Split(rule.BadExample, "\n") {
			r.Println(styles.Muted.Render("  " + line))
		}
		r.Println("")
	}

	if rule.GoodExample != "" {
		r.Println(styles.Bold.Render("Good Example"))
		for _, line := range strings.Split(rule.GoodExample, "\n") {
			r.Println(styles.Success.Render("  " + line))
		}
		r.Println("")
	}

	if len(rule.ConfigKeys) > 0 {
		r.Println(styles.Bold.Render("Configuration"))
		r.Printf("  Options: %s\n", strings.Join(rule.ConfigKeys, ", "))
		r.Println("")
	}

	r.Printf("  %s: %s\n", styles.Bold.Render("Documentation"), lint.BuildDocURL(rule.Key))
}

// Helper functions

func getSeverityStyle(styles *output.Styles, sev core.Severity) lipgloss.Style {
	switch sev {
	case core.SeverityError:
		return styles.Error
	case core.SeverityWarning:
		return styles.Warning
	case core.SeverityInfo:
		return styles.Info
	default:
		return styles.Muted
	}
}

func truncateOneLine(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
