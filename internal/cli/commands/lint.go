package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/proplint/internal/cli/config"
	"github.com/leapstack-labs/proplint/internal/cli/output"
	"github.com/leapstack-labs/proplint/internal/engine"
	"github.com/leapstack-labs/proplint/pkg/core"
	"github.com/leapstack-labs/proplint/pkg/lint"
)

// ErrLintIssues is returned when the lint run reported issues.
var ErrLintIssues = errors.New("lint issues found")

// LintOptions holds options for the lint command.
type LintOptions struct {
	Format      string   // Output format: text, table, json, yaml
	Disable     []string // Rule keys to disable
	Severity    string   // Minimum severity: error, warning, info, hint
	Rules       []string // Run only specific rules
	NoCrossFile bool     // Skip cross-file checks
	Watch       bool     // Re-run on every change
}

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint [path...]",
		Short: "Run lint rules on properties files",
		Long: `Analyze properties files for potential issues.

Runs every enabled file rule on each file, then the cross-file checks
over the whole set. Rules can be configured in proplint.yaml.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Plain text
  - JSON/YAML: Machine-readable format`,
		Example: `  # Lint the configured sources
  proplint lint

  # Lint specific paths
  proplint lint src/main/resources messages.properties

  # Output as JSON
  proplint lint --format json

  # Disable specific rules
  proplint lint --disable todo-tag,fixme-tag

  # Only report errors
  proplint lint --severity error

  # Re-run on every change
  proplint lint --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, table, json, yaml")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule keys to disable")
	cmd.Flags().StringVar(&opts.Severity, "severity", "hint", "Minimum severity: error, warning, info, hint")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().BoolVar(&opts.NoCrossFile, "no-cross-file", false, "Skip cross-file checks")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-run analysis whenever a file changes")

	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.OutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("rule", completeRuleKeys)
	_ = cmd.RegisterFlagCompletionFunc("disable", completeRuleKeys)

	return cmd
}

func runLint(cmd *cobra.Command, sources []string, opts *LintOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	r := cmdCtx.Renderer

	threshold, ok := core.ParseSeverity(opts.Severity)
	if !ok {
		return fmt.Errorf("unknown severity %q", opts.Severity)
	}

	lintCfg, err := buildLintConfig(cmdCtx.Cfg, opts)
	if err != nil {
		return err
	}

	eng, err := createEngine(cmdCtx.Cfg, engineOptions{
		Sources:     sources,
		Lint:        lintCfg,
		NoCrossFile: opts.NoCrossFile,
	}, cmdCtx.Logger)
	if err != nil {
		return err
	}

	if opts.Watch {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		r.Println(r.Styles().Muted.Render("Watching for changes. Press Ctrl+C to stop."))
		return eng.Watch(ctx, func(report *engine.Report, err error) {
			if err != nil {
				r.Error(err.Error())
				return
			}
			_ = renderLintReport(r, report, threshold)
		})
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	report, err := eng.Lint(ctx)
	if err != nil {
		return err
	}
	if hasIssues := renderLintReport(r, report, threshold); hasIssues {
		return ErrLintIssues
	}
	if report.HasErrors() {
		return fmt.Errorf("%d file(s) could not be read", len(report.Errors))
	}
	return nil
}

func buildLintConfig(cfg *config.Config, opts *LintOptions) (*lint.Config, error) {
	// Apply project config first (lower precedence)
	var projectLint *config.LintConfig
	if cfg != nil {
		projectLint = cfg.Lint
	}
	lintCfg, err := lint.ConfigFromProject(projectLint)
	if err != nil {
		return nil, fmt.Errorf("invalid lint configuration: %w", err)
	}

	// Apply CLI overrides (higher precedence)
	for _, key := range opts.Disable {
		lintCfg.Disable(strings.TrimSpace(key))
	}

	// If --rule specified, disable all others
	if len(opts.Rules) > 0 {
		enabled := make(map[string]bool)
		for _, key := range opts.Rules {
			enabled[strings.TrimSpace(key)] = true
		}
		for _, info := range allRuleInfos() {
			if !enabled[info.Key] {
				lintCfg.Disable(info.Key)
			}
		}
	}

	return lintCfg, nil
}

// filterBySeverity keeps the findings at least as severe as threshold.
func filterBySeverity(findings []lint.Finding, threshold lint.Severity) []lint.Finding {
	var filtered []lint.Finding
	for _, f := range findings {
		if f.Severity <= threshold {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

// buildLintOutput groups findings by file, keeping the report's order.
func buildLintOutput(report *engine.Report, findings []lint.Finding) output.LintOutput {
	out := output.LintOutput{
		Summary: output.LintSummary{FilesAnalyzed: len(report.Files)},
	}
	for _, f := range findings {
		n := len(out.Files)
		if n == 0 || out.Files[n-1].Path != f.File.Path {
			out.Files = append(out.Files, output.LintFileResult{Path: f.File.Path})
			n++
		}
		out.Files[n-1].Diagnostics = append(out.Files[n-1].Diagnostics, diagnosticOf(f))

		out.Summary.TotalIssues++
		switch f.Severity {
		case lint.SeverityError:
			out.Summary.Errors++
		case lint.SeverityWarning:
			out.Summary.Warnings++
		case lint.SeverityInfo:
			out.Summary.Info++
		case lint.SeverityHint:
			out.Summary.Hints++
		}
	}
	out.Summary.FilesWithIssues = len(out.Files)
	for _, fe := range report.Errors {
		out.Errors = append(out.Errors, output.LintFileError{Path: fe.Path, Error: fe.Err.Error()})
	}
	return out
}

func diagnosticOf(f lint.Finding) output.LintDiagnostic {
	d := output.LintDiagnostic{
		RuleKey:          f.RuleKey,
		Severity:         f.Severity.String(),
		Message:          f.Issue.Message(),
		Line:             f.Issue.Line(),
		DocumentationURL: f.DocumentationURL,
	}
	if precise, ok := f.Issue.(*lint.PreciseIssue); ok {
		loc := precise.PrimaryLocation()
		d.Column = loc.StartColumn()
		d.EndLine = loc.EndLine
		d.EndColumn = loc.EndColumn()
	}
	if cost, ok := f.Issue.Cost(); ok {
		d.EffortToFix = &cost
	}
	for _, loc := range lint.SecondaryLocations(f.Issue) {
		path := f.File.Path
		if loc.File != nil {
			path = loc.File.Path
		}
		sec := output.LintLocation{Path: path, Line: loc.StartLine, Message: loc.Message}
		if !loc.IsFileLevel() {
			sec.Column = loc.StartColumn()
		}
		d.Secondary = append(d.Secondary, sec)
	}
	return d
}

// renderLintReport renders the findings at or above threshold and reports
// whether any were rendered.
func renderLintReport(r *output.Renderer, report *engine.Report, threshold lint.Severity) bool {
	findings := filterBySeverity(report.Findings, threshold)
	result := buildLintOutput(report, findings)

	if written, err := r.Encode(result); written {
		if err != nil {
			r.Error(err.Error())
		}
		return len(findings) > 0
	}

	for _, fe := range result.Errors {
		r.Error(fmt.Sprintf("%s: %s", fe.Path, fe.Error))
	}

	if len(findings) == 0 {
		r.Success(fmt.Sprintf("No lint issues found in %d files", len(report.Files)))
		return false
	}

	if r.EffectiveMode() == output.ModeTable {
		renderLintTable(r, result)
	} else {
		renderLintText(r, result)
	}
	renderLintSummary(r, result.Summary)
	return true
}

func renderLintText(r *output.Renderer, result output.LintOutput) {
	styles := r.Styles()
	for _, file := range result.Files {
		r.Println(styles.FilePath.Render(file.Path))
		for _, d := range file.Diagnostics {
			r.Printf("  %s  %s  %s  %s\n",
				styles.Muted.Render(fmt.Sprintf("%-7s", location(d))),
				severityLabel(r, d.Severity),
				styles.Bold.Render(d.RuleKey),
				d.Message,
			)
			for _, sec := range d.Secondary {
				where := fmt.Sprintf("%s:%d", sec.Path, sec.Line)
				if sec.Line == 0 {
					where = sec.Path
				}
				r.Println(styles.Muted.Render(fmt.Sprintf("           %s %s", where, sec.Message)))
			}
		}
		r.Println("")
	}
}

func renderLintTable(r *output.Renderer, result output.LintOutput) {
	var rows []table.Row
	for _, file := range result.Files {
		for _, d := range file.Diagnostics {
			rows = append(rows, table.Row{file.Path, location(d), d.Severity, d.RuleKey, d.Message})
		}
	}
	r.Table(table.Row{"File", "Location", "Severity", "Rule", "Message"}, rows)
}

func renderLintSummary(r *output.Renderer, summary output.LintSummary) {
	parts := []string{fmt.Sprintf("%d issues", summary.TotalIssues)}
	if summary.Errors > 0 {
		parts = append(parts, fmt.Sprintf("%d errors", summary.Errors))
	}
	if summary.Warnings > 0 {
		parts = append(parts, fmt.Sprintf("%d warnings", summary.Warnings))
	}
	if summary.Info > 0 {
		parts = append(parts, fmt.Sprintf("%d info", summary.Info))
	}
	if summary.Hints > 0 {
		parts = append(parts, fmt.Sprintf("%d hints", summary.Hints))
	}
	r.Printf("Summary: %s in %d of %d files\n", strings.Join(parts, ", "), summary.FilesWithIssues, summary.FilesAnalyzed)
}

// location formats a diagnostic position as line:column, line, or "-" for
// file-level issues.
func location(d output.LintDiagnostic) string {
	switch {
	case d.Line == 0:
		return "-"
	case d.Column == 0:
		return fmt.Sprintf("%d", d.Line)
	default:
		return fmt.Sprintf("%d:%d", d.Line, d.Column)
	}
}

func severityLabel(r *output.Renderer, sev string) string {
	styles := r.Styles()
	label := fmt.Sprintf("%-7s", sev)
	switch sev {
	case "error":
		return styles.Error.Render(label)
	case "warning":
		return styles.Warning.Render(label)
	case "info":
		return styles.Info.Render(label)
	default:
		return styles.Hint.Render(label)
	}
}

func completeRuleKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	var keys []string
	for _, info := range allRuleInfos() {
		keys = append(keys, info.Key)
	}
	return keys, cobra.ShellCompDirectiveNoFileComp
}

