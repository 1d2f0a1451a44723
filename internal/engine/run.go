package engine

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/proplint/pkg/charset"
	"github.com/leapstack-labs/proplint/pkg/lint"
	"github.com/leapstack-labs/proplint/pkg/lint/crossfile"
)

// Report is the outcome of a lint run.
type Report struct {
	// Files are the analyzed paths, sorted
	Files []string
	// Findings are sorted by file, line and rule
	Findings []lint.Finding
	// Errors are files that could not be read; they are excluded from the run
	Errors []FileError
	// Duration of the whole run
	Duration time.Duration
}

// FileError records a file that could not be analyzed.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// HasErrors returns true if any file could not be read.
func (r *Report) HasErrors() bool {
	return len(r.Errors) > 0
}

// fileResult holds the outcome of analyzing one file.
type fileResult struct {
	ctx      *lint.Context
	findings []lint.Finding
	readErr  error
}

// Lint discovers the project's files and analyzes them.
func (e *Engine) Lint(ctx context.Context) (*Report, error) {
	files, err := e.Discover()
	if err != nil {
		return nil, fmt.Errorf("discovery failed: %w", err)
	}
	return e.LintFiles(ctx, files)
}

// LintFiles analyzes the given files, in parallel, then runs the cross-file
// pass over every file that was read successfully.
//
// A file that cannot be decoded is reported in Report.Errors and skipped.
// A failing check or cross-file check aborts the whole run.
func (e *Engine) LintFiles(ctx context.Context, files []string) (*Report, error) {
	start := time.Now()
	e.logger.Info("starting analysis", "files", len(files))

	results := make([]fileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(e.jobs, len(files))))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := e.analyzeFile(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Files: slices.Clone(files)}
	var parsed []*crossfile.ParsedFile
	for i, res := range results {
		if res.readErr != nil {
			report.Errors = append(report.Errors, FileError{Path: files[i], Err: res.readErr})
			continue
		}
		report.Findings = append(report.Findings, res.findings...)
		parsed = append(parsed, crossfile.FromContext(res.ctx))
	}

	crossFindings, err := e.runCrossFile(ctx, parsed)
	if err != nil {
		return nil, err
	}
	report.Findings = append(report.Findings, crossFindings...)

	sortFindings(report.Findings)
	report.Duration = time.Since(start)

	e.logger.Info("analysis completed",
		"files", len(files),
		"findings", len(report.Findings),
		"unreadable", len(report.Errors),
		"duration_ms", report.Duration.Milliseconds())

	return report, nil
}

// analyzeFile parses and analyzes one file. Decoding failures are returned
// in the result; any other error is fatal.
func (e *Engine) analyzeFile(path string) (fileResult, error) {
	lctx, err := lint.ParseContext(path, e.charset)
	if err != nil {
		var rerr *charset.ReadError
		if errors.As(err, &rerr) {
			e.logger.Warn("skipping unreadable file", "path", path, "error", err)
			return fileResult{readErr: err}, nil
		}
		return fileResult{}, err
	}

	findings, err := e.analyzer.Analyze(lctx)
	if err != nil {
		return fileResult{}, err
	}
	e.logger.Debug("file analyzed", "path", path, "findings", len(findings))
	return fileResult{ctx: lctx, findings: findings}, nil
}

func (e *Engine) runCrossFile(ctx context.Context, parsed []*crossfile.ParsedFile) ([]lint.Finding, error) {
	if len(e.crossChecks) == 0 || len(parsed) == 0 {
		return nil, nil
	}

	collector := &crossfile.Collector{}
	project := crossfile.NewProject(parsed...)
	if err := crossfile.Run(ctx, project, collector, e.crossChecks...); err != nil {
		return nil, fmt.Errorf("cross-file analysis failed: %w", err)
	}

	saved := collector.Issues()
	findings := make([]lint.Finding, 0, len(saved))
	for _, s := range saved {
		severity := lint.SeverityWarning
		if def, ok := crossfile.Lookup(s.Check); ok {
			severity = def.Severity
		}
		findings = append(findings, lint.Finding{
			RuleKey:          s.Check,
			Severity:         e.lintConfig.GetSeverity(s.Check, severity),
			File:             s.File,
			Issue:            s.Issue,
			DocumentationURL: lint.BuildDocURL(s.Check),
		})
	}
	e.logger.Debug("cross-file analysis completed", "checks", e.crossChecks, "findings", len(findings))
	return findings, nil
}

func sortFindings(findings []lint.Finding) {
	slices.SortStableFunc(findings, func(a, b lint.Finding) int {
		return cmp.Or(
			cmp.Compare(a.File.Path, b.File.Path),
			cmp.Compare(a.Issue.Line(), b.Issue.Line()),
			cmp.Compare(a.RuleKey, b.RuleKey),
		)
	})
}
