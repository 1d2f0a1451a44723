// Package engine drives a lint run over a set of properties files.
// It handles file discovery, parallel per-file analysis and the cross-file pass.
package engine

import (
	"fmt"
	"log/slog"
	"runtime"
	"slices"

	"golang.org/x/text/encoding"

	"github.com/leapstack-labs/proplint/pkg/charset"
	"github.com/leapstack-labs/proplint/pkg/lint"
	"github.com/leapstack-labs/proplint/pkg/lint/crossfile"

	_ "github.com/leapstack-labs/proplint/pkg/lint/checks" // register file checks
)

// Engine orchestrates the analysis of a project.
type Engine struct {
	// Structured logger
	logger *slog.Logger

	sources     []string
	suffixes    []string
	charset     encoding.Encoding
	lintConfig  *lint.Config
	analyzer    *lint.Analyzer
	crossChecks []string
	jobs        int
}

// Config holds engine configuration.
type Config struct {
	// Sources are the files and directories to analyze
	Sources []string
	// Suffixes select which files of a source directory are analyzed, without dot
	Suffixes []string
	// Charset decodes every analyzed file; nil means charset.Default
	Charset encoding.Encoding
	// Lint holds rule selection, severities and options
	Lint *lint.Config
	// CrossFile enables the cross-file pass
	CrossFile bool
	// CrossFileChecks restricts the cross-file pass; empty means all registered
	CrossFileChecks []string
	// Jobs bounds parallel file analysis; zero means one per CPU
	Jobs int
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// New creates an engine. Rule options and cross-file check names are
// validated here, so a misconfigured project fails before any file is read.
func New(cfg Config) (*Engine, error) {
	// Initialize logger (use discard handler if nil)
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	lintCfg := cfg.Lint
	if lintCfg == nil {
		lintCfg = lint.NewConfig()
	}

	analyzer, err := lint.NewAnalyzer(lintCfg)
	if err != nil {
		return nil, fmt.Errorf("invalid lint configuration: %w", err)
	}

	enc := cfg.Charset
	if enc == nil {
		enc = charset.Default
	}

	jobs := cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	var checks []string
	if cfg.CrossFile {
		checks, err = selectCrossFileChecks(cfg.CrossFileChecks, lintCfg)
		if err != nil {
			return nil, err
		}
	}

	sources := cfg.Sources
	if len(sources) == 0 {
		sources = []string{"."}
	}

	e := &Engine{
		logger:      logger,
		sources:     sources,
		suffixes:    cfg.Suffixes,
		charset:     enc,
		lintConfig:  lintCfg,
		analyzer:    analyzer,
		crossChecks: checks,
		jobs:        jobs,
	}

	logger.Debug("engine initialized",
		"sources", sources,
		"charset", charset.Name(enc),
		"rules", len(analyzer.Rules()),
		"cross_file_checks", checks,
		"jobs", jobs)

	return e, nil
}

// Rules returns the file rules the engine runs.
func (e *Engine) Rules() []lint.RuleDef {
	return e.analyzer.Rules()
}

// CrossFileChecks returns the cross-file checks the engine runs.
func (e *Engine) CrossFileChecks() []string {
	return slices.Clone(e.crossChecks)
}

// Charset returns the encoding files are read with.
func (e *Engine) Charset() encoding.Encoding {
	return e.charset
}

func selectCrossFileChecks(names []string, lintCfg *lint.Config) ([]string, error) {
	if len(names) == 0 {
		names = crossfile.Names()
	}
	var out []string
	for _, name := range names {
		if _, ok := crossfile.Lookup(name); !ok {
			return nil, fmt.Errorf("unknown cross-file check %q (available: %v)", name, crossfile.Names())
		}
		if lintCfg.IsDisabled(name) || slices.Contains(out, name) {
			continue
		}
		out = append(out, name)
	}
	return out, nil
}
