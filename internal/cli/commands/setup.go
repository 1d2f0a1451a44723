package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/proplint/internal/cli/config"
	"github.com/leapstack-labs/proplint/internal/cli/output"
	"github.com/leapstack-labs/proplint/internal/engine"
	"github.com/leapstack-labs/proplint/pkg/charset"
	"github.com/leapstack-labs/proplint/pkg/lint"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext. A non-empty format overrides
// the configured output mode.
func NewCommandContext(cmd *cobra.Command, format string) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	mode := output.Mode(cfg.OutputFormat)
	if format != "" {
		mode = output.Mode(format)
	}
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration, or the defaults when none
// was loaded.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}

// engineOptions are the per-invocation settings layered over the config.
type engineOptions struct {
	Sources     []string
	Lint        *lint.Config
	NoCrossFile bool
}

// createEngine creates an engine from the configuration.
func createEngine(cfg *config.Config, opts engineOptions, logger *slog.Logger) (*engine.Engine, error) {
	enc, err := charset.Lookup(cfg.Charset)
	if err != nil {
		return nil, err
	}

	sources := cfg.Sources
	if len(opts.Sources) > 0 {
		sources = opts.Sources
	}

	var crossFile *config.CrossFileConfig
	if cfg.Lint != nil {
		crossFile = cfg.Lint.CrossFile
	}
	var checks []string
	if crossFile != nil {
		checks = crossFile.Checks
	}

	eng, err := engine.New(engine.Config{
		Sources:         sources,
		Suffixes:        cfg.Suffixes,
		Charset:         enc,
		Lint:            opts.Lint,
		CrossFile:       crossFile.IsEnabled() && !opts.NoCrossFile,
		CrossFileChecks: checks,
		Jobs:            cfg.Jobs,
		Logger:          logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	return eng, nil
}
