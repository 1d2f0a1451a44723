package lint_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/proplint/pkg/core"
	"github.com/leapstack-labs/proplint/pkg/lint"
	"github.com/leapstack-labs/proplint/pkg/tree"
)

// emptyValues flags properties without a value on their line.
type emptyValues struct {
	lint.SubscriptionCheck
	message string
}

func (c *emptyValues) ScanFile(ctx *lint.Context) ([]lint.Issue, error) { return c.Subscribe(ctx, c) }
func (c *emptyValues) NodesToVisit() []tree.Kind                        { return []tree.Kind{tree.KindProperty} }

func (c *emptyValues) VisitNode(n tree.Node) {
	if p := n.(*tree.Property); !p.HasValue() {
		c.AddLineIssue(p.Key.Token.Line(), c.message)
	}
}

type emptyValuesOptions struct {
	Message string `mapstructure:"message"`
}

func registerTestRules(t *testing.T) {
	t.Helper()
	lint.Clear()
	t.Cleanup(lint.Clear)

	lint.Register(lint.RuleDef{
		Key:        "test-empty",
		Name:       "Empty values",
		Group:      "testing",
		Severity:   lint.SeverityWarning,
		ConfigKeys: []string{"message"},
		New: func(opts map[string]any) (lint.Check, error) {
			o := emptyValuesOptions{Message: "empty"}
			if err := lint.DecodeOptions(opts, &o); err != nil {
				return nil, err
			}
			return &emptyValues{message: o.Message}, nil
		},
	})
	lint.Register(lint.RuleDef{
		Key:      "test-faulty",
		Group:    "testing",
		Severity: lint.SeverityError,
		New: func(map[string]any) (lint.Check, error) {
			return &faultyCheck{fail: func(c *faultyCheck) { c.Fail(errors.New("broken")) }}, nil
		},
	})
}

func TestAnalyzer(t *testing.T) {
	registerTestRules(t)

	tests := []struct {
		name         string
		config       *lint.Config
		wantMessages []string
		wantSeverity core.Severity
	}{
		{
			name:         "defaults",
			config:       lint.NewConfig().Disable("test-faulty"),
			wantMessages: []string{"empty", "empty"},
			wantSeverity: core.SeverityWarning,
		},
		{
			name: "options and severity override",
			config: lint.NewConfig().
				Disable("test-faulty").
				SetSeverity("test-empty", core.SeverityHint).
				SetRuleOptions("test-empty", map[string]any{"message": "no value"}),
			wantMessages: []string{"no value", "no value"},
			wantSeverity: core.SeverityHint,
		},
		{
			name:         "all disabled",
			config:       lint.NewConfig().Disable("test-faulty").Disable("test-empty"),
			wantMessages: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer, err := lint.NewAnalyzer(tt.config)
			require.NoError(t, err)

			findings, err := analyzer.Analyze(newContext(t, "a\nb=1\nc=\n"))
			require.NoError(t, err)

			var messages []string
			for _, f := range findings {
				messages = append(messages, f.Issue.Message())
				assert.Equal(t, "test-empty", f.RuleKey)
				assert.Equal(t, tt.wantSeverity, f.Severity)
				assert.Equal(t, lint.BuildDocURL("test-empty"), f.DocumentationURL)
			}
			assert.Equal(t, tt.wantMessages, messages)
		})
	}
}

func TestAnalyzer_InvalidOptions(t *testing.T) {
	registerTestRules(t)

	config := lint.NewConfig().SetRuleOptions("test-empty", map[string]any{"unknown": true})
	_, err := lint.NewAnalyzer(config)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rule test-empty")
}

func TestAnalyzer_CheckFaultIsFatal(t *testing.T) {
	registerTestRules(t)

	analyzer, err := lint.NewAnalyzer(nil)
	require.NoError(t, err)

	findings, err := analyzer.Analyze(newContext(t, "a=1\n"))

	assert.Nil(t, findings)
	var cerr *lint.CheckError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "test-faulty", cerr.Check)
	assert.EqualError(t, cerr.Err, "broken")
}

func TestRegistry(t *testing.T) {
	registerTestRules(t)

	assert.Equal(t, 2, lint.Count())

	rule, ok := lint.GetByKey("test-empty")
	require.True(t, ok)
	assert.Equal(t, "file", rule.Info().Type)
	assert.Equal(t, []string{"message"}, rule.Info().ConfigKeys)

	_, ok = lint.GetByKey("missing")
	assert.False(t, ok)

	all := lint.GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, "test-empty", all[0].Key)
	assert.Len(t, lint.GetByGroup("testing"), 2)
	assert.Empty(t, lint.GetByGroup("other"))
}

func TestConfigFromProject(t *testing.T) {
	config, err := lint.ConfigFromProject(&core.LintConfig{
		Disabled: []string{"todo-tag"},
		Severity: map[string]string{"duplicated-keys": "error"},
		Rules:    map[string]core.RuleOptions{"too-long-value": {"maximum_length": 80}},
	})
	require.NoError(t, err)

	assert.True(t, config.IsDisabled("todo-tag"))
	assert.Equal(t, core.SeverityError, config.GetSeverity("duplicated-keys", core.SeverityWarning))
	assert.Equal(t, core.SeverityInfo, config.GetSeverity("other", core.SeverityInfo))
	assert.Equal(t, map[string]any{"maximum_length": 80}, config.GetRuleOptions("too-long-value"))

	_, err = lint.ConfigFromProject(&core.LintConfig{Severity: map[string]string{"x": "fatal"}})
	assert.EqualError(t, err, `rule x: unknown severity "fatal"`)
}

func TestDecodeOptions(t *testing.T) {
	type options struct {
		MaximumLength int    `mapstructure:"maximum_length"`
		Format        string `mapstructure:"format"`
	}

	tests := []struct {
		name    string
		opts    map[string]any
		want    options
		wantErr bool
	}{
		{name: "nil keeps defaults", opts: nil, want: options{MaximumLength: 10, Format: "x"}},
		{name: "int", opts: map[string]any{"maximum_length": 20}, want: options{MaximumLength: 20, Format: "x"}},
		{name: "string number", opts: map[string]any{"maximum_length": "30"}, want: options{MaximumLength: 30, Format: "x"}},
		{name: "float from json", opts: map[string]any{"maximum_length": float64(40)}, want: options{MaximumLength: 40, Format: "x"}},
		{name: "unknown key", opts: map[string]any{"maximum": 1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := options{MaximumLength: 10, Format: "x"}
			err := lint.DecodeOptions(tt.opts, &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
