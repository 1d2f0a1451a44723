package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"github.com/leapstack-labs/proplint/internal/testutil"
	"github.com/leapstack-labs/proplint/pkg/charset"
	"github.com/leapstack-labs/proplint/pkg/lint"
)

// writeFiles creates files under dir, creating parent directories as needed.
func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func newTestEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	cfg.Logger = testutil.NewTestLogger(t)
	if cfg.Suffixes == nil {
		cfg.Suffixes = []string{"properties"}
	}
	e, err := New(cfg)
	require.NoError(t, err)
	return e
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.properties":         "a=1\n",
		"sub/b.PROPERTIES":     "b=1\n",
		".hidden/c.properties": "c=1\n",
		"notes.txt":            "not analyzed\n",
		"explicit.txt":         "x=1\n",
	})

	e := newTestEngine(t, Config{
		Sources: []string{dir, filepath.Join(dir, "explicit.txt"), filepath.Join(dir, "a.properties")},
	})

	files, err := e.Discover()
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.properties"),
		filepath.Join(dir, "explicit.txt"),
		filepath.Join(dir, "sub", "b.PROPERTIES"),
	}, files)
}

func TestDiscover_MissingSource(t *testing.T) {
	e := newTestEngine(t, Config{Sources: []string{filepath.Join(t.TempDir(), "missing")}})

	_, err := e.Discover()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantErr   string
		wantCross []string
	}{
		{
			name:      "all cross-file checks by default",
			cfg:       Config{CrossFile: true},
			wantCross: []string{"duplicated-keys-across-files", "missing-translations", "missing-translations-in-default"},
		},
		{
			name:      "cross-file disabled",
			cfg:       Config{},
			wantCross: nil,
		},
		{
			name:      "selected and disabled checks",
			cfg:       Config{CrossFile: true, CrossFileChecks: []string{"missing-translations", "duplicated-keys-across-files"}, Lint: lint.NewConfig().Disable("missing-translations")},
			wantCross: []string{"duplicated-keys-across-files"},
		},
		{
			name:    "unknown cross-file check",
			cfg:     Config{CrossFile: true, CrossFileChecks: []string{"no-such-check"}},
			wantErr: `unknown cross-file check "no-such-check"`,
		},
		{
			name:    "invalid rule options",
			cfg:     Config{Lint: lint.NewConfig().SetRuleOptions("too-long-value", map[string]any{"maximum_length": -1})},
			wantErr: "invalid lint configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(tt.cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCross, e.CrossFileChecks())
			assert.Equal(t, charset.Default, e.Charset())
			assert.NotEmpty(t, e.Rules())
		})
	}
}

func TestLint(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"messages.properties":    "greeting=Hello\nfarewell=Bye\n",
		"messages_fr.properties": "greeting=Bonjour\n",
		"other.properties":       "k=v\nk=w\n",
	})

	e := newTestEngine(t, Config{Sources: []string{dir}, CrossFile: true, Jobs: 2})

	report, err := e.Lint(context.Background())
	require.NoError(t, err)

	assert.Len(t, report.Files, 3)
	assert.False(t, report.HasErrors())
	require.Len(t, report.Findings, 2)

	first := report.Findings[0]
	assert.Equal(t, "missing-translations", first.RuleKey)
	assert.Equal(t, filepath.Join(dir, "messages_fr.properties"), first.File.Path)
	assert.Equal(t, lint.SeverityWarning, first.Severity)
	assert.Equal(t, "Add the following translations: farewell", first.Issue.Message())
	assert.Equal(t, lint.BuildDocURL("missing-translations"), first.DocumentationURL)

	second := report.Findings[1]
	assert.Equal(t, "duplicated-keys", second.RuleKey)
	assert.Equal(t, filepath.Join(dir, "other.properties"), second.File.Path)
	assert.Equal(t, 2, second.Issue.Line())
	assert.Equal(t, lint.SeverityError, second.Severity)
}

func TestLint_SeverityOverrideAppliesToCrossFile(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"messages.properties":    "greeting=Hello\nfarewell=Bye\n",
		"messages_fr.properties": "greeting=Bonjour\n",
	})

	cfg := lint.NewConfig().SetSeverity("missing-translations", lint.SeverityHint)
	e := newTestEngine(t, Config{Sources: []string{dir}, CrossFile: true, Lint: cfg})

	report, err := e.Lint(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Findings, 1)
	assert.Equal(t, lint.SeverityHint, report.Findings[0].Severity)
}

func TestLint_UnreadableFileIsSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"good.properties": "k=v\n",
		"bad.properties":  "k=\xff\n",
	})

	e := newTestEngine(t, Config{Sources: []string{dir}, Charset: unicode.UTF8, CrossFile: true})

	report, err := e.Lint(context.Background())
	require.NoError(t, err)
	require.True(t, report.HasErrors())
	require.Len(t, report.Errors, 1)
	assert.Equal(t, filepath.Join(dir, "bad.properties"), report.Errors[0].Path)

	var rerr *charset.ReadError
	assert.ErrorAs(t, report.Errors[0].Err, &rerr)
	assert.Contains(t, report.Errors[0].Error(), "bad.properties")
	assert.Empty(t, report.Findings)
}

func TestLintFiles_NoFiles(t *testing.T) {
	e := newTestEngine(t, Config{CrossFile: true})

	report, err := e.LintFiles(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, report.Files)
	assert.Empty(t, report.Findings)
}

func TestLintFiles_Cancelled(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.properties": "a=1\n"})
	e := newTestEngine(t, Config{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.LintFiles(ctx, []string{filepath.Join(dir, "a.properties")})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.properties")
	writeFiles(t, dir, map[string]string{"app.properties": "a=1\n"})

	e := newTestEngine(t, Config{Sources: []string{dir}})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reports := make(chan *Report, 4)
	done := make(chan error, 1)
	go func() {
		done <- e.watch(ctx, 20*time.Millisecond, func(r *Report, err error) {
			if err == nil {
				reports <- r
			}
		})
	}()

	select {
	case r := <-reports:
		assert.Empty(t, r.Findings)
	case <-time.After(5 * time.Second):
		t.Fatal("no initial report")
	}

	require.NoError(t, os.WriteFile(path, []byte("a=1\na=2\n"), 0o644))

	select {
	case r := <-reports:
		require.Len(t, r.Findings, 1)
		assert.Equal(t, "duplicated-keys", r.Findings[0].RuleKey)
	case <-time.After(5 * time.Second):
		t.Fatal("no report after change")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
