package crossfile_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/proplint/pkg/lint"
	"github.com/leapstack-labs/proplint/pkg/lint/crossfile"
	"github.com/leapstack-labs/proplint/pkg/parser"
)

func parsed(path, src string) *crossfile.ParsedFile {
	return &crossfile.ParsedFile{File: lint.NewInputFile(path, nil), Tree: parser.ParseString(src)}
}

func TestBundleName(t *testing.T) {
	tests := []struct {
		path       string
		wantName   string
		wantLocale string
	}{
		{path: "i18n/messages.properties", wantName: "messages"},
		{path: "messages_fr.properties", wantName: "messages", wantLocale: "fr"},
		{path: "messages_fr_CA.properties", wantName: "messages", wantLocale: "fr_CA"},
		{path: "messages_es_419.properties", wantName: "messages", wantLocale: "es_419"},
		{path: "app_config.properties", wantName: "app_config"},
		{path: "error_page_de.properties", wantName: "error_page", wantLocale: "de"},
		{path: "plain", wantName: "plain"},
		{path: "application_dev.properties", wantName: "application_dev"},
		{path: "error_log.properties", wantName: "error_log"},
		{path: "messages_xx.properties", wantName: "messages_xx"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			name, locale := crossfile.BundleName(tt.path)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantLocale, locale)
		})
	}
}

func TestProject_Bundles(t *testing.T) {
	project := crossfile.NewProject(
		parsed("b/messages_fr.properties", ""),
		parsed("a/messages.properties", ""),
		parsed("b/messages.properties", ""),
		parsed("b/messages_de.properties", ""),
		parsed("b/other_it.properties", ""),
	)

	assert.Equal(t, "a/messages.properties", project.Files()[0].File.Path)

	bundles := project.Bundles()
	require.Len(t, bundles, 3)

	assert.Equal(t, "a", bundles[0].Dir)
	assert.Empty(t, bundles[0].Translations)

	assert.Equal(t, "b", bundles[1].Dir)
	assert.Equal(t, "messages", bundles[1].Name)
	require.NotNil(t, bundles[1].Default)
	assert.Equal(t, "b/messages.properties", bundles[1].Default.File.Path)
	require.Len(t, bundles[1].Translations, 2)
	assert.Equal(t, "de", bundles[1].Translations[0].Locale)
	assert.Equal(t, "fr", bundles[1].Translations[1].Locale)
	assert.Len(t, bundles[1].Files(), 3)

	assert.Equal(t, "other", bundles[2].Name)
	assert.Nil(t, bundles[2].Default)
}

func TestDuplicatedKeysAcrossFiles(t *testing.T) {
	project := crossfile.NewProject(
		parsed("first.properties", "x=1\na.b=1\n"),
		parsed("second.properties", "# shared\na.b=2\n"),
	)
	collector := &crossfile.Collector{}

	require.NoError(t, crossfile.Run(context.Background(), project, collector, "duplicated-keys-across-files"))

	saved := collector.Issues()
	require.Len(t, saved, 2)
	for i, other := range []string{"second.properties", "first.properties"} {
		assert.Equal(t, "duplicated-keys-across-files", saved[i].Check)

		issue, ok := saved[i].Issue.(*lint.PreciseIssue)
		require.True(t, ok)
		assert.Equal(t, `Remove the key "a.b": it is also defined in other files.`, issue.Message())
		require.Len(t, issue.SecondaryLocations(), 1)
		secondary := issue.SecondaryLocations()[0]
		assert.Equal(t, other, secondary.File.Path)
		assert.Equal(t, 2, secondary.StartLine)
	}
	assert.Equal(t, "first.properties", saved[0].File.Path)
	assert.Equal(t, 2, saved[0].Issue.Line())
}

func TestDuplicatedKeysAcrossFiles_ProfileFiles(t *testing.T) {
	project := crossfile.NewProject(
		parsed("application.properties", "a.b=1\nx=2\n"),
		parsed("application_dev.properties", "a.b=3\n"),
	)
	collector := &crossfile.Collector{}

	require.NoError(t, crossfile.Run(context.Background(), project, collector,
		"duplicated-keys-across-files", "missing-translations"))

	saved := collector.Issues()
	require.Len(t, saved, 2)
	for _, s := range saved {
		assert.Equal(t, "duplicated-keys-across-files", s.Check)
	}
	assert.Equal(t, "application.properties", saved[0].File.Path)
	assert.Equal(t, "application_dev.properties", saved[1].File.Path)
}

func TestDuplicatedKeysAcrossFiles_TranslationsShareKeys(t *testing.T) {
	project := crossfile.NewProject(
		parsed("messages.properties", "greeting=hello\n"),
		parsed("messages_fr.properties", "greeting=bonjour\n"),
		parsed("messages_de.properties", "greeting=hallo\n"),
	)
	collector := &crossfile.Collector{}

	require.NoError(t, crossfile.Run(context.Background(), project, collector, "duplicated-keys-across-files"))
	assert.Zero(t, collector.Len())
}

func TestMissingTranslations(t *testing.T) {
	project := crossfile.NewProject(
		parsed("messages.properties", "a=1\nb=2\nc=3\n"),
		parsed("messages_fr.properties", "a=un\n"),
		parsed("messages_de.properties", "a=eins\nb=zwei\nc=drei\nd=vier\n"),
		parsed("orphan_it.properties", "z=zeta\n"),
	)
	collector := &crossfile.Collector{}

	require.NoError(t, crossfile.Run(context.Background(), project, collector,
		"missing-translations", "missing-translations-in-default"))

	fr := collector.IssuesFor("messages_fr.properties")
	require.Len(t, fr, 1)
	assert.Equal(t, "Add the following translations: b, c", fr[0].Message())
	assert.Equal(t, 0, fr[0].Line())
	secondaries := lint.SecondaryLocations(fr[0])
	require.Len(t, secondaries, 1)
	assert.Equal(t, "messages.properties", secondaries[0].File.Path)
	assert.True(t, secondaries[0].IsFileLevel())

	assert.Empty(t, collector.IssuesFor("messages_de.properties"))
	assert.Empty(t, collector.IssuesFor("orphan_it.properties"))

	def := collector.IssuesFor("messages.properties")
	require.Len(t, def, 1)
	assert.Equal(t, "Add the following keys to the default bundle: d", def[0].Message())
	secondaries = lint.SecondaryLocations(def[0])
	require.Len(t, secondaries, 1)
	assert.Equal(t, "messages_de.properties", secondaries[0].File.Path)
}

func TestRun_AllRegistered(t *testing.T) {
	assert.Equal(t, []string{
		"duplicated-keys-across-files",
		"missing-translations",
		"missing-translations-in-default",
	}, crossfile.Names())

	project := crossfile.NewProject(
		parsed("messages.properties", "a=1\nb=2\n"),
		parsed("messages_fr.properties", "a=un\n"),
		parsed("errors.properties", "a=oops\n"),
	)
	collector := &crossfile.Collector{}

	require.NoError(t, crossfile.Run(context.Background(), project, collector))

	checks := make(map[string]int)
	for _, saved := range collector.Issues() {
		checks[saved.Check]++
	}
	assert.Equal(t, map[string]int{
		"duplicated-keys-across-files": 3,
		"missing-translations":         1,
	}, checks)

	def, ok := crossfile.Lookup("missing-translations")
	require.True(t, ok)
	assert.Equal(t, "cross-file", def.Info().Type)
}

func TestRun_UnknownCheck(t *testing.T) {
	collector := &crossfile.Collector{}

	err := crossfile.Run(context.Background(), crossfile.NewProject(), collector, "missing-translations", "nope")

	var cerr *crossfile.ConstructionError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "nope", cerr.Check)
	assert.ErrorIs(t, err, crossfile.ErrUnknownCheck)
	assert.EqualError(t, err, "cannot save issues on check nope: unknown cross-file check")
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := crossfile.Run(ctx, crossfile.NewProject(), &crossfile.Collector{})
	assert.ErrorIs(t, err, context.Canceled)
}
