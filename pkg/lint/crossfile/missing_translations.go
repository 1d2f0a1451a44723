package crossfile

import (
	"context"
	"fmt"
	"strings"

	"github.com/leapstack-labs/proplint/pkg/core"
	"github.com/leapstack-labs/proplint/pkg/lint"
)

func init() {
	Register(MissingTranslations)
	Register(MissingTranslationsInDefault)
}

// MissingTranslations flags translations lacking keys of their default file.
var MissingTranslations = Def{
	Key:         "missing-translations",
	Name:        "Translations should define every key of the default bundle",
	Group:       "i18n",
	Description: "Each translation should define all the keys of its default file.",
	Severity:    core.SeverityWarning,
	Remediation: "10min",
	New: func(saver IssueSaver) (Check, error) {
		return &MissingTranslationsCheck{saver: saver}, nil
	},

	Rationale: `A missing translation falls back to the default language, so part of
the interface silently appears untranslated.`,
}

// MissingTranslationsInDefault flags default files lacking keys that
// translations define.
var MissingTranslationsInDefault = Def{
	Key:         "missing-translations-in-default",
	Name:        "Default bundles should define every translated key",
	Group:       "i18n",
	Description: "The default file should define all the keys its translations define.",
	Severity:    core.SeverityWarning,
	Remediation: "10min",
	New: func(saver IssueSaver) (Check, error) {
		return &MissingTranslationsInDefaultCheck{saver: saver}, nil
	},

	Rationale: `A key that only exists in translations has no value for every other
locale, and lookups fail there.`,
}

// MissingTranslationsCheck saves a file issue on each translation that lacks
// keys of its bundle's default file.
type MissingTranslationsCheck struct {
	saver IssueSaver
}

func (c *MissingTranslationsCheck) SaveIssues(ctx context.Context, p *Project) error {
	for _, b := range p.Bundles() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if b.Default == nil {
			continue
		}
		defaults := indexKeys(b.Default.Tree)
		for _, t := range b.Translations {
			translated := indexKeys(t.Tree)
			var missing []string
			for _, name := range defaults.order {
				if !translated.has(name) {
					missing = append(missing, name)
				}
			}
			if len(missing) == 0 {
				continue
			}
			issue := lint.NewFileIssue(fmt.Sprintf("Add the following translations: %s", strings.Join(missing, ", "))).
				AddSecondary(lint.NewFileLocation(b.Default.File, "Default bundle"))
			c.saver.SaveIssue(t.File, issue)
		}
	}
	return nil
}

// MissingTranslationsInDefaultCheck saves a file issue on each default file
// that lacks keys defined by its translations.
type MissingTranslationsInDefaultCheck struct {
	saver IssueSaver
}

func (c *MissingTranslationsInDefaultCheck) SaveIssues(ctx context.Context, p *Project) error {
	for _, b := range p.Bundles() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if b.Default == nil || len(b.Translations) == 0 {
			continue
		}
		defaults := indexKeys(b.Default.Tree)
		var missing []string
		seen := make(map[string]bool)
		var sources []*Translation
		for _, t := range b.Translations {
			contributes := false
			for _, name := range indexKeys(t.Tree).order {
				if defaults.has(name) {
					continue
				}
				contributes = true
				if !seen[name] {
					seen[name] = true
					missing = append(missing, name)
				}
			}
			if contributes {
				sources = append(sources, t)
			}
		}
		if len(missing) == 0 {
			continue
		}
		issue := lint.NewFileIssue(fmt.Sprintf("Add the following keys to the default bundle: %s", strings.Join(missing, ", ")))
		for _, t := range sources {
			issue.AddSecondary(lint.NewFileLocation(t.File, "Translation "+t.Locale))
		}
		c.saver.SaveIssue(b.Default.File, issue)
	}
	return nil
}
