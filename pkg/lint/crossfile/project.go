package crossfile

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/leapstack-labs/proplint/pkg/lint"
	"github.com/leapstack-labs/proplint/pkg/tree"
)

// ParsedFile is a file of the project with its tree.
type ParsedFile struct {
	File *lint.InputFile
	Tree *tree.Properties
}

// FromContext returns the parsed file of a per-file analysis context.
func FromContext(ctx *lint.Context) *ParsedFile {
	return &ParsedFile{File: ctx.File, Tree: ctx.Tree}
}

// Project is the read-only set of parsed files given to cross-file checks.
type Project struct {
	files []*ParsedFile
}

// NewProject creates a project. Files are ordered by path.
func NewProject(files ...*ParsedFile) *Project {
	sorted := append([]*ParsedFile(nil), files...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].File.Path < sorted[j].File.Path
	})
	return &Project{files: sorted}
}

// Files returns the project's files ordered by path.
func (p *Project) Files() []*ParsedFile {
	return p.files
}

// Bundle groups a default file with its translations, such as
// messages.properties, messages_fr.properties and messages_fr_CA.properties.
type Bundle struct {
	Dir          string
	Name         string
	Default      *ParsedFile // nil when only translations exist
	Translations []*Translation
}

// Translation is a localized file of a bundle.
type Translation struct {
	*ParsedFile
	Locale string // e.g. "fr" or "fr_CA"
}

// Files returns the default file, if any, followed by the translations.
func (b *Bundle) Files() []*ParsedFile {
	var files []*ParsedFile
	if b.Default != nil {
		files = append(files, b.Default)
	}
	for _, t := range b.Translations {
		files = append(files, t.ParsedFile)
	}
	return files
}

// localeSuffix matches "_ll", "_ll_CC" or "_ll_NNN" at the end of a base name.
var localeSuffix = regexp.MustCompile(`^(.+?)_([a-z]{2})(?:_([A-Z]{2}|[0-9]{3}))?$`)

// BundleName splits a path into the bundle name and the locale. The locale
// is empty for a default file.
//
// Only a known two-letter ISO 639-1 language, optionally followed by a known
// region, is a locale, so application_dev.properties and error_log.properties
// are default files of their own bundles.
func BundleName(path string) (name, locale string) {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	m := localeSuffix.FindStringSubmatch(base)
	if m == nil || !isLocale(m[2], m[3]) {
		return base, ""
	}
	if m[3] == "" {
		return m[1], m[2]
	}
	return m[1], m[2] + "_" + m[3]
}

func isLocale(lang, region string) bool {
	if _, err := language.ParseBase(lang); err != nil {
		return false
	}
	if region == "" {
		return true
	}
	_, err := language.ParseRegion(region)
	return err == nil
}

// Bundles groups the files by directory and bundle name. Bundles are ordered
// by directory then name, translations by locale.
func (p *Project) Bundles() []*Bundle {
	index := make(map[string]*Bundle)
	var bundles []*Bundle
	for _, f := range p.files {
		dir := filepath.Dir(f.File.Path)
		name, locale := BundleName(f.File.Path)
		id := filepath.Join(dir, name)
		b, ok := index[id]
		if !ok {
			b = &Bundle{Dir: dir, Name: name}
			index[id] = b
			bundles = append(bundles, b)
		}
		if locale == "" {
			b.Default = f
		} else {
			b.Translations = append(b.Translations, &Translation{ParsedFile: f, Locale: locale})
		}
	}

	sort.Slice(bundles, func(i, j int) bool {
		if bundles[i].Dir != bundles[j].Dir {
			return bundles[i].Dir < bundles[j].Dir
		}
		return bundles[i].Name < bundles[j].Name
	})
	for _, b := range bundles {
		sort.Slice(b.Translations, func(i, j int) bool {
			return b.Translations[i].Locale < b.Translations[j].Locale
		})
	}
	return bundles
}

// keyIndex lists the distinct keys of a file in source order, with the first
// definition of each.
type keyIndex struct {
	order []string
	first map[string]*tree.Key
}

func indexKeys(t *tree.Properties) *keyIndex {
	idx := &keyIndex{first: make(map[string]*tree.Key)}
	for _, prop := range t.Properties {
		name := prop.Key.Name()
		if _, ok := idx.first[name]; ok {
			continue
		}
		idx.first[name] = prop.Key
		idx.order = append(idx.order, name)
	}
	return idx
}

func (idx *keyIndex) has(name string) bool {
	_, ok := idx.first[name]
	return ok
}
