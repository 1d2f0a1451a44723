package engine

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Discover returns the files to analyze, sorted and without duplicates.
//
// A source naming a file is always analyzed. A source naming a directory
// is walked recursively for files carrying one of the configured suffixes;
// hidden directories are skipped.
func (e *Engine) Discover() ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		path = filepath.Clean(path)
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, source := range e.sources {
		info, err := os.Stat(source)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", source, err)
		}
		if !info.IsDir() {
			add(source)
			continue
		}
		err = filepath.WalkDir(source, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != source && isHidden(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if e.matchesSuffix(path) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", source, err)
		}
	}

	slices.Sort(files)
	e.logger.Debug("discovery completed", "files", len(files))
	return files, nil
}

func (e *Engine) matchesSuffix(path string) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return false
	}
	for _, suffix := range e.suffixes {
		if strings.EqualFold(strings.TrimPrefix(suffix, "."), ext) {
			return true
		}
	}
	return false
}

func isHidden(name string) bool {
	return len(name) > 1 && name[0] == '.'
}
