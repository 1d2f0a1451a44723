package crossfile

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/leapstack-labs/proplint/pkg/core"
	"github.com/leapstack-labs/proplint/pkg/lint"
	"github.com/leapstack-labs/proplint/pkg/tree"
)

func init() {
	Register(DuplicatedKeysAcrossFiles)
}

// DuplicatedKeysAcrossFiles flags keys defined in more than one bundle.
var DuplicatedKeysAcrossFiles = Def{
	Key:         "duplicated-keys-across-files",
	Name:        "Keys should not be duplicated across files",
	Group:       "pitfall",
	Description: "A key should be defined in a single bundle of the project.",
	Severity:    core.SeverityWarning,
	Remediation: "5min",
	New: func(saver IssueSaver) (Check, error) {
		return &DuplicatedKeysAcrossFilesCheck{saver: saver}, nil
	},

	Rationale: `When two bundles define the same key, which value an application sees
depends on the order the files are loaded in. Translations of one bundle are
expected to share keys and are not compared with each other.`,
}

// DuplicatedKeysAcrossFilesCheck reports, on every file defining a key that
// another bundle also defines, the first definition in that file with the
// definitions in the other bundles as secondary locations.
type DuplicatedKeysAcrossFilesCheck struct {
	saver IssueSaver
}

type definition struct {
	file   *ParsedFile
	bundle string
	key    *tree.Key
}

func (c *DuplicatedKeysAcrossFilesCheck) SaveIssues(ctx context.Context, p *Project) error {
	var order []string
	defs := make(map[string][]definition)
	for _, b := range p.Bundles() {
		id := filepath.Join(b.Dir, b.Name)
		for _, f := range b.Files() {
			idx := indexKeys(f.Tree)
			for _, name := range idx.order {
				if _, seen := defs[name]; !seen {
					order = append(order, name)
				}
				defs[name] = append(defs[name], definition{file: f, bundle: id, key: idx.first[name]})
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}

	for _, name := range order {
		all := defs[name]
		if !inSeveralBundles(all) {
			continue
		}
		for _, def := range all {
			issue := lint.NewPreciseIssue(lint.NewLocation(def.key,
				fmt.Sprintf("Remove the key %q: it is also defined in other files.", name)))
			for _, other := range all {
				if other.bundle == def.bundle {
					continue
				}
				issue.AddSecondary(lint.NewLocation(other.key, "Duplicated key").InFile(other.file.File))
			}
			c.saver.SaveIssue(def.file.File, issue)
		}
	}
	return nil
}

func inSeveralBundles(defs []definition) bool {
	for _, d := range defs[1:] {
		if d.bundle != defs[0].bundle {
			return true
		}
	}
	return false
}
