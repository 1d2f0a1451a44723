package crossfile

import (
	"context"
	"sort"
	"sync"

	"github.com/leapstack-labs/proplint/pkg/core"
)

// Check compares the files of a project and saves issues on them.
type Check interface {
	SaveIssues(ctx context.Context, p *Project) error
}

// Factory builds a check that reports through saver.
type Factory func(saver IssueSaver) (Check, error)

// Def describes a cross-file check and how to build it.
type Def struct {
	Key         string
	Name        string
	Group       string
	Description string
	Severity    core.Severity
	Remediation string
	New         Factory

	// Documentation fields
	Rationale   string
	BadExample  string
	GoodExample string
}

// Info returns the check's metadata for documentation and tooling.
func (d Def) Info() core.RuleInfo {
	return core.RuleInfo{
		Key:             d.Key,
		Name:            d.Name,
		Group:           d.Group,
		Description:     d.Description,
		DefaultSeverity: d.Severity,
		Remediation:     d.Remediation,
		Type:            "cross-file",
		Rationale:       d.Rationale,
		BadExample:      d.BadExample,
		GoodExample:     d.GoodExample,
	}
}

var registry = struct {
	mu   sync.RWMutex
	defs map[string]Def
}{defs: make(map[string]Def)}

// Register adds a check to the registry, replacing any check with the same key.
// Call this from init() functions.
func Register(def Def) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.defs[def.Key] = def
}

// Lookup returns the check registered under key.
func Lookup(key string) (Def, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	def, ok := registry.defs[key]
	return def, ok
}

// Names returns the registered keys, sorted.
func Names() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	names := make([]string, 0, len(registry.defs))
	for key := range registry.defs {
		names = append(names, key)
	}
	sort.Strings(names)
	return names
}

// All returns the registered checks sorted by key.
func All() []Def {
	names := Names()
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	defs := make([]Def, 0, len(names))
	for _, name := range names {
		defs = append(defs, registry.defs[name])
	}
	return defs
}

// unregister removes a check. Used by tests.
func unregister(key string) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	delete(registry.defs, key)
}
