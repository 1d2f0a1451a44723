package crossfile

import (
	"sync"

	"github.com/leapstack-labs/proplint/pkg/lint"
)

// IssueSaver receives issues anchored to a file of the project.
type IssueSaver interface {
	SaveIssue(file *lint.InputFile, issue lint.Issue)
}

// SavedIssue is an issue recorded by a Collector.
type SavedIssue struct {
	Check string // key of the check that raised it, when known
	File  *lint.InputFile
	Issue lint.Issue
}

// Collector is an IssueSaver that keeps issues in memory. It is safe for
// concurrent use.
type Collector struct {
	mu     sync.Mutex
	check  string
	issues []SavedIssue
}

// SaveIssue records issue on file.
func (c *Collector) SaveIssue(file *lint.InputFile, issue lint.Issue) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.issues = append(c.issues, SavedIssue{Check: c.check, File: file, Issue: issue})
}

// Issues returns the recorded issues in the order they were saved.
func (c *Collector) Issues() []SavedIssue {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]SavedIssue(nil), c.issues...)
}

// IssuesFor returns the issues recorded on the file at path.
func (c *Collector) IssuesFor(path string) []lint.Issue {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []lint.Issue
	for _, saved := range c.issues {
		if saved.File.Path == path {
			out = append(out, saved.Issue)
		}
	}
	return out
}

// Len returns the number of recorded issues.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.issues)
}

// forCheck labels the issues saved from now on with check.
func (c *Collector) forCheck(check string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.check = check
}

func (c *Collector) add(issues []SavedIssue) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.issues = append(c.issues, issues...)
}
