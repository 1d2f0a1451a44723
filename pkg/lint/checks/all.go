// Package checks contains the per-file lint rules.
// Import this package to register them with the lint registry.
//
// Rules are automatically registered via init() functions when this package is imported:
//
//	import _ "github.com/leapstack-labs/proplint/pkg/lint/checks"
//
// Rule Groups:
//   - convention: formatting and naming conventions
//   - pitfall: mistakes that change what the application reads
//   - tag: comment tags left for later
package checks

// Importing this package registers the following rules:
//
// Convention rules:
//   - end-line-characters: End-line characters should be consistent
//   - key-regular-expression: Keys should follow a naming convention
//   - missing-newline-at-end-of-file: Files should end with a newline
//   - too-long-value: Values should not be too long
//
// Pitfall rules:
//   - duplicated-keys: Keys should not be duplicated
//   - empty-element: Properties should have a value
//
// Tag rules:
//   - fixme-tag: FIXME tags should be handled
//   - todo-tag: TODO tags should be handled

// Rule groups.
const (
	GroupConvention = "convention"
	GroupPitfall    = "pitfall"
	GroupTag        = "tag"
)
