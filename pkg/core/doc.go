// Package core defines the shared language of the proplint system.
//
// This package contains:
//   - Severity levels and rule metadata DTOs (RuleInfo)
//   - Configuration types shared by the CLI and the lint packages
//     (ProjectConfig, LintConfig, RuleOptions)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
