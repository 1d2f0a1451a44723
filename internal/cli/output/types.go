package output

// LintOutput is the machine-readable result of the lint command.
type LintOutput struct {
	Summary LintSummary      `json:"summary" yaml:"summary"`
	Files   []LintFileResult `json:"files" yaml:"files"`
	Errors  []LintFileError  `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// LintSummary counts the reported diagnostics.
type LintSummary struct {
	FilesAnalyzed   int `json:"files_analyzed" yaml:"files_analyzed"`
	FilesWithIssues int `json:"files_with_issues" yaml:"files_with_issues"`
	TotalIssues     int `json:"total_issues" yaml:"total_issues"`
	Errors          int `json:"errors" yaml:"errors"`
	Warnings        int `json:"warnings" yaml:"warnings"`
	Info            int `json:"info" yaml:"info"`
	Hints           int `json:"hints" yaml:"hints"`
}

// LintFileResult holds the diagnostics of one file.
type LintFileResult struct {
	Path        string           `json:"path" yaml:"path"`
	Diagnostics []LintDiagnostic `json:"diagnostics" yaml:"diagnostics"`
}

// LintDiagnostic is one reported issue. Line is zero for file-level issues;
// columns are 1-based and only set for precise issues.
type LintDiagnostic struct {
	RuleKey          string         `json:"rule" yaml:"rule"`
	Severity         string         `json:"severity" yaml:"severity"`
	Message          string         `json:"message" yaml:"message"`
	Line             int            `json:"line" yaml:"line"`
	Column           int            `json:"column,omitempty" yaml:"column,omitempty"`
	EndLine          int            `json:"end_line,omitempty" yaml:"end_line,omitempty"`
	EndColumn        int            `json:"end_column,omitempty" yaml:"end_column,omitempty"`
	EffortToFix      *float64       `json:"effort_to_fix,omitempty" yaml:"effort_to_fix,omitempty"`
	Secondary        []LintLocation `json:"secondary,omitempty" yaml:"secondary,omitempty"`
	DocumentationURL string         `json:"documentation_url,omitempty" yaml:"documentation_url,omitempty"`
}

// LintLocation is a secondary location of a diagnostic.
type LintLocation struct {
	Path    string `json:"path" yaml:"path"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column,omitempty" yaml:"column,omitempty"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// LintFileError reports a file that could not be read.
type LintFileError struct {
	Path  string `json:"path" yaml:"path"`
	Error string `json:"error" yaml:"error"`
}

// RuleOutput describes a rule for the rules command.
type RuleOutput struct {
	Key             string   `json:"key" yaml:"key"`
	Name            string   `json:"name" yaml:"name"`
	Type            string   `json:"type" yaml:"type"`
	Group           string   `json:"group" yaml:"group"`
	DefaultSeverity string   `json:"default_severity" yaml:"default_severity"`
	Description     string   `json:"description" yaml:"description"`
	Remediation     string   `json:"remediation,omitempty" yaml:"remediation,omitempty"`
	ConfigKeys      []string `json:"config_keys,omitempty" yaml:"config_keys,omitempty"`
	Rationale       string   `json:"rationale,omitempty" yaml:"rationale,omitempty"`
	BadExample      string   `json:"bad_example,omitempty" yaml:"bad_example,omitempty"`
	GoodExample     string   `json:"good_example,omitempty" yaml:"good_example,omitempty"`
	DocURL          string   `json:"doc_url" yaml:"doc_url"`
}

// TreeNode is one node of a parsed file for the parse command.
type TreeNode struct {
	Kind     string       `json:"kind" yaml:"kind"`
	Type     string       `json:"type,omitempty" yaml:"type,omitempty"`
	Text     string       `json:"text,omitempty" yaml:"text,omitempty"`
	Start    string       `json:"start" yaml:"start"`
	End      string       `json:"end" yaml:"end"`
	Trivia   []TreeTrivia `json:"trivia,omitempty" yaml:"trivia,omitempty"`
	Children []TreeNode   `json:"children,omitempty" yaml:"children,omitempty"`
}

// TreeTrivia is a piece of trivia attached to a token.
type TreeTrivia struct {
	Kind string `json:"kind" yaml:"kind"`
	Text string `json:"text" yaml:"text"`
	At   string `json:"at" yaml:"at"`
}
