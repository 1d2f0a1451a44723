package checks

import (
	"fmt"
	"regexp"

	"golang.org/x/text/encoding"

	"github.com/leapstack-labs/proplint/pkg/core"
	"github.com/leapstack-labs/proplint/pkg/lint"
	"github.com/leapstack-labs/proplint/pkg/tree"
)

func init() {
	lint.Register(EndLineCharacters)
}

// EndLineCharacters requires every line of a file to end the same way.
var EndLineCharacters = lint.RuleDef{
	Key:         "end-line-characters",
	Name:        "End-line characters should be consistent",
	Group:       GroupConvention,
	Description: "All lines of a file should end with the configured end-line characters.",
	Severity:    core.SeverityInfo,
	Remediation: "5min",
	ConfigKeys:  []string{"end_line_characters"},
	New:         newEndLineCharactersCheck,

	Rationale: `Mixing end-line characters makes diffs noisy and confuses tools that
split on a single terminator. Pick one style for the whole repository.`,

	BadExample:  "first=1\\r\\nsecond=2\\n",
	GoodExample: "first=1\\nsecond=2\\n",
}

// EndLineOptions configures end-line-characters.
type EndLineOptions struct {
	EndLineCharacters string `mapstructure:"end_line_characters"`
}

// illegalTerminators finds terminators other than the allowed one.
var illegalTerminators = map[string]*regexp.Regexp{
	"LF":   regexp.MustCompile(`\r`),
	"CR":   regexp.MustCompile(`\n`),
	"CRLF": regexp.MustCompile(`\r[^\n]|\r$|(^|[^\r])\n`),
}

// EndLineCharactersCheck reports files using other end-line characters than
// the configured ones.
type EndLineCharactersCheck struct {
	lint.DoubleDispatchCheck
	format  string
	pattern *regexp.Regexp
	charset encoding.Encoding
}

// NewEndLineCharactersCheck builds the check for format, one of LF, CR or CRLF.
func NewEndLineCharactersCheck(format string) (*EndLineCharactersCheck, error) {
	pattern, ok := illegalTerminators[format]
	if !ok {
		return nil, fmt.Errorf("end_line_characters: invalid value %q, expected CR, CRLF or LF", format)
	}
	return &EndLineCharactersCheck{format: format, pattern: pattern}, nil
}

func newEndLineCharactersCheck(opts map[string]any) (lint.Check, error) {
	o := EndLineOptions{EndLineCharacters: "LF"}
	if err := lint.DecodeOptions(opts, &o); err != nil {
		return nil, err
	}
	check, err := NewEndLineCharactersCheck(o.EndLineCharacters)
	if err != nil {
		return nil, err
	}
	return check, nil
}

// SetCharset sets the charset used to re-read the file.
func (c *EndLineCharactersCheck) SetCharset(enc encoding.Encoding) {
	c.charset = enc
}

func (c *EndLineCharactersCheck) ScanFile(ctx *lint.Context) ([]lint.Issue, error) {
	return c.Dispatch(ctx, c)
}

func (c *EndLineCharactersCheck) VisitProperties(n *tree.Properties) {
	enc := c.charset
	if enc == nil {
		enc = c.Context().File.Encoding()
	}
	content, err := c.Context().ReadContentAs(enc)
	if err != nil {
		c.Fail(fmt.Errorf("file cannot be read: %w", err))
	}
	if c.pattern.MatchString(content) {
		c.AddFileIssue(fmt.Sprintf("Set all end-line characters to '%s' in this file.", c.format))
	}
	c.VisitChildren(n)
}
