// Package verifier checks a lint.Check against sample files annotated with
// the issues it is expected to raise.
//
// An expectation is a comment on the line before the offending line:
//
//	# Noncompliant {{Remove this duplicated key.}}
//	key=value
//
//	# Noncompliant [[sc=1;ec=4;secondary=-3]] {{Remove this duplicated key.}}
//	key=other
//
// The optional [[...]] block holds semicolon separated parameters:
//
//	sl           start line, relative to the comment line (default +1)
//	sc, ec       1-based start and end column of the primary location
//	el           end line, relative to the expected line
//	effortToFix  expected cost
//	secondary    comma separated secondary lines, relative to the expected line
//
// Relative values are written +N or -N; anything else is an absolute line.
// The optional {{...}} block holds the exact expected message. Parameters
// must come before the message.
//
// Expected and actual issues are both sorted by line and compared in
// lock-step, so a check must not raise two issues on one line in an order
// different from its annotations.
package verifier
