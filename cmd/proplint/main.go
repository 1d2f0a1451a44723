// Package main provides the CLI for the proplint properties file linter.
package main

import (
	"errors"
	"os"

	"github.com/leapstack-labs/proplint/internal/cli"
	"github.com/leapstack-labs/proplint/internal/cli/commands"
)

// Exit codes.
const (
	exitOK     = 0
	exitIssues = 1
	exitError  = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	err := cli.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, commands.ErrLintIssues):
		return exitIssues
	default:
		return exitError
	}
}
