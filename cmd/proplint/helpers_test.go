package main

import (
	"os"
	"testing"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}

// runArgs runs the CLI with args in place of the process arguments.
func runArgs(t *testing.T, args ...string) int {
	t.Helper()
	old := os.Args
	t.Cleanup(func() { os.Args = old })
	os.Args = append([]string{"proplint"}, args...)
	return run()
}
