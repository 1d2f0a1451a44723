package commands

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/proplint/internal/cli/output"
	"github.com/leapstack-labs/proplint/pkg/parser"
)

func runParseCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewParseCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestTreeNodeOf(t *testing.T) {
	props := parser.ParseString("# note\nkey = value\n")

	root := treeNodeOf(props, true)
	assert.Equal(t, "Properties", root.Kind)
	require.Len(t, root.Children, 2, "property and EOF")

	prop := root.Children[0]
	assert.Equal(t, "Property", prop.Kind)
	assert.Equal(t, "2:0", prop.Start)
	require.Len(t, prop.Children, 3, "key, separator and value")

	key := prop.Children[0].Children[0]
	assert.Equal(t, "KEY", key.Type)
	assert.Equal(t, "key", key.Text)
	require.NotEmpty(t, key.Trivia)
	assert.Equal(t, "comment", key.Trivia[0].Kind)
	assert.Equal(t, "# note", key.Trivia[0].Text)

	assert.Equal(t, "SEPARATOR", prop.Children[1].Type)
	assert.Equal(t, "value", prop.Children[2].Children[0].Text)

	assert.Equal(t, "EOF", root.Children[1].Type)
}

func TestTreeNodeOfWithoutTrivia(t *testing.T) {
	props := parser.ParseString("# note\nkey\n")

	root := treeNodeOf(props, false)
	key := root.Children[0].Children[0].Children[0]
	assert.Equal(t, "key", key.Text)
	assert.Empty(t, key.Trivia)
	assert.Len(t, root.Children[0].Children, 1, "absent separator and value are skipped")
}

func TestParseCommand(t *testing.T) {
	dir := writeFiles(t, map[string]string{"app.properties": "a=b\n"})
	path := filepath.Join(dir, "app.properties")

	t.Run("text", func(t *testing.T) {
		out, err := runParseCommand(t, path)
		require.NoError(t, err)
		assert.Contains(t, out, "Properties [1:0-")
		assert.Contains(t, out, `KEY [1:0-1:1] "a"`)
		assert.Contains(t, out, `VALUE [1:2-1:3] "b"`)
	})

	t.Run("json", func(t *testing.T) {
		out, err := runParseCommand(t, path, "--format", "json")
		require.NoError(t, err)

		var root output.TreeNode
		require.NoError(t, json.Unmarshal([]byte(out), &root))
		assert.Equal(t, "Properties", root.Kind)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := runParseCommand(t, filepath.Join(dir, "missing.properties"))
		assert.Error(t, err)
	})
}
