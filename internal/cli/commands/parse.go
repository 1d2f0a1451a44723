package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/proplint/internal/cli/output"
	"github.com/leapstack-labs/proplint/pkg/charset"
	"github.com/leapstack-labs/proplint/pkg/parser"
	"github.com/leapstack-labs/proplint/pkg/token"
	"github.com/leapstack-labs/proplint/pkg/tree"
)

// ParseOptions holds options for the parse command.
type ParseOptions struct {
	Format string // Output format
	Trivia bool   // Include comments, blanks and line terminators
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Print the syntax tree of a properties file",
		Long: `Parse a properties file and print its concrete syntax tree.

Every node is shown with its span as line:column, columns counted from 0.
Use --trivia to also print the comments and whitespace attached to tokens.`,
		Example: `  # Print the tree
  proplint parse messages.properties

  # Include trivia, as YAML
  proplint parse messages.properties --trivia --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, yaml")
	cmd.Flags().BoolVar(&opts.Trivia, "trivia", false, "Include trivia attached to tokens")

	return cmd
}

func runParse(cmd *cobra.Command, path string, opts *ParseOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	r := cmdCtx.Renderer

	enc, err := charset.Lookup(cmdCtx.Cfg.Charset)
	if err != nil {
		return err
	}
	props, err := parser.ParseFile(path, enc)
	if err != nil {
		return err
	}
	cmdCtx.Logger.Debug("parsed file", "path", path, "properties", len(props.Properties))

	root := treeNodeOf(props, opts.Trivia)
	if written, err := r.Encode(root); written {
		return err
	}
	printTreeNode(r, root, 0)
	return nil
}

func treeNodeOf(n tree.Node, withTrivia bool) output.TreeNode {
	span := n.Span()
	out := output.TreeNode{
		Kind:  n.Kind().String(),
		Start: positionString(span.Start),
		End:   positionString(span.End),
	}
	if t, ok := n.(*tree.Token); ok {
		out.Type = t.Type.String()
		out.Text = t.Text
		if withTrivia {
			for _, tr := range t.Trivia {
				out.Trivia = append(out.Trivia, output.TreeTrivia{
					Kind: tr.Kind.String(),
					Text: tr.Text,
					At:   positionString(tr.Pos),
				})
			}
		}
		return out
	}
	for _, child := range n.Children() {
		if child != nil {
			out.Children = append(out.Children, treeNodeOf(child, withTrivia))
		}
	}
	return out
}

func printTreeNode(r *output.Renderer, n output.TreeNode, depth int) {
	styles := r.Styles()
	indent := strings.Repeat("  ", depth)

	label := n.Kind
	if n.Type != "" {
		label = n.Type
	}
	line := fmt.Sprintf("%s%s %s", indent, styles.Bold.Render(label), styles.Muted.Render("["+n.Start+"-"+n.End+"]"))
	if n.Type != "" {
		line += " " + strconv.Quote(n.Text)
	}
	for _, tr := range n.Trivia {
		r.Println(styles.Muted.Render(fmt.Sprintf("%s%s @%s %s", indent, tr.Kind, tr.At, strconv.Quote(tr.Text))))
	}
	r.Println(line)
	for _, child := range n.Children {
		printTreeNode(r, child, depth+1)
	}
}

func positionString(p token.Position) string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
