package cmd

import (
	"fmt"
	"os"

	"github.com/ShahzebX/MeowScript/internal/ast"
	"github.com/ShahzebX/MeowScript/internal/errors"
	"github.com/ShahzebX/MeowScript/pkg/meow"
	"github.com/spf13/cobra"
)

var parseDumpAST bool

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a MeowScript file and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseDumpAST, "ast", false, "print an indented node-by-node dump instead of the source-like rendering")
}

func runParse(cmd *cobra.Command, args []string) error {
	source, filename, err := readInput(args)
	if err != nil {
		return err
	}
	verbose, _ := cmd.Flags().GetBool("verbose")

	program, diags := meow.Parse(source, meow.Options{File: filename})

	if verbose {
		fmt.Fprintf(os.Stderr, "Parsing: %s\n", filename)
		fmt.Fprintln(os.Stderr, "---")
	}

	if len(diags) > 0 {
		fmt.Fprint(os.Stderr, errors.FormatErrors(diags, true))
		fmt.Fprintln(os.Stderr)
		return exitWithError("parsing failed with %d error(s)", len(diags))
	}

	if parseDumpAST {
		for _, stmt := range program.Statements {
			dumpASTNode(stmt, 0)
		}
		return nil
	}

	fmt.Print(program.String())
	return nil
}

func dumpASTNode(node ast.Node, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	fmt.Printf("%s%T @%s: %s\n", indent, node, node.Pos(), node.String())

	switch n := node.(type) {
	case *ast.FuncDef:
		for _, stmt := range n.Body {
			dumpASTNode(stmt, depth+1)
		}
	case *ast.If:
		for _, stmt := range n.Then {
			dumpASTNode(stmt, depth+1)
		}
		for _, stmt := range n.Else {
			dumpASTNode(stmt, depth+1)
		}
	case *ast.While:
		for _, stmt := range n.Body {
			dumpASTNode(stmt, depth+1)
		}
	}
}
