package cmd

import (
	"fmt"
	"os"

	"github.com/ShahzebX/MeowScript/internal/errors"
	"github.com/ShahzebX/MeowScript/internal/ir"
	"github.com/ShahzebX/MeowScript/pkg/meow"
	"github.com/spf13/cobra"
)

var (
	compileOutput  string
	compileTACOnly bool
	compileDumpAST bool
)

var compileCmd = &cobra.Command{
	Use:   "compile <file>",
	Short: "Compile a MeowScript file to three-address code",
	Long: `Run the full MeowScript pipeline — lexing, parsing, semantic
analysis, and three-address-code generation — over a file, printing
the generated TAC.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringVarP(&compileOutput, "output", "o", "", "write the generated TAC to this file instead of stdout")
	compileCmd.Flags().BoolVar(&compileTACOnly, "tac-only", false, "print only the TAC, suppressing phase banners")
	compileCmd.Flags().BoolVar(&compileDumpAST, "ast", false, "also print the parsed AST before the TAC")
}

func runCompile(cmd *cobra.Command, args []string) error {
	source, filename, err := readInput(args)
	if err != nil {
		return err
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	banners := verbose && !compileTACOnly

	if banners {
		fmt.Fprintf(os.Stderr, "Phase 1: Lexical Analysis\n")
	}

	result := meow.Compile(source, meow.Options{File: filename})

	if result.Program == nil || hasKind(result.Diagnostics, errors.Lexical) || hasKind(result.Diagnostics, errors.Syntax) {
		fmt.Fprint(os.Stderr, errors.FormatErrors(result.Diagnostics, true))
		fmt.Fprintln(os.Stderr)
		return exitWithError("compilation failed with %d error(s)", len(result.Diagnostics))
	}

	if banners {
		fmt.Fprintf(os.Stderr, "Phase 2: Syntax Analysis — %d statement(s) parsed\n", len(result.Program.Statements))
	}

	if compileDumpAST {
		fmt.Println(result.Program.String())
	}

	if banners {
		fmt.Fprintf(os.Stderr, "Phase 3: Semantic Analysis\n")
	}

	if hasKind(result.Diagnostics, errors.Semantic) {
		fmt.Fprint(os.Stderr, errors.FormatErrors(result.Diagnostics, true))
		fmt.Fprintln(os.Stderr)
		return exitWithError("compilation failed with %d semantic error(s)", len(result.Diagnostics))
	}

	if banners {
		fmt.Fprintf(os.Stderr, "Phase 4: Code Generation — %d instruction(s)\n", len(result.Code))
	}

	code := ir.Print(result.Code)

	if compileOutput != "" {
		if err := os.WriteFile(compileOutput, []byte(code+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", compileOutput, err)
		}
		fmt.Fprintf(os.Stderr, "Wrote three-address code to %s\n", compileOutput)
		return nil
	}

	fmt.Println(code)
	return nil
}

func hasKind(diags []*errors.CompilerError, kind errors.Kind) bool {
	for _, d := range diags {
		if d.Kind == kind {
			return true
		}
	}
	return false
}
