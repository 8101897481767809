package cmd

import (
	"fmt"
	"os"

	"github.com/ShahzebX/MeowScript/internal/errors"
	"github.com/ShahzebX/MeowScript/internal/lexer"
	"github.com/ShahzebX/MeowScript/pkg/meow"
	"github.com/spf13/cobra"
)

var (
	lexShowPos  bool
	lexShowType bool
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a MeowScript file and print the token stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&lexShowType, "show-type", false, "show token type names")
}

func runLex(cmd *cobra.Command, args []string) error {
	source, filename, err := readInput(args)
	if err != nil {
		return err
	}
	verbose, _ := cmd.Flags().GetBool("verbose")

	tokens, diags := meow.Lex(source, meow.Options{File: filename})

	if verbose {
		fmt.Fprintf(os.Stderr, "Tokenizing: %s (%d bytes)\n", filename, len(source))
		fmt.Fprintln(os.Stderr, "---")
	}

	for _, tok := range tokens {
		printToken(tok)
	}

	if len(diags) > 0 {
		fmt.Fprint(os.Stderr, errors.FormatErrors(diags, true))
		fmt.Fprintln(os.Stderr)
		return exitWithError("lexing failed with %d error(s)", len(diags))
	}
	return nil
}

func printToken(tok lexer.Token) {
	var out string
	if lexShowType {
		out = fmt.Sprintf("[%-12s]", tok.Type)
	}
	if tok.Literal == "" {
		out += fmt.Sprintf(" %s", tok.Type)
	} else {
		out += fmt.Sprintf(" %q", tok.Literal)
	}
	if lexShowPos {
		out += fmt.Sprintf(" @%s", tok.Pos)
	}
	fmt.Println(out)
}
