package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags.
	Version = "0.1.0-dev"
)

var rootCmd = &cobra.Command{
	Use:   "meow",
	Short: "MeowScript compiler front-end",
	Long: `meow is the command-line driver for the MeowScript compiler.

MeowScript is a small cat-themed imperative language. meow runs its
four compiler phases — lexing, parsing, semantic analysis, and
three-address-code generation — and exposes each one as a subcommand
for debugging, plus a "compile" command that runs the full pipeline.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print phase banners to stderr")
}

func exitWithError(msg string, args ...any) error {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	return fmt.Errorf(msg, args...)
}

func readInput(args []string) (source, filename string, err error) {
	if len(args) != 1 {
		return "", "", fmt.Errorf("expected exactly one file argument")
	}
	filename = args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return "", "", fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return string(content), filename, nil
}
