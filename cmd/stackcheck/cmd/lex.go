package cmd

import (
	"fmt"
	"os"

	"github.com/mgrue/stacklang/internal/lexer"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a source file and print the resulting tokens",
	Args:  cobra.ExactArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	tokens, lexErr := lexer.Scan(string(content))
	if lexErr != nil {
		return fmt.Errorf("%s", red(lexErr.Error()))
	}

	for _, tok := range tokens {
		fmt.Printf("%-12s %-20q @%d:%d\n", tok.Type, tok.Lexeme, tok.Line, tok.Column)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "%s\n", dim(fmt.Sprintf("run %s: %d tokens", runID, len(tokens))))
	}
	return nil
}
