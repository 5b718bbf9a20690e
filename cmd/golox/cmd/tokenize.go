package cmd

import (
	"fmt"
	"os"

	"github.com/loxscript/golox/internal/lexer"
	"github.com/spf13/cobra"
)

var tokenizeEval string

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [file]",
	Short: "Print the token stream for a golox source file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
	tokenizeCmd.Flags().StringVarP(&tokenizeEval, "eval", "e", "", "tokenize inline source instead of reading from file")
}

func runTokenize(_ *cobra.Command, args []string) error {
	source, filename, err := readSource(tokenizeEval, args)
	if err != nil {
		exitWithError(1, "Error: %v", err)
	}
	_ = filename

	l := lexer.New(source)
	tokens, lexErrs := l.Tokens()

	for _, tok := range tokens {
		fmt.Printf("%s %s %s\n", tok.Type, tok.Lexeme, tok.Literal)
	}

	for _, e := range lexErrs {
		fmt.Fprintln(os.Stderr, e.Error())
	}

	if len(lexErrs) > 0 {
		os.Exit(65)
	}
	return nil
}
