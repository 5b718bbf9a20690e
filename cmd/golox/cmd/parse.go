package cmd

import (
	"fmt"
	"os"

	"github.com/loxscript/golox/internal/lexer"
	"github.com/loxscript/golox/internal/parser"
	"github.com/spf13/cobra"
)

var parseEval string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a single expression and print its S-expression form",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseEval, "eval", "e", "", "parse inline source instead of reading from file")
}

func runParse(_ *cobra.Command, args []string) error {
	source, _, err := readSource(parseEval, args)
	if err != nil {
		exitWithError(1, "Error: %v", err)
	}

	l := lexer.New(source)
	tokens, lexErrs := l.Tokens()
	if len(lexErrs) > 0 {
		for _, e := range lexErrs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		os.Exit(65)
	}

	expr, perr := parser.New(tokens).ParseExpression()
	if perr != nil {
		fmt.Fprintln(os.Stderr, perr.Error())
		os.Exit(65)
	}

	fmt.Println(expr.String())
	return nil
}
