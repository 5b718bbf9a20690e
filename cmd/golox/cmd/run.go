package cmd

import (
	"fmt"
	"os"

	"github.com/loxscript/golox/internal/errors"
	"github.com/loxscript/golox/internal/interp"
	"github.com/loxscript/golox/internal/lexer"
	"github.com/loxscript/golox/internal/parser"
	"github.com/loxscript/golox/internal/resolver"
	"github.com/spf13/cobra"
)

var (
	runEval    string
	runDumpAST bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Lex, parse, resolve, and run a golox program",
	Long: `Run executes a complete golox program: tokenize, parse into a full
program AST, resolve every variable's lexical depth, then evaluate.

Examples:
  golox run script.lox
  golox run -e 'print "hi";'
  golox run --dump-ast script.lox`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runEval, "eval", "e", "", "run inline source instead of reading from file")
	runCmd.Flags().BoolVar(&runDumpAST, "dump-ast", false, "print the parsed program's S-expression form before running")
}

func runRun(_ *cobra.Command, args []string) error {
	source, filename, err := readSource(runEval, args)
	if err != nil {
		exitWithError(1, "Error: %v", err)
	}

	l := lexer.New(source)
	tokens, lexErrs := l.Tokens()
	if len(lexErrs) > 0 {
		lexErrors := make([]error, len(lexErrs))
		for i, e := range lexErrs {
			lexErrors[i] = e
		}
		fmt.Fprintln(os.Stderr, errors.FormatErrors(lexErrors))
		os.Exit(65)
	}

	program, perr := parser.New(tokens).ParseProgram()
	if perr != nil {
		fmt.Fprintln(os.Stderr, perr.Error())
		os.Exit(65)
	}

	locals, rerrs := resolver.Resolve(program)
	if len(rerrs) > 0 {
		fmt.Fprintln(os.Stderr, errors.FormatErrors(rerrs))
		os.Exit(65)
	}

	if runDumpAST {
		for _, stmt := range program.Statements {
			fmt.Println(stmt.String())
		}
	}

	i := interp.NewInterpreter(os.Stdout)
	i.SetLocals(locals)
	if err := i.Interpret(program); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(70)
	}

	_ = filename
	return nil
}
