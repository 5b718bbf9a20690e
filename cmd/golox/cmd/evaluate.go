package cmd

import (
	"fmt"
	"os"

	"github.com/loxscript/golox/internal/ast"
	"github.com/loxscript/golox/internal/interp"
	"github.com/loxscript/golox/internal/lexer"
	"github.com/loxscript/golox/internal/parser"
	"github.com/loxscript/golox/internal/resolver"
	"github.com/spf13/cobra"
)

var evaluateEval string

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [file]",
	Short: "Parse and evaluate a single expression, printing its result",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
	evaluateCmd.Flags().StringVarP(&evaluateEval, "eval", "e", "", "evaluate inline source instead of reading from file")
}

func runEvaluate(_ *cobra.Command, args []string) error {
	source, _, err := readSource(evaluateEval, args)
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

	// The resolver operates on a Program; wrap the lone expression in a
	// single-statement one so `evaluate` still gets depth annotations for
	// any locals/closures the expression references.
	program := &ast.Program{Statements: []ast.Stmt{&ast.ExpressionStmt{Expression: expr}}}
	locals, rerrs := resolver.Resolve(program)
	if len(rerrs) > 0 {
		for _, e := range rerrs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		os.Exit(65)
	}

	i := interp.NewInterpreter(os.Stdout)
	i.SetLocals(locals)
	result, rtErr := i.EvaluateExpr(expr)
	if rtErr != nil {
		fmt.Fprintln(os.Stderr, rtErr.Error())
		os.Exit(70)
	}

	fmt.Println(result.String())
	return nil
}
