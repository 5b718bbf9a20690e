// Command golox is the CLI entry point: tokenize, parse, evaluate, and
// run a small Lox-family scripting language.
package main

import (
	"fmt"
	"os"

	"github.com/loxscript/golox/cmd/golox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
