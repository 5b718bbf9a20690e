// Package cmd wires golox's four pipelines (tokenize, parse, evaluate,
// run) into cobra subcommands. Grounded on the teacher's
// cmd/dwscript/cmd/root.go — one persistent rootCmd, one init() per
// subcommand file registering itself — with the DWScript-specific
// unit/type-check flags dropped, since golox has neither.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "golox",
	Short: "A tree-walking interpreter for a small Lox-family scripting language",
	Long: `golox tokenizes, parses, resolves, and evaluates programs written in a
small dynamically-typed scripting language in the Lox family: closures,
single-inheritance classes, methods, and a minimal native-function set.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
`, GitCommit))
}

func exitWithError(code int, msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg+"\n", args...)
	os.Exit(code)
}
