package cmd

import (
	"fmt"
	"os"
)

// readSource resolves a command's input: either the inline -e/--eval
// string, or the single positional file argument. Supplements spec.md
// §6's bare `prog <command> <file>` shape with the teacher's `-e`
// inline-eval convenience (cmd/dwscript/cmd/run.go).
func readSource(evalExpr string, args []string) (source, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) != 1 {
		return "", "", fmt.Errorf("provide a file path or use -e/--eval for inline source")
	}
	content, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
	}
	return string(content), args[0], nil
}
