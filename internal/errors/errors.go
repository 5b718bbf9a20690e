// Package errors renders the error families produced by the lexer,
// parser, resolver, and evaluator for the command-line driver. Each
// family already formats its own "[line N] ..." text (or, for runtime
// errors, "<message>\nLine: N"); this package only handles joining
// several of them for stderr, grounded on the teacher's
// internal/errors.FormatErrors multi-error convention.
package errors

import (
	"fmt"
	"strings"
)

// FormatErrors renders one error per line for stderr. A single error is
// printed bare; more than one gets an "N errors:" header, mirroring
// the teacher's FormatErrors pluralization without its source/caret
// rendering — golox's error types already carry their own position.
func FormatErrors(errs []error) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d errors:\n", len(errs))
	for i, err := range errs {
		sb.WriteString(err.Error())
		if i < len(errs)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
