package parser

import (
	"fmt"
	"strings"

	"github.com/loxscript/golox/internal/lexer"
)

// Expected describes what the parser wanted to see instead of what it
// found: a single token kind, a set of them, or a named non-terminal
// (spec.md §4.2).
type Expected struct {
	Kinds      []lexer.TokenType
	NonTerminal string
}

// Tok builds an Expected naming a single token kind.
func Tok(t lexer.TokenType) Expected { return Expected{Kinds: []lexer.TokenType{t}} }

// NonTerminalExpected builds an Expected naming a grammar rule, e.g. "expression".
func NonTerminalExpected(name string) Expected { return Expected{NonTerminal: name} }

func (e Expected) String() string {
	if e.NonTerminal != "" {
		return strings.ToLower(e.NonTerminal)
	}
	parts := make([]string, len(e.Kinds))
	for i, k := range e.Kinds {
		parts[i] = tokenText(k)
	}
	return strings.Join(parts, ", ")
}

// tokenText renders a token kind the way a source-level expectation reads,
// preferring the operator/keyword spelling over the symbolic name.
func tokenText(t lexer.TokenType) string {
	if s, ok := punctuation[t]; ok {
		return s
	}
	return strings.ToLower(t.String())
}

var punctuation = map[lexer.TokenType]string{
	lexer.LEFT_PAREN:  "(",
	lexer.RIGHT_PAREN: ")",
	lexer.LEFT_BRACE:  "{",
	lexer.RIGHT_BRACE: "}",
	lexer.SEMICOLON:   ";",
	lexer.COMMA:       ",",
	lexer.DOT:         ".",
	lexer.EQUAL:       "=",
}

// ParseError is either UnexpectedToken (a wrong token was found) or
// NoToken (EOF was reached before a production could complete).
type ParseError struct {
	Found    lexer.Token
	Expected Expected
	IsEOF    bool
}

func (e *ParseError) Error() string {
	at := "'" + e.Found.Lexeme + "'"
	if e.IsEOF || e.Found.Type == lexer.EOF {
		at = "end"
	}
	return fmt.Sprintf("[line %d] Error at %s: Expect '%s'.", e.Found.Line, at, e.Expected)
}

func unexpectedToken(found lexer.Token, expected Expected) *ParseError {
	return &ParseError{Found: found, Expected: expected}
}

func noToken(found lexer.Token, expected Expected) *ParseError {
	return &ParseError{Found: found, Expected: expected, IsEOF: true}
}
