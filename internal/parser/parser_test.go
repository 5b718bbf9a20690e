package parser

import (
	"testing"

	"github.com/loxscript/golox/internal/lexer"
)

func parse(t *testing.T, src string) *Parser {
	t.Helper()
	l := lexer.New(src)
	tokens, errs := l.Tokens()
	if len(errs) != 0 {
		t.Fatalf("unexpected lexer errors: %v", errs)
	}
	return New(tokens)
}

func TestExpressionPrecedence(t *testing.T) {
	p := parse(t, "(1 + 2) * 3")
	expr, err := p.ParseExpression()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if got, want := expr.String(), "(* (group (+ 1 2)) 3)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAssignmentIsRightAssociative(t *testing.T) {
	p := parse(t, "a = b = 1")
	expr, err := p.ParseExpression()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if got, want := expr.String(), "(= a (= b 1))"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestUnaryIsRightAssociative(t *testing.T) {
	p := parse(t, "!!true")
	expr, err := p.ParseExpression()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if got, want := expr.String(), "(! (! true))"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMissingSemicolonReportsExpectation(t *testing.T) {
	p := parse(t, "var x = 1")
	_, err := p.ParseProgram()
	if err == nil {
		t.Fatal("expected a parse error for the missing semicolon")
	}
	want := "[line 1] Error at end: Expect ';'."
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestMissingExpressionReportsNonTerminal(t *testing.T) {
	p := parse(t, "1 + ;")
	_, err := p.ParseExpression()
	if err == nil {
		t.Fatal("expected a parse error")
	}
	want := "[line 1] Error at ';': Expect 'expression'."
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestForLoopDesugarsToWhile(t *testing.T) {
	p := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	program, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if len(program.Statements) != 1 {
		t.Fatalf("expected a single desugared block statement, got %d", len(program.Statements))
	}
}

func TestClassWithSuperclass(t *testing.T) {
	p := parse(t, "class B < A { greet() { return nil; } }")
	program, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if len(program.Statements) != 1 {
		t.Fatalf("expected one statement, got %d", len(program.Statements))
	}
}
