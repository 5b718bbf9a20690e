package ast

import (
	"testing"

	"github.com/loxscript/golox/internal/lexer"
)

func TestBinaryString(t *testing.T) {
	expr := &Binary{
		Left:     &Literal{Value: float64(1)},
		Operator: lexer.Token{Type: lexer.PLUS, Lexeme: "+"},
		Right:    &Literal{Value: float64(2)},
	}
	if got, want := expr.String(), "(+ 1 2)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestGroupingString(t *testing.T) {
	expr := &Grouping{Expression: &Literal{Value: "hi"}}
	if got, want := expr.String(), "(group hi)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestUnaryString(t *testing.T) {
	expr := &Unary{
		Operator: lexer.Token{Type: lexer.MINUS, Lexeme: "-"},
		Right:    &Literal{Value: float64(5)},
	}
	if got, want := expr.String(), "(- 5)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestLiteralNilString(t *testing.T) {
	if got, want := (&Literal{Value: nil}).String(), "nil"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
