package interp

import (
	"strings"
	"testing"

	"github.com/loxscript/golox/internal/lexer"
	"github.com/loxscript/golox/internal/parser"
	"github.com/loxscript/golox/internal/resolver"
)

func run(t *testing.T, src string) (string, error) {
	t.Helper()
	l := lexer.New(src)
	tokens, errs := l.Tokens()
	if len(errs) != 0 {
		t.Fatalf("unexpected lexer errors: %v", errs)
	}
	program, err := parser.New(tokens).ParseProgram()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	locals, rerrs := resolver.Resolve(program)
	if len(rerrs) != 0 {
		t.Fatalf("unexpected resolver errors: %v", rerrs)
	}

	var out strings.Builder
	interp := NewInterpreter(&out)
	interp.SetLocals(locals)
	err = interp.Interpret(program)
	return out.String(), err
}

func TestArithmeticAndGrouping(t *testing.T) {
	out, err := run(t, "print (1 + 2) * 3;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "9\n" {
		t.Errorf("output = %q, want %q", out, "9\n")
	}
}

func TestStringConcatenation(t *testing.T) {
	out, err := run(t, `print "foo" + "bar";`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "foobar\n" {
		t.Errorf("output = %q, want %q", out, "foobar\n")
	}
}

func TestMixedConcatenationIsARuntimeError(t *testing.T) {
	_, err := run(t, `print "foo" + 1;`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
}

func TestClosureCounterSharesState(t *testing.T) {
	out, err := run(t, `
fun makeCounter() { var i = 0; fun count() { i = i + 1; return i; } return count; }
var c = makeCounter(); print c(); print c(); print c();
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n2\n3\n" {
		t.Errorf("output = %q, want %q", out, "1\n2\n3\n")
	}
}

func TestInheritanceAndSuper(t *testing.T) {
	out, err := run(t, `
class A { greet() { print "A"; } }
class B < A { greet() { super.greet(); print "B"; } }
B().greet();
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "A\nB\n" {
		t.Errorf("output = %q, want %q", out, "A\nB\n")
	}
}

func TestScopeResolutionCapturesOuterA(t *testing.T) {
	out, err := run(t, `
var a = "global";
{ fun show() { print a; } show(); var a = "local"; show(); }
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "global\nglobal\n" {
		t.Errorf("output = %q, want %q", out, "global\nglobal\n")
	}
}

func TestDivisionByZeroYieldsInfNotError(t *testing.T) {
	out, err := run(t, "print 1 / 0;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "+Inf\n" {
		t.Errorf("output = %q, want %q", out, "+Inf\n")
	}
}

func TestUndefinedPropertyIsAnError(t *testing.T) {
	_, err := run(t, `
class A {}
var a = A();
print a.missing;
`)
	if err == nil {
		t.Fatal("expected an undefined property error")
	}
}
