package resolver

import (
	"testing"

	"github.com/loxscript/golox/internal/ast"
	"github.com/loxscript/golox/internal/lexer"
	"github.com/loxscript/golox/internal/parser"
)

func mustParse(t *testing.T, src string) *ast.Program {
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
	return program
}

func TestGlobalVariableIsUnresolved(t *testing.T) {
	program := mustParse(t, "var a = 1; print a;")
	locals, errs := Resolve(program)
	if len(errs) != 0 {
		t.Fatalf("unexpected resolver errors: %v", errs)
	}
	printStmt := program.Statements[1].(*ast.PrintStmt)
	if _, ok := locals[printStmt.Expression]; ok {
		t.Errorf("expected global reference to be absent from locals, got depth %d", locals[printStmt.Expression])
	}
}

func TestBlockLocalResolvesToDepthZero(t *testing.T) {
	program := mustParse(t, "{ var a = 1; print a; }")
	locals, errs := Resolve(program)
	if len(errs) != 0 {
		t.Fatalf("unexpected resolver errors: %v", errs)
	}
	block := program.Statements[0].(*ast.BlockStmt)
	printStmt := block.Statements[1].(*ast.PrintStmt)
	if depth, ok := locals[printStmt.Expression]; !ok || depth != 0 {
		t.Errorf("depth = %d, ok = %v, want 0, true", depth, ok)
	}
}

func TestReadingOwnInitializerIsAnError(t *testing.T) {
	program := mustParse(t, "{ var a = a; }")
	_, errs := Resolve(program)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
	want := "Can't read local variable in its own initializer."
	if got := errs[0].Error(); got[len(got)-len(want):] != want {
		t.Errorf("Error() = %q, want suffix %q", got, want)
	}
}

func TestRedeclaringLocalIsAnError(t *testing.T) {
	program := mustParse(t, "{ var a = 1; var a = 2; }")
	_, errs := Resolve(program)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
}

func TestRedeclaringGlobalIsAllowed(t *testing.T) {
	program := mustParse(t, "var a = 1; var a = 2;")
	_, errs := Resolve(program)
	if len(errs) != 0 {
		t.Fatalf("unexpected resolver errors: %v", errs)
	}
}

func TestReturnOutsideFunctionIsAnError(t *testing.T) {
	program := mustParse(t, "return 1;")
	_, errs := Resolve(program)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
}

func TestThisOutsideClassIsAnError(t *testing.T) {
	program := mustParse(t, "print this;")
	_, errs := Resolve(program)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
}

func TestClosureCapturesEnclosingFunctionLocal(t *testing.T) {
	program := mustParse(t, `
fun outer() {
  var x = 1;
  fun inner() {
    print x;
  }
}
`)
	locals, errs := Resolve(program)
	if len(errs) != 0 {
		t.Fatalf("unexpected resolver errors: %v", errs)
	}
	outer := program.Statements[0].(*ast.FunctionStmt)
	inner := outer.Body[1].(*ast.FunctionStmt)
	printStmt := inner.Body[0].(*ast.PrintStmt)
	if depth, ok := locals[printStmt.Expression]; !ok || depth != 1 {
		t.Errorf("depth = %d, ok = %v, want 1, true", depth, ok)
	}
}

func TestMethodResolvesThisAndSuper(t *testing.T) {
	program := mustParse(t, `
class A { greet() { return 1; } }
class B < A {
  greet() {
    print this;
    return super.greet();
  }
}
`)
	_, errs := Resolve(program)
	if len(errs) != 0 {
		t.Fatalf("unexpected resolver errors: %v", errs)
	}
}
