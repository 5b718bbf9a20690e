// Package resolver performs golox's static pass between parsing and
// evaluation: for every variable reference it computes how many
// enclosing scopes separate the use from its declaration, so the
// evaluator can jump straight to the right environment instead of
// walking the scope chain by name at runtime. Grounded on
// _examples/original_source/src/evaluation/resolver.rs, restructured
// around Go's ast.Expr/ast.Stmt node types.
package resolver

import "github.com/loxscript/golox/internal/ast"

type functionType int

const (
	funcNone functionType = iota
	funcFunction
	funcInitializer
	funcMethod
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// Resolver walks a parsed Program once and produces Locals, a side
// table from variable-use expression nodes to lexical depth. An
// expression absent from Locals refers to a global and is resolved by
// name at runtime instead.
type Resolver struct {
	scopes []map[string]bool
	locals map[ast.Expr]int
	errs   []error

	currentFunction functionType
	currentClass    classType
}

// New creates a Resolver ready to process a single program.
func New() *Resolver {
	return &Resolver{locals: make(map[ast.Expr]int)}
}

// Resolve walks program and returns the depth side-table together with
// any static errors found. It keeps going after an error so a single
// pass can report more than one, since (unlike the parser) there is no
// token stream position to lose.
func Resolve(program *ast.Program) (map[ast.Expr]int, []error) {
	r := New()
	r.resolveStmts(program.Statements)
	return r.locals, r.errs
}

func (r *Resolver) fail(err error) {
	r.errs = append(r.errs, err)
}

// --- scope stack ---

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, map[string]bool{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name string, errTok ast.Node) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name]; ok {
		r.fail(errAtNode(AlreadyDeclared, name, errTok))
		return
	}
	scope[name] = false
}

func (r *Resolver) define(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = true
}

// resolveLocal records expr's depth if name is bound in some enclosing
// scope, innermost first. An unresolved name is left out of locals
// entirely and falls back to global lookup at runtime.
func (r *Resolver) resolveLocal(expr ast.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

// --- statements ---

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expression)
	case *ast.PrintStmt:
		r.resolveExpr(s.Expression)
	case *ast.VarStmt:
		r.declare(s.Name.Lexeme, s)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name.Lexeme)
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()
	case *ast.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.ThenBranch)
		if s.ElseBranch != nil {
			r.resolveStmt(s.ElseBranch)
		}
	case *ast.WhileStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)
	case *ast.FunctionStmt:
		r.declare(s.Name.Lexeme, s)
		r.define(s.Name.Lexeme)
		r.resolveFunction(s, funcFunction)
	case *ast.ReturnStmt:
		if r.currentFunction == funcNone {
			r.fail(errAt(ReturnOutsideFunction, "", s.Keyword))
		}
		if s.Value != nil {
			if r.currentFunction == funcInitializer {
				r.fail(errAt(ReturnFromInitializer, "", s.Keyword))
			}
			r.resolveExpr(s.Value)
		}
	case *ast.ClassStmt:
		r.resolveClass(s)
	default:
		panic("resolver: unhandled statement type")
	}
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, kind functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param.Lexeme, fn)
		r.define(param.Lexeme)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *Resolver) resolveClass(c *ast.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(c.Name.Lexeme, c)
	r.define(c.Name.Lexeme)

	if c.Superclass != nil {
		if c.Superclass.Name.Lexeme == c.Name.Lexeme {
			r.fail(errAt(SelfInheritance, c.Superclass.Name.Lexeme, c.Superclass.Name))
		}
		r.currentClass = classSubclass
		r.resolveExpr(c.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range c.Methods {
		kind := funcMethod
		if method.Name.Lexeme == "init" {
			kind = funcInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()

	if c.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
}

// --- expressions ---

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Literal:
		// no identifiers to resolve
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
				r.fail(errAt(LocalInOwnInitializer, e.Name.Lexeme, e.Name))
			}
		}
		r.resolveLocal(e, e.Name.Lexeme)
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name.Lexeme)
	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Unary:
		r.resolveExpr(e.Right)
	case *ast.Grouping:
		r.resolveExpr(e.Expression)
	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Arguments {
			r.resolveExpr(arg)
		}
	case *ast.Get:
		r.resolveExpr(e.Object)
	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)
	case *ast.This:
		if r.currentClass == classNone {
			r.fail(errAt(ThisOutsideClass, "", e.Keyword))
			return
		}
		r.resolveLocal(e, "this")
	case *ast.Super:
		if r.currentClass == classNone {
			r.fail(errAt(SuperOutsideClass, "", e.Keyword))
		} else if r.currentClass != classSubclass {
			r.fail(errAt(SuperWithoutSuperclass, "", e.Keyword))
		}
		r.resolveLocal(e, "super")
	default:
		panic("resolver: unhandled expression type")
	}
}
