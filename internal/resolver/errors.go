package resolver

import (
	"fmt"

	"github.com/loxscript/golox/internal/ast"
	"github.com/loxscript/golox/internal/lexer"
)

// ResolverErrorKind enumerates the static errors the resolver reports:
// the four spec.md §4.3/§7 names plus the initializer-return, super and
// self-inheritance checks. Only LocalInOwnInitializer, AlreadyDeclared
// and SelfInheritance carry an identifier.
type ResolverErrorKind int

const (
	LocalInOwnInitializer ResolverErrorKind = iota
	AlreadyDeclared
	ReturnOutsideFunction
	ReturnFromInitializer
	ThisOutsideClass
	SuperOutsideClass
	SuperWithoutSuperclass
	SelfInheritance
)

// ResolverError reports a single static-analysis failure with the same
// `[line N] Error at 'L': ...` shape the lexer and parser use.
type ResolverError struct {
	Kind ResolverErrorKind
	Name string
	Line int
}

func (e *ResolverError) Error() string {
	switch e.Kind {
	case LocalInOwnInitializer:
		return fmt.Sprintf("[line %d] Error at '%s': Can't read local variable in its own initializer.", e.Line, e.Name)
	case AlreadyDeclared:
		return fmt.Sprintf("[line %d] Error at '%s': Already a variable with this name in this scope.", e.Line, e.Name)
	case ReturnOutsideFunction:
		return fmt.Sprintf("[line %d] Error at 'return': Can't return from top-level code.", e.Line)
	case ReturnFromInitializer:
		return fmt.Sprintf("[line %d] Error at 'return': Can't return a value from an initializer.", e.Line)
	case ThisOutsideClass:
		return fmt.Sprintf("[line %d] Error at 'this': Can't use 'this' outside of a class.", e.Line)
	case SuperOutsideClass:
		return fmt.Sprintf("[line %d] Error at 'super': Can't use 'super' outside of a class.", e.Line)
	case SelfInheritance:
		return fmt.Sprintf("[line %d] Error at '%s': A class can't inherit from itself.", e.Line, e.Name)
	default:
		return fmt.Sprintf("[line %d] Error at 'super': Can't use 'super' in a class with no superclass.", e.Line)
	}
}

func errAt(kind ResolverErrorKind, name string, tok lexer.Token) *ResolverError {
	return &ResolverError{Kind: kind, Name: name, Line: tok.Line}
}

func errAtNode(kind ResolverErrorKind, name string, node ast.Node) *ResolverError {
	return &ResolverError{Kind: kind, Name: name, Line: node.Pos().Line}
}
