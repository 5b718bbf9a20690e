// Package ast defines the Abstract Syntax Tree node types golox's parser
// produces: one Go type per grammar production, following spec.md §3's
// mandate that every node preserve the token span(s) diagnostics need.
package ast

import (
	"bytes"

	"github.com/loxscript/golox/internal/lexer"
)

// Node is the base interface every AST node implements.
type Node interface {
	// TokenLiteral returns the lexeme of the token most representative of
	// this node, used in error messages.
	TokenLiteral() string
	// String renders the node; for expressions this is the parenthesized
	// S-expression form spec.md §6 mandates for the `parse` command.
	String() string
	// Pos returns the node's position for diagnostics.
	Pos() lexer.Position
}

// Expr is any node that produces a value.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any node that performs an action without producing a value.
type Stmt interface {
	Node
	stmtNode()
}

// Program is the root of the AST: a flat sequence of top-level
// declarations and statements.
type Program struct {
	Statements []Stmt
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

func (p *Program) Pos() lexer.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return lexer.Position{Line: 1, Column: 1}
}
