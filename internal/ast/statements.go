package ast

import (
	"strings"

	"github.com/loxscript/golox/internal/lexer"
)

// ExpressionStmt is an expression used for its side effect, `expr ";"`.
type ExpressionStmt struct {
	Expression Expr
}

func (e *ExpressionStmt) stmtNode()            {}
func (e *ExpressionStmt) TokenLiteral() string { return e.Expression.TokenLiteral() }
func (e *ExpressionStmt) Pos() lexer.Position  { return e.Expression.Pos() }
func (e *ExpressionStmt) String() string       { return e.Expression.String() + ";" }

// PrintStmt is `print expr ";"`.
type PrintStmt struct {
	Keyword    lexer.Token
	Expression Expr
}

func (p *PrintStmt) stmtNode()            {}
func (p *PrintStmt) TokenLiteral() string { return p.Keyword.Lexeme }
func (p *PrintStmt) Pos() lexer.Position  { return p.Keyword.Pos() }
func (p *PrintStmt) String() string       { return "print " + p.Expression.String() + ";" }

// VarStmt is `var IDENT ("=" expr)? ";"`. Initializer is nil when absent.
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr
}

func (v *VarStmt) stmtNode()            {}
func (v *VarStmt) TokenLiteral() string { return v.Name.Lexeme }
func (v *VarStmt) Pos() lexer.Position  { return v.Name.Pos() }
func (v *VarStmt) String() string {
	if v.Initializer == nil {
		return "var " + v.Name.Lexeme + ";"
	}
	return "var " + v.Name.Lexeme + " = " + v.Initializer.String() + ";"
}

// BlockStmt is `"{" declaration* "}"`.
type BlockStmt struct {
	LeftBrace  lexer.Token
	Statements []Stmt
}

func (b *BlockStmt) stmtNode()            {}
func (b *BlockStmt) TokenLiteral() string { return b.LeftBrace.Lexeme }
func (b *BlockStmt) Pos() lexer.Position  { return b.LeftBrace.Pos() }
func (b *BlockStmt) String() string {
	parts := make([]string, len(b.Statements))
	for i, s := range b.Statements {
		parts[i] = s.String()
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// IfStmt is `if "(" expr ")" stmt ("else" stmt)?`. ElseBranch is nil when absent.
type IfStmt struct {
	Keyword     lexer.Token
	Condition   Expr
	ThenBranch  Stmt
	ElseBranch  Stmt
}

func (i *IfStmt) stmtNode()            {}
func (i *IfStmt) TokenLiteral() string { return i.Keyword.Lexeme }
func (i *IfStmt) Pos() lexer.Position  { return i.Keyword.Pos() }
func (i *IfStmt) String() string {
	s := "if (" + i.Condition.String() + ") " + i.ThenBranch.String()
	if i.ElseBranch != nil {
		s += " else " + i.ElseBranch.String()
	}
	return s
}

// WhileStmt is `while "(" expr ")" stmt`. The parser also desugars `for`
// loops down to a WhileStmt, wrapped in a BlockStmt when the loop has an
// initializer (spec.md §4.4: "for is sugar"), so there is no separate
// ForStmt node.
type WhileStmt struct {
	Keyword   lexer.Token
	Condition Expr
	Body      Stmt
}

func (w *WhileStmt) stmtNode()            {}
func (w *WhileStmt) TokenLiteral() string { return w.Keyword.Lexeme }
func (w *WhileStmt) Pos() lexer.Position  { return w.Keyword.Pos() }
func (w *WhileStmt) String() string {
	return "while (" + w.Condition.String() + ") " + w.Body.String()
}

// FunctionStmt is `fun IDENT "(" params? ")" block`. The same node is
// reused for class methods, which are parsed without the leading `fun`.
type FunctionStmt struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

func (f *FunctionStmt) stmtNode()            {}
func (f *FunctionStmt) TokenLiteral() string { return f.Name.Lexeme }
func (f *FunctionStmt) Pos() lexer.Position  { return f.Name.Pos() }
func (f *FunctionStmt) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Lexeme
	}
	return "fun " + f.Name.Lexeme + "(" + strings.Join(params, ", ") + ")"
}

// ReturnStmt is `return expr? ";"`. Value is nil when absent.
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr
}

func (r *ReturnStmt) stmtNode()            {}
func (r *ReturnStmt) TokenLiteral() string { return r.Keyword.Lexeme }
func (r *ReturnStmt) Pos() lexer.Position  { return r.Keyword.Pos() }
func (r *ReturnStmt) String() string {
	if r.Value == nil {
		return "return;"
	}
	return "return " + r.Value.String() + ";"
}

// ClassStmt is `class IDENT ("<" IDENT)? "{" method* "}"`. Superclass is
// nil when the class declares no parent.
type ClassStmt struct {
	Name       lexer.Token
	Superclass *Variable
	Methods    []*FunctionStmt
}

func (c *ClassStmt) stmtNode()            {}
func (c *ClassStmt) TokenLiteral() string { return c.Name.Lexeme }
func (c *ClassStmt) Pos() lexer.Position  { return c.Name.Pos() }
func (c *ClassStmt) String() string {
	header := "class " + c.Name.Lexeme
	if c.Superclass != nil {
		header += " < " + c.Superclass.Name.Lexeme
	}
	methods := make([]string, len(c.Methods))
	for i, m := range c.Methods {
		methods[i] = m.String()
	}
	return header + " {" + strings.Join(methods, " ") + "}"
}
