package parser

import (
	"github.com/loxscript/golox/internal/ast"
	"github.com/loxscript/golox/internal/lexer"
)

// expression := assignment
func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

// assignment := IDENT "=" assignment | call "." IDENT "=" assignment | logic_or
//
// Rather than the raw two-token lookahead spec.md describes, this parses
// the left-hand side as an ordinary logic_or (which already parses bare
// identifiers and call/get chains) and then, on seeing "=", re-interprets
// that already-parsed expression as an assignment target. Equivalent
// result, one fewer special case in the grammar. See DESIGN.md.
func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}

		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Name: target.Name, Value: value}, nil
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}, nil
		default:
			return nil, unexpectedToken(equals, NonTerminalExpected("assignment target"))
		}
	}

	return expr, nil
}

// logic_or := logic_and ("or" logic_and)*
func (p *Parser) or() (ast.Expr, error) {
	expr, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.OR) {
		op := p.previous()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

// logic_and := equality ("and" equality)*
func (p *Parser) and() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.AND) {
		op := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

// equality := comparison (("=="|"!=") comparison)*
func (p *Parser) equality() (ast.Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		op := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

// comparison := term (("<"|"<="|">"|">=") term)*
func (p *Parser) comparison() (ast.Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		op := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

// term := factor (("-"|"+") factor)*
func (p *Parser) term() (ast.Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.MINUS, lexer.PLUS) {
		op := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

// factor := unary (("/"|"*") unary)*
func (p *Parser) factor() (ast.Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.SLASH, lexer.STAR) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

// unary := ("!"|"-") unary | call
func (p *Parser) unary() (ast.Expr, error) {
	if p.match(lexer.BANG, lexer.MINUS) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Operator: op, Right: right}, nil
	}
	return p.call()
}

// call := primary ( "(" args? ")" | "." IDENT )*
func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.match(lexer.LEFT_PAREN):
			expr, err = p.finishCall(expr)
			if err != nil {
				return nil, err
			}
		case p.match(lexer.DOT):
			name, err := p.consume(lexer.IDENTIFIER, NonTerminalExpected("property name"))
			if err != nil {
				return nil, err
			}
			expr = &ast.Get{Object: expr, Name: name}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	var args []ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	paren, err := p.consume(lexer.RIGHT_PAREN, Tok(lexer.RIGHT_PAREN))
	if err != nil {
		return nil, err
	}
	return &ast.Call{Callee: callee, Paren: paren, Arguments: args}, nil
}

// primary := NUMBER | STRING | "true" | "false" | "nil" | "this" | IDENT
//          | "(" expression ")" | "super" "." IDENT
func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(lexer.FALSE):
		return &ast.Literal{Token: p.previous(), Value: false}, nil
	case p.match(lexer.TRUE):
		return &ast.Literal{Token: p.previous(), Value: true}, nil
	case p.match(lexer.NIL):
		return &ast.Literal{Token: p.previous(), Value: nil}, nil
	case p.match(lexer.NUMBER):
		tok := p.previous()
		return &ast.Literal{Token: tok, Value: tok.Literal.Number}, nil
	case p.match(lexer.STRING):
		tok := p.previous()
		return &ast.Literal{Token: tok, Value: tok.Literal.Text}, nil
	case p.match(lexer.SUPER):
		keyword := p.previous()
		if _, err := p.consume(lexer.DOT, Tok(lexer.DOT)); err != nil {
			return nil, err
		}
		method, err := p.consume(lexer.IDENTIFIER, NonTerminalExpected("superclass method name"))
		if err != nil {
			return nil, err
		}
		return &ast.Super{Keyword: keyword, Method: method}, nil
	case p.match(lexer.THIS):
		return &ast.This{Keyword: p.previous()}, nil
	case p.match(lexer.IDENTIFIER):
		return &ast.Variable{Name: p.previous()}, nil
	case p.match(lexer.LEFT_PAREN):
		paren := p.previous()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.RIGHT_PAREN, Tok(lexer.RIGHT_PAREN)); err != nil {
			return nil, err
		}
		return &ast.Grouping{Paren: paren, Expression: expr}, nil
	default:
		// spec.md §4.2: a missing token at `primary` is remapped to the
		// non-terminal name "expression" rather than an enumerated token set.
		return nil, p.errorAt(NonTerminalExpected("expression"))
	}
}
