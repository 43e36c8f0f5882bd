package parser

import (
	"github.com/golox/golox/internal/ast"
	"github.com/golox/golox/internal/token"
)

// expression is the entry point used wherever a single comma-level
// expression is needed (statement bodies, initializers).
func (p *Parser) expression() ast.Expr {
	return p.comma()
}

// comma = assignment ("," assignment)*  (folds to a single Expr if length==1)
func (p *Parser) comma() ast.Expr {
	first := p.assignment()
	if !p.check(token.COMMA) {
		return first
	}
	exprs := []ast.Expr{first}
	for p.match(token.COMMA) {
		exprs = append(exprs, p.assignment())
	}
	return &ast.Comma{Expressions: exprs}
}

// assignment = or ( "=" assignment )?
func (p *Parser) assignment() ast.Expr {
	left := p.or()

	if p.match(token.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := left.(type) {
		case *ast.Variable:
			return &ast.Assign{Name: target.Name, Value: value}
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}
		default:
			p.sink.Error(equals.Line, "Invalid assignment target")
			return left
		}
	}

	return left
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.OR) {
		op := p.previous()
		right := p.and()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.PLUS, token.MINUS) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.power()
	for p.match(token.STAR, token.SLASH, token.PERCENT) {
		op := p.previous()
		right := p.power()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// power = unary ("**" power)?, right-associative so 2 ** 3 ** 2 == 2 ** (3 ** 2).
func (p *Parser) power() ast.Expr {
	expr := p.unary()
	if p.match(token.STAR_STAR) {
		op := p.previous()
		right := p.power()
		return &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		right := p.unary()
		return &ast.Unary{Operator: op, Right: right}
	}
	return p.call()
}

// call = primary ( "(" args? ")" | "." IDENT )*
func (p *Parser) call() ast.Expr {
	expr := p.primary()

	for {
		switch {
		case p.match(token.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			name := p.consume(token.IDENTIFIER, "Expect property name after '.'")
			expr = &ast.Get{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.sink.Error(p.peek().Line, "Can't have more than %d arguments", maxArgs)
			}
			args = append(args, p.assignment())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.consume(token.RIGHT_PAREN, "Expect ')' after arguments")
	return &ast.Call{Callee: callee, ClosingParen: paren, Arguments: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return &ast.Literal{Value: false}
	case p.match(token.TRUE):
		return &ast.Literal{Value: true}
	case p.match(token.NIL):
		return &ast.Literal{Value: nil}
	case p.match(token.NUMBER, token.STRING):
		return &ast.Literal{Value: p.previous().Literal}
	case p.match(token.SUPER):
		keyword := p.previous()
		p.consume(token.DOT, "Expect '.' after 'super'")
		member := p.consume(token.IDENTIFIER, "Expect superclass member name")
		return &ast.Super{Keyword: keyword, Member: member}
	case p.match(token.THIS):
		return &ast.This{Keyword: p.previous()}
	case p.match(token.IDENTIFIER):
		return &ast.Variable{Name: p.previous()}
	case p.match(token.LEFT_PAREN):
		inner := p.comma()
		p.consume(token.RIGHT_PAREN, "Expect ')' after expression")
		return &ast.Grouping{Inner: inner}
	case p.match(token.FUN):
		return p.functionExpr()
	case p.match(token.DELETE):
		return p.deleteExpr()
	}

	panic(p.errorAt(p.peek(), "Expect expression"))
}

// functionExpr parses an anonymous (or optionally named) function literal:
// "fun" IDENT? "(" params? ")" block.
func (p *Parser) functionExpr() ast.Expr {
	name := ""
	if p.check(token.IDENTIFIER) {
		name = p.advance().Lexeme
	}
	p.consume(token.LEFT_PAREN, "Expect '(' after function name")
	params := p.parameterList()
	p.consume(token.LEFT_BRACE, "Expect '{' before function body")
	body := p.block()
	return &ast.FunctionExpr{Name: name, Params: params, Body: body}
}

// deleteExpr parses "delete" comma; the operand must reduce to a Get.
func (p *Parser) deleteExpr() ast.Expr {
	keyword := p.previous()
	operand := p.comma()
	get, ok := operand.(*ast.Get)
	if !ok {
		p.sink.Error(keyword.Line, "Delete expression must end with field access")
		return &ast.Literal{Value: nil}
	}
	return &ast.Delete{Keyword: keyword, Object: get.Object, Name: get.Name}
}

// parameterList parses a parenthesized parameter list (opening paren
// already consumed). It returns a non-nil slice even when empty, so callers
// can distinguish "()" (zero parameters) from "no parens at all" (nil),
// which FunctionExpr.Params uses to denote a getter.
func (p *Parser) parameterList() []token.Token {
	params := []token.Token{}
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.sink.Error(p.peek().Line, "Can't have more than %d parameters", maxArgs)
			}
			params = append(params, p.consume(token.IDENTIFIER, "Expect parameter name"))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RIGHT_PAREN, "Expect ')' after parameters")
	return params
}
