package parser

import (
	"github.com/golox/golox/internal/ast"
	"github.com/golox/golox/internal/token"
)

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.BREAK):
		kw := p.previous()
		p.consume(token.SEMICOLON, "Expect ';' after 'break'")
		return &ast.BreakStmt{Keyword: kw}
	case p.match(token.CONTINUE):
		kw := p.previous()
		p.consume(token.SEMICOLON, "Expect ';' after 'continue'")
		return &ast.ContinueStmt{Keyword: kw}
	case p.match(token.LEFT_BRACE):
		return &ast.BlockStmt{Statements: p.block()}
	default:
		return p.expressionStatement()
	}
}

// block parses declaration* until a closing brace, which it consumes. The
// opening brace must already have been consumed by the caller.
func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		stmts = append(stmts, p.declarationRecovering())
	}
	p.consume(token.RIGHT_BRACE, "Expect '}' after block")
	return stmts
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'if'")
	cond := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after if condition")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.ELSE) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Condition: cond, Then: thenBranch, Else: elseBranch}
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(token.SEMICOLON, "Expect ';' after value")
	return &ast.PrintStmt{Expression: value}
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after return value")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "Expect variable name")

	var init ast.Expr
	if p.match(token.EQUAL) {
		init = p.comma()
	}
	p.consume(token.SEMICOLON, "Expect ';' after variable declaration")
	return &ast.VarStmt{Name: name, Init: init}
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.SEMICOLON, "Expect ';' after expression")
	return &ast.ExpressionStmt{Expression: expr}
}

// whileStatement desugars to a LoopStmt with no init/update clause, so the
// evaluator has a single loop implementation.
func (p *Parser) whileStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'while'")
	cond := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after condition")
	body := p.statement()
	return &ast.LoopStmt{Condition: cond, Body: body}
}

// forStatement desugars the C-style for loop into a LoopStmt, substituting
// a literal `true` condition when the condition clause is omitted so the
// evaluator never has to special-case a missing condition.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'for'")

	var init ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		init = nil
	case p.check(token.VAR):
		p.advance()
		init = p.varDeclaration()
	default:
		init = p.expressionStatement()
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond = p.comma()
	}
	p.consume(token.SEMICOLON, "Expect ';' after loop condition")
	if cond == nil {
		cond = &ast.Literal{Value: true}
	}

	var update ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		update = p.comma()
	}
	p.consume(token.RIGHT_PAREN, "Expect ')' after for clauses")

	body := p.statement()

	return &ast.LoopStmt{Init: init, Condition: cond, Update: update, Body: body}
}
