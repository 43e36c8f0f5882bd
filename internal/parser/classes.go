package parser

import (
	"github.com/golox/golox/internal/ast"
	"github.com/golox/golox/internal/token"
)

// funDeclaration parses a top-level `fun` declaration. Top-level functions
// are never getters: function() only treats a missing parameter list as a
// getter inside a class body.
func (p *Parser) funDeclaration() ast.Stmt {
	name, fn := p.function("function")
	return &ast.FunctionStmt{Name: name, Function: fn}
}

// classDeclaration parses `class NAME ( "<" SUPER )? "{" member* "}"`.
func (p *Parser) classDeclaration() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "Expect class name")

	var superclass *ast.Variable
	if p.match(token.LESS) {
		superName := p.consume(token.IDENTIFIER, "Expect superclass name")
		superclass = &ast.Variable{Name: superName}
	}

	p.consume(token.LEFT_BRACE, "Expect '{' before class body")

	var methods, staticMethods []*ast.FunctionStmt
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		isStatic := p.match(token.STATIC)
		methodName, fn := p.function("method")
		method := &ast.FunctionStmt{Name: methodName, Function: fn}
		if isStatic {
			staticMethods = append(staticMethods, method)
		} else {
			methods = append(methods, method)
		}
	}

	p.consume(token.RIGHT_BRACE, "Expect '}' after class body")

	return &ast.ClassStmt{
		Name:          name,
		Superclass:    superclass,
		Methods:       methods,
		StaticMethods: staticMethods,
	}
}

// function parses `IDENT ( "(" params? ")" )? block`. A missing parameter
// list denotes a getter; outside a class body that is a diagnosed error
// (getters may only exist within a class), and parsing continues by
// treating it as a zero-parameter method so the body still parses.
func (p *Parser) function(kind string) (string, *ast.FunctionExpr) {
	name := p.consume(token.IDENTIFIER, "Expect "+kind+" name")

	var params []token.Token
	if p.check(token.LEFT_PAREN) {
		p.advance()
		params = p.parameterList()
	} else if kind != "method" {
		p.sink.Error(name.Line, "Getters may only exist within a class")
		params = []token.Token{}
	}
	// else: params stays nil — a getter.

	p.consume(token.LEFT_BRACE, "Expect '{' before "+kind+" body")
	body := p.block()

	return name.Lexeme, &ast.FunctionExpr{Name: name.Lexeme, Params: params, Body: body}
}
