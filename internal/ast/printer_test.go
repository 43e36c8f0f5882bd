package ast

import (
	"testing"

	"github.com/golox/golox/internal/token"
	"github.com/stretchr/testify/assert"
)

func TestPrintBinaryExpression(t *testing.T) {
	program := &Program{
		Statements: []Stmt{
			&ExpressionStmt{
				Expression: &Binary{
					Left:     &Literal{Value: float64(1)},
					Operator: token.Token{Type: token.PLUS, Lexeme: "+"},
					Right:    &Literal{Value: float64(2)},
				},
			},
		},
	}
	assert.Equal(t, "(+ 1 2)\n", Print(program))
}

func TestPrintVarAndPrintStmt(t *testing.T) {
	program := &Program{
		Statements: []Stmt{
			&VarStmt{Name: token.Token{Lexeme: "x"}, Init: &Literal{Value: float64(5)}},
			&PrintStmt{Expression: &Variable{Name: token.Token{Lexeme: "x"}}},
		},
	}
	assert.Equal(t, "(var x 5)\n(print x)\n", Print(program))
}

func TestPrintGetterHasNoParamList(t *testing.T) {
	fn := &FunctionExpr{Name: "area", Params: nil, Body: []Stmt{
		&ReturnStmt{Value: &Literal{Value: float64(0)}},
	}}
	assert.Equal(t, "(getter) (body (return 0))", printFunctionBody(fn))
}

func TestPrintStringLiteralIsQuoted(t *testing.T) {
	program := &Program{
		Statements: []Stmt{
			&ExpressionStmt{Expression: &Literal{Value: "hi"}},
		},
	}
	assert.Equal(t, "\"hi\"\n", Print(program))
}
