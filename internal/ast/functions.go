package ast

import "github.com/golox/golox/internal/token"

func (*FunctionStmt) stmtNode() {}
func (*ReturnStmt) stmtNode()   {}

// FunctionStmt is a named function declaration: `fun name(params) { body }`.
// It wraps a FunctionExpr so the evaluator has one code path for creating
// closures whether the function came from a statement or an expression.
type FunctionStmt struct {
	Name     token.Token
	Function *FunctionExpr
}

// ReturnStmt is `return value?;`. Value is nil when the statement has no
// expression, in which case the function call yields nil (or, inside an
// `init` method, the constructed instance).
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr
}
