package ast

import "github.com/golox/golox/internal/token"

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()      {}

// ExpressionStmt evaluates an expression for its side effects and discards
// the result.
type ExpressionStmt struct {
	Expression Expr
}

// PrintStmt evaluates an expression and writes its stringified form,
// followed by a newline, to the interpreter's output.
type PrintStmt struct {
	Expression Expr
}

// VarStmt declares a local or global variable. Init is nil when the
// declaration has no initializer, in which case the slot is left absent
// (distinct from holding nil).
type VarStmt struct {
	Name token.Token
	Init Expr
}

// BlockStmt introduces a new lexical scope around a list of declarations.
type BlockStmt struct {
	Statements []Stmt
}
