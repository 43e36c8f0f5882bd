package ast

import "github.com/golox/golox/internal/token"

func (*IfStmt) stmtNode()   {}
func (*LoopStmt) stmtNode() {}
func (*BreakStmt) stmtNode()    {}
func (*ContinueStmt) stmtNode() {}

// IfStmt is `if (cond) then else?`. Else is nil when absent.
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

// LoopStmt unifies `while` and `for`: `while (cond) body` desugars to a
// LoopStmt with Init and Update nil; `for` fills in whichever clauses were
// present. Condition is never nil — the parser substitutes a `true`
// Literal when a `for` omits it, so the evaluator never special-cases a
// missing condition.
type LoopStmt struct {
	Init      Stmt // may be nil
	Condition Expr
	Update    Expr // may be nil
	Body      Stmt
}

// BreakStmt and ContinueStmt carry their keyword token for diagnostics
// (the resolver reports "outside a loop" errors against it).
type BreakStmt struct {
	Keyword token.Token
}

type ContinueStmt struct {
	Keyword token.Token
}
