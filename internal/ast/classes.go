package ast

import "github.com/golox/golox/internal/token"

func (*ClassStmt) stmtNode() {}

// ClassStmt is a class declaration. Superclass is nil when the class has no
// `< Parent` clause. Methods and StaticMethods are slices in source order,
// not maps keyed by name; the evaluator builds the name-keyed method map
// from them.
type ClassStmt struct {
	Name          token.Token
	Superclass    *Variable // nil if no superclass
	Methods       []*FunctionStmt
	StaticMethods []*FunctionStmt
}
