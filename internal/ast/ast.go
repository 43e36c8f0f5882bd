// Package ast defines the abstract syntax tree produced by the parser and
// walked by the resolver and evaluator.
//
// Every node is a distinct Go type implementing Expr or Stmt; dispatch is by
// type switch rather than a visitor interface, which keeps the resolver and
// evaluator's per-node-kind logic colocated with the rest of that pass
// instead of scattered across one Visit method per node type. Node pointer
// identity is stable for the life of a tree, which the resolver relies on
// when recording scope depths (see resolver.Depths).
package ast

// Expr is any node that produces a value when evaluated.
type Expr interface {
	exprNode()
}

// Stmt is any node that performs an action.
type Stmt interface {
	stmtNode()
}

// Program is the root of a parsed chunk: a flat list of top-level
// declarations.
type Program struct {
	Statements []Stmt
}
