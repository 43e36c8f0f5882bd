package resolver

import "github.com/golox/golox/internal/ast"

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Literal:
		// no identifiers to resolve
	case *ast.Unary:
		r.resolveExpr(e.Right)
	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Grouping:
		r.resolveExpr(e.Inner)
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if b, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !b.defined {
				r.sink.Error(e.Name.Line, "Can't read local variable '%s' in its own initializer", e.Name.Lexeme)
			}
		}
		r.resolveLocal(e, e.Name.Lexeme)
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name.Lexeme)
	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Arguments {
			r.resolveExpr(arg)
		}
	case *ast.FunctionExpr:
		r.resolveFunction(e, funcFunction)
	case *ast.Get:
		r.resolveExpr(e.Object)
	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)
	case *ast.Delete:
		r.resolveExpr(e.Object)
	case *ast.This:
		if r.currentClass == classNone {
			r.sink.Error(e.Keyword.Line, "Can't use 'this' outside of a class")
			return
		}
		r.resolveLocal(e, "this")
	case *ast.Super:
		if r.currentClass == classNone {
			r.sink.Error(e.Keyword.Line, "Can't use 'super' outside of a class")
		} else if r.currentClass != classSubclass {
			r.sink.Error(e.Keyword.Line, "Can't use 'super' in a class with no superclass")
		}
		r.resolveLocal(e, "super")
	case *ast.Comma:
		for _, sub := range e.Expressions {
			r.resolveExpr(sub)
		}
	default:
		panic("resolver: unhandled expression type")
	}
}
