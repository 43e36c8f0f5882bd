package resolver

import "github.com/golox/golox/internal/ast"

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expression)
	case *ast.PrintStmt:
		r.resolveExpr(s.Expression)
	case *ast.VarStmt:
		r.declare(s.Name.Lexeme, s.Name.Line)
		if s.Init != nil {
			r.resolveExpr(s.Init)
		}
		r.define(s.Name.Lexeme)
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()
	case *ast.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}
	case *ast.LoopStmt:
		r.resolveLoop(s)
	case *ast.BreakStmt:
		if r.loopDepth == 0 {
			r.sink.Error(s.Keyword.Line, "'break' outside of a loop")
		}
	case *ast.ContinueStmt:
		if r.loopDepth == 0 {
			r.sink.Error(s.Keyword.Line, "'continue' outside of a loop")
		}
	case *ast.FunctionStmt:
		r.declare(s.Name.Lexeme, s.Name.Line)
		r.define(s.Name.Lexeme)
		r.resolveFunction(s.Function, funcFunction)
	case *ast.ReturnStmt:
		if r.currentFunction == funcNone {
			r.sink.Error(s.Keyword.Line, "'return' outside of a function")
		}
		if s.Value != nil {
			if r.currentFunction == funcInitializer {
				r.sink.Error(s.Keyword.Line, "Can't return a value from an initializer")
			}
			r.resolveExpr(s.Value)
		}
	case *ast.ClassStmt:
		r.resolveClass(s)
	default:
		panic("resolver: unhandled statement type")
	}
}

// resolveLoop opens a fresh scope for the loop's init clause (visible to
// condition, update, and body, but not after the loop), matching §9's
// "fresh scope per for loop" rule. `while` arrives here with Init == nil,
// so it simply skips the declare/define step.
func (r *Resolver) resolveLoop(s *ast.LoopStmt) {
	r.beginScope()
	if s.Init != nil {
		r.resolveStmt(s.Init)
	}
	r.resolveExpr(s.Condition)
	if s.Update != nil {
		r.resolveExpr(s.Update)
	}
	r.loopDepth++
	r.resolveStmt(s.Body)
	r.loopDepth--
	r.endScope()
}

func (r *Resolver) resolveFunction(fn *ast.FunctionExpr, typ functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = typ

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param.Lexeme, param.Line)
		r.define(param.Lexeme)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *Resolver) resolveClass(s *ast.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(s.Name.Lexeme, s.Name.Line)
	r.define(s.Name.Lexeme)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.sink.Error(s.Superclass.Name.Line, "A class can't inherit from itself")
		} else {
			r.currentClass = classSubclass
			r.resolveExpr(s.Superclass)
		}
	}

	if s.Superclass != nil {
		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = &binding{defined: true, used: true}
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = &binding{defined: true, used: true}

	for _, method := range s.Methods {
		typ := funcMethod
		if method.Name.Lexeme == "init" {
			typ = funcInitializer
		}
		r.resolveFunction(method.Function, typ)
	}

	r.endScope() // "this"

	for _, method := range s.StaticMethods {
		// Static methods resolve as ordinary functions: no `this` frame.
		r.resolveFunction(method.Function, funcStaticMethod)
	}

	if s.Superclass != nil {
		r.endScope() // "super"
	}

	r.currentClass = enclosingClass
}
