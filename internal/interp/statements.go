package interp

import (
	"io"

	"github.com/golox/golox/internal/ast"
)

func (i *Interpreter) exec(stmt ast.Stmt) execResult {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		i.eval(s.Expression)
		return normalResult
	case *ast.PrintStmt:
		v := i.eval(s.Expression)
		io.WriteString(i.stdout, Stringify(v)+"\n")
		return normalResult
	case *ast.VarStmt:
		if s.Init != nil {
			i.env.Define(s.Name.Lexeme, i.eval(s.Init))
		} else {
			i.env.Declare(s.Name.Lexeme)
		}
		return normalResult
	case *ast.BlockStmt:
		return i.execBlockIn(s.Statements, NewEnclosedEnvironment(i.env))
	case *ast.IfStmt:
		if Truthy(i.eval(s.Condition)) {
			return i.exec(s.Then)
		} else if s.Else != nil {
			return i.exec(s.Else)
		}
		return normalResult
	case *ast.LoopStmt:
		return i.execLoop(s)
	case *ast.BreakStmt:
		return execResult{kind: execBreak}
	case *ast.ContinueStmt:
		return execResult{kind: execContinue}
	case *ast.FunctionStmt:
		i.env.Define(s.Name.Lexeme, NewFunction(s.Function, i.env, false))
		return normalResult
	case *ast.ReturnStmt:
		var value Value
		if s.Value != nil {
			value = i.eval(s.Value)
		}
		return execResult{kind: execReturn, value: value}
	case *ast.ClassStmt:
		i.execClass(s)
		return normalResult
	default:
		panic("interp: unhandled statement type")
	}
}

// execLoop runs a desugared while/for (spec §4.5 "Control flow"): the
// loop's own scope (holding its init variable, if any) persists across
// iterations, matching the resolver's single scope per LoopStmt. `update`
// runs at the end of every iteration, including ones ended by `continue`.
func (i *Interpreter) execLoop(s *ast.LoopStmt) execResult {
	loopEnv := NewEnclosedEnvironment(i.env)
	previous := i.env
	i.env = loopEnv
	defer func() { i.env = previous }()

	if s.Init != nil {
		i.exec(s.Init)
	}

	for Truthy(i.eval(s.Condition)) {
		result := i.exec(s.Body)
		switch result.kind {
		case execReturn:
			return result
		case execBreak:
			return normalResult
		}
		// execNormal and execContinue both proceed to the update clause.
		if s.Update != nil {
			i.eval(s.Update)
		}
	}
	return normalResult
}

func (i *Interpreter) execClass(s *ast.ClassStmt) {
	var superclass *Class
	if s.Superclass != nil {
		sv := i.eval(s.Superclass)
		sc, ok := sv.(*Class)
		if !ok {
			throwf(s.Superclass.Name.Line, "Superclass must be a class")
		}
		superclass = sc
	}

	i.env.Define(s.Name.Lexeme, nil)

	classEnv := i.env
	if superclass != nil {
		classEnv = NewEnclosedEnvironment(i.env)
		classEnv.Define("super", superclass)
	}

	methods := make(map[string]Method)
	var initFn Method
	for _, m := range s.Methods {
		fn := NewFunction(m.Function, classEnv, m.Name.Lexeme == "init")
		methods[m.Name.Lexeme] = fn
		if m.Name.Lexeme == "init" {
			initFn = fn
		}
	}

	class := &Class{
		Name:         s.Name.Lexeme,
		Superclass:   superclass,
		Methods:      methods,
		StaticFields: make(map[string]Value),
		Init:         initFn,
	}

	for _, m := range s.StaticMethods {
		class.StaticFields[m.Name.Lexeme] = NewFunction(m.Function, classEnv, false)
	}

	if err := i.env.Assign(s.Name.Lexeme, class); err != nil {
		panic("interp: class name disappeared from its own defining scope")
	}
}
