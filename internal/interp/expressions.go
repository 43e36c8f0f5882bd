package interp

import (
	"math"

	"github.com/golox/golox/internal/ast"
	"github.com/golox/golox/internal/token"
)

func (i *Interpreter) eval(expr ast.Expr) Value {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value
	case *ast.Grouping:
		return i.eval(e.Inner)
	case *ast.Unary:
		return i.evalUnary(e)
	case *ast.Binary:
		return i.evalBinary(e)
	case *ast.Logical:
		return i.evalLogical(e)
	case *ast.Variable:
		return i.lookupVariable(e, e.Name)
	case *ast.Assign:
		value := i.eval(e.Value)
		if depth, ok := i.depths[e]; ok {
			i.env.AssignAt(depth, e.Name.Lexeme, value)
		} else if err := i.globals.Assign(e.Name.Lexeme, value); err != nil {
			throwf(e.Name.Line, "%s", err)
		}
		return value
	case *ast.Call:
		return i.evalCall(e)
	case *ast.FunctionExpr:
		return NewFunction(e, i.env, false)
	case *ast.Get:
		return i.evalGet(e)
	case *ast.Set:
		return i.evalSet(e)
	case *ast.Delete:
		return i.evalDelete(e)
	case *ast.This:
		return i.lookupVariable(e, e.Keyword)
	case *ast.Super:
		return i.evalSuper(e)
	case *ast.Comma:
		var last Value
		for _, sub := range e.Expressions {
			last = i.eval(sub)
		}
		return last
	default:
		panic("interp: unhandled expression type")
	}
}

// lookupVariable resolves expr (a *ast.Variable or *ast.This) at its
// resolver-recorded depth, falling back to globals by name — spec §8's
// invariant: exactly one of these two paths succeeds, never both, never
// neither without a runtime error.
func (i *Interpreter) lookupVariable(expr ast.Expr, name token.Token) Value {
	if depth, ok := i.depths[expr]; ok {
		return i.env.GetAt(depth, name.Lexeme, name.Line)
	}
	v, err := i.globals.Get(name.Lexeme)
	if err != nil {
		throwf(name.Line, "%s", err)
	}
	return v
}

func (i *Interpreter) evalUnary(e *ast.Unary) Value {
	right := i.eval(e.Right)
	switch e.Operator.Type {
	case token.MINUS:
		n, ok := right.(float64)
		if !ok {
			throwf(e.Operator.Line, "Operand must be a number")
		}
		return -n
	case token.BANG:
		return !Truthy(right)
	default:
		panic("interp: unhandled unary operator")
	}
}

func (i *Interpreter) evalLogical(e *ast.Logical) Value {
	left := i.eval(e.Left)
	switch e.Operator.Type {
	case token.OR:
		if Truthy(left) {
			return left
		}
		return i.eval(e.Right)
	case token.AND:
		if !Truthy(left) {
			return left
		}
		return i.eval(e.Right)
	default:
		panic("interp: unhandled logical operator")
	}
}

func (i *Interpreter) evalBinary(e *ast.Binary) Value {
	left := i.eval(e.Left)
	right := i.eval(e.Right)
	line := e.Operator.Line

	switch e.Operator.Type {
	case token.PLUS:
		if ln, ok := left.(float64); ok {
			if rn, ok := right.(float64); ok {
				return ln + rn
			}
		}
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs
			}
		}
		throwf(line, "Operands must both be a number or a string")
	case token.MINUS:
		return numOp(line, left, right, func(a, b float64) float64 { return a - b })
	case token.STAR:
		return numOp(line, left, right, func(a, b float64) float64 { return a * b })
	case token.SLASH:
		return numOp(line, left, right, func(a, b float64) float64 { return a / b })
	case token.PERCENT:
		return numOp(line, left, right, math.Mod)
	case token.STAR_STAR:
		return numOp(line, left, right, math.Pow)
	case token.GREATER:
		return numCmp(line, left, right, func(a, b float64) bool { return a > b })
	case token.GREATER_EQUAL:
		return numCmp(line, left, right, func(a, b float64) bool { return a >= b })
	case token.LESS:
		return numCmp(line, left, right, func(a, b float64) bool { return a < b })
	case token.LESS_EQUAL:
		return numCmp(line, left, right, func(a, b float64) bool { return a <= b })
	case token.EQUAL_EQUAL:
		return Equal(left, right)
	case token.BANG_EQUAL:
		return !Equal(left, right)
	}
	panic("interp: unhandled binary operator")
}

func numOp(line int, left, right Value, op func(a, b float64) float64) Value {
	ln, lok := left.(float64)
	rn, rok := right.(float64)
	if !lok || !rok {
		throwf(line, "Operand must be a number")
	}
	return op(ln, rn)
}

func numCmp(line int, left, right Value, op func(a, b float64) bool) Value {
	ln, lok := left.(float64)
	rn, rok := right.(float64)
	if !lok || !rok {
		throwf(line, "Operand must be a number")
	}
	return op(ln, rn)
}

func (i *Interpreter) evalCall(e *ast.Call) Value {
	callee := i.eval(e.Callee)

	args := make([]Value, len(e.Arguments))
	for idx, a := range e.Arguments {
		args[idx] = i.eval(a)
	}

	callable, ok := callee.(Callable)
	if !ok {
		throwf(e.ClosingParen.Line, "Value is not callable")
	}
	if len(args) != callable.Arity() {
		throwf(e.ClosingParen.Line, "Expected %d args but got %d", callable.Arity(), len(args))
	}
	return callable.Call(i, args)
}

func (i *Interpreter) evalGet(e *ast.Get) Value {
	object := i.eval(e.Object)
	switch obj := object.(type) {
	case *Instance:
		v, ok := obj.GetProperty(i, e.Name.Lexeme)
		if !ok {
			throwf(e.Name.Line, "Undefined property '%s'", e.Name.Lexeme)
		}
		return v
	case *Class:
		v, ok := obj.GetStatic(e.Name.Lexeme)
		if !ok {
			throwf(e.Name.Line, "Undefined property '%s'", e.Name.Lexeme)
		}
		return v
	default:
		throwf(e.Name.Line, "Value is not a class instance")
	}
	panic("unreachable")
}

func (i *Interpreter) evalSet(e *ast.Set) Value {
	object := i.eval(e.Object)
	value := i.eval(e.Value)
	switch obj := object.(type) {
	case *Instance:
		obj.SetProperty(e.Name.Lexeme, value)
	case *Class:
		obj.SetStatic(e.Name.Lexeme, value)
	default:
		throwf(e.Name.Line, "Value is not a class instance")
	}
	return value
}

func (i *Interpreter) evalDelete(e *ast.Delete) Value {
	object := i.eval(e.Object)
	switch obj := object.(type) {
	case *Instance:
		return obj.DeleteProperty(e.Name.Lexeme)
	case *Class:
		return obj.DeleteStatic(e.Name.Lexeme)
	default:
		throwf(e.Name.Line, "Value is not a class instance")
	}
	panic("unreachable")
}

// evalSuper implements spec §4.5 "super.member": the `super` frame sits at
// the resolver-recorded depth; the instance (`this`) is one frame closer
// (depth-1). When that instance lookup is absent — a static-method context
// — the member is looked up as a static instead.
func (i *Interpreter) evalSuper(e *ast.Super) Value {
	depth := i.depths[e]
	superVal := i.env.GetAt(depth, "super", e.Keyword.Line)
	superclass := superVal.(*Class)

	if this, ok := i.env.GetUncheckedAt(depth-1, "this"); ok {
		instance := this.(*Instance)
		method := superclass.FindMethod(e.Member.Lexeme)
		if method == nil {
			throwf(e.Member.Line, "Undefined property '%s'", e.Member.Lexeme)
		}
		return method.Bind(instance)
	}

	v, ok := superclass.GetStatic(e.Member.Lexeme)
	if !ok {
		throwf(e.Member.Line, "Undefined property '%s'", e.Member.Lexeme)
	}
	return v
}
