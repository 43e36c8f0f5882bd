package interp

import "github.com/golox/golox/internal/ast"

// Method is satisfied by any class member that can be bound to an
// instance: a user Function (body is Lox statements) or a NativeMethod
// (body is a Go closure, registered through pkg/lox). Class.Methods holds
// this interface rather than *Function so native classes share the same
// property-dispatch path as user ones.
type Method interface {
	Callable
	Bind(instance *Instance) Method
	IsGetter() bool
}

// Function is a user-defined function, method, or getter value: an
// ast.FunctionExpr paired with the environment in force at its point of
// creation (spec §4.5 "Functions & closures"). isGetter mirrors
// ast.FunctionExpr.Params == nil; isInitializer marks a class's "init".
type Function struct {
	declaration   *ast.FunctionExpr
	closure       *Environment
	isInitializer bool
	isGetter      bool
}

// NewFunction wraps declaration, closing over closure. isInitializer is
// true only for a class's "init" method.
func NewFunction(declaration *ast.FunctionExpr, closure *Environment, isInitializer bool) *Function {
	return &Function{
		declaration:   declaration,
		closure:       closure,
		isInitializer: isInitializer,
		isGetter:      declaration.Params == nil,
	}
}

func (f *Function) Arity() int {
	return len(f.declaration.Params)
}

// Bind returns a copy of f whose closure is a fresh frame, one level
// inside f's original closure, defining "this" as instance — spec §4.5
// "property access... binds this into the binding frame at depth 0".
func (f *Function) Bind(instance *Instance) Method {
	env := NewEnclosedEnvironment(f.closure)
	env.Define("this", instance)
	bound := *f
	bound.closure = env
	return &bound
}

// IsGetter reports whether f was declared without a parameter list.
func (f *Function) IsGetter() bool {
	return f.isGetter
}

// Call creates a new frame whose parent is the captured closure, binds
// parameters positionally, and executes the body. Reaching the end
// without a return yields nil, except init's end yields the bound `this`.
func (f *Function) Call(i *Interpreter, args []Value) Value {
	env := NewEnclosedEnvironment(f.closure)
	for idx, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[idx])
	}

	result := i.execBlockIn(f.declaration.Body, env)

	if f.isInitializer {
		this, _ := f.closure.Get("this")
		return this
	}
	if result.kind == execReturn {
		return result.value
	}
	return nil
}

func (f *Function) String() string {
	name := f.declaration.Name
	if name == "" {
		return "anonymous"
	}
	if f.isGetter {
		return "<getter " + name + ">"
	}
	return "<fn " + name + ">"
}

// NativeFunc is the host callable shape an embedder registers through
// pkg/lox (spec §6 "Embedding API").
type NativeFunc func(i *Interpreter, args []Value) Value

// NativeFunction wraps a host Go function as a Lox-callable value.
type NativeFunction struct {
	Name  string
	Ar    int
	Fn    NativeFunc
}

func (n *NativeFunction) Arity() int { return n.Ar }

func (n *NativeFunction) Call(i *Interpreter, args []Value) Value {
	return n.Fn(i, args)
}

func (n *NativeFunction) String() string {
	return "<native fn " + n.Name + ">"
}

// NativeMethodFunc is a native class method body: the bound instance plus
// its call arguments, host-implemented.
type NativeMethodFunc func(instance *Instance, args []Value) Value

// NativeMethod is a class member whose body is a Go closure rather than
// Lox statements, registered through pkg/lox.RegisterClass. It implements
// Method so native and user classes share Instance.GetProperty.
type NativeMethod struct {
	Name     string
	Ar       int
	Fn       NativeMethodFunc
	Getter   bool
	instance *Instance // set by Bind; nil until bound
}

func (m *NativeMethod) Arity() int     { return m.Ar }
func (m *NativeMethod) IsGetter() bool { return m.Getter }

func (m *NativeMethod) Bind(instance *Instance) Method {
	bound := *m
	bound.instance = instance
	return &bound
}

func (m *NativeMethod) Call(_ *Interpreter, args []Value) Value {
	return m.Fn(m.instance, args)
}

func (m *NativeMethod) String() string {
	if m.Getter {
		return "<getter " + m.Name + ">"
	}
	return "<native fn " + m.Name + ">"
}
