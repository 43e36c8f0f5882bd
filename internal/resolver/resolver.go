// Package resolver performs the static pass between parsing and evaluation:
// for every variable, `this`, and `super` reference it computes a lexical
// scope depth (or marks the reference global), and it enforces the static
// checks listed in spec §4.3 (return/this/super/break/continue placement,
// self-inheriting classes, redeclaration, and reading a variable in its own
// initializer).
package resolver

import (
	"github.com/golox/golox/internal/ast"
	"github.com/golox/golox/internal/diagnostics"
)

// Depths is the resolver→evaluator depth map keyed on AST node pointer
// identity (see spec §9 "Node identity"): a Go pointer is already a stable,
// dense-enough identity for the lifetime of one parsed chunk, so no
// separate arena/ID scheme is needed. A Variable/Assign/This/Super node
// with no entry resolves against globals by name instead.
type Depths map[ast.Expr]int

type functionType int

const (
	funcNone functionType = iota
	funcFunction
	funcMethod
	funcInitializer
	funcStaticMethod
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// binding records whether a name has been declared (but not yet defined)
// in a scope, and whether it has been read — used for the unused-variable
// warning emitted at scope end.
type binding struct {
	line    int
	defined bool
	used    bool
}

// Resolver walks a parsed Program exactly once.
type Resolver struct {
	sink   *diagnostics.Sink
	scopes []map[string]*binding
	depths Depths

	currentFunction functionType
	currentClass    classType
	loopDepth       int
}

// Resolve runs static resolution over program, reporting errors and
// warnings to sink, and returns the scope-depth map for the evaluator.
func Resolve(program *ast.Program, sink *diagnostics.Sink) Depths {
	r := &Resolver{sink: sink, depths: make(Depths)}
	r.resolveStmts(program.Statements)
	return r.depths
}

// --- scope management ---

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]*binding))
}

func (r *Resolver) endScope() {
	scope := r.scopes[len(r.scopes)-1]
	for name, b := range scope {
		if !b.used {
			r.sink.Warning(b.line, "Unused local variable '%s'", name)
		}
	}
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name string, line int) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, exists := scope[name]; exists {
		r.sink.Error(line, "Already a variable '%s' in this scope", name)
	}
	scope[name] = &binding{line: line}
}

func (r *Resolver) define(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name].defined = true
}

// resolveLocal walks outward from the innermost scope looking for name; on
// a hit it records the hop count in r.depths and marks the binding used.
// No hit leaves no entry, meaning "resolve against globals" to the
// evaluator.
func (r *Resolver) resolveLocal(expr ast.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if b, ok := r.scopes[i][name]; ok {
			b.used = true
			r.depths[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}
