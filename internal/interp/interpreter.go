package interp

import (
	"io"
	"os"

	"github.com/golox/golox/internal/ast"
	"github.com/golox/golox/internal/diagnostics"
	"github.com/golox/golox/internal/resolver"
)

// Interpreter is the single evaluator described in spec §4.5/§5: one
// current-environment pointer, not safe for concurrent use (no mutex,
// matching the teacher's single-threaded Interpreter).
type Interpreter struct {
	globals *Environment
	env     *Environment
	depths  resolver.Depths
	sink    *diagnostics.Sink
	stdout  io.Writer
}

// New creates an Interpreter with its own globals frame and the three
// required built-ins (spec §6) installed.
func New(sink *diagnostics.Sink) *Interpreter {
	globals := NewEnvironment()
	i := &Interpreter{globals: globals, env: globals, sink: sink, stdout: os.Stdout}
	installBuiltins(i)
	return i
}

// SetStdout redirects Print output, used by pkg/lox's WithStdout option.
func (i *Interpreter) SetStdout(w io.Writer) {
	i.stdout = w
}

// Globals returns the root environment, exposed to embedders via pkg/lox.
func (i *Interpreter) Globals() *Environment {
	return i.globals
}

// Interpret runs program using depths (produced by the resolver for this
// same parse), recovering any RuntimeError into the diagnostics sink
// rather than letting it escape to the caller. A non-RuntimeError panic
// (a resolver/evaluator invariant violation) is allowed to propagate —
// it is a programmer bug, not a reportable user error.
func (i *Interpreter) Interpret(program *ast.Program, depths resolver.Depths) {
	i.depths = depths
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(*RuntimeError); ok {
				i.sink.Runtime(rerr.Line, rerr.Message, nil)
				return
			}
			panic(r)
		}
	}()
	for _, stmt := range program.Statements {
		result := i.exec(stmt)
		if result.kind != execNormal {
			panic("interp: unhandled top-level control-flow escape")
		}
	}
}

// execBlockIn runs stmts with env as the current environment, restoring
// the previous one before returning (even on panic, via defer) — used for
// block statements, loop scopes, and call frames alike.
func (i *Interpreter) execBlockIn(stmts []ast.Stmt, env *Environment) execResult {
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()

	for _, stmt := range stmts {
		result := i.exec(stmt)
		if result.kind != execNormal {
			return result
		}
	}
	return normalResult
}
