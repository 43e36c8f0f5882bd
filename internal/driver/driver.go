// Package driver orchestrates the pipeline described in spec §4.6: lex,
// parse, resolve, interpret, short-circuiting on errors between stages,
// with a REPL retry-as-print fallback — grounded on the teacher's
// cmd/dwscript/cmd/run.go orchestration, minus its unit-loading machinery
// (golox has no module system, spec §1 Non-goals).
package driver

import (
	"io"
	"os"

	"github.com/golox/golox/internal/ast"
	"github.com/golox/golox/internal/diagnostics"
	"github.com/golox/golox/internal/interp"
	"github.com/golox/golox/internal/lexer"
	"github.com/golox/golox/internal/parser"
	"github.com/golox/golox/internal/resolver"
)

// Driver wires the four pipeline stages around one long-lived Interpreter,
// so globals and closures persist across successive Run calls in a REPL
// session.
type Driver struct {
	sink  *diagnostics.Sink
	interp *interp.Interpreter
}

// New creates a Driver reporting to sink, with a fresh Interpreter (and
// its built-in globals) installed.
func New(sink *diagnostics.Sink) *Driver {
	return &Driver{sink: sink, interp: interp.New(sink)}
}

// Interpreter exposes the underlying evaluator, e.g. so an embedder or the
// CLI can redirect stdout before running anything.
func (d *Driver) Interpreter() *interp.Interpreter {
	return d.interp
}

// HadError reports whether the most recent Run/RunFile/RunREPLChunk call
// left any error-level diagnostic in the sink.
func (d *Driver) HadError() bool {
	return d.sink.HadError()
}

// RunFile reads path as UTF-8 and runs it as one chunk.
func (d *Driver) RunFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	d.Run(string(content))
	return nil
}

// Run lexes, parses, resolves, and interprets source in one pass,
// short-circuiting to the sink at the first stage reporting an error.
// Diagnostics accumulated during the run are left in the sink for the
// caller to flush/format; the next Run or RunREPLChunk call resets it.
func (d *Driver) Run(source string) {
	d.sink.Reset()

	program, ok := d.parse(source)
	if !ok {
		return
	}

	depths := resolver.Resolve(program, d.sink)
	if d.sink.HadError() {
		return
	}

	d.interp.Interpret(program, depths)
}

func (d *Driver) parse(source string) (*ast.Program, bool) {
	return Parse(d.sink, source)
}

// Parse lexes and parses source against sink, for callers (e.g. the CLI's
// --dump-ast flag) that need the tree without running the rest of the
// pipeline.
func Parse(sink *diagnostics.Sink, source string) (*ast.Program, bool) {
	lx := lexer.New(source)
	tokens := lx.ScanTokens()
	for _, e := range lx.Errors() {
		sink.Error(e.Line, "%s", e.Message)
	}
	if sink.HadError() {
		return nil, false
	}

	p := parser.New(tokens, sink)
	program := p.ParseProgram()
	if sink.HadError() {
		return nil, false
	}
	return program, true
}

// RunREPLChunk implements spec §4.6's REPL fallback: if line fails to
// parse and does not already end with ';' or '}', retry it wrapped as
// `print line;`. If the retry also fails, the *original* errors are kept,
// not the retry's.
func (d *Driver) RunREPLChunk(line string) {
	trimmed := trimRight(line)
	if trimmed != "" && (trimmed[len(trimmed)-1] == ';' || trimmed[len(trimmed)-1] == '}') {
		d.Run(line)
		return
	}

	d.sink.Reset()
	program, ok := d.parse(line)
	if ok {
		depths := resolver.Resolve(program, d.sink)
		if !d.sink.HadError() {
			d.interp.Interpret(program, depths)
			return
		}
	}

	original := d.sink.Diagnostics()

	d.sink.Reset()
	retryProgram, retryOK := d.parse("print " + line + ";")
	if retryOK {
		depths := resolver.Resolve(retryProgram, d.sink)
		if !d.sink.HadError() {
			d.interp.Interpret(retryProgram, depths)
			if !d.sink.HadError() {
				return
			}
		}
	}

	// Retry also failed (or re-failed at resolve/interpret time): report
	// the original diagnostics, not the retry's.
	d.sink.Reset()
	for _, diag := range original {
		replay(d.sink, diag)
	}
}

func replay(sink *diagnostics.Sink, d diagnostics.Diagnostic) {
	switch d.Kind {
	case diagnostics.KindWarning:
		sink.Warning(d.Line, "%s", d.Message)
	case diagnostics.KindRuntime:
		sink.Runtime(d.Line, d.Message, d.Stack)
	default:
		sink.Error(d.Line, "%s", d.Message)
	}
}

func trimRight(s string) string {
	i := len(s)
	for i > 0 && (s[i-1] == ' ' || s[i-1] == '\t' || s[i-1] == '\n' || s[i-1] == '\r') {
		i--
	}
	return s[:i]
}

// WriteDiagnostics flushes the sink's accumulated diagnostics to w,
// colored if useColor is set.
func (d *Driver) WriteDiagnostics(w io.Writer, useColor bool) {
	io.WriteString(w, d.sink.Format(useColor))
}
