// Package lox is the embedding API described in spec §6: register native
// functions and classes, reach the globals frame directly, and run
// source/files through the same pipeline the CLI uses — grounded on the
// teacher's interp.Options functional-options pattern.
package lox

import (
	"io"

	"github.com/golox/golox/internal/diagnostics"
	"github.com/golox/golox/internal/driver"
	"github.com/golox/golox/internal/interp"
)

// NativeFunc is a host callable registered via RegisterFunction.
type NativeFunc func(args []interp.Value) interp.Value

// NativeMethod is one method of a native class, its body a Go closure
// receiving the bound instance and call arguments.
type NativeMethod struct {
	Fn       func(instance *interp.Instance, args []interp.Value) interp.Value
	Arity    int
	IsGetter bool
}

// NativeClassSpec describes a native class registered via RegisterClass:
// named methods (each tagged getter or not) plus an optional init.
type NativeClassSpec struct {
	Methods map[string]NativeMethod
	Init    *NativeMethod
}

// Lox is one embeddable interpreter instance.
type Lox struct {
	driver *driver.Driver
	sink   *diagnostics.Sink
}

type config struct {
	sink   *diagnostics.Sink
	stdout io.Writer
}

// Option configures a Lox instance at construction time.
type Option func(*config)

// WithStdout redirects the interpreter's `print` output.
func WithStdout(w io.Writer) Option {
	return func(c *config) { c.stdout = w }
}

// WithSink installs sink as the diagnostics accumulator instead of a
// fresh one, letting an embedder share a sink across instances.
func WithSink(sink *diagnostics.Sink) Option {
	return func(c *config) { c.sink = sink }
}

// New creates a Lox instance with its own diagnostics sink (unless
// overridden by WithSink) and pipeline driver.
func New(opts ...Option) *Lox {
	cfg := &config{sink: diagnostics.New()}
	for _, opt := range opts {
		opt(cfg)
	}

	l := &Lox{sink: cfg.sink, driver: driver.New(cfg.sink)}
	if cfg.stdout != nil {
		l.driver.Interpreter().SetStdout(cfg.stdout)
	}
	return l
}

// RegisterFunction installs a native function in globals under name.
func (l *Lox) RegisterFunction(name string, arity int, fn NativeFunc) {
	l.Globals().Define(name, &interp.NativeFunction{
		Name: name,
		Ar:   arity,
		Fn: func(_ *interp.Interpreter, args []interp.Value) interp.Value {
			return fn(args)
		},
	})
}

// RegisterClass installs a native class value in globals under name.
// Native methods implement interp.Method directly, so instances of a
// native class go through the same property-dispatch path
// (Instance.GetProperty) as a user-defined one.
func (l *Lox) RegisterClass(name string, spec NativeClassSpec) {
	methods := make(map[string]interp.Method, len(spec.Methods))
	for methodName, m := range spec.Methods {
		methods[methodName] = &interp.NativeMethod{
			Name:   methodName,
			Ar:     m.Arity,
			Getter: m.IsGetter,
			Fn:     interp.NativeMethodFunc(m.Fn),
		}
	}

	var init interp.Method
	if spec.Init != nil {
		init = &interp.NativeMethod{
			Name: "init",
			Ar:   spec.Init.Arity,
			Fn:   interp.NativeMethodFunc(spec.Init.Fn),
		}
	}

	class := &interp.Class{
		Name:         name,
		Methods:      methods,
		StaticFields: make(map[string]interp.Value),
		Init:         init,
	}
	l.Globals().Define(name, class)
}

// Globals exposes the global environment directly, per spec §6(c).
func (l *Lox) Globals() *interp.Environment {
	return l.driver.Interpreter().Globals()
}

// RunFile reads path and runs it as a single chunk.
func (l *Lox) RunFile(path string) error {
	if err := l.driver.RunFile(path); err != nil {
		return err
	}
	return l.errorFromSink()
}

// RunSource runs src as a single chunk. chunkName is accepted but not
// used: the diagnostic format (spec §6) carries only a line number, not a
// source name.
func (l *Lox) RunSource(src, chunkName string) error {
	_ = chunkName
	l.driver.Run(src)
	return l.errorFromSink()
}

func (l *Lox) errorFromSink() error {
	if !l.sink.HadError() {
		return nil
	}
	return &DiagnosticError{Diagnostics: l.sink.Diagnostics()}
}

// Diagnostics returns every diagnostic accumulated by the most recent
// RunFile/RunSource call.
func (l *Lox) Diagnostics() []diagnostics.Diagnostic {
	return l.sink.Diagnostics()
}

// DiagnosticError wraps accumulated diagnostics as a Go error for
// RunSource/RunFile callers that just want a pass/fail signal.
type DiagnosticError struct {
	Diagnostics []diagnostics.Diagnostic
}

func (e *DiagnosticError) Error() string {
	if len(e.Diagnostics) == 0 {
		return "lox: run failed"
	}
	return e.Diagnostics[0].Message
}
