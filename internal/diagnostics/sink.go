// Package diagnostics provides the accumulating error/warning sink shared by
// every pipeline stage, grounded on the teacher project's
// internal/errors.CompilerError formatting.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Kind distinguishes the three diagnostic categories the spec's format
// rules (§6) give separate renderings to.
type Kind int

const (
	// KindError is a lex/parse/resolve-time error; it sets HadError.
	KindError Kind = iota
	// KindWarning is non-fatal (e.g. an unused local variable).
	KindWarning
	// KindRuntime is an evaluator-time error, reported with a short stack.
	KindRuntime
)

// Diagnostic is one accumulated message.
type Diagnostic struct {
	Kind    Kind
	Line    int
	Message string
	// Stack holds up to three call-frame descriptions for KindRuntime
	// diagnostics; nil otherwise.
	Stack []string
}

// Sink accumulates diagnostics for one pipeline run (one file, or one REPL
// chunk) and tracks whether any error-level diagnostic was recorded.
type Sink struct {
	diagnostics []Diagnostic
	hadError    bool
}

// New creates an empty Sink.
func New() *Sink {
	return &Sink{}
}

// Error records a compile-time error at line and sets HadError.
func (s *Sink) Error(line int, format string, args ...interface{}) {
	s.diagnostics = append(s.diagnostics, Diagnostic{
		Kind:    KindError,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	})
	s.hadError = true
}

// Warning records a non-fatal diagnostic; it does not set HadError.
func (s *Sink) Warning(line int, format string, args ...interface{}) {
	s.diagnostics = append(s.diagnostics, Diagnostic{
		Kind:    KindWarning,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	})
}

// Runtime records a runtime error with an optional call stack (top three
// frames are kept; see Format) and sets HadError.
func (s *Sink) Runtime(line int, message string, stack []string) {
	if len(stack) > 3 {
		stack = stack[:3]
	}
	s.diagnostics = append(s.diagnostics, Diagnostic{
		Kind:    KindRuntime,
		Line:    line,
		Message: message,
		Stack:   stack,
	})
	s.hadError = true
}

// HadError reports whether any Error or Runtime diagnostic was recorded
// since the sink was created or last Reset.
func (s *Sink) HadError() bool {
	return s.hadError
}

// Diagnostics returns every diagnostic recorded so far, in order.
func (s *Sink) Diagnostics() []Diagnostic {
	return s.diagnostics
}

// Reset clears all accumulated diagnostics. The driver calls this at the
// start of each Run and RunREPLChunk call, and between the attempts of the
// REPL retry-as-print fallback (§4.6).
func (s *Sink) Reset() {
	s.diagnostics = nil
	s.hadError = false
}

// Format renders every accumulated diagnostic per §6: errors and runtime
// errors as "[line N]: <message>" (or "[line N] <stack>" when a stack is
// present), warnings as "[line N] Warning: <message>". When color is true,
// errors are rendered in red and warnings in yellow.
func (s *Sink) Format(useColor bool) string {
	var b strings.Builder
	for _, d := range s.diagnostics {
		b.WriteString(formatOne(d, useColor))
		b.WriteByte('\n')
	}
	return b.String()
}

func formatOne(d Diagnostic, useColor bool) string {
	var text string
	switch d.Kind {
	case KindWarning:
		text = fmt.Sprintf("[line %d] Warning: %s", d.Line, d.Message)
		if useColor {
			return color.YellowString(text)
		}
		return text
	case KindRuntime:
		if len(d.Stack) > 0 {
			text = fmt.Sprintf("[line %d] %s", d.Line, strings.Join(d.Stack, " -> "))
		} else {
			text = fmt.Sprintf("[line %d]: %s", d.Line, d.Message)
		}
	default:
		text = fmt.Sprintf("[line %d]: %s", d.Line, d.Message)
	}
	if useColor {
		return color.RedString(text)
	}
	return text
}
