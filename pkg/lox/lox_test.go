package lox

import (
	"bytes"
	"testing"

	"github.com/golox/golox/internal/interp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSourcePrintsToConfiguredStdout(t *testing.T) {
	var out bytes.Buffer
	l := New(WithStdout(&out))

	err := l.RunSource(`print 1 + 1;`, "<test>")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out.String())
}

func TestRunSourceReturnsDiagnosticErrorOnParseFailure(t *testing.T) {
	l := New()
	err := l.RunSource(`var = ;`, "<test>")
	require.Error(t, err)
	var diagErr *DiagnosticError
	require.ErrorAs(t, err, &diagErr)
	assert.NotEmpty(t, diagErr.Diagnostics)
}

func TestRegisterFunctionIsCallableFromSource(t *testing.T) {
	var out bytes.Buffer
	l := New(WithStdout(&out))

	l.RegisterFunction("double", 1, func(args []interp.Value) interp.Value {
		return args[0].(float64) * 2
	})

	err := l.RunSource(`print double(21);`, "<test>")
	require.NoError(t, err)
	assert.Equal(t, "42\n", out.String())
}

func TestRegisterClassSupportsInitAndMethods(t *testing.T) {
	var out bytes.Buffer
	l := New(WithStdout(&out))

	l.RegisterClass("Point", NativeClassSpec{
		Init: &NativeMethod{
			Arity: 2,
			Fn: func(instance *interp.Instance, args []interp.Value) interp.Value {
				instance.SetProperty("x", args[0])
				instance.SetProperty("y", args[1])
				return nil
			},
		},
		Methods: map[string]NativeMethod{
			"sum": {
				Arity: 0,
				Fn: func(instance *interp.Instance, _ []interp.Value) interp.Value {
					x, _ := instance.GetProperty(nil, "x")
					y, _ := instance.GetProperty(nil, "y")
					return x.(float64) + y.(float64)
				},
			},
		},
	})

	err := l.RunSource(`var p = Point(3, 4); print p.sum();`, "<test>")
	require.NoError(t, err)
	assert.Equal(t, "7\n", out.String())
}

func TestRegisterClassGetterIsAccessedWithoutCallSyntax(t *testing.T) {
	var out bytes.Buffer
	l := New(WithStdout(&out))

	l.RegisterClass("Answer", NativeClassSpec{
		Methods: map[string]NativeMethod{
			"value": {
				Arity:    0,
				IsGetter: true,
				Fn: func(_ *interp.Instance, _ []interp.Value) interp.Value {
					return float64(42)
				},
			},
		},
	})

	err := l.RunSource(`print Answer().value;`, "<test>")
	require.NoError(t, err)
	assert.Equal(t, "42\n", out.String())
}

func TestGlobalsExposesInterpreterEnvironment(t *testing.T) {
	l := New()
	l.Globals().Define("fromHost", float64(99))

	var out bytes.Buffer
	l.driver.Interpreter().SetStdout(&out)
	err := l.RunSource(`print fromHost;`, "<test>")
	require.NoError(t, err)
	assert.Equal(t, "99\n", out.String())
}
