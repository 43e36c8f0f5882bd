package interp

import (
	"bytes"
	"testing"

	"github.com/golox/golox/internal/diagnostics"
	"github.com/golox/golox/internal/lexer"
	"github.com/golox/golox/internal/parser"
	"github.com/golox/golox/internal/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run lexes, parses, resolves, and interprets source, returning its
// captured stdout and the diagnostics sink for assertions.
func run(t *testing.T, source string) (string, *diagnostics.Sink) {
	t.Helper()
	sink := diagnostics.New()

	lx := lexer.New(source)
	tokens := lx.ScanTokens()
	require.Empty(t, lx.Errors())

	p := parser.New(tokens, sink)
	program := p.ParseProgram()
	require.False(t, sink.HadError(), "parse errors: %v", sink.Diagnostics())

	depths := resolver.Resolve(program, sink)
	require.False(t, sink.HadError(), "resolve errors: %v", sink.Diagnostics())

	var out bytes.Buffer
	i := New(sink)
	i.SetStdout(&out)
	i.Interpret(program, depths)
	return out.String(), sink
}

func TestInterpretArithmeticAndPrint(t *testing.T) {
	out, sink := run(t, `print 1 + 2 * 3;`)
	assert.False(t, sink.HadError())
	assert.Equal(t, "7\n", out)
}

func TestInterpretStringConcatenation(t *testing.T) {
	out, _ := run(t, `print "foo" + "bar";`)
	assert.Equal(t, "foobar\n", out)
}

func TestInterpretModuloAndPower(t *testing.T) {
	out, _ := run(t, `
		print 7 % 3;
		print 2 ** 10;
	`)
	assert.Equal(t, "1\n1024\n", out)
}

func TestInterpretClosureCapturesByReference(t *testing.T) {
	out, _ := run(t, `
		fun makeCounter() {
			var count = 0;
			fun counter() {
				count = count + 1;
				return count;
			}
			return counter;
		}
		var c = makeCounter();
		print c();
		print c();
		print c();
	`)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestInterpretClosuresAreIndependentPerCall(t *testing.T) {
	out, _ := run(t, `
		fun makeCounter() {
			var count = 0;
			fun counter() {
				count = count + 1;
				return count;
			}
			return counter;
		}
		var a = makeCounter();
		var b = makeCounter();
		print a();
		print a();
		print b();
	`)
	assert.Equal(t, "1\n2\n1\n", out)
}

func TestInterpretForLoopWithContinueStillRunsUpdate(t *testing.T) {
	out, _ := run(t, `
		var sum = 0;
		for (var i = 0; i < 5; i = i + 1) {
			if (i == 2) continue;
			sum = sum + i;
		}
		print sum;
	`)
	assert.Equal(t, "8\n", out) // 0+1+3+4, skipping 2
}

func TestInterpretBreakExitsLoop(t *testing.T) {
	out, _ := run(t, `
		var i = 0;
		while (true) {
			if (i == 3) break;
			print i;
			i = i + 1;
		}
	`)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterpretGetterInvokesWithoutCallSyntax(t *testing.T) {
	out, _ := run(t, `
		class Circle {
			init(radius) {
				this.radius = radius;
			}
			area {
				return 3.14 * this.radius * this.radius;
			}
		}
		var c = Circle(2);
		print c.area;
	`)
	assert.Equal(t, "12.56\n", out)
}

func TestInterpretExplicitZeroArgMethodRequiresCall(t *testing.T) {
	out, _ := run(t, `
		class Greeter {
			hello() {
				return "hi";
			}
		}
		var g = Greeter();
		print g.hello();
	`)
	assert.Equal(t, "hi\n", out)
}

func TestInterpretSuperDispatchAcrossMethods(t *testing.T) {
	out, _ := run(t, `
		class Animal {
			speak() {
				return "...";
			}
		}
		class Dog < Animal {
			speak() {
				return super.speak() + " woof";
			}
		}
		print Dog().speak();
	`)
	assert.Equal(t, "... woof\n", out)
}

func TestInterpretSuperDispatchFromStaticMethod(t *testing.T) {
	out, _ := run(t, `
		class Base {
			static tag() {
				return "base";
			}
		}
		class Derived < Base {
			static tag() {
				return super.tag() + "+derived";
			}
		}
		print Derived.tag();
	`)
	assert.Equal(t, "base+derived\n", out)
}

func TestInterpretDeleteReturnsWhetherFieldExisted(t *testing.T) {
	out, _ := run(t, `
		class Box {}
		var b = Box();
		b.value = 1;
		print delete b.value;
		print delete b.value;
	`)
	assert.Equal(t, "true\nfalse\n", out)
}

func TestInterpretStaticFieldWritesPersistOnClass(t *testing.T) {
	out, _ := run(t, `
		class Counter {
			static next() {
				return 1;
			}
		}
		Counter.count = Counter.next();
		Counter.count = Counter.count + Counter.next();
		print Counter.count;
	`)
	assert.Equal(t, "2\n", out)
}

func TestInterpretUndefinedVariableIsRuntimeError(t *testing.T) {
	out, sink := run(t, `print undefined_name;`)
	assert.Equal(t, "", out)
	assert.True(t, sink.HadError())
}

func TestInterpretCallingNonCallableIsRuntimeError(t *testing.T) {
	_, sink := run(t, `
		var x = 1;
		x();
	`)
	assert.True(t, sink.HadError())
}

// A declared-but-uninitialized local is valid Lox; reading it before an
// assignment is a runtime error, not a crash.
func TestInterpretReadingUninitializedLocalIsRuntimeError(t *testing.T) {
	out, sink := run(t, `
		{
			var x;
			print x;
		}
	`)
	assert.Equal(t, "", out)
	require.True(t, sink.HadError())
	diags := sink.Diagnostics()
	assert.Contains(t, diags[len(diags)-1].Message, "Uninitialized variable 'x'")
}

func TestInterpretCommaOperatorYieldsLastValue(t *testing.T) {
	out, _ := run(t, `print (1, 2, 3);`)
	assert.Equal(t, "3\n", out)
}

func TestInterpretNilIsFalsyEverythingElseTruthy(t *testing.T) {
	out, _ := run(t, `
		if (nil) print "bad"; else print "nil is falsy";
		if (0) print "zero is truthy";
		if ("") print "empty string is truthy";
	`)
	assert.Equal(t, "nil is falsy\nzero is truthy\nempty string is truthy\n", out)
}

func TestTypeTagBuiltin(t *testing.T) {
	out, _ := run(t, `
		print type(1);
		print type("s");
		print type(true);
		print type(nil);
	`)
	assert.Equal(t, "number\nstring\nboolean\nnil\n", out)
}
