package parser

import (
	"testing"

	"github.com/golox/golox/internal/ast"
	"github.com/golox/golox/internal/diagnostics"
	"github.com/golox/golox/internal/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, source string) (*ast.Program, *diagnostics.Sink) {
	t.Helper()
	lx := lexer.New(source)
	tokens := lx.ScanTokens()
	require.Empty(t, lx.Errors())

	sink := diagnostics.New()
	p := New(tokens, sink)
	return p.ParseProgram(), sink
}

func TestParsePrecedenceAndAssociativity(t *testing.T) {
	program, sink := parse(t, `1 + 2 * 3;`)
	require.False(t, sink.HadError())
	require.Len(t, program.Statements, 1)

	stmt := program.Statements[0].(*ast.ExpressionStmt)
	bin := stmt.Expression.(*ast.Binary)
	assert.Equal(t, "+", bin.Operator.Lexeme)
	// "* 3" binds tighter, so it's the right operand of "+".
	_, ok := bin.Right.(*ast.Binary)
	assert.True(t, ok)
}

func TestParsePowerIsRightAssociative(t *testing.T) {
	program, sink := parse(t, `2 ** 3 ** 2;`)
	require.False(t, sink.HadError())

	stmt := program.Statements[0].(*ast.ExpressionStmt)
	outer := stmt.Expression.(*ast.Binary)
	assert.Equal(t, "**", outer.Operator.Lexeme)
	_, leftIsLiteral := outer.Left.(*ast.Literal)
	assert.True(t, leftIsLiteral, "2 ** 3 ** 2 should parse as 2 ** (3 ** 2)")
	_, rightIsBinary := outer.Right.(*ast.Binary)
	assert.True(t, rightIsBinary)
}

func TestParseAssignmentToNonVariableIsAnError(t *testing.T) {
	_, sink := parse(t, `1 = 2;`)
	assert.True(t, sink.HadError())
}

func TestParseGetterHasNilParams(t *testing.T) {
	program, sink := parse(t, `
		class Circle {
			area {
				return 0;
			}
		}
	`)
	require.False(t, sink.HadError())
	class := program.Statements[0].(*ast.ClassStmt)
	require.Len(t, class.Methods, 1)
	assert.Nil(t, class.Methods[0].Function.Params)
}

func TestParseZeroArgMethodHasEmptyNonNilParams(t *testing.T) {
	program, sink := parse(t, `
		class Greeter {
			hello() {
				return "hi";
			}
		}
	`)
	require.False(t, sink.HadError())
	class := program.Statements[0].(*ast.ClassStmt)
	require.Len(t, class.Methods, 1)
	assert.NotNil(t, class.Methods[0].Function.Params)
	assert.Len(t, class.Methods[0].Function.Params, 0)
}

func TestParseStaticMethodGoesToStaticMethodsList(t *testing.T) {
	program, sink := parse(t, `
		class Counter {
			static make() {
				return 1;
			}
		}
	`)
	require.False(t, sink.HadError())
	class := program.Statements[0].(*ast.ClassStmt)
	assert.Len(t, class.Methods, 0)
	assert.Len(t, class.StaticMethods, 1)
}

func TestParseSuperclassClause(t *testing.T) {
	program, sink := parse(t, `class B < A {}`)
	require.False(t, sink.HadError())
	class := program.Statements[0].(*ast.ClassStmt)
	require.NotNil(t, class.Superclass)
	assert.Equal(t, "A", class.Superclass.Name.Lexeme)
}

func TestParseForLoopDesugarsToLoopStmt(t *testing.T) {
	program, sink := parse(t, `for (var i = 0; i < 10; i = i + 1) print i;`)
	require.False(t, sink.HadError())
	loop := program.Statements[0].(*ast.LoopStmt)
	assert.NotNil(t, loop.Init)
	assert.NotNil(t, loop.Condition)
	assert.NotNil(t, loop.Update)
}

func TestParseWhileLoopHasNilInitAndUpdate(t *testing.T) {
	program, sink := parse(t, `while (true) print 1;`)
	require.False(t, sink.HadError())
	loop := program.Statements[0].(*ast.LoopStmt)
	assert.Nil(t, loop.Init)
	assert.Nil(t, loop.Update)
	assert.NotNil(t, loop.Condition)
}

func TestParseCommaOperator(t *testing.T) {
	program, sink := parse(t, `(1, 2, 3);`)
	require.False(t, sink.HadError())
	stmt := program.Statements[0].(*ast.ExpressionStmt)
	group := stmt.Expression.(*ast.Grouping)
	comma := group.Inner.(*ast.Comma)
	assert.Len(t, comma.Expressions, 3)
}

func TestParseDeleteRequiresFieldAccess(t *testing.T) {
	_, sink := parse(t, `delete 1;`)
	assert.True(t, sink.HadError())
}

func TestParseDeleteOnFieldAccessSucceeds(t *testing.T) {
	program, sink := parse(t, `delete o.field;`)
	require.False(t, sink.HadError())
	stmt := program.Statements[0].(*ast.ExpressionStmt)
	del := stmt.Expression.(*ast.Delete)
	assert.Equal(t, "field", del.Name.Lexeme)
}

func TestParseTooManyArgumentsIsDiagnosedButStillParses(t *testing.T) {
	args := make([]string, 256)
	for i := range args {
		args[i] = "1"
	}
	source := "f(" + join(args, ",") + ");"
	program, sink := parse(t, source)
	assert.True(t, sink.HadError())
	assert.Len(t, program.Statements, 1)
}

func TestParseErrorRecoverySynchronizesAtNextStatement(t *testing.T) {
	program, sink := parse(t, `
		var = ;
		print "still parses";
	`)
	assert.True(t, sink.HadError())
	// The malformed declaration is dropped, but the next statement recovers.
	require.Len(t, program.Statements, 1)
	_, ok := program.Statements[0].(*ast.PrintStmt)
	assert.True(t, ok)
}

func join(parts []string, sep string) string {
	out := parts[0]
	for _, p := range parts[1:] {
		out += sep + p
	}
	return out
}
