// Package interp implements the tree-walking evaluator: the Environment
// chain, the Value model (nil/bool/float64/string/callable/instance), the
// class/instance object model, and the Interpreter that walks an
// *ast.Program produced by the parser and annotated by the resolver.
package interp

import (
	"fmt"
	"math"
	"strconv"
)

// Value is the tagged union described in spec §3: nil, bool, float64,
// string, a Callable, or an *Instance. Go's interface{} already is that
// union; concrete types below enumerate the tags the evaluator produces.
type Value = interface{}

// Callable is satisfied by user functions, native functions, and classes
// (construction is a call). Arity reports the required argument count.
type Callable interface {
	Arity() int
	Call(i *Interpreter, args []Value) Value
	String() string
}

// Truthy implements spec §4.5: nil is false, booleans are themselves,
// everything else (including 0, "", and NaN) is true.
func Truthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// Equal implements spec §4.5 equality: nil==nil is true, callables and
// instances compare by identity, primitives by value, and there is no
// implicit conversion between tags.
func Equal(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return a == b
	}
}

// Stringify renders v per spec §6: nil → "nil", +Inf → "inf", numbers and
// booleans use the host's default decimal form, strings are themselves,
// classes render as "<class NAME>", instances as "NAME { field: value,
// ... }", and callables render via their own String().
func Stringify(v Value) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case bool:
		if x {
			return "true"
		}
		return "false"
	case float64:
		return stringifyNumber(x)
	case string:
		return x
	case *Instance:
		return x.String()
	case Callable:
		return x.String()
	default:
		return fmt.Sprintf("%v", x)
	}
}

func stringifyNumber(n float64) string {
	if math.IsInf(n, 1) {
		return "inf"
	}
	if math.IsInf(n, -1) {
		return "-inf"
	}
	if math.IsNaN(n) {
		return "nan"
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// TypeTag implements the `type(v)` built-in's result per spec §6.
func TypeTag(v Value) string {
	switch v.(type) {
	case nil:
		return "nil"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case *Class:
		return "class"
	case *Instance:
		return "object"
	case Callable:
		return "func"
	default:
		return "unknown"
	}
}
