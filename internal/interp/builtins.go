package interp

import "time"

// installBuiltins registers the three built-in globals required by spec
// §6: type, time, str. Embedders add more through pkg/lox's
// RegisterFunction/RegisterClass, which write into the same globals frame.
func installBuiltins(i *Interpreter) {
	i.globals.Define("type", &NativeFunction{Name: "type", Ar: 1, Fn: func(_ *Interpreter, args []Value) Value {
		return TypeTag(args[0])
	}})
	i.globals.Define("time", &NativeFunction{Name: "time", Ar: 0, Fn: func(_ *Interpreter, _ []Value) Value {
		return float64(time.Now().UnixMilli())
	}})
	i.globals.Define("str", &NativeFunction{Name: "str", Ar: 1, Fn: func(_ *Interpreter, args []Value) Value {
		return Stringify(args[0])
	}})
}
