// Package builtins installs the process-wide native functions a running
// program sees in its global scope.
package builtins

import (
	"time"

	"github.com/loxlang/golox/internal/interp"
)

// Install defines every native function into globals. Called once by the
// driver before a program's top-level statements run.
func Install(globals *interp.Environment) {
	globals.Define("clock", &interp.NativeFunction{
		Name: "clock",
		Ar:   0,
		Fn: func(i *interp.Interpreter, arguments []interp.Value) (interp.Value, error) {
			return interp.NumberValue{Value: float64(time.Now().UnixMilli())}, nil
		},
	})

	globals.Define("str", &interp.NativeFunction{
		Name: "str",
		Ar:   1,
		Fn: func(i *interp.Interpreter, arguments []interp.Value) (interp.Value, error) {
			return interp.StringValue{Value: arguments[0].String()}, nil
		},
	})
}
