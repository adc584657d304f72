package builtins

import (
	"testing"

	"github.com/loxlang/golox/internal/interp"
)

func TestClockIsArityZeroAndReturnsANumber(t *testing.T) {
	globals := interp.NewEnvironment()
	Install(globals)

	v, err := globals.Get("clock", 1)
	if err != nil {
		t.Fatalf("clock not installed: %v", err)
	}
	fn, ok := v.(*interp.NativeFunction)
	if !ok || fn.Arity() != 0 {
		t.Fatalf("clock is not an arity-0 native function: %#v", v)
	}
	result, err := fn.Call(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := result.(interp.NumberValue); !ok {
		t.Fatalf("clock() did not return a number: %#v", result)
	}
}

func TestStrRendersTheSameTextAsPrint(t *testing.T) {
	globals := interp.NewEnvironment()
	Install(globals)

	v, _ := globals.Get("str", 1)
	fn := v.(*interp.NativeFunction)
	if fn.Arity() != 1 {
		t.Fatalf("str should be arity 1")
	}
	result, err := fn.Call(nil, []interp.Value{interp.NumberValue{Value: 3.5}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sv, ok := result.(interp.StringValue)
	if !ok || sv.Value != "3.5" {
		t.Fatalf("got %#v", result)
	}
}
