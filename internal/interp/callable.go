package interp

// Callable is anything `(...)` can invoke: a user function, a native
// function, or a class (which constructs an instance).
type Callable interface {
	Value
	Arity() int
	Call(i *Interpreter, arguments []Value) (Value, error)
}

// NativeFunction is a built-in installed by the driver, e.g. clock().
type NativeFunction struct {
	Name string
	Fn   func(i *Interpreter, arguments []Value) (Value, error)
	Ar   int
}

func (*NativeFunction) Type() string   { return "NATIVE_FUNCTION" }
func (*NativeFunction) String() string { return "<native function>" }
func (n *NativeFunction) Arity() int   { return n.Ar }
func (n *NativeFunction) Call(i *Interpreter, arguments []Value) (Value, error) {
	return n.Fn(i, arguments)
}
