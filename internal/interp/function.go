package interp

import "github.com/loxlang/golox/internal/ast"

// Function is a user-defined Lang function or method value. It captures
// exactly one environment reference — the lexical environment active when
// its defining statement/expression executed.
type Function struct {
	Declaration   *ast.FunctionDecl
	Closure       *Environment
	IsInitializer bool
}

func (*Function) Type() string { return "FUNCTION" }

func (f *Function) String() string {
	return "<fn " + f.Declaration.Name.Lexeme + ">"
}

func (f *Function) Arity() int {
	return len(f.Declaration.Params)
}

// Bind returns a new Function whose closure is a fresh environment (parent =
// this function's original closure) defining `this` = instance. `this` is
// never bound anywhere else.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.Closure)
	env.Define("this", instance)
	return &Function{Declaration: f.Declaration, Closure: env, IsInitializer: f.IsInitializer}
}

// Call builds a fresh environment parented at the closure, binds parameters
// to arguments, and evaluates the body. Falling off the end yields nil and a
// `return` yields its value, unless the function is an initializer, in which
// case either yields the bound `this` at depth 0 of its closure.
func (f *Function) Call(i *Interpreter, arguments []Value) (Value, error) {
	env := NewEnclosedEnvironment(f.Closure)
	for idx, param := range f.Declaration.Params {
		env.Define(param.Lexeme, arguments[idx])
	}

	err := i.executeBlock(f.Declaration.Body, env)
	if err != nil {
		if sig, ok := err.(*returnSignal); ok {
			if f.IsInitializer {
				return f.Closure.GetAt(0, "this"), nil
			}
			return sig.Value, nil
		}
		return nil, err
	}

	if f.IsInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}
	return NilValue{}, nil
}
