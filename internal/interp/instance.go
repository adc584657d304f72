package interp

import (
	"github.com/loxlang/golox/internal/errors"
	"github.com/loxlang/golox/internal/lexer"
)

// Instance is a reference to its class plus a mutable field-name -> Value
// mapping. Fields shadow methods for reads.
type Instance struct {
	Class  *ClassValue
	Fields map[string]Value
}

func (*Instance) Type() string { return "INSTANCE" }
func (inst *Instance) String() string {
	return inst.Class.Name + " instance"
}

// Get looks up a field first, then a bound method on the class chain.
func (inst *Instance) Get(name lexer.Token) (Value, error) {
	if v, ok := inst.Fields[name.Lexeme]; ok {
		return v, nil
	}
	if method := inst.Class.FindMethod(name.Lexeme); method != nil {
		return method.Bind(inst), nil
	}
	return nil, errors.NewRuntimeError(name.Line, "Undefined property '%s'.", name.Lexeme)
}

// Set writes a field, creating it if absent.
func (inst *Instance) Set(name lexer.Token, value Value) {
	inst.Fields[name.Lexeme] = value
}
