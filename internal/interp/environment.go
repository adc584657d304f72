package interp

import "github.com/loxlang/golox/internal/errors"

// Environment is a spaghetti-stack scope: a name->Value map plus an optional
// parent. Distance-indexed access (GetAt/AssignAt) skips exactly N parent
// links and never falls back to a by-name search — every resolved variable
// uses it so lookup stays O(1) in lexical depth.
type Environment struct {
	values    map[string]Value
	enclosing *Environment
}

// NewEnvironment creates a root environment with no enclosing scope.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Value)}
}

// NewEnclosedEnvironment creates a child scope of enclosing.
func NewEnclosedEnvironment(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]Value), enclosing: enclosing}
}

// Define creates or overwrites a binding in this environment's own scope.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get looks a name up, falling back through enclosing scopes. Used only for
// globals, which the resolver does not annotate with a depth.
func (e *Environment) Get(name string, line int) (Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name, line)
	}
	return nil, errors.NewRuntimeError(line, "Undefined variable '%s'.", name)
}

// Assign mutates an existing binding, falling back through enclosing scopes.
// It never creates a new binding — use Define for declarations.
func (e *Environment) Assign(name string, value Value, line int) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value, line)
	}
	return errors.NewRuntimeError(line, "Undefined variable '%s'.", name)
}

// ancestor walks exactly distance parent links up the chain.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt reads a binding exactly distance scopes up, as computed by the
// resolver. It does not fall back further if the name is somehow absent —
// that would indicate a resolver bug, not a user error.
func (e *Environment) GetAt(distance int, name string) Value {
	return e.ancestor(distance).values[name]
}

// AssignAt mutates a binding exactly distance scopes up.
func (e *Environment) AssignAt(distance int, name string, value Value) {
	e.ancestor(distance).values[name] = value
}
