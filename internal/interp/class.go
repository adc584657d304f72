package interp

// ClassValue is a class descriptor: a name, an optional superclass
// reference, and a method-name -> user-function mapping. Methods share the
// class's lifetime.
type ClassValue struct {
	Name       string
	Superclass *ClassValue
	Methods    map[string]*Function
}

func (*ClassValue) Type() string     { return "CLASS" }
func (c *ClassValue) String() string { return c.Name }

// FindMethod searches the current class first, then upward through
// superclasses.
func (c *ClassValue) FindMethod(name string) *Function {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

// Arity is the declared init method's arity, or 0 if the class has none
// on call.
func (c *ClassValue) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// Call allocates a fresh instance and, if the class defines init, binds and
// runs it with the provided arguments.
func (c *ClassValue) Call(i *Interpreter, arguments []Value) (Value, error) {
	instance := &Instance{Class: c, Fields: make(map[string]Value)}
	if init := c.FindMethod("init"); init != nil {
		if _, err := init.Bind(instance).Call(i, arguments); err != nil {
			return nil, err
		}
	}
	return instance, nil
}
