package interp

import (
	"fmt"
	"io"

	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/errors"
	"github.com/loxlang/golox/internal/lexer"
	"github.com/loxlang/golox/internal/resolver"
)

// returnSignal carries a `return` statement's value up through
// executeBlock/execStmt's ordinary error channel. Function.Call is the only
// place that unwraps it; anywhere else it is a bug, not a user error.
type returnSignal struct {
	Value Value
}

func (*returnSignal) Error() string { return "return outside of a function" }

// Interpreter walks a resolved program. It threads the active *Environment
// explicitly through every call rather than mutating a "current environment"
// field on itself, so a callee can never leak its scope back to the caller.
type Interpreter struct {
	Globals *Environment
	locals  resolver.Locals
	out     io.Writer
}

// New creates an Interpreter with empty globals. Callers install built-ins
// (internal/builtins) before running any program.
func New(out io.Writer, locals resolver.Locals) *Interpreter {
	return &Interpreter{Globals: NewEnvironment(), locals: locals, out: out}
}

// MergeLocals adds another resolver pass's depth annotations to this
// interpreter's sidecar map. Safe to call repeatedly: every resolver.Locals
// is keyed by ast.Expr pointer identity, so entries from separate parses
// (e.g. separate REPL lines) never collide.
func (i *Interpreter) MergeLocals(locals resolver.Locals) {
	for expr, distance := range locals {
		i.locals[expr] = distance
	}
}

// EvalExpr evaluates a single expression against Globals. Used by the REPL's
// expression-first mode, which wants a value to print rather than a
// discarded ExpressionStmt result.
func (i *Interpreter) EvalExpr(expr ast.Expr) (Value, error) {
	return i.evalExpr(expr, i.Globals)
}

// Interpret runs every top-level statement against Globals, stopping at the
// first runtime error.
func (i *Interpreter) Interpret(program *ast.Program) error {
	return i.executeBlock(program.Statements, i.Globals)
}

func (i *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	for _, s := range stmts {
		if err := i.execStmt(s, env); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) execStmt(stmt ast.Stmt, env *Environment) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := i.evalExpr(s.Expression, env)
		return err

	case *ast.PrintStmt:
		v, err := i.evalExpr(s.Expression, env)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.out, v.String())
		return nil

	case *ast.VarStmt:
		var value Value = NilValue{}
		if s.Initializer != nil {
			v, err := i.evalExpr(s.Initializer, env)
			if err != nil {
				return err
			}
			value = v
		}
		env.Define(s.Name.Lexeme, value)
		return nil

	case *ast.Block:
		return i.executeBlock(s.Statements, NewEnclosedEnvironment(env))

	case *ast.IfStmt:
		cond, err := i.evalExpr(s.Condition, env)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return i.execStmt(s.ThenBranch, env)
		}
		if s.ElseBranch != nil {
			return i.execStmt(s.ElseBranch, env)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := i.evalExpr(s.Condition, env)
			if err != nil {
				return err
			}
			if !isTruthy(cond) {
				return nil
			}
			if err := i.execStmt(s.Body, env); err != nil {
				return err
			}
		}

	case *ast.FunctionDecl:
		fn := &Function{Declaration: s, Closure: env, IsInitializer: s.IsInitializer}
		env.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.ReturnStmt:
		var value Value = NilValue{}
		if s.Value != nil {
			v, err := i.evalExpr(s.Value, env)
			if err != nil {
				return err
			}
			value = v
		}
		return &returnSignal{Value: value}

	case *ast.ClassDecl:
		return i.execClassDecl(s, env)
	}
	return nil
}

func (i *Interpreter) execClassDecl(decl *ast.ClassDecl, env *Environment) error {
	var superclass *ClassValue
	if decl.Superclass != nil {
		v, err := i.evalExpr(decl.Superclass, env)
		if err != nil {
			return err
		}
		sc, ok := v.(*ClassValue)
		if !ok {
			return errors.NewRuntimeError(decl.Superclass.Name.Line, "Superclass must be a class.")
		}
		superclass = sc
	}

	// Defined before the body is built so methods can refer to the class by
	// name.
	env.Define(decl.Name.Lexeme, NilValue{})

	methodEnv := env
	if superclass != nil {
		methodEnv = NewEnclosedEnvironment(env)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(decl.Methods))
	for _, m := range decl.Methods {
		methods[m.Name.Lexeme] = &Function{Declaration: m, Closure: methodEnv, IsInitializer: m.IsInitializer}
	}

	class := &ClassValue{Name: decl.Name.Lexeme, Superclass: superclass, Methods: methods}
	return env.Assign(decl.Name.Lexeme, class, decl.Name.Line)
}

func (i *Interpreter) evalExpr(expr ast.Expr, env *Environment) (Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e.Value), nil

	case *ast.Grouping:
		return i.evalExpr(e.Expression, env)

	case *ast.Unary:
		right, err := i.evalExpr(e.Right, env)
		if err != nil {
			return nil, err
		}
		switch e.Operator.Type {
		case lexer.MINUS:
			n, ok := right.(NumberValue)
			if !ok {
				return nil, errors.NewRuntimeError(e.Operator.Line, "Operand must be a number.")
			}
			return NumberValue{Value: -n.Value}, nil
		case lexer.BANG:
			return BooleanValue{Value: !isTruthy(right)}, nil
		}

	case *ast.Binary:
		return i.evalBinary(e, env)

	case *ast.Logical:
		left, err := i.evalExpr(e.Left, env)
		if err != nil {
			return nil, err
		}
		if e.Operator.Type == lexer.OR {
			if isTruthy(left) {
				return left, nil
			}
		} else {
			if !isTruthy(left) {
				return left, nil
			}
		}
		return i.evalExpr(e.Right, env)

	case *ast.Variable:
		return i.lookupVariable(e, e.Name, env)

	case *ast.This:
		return i.lookupVariable(e, e.Keyword, env)

	case *ast.Assign:
		value, err := i.evalExpr(e.Value, env)
		if err != nil {
			return nil, err
		}
		if distance, ok := i.locals[e]; ok {
			env.AssignAt(distance, e.Name.Lexeme, value)
		} else if err := i.Globals.Assign(e.Name.Lexeme, value, e.Name.Line); err != nil {
			return nil, err
		}
		return value, nil

	case *ast.Call:
		return i.evalCall(e, env)

	case *ast.Get:
		obj, err := i.evalExpr(e.Object, env)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*Instance)
		if !ok {
			return nil, errors.NewRuntimeError(e.Name.Line, "Only instances have properties.")
		}
		return inst.Get(e.Name)

	case *ast.Set:
		obj, err := i.evalExpr(e.Object, env)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*Instance)
		if !ok {
			return nil, errors.NewRuntimeError(e.Name.Line, "Only instances have fields.")
		}
		value, err := i.evalExpr(e.Value, env)
		if err != nil {
			return nil, err
		}
		inst.Set(e.Name, value)
		return value, nil

	case *ast.Super:
		return i.evalSuper(e, env)
	}
	return NilValue{}, nil
}

func literalValue(v interface{}) Value {
	switch lv := v.(type) {
	case nil:
		return NilValue{}
	case bool:
		return BooleanValue{Value: lv}
	case float64:
		return NumberValue{Value: lv}
	case string:
		return StringValue{Value: lv}
	default:
		return NilValue{}
	}
}

func (i *Interpreter) lookupVariable(expr ast.Expr, name lexer.Token, env *Environment) (Value, error) {
	if distance, ok := i.locals[expr]; ok {
		return env.GetAt(distance, name.Lexeme), nil
	}
	return i.Globals.Get(name.Lexeme, name.Line)
}

func (i *Interpreter) evalBinary(e *ast.Binary, env *Environment) (Value, error) {
	left, err := i.evalExpr(e.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := i.evalExpr(e.Right, env)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.PLUS:
		if ln, ok := left.(NumberValue); ok {
			if rn, ok := right.(NumberValue); ok {
				return NumberValue{Value: ln.Value + rn.Value}, nil
			}
		}
		if ls, ok := left.(StringValue); ok {
			if rs, ok := right.(StringValue); ok {
				return StringValue{Value: ls.Value + rs.Value}, nil
			}
		}
		return nil, errors.NewRuntimeError(e.Operator.Line, "Operands must be two numbers or two strings.")

	case lexer.MINUS:
		ln, rn, err := bothNumbers(left, right, e.Operator.Line)
		if err != nil {
			return nil, err
		}
		return NumberValue{Value: ln - rn}, nil

	case lexer.STAR:
		ln, rn, err := bothNumbers(left, right, e.Operator.Line)
		if err != nil {
			return nil, err
		}
		return NumberValue{Value: ln * rn}, nil

	case lexer.SLASH:
		ln, rn, err := bothNumbers(left, right, e.Operator.Line)
		if err != nil {
			return nil, err
		}
		if rn == 0.0 {
			return nil, errors.NewRuntimeError(e.Operator.Line, "Zero division error.")
		}
		return NumberValue{Value: ln / rn}, nil

	case lexer.GREATER:
		ln, rn, err := bothNumbers(left, right, e.Operator.Line)
		if err != nil {
			return nil, err
		}
		return BooleanValue{Value: ln > rn}, nil

	case lexer.GREATER_EQUAL:
		ln, rn, err := bothNumbers(left, right, e.Operator.Line)
		if err != nil {
			return nil, err
		}
		return BooleanValue{Value: ln >= rn}, nil

	case lexer.LESS:
		ln, rn, err := bothNumbers(left, right, e.Operator.Line)
		if err != nil {
			return nil, err
		}
		return BooleanValue{Value: ln < rn}, nil

	case lexer.LESS_EQUAL:
		ln, rn, err := bothNumbers(left, right, e.Operator.Line)
		if err != nil {
			return nil, err
		}
		return BooleanValue{Value: ln <= rn}, nil

	case lexer.EQUAL_EQUAL:
		return BooleanValue{Value: valuesEqual(left, right)}, nil

	case lexer.BANG_EQUAL:
		return BooleanValue{Value: !valuesEqual(left, right)}, nil
	}

	return nil, errors.NewRuntimeError(e.Operator.Line, "Unknown operator '%s'.", e.Operator.Lexeme)
}

func bothNumbers(left, right Value, line int) (float64, float64, error) {
	ln, ok := left.(NumberValue)
	if !ok {
		return 0, 0, errors.NewRuntimeError(line, "Operands must be numbers.")
	}
	rn, ok := right.(NumberValue)
	if !ok {
		return 0, 0, errors.NewRuntimeError(line, "Operands must be numbers.")
	}
	return ln.Value, rn.Value, nil
}

func (i *Interpreter) evalCall(e *ast.Call, env *Environment) (Value, error) {
	callee, err := i.evalExpr(e.Callee, env)
	if err != nil {
		return nil, err
	}

	arguments := make([]Value, len(e.Arguments))
	for idx, a := range e.Arguments {
		v, err := i.evalExpr(a, env)
		if err != nil {
			return nil, err
		}
		arguments[idx] = v
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, errors.NewRuntimeError(e.Paren.Line, "Can only call functions and classes.")
	}
	if len(arguments) != callable.Arity() {
		return nil, errors.NewRuntimeError(e.Paren.Line, "Expected %d arguments but got %d.", callable.Arity(), len(arguments))
	}
	return callable.Call(i, arguments)
}

func (i *Interpreter) evalSuper(e *ast.Super, env *Environment) (Value, error) {
	distance := i.locals[e]
	superclass := env.GetAt(distance, "super").(*ClassValue)
	instance := env.GetAt(distance-1, "this").(*Instance)

	method := superclass.FindMethod(e.Method.Lexeme)
	if method == nil {
		return nil, errors.NewRuntimeError(e.Method.Line, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.Bind(instance), nil
}
