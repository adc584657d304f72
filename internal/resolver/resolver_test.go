package resolver

import (
	"testing"

	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/lexer"
	"github.com/loxlang/golox/internal/parser"
)

func resolveSource(t *testing.T, source string) (*ast.Program, *Resolver, Locals) {
	t.Helper()
	tokens := lexer.New(source).ScanTokens()
	p := parser.New(tokens)
	program := p.Parse()
	if len(p.Errors()) > 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}
	r := New()
	locals := r.Resolve(program)
	return program, r, locals
}

func TestResolveLocalVariableGetsDistance(t *testing.T) {
	program, r, locals := resolveSource(t, `
		var a = "global";
		{
			var a = "block";
			print a;
		}
	`)
	if len(r.Errors()) > 0 {
		t.Fatalf("unexpected resolve errors: %v", r.Errors())
	}
	block := program.Statements[1].(*ast.Block)
	printStmt := block.Statements[1].(*ast.PrintStmt)
	variable := printStmt.Expression.(*ast.Variable)

	distance, ok := locals[variable]
	if !ok || distance != 0 {
		t.Fatalf("got distance %d, ok=%v, want 0, true", distance, ok)
	}
}

func TestGlobalReferenceHasNoLocalsEntry(t *testing.T) {
	program, r, locals := resolveSource(t, `
		var a = 1;
		print a;
	`)
	if len(r.Errors()) > 0 {
		t.Fatalf("unexpected resolve errors: %v", r.Errors())
	}
	printStmt := program.Statements[1].(*ast.PrintStmt)
	variable := printStmt.Expression.(*ast.Variable)
	if _, ok := locals[variable]; ok {
		t.Fatalf("global reference should not be recorded in locals")
	}
}

func TestSelfReferenceInOwnInitializerIsAnError(t *testing.T) {
	_, r, _ := resolveSource(t, `
		var a = 1;
		{
			var a = a;
		}
	`)
	if len(r.Errors()) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(r.Errors()), r.Errors())
	}
	if r.Errors()[0].Message != "Cannot read local variable in its own initializer." {
		t.Fatalf("got message %q", r.Errors()[0].Message)
	}
}

func TestReturnOutsideFunctionIsAnError(t *testing.T) {
	_, r, _ := resolveSource(t, `return 1;`)
	if len(r.Errors()) != 1 || r.Errors()[0].Message != "Can't return from top-level code." {
		t.Fatalf("got %v", r.Errors())
	}
}

func TestReturnValueFromInitializerIsAnError(t *testing.T) {
	_, r, _ := resolveSource(t, `
		class Foo {
			init() { return 1; }
		}
	`)
	if len(r.Errors()) != 1 || r.Errors()[0].Message != "Can't return a value from an initializer." {
		t.Fatalf("got %v", r.Errors())
	}
}

func TestThisOutsideClassIsAnError(t *testing.T) {
	_, r, _ := resolveSource(t, `print this;`)
	if len(r.Errors()) != 1 || r.Errors()[0].Message != "Can't use 'this' outside of a class." {
		t.Fatalf("got %v", r.Errors())
	}
}

func TestSuperWithoutSuperclassIsAnError(t *testing.T) {
	_, r, _ := resolveSource(t, `
		class Foo {
			bar() { return super.bar(); }
		}
	`)
	if len(r.Errors()) != 1 || r.Errors()[0].Message != "Can't use 'super' in a class with no superclass." {
		t.Fatalf("got %v", r.Errors())
	}
}

func TestClassCannotInheritFromItself(t *testing.T) {
	_, r, _ := resolveSource(t, `class Foo < Foo {}`)
	if len(r.Errors()) != 1 || r.Errors()[0].Message != "A class can't inherit from itself." {
		t.Fatalf("got %v", r.Errors())
	}
}

func TestRedeclarationInSameScopeIsAnError(t *testing.T) {
	_, r, _ := resolveSource(t, `
		{
			var a = 1;
			var a = 2;
		}
	`)
	if len(r.Errors()) != 1 || r.Errors()[0].Message != "Variable with this name already declared in scope." {
		t.Fatalf("got %v", r.Errors())
	}
}

// collectReferences walks every statement/expression in a program and
// returns each Variable/Assign/This/Super node it finds, in traversal order.
func collectReferences(program *ast.Program) []ast.Expr {
	var refs []ast.Expr
	var walkExpr func(ast.Expr)
	var walkStmt func(ast.Stmt)

	walkExpr = func(e ast.Expr) {
		if e == nil {
			return
		}
		switch n := e.(type) {
		case *ast.Variable:
			refs = append(refs, n)
		case *ast.Assign:
			refs = append(refs, n)
			walkExpr(n.Value)
		case *ast.This:
			refs = append(refs, n)
		case *ast.Super:
			refs = append(refs, n)
		case *ast.Binary:
			walkExpr(n.Left)
			walkExpr(n.Right)
		case *ast.Logical:
			walkExpr(n.Left)
			walkExpr(n.Right)
		case *ast.Unary:
			walkExpr(n.Right)
		case *ast.Grouping:
			walkExpr(n.Expression)
		case *ast.Call:
			walkExpr(n.Callee)
			for _, a := range n.Arguments {
				walkExpr(a)
			}
		case *ast.Get:
			walkExpr(n.Object)
		case *ast.Set:
			walkExpr(n.Object)
			walkExpr(n.Value)
		case *ast.Literal:
			// no sub-expressions, no reference
		}
	}

	walkStmt = func(s ast.Stmt) {
		switch n := s.(type) {
		case *ast.ExpressionStmt:
			walkExpr(n.Expression)
		case *ast.PrintStmt:
			walkExpr(n.Expression)
		case *ast.VarStmt:
			walkExpr(n.Initializer)
		case *ast.Block:
			for _, st := range n.Statements {
				walkStmt(st)
			}
		case *ast.IfStmt:
			walkExpr(n.Condition)
			walkStmt(n.ThenBranch)
			if n.ElseBranch != nil {
				walkStmt(n.ElseBranch)
			}
		case *ast.WhileStmt:
			walkExpr(n.Condition)
			walkStmt(n.Body)
		case *ast.FunctionDecl:
			for _, st := range n.Body {
				walkStmt(st)
			}
		case *ast.ReturnStmt:
			walkExpr(n.Value)
		case *ast.ClassDecl:
			if n.Superclass != nil {
				walkExpr(n.Superclass)
			}
			for _, m := range n.Methods {
				walkStmt(m)
			}
		}
	}

	for _, s := range program.Statements {
		walkStmt(s)
	}
	return refs
}

// globalNames returns every name declared directly at the top level
// (var/fun/class), which the resolver intentionally leaves untracked.
func globalNames(program *ast.Program) map[string]bool {
	names := map[string]bool{}
	for _, s := range program.Statements {
		switch n := s.(type) {
		case *ast.VarStmt:
			names[n.Name.Lexeme] = true
		case *ast.FunctionDecl:
			names[n.Name.Lexeme] = true
		case *ast.ClassDecl:
			names[n.Name.Lexeme] = true
		}
	}
	return names
}

// referenceName extracts the identifier a reference node resolves by.
func referenceName(e ast.Expr) string {
	switch n := e.(type) {
	case *ast.Variable:
		return n.Name.Lexeme
	case *ast.Assign:
		return n.Name.Lexeme
	case *ast.This:
		return n.Keyword.Lexeme
	case *ast.Super:
		return n.Keyword.Lexeme
	default:
		return ""
	}
}

// TestEveryReferenceHasADepthOrIsAGlobal is property test 2: every
// Variable/Assign/This/Super node the evaluator would reach either has a
// recorded depth in locals, or names a binding declared at the top level
// (where the resolver correctly leaves no locals entry, relying on the
// interpreter's global-environment fallback instead).
func TestEveryReferenceHasADepthOrIsAGlobal(t *testing.T) {
	program, r, locals := resolveSource(t, `
		var greeting = "hi";
		fun outer() {
			var captured = "outer";
			class Greeter {
				init() {
					this.tag = "greeter";
				}
				hello() {
					return this.tag + " " + captured + " " + greeting;
				}
			}
			class LoudGreeter < Greeter {
				hello() {
					return super.hello() + "!";
				}
			}
			return LoudGreeter();
		}
		print outer().hello();
	`)
	if len(r.Errors()) > 0 {
		t.Fatalf("unexpected resolve errors: %v", r.Errors())
	}

	globals := globalNames(program)
	refs := collectReferences(program)
	if len(refs) == 0 {
		t.Fatalf("walker found no references; test is not exercising anything")
	}

	for _, ref := range refs {
		if distance, ok := locals[ref]; ok {
			if distance < 0 {
				t.Fatalf("reference %T(%s) has a negative depth %d", ref, referenceName(ref), distance)
			}
			continue
		}
		name := referenceName(ref)
		if !globals[name] {
			t.Fatalf("reference %T(%s) has no recorded depth and is not a top-level global", ref, name)
		}
	}
}

func TestThisResolvesAtExpectedDistanceInsideMethod(t *testing.T) {
	program, r, locals := resolveSource(t, `
		class Foo {
			bar() {
				return this;
			}
		}
	`)
	if len(r.Errors()) > 0 {
		t.Fatalf("unexpected resolve errors: %v", r.Errors())
	}
	class := program.Statements[0].(*ast.ClassDecl)
	method := class.Methods[0]
	ret := method.Body[0].(*ast.ReturnStmt)
	thisExpr := ret.Value.(*ast.This)

	// Distance is 1, not 0: the method's own parameter/body scope is the
	// innermost one, and "this" lives in the class-pushed scope just outside it.
	distance, ok := locals[thisExpr]
	if !ok || distance != 1 {
		t.Fatalf("got distance %d, ok=%v, want 1, true", distance, ok)
	}
}
