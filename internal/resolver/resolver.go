// Package resolver implements the static lexical-scoping pass: for
// every variable/this/super reference it computes the lexical scope
// distance the evaluator will use for O(1) depth-indexed lookup, and it
// diagnoses scope-related mistakes the grammar alone cannot catch.
//
// Shape (scope stack + enum-typed "current X" context fields + a collected
// diagnostics slice) is grounded on the teacher's internal/semantic.Analyzer;
// the resolution algorithm itself — declare/define flags, self-init
// detection scoped to the innermost scope only, this/super as hidden
// pre-defined scope entries — is grounded on original_source/src/resolver.rs.
package resolver

import (
	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/errors"
	"github.com/loxlang/golox/internal/lexer"
)

type functionType int

const (
	functionNone functionType = iota
	functionFunction
	functionMethod
	functionInitializer
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// scope maps a declared name to whether its initializer has finished
// running yet (declare vs define).
type scope map[string]bool

// Locals is the sidecar map the evaluator consults: for every resolved
// reference site, how many enclosing environments to skip. A reference with
// no entry here is a global, looked up by name instead.
type Locals map[ast.Expr]int

// Resolver walks a parsed program once, before evaluation, annotating Locals
// and collecting diagnostics. It never aborts on error — every rule in
// this reports and continues rather than aborting the pass.
type Resolver struct {
	scopes          []scope
	currentFunction functionType
	currentClass    classType
	locals          Locals
	errors          []*errors.CompilerError
}

// New creates a Resolver ready to resolve a program.
func New() *Resolver {
	return &Resolver{locals: make(Locals)}
}

// Resolve runs the pass over a whole program and returns the sidecar map.
// Check Errors() afterwards to see whether any diagnostic was raised.
func (r *Resolver) Resolve(program *ast.Program) Locals {
	r.resolveStmts(program.Statements)
	return r.locals
}

// Errors returns every resolve-time diagnostic collected.
func (r *Resolver) Errors() []*errors.CompilerError {
	return r.errors
}

func (r *Resolver) errorAt(token lexer.Token, message string) {
	loc := " at '" + token.Lexeme + "'"
	if token.Type == lexer.EOF {
		loc = " at end"
	}
	r.errors = append(r.errors, &errors.CompilerError{Line: token.Line, Loc: loc, Message: message})
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, scope{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) current() scope {
	if len(r.scopes) == 0 {
		return nil
	}
	return r.scopes[len(r.scopes)-1]
}

// declare marks name present in the innermost scope with defined=false.
// Redeclaring a name already present in that same non-global scope is an
// error.
func (r *Resolver) declare(name lexer.Token) {
	sc := r.current()
	if sc == nil {
		return // top level: globals are not tracked in the scope stack
	}
	if _, exists := sc[name.Lexeme]; exists {
		r.errorAt(name, "Variable with this name already declared in scope.")
	}
	sc[name.Lexeme] = false
}

func (r *Resolver) define(name lexer.Token) {
	sc := r.current()
	if sc == nil {
		return
	}
	sc[name.Lexeme] = true
}

// resolveLocal walks scopes innermost-out and records the first matching
// depth. No match means the reference is a global — no entry is recorded.
func (r *Resolver) resolveLocal(expr ast.Expr, name lexer.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) resolveFunction(decl *ast.FunctionDecl, ft functionType) {
	enclosing := r.currentFunction
	r.currentFunction = ft

	r.beginScope()
	for _, param := range decl.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(decl.Body)
	r.endScope()

	r.currentFunction = enclosing
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()

	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *ast.FunctionDecl:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, functionFunction)

	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expression)

	case *ast.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.ThenBranch)
		if s.ElseBranch != nil {
			r.resolveStmt(s.ElseBranch)
		}

	case *ast.PrintStmt:
		r.resolveExpr(s.Expression)

	case *ast.ReturnStmt:
		if r.currentFunction == functionNone {
			r.errorAt(s.Keyword, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFunction == functionInitializer {
				r.errorAt(s.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}

	case *ast.WhileStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)

	case *ast.ClassDecl:
		r.resolveClass(s)
	}
}

func (r *Resolver) resolveClass(decl *ast.ClassDecl) {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(decl.Name)
	r.define(decl.Name)

	if decl.Superclass != nil {
		if decl.Superclass.Name.Lexeme == decl.Name.Lexeme {
			r.errorAt(decl.Superclass.Name, "A class can't inherit from itself.")
		}
		r.currentClass = classSubclass
		r.resolveExpr(decl.Superclass)

		r.beginScope()
		r.current()["super"] = true
	}

	r.beginScope()
	r.current()["this"] = true

	for _, method := range decl.Methods {
		ft := functionMethod
		if method.IsInitializer {
			ft = functionInitializer
		}
		r.resolveFunction(method, ft)
	}

	r.endScope()

	if decl.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Variable:
		if sc := r.current(); sc != nil {
			if defined, ok := sc[e.Name.Lexeme]; ok && !defined {
				r.errorAt(e.Name, "Cannot read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name)

	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)

	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Arguments {
			r.resolveExpr(arg)
		}

	case *ast.Get:
		r.resolveExpr(e.Object)

	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.Grouping:
		r.resolveExpr(e.Expression)

	case *ast.Literal:
		// nothing to resolve

	case *ast.Unary:
		r.resolveExpr(e.Right)

	case *ast.This:
		if r.currentClass == classNone {
			r.errorAt(e.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e, e.Keyword)

	case *ast.Super:
		switch r.currentClass {
		case classNone:
			r.errorAt(e.Keyword, "Can't use 'super' outside of a class.")
		case classClass:
			r.errorAt(e.Keyword, "Can't use 'super' in a class with no superclass.")
		default:
			r.resolveLocal(e, e.Keyword)
		}
	}
}
