// Package repl implements Lang's interactive read-eval-print loop: readline
// input with history, colored diagnostics, and an expression-first parse
// with a statement-parse fallback so both `1 + 2` and `var x = 1;` work at
// the prompt.
package repl

import (
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/builtins"
	"github.com/loxlang/golox/internal/interp"
	"github.com/loxlang/golox/internal/lexer"
	"github.com/loxlang/golox/internal/parser"
	"github.com/loxlang/golox/internal/resolver"
)

var (
	errColor   = color.New(color.FgRed)
	valueColor = color.New(color.FgYellow)
)

// Repl is an interactive session. One Interpreter (and therefore one global
// environment) is shared across every line entered, so declarations from
// earlier lines stay visible to later ones.
type Repl struct {
	out      io.Writer
	useColor bool
	interp   *interp.Interpreter
}

// New creates a Repl with its own interpreter and installed built-ins.
// reader is accepted for symmetry with the driver's other I/O seams, but
// readline talks to the terminal directly and does not use it.
func New(reader io.Reader, out io.Writer, useColor bool) *Repl {
	i := interp.New(out, make(resolver.Locals))
	builtins.Install(i.Globals)
	return &Repl{out: out, useColor: useColor, interp: i}
}

// Start runs the loop until EOF (Ctrl+D) or a readline error.
func (r *Repl) Start() {
	rl, err := readline.New("> ")
	if err != nil {
		fmt.Fprintln(r.out, err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			return
		}
		if line == "" {
			continue
		}
		rl.SaveHistory(line)
		r.eval(line)
	}
}

// eval tries the line as a bare expression first. On a parse failure it
// re-lexes and retries as a full statement/program, which is needed for
// `var`, `if`, `class`, blocks, and every other statement form.
func (r *Repl) eval(line string) {
	exprTokens := lexer.New(line).ScanTokens()
	expr, err := parser.New(exprTokens).ParseExpression()
	if err == nil {
		r.runExpr(expr)
		return
	}

	stmtTokens := lexer.New(line).ScanTokens()
	p := parser.New(stmtTokens)
	program := p.Parse()
	if len(p.Errors()) > 0 {
		for _, pe := range p.Errors() {
			r.report(pe.Message)
		}
		return
	}
	r.runProgram(program)
}

func (r *Repl) runExpr(expr ast.Expr) {
	program := &ast.Program{Statements: []ast.Stmt{&ast.ExpressionStmt{Expression: expr}}}

	res := resolver.New()
	locals := res.Resolve(program)
	if len(res.Errors()) > 0 {
		for _, ce := range res.Errors() {
			r.report(ce.Error())
		}
		return
	}
	r.interp.MergeLocals(locals)

	value, err := r.interp.EvalExpr(expr)
	if err != nil {
		r.report(err.Error())
		return
	}
	r.printValue(value.String())
}

func (r *Repl) runProgram(program *ast.Program) {
	res := resolver.New()
	locals := res.Resolve(program)
	if len(res.Errors()) > 0 {
		for _, ce := range res.Errors() {
			r.report(ce.Error())
		}
		return
	}
	r.interp.MergeLocals(locals)

	if err := r.interp.Interpret(program); err != nil {
		r.report(err.Error())
	}
}

func (r *Repl) printValue(s string) {
	if r.useColor {
		valueColor.Fprintln(r.out, s)
		return
	}
	fmt.Fprintln(r.out, s)
}

func (r *Repl) report(message string) {
	if r.useColor {
		errColor.Fprintln(r.out, message)
		return
	}
	fmt.Fprintln(r.out, message)
}
