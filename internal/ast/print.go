package ast

import (
	"fmt"
	"strings"
)

// Print renders a program as a parenthesized s-expression dump, one line per
// top-level statement. Grounded on the treelox original's AstPrinter, which
// walks the same grammar shape with one parenthesize call per node kind.
func Print(program *Program) string {
	var b strings.Builder
	for _, s := range program.Statements {
		b.WriteString(printStmt(s))
		b.WriteByte('\n')
	}
	return b.String()
}

func parenthesize(name string, parts ...string) string {
	return "(" + strings.TrimRight(name+" "+strings.Join(parts, " "), " ") + ")"
}

func printStmt(stmt Stmt) string {
	switch s := stmt.(type) {
	case *ExpressionStmt:
		return parenthesize(";", printExpr(s.Expression))
	case *PrintStmt:
		return parenthesize("print", printExpr(s.Expression))
	case *VarStmt:
		if s.Initializer == nil {
			return parenthesize("var", s.Name.Lexeme)
		}
		return parenthesize("var", s.Name.Lexeme, printExpr(s.Initializer))
	case *Block:
		parts := make([]string, len(s.Statements))
		for i, inner := range s.Statements {
			parts[i] = printStmt(inner)
		}
		return parenthesize("block", parts...)
	case *IfStmt:
		if s.ElseBranch == nil {
			return parenthesize("if", printExpr(s.Condition), printStmt(s.ThenBranch))
		}
		return parenthesize("if", printExpr(s.Condition), printStmt(s.ThenBranch), printStmt(s.ElseBranch))
	case *WhileStmt:
		return parenthesize("while", printExpr(s.Condition), printStmt(s.Body))
	case *FunctionDecl:
		params := make([]string, len(s.Params))
		for i, p := range s.Params {
			params[i] = p.Lexeme
		}
		return parenthesize("fun "+s.Name.Lexeme+" ("+strings.Join(params, " ")+")", printBody(s.Body))
	case *ReturnStmt:
		if s.Value == nil {
			return "(return)"
		}
		return parenthesize("return", printExpr(s.Value))
	case *ClassDecl:
		header := "class " + s.Name.Lexeme
		if s.Superclass != nil {
			header += " < " + s.Superclass.Name.Lexeme
		}
		methods := make([]string, len(s.Methods))
		for i, m := range s.Methods {
			methods[i] = printStmt(m)
		}
		return parenthesize(header, methods...)
	default:
		return fmt.Sprintf("(? %T)", stmt)
	}
}

func printBody(stmts []Stmt) string {
	parts := make([]string, len(stmts))
	for i, s := range stmts {
		parts[i] = printStmt(s)
	}
	return parenthesize("block", parts...)
}

func printExpr(expr Expr) string {
	switch e := expr.(type) {
	case *Binary:
		return parenthesize(e.Operator.Lexeme, printExpr(e.Left), printExpr(e.Right))
	case *Logical:
		return parenthesize(e.Operator.Lexeme, printExpr(e.Left), printExpr(e.Right))
	case *Unary:
		return parenthesize(e.Operator.Lexeme, printExpr(e.Right))
	case *Grouping:
		return parenthesize("group", printExpr(e.Expression))
	case *Literal:
		if e.Value == nil {
			return "nil"
		}
		return fmt.Sprintf("%v", e.Value)
	case *Variable:
		return e.Name.Lexeme
	case *Assign:
		return parenthesize("=", e.Name.Lexeme, printExpr(e.Value))
	case *Call:
		args := make([]string, len(e.Arguments))
		for i, a := range e.Arguments {
			args[i] = printExpr(a)
		}
		return parenthesize("call", append([]string{printExpr(e.Callee)}, args...)...)
	case *Get:
		return parenthesize(".", printExpr(e.Object), e.Name.Lexeme)
	case *Set:
		return parenthesize("set", printExpr(e.Object), e.Name.Lexeme, printExpr(e.Value))
	case *This:
		return "this"
	case *Super:
		return parenthesize("super", e.Method.Lexeme)
	default:
		return fmt.Sprintf("(? %T)", expr)
	}
}
