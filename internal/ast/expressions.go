package ast

import "github.com/loxlang/golox/internal/lexer"

// Binary is a left-associative infix expression: arithmetic, comparison, equality.
type Binary struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (*Binary) exprNode()              {}
func (b *Binary) TokenLiteral() string { return b.Operator.Lexeme }

// Logical is `and`/`or`; evaluated with short-circuit semantics.
type Logical struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (*Logical) exprNode()              {}
func (l *Logical) TokenLiteral() string { return l.Operator.Lexeme }

// Unary is prefix `!` or `-`.
type Unary struct {
	Operator lexer.Token
	Right    Expr
}

func (*Unary) exprNode()              {}
func (u *Unary) TokenLiteral() string { return u.Operator.Lexeme }

// Grouping is a parenthesized sub-expression.
type Grouping struct {
	Expression Expr
}

func (*Grouping) exprNode()              {}
func (g *Grouping) TokenLiteral() string { return "(" }

// Literal is a boolean/number/string/nil constant.
type Literal struct {
	Value interface{} // nil, bool, float64, or string
}

func (*Literal) exprNode()              {}
func (l *Literal) TokenLiteral() string { return "literal" }

// Variable is a bare identifier reference.
type Variable struct {
	Name lexer.Token
}

func (*Variable) exprNode()              {}
func (v *Variable) TokenLiteral() string { return v.Name.Lexeme }

// Assign is `name = value`.
type Assign struct {
	Name  lexer.Token
	Value Expr
}

func (*Assign) exprNode()              {}
func (a *Assign) TokenLiteral() string { return a.Name.Lexeme }

// Call is a postfix `callee(args...)`.
type Call struct {
	Callee    Expr
	Paren     lexer.Token // closing ')', used for runtime error positions
	Arguments []Expr
}

func (*Call) exprNode()              {}
func (c *Call) TokenLiteral() string { return c.Paren.Lexeme }

// Get is a postfix `object.name` property access.
type Get struct {
	Object Expr
	Name   lexer.Token
}

func (*Get) exprNode()              {}
func (g *Get) TokenLiteral() string { return g.Name.Lexeme }

// Set is `object.name = value`.
type Set struct {
	Object Expr
	Name   lexer.Token
	Value  Expr
}

func (*Set) exprNode()              {}
func (s *Set) TokenLiteral() string { return s.Name.Lexeme }

// This is the `this` keyword used inside a method body.
type This struct {
	Keyword lexer.Token
}

func (*This) exprNode()              {}
func (t *This) TokenLiteral() string { return t.Keyword.Lexeme }

// Super is `super.method`.
type Super struct {
	Keyword lexer.Token
	Method  lexer.Token
}

func (*Super) exprNode()              {}
func (s *Super) TokenLiteral() string { return s.Keyword.Lexeme }
