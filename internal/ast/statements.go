package ast

import "github.com/loxlang/golox/internal/lexer"

// ExpressionStmt wraps an expression evaluated purely for its side effects.
type ExpressionStmt struct {
	Expression Expr
}

func (*ExpressionStmt) stmtNode()              {}
func (e *ExpressionStmt) TokenLiteral() string { return e.Expression.TokenLiteral() }

// PrintStmt evaluates its expression and writes the formatted value plus a newline.
type PrintStmt struct {
	Keyword    lexer.Token
	Expression Expr
}

func (*PrintStmt) stmtNode()              {}
func (p *PrintStmt) TokenLiteral() string { return p.Keyword.Lexeme }

// VarStmt is a `var name = initializer;` declaration. Initializer is nil when omitted.
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr
}

func (*VarStmt) stmtNode()              {}
func (v *VarStmt) TokenLiteral() string { return v.Name.Lexeme }

// Block is `{ statements... }`; it pushes a fresh environment on evaluation.
type Block struct {
	Statements []Stmt
}

func (*Block) stmtNode()              {}
func (b *Block) TokenLiteral() string { return "{" }

// IfStmt is `if (condition) thenBranch else elseBranch`. ElseBranch is nil when omitted.
type IfStmt struct {
	Condition  Expr
	ThenBranch Stmt
	ElseBranch Stmt
}

func (*IfStmt) stmtNode()              {}
func (i *IfStmt) TokenLiteral() string { return "if" }

// WhileStmt is `while (condition) body`. The parser also desugars `for` into this.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (*WhileStmt) stmtNode()              {}
func (w *WhileStmt) TokenLiteral() string { return "while" }

// FunctionDecl is a named function, and also the shape used for class methods
// (IsInitializer is set by the parser when Name.Lexeme == "init").
type FunctionDecl struct {
	Name          lexer.Token
	Params        []lexer.Token
	Body          []Stmt
	IsInitializer bool
}

func (*FunctionDecl) stmtNode()              {}
func (f *FunctionDecl) TokenLiteral() string { return f.Name.Lexeme }

// ReturnStmt is `return;` or `return value;`. Value is nil when omitted.
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr
}

func (*ReturnStmt) stmtNode()              {}
func (r *ReturnStmt) TokenLiteral() string { return r.Keyword.Lexeme }

// ClassDecl is a class declaration with an optional superclass reference and
// its methods (each a *FunctionDecl parsed without a leading `fun`).
type ClassDecl struct {
	Name       lexer.Token
	Superclass *Variable // nil when there is no "< Superclass" clause
	Methods    []*FunctionDecl
}

func (*ClassDecl) stmtNode()              {}
func (c *ClassDecl) TokenLiteral() string { return c.Name.Lexeme }
