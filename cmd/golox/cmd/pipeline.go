package cmd

import (
	"fmt"
	"os"

	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/errors"
	"github.com/loxlang/golox/internal/lexer"
	"github.com/loxlang/golox/internal/parser"
	"github.com/loxlang/golox/internal/resolver"
)

// readSource returns a script's contents and a display name for diagnostics.
func readSource(args []string) (source, filename string, err error) {
	if len(args) == 0 {
		return "", "", nil
	}
	filename = args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return "", filename, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return string(content), filename, nil
}

// lexAll runs the lexer to completion, collecting every token and every
// scan-time diagnostic (scanning never stops at the first error).
func lexAll(source string) ([]lexer.Token, []lexer.LexError) {
	l := lexer.New(source)
	tokens := l.ScanTokens()
	return tokens, l.Errors()
}

// parseAll lexes and parses source, reporting lex errors as CompilerErrors
// alongside any parse errors.
func parseAll(source string) (*ast.Program, []*errors.CompilerError) {
	tokens, lexErrs := lexAll(source)

	p := parser.New(tokens)
	program := p.Parse()

	var diags []*errors.CompilerError
	for _, le := range lexErrs {
		diags = append(diags, &errors.CompilerError{Line: le.Line, Message: le.Message})
	}
	for _, pe := range p.Errors() {
		loc := " at '" + pe.Token.Lexeme + "'"
		if pe.Token.Type == lexer.EOF {
			loc = " at end"
		}
		diags = append(diags, &errors.CompilerError{Line: pe.Token.Line, Loc: loc, Message: pe.Message})
	}
	return program, diags
}

// resolveAll runs the full lex+parse+resolve pipeline.
func resolveAll(source string) (*ast.Program, resolver.Locals, []*errors.CompilerError) {
	program, diags := parseAll(source)
	if len(diags) > 0 {
		return program, nil, diags
	}

	r := resolver.New()
	locals := r.Resolve(program)
	diags = append(diags, r.Errors()...)
	return program, locals, diags
}

func printDiagnostics(diags []*errors.CompilerError) {
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, d.Format(useColor()))
	}
}
