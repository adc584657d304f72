// Package errors formats Lang diagnostics with source-position context,
// shared by the lexer/parser/resolver (CompilerError) and the evaluator
// (RuntimeError).
package errors

import (
	"fmt"

	"github.com/fatih/color"
)

var errorTag = color.New(color.FgRed, color.Bold)

// CompilerError is a lex, parse, or resolve diagnostic: reported, then
// execution of that pass continues.
type CompilerError struct {
	Line    int
	Loc     string // "", " at end", or " at 'lexeme'"
	Message string
}

// Error implements the error interface with the canonical diagnostic wire format
// mandates: "[line L] Error<loc>: <message>".
func (e *CompilerError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Line, e.Loc, e.Message)
}

// Format renders the diagnostic, optionally highlighting the "Error" tag for
// a TTY stdout (color driven by fatih/color's
// color.NoColor convention).
func (e *CompilerError) Format(useColor bool) string {
	if !useColor {
		return e.Error()
	}
	return fmt.Sprintf("[line %d] %s%s: %s", e.Line, errorTag.Sprintf("Error"), e.Loc, e.Message)
}

// RuntimeError unwinds the currently running script. The
// driver prints "<message>\n[line L]" and exits 70, except in REPL mode
// where it reports and returns to the prompt.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Line)
}

// Format renders the diagnostic, optionally in red for a TTY stdout.
func (e *RuntimeError) Format(useColor bool) string {
	if !useColor {
		return e.Error()
	}
	return fmt.Sprintf("%s\n[line %d]", errorTag.Sprintf(e.Message), e.Line)
}

// NewRuntimeError constructs a RuntimeError for the given source line.
func NewRuntimeError(line int, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Line: line, Message: fmt.Sprintf(format, args...)}
}

// Exit codes: 64 usage, 65 static (lex/parse/resolve)
// error, 70 runtime error, 0 success.
const (
	ExitUsage   = 64
	ExitStatic  = 65
	ExitRuntime = 70
)
