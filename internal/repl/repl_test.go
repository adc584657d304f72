package repl

import (
	"bytes"
	"testing"
)

func TestEvalExpressionPrintsValue(t *testing.T) {
	var out bytes.Buffer
	r := New(nil, &out, false)

	r.eval("1 + 2")
	if out.String() != "3\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestEvalFallsBackToStatementParsing(t *testing.T) {
	var out bytes.Buffer
	r := New(nil, &out, false)

	// "var x = 1;" is not a valid bare expression, so eval must fall back
	// to full statement parsing instead of reporting a parse error.
	r.eval("var x = 1;")
	r.eval("print x;")
	if out.String() != "1\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestEvalSharesStateAcrossCalls(t *testing.T) {
	var out bytes.Buffer
	r := New(nil, &out, false)

	r.eval("fun double(n) { return n * 2; }")
	r.eval("double(21)")
	if out.String() != "42\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestEvalReportsRuntimeErrorsAndKeepsGoing(t *testing.T) {
	var out bytes.Buffer
	r := New(nil, &out, false)

	r.eval("1 / 0")
	r.eval("1 + 1")
	got := out.String()
	if got != "Zero division error.\n[line 1]\n2\n" {
		t.Fatalf("got %q", got)
	}
}
