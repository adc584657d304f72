// Package interp walks the resolved AST: it maintains the environment
// chain, applies truthiness/short-circuit rules, performs dynamic dispatch,
// and propagates runtime errors and return/initializer control flow
// at runtime.
package interp

import (
	"strconv"
	"strings"
)

// Value is the closed set of runtime value variants. Lang has
// a single numeric type, so the teacher's IntegerValue/FloatValue split
// collapses to one NumberValue backed by float64.
type Value interface {
	Type() string
	String() string
}

// NilValue is Lang's `nil`.
type NilValue struct{}

func (NilValue) Type() string   { return "NIL" }
func (NilValue) String() string { return "nil" }

// BooleanValue is `true`/`false`.
type BooleanValue struct{ Value bool }

func (b BooleanValue) Type() string { return "BOOLEAN" }
func (b BooleanValue) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// NumberValue is Lang's sole numeric type: an IEEE-754 double.
type NumberValue struct{ Value float64 }

func (NumberValue) Type() string { return "NUMBER" }

// String renders the minimal decimal form printed values use: integers
// without a decimal point, non-integers with enough digits to round-trip.
func (n NumberValue) String() string {
	if n.Value == float64(int64(n.Value)) {
		return strconv.FormatInt(int64(n.Value), 10)
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// StringValue is an immutable UTF-8 string.
type StringValue struct{ Value string }

func (StringValue) Type() string     { return "STRING" }
func (s StringValue) String() string { return s.Value }

// isTruthy implements the language's truthiness rule: nil and false are falsy,
// everything else (including 0 and "") is truthy.
func isTruthy(v Value) bool {
	switch val := v.(type) {
	case nil, NilValue:
		return false
	case BooleanValue:
		return val.Value
	default:
		return true
	}
}

// valuesEqual implements `==`/`!=`: same-variant equal-payload comparisons
// are true, mixed variants or mismatched payloads are false, nil==nil is
// true, any nil-vs-non-nil is false. NaN compares unequal to itself (IEEE).
func valuesEqual(a, b Value) bool {
	switch av := a.(type) {
	case NilValue:
		_, ok := b.(NilValue)
		return ok
	case BooleanValue:
		bv, ok := b.(BooleanValue)
		return ok && av.Value == bv.Value
	case NumberValue:
		bv, ok := b.(NumberValue)
		return ok && av.Value == bv.Value // NaN != NaN falls out of float64 ==
	case StringValue:
		bv, ok := b.(StringValue)
		return ok && av.Value == bv.Value
	case *Instance:
		bv, ok := b.(*Instance)
		return ok && av == bv
	case *ClassValue:
		bv, ok := b.(*ClassValue)
		return ok && av == bv
	case *Function:
		bv, ok := b.(*Function)
		return ok && av == bv
	case *NativeFunction:
		bv, ok := b.(*NativeFunction)
		return ok && av == bv
	default:
		return false
	}
}

// stringifyKind renders a friendly type tag for error messages.
func stringifyKind(v Value) string {
	if v == nil {
		return "nil"
	}
	return strings.ToLower(v.Type())
}
