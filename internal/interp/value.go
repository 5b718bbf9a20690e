// Package interp implements golox's tree-walking evaluator: the runtime
// value model, the lexically-scoped environment chain, and the
// callable/class/instance machinery operators and property access rely
// on. Grounded on the teacher's internal/interp (Value/Environment
// naming) and internal/interp/runtime (per-kind struct layout), with
// DWScript's type-system-heavy value set collapsed down to the six
// Lox runtime kinds spec.md §3 names.
package interp

import "strconv"

// Value is a runtime value. Unlike the teacher's Value, which backs a
// statically-typed scripting language, golox's dynamic typing means
// every operator implementation type-switches on Value rather than
// dispatching through it — so the interface only needs enough surface
// for printing and identity.
type Value interface {
	Type() string
	String() string
}

// NumberValue is an IEEE-754 double. Lox has no separate integer type.
type NumberValue struct {
	Value float64
}

func (n NumberValue) Type() string { return "NUMBER" }

// String prints the shortest round-trip decimal, dropping the
// fractional part for integer-valued numbers (spec.md §6).
func (n NumberValue) String() string {
	if n.Value == float64(int64(n.Value)) {
		return strconv.FormatInt(int64(n.Value), 10)
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// StringValue is a Lox string. Strings are raw: the lexer never
// processes escape sequences.
type StringValue struct {
	Value string
}

func (s StringValue) Type() string   { return "STRING" }
func (s StringValue) String() string { return s.Value }

// BooleanValue is `true` or `false`.
type BooleanValue struct {
	Value bool
}

func (b BooleanValue) Type() string { return "BOOLEAN" }
func (b BooleanValue) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// NilValue is Lox's absence-of-value. Nil is the zero value of
// NilValue, so the bare literal NilValue{} always suffices.
type NilValue struct{}

func (NilValue) Type() string   { return "NIL" }
func (NilValue) String() string { return "nil" }

// isTruthy implements spec.md §4.4: only false and nil are falsey.
func isTruthy(v Value) bool {
	switch val := v.(type) {
	case NilValue:
		return false
	case BooleanValue:
		return val.Value
	default:
		return true
	}
}

// valuesEqual implements golox's `==`: strict by runtime kind, numbers
// and strings by value, callables and instances by identity (Go
// pointer identity stands in for spec.md §3's instance-id identity).
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
		return ok && av.Value == bv.Value
	case StringValue:
		bv, ok := b.(StringValue)
		return ok && av.Value == bv.Value
	default:
		return a == b
	}
}
