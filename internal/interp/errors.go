package interp

import "fmt"

// Runtime errors mirror the teacher's per-kind error struct + Error()
// method convention (internal/interp/runtime/errors.go), adapted to the
// exact message text and "<message>\nLine: N" trailer grounded on
// _examples/original_source/src/evaluation/runtime_value.rs.

// UnaryOperandError reports a unary operator applied to the wrong type,
// e.g. `-"x"`.
type UnaryOperandError struct {
	Want string
	Line int
}

func (e *UnaryOperandError) Error() string {
	return fmt.Sprintf("Operand must be a %s.\nLine: %d", e.Want, e.Line)
}

// BinaryOperandError reports a binary operator applied to operands of
// the wrong type, e.g. `1 < "x"` or `1 + true`.
type BinaryOperandError struct {
	Want string
	Line int
}

func (e *BinaryOperandError) Error() string {
	return fmt.Sprintf("Operands must be %s.\nLine: %d", e.Want, e.Line)
}

// UndefinedVariableError reports a read or assignment to a name with no
// binding anywhere in the scope chain.
type UndefinedVariableError struct {
	Name string
	Line int
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("Undefined variable '%s'.\nLine: %d", e.Name, e.Line)
}

// ArityMismatchError reports a call with the wrong number of arguments.
type ArityMismatchError struct {
	Expected int
	Got      int
	Line     int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("Expected %d arguments but got %d.\nLine: %d", e.Expected, e.Got, e.Line)
}

// NonCallableError reports a call expression whose callee is not a
// Callable value.
type NonCallableError struct {
	Line int
}

func (e *NonCallableError) Error() string {
	return fmt.Sprintf("Can only call functions and classes.\nLine: %d", e.Line)
}

// NonInstanceAccessError reports `.` used on a value that is not a
// class instance, for both reads and writes.
type NonInstanceAccessError struct {
	Write bool
	Line  int
}

func (e *NonInstanceAccessError) Error() string {
	if e.Write {
		return fmt.Sprintf("Only instances have fields.\nLine: %d", e.Line)
	}
	return fmt.Sprintf("Only instances have properties.\nLine: %d", e.Line)
}

// UndefinedPropertyError reports a read of a field/method not present
// on an instance or anywhere in its superclass chain. spec.md §9
// resolves the open question in favor of an error (not nil).
type UndefinedPropertyError struct {
	Name string
	Line int
}

func (e *UndefinedPropertyError) Error() string {
	return fmt.Sprintf("Undefined property '%s'.\nLine: %d", e.Name, e.Line)
}

// SuperclassMustBeAClassError reports a `class B < A` declaration where
// A does not evaluate to a class.
type SuperclassMustBeAClassError struct {
	Line int
}

func (e *SuperclassMustBeAClassError) Error() string {
	return fmt.Sprintf("Superclass must be a class.\nLine: %d", e.Line)
}

// returnSignal is not a user-facing error: it is how a `return`
// statement unwinds the Go call stack back to the nearest Function.Call
// boundary (spec.md §9, "Control flow for return" — an explicit signal
// rather than a panic/recover unwind).
type returnSignal struct {
	Value Value
}

func (r *returnSignal) Error() string { return "return outside of a call (internal)" }

func asReturn(err error) (*returnSignal, bool) {
	rs, ok := err.(*returnSignal)
	return rs, ok
}
