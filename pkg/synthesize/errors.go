package synthesize

import (
	"fmt"

	"github.com/npty/leo/pkg/source"
)

// The closed set of synthesis failure modes (spec.md §7, "Synthesis:
// constraint-system propagated failures").

// FunctionUnresolvedError reports a requested entry point not present in
// the graph.
type FunctionUnresolvedError struct {
	Name string
}

func (e *FunctionUnresolvedError) Error() string {
	return fmt.Sprintf("Synthesis: function `%s` not found", e.Name)
}

// MissingInputError reports a declared parameter with no matching record
// entry, or a record entry whose shape does not match the parameter's type.
type MissingInputError struct {
	Name string
	Span source.Span
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("Synthesis: missing or mismatched input `%s` at %s", e.Name, e.Span)
}

// UnboundVariableError reports a VarRefExpr whose VarID was never bound by
// a preceding parameter, definition, or loop/assignment statement in this
// synthesis — a name-resolution invariant the ASG builder is supposed to
// guarantee, surfaced here as a defensive synthesis-time check.
type UnboundVariableError struct {
	Name string
	Span source.Span
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("Synthesis: unbound variable `%s` at %s", e.Name, e.Span)
}

// UnsupportedError reports an ASG construct this driver does not lower to
// constraints. The core's scope (spec.md §1-§2) is the integer domain and
// its gadgets; aggregate types (arrays, tuples, circuits) and calls are
// acknowledged by the data model but fall outside the three core
// subsystems this driver wires together.
type UnsupportedError struct {
	Construct string
	Span      source.Span
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("Synthesis: unsupported construct `%s` at %s", e.Construct, e.Span)
}

// TypeMismatchError reports an operand whose runtime Value variant does not
// match what an operator or control-flow construct required (e.g. a
// non-boolean `if` condition) — a synthesis-time counterpart to
// pkg/asg's TypeMismatchError, since type inference has already run by the
// time this driver executes.
type TypeMismatchError struct {
	Expected string
	Span     source.Span
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("Synthesis: expected %s at %s", e.Expected, e.Span)
}

// AssertionFailedError reports a `console.assert` whose condition evaluated
// to false against the concrete witness.
type AssertionFailedError struct {
	Span source.Span
}

func (e *AssertionFailedError) Error() string {
	return fmt.Sprintf("Synthesis: assertion failed at %s", e.Span)
}

// MissingReturnError reports a function with a declared, non-unit return
// type whose body completed without executing a return statement.
type MissingReturnError struct {
	Name string
	Span source.Span
}

func (e *MissingReturnError) Error() string {
	return fmt.Sprintf("Synthesis: function `%s` did not return a value at %s", e.Name, e.Span)
}
