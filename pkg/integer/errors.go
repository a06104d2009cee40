package integer

import (
	"fmt"

	"github.com/npty/leo/pkg/ast"
	"github.com/npty/leo/pkg/source"
)

// The closed set of integer-gadget failure modes (spec.md §4.1, §7).

// InvalidIntegerError reports a decimal literal that does not parse at its
// declared width, or a to_usize result that overflows native usize.
type InvalidIntegerError struct {
	Text string
	Span source.Span
}

func (e *InvalidIntegerError) Error() string {
	return fmt.Sprintf("Integer: invalid integer `%s` at %s", e.Text, e.Span)
}

// MissingIntegerError reports an allocation with neither a witness value
// nor a constant to fall back on.
type MissingIntegerError struct {
	Name string
	Span source.Span
}

func (e *MissingIntegerError) Error() string {
	return fmt.Sprintf("Integer: missing integer `%s` at %s", e.Name, e.Span)
}

// InvalidIndexError reports to_usize called on a value whose witness is
// unknown (a non-constant allocation with no tracked value).
type InvalidIndexError struct {
	Span source.Span
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("Integer: invalid index at %s", e.Span)
}

// BinaryOperationError reports a binary operation whose operand kinds
// disagree.
type BinaryOperationError struct {
	Op   string
	Span source.Span
}

func (e *BinaryOperationError) Error() string {
	return fmt.Sprintf("Integer: binary operation `%s` failed at %s", e.Op, e.Span)
}

// NegateOperationError reports a negate that could not be synthesized.
type NegateOperationError struct {
	Span source.Span
}

func (e *NegateOperationError) Error() string {
	return fmt.Sprintf("Integer: negate operation failed at %s", e.Span)
}

// DivisionByZeroError reports a division whose divisor's value is 0.
type DivisionByZeroError struct {
	Span source.Span
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("Integer: division by zero at %s", e.Span)
}

// UnsatisfiableError reports a conditional-select between mismatched integer
// kinds. Comparisons between mismatched kinds report BinaryOperationError.
type UnsatisfiableError struct {
	Lhs, Rhs ast.IntegerKind
	Span     source.Span
}

func (e *UnsatisfiableError) Error() string {
	return fmt.Sprintf("Integer: unsatisfiable, %s vs %s at %s", e.Lhs, e.Rhs, e.Span)
}
