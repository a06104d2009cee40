package source

import "fmt"

// Error is a structured, span-carrying error. Every failure kind raised by
// pkg/ast, pkg/reduce, pkg/asg, pkg/typeinfer and pkg/integer embeds one of
// these (or satisfies the same shape) so a diagnostic renderer can report
// "<kind>: <message> at <span>" uniformly, per spec.md §7.
type Error struct {
	Kind    string
	Message string
	Span    Span
}

// NewError constructs a span-carrying error of the given kind.
func NewError(kind, message string, span Span) *Error {
	return &Error{Kind: kind, Message: message, Span: span}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s at %s", e.Kind, e.Message, e.Span)
}
