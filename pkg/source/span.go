// Package source provides the source-location primitives shared across the
// compiler pipeline: spans, and span-carrying errors. Every AST, ASG and
// integer-gadget error in this module is built on top of these types so
// that a diagnostic renderer (external to this module, see spec.md §1) can
// map any failure back to an excerpt of the original program text.
package source

import "fmt"

// Span identifies a contiguous region of source text by line and column,
// counting both from 1. Unlike a byte-offset span, a line/column span can be
// rendered directly into the "enforce <lhs> <op> <rhs> <line>:<col>"
// constraint namespace labels required by spec.md §6 without needing the
// original file at hand.
type Span struct {
	LineStart int
	ColStart  int
	LineEnd   int
	ColEnd    int
}

// NewSpan constructs a span covering a single point.
func NewSpan(line, col int) Span {
	return Span{LineStart: line, ColStart: col, LineEnd: line, ColEnd: col}
}

// Join returns the smallest span enclosing both a and b. Used when a
// synthesized node's span must be inherited from more than one originating
// node (spec.md §3 invariant: synthesized nodes inherit the originating
// node's span).
func Join(a, b Span) Span {
	s := a
	if b.LineStart < s.LineStart || (b.LineStart == s.LineStart && b.ColStart < s.ColStart) {
		s.LineStart, s.ColStart = b.LineStart, b.ColStart
	}

	if b.LineEnd > s.LineEnd || (b.LineEnd == s.LineEnd && b.ColEnd > s.ColEnd) {
		s.LineEnd, s.ColEnd = b.LineEnd, b.ColEnd
	}

	return s
}

// Contains reports whether this span encloses other, used by the span
// preservation property (spec.md §8.2): every reduction's output span must
// either equal or be contained by its input span.
func (s Span) Contains(other Span) bool {
	startsOk := s.LineStart < other.LineStart || (s.LineStart == other.LineStart && s.ColStart <= other.ColStart)
	endsOk := s.LineEnd > other.LineEnd || (s.LineEnd == other.LineEnd && s.ColEnd >= other.ColEnd)

	return startsOk && endsOk
}

// String renders the span as "line:col", matching the namespace label format
// mandated by spec.md §6.
func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.LineStart, s.ColStart)
}
