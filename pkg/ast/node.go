// Package ast defines the abstract syntax tree produced by the (external)
// parser and consumed by the canonicalizer and ASG builder. Every node is
// value-like: a reduction produces a fresh tree and the caller discards the
// previous one (spec.md §3, Lifecycle).
package ast

import "github.com/npty/leo/pkg/source"

// Node is implemented by every AST node. All nodes carry an exact source
// span; spans are preserved across reductions unless a node is synthesized,
// in which case it inherits the span of the node(s) it was synthesized from.
type Node interface {
	Span() source.Span
}

// Identifier is a name together with the span at which it occurred. Identity
// is by name within a resolution scope (spec.md §3).
type Identifier struct {
	Name     string
	NodeSpan source.Span
}

// Span returns the source span of this identifier.
func (n Identifier) Span() source.Span { return n.NodeSpan }

// NewIdentifier constructs an identifier with the given name and span.
func NewIdentifier(name string, span source.Span) Identifier {
	return Identifier{Name: name, NodeSpan: span}
}
