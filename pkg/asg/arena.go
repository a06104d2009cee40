package asg

import (
	"github.com/npty/leo/pkg/ast"
	"github.com/npty/leo/pkg/source"
)

// VarID is a stable identifier for a variable binding (a function
// parameter, a `let`-bound local, or a loop variable) within one build's
// Arena. References to a VarID are only meaningful against the Arena that
// allocated it (spec.md §9, "cyclic ASG").
type VarID uint32

// VarBinding is the resolved declaration site of a single variable.
type VarBinding struct {
	Name string
	Type ast.Type
	Span source.Span
}

// Arena owns every VarBinding allocated while building one Graph. Circuit
// methods referring back to the enclosing circuit, and recursive or
// mutually-recursive function calls, are expressed as name lookups into the
// Graph's Circuits/Functions maps rather than as direct pointer cycles —
// the Arena's role is solely to give every *variable* binding a stable ID
// so that distinct scopes (e.g. two loop iterations' variables) never alias
// (spec.md §5, §9). Its lifetime is scoped to one build, created at the
// start and dropped once the associated Graph is discarded.
type Arena struct {
	vars []VarBinding
}

// NewArena constructs an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Alloc allocates a fresh VarID for the given binding.
func (a *Arena) Alloc(b VarBinding) VarID {
	a.vars = append(a.vars, b)
	return VarID(len(a.vars) - 1)
}

// Get resolves a VarID back to its binding. Panics on an out-of-range ID,
// which would indicate a VarID leaked across builds.
func (a *Arena) Get(id VarID) VarBinding {
	return a.vars[id]
}
