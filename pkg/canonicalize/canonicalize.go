// Package canonicalize implements the concrete reducer (spec.md §4.4) that
// performs the language's desugarings: compound-assignment expansion,
// array-dimension flattening, tuple-of-dimensions array-init expansion,
// implicit-self resolution, and Self-type resolution. It is built on top
// of pkg/reduce's generic traversal framework, exactly as the original's
// `ReconstructingDirector`/canonicalizer pair.
//
// Return-type hoisting (spec.md §4.4: "the declared return type of a
// function is visible during body reduction") needs no dedicated state
// here: pkg/reduce's Director reduces a function's return type and input
// types under the same inCircuit value as its body (see
// Director.reduceFunctionParts), so a circuit method's Self-typed return
// type is already visible to — and resolved by — this reducer's own
// ReduceType hook while the method's body is being walked.
package canonicalize

import (
	"github.com/npty/leo/pkg/ast"
	"github.com/npty/leo/pkg/reduce"
	"github.com/npty/leo/pkg/source"
)

// Canonicalizer is a reduce.Reducer implementing the desugarings of
// spec.md §4.4. Canonicalization is idempotent: applying it twice to any
// AST yields the same AST (spec.md §8.1), since every rewrite rule's output
// is already in the rule's own fixed point (a plain BinaryExpr has no
// CompoundOp to expand further, a flattened ArrayType's element is never
// itself an ArrayType, an explicit Receiver is never re-defaulted, and
// CircuitType/SelfType resolution only ever fires on SelfType).
type Canonicalizer struct {
	*reduce.IdentityReducer
	// currentCircuit is the name of the circuit whose method body is
	// currently being reduced, or "" outside any circuit. Unlike the
	// director's in_circuit flag, this also carries the name needed to
	// resolve Self and implicit receivers.
	currentCircuit string
}

// New constructs a fresh canonicalizer.
func New() *Canonicalizer {
	return &Canonicalizer{IdentityReducer: &reduce.IdentityReducer{}}
}

// Canonicalize rewrites an entire program. It drives pkg/reduce's Director
// itself (rather than delegating straight to Director.ReduceProgram) so it
// can set currentCircuit before each circuit is walked — that field must
// be visible to hooks fired on the circuit's methods, which the director
// reduces before invoking the ReduceCircuit hook itself.
func (c *Canonicalizer) Canonicalize(program *ast.Program) (*ast.Program, error) {
	director := reduce.NewDirector(c)
	out := ast.NewProgram(program.Span())
	out.Imports = program.Imports
	out.ExpectedInputs = program.ExpectedInputs

	for _, circuit := range program.OrderedCircuits() {
		c.currentCircuit = circuit.Name.Name

		reduced, err := director.ReduceCircuit(circuit)
		if err != nil {
			return nil, err
		}

		out.AddCircuit(reduced)
	}

	c.currentCircuit = ""

	for _, fn := range program.OrderedFunctions() {
		reduced, err := director.ReduceFunction(fn, false)
		if err != nil {
			return nil, err
		}

		out.AddFunction(reduced)
	}

	return out, nil
}

// ReduceType resolves the Self type to the enclosing circuit's concrete
// CircuitType, and flattens nested array-of-array types into a single
// ArrayType carrying an ordered, flattened dimension sequence (spec.md
// §4.4).
func (c *Canonicalizer) ReduceType(old, new_ ast.Type, inCircuit bool, span source.Span) (ast.Type, error) {
	if _, ok := new_.(ast.SelfType); ok {
		if !inCircuit || c.currentCircuit == "" {
			return nil, source.NewError("Canonicalize", "`Self` used outside of a circuit", span)
		}

		return ast.CircuitType{Name: c.currentCircuit}, nil
	}

	if arr, ok := new_.(ast.ArrayType); ok {
		return flattenArray(arr), nil
	}

	return new_, nil
}

// flattenArray collapses `Array(Array(T, inner), outer)` into a single
// `Array(T, outer ++ inner)`, recursively, so that after canonicalization
// every array type carries one flat ordered dimension sequence (spec.md
// §3 invariant, §4.4).
func flattenArray(t ast.ArrayType) ast.ArrayType {
	if elem, ok := t.Element.(ast.ArrayType); ok {
		inner := flattenArray(elem)
		dims := make([]uint, 0, len(t.Dimensions)+len(inner.Dimensions))
		dims = append(dims, t.Dimensions...)
		dims = append(dims, inner.Dimensions...)

		return ast.ArrayType{Element: inner.Element, Dimensions: dims}
	}

	return t
}

// ReduceArrayInitExpr expands `[value; (m, n)]` — an array-init whose sole
// dimension is a tuple literal — into the flattened dimension sequence
// `[value; m, n]` (spec.md §4.4).
func (c *Canonicalizer) ReduceArrayInitExpr(
	_, new_ *ast.ArrayInitExpr, _ bool,
) (ast.Expr, error) {
	if len(new_.Dimensions) == 1 {
		if tuple, ok := new_.Dimensions[0].(*ast.TupleInitExpr); ok {
			flattened := *new_
			flattened.Dimensions = tuple.Elements

			return &flattened, nil
		}
	}

	return new_, nil
}

// ReduceCircuitMemberAccessExpr fills in an implicit `self` receiver: a
// circuit-member-access expression parsed without a receiver acquires an
// explicit one referencing the enclosing circuit's `Self` value (spec.md
// §4.4).
func (c *Canonicalizer) ReduceCircuitMemberAccessExpr(
	old, new_ *ast.CircuitMemberAccessExpr, inCircuit bool,
) (ast.Expr, error) {
	if new_.Receiver != nil {
		return new_, nil
	}

	if !inCircuit || c.currentCircuit == "" {
		return nil, source.NewError(
			"Canonicalize", "implicit circuit member access outside of a circuit", old.Span(),
		)
	}

	receiver := &ast.IdentifierExpr{
		Name: ast.NewIdentifier("self", old.Span()),
	}
	receiver.NodeSpan = old.Span()

	out := *new_
	out.Receiver = receiver

	return &out, nil
}

// ReduceAssignStmt expands compound assignment (`a += b`) into a plain
// assignment whose value is the corresponding binary expression (`a = a +
// b`), per spec.md §4.4. After this rewrite, CompoundOp is always nil.
func (c *Canonicalizer) ReduceAssignStmt(
	old, new_ *ast.AssignStmt, _ bool,
) (ast.Stmt, error) {
	if new_.CompoundOp == nil {
		return new_, nil
	}

	span := old.Span()
	lhs := assigneeToExpr(new_.Target, span)

	binary := &ast.BinaryExpr{
		Op:  *new_.CompoundOp,
		Lhs: lhs,
		Rhs: new_.Value,
	}
	binary.NodeSpan = span

	out := *new_
	out.Value = binary
	out.CompoundOp = nil

	return &out, nil
}

// assigneeToExpr rebuilds the read-side expression denoted by an assignee,
// so a compound assignment's desugared binary expression can reference the
// current value of its own target. Every synthesized node inherits span,
// per spec.md §3's lifecycle invariant for synthesized nodes.
func assigneeToExpr(a ast.Assignee, span source.Span) ast.Expr {
	var e ast.Expr = identifierExprAt(a.Name, span)

	for _, access := range a.Accesses {
		switch access.Kind {
		case ast.AssigneeArrayIndex:
			next := &ast.ArrayAccessExpr{Array: e, Index: access.Index}
			next.NodeSpan = span
			e = next
		case ast.AssigneeArrayRange:
			next := &ast.ArrayRangeAccessExpr{Array: e, Start: access.Start, End: access.End}
			next.NodeSpan = span
			e = next
		case ast.AssigneeTupleIndex:
			next := &ast.TupleAccessExpr{Tuple: e, Index: access.TupleIndex}
			next.NodeSpan = span
			e = next
		case ast.AssigneeMember:
			next := &ast.CircuitMemberAccessExpr{Receiver: e, Member: access.Member}
			next.NodeSpan = span
			e = next
		}
	}

	return e
}

func identifierExprAt(name ast.Identifier, span source.Span) *ast.IdentifierExpr {
	e := &ast.IdentifierExpr{Name: name}
	e.NodeSpan = span

	return e
}
