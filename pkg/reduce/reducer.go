// Package reduce implements the generic AST reduction framework described in
// spec.md §4.3: a director walks the AST in deterministic preorder, and
// delegates per-node rewriting to a pluggable Reducer. A family of passes
// (the canonicalizer in pkg/canonicalize, the type-inference combiner in
// pkg/typeinfer, and any future lint pass) share this one traversal skeleton;
// only their per-node hooks differ.
//
// Every hook receives both the original node and a tentative new node built
// from the node's already-reduced children, and returns the node that should
// actually replace it. The director never re-inspects a node's children
// after a hook has run on it.
package reduce

import (
	"github.com/npty/leo/pkg/ast"
	"github.com/npty/leo/pkg/source"
)

// Reducer is the capability set a concrete pass implements: one hook per
// node kind (spec.md §4.3). Concrete reducers embed *IdentityReducer and
// override only the hooks relevant to their pass; every other hook falls
// through to the identity default. Every hook is fallible: the first error
// returned aborts the current traversal and is propagated to the director's
// caller (spec.md §4.3, §7).
type Reducer interface {
	ReduceType(old, new_ ast.Type, inCircuit bool, span source.Span) (ast.Type, error)

	ReduceIdentifierExpr(old *ast.IdentifierExpr, new_ *ast.IdentifierExpr, inCircuit bool) (ast.Expr, error)
	ReduceLiteralExpr(old *ast.LiteralExpr, new_ *ast.LiteralExpr, inCircuit bool) (ast.Expr, error)
	ReduceUnaryExpr(old *ast.UnaryExpr, new_ *ast.UnaryExpr, inCircuit bool) (ast.Expr, error)
	ReduceBinaryExpr(old *ast.BinaryExpr, new_ *ast.BinaryExpr, inCircuit bool) (ast.Expr, error)
	ReduceTernaryExpr(old *ast.TernaryExpr, new_ *ast.TernaryExpr, inCircuit bool) (ast.Expr, error)
	ReduceCastExpr(old *ast.CastExpr, new_ *ast.CastExpr, inCircuit bool) (ast.Expr, error)
	ReduceArrayInlineExpr(old *ast.ArrayInlineExpr, new_ *ast.ArrayInlineExpr, inCircuit bool) (ast.Expr, error)
	ReduceArrayInitExpr(old *ast.ArrayInitExpr, new_ *ast.ArrayInitExpr, inCircuit bool) (ast.Expr, error)
	ReduceArrayAccessExpr(old *ast.ArrayAccessExpr, new_ *ast.ArrayAccessExpr, inCircuit bool) (ast.Expr, error)
	ReduceArrayRangeAccessExpr(old *ast.ArrayRangeAccessExpr, new_ *ast.ArrayRangeAccessExpr, inCircuit bool) (ast.Expr, error)
	ReduceTupleInitExpr(old *ast.TupleInitExpr, new_ *ast.TupleInitExpr, inCircuit bool) (ast.Expr, error)
	ReduceTupleAccessExpr(old *ast.TupleAccessExpr, new_ *ast.TupleAccessExpr, inCircuit bool) (ast.Expr, error)
	ReduceCircuitInitExpr(old *ast.CircuitInitExpr, new_ *ast.CircuitInitExpr, inCircuit bool) (ast.Expr, error)
	ReduceCircuitMemberAccessExpr(old *ast.CircuitMemberAccessExpr, new_ *ast.CircuitMemberAccessExpr, inCircuit bool) (ast.Expr, error)
	ReduceCircuitStaticFunctionAccessExpr(old *ast.CircuitStaticFunctionAccessExpr, new_ *ast.CircuitStaticFunctionAccessExpr, inCircuit bool) (ast.Expr, error)
	ReduceCallExpr(old *ast.CallExpr, new_ *ast.CallExpr, inCircuit bool) (ast.Expr, error)

	ReduceReturnStmt(old *ast.ReturnStmt, new_ *ast.ReturnStmt, inCircuit bool) (ast.Stmt, error)
	ReduceDefinitionStmt(old *ast.DefinitionStmt, new_ *ast.DefinitionStmt, inCircuit bool) (ast.Stmt, error)
	ReduceAssignStmt(old *ast.AssignStmt, new_ *ast.AssignStmt, inCircuit bool) (ast.Stmt, error)
	ReduceConditionalStmt(old *ast.ConditionalStmt, new_ *ast.ConditionalStmt, inCircuit bool) (ast.Stmt, error)
	ReduceIterationStmt(old *ast.IterationStmt, new_ *ast.IterationStmt, inCircuit bool) (ast.Stmt, error)
	ReduceConsoleStmt(old *ast.ConsoleStmt, new_ *ast.ConsoleStmt, inCircuit bool) (ast.Stmt, error)
	ReduceExpressionStmt(old *ast.ExpressionStmt, new_ *ast.ExpressionStmt, inCircuit bool) (ast.Stmt, error)
	ReduceBlockStmt(old *ast.BlockStmt, new_ *ast.BlockStmt, inCircuit bool) (ast.Stmt, error)

	ReduceFunction(old *ast.Function, new_ *ast.Function, inCircuit bool) (*ast.Function, error)
	ReduceCircuit(old *ast.Circuit, new_ *ast.Circuit) (*ast.Circuit, error)
	ReduceProgram(old *ast.Program, new_ *ast.Program) (*ast.Program, error)
}
