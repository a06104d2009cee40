package reduce

import (
	"github.com/npty/leo/pkg/ast"
	"github.com/npty/leo/pkg/source"
)

// IdentityReducer implements Reducer with every hook returning the tentative
// new node unchanged. Concrete reducers embed *IdentityReducer and override
// only the hooks they care about; an overridden method on the outer type
// takes precedence over the embedded promoted method whenever the Director
// holds the outer type behind the Reducer interface.
type IdentityReducer struct{}

// ReduceType is the identity hook for types.
func (*IdentityReducer) ReduceType(_ ast.Type, new_ ast.Type, _ bool, _ source.Span) (ast.Type, error) {
	return new_, nil
}

// ReduceIdentifierExpr is the identity hook for identifier expressions.
func (*IdentityReducer) ReduceIdentifierExpr(_, new_ *ast.IdentifierExpr, _ bool) (ast.Expr, error) {
	return new_, nil
}

// ReduceLiteralExpr is the identity hook for literal expressions.
func (*IdentityReducer) ReduceLiteralExpr(_, new_ *ast.LiteralExpr, _ bool) (ast.Expr, error) {
	return new_, nil
}

// ReduceUnaryExpr is the identity hook for unary expressions.
func (*IdentityReducer) ReduceUnaryExpr(_, new_ *ast.UnaryExpr, _ bool) (ast.Expr, error) {
	return new_, nil
}

// ReduceBinaryExpr is the identity hook for binary expressions.
func (*IdentityReducer) ReduceBinaryExpr(_, new_ *ast.BinaryExpr, _ bool) (ast.Expr, error) {
	return new_, nil
}

// ReduceTernaryExpr is the identity hook for ternary expressions.
func (*IdentityReducer) ReduceTernaryExpr(_, new_ *ast.TernaryExpr, _ bool) (ast.Expr, error) {
	return new_, nil
}

// ReduceCastExpr is the identity hook for cast expressions.
func (*IdentityReducer) ReduceCastExpr(_, new_ *ast.CastExpr, _ bool) (ast.Expr, error) {
	return new_, nil
}

// ReduceArrayInlineExpr is the identity hook for array-inline expressions.
func (*IdentityReducer) ReduceArrayInlineExpr(_, new_ *ast.ArrayInlineExpr, _ bool) (ast.Expr, error) {
	return new_, nil
}

// ReduceArrayInitExpr is the identity hook for array-init expressions.
func (*IdentityReducer) ReduceArrayInitExpr(_, new_ *ast.ArrayInitExpr, _ bool) (ast.Expr, error) {
	return new_, nil
}

// ReduceArrayAccessExpr is the identity hook for array-access expressions.
func (*IdentityReducer) ReduceArrayAccessExpr(_, new_ *ast.ArrayAccessExpr, _ bool) (ast.Expr, error) {
	return new_, nil
}

// ReduceArrayRangeAccessExpr is the identity hook for array-range-access
// expressions.
func (*IdentityReducer) ReduceArrayRangeAccessExpr(
	_, new_ *ast.ArrayRangeAccessExpr, _ bool,
) (ast.Expr, error) {
	return new_, nil
}

// ReduceTupleInitExpr is the identity hook for tuple-init expressions.
func (*IdentityReducer) ReduceTupleInitExpr(_, new_ *ast.TupleInitExpr, _ bool) (ast.Expr, error) {
	return new_, nil
}

// ReduceTupleAccessExpr is the identity hook for tuple-access expressions.
func (*IdentityReducer) ReduceTupleAccessExpr(_, new_ *ast.TupleAccessExpr, _ bool) (ast.Expr, error) {
	return new_, nil
}

// ReduceCircuitInitExpr is the identity hook for circuit-init expressions.
func (*IdentityReducer) ReduceCircuitInitExpr(_, new_ *ast.CircuitInitExpr, _ bool) (ast.Expr, error) {
	return new_, nil
}

// ReduceCircuitMemberAccessExpr is the identity hook for circuit-member-access
// expressions.
func (*IdentityReducer) ReduceCircuitMemberAccessExpr(
	_, new_ *ast.CircuitMemberAccessExpr, _ bool,
) (ast.Expr, error) {
	return new_, nil
}

// ReduceCircuitStaticFunctionAccessExpr is the identity hook for
// circuit-static-function-access expressions.
func (*IdentityReducer) ReduceCircuitStaticFunctionAccessExpr(
	_, new_ *ast.CircuitStaticFunctionAccessExpr, _ bool,
) (ast.Expr, error) {
	return new_, nil
}

// ReduceCallExpr is the identity hook for call expressions.
func (*IdentityReducer) ReduceCallExpr(_, new_ *ast.CallExpr, _ bool) (ast.Expr, error) {
	return new_, nil
}

// ReduceReturnStmt is the identity hook for return statements.
func (*IdentityReducer) ReduceReturnStmt(_, new_ *ast.ReturnStmt, _ bool) (ast.Stmt, error) {
	return new_, nil
}

// ReduceDefinitionStmt is the identity hook for definition statements.
func (*IdentityReducer) ReduceDefinitionStmt(_, new_ *ast.DefinitionStmt, _ bool) (ast.Stmt, error) {
	return new_, nil
}

// ReduceAssignStmt is the identity hook for assignment statements.
func (*IdentityReducer) ReduceAssignStmt(_, new_ *ast.AssignStmt, _ bool) (ast.Stmt, error) {
	return new_, nil
}

// ReduceConditionalStmt is the identity hook for conditional statements.
func (*IdentityReducer) ReduceConditionalStmt(_, new_ *ast.ConditionalStmt, _ bool) (ast.Stmt, error) {
	return new_, nil
}

// ReduceIterationStmt is the identity hook for iteration statements.
func (*IdentityReducer) ReduceIterationStmt(_, new_ *ast.IterationStmt, _ bool) (ast.Stmt, error) {
	return new_, nil
}

// ReduceConsoleStmt is the identity hook for console statements.
func (*IdentityReducer) ReduceConsoleStmt(_, new_ *ast.ConsoleStmt, _ bool) (ast.Stmt, error) {
	return new_, nil
}

// ReduceExpressionStmt is the identity hook for expression statements.
func (*IdentityReducer) ReduceExpressionStmt(_, new_ *ast.ExpressionStmt, _ bool) (ast.Stmt, error) {
	return new_, nil
}

// ReduceBlockStmt is the identity hook for block statements.
func (*IdentityReducer) ReduceBlockStmt(_, new_ *ast.BlockStmt, _ bool) (ast.Stmt, error) {
	return new_, nil
}

// ReduceFunction is the identity hook for function declarations.
func (*IdentityReducer) ReduceFunction(_, new_ *ast.Function, _ bool) (*ast.Function, error) {
	return new_, nil
}

// ReduceCircuit is the identity hook for circuit declarations.
func (*IdentityReducer) ReduceCircuit(_, new_ *ast.Circuit) (*ast.Circuit, error) {
	return new_, nil
}

// ReduceProgram is the identity hook for the program root.
func (*IdentityReducer) ReduceProgram(_, new_ *ast.Program) (*ast.Program, error) {
	return new_, nil
}
