// Package asg builds the annotated semantic graph: a name-resolved,
// type-annotated intermediate representation produced from a canonicalized
// AST (spec.md §4.5). Every expression node here carries a concrete,
// already-computed ast.Type; name references are resolved to VarIDs
// (locals/parameters) or to Graph-level circuit/function names.
package asg

import (
	"github.com/npty/leo/pkg/ast"
	"github.com/npty/leo/pkg/source"
)

// Expr is the closed set of ASG expression variants, mirroring
// pkg/ast.Expr's variants but with names resolved and types attached.
type Expr interface {
	Type() ast.Type
	Span() source.Span
}

type exprBase struct {
	NodeSpan source.Span
	NodeType ast.Type
}

func (e exprBase) Span() source.Span { return e.NodeSpan }
func (e exprBase) Type() ast.Type    { return e.NodeType }

// VarRefExpr resolves to a local variable, function parameter, or loop
// variable.
type VarRefExpr struct {
	exprBase
	ID   VarID
	Name string
}

// ConstBoolExpr is a literal `true`/`false`.
type ConstBoolExpr struct {
	exprBase
	Value bool
}

// ConstIntExpr is a literal fixed-width integer.
type ConstIntExpr struct {
	exprBase
	Kind ast.IntegerKind
	Text string
}

// ConstFieldExpr is a literal base-field element.
type ConstFieldExpr struct {
	exprBase
	Text string
}

// ConstGroupExpr is a literal group element.
type ConstGroupExpr struct {
	exprBase
	Text string
}

// ConstAddressExpr is a literal address.
type ConstAddressExpr struct {
	exprBase
	Text string
}

// ConstCharExpr is a literal character.
type ConstCharExpr struct {
	exprBase
	Text string
}

// UnaryExpr applies a resolved unary operator.
type UnaryExpr struct {
	exprBase
	Op  ast.UnaryOp
	Arg Expr
}

// BinaryExpr applies a resolved binary operator; Lhs and Rhs always have
// equal, already-checked types (except for the boolean and/or and
// comparison operators, whose result type is bool regardless of operand
// type).
type BinaryExpr struct {
	exprBase
	Op       ast.BinaryOp
	Lhs, Rhs Expr
}

// TernaryExpr is a resolved conditional expression.
type TernaryExpr struct {
	exprBase
	Cond, Then, Else Expr
}

// CastExpr is a resolved type cast.
type CastExpr struct {
	exprBase
	Arg Expr
}

// ArrayInlineExpr is a resolved array literal.
type ArrayInlineExpr struct {
	exprBase
	Elements []Expr
}

// ArrayInitExpr is a resolved repeated-value array initializer, with fully
// flattened, constant-folded dimensions.
type ArrayInitExpr struct {
	exprBase
	Value      Expr
	Dimensions []uint
}

// ArrayAccessExpr is a resolved single-element array index.
type ArrayAccessExpr struct {
	exprBase
	Array Expr
	Index Expr
}

// ArrayRangeAccessExpr is a resolved contiguous sub-array access.
type ArrayRangeAccessExpr struct {
	exprBase
	Array      Expr
	Start, End Expr // nilable
}

// TupleInitExpr is a resolved tuple construction.
type TupleInitExpr struct {
	exprBase
	Elements []Expr
}

// TupleAccessExpr is a resolved fixed-index tuple projection.
type TupleAccessExpr struct {
	exprBase
	Tuple Expr
	Index uint
}

// CircuitInitMember is one resolved `name: value` circuit-init member.
type CircuitInitMember struct {
	Name  string
	Value Expr
}

// CircuitInitExpr is a resolved circuit construction.
type CircuitInitExpr struct {
	exprBase
	Circuit string
	Members []CircuitInitMember
}

// CircuitMemberAccessExpr is a resolved circuit field/method projection.
type CircuitMemberAccessExpr struct {
	exprBase
	Receiver Expr
	Member   string
}

// CircuitStaticFunctionAccessExpr is a resolved `Circuit::function`
// reference.
type CircuitStaticFunctionAccessExpr struct {
	exprBase
	Circuit, Function string
}

// CallExpr is a resolved function or method invocation.
type CallExpr struct {
	exprBase
	Target    Expr
	Arguments []Expr
}

// Stmt is the closed set of ASG statement variants.
type Stmt interface {
	Span() source.Span
}

type stmtBase struct {
	NodeSpan source.Span
}

func (s stmtBase) Span() source.Span { return s.NodeSpan }

// ReturnStmt is a resolved return statement.
type ReturnStmt struct {
	stmtBase
	Value Expr
}

// DefinitionStmt binds one or more fresh VarIDs.
type DefinitionStmt struct {
	stmtBase
	Names []VarID
	Value Expr
}

// AssigneeAccess is one resolved access step of an assignment target.
type AssigneeAccess struct {
	Kind       ast.AssigneeAccessKind
	Index      Expr
	Start, End Expr
	TupleIndex uint
	Member     string
}

// AssignStmt is a resolved assignment.
type AssignStmt struct {
	stmtBase
	Target   VarID
	Accesses []AssigneeAccess
	Value    Expr
}

// ConditionalStmt is a resolved if/else-if/else chain.
type ConditionalStmt struct {
	stmtBase
	Cond Expr
	Then *BlockStmt
	Else Stmt // nilable; either *ConditionalStmt or *BlockStmt
}

// IterationStmt is a resolved bounded loop, binding a fresh VarID for its
// induction variable.
type IterationStmt struct {
	stmtBase
	Variable    VarID
	Start, Stop Expr
	Body        *BlockStmt
}

// ConsoleStmt is a resolved console statement.
type ConsoleStmt struct {
	stmtBase
	Op        ast.ConsoleOp
	Format    string
	Arguments []Expr
}

// ExpressionStmt is a resolved bare-expression statement.
type ExpressionStmt struct {
	stmtBase
	Value Expr
}

// BlockStmt is a resolved ordered statement sequence.
type BlockStmt struct {
	stmtBase
	Statements []Stmt
}

// Param is one resolved function parameter.
type Param struct {
	ID     VarID
	Name   string
	Type   ast.Type
	IsSelf bool
}

// Function is a resolved function or circuit method.
type Function struct {
	Name        string
	Annotations []string
	Inputs      []Param
	ReturnType  ast.Type // nil for an implicit unit return
	Body        *BlockStmt
	Span        source.Span
}

// Field is one resolved circuit field.
type Field struct {
	Name string
	Type ast.Type
	Span source.Span
}

// Member is one resolved circuit member, in declaration order.
type Member struct {
	IsMethod bool
	Field    *Field
	Method   *Function
}

// Circuit is a resolved circuit: a name and an ordered member list.
type Circuit struct {
	Name    string
	Members []Member
	Span    source.Span
}

// Graph is the build's complete annotated semantic graph: every circuit and
// free function, name-resolved and typed, plus the Arena that owns every
// variable binding referenced from within it. Its lifetime is scoped to one
// build (spec.md §5); the caller discards both Graph and Arena together
// once pkg/synthesize has walked every function it needs and driven
// pkg/integer's gadgets over a pkg/r1cs.System.
type Graph struct {
	Arena         *Arena
	CircuitNames  []string
	Circuits      map[string]*Circuit
	FunctionNames []string
	Functions     map[string]*Function
}
