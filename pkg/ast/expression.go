package ast

import "github.com/npty/leo/pkg/source"

// Expr is the closed set of expression variants (spec.md §3). Every variant
// also implements Node so it carries a span.
type Expr interface {
	Node
	// ResolvedType is nil until the type-inference combiner (pkg/typeinfer)
	// has stamped a concrete type onto this node.
	ResolvedType() Type
	isExpr()
}

// exprBase factors out the span and resolved-type bookkeeping shared by
// every expression variant.
type exprBase struct {
	NodeSpan source.Span
	Type_    Type
}

func (e exprBase) Span() source.Span   { return e.NodeSpan }
func (e exprBase) ResolvedType() Type  { return e.Type_ }
func (exprBase) isExpr()               {}

// IdentifierExpr references a named variable, function, circuit member or
// parameter.
type IdentifierExpr struct {
	exprBase
	Name Identifier
}

// LiteralKind tags the kind of constant carried by a LiteralExpr.
type LiteralKind uint8

// The closed set of literal kinds.
const (
	LiteralBool LiteralKind = iota
	LiteralInteger
	LiteralField
	LiteralGroup
	LiteralAddress
	LiteralChar
)

// LiteralExpr is a constant value occurring directly in source.
type LiteralExpr struct {
	exprBase
	Kind     LiteralKind
	IntKind  IntegerKind // meaningful only when Kind == LiteralInteger
	Text     string      // the literal's decimal/source text, e.g. "7", "true"
}

// UnaryOp enumerates the unary operators.
type UnaryOp uint8

// The closed set of unary operators.
const (
	OpNegate UnaryOp = iota
	OpNot
)

// UnaryExpr applies a unary operator to a single operand.
type UnaryExpr struct {
	exprBase
	Op  UnaryOp
	Arg Expr
}

// BinaryOp enumerates the binary operators.
type BinaryOp uint8

// The closed set of binary operators. Compound-assignment operators
// (`+=`, `*=`, ...) are not represented here: the canonicalizer desugars
// them into an AssignStatement whose value is a BinaryExpr using one of
// these (spec.md §4.4).
const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpPow
	OpEq
	OpNeq
	OpLt
	OpLe
	OpGt
	OpGe
	OpAnd
	OpOr
)

// IsCompound reports whether op has a compound-assignment spelling
// (`<op>=`). Used by the canonicalizer's compound-assignment desugaring.
func (op BinaryOp) IsCompound() bool {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv, OpPow, OpAnd, OpOr:
		return true
	default:
		return false
	}
}

// BinaryExpr applies a binary operator to two operands.
type BinaryExpr struct {
	exprBase
	Op       BinaryOp
	Lhs, Rhs Expr
}

// TernaryExpr is a conditional expression `cond ? then : else`.
type TernaryExpr struct {
	exprBase
	Cond, Then, Else Expr
}

// CastExpr converts an expression to another type.
type CastExpr struct {
	exprBase
	Arg        Expr
	TargetType Type
}

// ArrayInlineExpr is an array literal `[a, b, c]`.
type ArrayInlineExpr struct {
	exprBase
	Elements []Expr
}

// ArrayInitExpr is a repeated-value array initializer `[value; dimensions]`.
// Dimensions is ordered and, prior to canonicalization, may have length > 1
// when the source wrote a tuple of dimensions (spec.md §4.4); canonicalization
// replaces such a tuple with its individual dimensions. A Value that is itself
// an ArrayInitExpr is left nested.
type ArrayInitExpr struct {
	exprBase
	Value      Expr
	Dimensions []Expr
}

// ArrayAccessExpr indexes a single element of an array.
type ArrayAccessExpr struct {
	exprBase
	Array Expr
	Index Expr
}

// ArrayRangeAccessExpr takes a contiguous sub-array; either bound may be nil
// to mean "from the start" / "to the end".
type ArrayRangeAccessExpr struct {
	exprBase
	Array      Expr
	Start, End Expr // nilable
}

// TupleInitExpr constructs a tuple value.
type TupleInitExpr struct {
	exprBase
	Elements []Expr
}

// TupleAccessExpr projects a fixed index out of a tuple.
type TupleAccessExpr struct {
	exprBase
	Tuple Expr
	Index uint
}

// CircuitInitMember is one `name: value` pair of a circuit-init expression.
type CircuitInitMember struct {
	Name  Identifier
	Value Expr
}

// CircuitInitExpr constructs a circuit value from named members.
type CircuitInitExpr struct {
	exprBase
	Circuit Identifier
	Members []CircuitInitMember
}

// CircuitMemberAccessExpr projects a named member out of a circuit value.
// Prior to the canonicalizer's implicit-self pass, Receiver may be nil to
// mean "the implicit self of the enclosing circuit method" (spec.md §4.4);
// after canonicalization Receiver is always explicit.
type CircuitMemberAccessExpr struct {
	exprBase
	Receiver Expr // nilable before canonicalization
	Member   Identifier
}

// CircuitStaticFunctionAccessExpr references a circuit's static (non-method)
// function by `Circuit::function` syntax.
type CircuitStaticFunctionAccessExpr struct {
	exprBase
	Circuit  Identifier
	Function Identifier
}

// CallExpr invokes a function or method with arguments.
type CallExpr struct {
	exprBase
	Target    Expr
	Arguments []Expr
}

var (
	_ Expr = (*IdentifierExpr)(nil)
	_ Expr = (*LiteralExpr)(nil)
	_ Expr = (*UnaryExpr)(nil)
	_ Expr = (*BinaryExpr)(nil)
	_ Expr = (*TernaryExpr)(nil)
	_ Expr = (*CastExpr)(nil)
	_ Expr = (*ArrayInlineExpr)(nil)
	_ Expr = (*ArrayInitExpr)(nil)
	_ Expr = (*ArrayAccessExpr)(nil)
	_ Expr = (*ArrayRangeAccessExpr)(nil)
	_ Expr = (*TupleInitExpr)(nil)
	_ Expr = (*TupleAccessExpr)(nil)
	_ Expr = (*CircuitInitExpr)(nil)
	_ Expr = (*CircuitMemberAccessExpr)(nil)
	_ Expr = (*CircuitStaticFunctionAccessExpr)(nil)
	_ Expr = (*CallExpr)(nil)
)

// WithType returns a shallow copy of exprBase with the resolved type set.
// Used by the type-inference combiner when reconstructing typed nodes.
func (e exprBase) WithType(t Type) exprBase {
	e.Type_ = t
	return e
}

// SetType stamps the resolved type onto an expression node in place. Every
// concrete Expr variant embeds exprBase, so this method is promoted onto
// all of them; the type-inference combiner (pkg/typeinfer) uses it to
// attach the ASG's inferred type back onto the reconstructed AST without
// needing to name the unexported exprBase field directly.
func (e *exprBase) SetType(t Type) {
	e.Type_ = t
}
