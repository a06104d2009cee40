package ast

import "github.com/npty/leo/pkg/source"

// Stmt is the closed set of statement variants (spec.md §3).
type Stmt interface {
	Node
	isStmt()
}

type stmtBase struct {
	NodeSpan source.Span
}

func (s stmtBase) Span() source.Span { return s.NodeSpan }
func (stmtBase) isStmt()             {}

// ReturnStmt returns a value from the enclosing function.
type ReturnStmt struct {
	stmtBase
	Value Expr
}

// DefinitionStmt declares one or more variables, optionally typed, with an
// initializer expression (e.g. `let (a, b): (u8, u8) = pair();`).
type DefinitionStmt struct {
	stmtBase
	Names        []Identifier
	DeclaredType Type // nilable: inferred if absent
	Value        Expr
}

// Assignee is the left-hand side of an assignment: a variable name followed
// by zero or more accesses (array index/range, tuple index, circuit member).
type Assignee struct {
	Name    Identifier
	Accesses []AssigneeAccess
}

// AssigneeAccessKind tags the kind of a single assignee access step.
type AssigneeAccessKind uint8

// The closed set of assignee access kinds.
const (
	AssigneeArrayIndex AssigneeAccessKind = iota
	AssigneeArrayRange
	AssigneeTupleIndex
	AssigneeMember
)

// AssigneeAccess is one access step of an Assignee.
type AssigneeAccess struct {
	Kind        AssigneeAccessKind
	Index       Expr       // AssigneeArrayIndex
	Start, End  Expr       // AssigneeArrayRange (nilable)
	TupleIndex  uint       // AssigneeTupleIndex
	Member      Identifier // AssigneeMember
}

// AssignStmt assigns a value to an assignee. Compound-assignment operators
// never survive canonicalization: the canonicalizer rewrites `a += b` into
// an AssignStmt whose Value is `a + b` (spec.md §4.4).
type AssignStmt struct {
	stmtBase
	Target Assignee
	Value  Expr
	// CompoundOp is non-nil before canonicalization when the source used a
	// compound-assignment spelling (`a += b`), naming the operator to
	// desugar with. It is always nil after canonicalization.
	CompoundOp *BinaryOp
}

// ConditionalStmt is `if cond { then } [else else_]`. Else is itself a
// Stmt (either another ConditionalStmt, to allow else-if chains, or a
// BlockStmt), matching spec.md §3.
type ConditionalStmt struct {
	stmtBase
	Cond Expr
	Then *BlockStmt
	Else Stmt // nilable
}

// IterationStmt is a bounded `for var in start..stop { body }` loop.
type IterationStmt struct {
	stmtBase
	Variable   Identifier
	Start, Stop Expr
	Body       *BlockStmt
}

// ConsoleOp tags the console statement variant.
type ConsoleOp uint8

// The closed set of console operations.
const (
	ConsoleAssert ConsoleOp = iota
	ConsoleDebug
	ConsoleError
	ConsoleLog
)

// ConsoleStmt is a `console.{assert,debug,error,log}(...)` statement. For
// ConsoleAssert, Arguments holds exactly the single boolean condition
// expression and Format is empty.
type ConsoleStmt struct {
	stmtBase
	Op        ConsoleOp
	Format    string
	Arguments []Expr
}

// ExpressionStmt evaluates an expression for its side effects (used for bare
// function calls).
type ExpressionStmt struct {
	stmtBase
	Value Expr
}

// BlockStmt is an ordered sequence of statements forming a lexical scope.
type BlockStmt struct {
	stmtBase
	Statements []Stmt
}

var (
	_ Stmt = (*ReturnStmt)(nil)
	_ Stmt = (*DefinitionStmt)(nil)
	_ Stmt = (*AssignStmt)(nil)
	_ Stmt = (*ConditionalStmt)(nil)
	_ Stmt = (*IterationStmt)(nil)
	_ Stmt = (*ConsoleStmt)(nil)
	_ Stmt = (*ExpressionStmt)(nil)
	_ Stmt = (*BlockStmt)(nil)
)
