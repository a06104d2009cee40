package canonicalize

import (
	"reflect"
	"testing"

	"github.com/npty/leo/pkg/ast"
	"github.com/npty/leo/pkg/source"
)

// compoundAssignProgram builds `function main(a: u8, b: u8) -> u8 { a += b *
// 2u8; return a; }`, matching spec.md §8's concrete canonicalization
// scenario.
func compoundAssignProgram() *ast.Program {
	span := source.NewSpan(1, 1)
	opAdd := ast.OpAdd

	assign := &ast.AssignStmt{
		Target:     ast.Assignee{Name: ast.NewIdentifier("a", span)},
		Value:      binExpr(ast.OpMul, identExpr("b", span), literalInt("2", ast.U8, span), span),
		CompoundOp: &opAdd,
	}
	assign.NodeSpan = span

	ret := &ast.ReturnStmt{Value: identExpr("a", span)}
	ret.NodeSpan = span

	body := &ast.BlockStmt{Statements: []ast.Stmt{assign, ret}}
	body.NodeSpan = span

	u8 := ast.IntType{Kind: ast.U8}
	fn := &ast.Function{
		Name: ast.NewIdentifier("main", span),
		Inputs: []ast.FunctionInput{
			{Name: ast.NewIdentifier("a", span), DeclaredType: u8, InputSpan: span},
			{Name: ast.NewIdentifier("b", span), DeclaredType: u8, InputSpan: span},
		},
		ReturnType: u8,
		Body:       body,
		NodeSpan:   span,
	}

	program := ast.NewProgram(span)
	program.AddFunction(fn)

	return program
}

func identExpr(name string, span source.Span) *ast.IdentifierExpr {
	e := &ast.IdentifierExpr{Name: ast.NewIdentifier(name, span)}
	e.NodeSpan = span

	return e
}

func literalInt(text string, kind ast.IntegerKind, span source.Span) *ast.LiteralExpr {
	e := &ast.LiteralExpr{Kind: ast.LiteralInteger, IntKind: kind, Text: text}
	e.NodeSpan = span

	return e
}

func binExpr(op ast.BinaryOp, lhs, rhs ast.Expr, span source.Span) *ast.BinaryExpr {
	e := &ast.BinaryExpr{Op: op, Lhs: lhs, Rhs: rhs}
	e.NodeSpan = span

	return e
}

// TestCompoundAssignDesugars verifies spec.md §8 scenario 4: `a += b * 2`
// canonicalizes to `a = a + (b * 2)`.
func TestCompoundAssignDesugars(t *testing.T) {
	out, err := New().Canonicalize(compoundAssignProgram())
	if err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}

	fn := out.Functions["main"]
	assign, ok := fn.Body.Statements[0].(*ast.AssignStmt)
	if !ok {
		t.Fatalf("statement 0 = %T, want *ast.AssignStmt", fn.Body.Statements[0])
	}

	if assign.CompoundOp != nil {
		t.Fatalf("CompoundOp = %v, want nil after canonicalization", *assign.CompoundOp)
	}

	binary, ok := assign.Value.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("Value = %T, want *ast.BinaryExpr", assign.Value)
	}

	if binary.Op != ast.OpAdd {
		t.Fatalf("Value.Op = %v, want OpAdd", binary.Op)
	}

	lhs, ok := binary.Lhs.(*ast.IdentifierExpr)
	if !ok || lhs.Name.Name != "a" {
		t.Fatalf("Value.Lhs = %#v, want identifier a", binary.Lhs)
	}

	rhs, ok := binary.Rhs.(*ast.BinaryExpr)
	if !ok || rhs.Op != ast.OpMul {
		t.Fatalf("Value.Rhs = %#v, want (b * 2)", binary.Rhs)
	}
}

// TestCanonicalizeIdempotent verifies spec.md §8 property 1: canonicalizing
// an already-canonicalized program is a no-op.
func TestCanonicalizeIdempotent(t *testing.T) {
	once, err := New().Canonicalize(compoundAssignProgram())
	if err != nil {
		t.Fatalf("first Canonicalize: %v", err)
	}

	twice, err := New().Canonicalize(once)
	if err != nil {
		t.Fatalf("second Canonicalize: %v", err)
	}

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("canonicalize(canonicalize(ast)) != canonicalize(ast):\n%#v\n!=\n%#v", once, twice)
	}
}

// TestSelfTypeResolvesInCircuit verifies the Self-type desugaring: inside a
// circuit method, `Self` resolves to that circuit's concrete CircuitType.
func TestSelfTypeResolvesInCircuit(t *testing.T) {
	span := source.NewSpan(1, 1)

	body := &ast.BlockStmt{Statements: []ast.Stmt{}}
	body.NodeSpan = span

	method := &ast.Function{
		Name:       ast.NewIdentifier("make", span),
		ReturnType: ast.SelfType{},
		Body:       body,
		NodeSpan:   span,
	}

	circuit := &ast.Circuit{
		Name:     ast.NewIdentifier("Point", span),
		Members:  []ast.CircuitMember{{IsMethod: true, Method: method}},
		NodeSpan: span,
	}

	program := ast.NewProgram(span)
	program.AddCircuit(circuit)

	out, err := New().Canonicalize(program)
	if err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}

	got := out.Circuits["Point"].Members[0].Method.ReturnType
	want := ast.CircuitType{Name: "Point"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ReturnType = %#v, want %#v", got, want)
	}
}
