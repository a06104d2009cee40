package asg_test

import (
	"testing"

	"github.com/npty/leo/pkg/asg"
	"github.com/npty/leo/pkg/ast"
	"github.com/npty/leo/pkg/canonicalize"
	"github.com/npty/leo/pkg/source"
	"github.com/npty/leo/pkg/typeinfer"
)

// addOneProgram builds `function main(a: u32) -> u32 { return a + 1u32; }`,
// spec.md §8's concrete scenario 1.
func addOneProgram() *ast.Program {
	span := source.NewSpan(1, 1)
	u32 := ast.IntType{Kind: ast.U32}

	a := &ast.IdentifierExpr{Name: ast.NewIdentifier("a", span)}
	a.NodeSpan = span

	one := &ast.LiteralExpr{Kind: ast.LiteralInteger, IntKind: ast.U32, Text: "1"}
	one.NodeSpan = span

	sum := &ast.BinaryExpr{Op: ast.OpAdd, Lhs: a, Rhs: one}
	sum.NodeSpan = span

	ret := &ast.ReturnStmt{Value: sum}
	ret.NodeSpan = span

	body := &ast.BlockStmt{Statements: []ast.Stmt{ret}}
	body.NodeSpan = span

	fn := &ast.Function{
		Name:       ast.NewIdentifier("main", span),
		Inputs:     []ast.FunctionInput{{Name: ast.NewIdentifier("a", span), DeclaredType: u32, InputSpan: span}},
		ReturnType: u32,
		Body:       body,
		NodeSpan:   span,
	}

	program := ast.NewProgram(span)
	program.AddFunction(fn)

	return program
}

// TestBuildInfersAdditionType drives the full pipeline (canonicalize, ASG
// build, type-inference combine) over spec.md §8's concrete scenario 1 and
// checks that the ASG and the type-inferenced AST agree: the `a + 1u32`
// expression is u32.
func TestBuildInfersAdditionType(t *testing.T) {
	program := addOneProgram()

	canonical, err := canonicalize.New().Canonicalize(program)
	if err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}

	graph, err := asg.NewBuilder(canonical).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	fn := graph.Functions["main"]
	ret := fn.Body.Statements[0].(*asg.ReturnStmt)

	want := ast.IntType{Kind: ast.U32}
	if !ret.Value.Type().Equals(want) {
		t.Fatalf("ASG return type = %v, want %v", ret.Value.Type(), want)
	}

	inferenced, err := typeinfer.Combine(canonical, graph)
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}

	outFn := inferenced.Functions["main"]
	outRet := outFn.Body.Statements[0].(*ast.ReturnStmt)

	if outRet.Value.ResolvedType() == nil {
		t.Fatalf("type-inferenced return expression has no ResolvedType")
	}

	if !outRet.Value.ResolvedType().Equals(want) {
		t.Fatalf("type-inferenced return type = %v, want %v", outRet.Value.ResolvedType(), want)
	}
}

// TestNameUnresolved verifies spec.md §4.5/§7: a reference to an undeclared
// name fails with NameUnresolvedError.
func TestNameUnresolved(t *testing.T) {
	span := source.NewSpan(3, 7)

	missing := &ast.IdentifierExpr{Name: ast.NewIdentifier("nope", span)}
	missing.NodeSpan = span

	ret := &ast.ReturnStmt{Value: missing}
	ret.NodeSpan = span

	body := &ast.BlockStmt{Statements: []ast.Stmt{ret}}
	body.NodeSpan = span

	fn := &ast.Function{
		Name:       ast.NewIdentifier("main", span),
		ReturnType: ast.BoolType{},
		Body:       body,
		NodeSpan:   span,
	}

	program := ast.NewProgram(span)
	program.AddFunction(fn)

	_, err := asg.NewBuilder(program).Build()
	if _, ok := err.(*asg.NameUnresolvedError); !ok {
		t.Fatalf("Build error = %T (%v), want *asg.NameUnresolvedError", err, err)
	}
}
