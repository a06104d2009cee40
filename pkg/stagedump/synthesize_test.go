package stagedump_test

import (
	"testing"

	"github.com/npty/leo/pkg/ast"
	"github.com/npty/leo/pkg/input"
	"github.com/npty/leo/pkg/integer"
	"github.com/npty/leo/pkg/source"
	"github.com/npty/leo/pkg/stagedump"
	"github.com/npty/leo/pkg/synthesize"
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

// TestSynthesizeAddOne drives spec.md §8's concrete scenario 1 end to end:
// `a = 7` should produce a satisfied R1CS whose output register equals 8.
func TestSynthesizeAddOne(t *testing.T) {
	program := addOneProgram()

	cs, result, err := stagedump.Synthesize(program, "main", input.Record{
		"a": input.Integer{Kind: ast.U32, Text: "7"},
	})
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	iv, ok := result.(synthesize.IntValue)
	if !ok {
		t.Fatalf("result = %T, want synthesize.IntValue", result)
	}

	got, _ := iv.GetValue()
	if got != "8" {
		t.Fatalf("main(7) = %s, want 8", got)
	}

	if ok, label := cs.IsSatisfied(); !ok {
		t.Fatalf("constraint %q unsatisfied", label)
	}
}

// conditionalProgram builds spec.md §8's concrete scenario 2:
// `function main(a: bool) -> u32 { if a { return 1u32; } else { return 0u32; } }`.
func conditionalProgram() *ast.Program {
	span := source.NewSpan(2, 2)
	u32 := ast.IntType{Kind: ast.U32}

	a := &ast.IdentifierExpr{Name: ast.NewIdentifier("a", span)}
	a.NodeSpan = span

	one := &ast.LiteralExpr{Kind: ast.LiteralInteger, IntKind: ast.U32, Text: "1"}
	one.NodeSpan = span
	retOne := &ast.ReturnStmt{Value: one}
	retOne.NodeSpan = span
	thenBlock := &ast.BlockStmt{Statements: []ast.Stmt{retOne}}
	thenBlock.NodeSpan = span

	zero := &ast.LiteralExpr{Kind: ast.LiteralInteger, IntKind: ast.U32, Text: "0"}
	zero.NodeSpan = span
	retZero := &ast.ReturnStmt{Value: zero}
	retZero.NodeSpan = span
	elseBlock := &ast.BlockStmt{Statements: []ast.Stmt{retZero}}
	elseBlock.NodeSpan = span

	cond := &ast.ConditionalStmt{Cond: a, Then: thenBlock, Else: elseBlock}
	cond.NodeSpan = span

	body := &ast.BlockStmt{Statements: []ast.Stmt{cond}}
	body.NodeSpan = span

	fn := &ast.Function{
		Name:       ast.NewIdentifier("main", span),
		Inputs:     []ast.FunctionInput{{Name: ast.NewIdentifier("a", span), DeclaredType: ast.BoolType{}, InputSpan: span}},
		ReturnType: u32,
		Body:       body,
		NodeSpan:   span,
	}

	program := ast.NewProgram(span)
	program.AddFunction(fn)

	return program
}

func TestSynthesizeConditional(t *testing.T) {
	program := conditionalProgram()

	for _, tc := range []struct {
		a    bool
		want string
	}{
		{true, "1"},
		{false, "0"},
	} {
		cs, result, err := stagedump.Synthesize(program, "main", input.Record{
			"a": input.Boolean(tc.a),
		})
		if err != nil {
			t.Fatalf("Synthesize(a=%v): %v", tc.a, err)
		}

		iv, ok := result.(synthesize.IntValue)
		if !ok {
			t.Fatalf("result = %T, want synthesize.IntValue", result)
		}

		got, _ := iv.GetValue()
		if got != tc.want {
			t.Fatalf("main(a=%v) = %s, want %s", tc.a, got, tc.want)
		}

		if ok, label := cs.IsSatisfied(); !ok {
			t.Fatalf("constraint %q unsatisfied", label)
		}
	}
}

// divProgram builds the `i8` division program of spec.md §8's concrete
// scenario 3: `function main(a: i8, b: i8) -> i8 { return a / b; }`.
func divProgram() *ast.Program {
	span := source.NewSpan(3, 3)
	i8 := ast.IntType{Kind: ast.I8}

	a := &ast.IdentifierExpr{Name: ast.NewIdentifier("a", span)}
	a.NodeSpan = span
	b := &ast.IdentifierExpr{Name: ast.NewIdentifier("b", span)}
	b.NodeSpan = span

	quot := &ast.BinaryExpr{Op: ast.OpDiv, Lhs: a, Rhs: b}
	quot.NodeSpan = span

	ret := &ast.ReturnStmt{Value: quot}
	ret.NodeSpan = span

	body := &ast.BlockStmt{Statements: []ast.Stmt{ret}}
	body.NodeSpan = span

	fn := &ast.Function{
		Name: ast.NewIdentifier("main", span),
		Inputs: []ast.FunctionInput{
			{Name: ast.NewIdentifier("a", span), DeclaredType: i8, InputSpan: span},
			{Name: ast.NewIdentifier("b", span), DeclaredType: i8, InputSpan: span},
		},
		ReturnType: i8,
		Body:       body,
		NodeSpan:   span,
	}

	program := ast.NewProgram(span)
	program.AddFunction(fn)

	return program
}

func TestSynthesizeDivisionSpecials(t *testing.T) {
	program := divProgram()

	for _, tc := range []struct {
		name, a, b, want string
	}{
		{"min_over_min", "-128", "-128", "1"},
		{"min_over_one", "-128", "1", "-128"},
		{"x_over_min", "5", "-128", "0"},
		{"zero_over_y", "0", "3", "0"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cs, result, err := stagedump.Synthesize(program, "main", input.Record{
				"a": input.Integer{Kind: ast.I8, Text: tc.a},
				"b": input.Integer{Kind: ast.I8, Text: tc.b},
			})
			if err != nil {
				t.Fatalf("Synthesize: %v", err)
			}

			iv, ok := result.(synthesize.IntValue)
			if !ok {
				t.Fatalf("result = %T, want synthesize.IntValue", result)
			}

			got, _ := iv.GetValue()
			if got != tc.want {
				t.Fatalf("main(%s, %s) = %s, want %s", tc.a, tc.b, got, tc.want)
			}

			if ok, label := cs.IsSatisfied(); !ok {
				t.Fatalf("constraint %q unsatisfied", label)
			}
		})
	}
}

func TestSynthesizeDivisionByZero(t *testing.T) {
	program := divProgram()

	_, _, err := stagedump.Synthesize(program, "main", input.Record{
		"a": input.Integer{Kind: ast.I8, Text: "5"},
		"b": input.Integer{Kind: ast.I8, Text: "0"},
	})

	if _, ok := err.(*integer.DivisionByZeroError); !ok {
		t.Fatalf("Synthesize with divisor 0 = %T (%v), want *integer.DivisionByZeroError", err, err)
	}
}

func TestSynthesizeFunctionUnresolved(t *testing.T) {
	program := addOneProgram()

	_, _, err := stagedump.Synthesize(program, "missing", input.Record{})
	if _, ok := err.(*synthesize.FunctionUnresolvedError); !ok {
		t.Fatalf("Synthesize error = %T, want *synthesize.FunctionUnresolvedError", err)
	}
}
