package integer

import (
	"math/big"
	"testing"

	"github.com/npty/leo/pkg/ast"
	"github.com/npty/leo/pkg/r1cs"
	"github.com/npty/leo/pkg/source"
)

func TestAddWraps(t *testing.T) {
	cs := r1cs.NewSystem()
	a := mustAllocate(t, cs, ast.U8, "a", "250")
	b := mustAllocate(t, cs, ast.U8, "b", "10")

	result, err := Add(a, b, source.NewSpan(2, 4))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	got, _ := result.GetValue()
	if got != "4" { // 260 mod 256
		t.Fatalf("Add wraparound = %s, want 4", got)
	}

	if ok, label := cs.IsSatisfied(); !ok {
		t.Fatalf("constraint %q unsatisfied", label)
	}
}

func TestSubIsAddWithNegation(t *testing.T) {
	cs := r1cs.NewSystem()
	a := mustAllocate(t, cs, ast.I8, "a", "-100")
	b := mustAllocate(t, cs, ast.I8, "b", "50")

	result, err := Sub(a, b, source.NewSpan(1, 1))
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}

	got, _ := result.GetValue()
	if got != "106" { // -150 mod 256, interpreted signed: -150 + 256 = 106
		t.Fatalf("Sub wraparound = %s, want 106", got)
	}

	if ok, label := cs.IsSatisfied(); !ok {
		t.Fatalf("constraint %q unsatisfied", label)
	}
}

func TestMulRelationConstraint(t *testing.T) {
	cs := r1cs.NewSystem()
	a := mustAllocate(t, cs, ast.U8, "a", "16")
	b := mustAllocate(t, cs, ast.U8, "b", "16")

	result, err := Mul(a, b, source.NewSpan(1, 1))
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}

	got, _ := result.GetValue()
	if got != "0" { // 256 mod 256
		t.Fatalf("Mul wraparound = %s, want 0", got)
	}

	if ok, label := cs.IsSatisfied(); !ok {
		t.Fatalf("constraint %q unsatisfied", label)
	}
}

func TestPowSquareAndMultiply(t *testing.T) {
	cs := r1cs.NewSystem()
	base := mustAllocate(t, cs, ast.U8, "base", "3")
	exp := mustAllocate(t, cs, ast.U8, "exp", "4")

	result, err := Pow(base, exp, source.NewSpan(1, 1))
	if err != nil {
		t.Fatalf("Pow: %v", err)
	}

	got, _ := result.GetValue()
	if got != "81" {
		t.Fatalf("Pow = %s, want 81", got)
	}

	if ok, label := cs.IsSatisfied(); !ok {
		t.Fatalf("constraint %q unsatisfied", label)
	}
}

func TestNegate(t *testing.T) {
	cs := r1cs.NewSystem()
	v := mustAllocate(t, cs, ast.I16, "v", "1234")

	result, err := Negate(v, source.NewSpan(5, 5))
	if err != nil {
		t.Fatalf("Negate: %v", err)
	}

	got, _ := result.GetValue()
	if got != "-1234" {
		t.Fatalf("Negate = %s, want -1234", got)
	}

	if ok, label := cs.IsSatisfied(); !ok {
		t.Fatalf("constraint %q unsatisfied", label)
	}
}

func TestBinaryOperationKindMismatch(t *testing.T) {
	cs := r1cs.NewSystem()
	a := mustAllocate(t, cs, ast.U8, "a", "1")
	b := mustAllocate(t, cs, ast.U16, "b", "1")

	_, err := Add(a, b, source.NewSpan(1, 1))
	if _, ok := err.(*BinaryOperationError); !ok {
		t.Fatalf("expected BinaryOperationError, got %v", err)
	}
}

func TestConstantGadgetsAllocateNoVariables(t *testing.T) {
	a := NewConstant(ast.U32, big.NewInt(7))
	b := NewConstant(ast.U32, big.NewInt(6))

	result, err := Mul(a, b, source.NewSpan(1, 1))
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}

	if len(result.vars) != 0 {
		t.Fatalf("constant Mul allocated %d variables, want 0", len(result.vars))
	}

	got, _ := result.GetValue()
	if got != "42" {
		t.Fatalf("Mul constant = %s, want 42", got)
	}
}

func TestEqAndLt(t *testing.T) {
	cs := r1cs.NewSystem()
	a := mustAllocate(t, cs, ast.I8, "a", "-5")
	b := mustAllocate(t, cs, ast.I8, "b", "3")

	eq, err := Eq(a, b, source.NewSpan(1, 1))
	if err != nil {
		t.Fatalf("Eq: %v", err)
	}

	if eq {
		t.Fatalf("Eq(-5, 3) = true, want false")
	}

	lt, err := Lt(a, b, source.NewSpan(1, 1))
	if err != nil {
		t.Fatalf("Lt: %v", err)
	}

	if !lt {
		t.Fatalf("Lt(-5, 3) = false, want true")
	}

	got, err := ConditionallySelect(lt, a, b, source.NewSpan(1, 1))
	if err != nil {
		t.Fatalf("ConditionallySelect: %v", err)
	}

	if got != a {
		t.Fatalf("ConditionallySelect(true, a, b) did not return a")
	}
}

// TestConditionallySelectKindMismatch verifies spec.md §4.1: selecting
// between mismatched integer kinds fails as Unsatisfiable rather than
// silently picking a branch.
func TestConditionallySelectKindMismatch(t *testing.T) {
	cs := r1cs.NewSystem()
	a := mustAllocate(t, cs, ast.I8, "a", "-5")
	b := mustAllocate(t, cs, ast.U16, "b", "3")

	if _, err := ConditionallySelect(true, a, b, source.NewSpan(2, 2)); err == nil {
		t.Fatalf("ConditionallySelect with mismatched kinds = nil error, want *UnsatisfiableError")
	} else if _, ok := err.(*UnsatisfiableError); !ok {
		t.Fatalf("ConditionallySelect error = %T, want *UnsatisfiableError", err)
	}
}
