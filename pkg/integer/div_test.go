package integer

import (
	"math/big"
	"testing"

	"github.com/npty/leo/pkg/ast"
	"github.com/npty/leo/pkg/r1cs"
	"github.com/npty/leo/pkg/source"
)

func mustAllocate(t *testing.T, cs *r1cs.System, kind ast.IntegerKind, name string, decimal string) *Integer {
	t.Helper()

	v, err := Allocate(cs, kind, name, &decimal, source.NewSpan(1, 1))
	if err != nil {
		t.Fatalf("Allocate(%s) = %v", decimal, err)
	}

	return v
}

func TestDivSpecials(t *testing.T) {
	span := source.NewSpan(3, 7)

	cases := []struct {
		name     string
		a, b     string
		expected string
	}{
		{"min_over_min", "-128", "-128", "1"},
		{"min_over_one", "-128", "1", "-128"},
		{"min_over_neg_one_wraps", "-128", "-1", "-128"},
		{"x_over_min", "5", "-128", "0"},
		{"zero_over_y", "0", "5", "0"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cs := r1cs.NewSystem()
			a := mustAllocate(t, cs, ast.I8, "a", c.a)
			b := mustAllocate(t, cs, ast.I8, "b", c.b)

			result, err := Div(a, b, span)
			if err != nil {
				t.Fatalf("Div: %v", err)
			}

			got, ok := result.GetValue()
			if !ok {
				t.Fatalf("GetValue: unknown witness")
			}

			if got != c.expected {
				t.Fatalf("Div(%s, %s) = %s, want %s", c.a, c.b, got, c.expected)
			}

			if ok, label := cs.IsSatisfied(); !ok {
				t.Fatalf("constraint %q unsatisfied", label)
			}
		})
	}
}

func TestDivByZero(t *testing.T) {
	cs := r1cs.NewSystem()
	a := mustAllocate(t, cs, ast.I8, "a", "5")
	b := mustAllocate(t, cs, ast.I8, "b", "0")

	_, err := Div(a, b, source.NewSpan(1, 1))
	if _, ok := err.(*DivisionByZeroError); !ok {
		t.Fatalf("expected DivisionByZeroError, got %v", err)
	}
}

func TestDivConstantShortCircuit(t *testing.T) {
	a := NewConstant(ast.I8, big.NewInt(-128))
	b := NewConstant(ast.I8, big.NewInt(1))

	result, err := Div(a, b, source.NewSpan(1, 1))
	if err != nil {
		t.Fatalf("Div: %v", err)
	}

	got, _ := result.GetValue()
	if got != "-128" {
		t.Fatalf("Div constant = %s, want -128", got)
	}

	if len(result.vars) != 0 {
		t.Fatalf("constant division allocated %d variables, want 0", len(result.vars))
	}
}
