package r1cs

import "testing"

func TestNamespaceLabelsNest(t *testing.T) {
	cs := NewSystem()
	ns := cs.Namespace("enforce a + b 1:1")

	one := cs.One()
	v := ns.AllocPrivate(NewElementFromUint64(3))

	ns.Enforce("bit_0", LC(One(), v), LC(One(), one), LC(One(), v))

	constraints := cs.Constraints()
	if len(constraints) != 1 {
		t.Fatalf("len(constraints) = %d, want 1", len(constraints))
	}

	if constraints[0].Label != "enforce a + b 1:1/bit_0" {
		t.Fatalf("label = %q", constraints[0].Label)
	}
}

func TestIsSatisfiedDetectsViolation(t *testing.T) {
	cs := NewSystem()
	one := cs.One()

	a := cs.AllocPrivate(NewElementFromUint64(2))
	b := cs.AllocPrivate(NewElementFromUint64(3))
	c := cs.AllocPrivate(NewElementFromUint64(6))

	cs.Enforce("good", LC(One(), a), LC(One(), b), LC(One(), c))

	if ok, label := cs.IsSatisfied(); !ok {
		t.Fatalf("expected satisfied, got violated constraint %q", label)
	}

	cs.Enforce("bad", LC(One(), a), LC(One(), b), Constant(NewElementFromUint64(7), one))

	ok, label := cs.IsSatisfied()
	if ok {
		t.Fatalf("expected violation")
	}

	if label != "bad" {
		t.Fatalf("violated label = %q, want \"bad\"", label)
	}
}

func TestElementArithmetic(t *testing.T) {
	x := NewElementFromUint64(5)
	y := NewElementFromUint64(7)

	if !x.Add(y).Equal(NewElementFromUint64(12)) {
		t.Fatalf("5 + 7 != 12")
	}

	if !x.Mul(y).Equal(NewElementFromUint64(35)) {
		t.Fatalf("5 * 7 != 35")
	}

	if !x.Sub(x).IsZero() {
		t.Fatalf("5 - 5 != 0")
	}

	if !x.Neg().Add(x).IsZero() {
		t.Fatalf("-5 + 5 != 0")
	}
}
