package integer

import (
	"fmt"
	"math/big"

	"github.com/npty/leo/pkg/r1cs"
	"github.com/npty/leo/pkg/source"
)

// valueLC returns the linear combination reconstructing v's value: the
// weighted sum of its bit variables when allocated, or a plain constant
// multiple of the system's one-wire when v is a compile-time constant.
func valueLC(v *Integer, one r1cs.Variable) r1cs.LinearCombination {
	if v.constant || len(v.vars) == 0 {
		return r1cs.Constant(r1cs.NewElementFromBigInt(v.pattern), one)
	}

	sum := r1cs.LinearCombination{}
	for i, bit := range v.vars {
		weight := r1cs.NewElementFromBigInt(new(big.Int).Lsh(big.NewInt(1), uint(i)))
		sum = sum.Add(weight, bit)
	}

	return sum
}

// system returns whichever of a, b carries a live constraint system, nil if
// both are pure constants.
func system(a, b *Integer) *r1cs.System {
	if a.cs != nil {
		return a.cs
	}

	return b.cs
}

func sameKind(a, b *Integer, op string, span source.Span) error {
	if a.kind != b.kind {
		return &BinaryOperationError{Op: op, Span: span}
	}

	return nil
}

// label reproduces the original's `format!("enforce {} {op} {} {}:{}", ...)`
// namespace string, the text spec.md §6 requires byte-for-byte.
func label(a *Integer, op string, b *Integer, span source.Span) string {
	return fmt.Sprintf("enforce %s %s %s %s", a, op, b, span)
}

// negateLabel reproduces `format!("enforce -{} {}:{}", ...)`.
func negateLabel(v *Integer, span source.Span) string {
	return fmt.Sprintf("enforce -%s %s", v, span)
}

// linearRelation materializes a result under a namespace labeled op, and
// when not a compile-time constant, enforces that it equals a linear
// combination of a and b's own values (used by Add and Sub, whose circuit
// relation is addition, not multiplication).
func linearRelation(a *Integer, op string, b *Integer, resultPattern *big.Int, rel func(av, bv r1cs.LinearCombination, one r1cs.Variable) r1cs.LinearCombination, span source.Span) *Integer {
	cs := system(a, b)
	isConstant := isConstantPair(a, b)

	var ns *r1cs.System
	if cs != nil {
		ns = cs.Namespace(label(a, op, b, span))
	}

	result := materialize(a.kind, resultPattern, cs, ns, isConstant)

	if !isConstant && cs != nil {
		one := ns.One()
		av, bv := valueLC(a, one), valueLC(b, one)
		relLC := rel(av, bv, one)
		ns.Enforce("relation", relLC, r1cs.Constant(r1cs.One(), one), valueLC(result, one))
	}

	return result
}

// Negate returns the two's-complement negation of v.
func Negate(v *Integer, span source.Span) (*Integer, error) {
	if v.pattern == nil {
		return nil, &NegateOperationError{Span: span}
	}

	pattern := reduce(v.kind, new(big.Int).Neg(v.pattern))
	cs := v.cs

	var ns *r1cs.System
	if cs != nil {
		ns = cs.Namespace(negateLabel(v, span))
	}

	result := materialize(v.kind, pattern, cs, ns, v.constant)

	if !v.constant && cs != nil {
		one := ns.One()
		av := valueLC(v, one)
		negAv := r1cs.LinearCombination{}
		for _, t := range av.Terms {
			negAv = negAv.Add(t.Coeff.Neg(), t.Var)
		}

		ns.Enforce("relation", negAv, r1cs.Constant(r1cs.One(), one), valueLC(result, one))
	}

	return result, nil
}

// Add returns the two's-complement wraparound sum of a and b.
func Add(a, b *Integer, span source.Span) (*Integer, error) {
	if err := sameKind(a, b, "+", span); err != nil {
		return nil, err
	}

	pattern := reduce(a.kind, new(big.Int).Add(a.pattern, b.pattern))

	rel := func(av, bv r1cs.LinearCombination, one r1cs.Variable) r1cs.LinearCombination {
		out := r1cs.LinearCombination{}
		out.Terms = append(out.Terms, av.Terms...)
		out.Terms = append(out.Terms, bv.Terms...)

		return out
	}

	return linearRelation(a, "+", b, pattern, rel, span), nil
}

// Sub returns a - b, implemented as add-with-negation per spec.md §4.2.
func Sub(a, b *Integer, span source.Span) (*Integer, error) {
	if err := sameKind(a, b, "-", span); err != nil {
		return nil, err
	}

	pattern := reduce(a.kind, new(big.Int).Sub(a.pattern, b.pattern))

	rel := func(av, bv r1cs.LinearCombination, one r1cs.Variable) r1cs.LinearCombination {
		out := r1cs.LinearCombination{}
		out.Terms = append(out.Terms, av.Terms...)

		for _, t := range bv.Terms {
			out = out.Add(t.Coeff.Neg(), t.Var)
		}

		return out
	}

	return linearRelation(a, "-", b, pattern, rel, span), nil
}

// Mul returns the two's-complement wraparound product of a and b, enforced
// as a genuine rank-1 constraint (value(a) * value(b) = value(result))
// rather than the linear relation Add/Sub use.
func Mul(a, b *Integer, span source.Span) (*Integer, error) {
	if err := sameKind(a, b, "*", span); err != nil {
		return nil, err
	}

	pattern := reduce(a.kind, new(big.Int).Mul(a.pattern, b.pattern))
	cs := system(a, b)
	isConstant := isConstantPair(a, b)

	var ns *r1cs.System
	if cs != nil {
		ns = cs.Namespace(label(a, "*", b, span))
	}

	result := materialize(a.kind, pattern, cs, ns, isConstant)

	if !isConstant && cs != nil {
		one := ns.One()
		ns.Enforce("relation", valueLC(a, one), valueLC(b, one), valueLC(result, one))
	}

	return result, nil
}

// Pow returns a raised to the power of the unsigned value of b, via
// square-and-multiply, wrapping per bit at a's width.
func Pow(a, b *Integer, span source.Span) (*Integer, error) {
	if b.pattern == nil {
		return nil, &BinaryOperationError{Op: "**", Span: span}
	}

	exp := b.pattern
	result := NewConstant(a.kind, big.NewInt(1))
	base := a

	for i := 0; i < exp.BitLen(); i++ {
		if exp.Bit(i) == 1 {
			next, err := Mul(result, base, span)
			if err != nil {
				return nil, err
			}

			result = next
		}

		if i+1 < exp.BitLen() {
			next, err := Mul(base, base, span)
			if err != nil {
				return nil, err
			}

			base = next
		}
	}

	cs := system(a, b)
	isConstant := isConstantPair(a, b)

	var ns *r1cs.System
	if cs != nil {
		ns = cs.Namespace(label(a, "**", b, span))
	}

	return materialize(a.kind, result.pattern, cs, ns, isConstant), nil
}

// Eq reports whether a and b carry the same signed value. Every Integer in
// this implementation always carries a concrete witness (Allocate requires
// one), so equality is decided on the host from the tracked patterns rather
// than by allocating a dedicated equality gadget.
func Eq(a, b *Integer, span source.Span) (bool, error) {
	if err := sameKind(a, b, "==", span); err != nil {
		return false, err
	}

	return a.pattern.Cmp(b.pattern) == 0, nil
}

// Lt reports whether a's signed value is less than b's.
func Lt(a, b *Integer, span source.Span) (bool, error) {
	if err := sameKind(a, b, "<", span); err != nil {
		return false, err
	}

	return signedValue(a.kind, a.pattern).Cmp(signedValue(b.kind, b.pattern)) < 0, nil
}

// ConditionallySelect returns t when cond holds, f otherwise. Because the
// selection condition here is always a host-known bool (derived from
// concrete witnesses, per Eq/Lt above), this is a plain branch rather than
// an allocated multiplexer constraint. Selecting between mismatched kinds
// is unsatisfiable (spec.md §4.1): a circuit cannot expose a value whose
// width or signedness depends on which branch was taken.
func ConditionallySelect(cond bool, t, f *Integer, span source.Span) (*Integer, error) {
	if t.kind != f.kind {
		return nil, &UnsatisfiableError{Lhs: t.kind, Rhs: f.kind, Span: span}
	}

	if cond {
		return t, nil
	}

	return f, nil
}
