package integer

import (
	"fmt"
	"math/big"

	"github.com/npty/leo/pkg/ast"
	"github.com/npty/leo/pkg/r1cs"
	"github.com/npty/leo/pkg/source"
)

// scale multiplies every term of a linear combination by a constant factor.
func scale(lc r1cs.LinearCombination, factor r1cs.Element) r1cs.LinearCombination {
	out := r1cs.LinearCombination{}
	for _, t := range lc.Terms {
		out = out.Add(t.Coeff.Mul(factor), t.Var)
	}

	return out
}

// allocateMagnitude materializes a fresh magKind Integer equal to pattern,
// nested under root's namespace via purposeLabel (the "<purpose>_<i>"
// component the per-bit division loop needs, per spec.md §4.2/§6), and,
// when live, enforces that the materialized value equals rel. A
// non-live call (both operands constant, or no constraint system at all)
// returns a bare constant, allocating nothing.
func allocateMagnitude(root *r1cs.System, magKind ast.IntegerKind, pattern *big.Int, rel r1cs.LinearCombination, purposeLabel string, live bool) *Integer {
	if !live {
		return &Integer{kind: magKind, constant: true, pattern: pattern}
	}

	ns := root.Namespace(purposeLabel)
	vars, bits := allocateBits(ns, magKind, pattern)
	result := &Integer{kind: magKind, pattern: pattern, vars: vars, bits: bits, cs: ns}

	one := ns.One()
	ns.Enforce("relation", rel, r1cs.Constant(r1cs.One(), one), valueLC(result, one))

	return result
}

// Div implements signed truncating division via the bit-serial
// restoring-division gadget of spec.md §4.2, following the original
// gadget's (div.rs) structure: operands are reduced to their absolute
// value, long division is carried out one bit at a time with a
// `conditionally_select` choosing at every step whether the shifted
// remainder can absorb another subtraction of the divisor, and the sign
// and the two MIN-related special cases are restored by further selects
// at the end.
//
// One deliberate departure from div.rs: the original keeps the
// absolute-value gadget in the *same* signed kind throughout, which
// cannot represent |MIN| (2^(n-1)) at all, so it substitutes MIN+1/-1
// before taking the absolute value — an approximation that is exact for
// D_is_min and both_min (both explicitly overridden below) but silently
// off by one for N_is_min alone (e.g. MIN/1), which spec.md §8's concrete
// scenario requires to be exact. pkg/integer, unlike the original's
// Int8/Int16/... gadgets, has a same-width *unsigned* counterpart kind
// (unsignedOf) that represents 2^(n-1) exactly, so the absolute value is
// taken there instead: |MIN| is a plain per-kind constant (no allocation
// needed, since it never depends on a witness) and every other value's
// absolute value is computed by the usual sign-conditioned negate. The
// pseudocode's named steps (A/B, a/b, Q, the sign and MIN overrides) are
// otherwise reproduced one for one.
func Div(a, b *Integer, span source.Span) (*Integer, error) {
	if err := sameKind(a, b, "÷", span); err != nil {
		return nil, err
	}

	if b.pattern.Sign() == 0 {
		return nil, &DivisionByZeroError{Span: span}
	}

	kind := a.kind
	magKind := unsignedOf(kind)
	minVal := minValue(kind)

	n := signedValue(kind, a.pattern)
	d := signedValue(kind, b.pattern)

	positive := (n.Sign() < 0) == (d.Sign() < 0)
	nIsZero := n.Sign() == 0
	dIsMin := d.Cmp(minVal) == 0
	nIsMin := n.Cmp(minVal) == 0
	bothMin := dIsMin && nIsMin

	cs := system(a, b)
	live := cs != nil

	var root *r1cs.System
	if live {
		root = cs.Namespace(label(a, "÷", b, span))
	}

	minMagnitude := NewConstant(magKind, new(big.Int).Lsh(big.NewInt(1), kind.Width()-1))

	negA, err := Negate(a, span)
	if err != nil {
		return nil, err
	}

	aAbsKind, err := ConditionallySelect(n.Sign() < 0, negA, a, span)
	if err != nil {
		return nil, err
	}

	aMag, err := ConditionallySelect(nIsMin, minMagnitude, reinterpret(aAbsKind, magKind), span)
	if err != nil {
		return nil, err
	}

	negB, err := Negate(b, span)
	if err != nil {
		return nil, err
	}

	bAbsKind, err := ConditionallySelect(d.Sign() < 0, negB, b, span)
	if err != nil {
		return nil, err
	}

	bMag, err := ConditionallySelect(dIsMin, minMagnitude, reinterpret(bAbsKind, magKind), span)
	if err != nil {
		return nil, err
	}

	width := int(kind.Width())

	R := &Integer{kind: magKind, constant: true, pattern: big.NewInt(0)}
	Q := &Integer{kind: magKind, constant: true, pattern: big.NewInt(0)}

	for i := width - 1; i >= 0; i-- {
		bit := aMag.pattern.Bit(i)

		shiftedPattern := new(big.Int).Lsh(R.pattern, 1)
		injectedPattern := reduce(magKind, new(big.Int).Add(shiftedPattern, big.NewInt(int64(bit))))

		var injectRel r1cs.LinearCombination
		if live {
			one := root.One()
			injectRel = scale(valueLC(R, one), r1cs.NewElementFromUint64(2)).Add(r1cs.NewElementFromUint64(bit), one)
		}

		injected := allocateMagnitude(root, magKind, injectedPattern, injectRel, fmt.Sprintf("inject_%d", i), live)

		canSub := injectedPattern.Cmp(bMag.pattern) >= 0
		subPattern := reduce(magKind, new(big.Int).Sub(injectedPattern, bMag.pattern))

		var subRel r1cs.LinearCombination
		if live {
			one := root.One()
			subRel = valueLC(injected, one)
			for _, t := range valueLC(bMag, one).Terms {
				subRel = subRel.Add(t.Coeff.Neg(), t.Var)
			}
		}

		subCandidate := allocateMagnitude(root, magKind, subPattern, subRel, fmt.Sprintf("sub_%d", i), live)

		R, err = ConditionallySelect(canSub, subCandidate, injected, span)
		if err != nil {
			return nil, err
		}

		pow2i := new(big.Int).Lsh(big.NewInt(1), uint(i))
		qPattern := reduce(magKind, new(big.Int).Add(Q.pattern, pow2i))

		var qRel r1cs.LinearCombination
		if live {
			one := root.One()
			qRel = valueLC(Q, one).Add(r1cs.NewElementFromBigInt(pow2i), one)
		}

		qCandidate := allocateMagnitude(root, magKind, qPattern, qRel, fmt.Sprintf("q_%d", i), live)

		Q, err = ConditionallySelect(canSub, qCandidate, Q, span)
		if err != nil {
			return nil, err
		}
	}

	qSigned := reinterpret(Q, kind)

	negQ, err := Negate(qSigned, span)
	if err != nil {
		return nil, err
	}

	result, err := ConditionallySelect(positive, qSigned, negQ, span)
	if err != nil {
		return nil, err
	}

	if result, err = ConditionallySelect(dIsMin, NewConstant(kind, big.NewInt(0)), result, span); err != nil {
		return nil, err
	}

	if result, err = ConditionallySelect(bothMin, NewConstant(kind, big.NewInt(1)), result, span); err != nil {
		return nil, err
	}

	if result, err = ConditionallySelect(nIsZero, a, result, span); err != nil {
		return nil, err
	}

	return result, nil
}
