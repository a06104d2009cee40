// Package r1cs provides the rank-1 constraint system abstraction that
// pkg/integer's gadgets emit into: a namespace-scoped handle for allocating
// variables and enforcing `a * b = c` constraints, and a wrapper around
// gnark-crypto's BLS12-377 scalar field element, matching the teacher's
// field/bls12-377 wrapper (spec.md §4.1, §6).
package r1cs

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Element wraps fr.Element, the BLS12-377 scalar field gnark-crypto
// provides, the same field the teacher's pkg/util/field/bls12-377.Element
// wraps. Every wire value in a built constraint system is one of these.
type Element struct {
	fr.Element
}

// NewElementFromUint64 constructs an Element from a small unsigned constant.
func NewElementFromUint64(v uint64) Element {
	return Element{fr.NewElement(v)}
}

// NewElementFromBigInt constructs an Element by reducing a big.Int modulo
// the field's modulus.
func NewElementFromBigInt(v *big.Int) Element {
	var e fr.Element
	e.SetBigInt(v)

	return Element{e}
}

// Zero is the additive identity.
func Zero() Element { return Element{} }

// One is the multiplicative identity.
func One() Element {
	var e fr.Element
	e.SetOne()

	return Element{e}
}

// Add returns x + y.
func (x Element) Add(y Element) Element {
	var res fr.Element
	res.Add(&x.Element, &y.Element)

	return Element{res}
}

// Sub returns x - y.
func (x Element) Sub(y Element) Element {
	var res fr.Element
	res.Sub(&x.Element, &y.Element)

	return Element{res}
}

// Mul returns x * y.
func (x Element) Mul(y Element) Element {
	var res fr.Element
	res.Mul(&x.Element, &y.Element)

	return Element{res}
}

// Neg returns -x.
func (x Element) Neg() Element {
	var res fr.Element
	res.Neg(&x.Element)

	return Element{res}
}

// IsZero reports whether x is the additive identity.
func (x Element) IsZero() bool {
	return x.Element.IsZero()
}

// Equal reports field equality.
func (x Element) Equal(y Element) bool {
	return x.Element.Equal(&y.Element)
}

// BigInt returns x's canonical representative as a big.Int.
func (x Element) BigInt() *big.Int {
	var out big.Int
	x.Element.BigInt(&out)

	return &out
}

func (x Element) String() string {
	return x.Element.String()
}
