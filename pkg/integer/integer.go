// Package integer implements the integer value domain and its constraint
// gadgets (spec.md §4.1, §4.2): a tagged union over the ten fixed-width
// signed/unsigned kinds, each either a compile-time constant or an
// allocated bit-vector over a pkg/r1cs constraint system, plus the
// arithmetic and comparison operations that lower to R1CS constraints.
package integer

import (
	"fmt"
	"math/big"

	"github.com/bits-and-blooms/bitset"
	"github.com/npty/leo/pkg/ast"
	"github.com/npty/leo/pkg/input"
	"github.com/npty/leo/pkg/r1cs"
	"github.com/npty/leo/pkg/source"
)

// Integer is a tagged fixed-width bit-vector value. A constant Integer
// tracks only its unsigned bit pattern; an allocated Integer additionally
// owns one r1cs.Variable per bit, little-endian, matching the data model
// of spec.md §4.1 ("an ordered sequence of allocated boolean variables...
// plus an optional tracked integer value for constant-folding").
type Integer struct {
	kind     ast.IntegerKind
	constant bool
	// pattern is the canonical unsigned residue of the value modulo 2^width,
	// nil when the concrete witness is unknown (an allocation with no
	// tracked value, matching get_value() => None in the original).
	pattern *big.Int
	vars    []r1cs.Variable // one per bit, little-endian; empty for constants
	// bits mirrors vars as an allocated, indexable little-endian bit set
	// for a non-constant value, per spec.md §4.1's data-model wording; nil
	// for constants, which need no per-bit storage.
	bits *bitset.BitSet
	cs   *r1cs.System
}

func mask(width uint) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), width)
	return m.Sub(m, big.NewInt(1))
}

// unsignedOf returns the unsigned kind of the same width as kind, used by
// the division gadget to carry magnitudes (every magnitude of a signed kind,
// including |MIN| = 2^(width-1), fits in the same-width unsigned kind).
func unsignedOf(kind ast.IntegerKind) ast.IntegerKind {
	if !kind.Signed() {
		return kind
	}

	return kind - (ast.I8 - ast.U8)
}

// reinterpret retags v's existing bit allocation (or constant pattern)
// under a different, same-width kind without allocating any new
// constraint variables. The division gadget uses this to move a value
// between a signed kind and its unsigned counterpart: both share the same
// bit width, so the existing allocation already represents either
// interpretation — only the two's-complement reading of the pattern
// differs (signedValue).
func reinterpret(v *Integer, kind ast.IntegerKind) *Integer {
	out := *v
	out.kind = kind

	return &out
}

func minValue(kind ast.IntegerKind) *big.Int {
	if !kind.Signed() {
		return big.NewInt(0)
	}

	return new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), kind.Width()-1))
}

// reduce normalizes v into the canonical unsigned [0, 2^width) pattern,
// wrapping as two's complement, matching the native wraparound semantics
// spec.md §8's "Integer gadget soundness" property requires.
func reduce(kind ast.IntegerKind, v *big.Int) *big.Int {
	m := mask(kind.Width())
	out := new(big.Int).And(v, m)

	if out.Sign() < 0 {
		out.Add(out, new(big.Int).Add(m, big.NewInt(1)))
	}

	return out
}

// signedValue interprets an unsigned bit pattern as its two's-complement
// signed value for a signed kind; for an unsigned kind it is the identity.
func signedValue(kind ast.IntegerKind, pattern *big.Int) *big.Int {
	if !kind.Signed() {
		return new(big.Int).Set(pattern)
	}

	width := kind.Width()
	signBit := new(big.Int).Rsh(pattern, width-1)

	if signBit.Sign() == 0 {
		return new(big.Int).Set(pattern)
	}

	return new(big.Int).Sub(pattern, new(big.Int).Lsh(big.NewInt(1), width))
}

// NewConstant wraps a compile-time constant value, reducing it to its
// kind's canonical bit pattern.
func NewConstant(kind ast.IntegerKind, value *big.Int) *Integer {
	return &Integer{kind: kind, constant: true, pattern: reduce(kind, value)}
}

// Allocate parses decimalText at kind's width and allocates one constraint
// variable per bit into cs, emitting allocation constraints under a
// namespace labeled with name and span, matching the original's
// `allocate_type`. A nil decimalText fails with MissingIntegerError, per
// spec.md §4.1 ("fail... when allocation cannot proceed and the value is
// absent").
func Allocate(cs *r1cs.System, kind ast.IntegerKind, name string, decimalText *string, span source.Span) (*Integer, error) {
	if decimalText == nil {
		return nil, &MissingIntegerError{Name: name, Span: span}
	}

	value, ok := new(big.Int).SetString(*decimalText, 10)
	if !ok {
		return nil, &InvalidIntegerError{Text: *decimalText, Span: span}
	}

	pattern := reduce(kind, value)
	ns := cs.Namespace(allocNamespace(name, kind, span))
	vars, bits := allocateBits(ns, kind, pattern)

	return &Integer{kind: kind, pattern: pattern, vars: vars, bits: bits, cs: cs}, nil
}

// FromInput allocates an integer from a tagged program-input value,
// validating that its kind matches the declared parameter kind (spec.md
// §6: "An integer tag must match the declared parameter kind; a mismatch
// is InvalidInteger").
func FromInput(cs *r1cs.System, kind ast.IntegerKind, name string, value input.Integer, span source.Span) (*Integer, error) {
	if value.Kind != kind {
		return nil, &InvalidIntegerError{Text: value.Text, Span: span}
	}

	text := value.Text

	return Allocate(cs, kind, name, &text, span)
}

func bitElement(bit uint) r1cs.Element {
	if bit == 1 {
		return r1cs.One()
	}

	return r1cs.Zero()
}

// allocateBits allocates one private variable per bit of pattern under ns,
// enforcing that each is boolean (bit * (1-bit) = 0) and that their
// little-endian weighted sum reconstructs pattern, the bit-decomposition
// gadget every allocated Integer rests on.
func allocateBits(ns *r1cs.System, kind ast.IntegerKind, pattern *big.Int) ([]r1cs.Variable, *bitset.BitSet) {
	width := kind.Width()
	vars := make([]r1cs.Variable, width)
	bits := bitset.New(width)
	one := ns.One()
	sum := r1cs.LinearCombination{}

	for i := uint(0); i < width; i++ {
		bit := pattern.Bit(int(i))
		if bit == 1 {
			bits.Set(i)
		}

		v := ns.AllocPrivate(bitElement(bit))
		vars[i] = v

		notV := r1cs.LC(r1cs.One(), one).Add(r1cs.One().Neg(), v)
		ns.Enforce(fmt.Sprintf("bit_%d", i), r1cs.LC(r1cs.One(), v), notV, r1cs.Constant(r1cs.Zero(), one))

		weight := r1cs.NewElementFromBigInt(new(big.Int).Lsh(big.NewInt(1), i))
		sum = sum.Add(weight, v)
	}

	ns.Enforce("value", sum, r1cs.Constant(r1cs.One(), one), r1cs.Constant(r1cs.NewElementFromBigInt(pattern), one))

	return vars, bits
}

func allocNamespace(name string, kind ast.IntegerKind, span source.Span) string {
	return "`" + name + ": " + kind.String() + "` " + span.String()
}

// GetType returns this integer's kind as an ast.Type.
func (v *Integer) GetType() ast.Type {
	return ast.IntType{Kind: v.kind}
}

// Kind returns the integer kind.
func (v *Integer) Kind() ast.IntegerKind {
	return v.kind
}

// GetValue returns the decimal two's-complement value and true, or ("",
// false) when the witness is unknown.
func (v *Integer) GetValue() (string, bool) {
	if v.pattern == nil {
		return "", false
	}

	return signedValue(v.kind, v.pattern).String(), true
}

// GetBits returns the ordered (little-endian) bit sequence.
func (v *Integer) GetBits() []bool {
	out := make([]bool, v.kind.Width())

	if v.bits != nil {
		for i := range out {
			out[i] = v.bits.Test(uint(i))
		}

		return out
	}

	for i := range out {
		out[i] = v.pattern != nil && v.pattern.Bit(i) == 1
	}

	return out
}

// ToUsize converts an unsigned integer's value to a platform-width index.
// Fails with InvalidIndexError if the witness is unknown, InvalidIntegerError
// if it overflows a 64-bit usize.
func (v *Integer) ToUsize(span source.Span) (uint, error) {
	if v.pattern == nil {
		return 0, &InvalidIndexError{Span: span}
	}

	if !v.pattern.IsUint64() {
		return 0, &InvalidIntegerError{Text: v.pattern.String(), Span: span}
	}

	return uint(v.pattern.Uint64()), nil
}

// String renders the integer as its decimal value, or "[input]<type>" when
// the witness is unknown, matching the original's Display impl.
func (v *Integer) String() string {
	if s, ok := v.GetValue(); ok {
		return s
	}

	return "[input]" + v.kind.String()
}

// isConstantPair reports whether both operands are compile-time constants,
// the condition under which gadgets short-circuit to a plain value
// computation rather than allocating fresh constraint variables (spec.md
// §4.2).
func isConstantPair(a, b *Integer) bool {
	return a.constant && b.constant
}

// materialize builds a fresh Integer from a known bit pattern, either as a
// plain constant (when isConstant, or when there is no constraint system
// to allocate into) or by allocating one variable per bit under ns.
func materialize(kind ast.IntegerKind, pattern *big.Int, cs *r1cs.System, ns *r1cs.System, isConstant bool) *Integer {
	if isConstant || cs == nil {
		return &Integer{kind: kind, constant: true, pattern: pattern}
	}

	vars, bits := allocateBits(ns, kind, pattern)

	return &Integer{kind: kind, pattern: pattern, vars: vars, bits: bits, cs: cs}
}
