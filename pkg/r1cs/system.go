package r1cs

import "fmt"

// Variable identifies one wire of a built constraint system: either the
// reserved constant-one wire, a public input, or a private (witness-only)
// allocation.
type Variable struct {
	id     int
	public bool
}

// Term is one addend of a LinearCombination: a coefficient times a
// variable's wire value.
type Term struct {
	Coeff Element
	Var   Variable
}

// LinearCombination is a weighted sum of wires, the operand shape every
// R1CS constraint's three sides (`a * b = c`) takes.
type LinearCombination struct {
	Terms []Term
}

// LC constructs a linear combination from a coefficient/variable pair.
func LC(coeff Element, v Variable) LinearCombination {
	return LinearCombination{Terms: []Term{{Coeff: coeff, Var: v}}}
}

// Constant builds a linear combination equal to a constant, expressed as a
// multiple of the system's constant-one wire.
func Constant(c Element, one Variable) LinearCombination {
	return LC(c, one)
}

// Add appends a weighted variable to the combination, returning the
// extended combination.
func (l LinearCombination) Add(coeff Element, v Variable) LinearCombination {
	return LinearCombination{Terms: append(append([]Term{}, l.Terms...), Term{Coeff: coeff, Var: v})}
}

// Constraint is one rank-1 constraint `A * B = C` together with the
// namespace label it was enforced under (spec.md §6: constraint labels
// follow the `"enforce <lhs> <op> <rhs> <line>:<col>"` format produced by
// pkg/integer's gadgets).
type Constraint struct {
	Label   string
	A, B, C LinearCombination
}

// System is a namespace-scoped handle onto a growing rank-1 constraint
// system, modeled on the original's `ConstraintSystem::ns` pattern
// (ConstraintSystem::namespace in snarkvm_r1cs) and on the teacher's
// field-element wrapper for the underlying field. A System allocates
// variables, tracks their witness values for local evaluation/testing, and
// accumulates enforced constraints; namespacing is purely a labeling
// convenience; every System sharing a *state points at the same
// constraint list.
type System struct {
	state  *state
	prefix string
}

type state struct {
	nextVar     int
	values      map[Variable]Element
	constraints []Constraint
	one         Variable
}

// NewSystem constructs an empty constraint system with its constant-one
// wire already allocated and fixed to 1.
func NewSystem() *System {
	st := &state{values: make(map[Variable]Element)}
	one := Variable{id: st.nextVar, public: true}
	st.nextVar++
	st.values[one] = One()
	st.one = one

	return &System{state: st}
}

// One returns the system's constant-one wire, used as the variable side of
// a LinearCombination representing a plain constant.
func (s *System) One() Variable {
	return s.state.one
}

// Namespace returns a handle scoped under an additional label component,
// matching the original's `cs.ns(|| "label")` nesting; constraint labels
// enforced through the returned handle are prefixed with name.
func (s *System) Namespace(name string) *System {
	prefix := name
	if s.prefix != "" {
		prefix = s.prefix + "/" + name
	}

	return &System{state: s.state, prefix: prefix}
}

// AllocPrivate allocates a fresh witness-only variable with the given
// value, not exposed as a public input.
func (s *System) AllocPrivate(value Element) Variable {
	v := Variable{id: s.state.nextVar}
	s.state.nextVar++
	s.state.values[v] = value

	return v
}

// AllocPublic allocates a fresh public-input variable with the given value.
func (s *System) AllocPublic(value Element) Variable {
	v := Variable{id: s.state.nextVar, public: true}
	s.state.nextVar++
	s.state.values[v] = value

	return v
}

// Value returns the witness value currently assigned to v.
func (s *System) Value(v Variable) Element {
	return s.state.values[v]
}

// Evaluate computes a linear combination's value against the system's
// current witness assignment.
func (s *System) Evaluate(l LinearCombination) Element {
	acc := Zero()

	for _, t := range l.Terms {
		acc = acc.Add(t.Coeff.Mul(s.Value(t.Var)))
	}

	return acc
}

// Enforce records the constraint `a * b = c` under the current namespace,
// labeled by suffix (typically a gadget's "enforce <lhs> <op> <rhs>
// <line>:<col>" namespace string, per spec.md §6).
func (s *System) Enforce(suffix string, a, b, c LinearCombination) {
	label := suffix
	if s.prefix != "" {
		label = s.prefix + "/" + suffix
	}

	s.state.constraints = append(s.state.constraints, Constraint{Label: label, A: a, B: b, C: c})
}

// Constraints returns every constraint enforced so far, in enforcement
// order.
func (s *System) Constraints() []Constraint {
	return s.state.constraints
}

// IsSatisfied checks every enforced constraint against the current witness
// assignment, returning the label of the first violated constraint if any.
func (s *System) IsSatisfied() (bool, string) {
	for _, c := range s.state.constraints {
		a, b, cc := s.Evaluate(c.A), s.Evaluate(c.B), s.Evaluate(c.C)
		if !a.Mul(b).Equal(cc) {
			return false, c.Label
		}
	}

	return true, ""
}

func (v Variable) String() string {
	kind := "priv"
	if v.public {
		kind = "pub"
	}

	return fmt.Sprintf("%s#%d", kind, v.id)
}
