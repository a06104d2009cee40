// Package synthesize is the per-function constraint-synthesis engine
// spec.md §2 names as the third core subsystem: it walks a single
// resolved, typed asg.Function and drives pkg/integer's gadgets over a
// pkg/r1cs.System, producing a satisfied-or-not R1CS for that function's
// execution on a concrete input record (spec.md §8's concrete scenarios 1,
// 2 and 3 are exactly this: "produces a satisfied R1CS whose output
// register equals ...").
//
// Every ASG expression evaluates to a host-resolved Value (either an
// allocated/constant *integer.Integer, or a plain bool for the language's
// boolean type), mirroring pkg/integer's own architecture: Eq, Lt and
// ConditionallySelect are already host-resolvable there because every
// Integer always carries a concrete tracked pattern, so control flow
// (if/else, ternary, loop bounds) can be decided on the host while still
// emitting real constraints for every arithmetic step along the way.
//
// Scope. This driver covers the language's scalar core: bool and the ten
// integer kinds, arithmetic, comparisons, unary/ternary, variable
// definitions/assignment, conditionals, bounded iteration and console
// assertions. Aggregate types (array, tuple, circuit) and calls are part of
// the data model (spec.md §3) but outside the three core subsystems this
// package exists to wire together; a program using them fails with a
// explicit *UnsupportedError rather than silently producing a wrong
// circuit. Field, group, address and char values are not lowered either:
// a parameter or literal of one of those types also fails with
// *UnsupportedError.
package synthesize

import (
	"math/big"

	"github.com/npty/leo/pkg/asg"
	"github.com/npty/leo/pkg/ast"
	"github.com/npty/leo/pkg/input"
	"github.com/npty/leo/pkg/integer"
	"github.com/npty/leo/pkg/r1cs"
	"github.com/npty/leo/pkg/source"
)

// Value is the closed set of runtime values this driver operates on: an
// integer-domain value, or a plain host boolean.
type Value interface {
	isValue()
}

// IntValue wraps an *integer.Integer as a synthesis Value.
type IntValue struct {
	*integer.Integer
}

func (IntValue) isValue() {}

// BoolValue is a host-tracked boolean. The language has no dedicated
// boolean constraint gadget in this core (spec.md §4.1-§4.2 specify only
// the integer domain), so booleans never allocate R1CS variables here;
// they exist purely to drive control flow, exactly as Eq/Lt's bool results
// already do inside pkg/integer.
type BoolValue bool

func (BoolValue) isValue() {}

// env maps a function's local VarIDs (parameters, let-bindings, loop and
// assignment targets) to their current Value.
type env map[asg.VarID]Value

// synthesizer holds the state threaded through one function's synthesis.
type synthesizer struct {
	graph *asg.Graph
	cs    *r1cs.System
	env   env
}

// Synthesize compiles one function of graph into R1CS constraints against
// cs, given the concrete values inputs supplies for its declared
// parameters, and returns the function's return value (nil for a function
// with no declared return type).
//
// This is the composition spec.md §2 names: "per-function constraint
// synthesis using the integer domain → R1CS". Each call starts from a
// caller-supplied cs so that, in principle, multiple functions (e.g. a
// circuit's methods, called from the entry point) could be synthesized
// into one shared constraint system; this driver itself only resolves a
// single named function's body (see the package doc for the call-graph
// limitation).
func Synthesize(cs *r1cs.System, graph *asg.Graph, functionName string, inputs input.Record) (Value, error) {
	fn, ok := graph.Functions[functionName]
	if !ok {
		return nil, &FunctionUnresolvedError{Name: functionName}
	}

	s := &synthesizer{graph: graph, cs: cs, env: env{}}

	for _, p := range fn.Inputs {
		if p.IsSelf {
			return nil, &UnsupportedError{Construct: "self receiver", Span: fn.Span}
		}

		binding := graph.Arena.Get(p.ID)

		v, ok := inputs[p.Name]
		if !ok {
			return nil, &MissingInputError{Name: p.Name, Span: binding.Span}
		}

		value, err := s.allocateParam(p, v, binding.Span)
		if err != nil {
			return nil, err
		}

		s.env[p.ID] = value
	}

	result, returned, err := s.execBlock(fn.Body)
	if err != nil {
		return nil, err
	}

	if fn.ReturnType != nil && !returned {
		return nil, &MissingReturnError{Name: fn.Name, Span: fn.Span}
	}

	return result, nil
}

func (s *synthesizer) allocateParam(p asg.Param, v input.Value, span source.Span) (Value, error) {
	switch t := p.Type.(type) {
	case ast.IntType:
		iv, ok := v.(input.Integer)
		if !ok || iv.Kind != t.Kind {
			return nil, &MissingInputError{Name: p.Name, Span: span}
		}

		allocated, err := integer.FromInput(s.cs, t.Kind, p.Name, iv, span)
		if err != nil {
			return nil, err
		}

		return IntValue{allocated}, nil

	case ast.BoolType:
		bv, ok := v.(input.Boolean)
		if !ok {
			return nil, &MissingInputError{Name: p.Name, Span: span}
		}

		return BoolValue(bool(bv)), nil

	default:
		return nil, &UnsupportedError{Construct: "parameter of type " + p.Type.String(), Span: span}
	}
}

// execBlock runs every statement of b in order, stopping early at the
// first executed return statement (returned == true), matching the
// language's imperative control flow.
func (s *synthesizer) execBlock(b *asg.BlockStmt) (Value, bool, error) {
	for _, stmt := range b.Statements {
		value, returned, err := s.execStmt(stmt)
		if err != nil || returned {
			return value, returned, err
		}
	}

	return nil, false, nil
}

func (s *synthesizer) execStmt(stmt asg.Stmt) (Value, bool, error) {
	switch st := stmt.(type) {
	case *asg.ReturnStmt:
		value, err := s.evalExpr(st.Value)
		return value, true, err

	case *asg.DefinitionStmt:
		if len(st.Names) != 1 {
			return nil, false, &UnsupportedError{Construct: "tuple-destructuring definition", Span: st.Span()}
		}

		value, err := s.evalExpr(st.Value)
		if err != nil {
			return nil, false, err
		}

		s.env[st.Names[0]] = value

		return nil, false, nil

	case *asg.AssignStmt:
		if len(st.Accesses) > 0 {
			return nil, false, &UnsupportedError{Construct: "array/tuple/member assignment", Span: st.Span()}
		}

		value, err := s.evalExpr(st.Value)
		if err != nil {
			return nil, false, err
		}

		s.env[st.Target] = value

		return nil, false, nil

	case *asg.ConditionalStmt:
		cond, err := s.evalExpr(st.Cond)
		if err != nil {
			return nil, false, err
		}

		b, ok := cond.(BoolValue)
		if !ok {
			return nil, false, &TypeMismatchError{Expected: "bool condition", Span: st.Span()}
		}

		if bool(b) {
			return s.execBlock(st.Then)
		}

		if st.Else != nil {
			return s.execStmt(st.Else)
		}

		return nil, false, nil

	case *asg.IterationStmt:
		return s.execIteration(st)

	case *asg.ConsoleStmt:
		return nil, false, s.execConsole(st)

	case *asg.ExpressionStmt:
		_, err := s.evalExpr(st.Value)
		return nil, false, err

	case *asg.BlockStmt:
		return s.execBlock(st)

	default:
		return nil, false, &UnsupportedError{Construct: "statement", Span: stmt.Span()}
	}
}

func (s *synthesizer) execIteration(st *asg.IterationStmt) (Value, bool, error) {
	start, err := s.evalExpr(st.Start)
	if err != nil {
		return nil, false, err
	}

	stop, err := s.evalExpr(st.Stop)
	if err != nil {
		return nil, false, err
	}

	startInt, ok := start.(IntValue)
	if !ok {
		return nil, false, &TypeMismatchError{Expected: "integer loop bound", Span: st.Span()}
	}

	stopInt, ok := stop.(IntValue)
	if !ok {
		return nil, false, &TypeMismatchError{Expected: "integer loop bound", Span: st.Span()}
	}

	lo, err := startInt.ToUsize(st.Span())
	if err != nil {
		return nil, false, err
	}

	hi, err := stopInt.ToUsize(st.Span())
	if err != nil {
		return nil, false, err
	}

	kind := startInt.Kind()

	for i := lo; i < hi; i++ {
		s.env[st.Variable] = IntValue{integer.NewConstant(kind, new(big.Int).SetUint64(uint64(i)))}

		value, returned, err := s.execBlock(st.Body)
		if err != nil || returned {
			return value, returned, err
		}
	}

	return nil, false, nil
}

func (s *synthesizer) execConsole(st *asg.ConsoleStmt) error {
	if st.Op != ast.ConsoleAssert {
		return nil
	}

	if len(st.Arguments) != 1 {
		return &UnsupportedError{Construct: "console.assert arity", Span: st.Span()}
	}

	cond, err := s.evalExpr(st.Arguments[0])
	if err != nil {
		return err
	}

	b, ok := cond.(BoolValue)
	if !ok {
		return &TypeMismatchError{Expected: "bool assertion", Span: st.Span()}
	}

	if !bool(b) {
		return &AssertionFailedError{Span: st.Span()}
	}

	return nil
}

func (s *synthesizer) evalExpr(e asg.Expr) (Value, error) {
	switch ex := e.(type) {
	case *asg.VarRefExpr:
		v, ok := s.env[ex.ID]
		if !ok {
			return nil, &UnboundVariableError{Name: ex.Name, Span: ex.Span()}
		}

		return v, nil

	case *asg.ConstBoolExpr:
		return BoolValue(ex.Value), nil

	case *asg.ConstIntExpr:
		value, ok := new(big.Int).SetString(ex.Text, 10)
		if !ok {
			return nil, &integer.InvalidIntegerError{Text: ex.Text, Span: ex.Span()}
		}

		return IntValue{integer.NewConstant(ex.Kind, value)}, nil

	case *asg.UnaryExpr:
		return s.evalUnary(ex)

	case *asg.BinaryExpr:
		return s.evalBinary(ex)

	case *asg.TernaryExpr:
		return s.evalTernary(ex)

	default:
		return nil, &UnsupportedError{Construct: "expression", Span: e.Span()}
	}
}

func (s *synthesizer) evalUnary(ex *asg.UnaryExpr) (Value, error) {
	arg, err := s.evalExpr(ex.Arg)
	if err != nil {
		return nil, err
	}

	switch ex.Op {
	case ast.OpNegate:
		iv, ok := arg.(IntValue)
		if !ok {
			return nil, &TypeMismatchError{Expected: "integer operand for unary -", Span: ex.Span()}
		}

		negated, err := integer.Negate(iv.Integer, ex.Span())
		if err != nil {
			return nil, err
		}

		return IntValue{negated}, nil

	case ast.OpNot:
		bv, ok := arg.(BoolValue)
		if !ok {
			return nil, &TypeMismatchError{Expected: "bool operand for !", Span: ex.Span()}
		}

		return BoolValue(!bool(bv)), nil

	default:
		return nil, &UnsupportedError{Construct: "unary operator", Span: ex.Span()}
	}
}

func (s *synthesizer) evalTernary(ex *asg.TernaryExpr) (Value, error) {
	cond, err := s.evalExpr(ex.Cond)
	if err != nil {
		return nil, err
	}

	b, ok := cond.(BoolValue)
	if !ok {
		return nil, &TypeMismatchError{Expected: "bool ternary condition", Span: ex.Span()}
	}

	// Both branches are evaluated regardless of cond: a circuit must
	// allocate the same shape of constraints on every witness, exactly the
	// reasoning behind pkg/integer's ConditionallySelect.
	thenVal, err := s.evalExpr(ex.Then)
	if err != nil {
		return nil, err
	}

	elseVal, err := s.evalExpr(ex.Else)
	if err != nil {
		return nil, err
	}

	switch t := thenVal.(type) {
	case IntValue:
		f, ok := elseVal.(IntValue)
		if !ok {
			return nil, &TypeMismatchError{Expected: "matching ternary branch kinds", Span: ex.Span()}
		}

		selected, err := integer.ConditionallySelect(bool(b), t.Integer, f.Integer, ex.Span())
		if err != nil {
			return nil, err
		}

		return IntValue{selected}, nil

	case BoolValue:
		f, ok := elseVal.(BoolValue)
		if !ok {
			return nil, &TypeMismatchError{Expected: "matching ternary branch kinds", Span: ex.Span()}
		}

		if b {
			return t, nil
		}

		return f, nil

	default:
		return nil, &UnsupportedError{Construct: "ternary branch value", Span: ex.Span()}
	}
}

func (s *synthesizer) evalBinary(ex *asg.BinaryExpr) (Value, error) {
	lhs, err := s.evalExpr(ex.Lhs)
	if err != nil {
		return nil, err
	}

	rhs, err := s.evalExpr(ex.Rhs)
	if err != nil {
		return nil, err
	}

	switch ex.Op {
	case ast.OpAnd, ast.OpOr:
		lb, ok := lhs.(BoolValue)
		rb, ok2 := rhs.(BoolValue)

		if !ok || !ok2 {
			return nil, &TypeMismatchError{Expected: "bool operands", Span: ex.Span()}
		}

		if ex.Op == ast.OpAnd {
			return BoolValue(bool(lb) && bool(rb)), nil
		}

		return BoolValue(bool(lb) || bool(rb)), nil

	case ast.OpEq, ast.OpNeq, ast.OpLt, ast.OpLe, ast.OpGt, ast.OpGe:
		return s.evalComparison(ex, lhs, rhs)

	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpPow:
		li, ok := lhs.(IntValue)
		ri, ok2 := rhs.(IntValue)

		if !ok || !ok2 {
			return nil, &TypeMismatchError{Expected: "integer operands", Span: ex.Span()}
		}

		var (
			result *integer.Integer
			err    error
		)

		switch ex.Op {
		case ast.OpAdd:
			result, err = integer.Add(li.Integer, ri.Integer, ex.Span())
		case ast.OpSub:
			result, err = integer.Sub(li.Integer, ri.Integer, ex.Span())
		case ast.OpMul:
			result, err = integer.Mul(li.Integer, ri.Integer, ex.Span())
		case ast.OpDiv:
			result, err = integer.Div(li.Integer, ri.Integer, ex.Span())
		case ast.OpPow:
			result, err = integer.Pow(li.Integer, ri.Integer, ex.Span())
		}

		if err != nil {
			return nil, err
		}

		return IntValue{result}, nil

	default:
		return nil, &UnsupportedError{Construct: "binary operator", Span: ex.Span()}
	}
}

func (s *synthesizer) evalComparison(ex *asg.BinaryExpr, lhs, rhs Value) (Value, error) {
	if lb, ok := lhs.(BoolValue); ok {
		rb, ok2 := rhs.(BoolValue)
		if !ok2 {
			return nil, &TypeMismatchError{Expected: "matching comparison operand kinds", Span: ex.Span()}
		}

		switch ex.Op {
		case ast.OpEq:
			return BoolValue(lb == rb), nil
		case ast.OpNeq:
			return BoolValue(lb != rb), nil
		default:
			return nil, &UnsupportedError{Construct: "ordered comparison on bool", Span: ex.Span()}
		}
	}

	li, ok := lhs.(IntValue)
	ri, ok2 := rhs.(IntValue)

	if !ok || !ok2 {
		return nil, &TypeMismatchError{Expected: "matching comparison operand kinds", Span: ex.Span()}
	}

	eq, err := integer.Eq(li.Integer, ri.Integer, ex.Span())
	if err != nil {
		return nil, err
	}

	lt, err := integer.Lt(li.Integer, ri.Integer, ex.Span())
	if err != nil {
		return nil, err
	}

	switch ex.Op {
	case ast.OpEq:
		return BoolValue(eq), nil
	case ast.OpNeq:
		return BoolValue(!eq), nil
	case ast.OpLt:
		return BoolValue(lt), nil
	case ast.OpLe:
		return BoolValue(lt || eq), nil
	case ast.OpGt:
		return BoolValue(!lt && !eq), nil
	case ast.OpGe:
		return BoolValue(!lt), nil
	default:
		return nil, &UnsupportedError{Construct: "comparison operator", Span: ex.Span()}
	}
}
