package reduce

import (
	"github.com/npty/leo/pkg/ast"
	"github.com/npty/leo/pkg/source"
)

// Director walks an AST in deterministic preorder and delegates per-node
// rewriting to a Reducer. For every node visited, the director (a)
// recursively reduces the node's children first, (b) constructs the
// tentative new node from the reduced children, (c) calls the reducer's
// hook with both the original node and the tentative new node; the hook may
// return an entirely different node, and the director never re-inspects
// reduced children after the hook runs (spec.md §4.3).
//
// The director carries exactly one piece of traversal state: inCircuit,
// true while traversing the body of a circuit member, propagated to every
// hook. Traversal order matches declaration order of every ordered
// container, so two directors walking the same AST visit nodes in the same
// order (spec.md §5, determinism).
type Director struct {
	reducer   Reducer
	inCircuit bool
}

// NewDirector constructs a director that drives the given reducer.
func NewDirector(reducer Reducer) *Director {
	return &Director{reducer: reducer}
}

// ReduceType reduces a type node. Array element types and tuple element
// types are reduced first (children before parent). span is the span of the
// context the type occurs in (e.g. the enclosing cast or declaration); it is
// passed unchanged to the ReduceType hook (the canonicalizer reports its
// errors at it).
func (d *Director) ReduceType(t ast.Type, span source.Span) (ast.Type, error) {
	var (
		new_ ast.Type
		err  error
	)

	switch old := t.(type) {
	case ast.ArrayType:
		elem, err := d.ReduceType(old.Element, span)
		if err != nil {
			return nil, err
		}

		new_ = ast.ArrayType{Element: elem, Dimensions: old.Dimensions}
	case ast.TupleType:
		elems := make([]ast.Type, len(old.Elements))

		for i, e := range old.Elements {
			if elems[i], err = d.ReduceType(e, span); err != nil {
				return nil, err
			}
		}

		new_ = ast.TupleType{Elements: elems}
	default:
		new_ = t
	}

	return d.reducer.ReduceType(t, new_, d.inCircuit, span)
}

// ReduceExpr reduces an expression node, recursing into its children first.
func (d *Director) ReduceExpr(e ast.Expr) (ast.Expr, error) {
	switch old := e.(type) {
	case *ast.IdentifierExpr:
		new_ := *old
		return d.reducer.ReduceIdentifierExpr(old, &new_, d.inCircuit)

	case *ast.LiteralExpr:
		new_ := *old
		return d.reducer.ReduceLiteralExpr(old, &new_, d.inCircuit)

	case *ast.UnaryExpr:
		arg, err := d.ReduceExpr(old.Arg)
		if err != nil {
			return nil, err
		}

		new_ := *old
		new_.Arg = arg

		return d.reducer.ReduceUnaryExpr(old, &new_, d.inCircuit)

	case *ast.BinaryExpr:
		lhs, err := d.ReduceExpr(old.Lhs)
		if err != nil {
			return nil, err
		}

		rhs, err := d.ReduceExpr(old.Rhs)
		if err != nil {
			return nil, err
		}

		new_ := *old
		new_.Lhs, new_.Rhs = lhs, rhs

		return d.reducer.ReduceBinaryExpr(old, &new_, d.inCircuit)

	case *ast.TernaryExpr:
		cond, err := d.ReduceExpr(old.Cond)
		if err != nil {
			return nil, err
		}

		then, err := d.ReduceExpr(old.Then)
		if err != nil {
			return nil, err
		}

		else_, err := d.ReduceExpr(old.Else)
		if err != nil {
			return nil, err
		}

		new_ := *old
		new_.Cond, new_.Then, new_.Else = cond, then, else_

		return d.reducer.ReduceTernaryExpr(old, &new_, d.inCircuit)

	case *ast.CastExpr:
		arg, err := d.ReduceExpr(old.Arg)
		if err != nil {
			return nil, err
		}

		ty, err := d.ReduceType(old.TargetType, old.NodeSpan)
		if err != nil {
			return nil, err
		}

		new_ := *old
		new_.Arg, new_.TargetType = arg, ty

		return d.reducer.ReduceCastExpr(old, &new_, d.inCircuit)

	case *ast.ArrayInlineExpr:
		elems, err := d.reduceExprSlice(old.Elements)
		if err != nil {
			return nil, err
		}

		new_ := *old
		new_.Elements = elems

		return d.reducer.ReduceArrayInlineExpr(old, &new_, d.inCircuit)

	case *ast.ArrayInitExpr:
		value, err := d.ReduceExpr(old.Value)
		if err != nil {
			return nil, err
		}

		dims, err := d.reduceExprSlice(old.Dimensions)
		if err != nil {
			return nil, err
		}

		new_ := *old
		new_.Value, new_.Dimensions = value, dims

		return d.reducer.ReduceArrayInitExpr(old, &new_, d.inCircuit)

	case *ast.ArrayAccessExpr:
		arr, err := d.ReduceExpr(old.Array)
		if err != nil {
			return nil, err
		}

		idx, err := d.ReduceExpr(old.Index)
		if err != nil {
			return nil, err
		}

		new_ := *old
		new_.Array, new_.Index = arr, idx

		return d.reducer.ReduceArrayAccessExpr(old, &new_, d.inCircuit)

	case *ast.ArrayRangeAccessExpr:
		arr, err := d.ReduceExpr(old.Array)
		if err != nil {
			return nil, err
		}

		var start, end ast.Expr

		if old.Start != nil {
			if start, err = d.ReduceExpr(old.Start); err != nil {
				return nil, err
			}
		}

		if old.End != nil {
			if end, err = d.ReduceExpr(old.End); err != nil {
				return nil, err
			}
		}

		new_ := *old
		new_.Array, new_.Start, new_.End = arr, start, end

		return d.reducer.ReduceArrayRangeAccessExpr(old, &new_, d.inCircuit)

	case *ast.TupleInitExpr:
		elems, err := d.reduceExprSlice(old.Elements)
		if err != nil {
			return nil, err
		}

		new_ := *old
		new_.Elements = elems

		return d.reducer.ReduceTupleInitExpr(old, &new_, d.inCircuit)

	case *ast.TupleAccessExpr:
		tup, err := d.ReduceExpr(old.Tuple)
		if err != nil {
			return nil, err
		}

		new_ := *old
		new_.Tuple = tup

		return d.reducer.ReduceTupleAccessExpr(old, &new_, d.inCircuit)

	case *ast.CircuitInitExpr:
		members := make([]ast.CircuitInitMember, len(old.Members))

		for i, m := range old.Members {
			v, err := d.ReduceExpr(m.Value)
			if err != nil {
				return nil, err
			}

			members[i] = ast.CircuitInitMember{Name: m.Name, Value: v}
		}

		new_ := *old
		new_.Members = members

		return d.reducer.ReduceCircuitInitExpr(old, &new_, d.inCircuit)

	case *ast.CircuitMemberAccessExpr:
		var (
			receiver ast.Expr
			err      error
		)

		if old.Receiver != nil {
			if receiver, err = d.ReduceExpr(old.Receiver); err != nil {
				return nil, err
			}
		}

		new_ := *old
		new_.Receiver = receiver

		return d.reducer.ReduceCircuitMemberAccessExpr(old, &new_, d.inCircuit)

	case *ast.CircuitStaticFunctionAccessExpr:
		new_ := *old
		return d.reducer.ReduceCircuitStaticFunctionAccessExpr(old, &new_, d.inCircuit)

	case *ast.CallExpr:
		target, err := d.ReduceExpr(old.Target)
		if err != nil {
			return nil, err
		}

		args, err := d.reduceExprSlice(old.Arguments)
		if err != nil {
			return nil, err
		}

		new_ := *old
		new_.Target, new_.Arguments = target, args

		return d.reducer.ReduceCallExpr(old, &new_, d.inCircuit)

	default:
		panic("reduce: unreachable expression variant")
	}
}

func (d *Director) reduceExprSlice(in []ast.Expr) ([]ast.Expr, error) {
	out := make([]ast.Expr, len(in))

	for i, e := range in {
		reduced, err := d.ReduceExpr(e)
		if err != nil {
			return nil, err
		}

		out[i] = reduced
	}

	return out, nil
}

// ReduceStmt reduces a statement node, recursing into its children first.
func (d *Director) ReduceStmt(s ast.Stmt) (ast.Stmt, error) {
	switch old := s.(type) {
	case *ast.ReturnStmt:
		value, err := d.ReduceExpr(old.Value)
		if err != nil {
			return nil, err
		}

		new_ := *old
		new_.Value = value

		return d.reducer.ReduceReturnStmt(old, &new_, d.inCircuit)

	case *ast.DefinitionStmt:
		value, err := d.ReduceExpr(old.Value)
		if err != nil {
			return nil, err
		}

		var (
			declared ast.Type
			err2     error
		)

		if old.DeclaredType != nil {
			if declared, err2 = d.ReduceType(old.DeclaredType, old.NodeSpan); err2 != nil {
				return nil, err2
			}
		}

		new_ := *old
		new_.Value, new_.DeclaredType = value, declared

		return d.reducer.ReduceDefinitionStmt(old, &new_, d.inCircuit)

	case *ast.AssignStmt:
		target, err := d.reduceAssignee(old.Target)
		if err != nil {
			return nil, err
		}

		value, err := d.ReduceExpr(old.Value)
		if err != nil {
			return nil, err
		}

		new_ := *old
		new_.Target, new_.Value = target, value

		return d.reducer.ReduceAssignStmt(old, &new_, d.inCircuit)

	case *ast.ConditionalStmt:
		cond, err := d.ReduceExpr(old.Cond)
		if err != nil {
			return nil, err
		}

		then, err := d.ReduceStmt(old.Then)
		if err != nil {
			return nil, err
		}

		var else_ ast.Stmt

		if old.Else != nil {
			if else_, err = d.ReduceStmt(old.Else); err != nil {
				return nil, err
			}
		}

		new_ := *old
		new_.Cond = cond
		new_.Then = then.(*ast.BlockStmt)
		new_.Else = else_

		return d.reducer.ReduceConditionalStmt(old, &new_, d.inCircuit)

	case *ast.IterationStmt:
		start, err := d.ReduceExpr(old.Start)
		if err != nil {
			return nil, err
		}

		stop, err := d.ReduceExpr(old.Stop)
		if err != nil {
			return nil, err
		}

		body, err := d.ReduceStmt(old.Body)
		if err != nil {
			return nil, err
		}

		new_ := *old
		new_.Start, new_.Stop = start, stop
		new_.Body = body.(*ast.BlockStmt)

		return d.reducer.ReduceIterationStmt(old, &new_, d.inCircuit)

	case *ast.ConsoleStmt:
		args, err := d.reduceExprSlice(old.Arguments)
		if err != nil {
			return nil, err
		}

		new_ := *old
		new_.Arguments = args

		return d.reducer.ReduceConsoleStmt(old, &new_, d.inCircuit)

	case *ast.ExpressionStmt:
		value, err := d.ReduceExpr(old.Value)
		if err != nil {
			return nil, err
		}

		new_ := *old
		new_.Value = value

		return d.reducer.ReduceExpressionStmt(old, &new_, d.inCircuit)

	case *ast.BlockStmt:
		stmts := make([]ast.Stmt, len(old.Statements))

		for i, s := range old.Statements {
			reduced, err := d.ReduceStmt(s)
			if err != nil {
				return nil, err
			}

			stmts[i] = reduced
		}

		new_ := *old
		new_.Statements = stmts

		return d.reducer.ReduceBlockStmt(old, &new_, d.inCircuit)

	default:
		panic("reduce: unreachable statement variant")
	}
}

func (d *Director) reduceAssignee(a ast.Assignee) (ast.Assignee, error) {
	accesses := make([]ast.AssigneeAccess, len(a.Accesses))

	for i, acc := range a.Accesses {
		reduced := acc

		var err error

		if acc.Index != nil {
			if reduced.Index, err = d.ReduceExpr(acc.Index); err != nil {
				return ast.Assignee{}, err
			}
		}

		if acc.Start != nil {
			if reduced.Start, err = d.ReduceExpr(acc.Start); err != nil {
				return ast.Assignee{}, err
			}
		}

		if acc.End != nil {
			if reduced.End, err = d.ReduceExpr(acc.End); err != nil {
				return ast.Assignee{}, err
			}
		}

		accesses[i] = reduced
	}

	return ast.Assignee{Name: a.Name, Accesses: accesses}, nil
}

// ReduceFunction reduces a function declaration's body, return type and
// input types, setting inCircuit for all of them if inCircuit is true (i.e.
// this function is a circuit method) — a method's return/parameter types
// can themselves reference `Self`, so inCircuit must stay set until every
// part of the function has been reduced, not just its body.
func (d *Director) ReduceFunction(f *ast.Function, inCircuit bool) (*ast.Function, error) {
	prev := d.inCircuit
	d.inCircuit = inCircuit

	new_, err := d.reduceFunctionParts(f, inCircuit)

	d.inCircuit = prev

	if err != nil {
		return nil, err
	}

	return d.reducer.ReduceFunction(f, new_, inCircuit)
}

func (d *Director) reduceFunctionParts(f *ast.Function, inCircuit bool) (*ast.Function, error) {
	body, err := d.ReduceStmt(f.Body)
	if err != nil {
		return nil, err
	}

	var returnType ast.Type

	if f.ReturnType != nil {
		var err2 error
		if returnType, err2 = d.ReduceType(f.ReturnType, f.NodeSpan); err2 != nil {
			return nil, err2
		}
	}

	inputs := make([]ast.FunctionInput, len(f.Inputs))

	for i, in := range f.Inputs {
		inputs[i] = in

		if in.DeclaredType != nil {
			reduced, err := d.ReduceType(in.DeclaredType, in.InputSpan)
			if err != nil {
				return nil, err
			}

			inputs[i].DeclaredType = reduced
		}
	}

	new_ := *f
	new_.Body = body.(*ast.BlockStmt)
	new_.ReturnType = returnType
	new_.Inputs = inputs

	return &new_, nil
}

// ReduceCircuit reduces a circuit's members in declaration order, with
// inCircuit set for every method body.
func (d *Director) ReduceCircuit(c *ast.Circuit) (*ast.Circuit, error) {
	members := make([]ast.CircuitMember, len(c.Members))

	for i, m := range c.Members {
		if !m.IsMethod {
			reducedType, err := d.ReduceType(m.Field.DeclaredType, m.Field.FieldSpan)
			if err != nil {
				return nil, err
			}

			field := *m.Field
			field.DeclaredType = reducedType
			members[i] = ast.CircuitMember{Field: &field}

			continue
		}

		reducedMethod, err := d.ReduceFunction(m.Method, true)
		if err != nil {
			return nil, err
		}

		members[i] = ast.CircuitMember{IsMethod: true, Method: reducedMethod}
	}

	new_ := *c
	new_.Members = members

	return d.reducer.ReduceCircuit(c, &new_)
}

// ReduceProgram reduces a program's circuits then functions, in declaration
// order, matching the ordering invariant of spec.md §3.
func (d *Director) ReduceProgram(p *ast.Program) (*ast.Program, error) {
	new_ := ast.NewProgram(p.NodeSpan)
	new_.Imports = p.Imports
	new_.ExpectedInputs = p.ExpectedInputs

	for _, c := range p.OrderedCircuits() {
		reduced, err := d.ReduceCircuit(c)
		if err != nil {
			return nil, err
		}

		new_.AddCircuit(reduced)
	}

	for _, f := range p.OrderedFunctions() {
		reduced, err := d.ReduceFunction(f, false)
		if err != nil {
			return nil, err
		}

		new_.AddFunction(reduced)
	}

	return d.reducer.ReduceProgram(p, new_)
}
