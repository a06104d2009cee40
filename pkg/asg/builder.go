package asg

import (
	"github.com/npty/leo/pkg/ast"
	"github.com/npty/leo/pkg/source"
)

// Builder walks a canonicalized *ast.Program once, resolving every name
// reference to a VarID or to a Graph-level circuit/function, inferring and
// checking every expression's type, and producing the Graph (spec.md
// §4.5). A Builder is single-use: construct one with NewBuilder per build
// and discard it once Build returns.
type Builder struct {
	program *ast.Program
	arena   *Arena
	graph   *Graph

	currentCircuit string
	currentScope   *scope
}

// NewBuilder prepares a builder over a canonicalized program.
func NewBuilder(program *ast.Program) *Builder {
	return &Builder{
		program: program,
		arena:   NewArena(),
		graph: &Graph{
			Circuits:  make(map[string]*Circuit),
			Functions: make(map[string]*Function),
		},
	}
}

// Build resolves the whole program into a Graph, or returns the first
// NameUnresolvedError/TypeMismatchError/ArityMismatchError/
// DuplicateMemberError it encounters.
func (b *Builder) Build() (*Graph, error) {
	b.graph.Arena = b.arena

	for _, circuit := range b.program.OrderedCircuits() {
		resolved, err := b.buildCircuit(circuit)
		if err != nil {
			return nil, err
		}

		b.graph.CircuitNames = append(b.graph.CircuitNames, circuit.Name.Name)
		b.graph.Circuits[circuit.Name.Name] = resolved
	}

	for _, fn := range b.program.OrderedFunctions() {
		b.currentCircuit = ""

		resolved, err := b.buildFunction(fn, nil)
		if err != nil {
			return nil, err
		}

		b.graph.FunctionNames = append(b.graph.FunctionNames, fn.Name.Name)
		b.graph.Functions[fn.Name.Name] = resolved
	}

	return b.graph, nil
}

func (b *Builder) buildCircuit(c *ast.Circuit) (*Circuit, error) {
	b.currentCircuit = c.Name.Name
	seen := make(map[string]bool, len(c.Members))
	out := &Circuit{Name: c.Name.Name, Span: c.Span()}

	for _, m := range c.Members {
		var name string
		if m.IsMethod {
			name = m.Method.Name.Name
		} else {
			name = m.Field.Name.Name
		}

		if seen[name] {
			return nil, &DuplicateMemberError{Circuit: c.Name.Name, Member: name, Span: c.Span()}
		}
		seen[name] = true

		if m.IsMethod {
			fn, err := b.buildFunction(m.Method, &c.Name.Name)
			if err != nil {
				return nil, err
			}

			out.Members = append(out.Members, Member{IsMethod: true, Method: fn})
		} else {
			out.Members = append(out.Members, Member{
				Field: &Field{Name: name, Type: m.Field.DeclaredType, Span: m.Field.Span()},
			})
		}
	}

	return out, nil
}

func (b *Builder) buildFunction(fn *ast.Function, selfCircuit *string) (*Function, error) {
	funcScope := newScope(nil)
	prevScope := b.currentScope
	b.currentScope = funcScope
	defer func() { b.currentScope = prevScope }()

	out := &Function{
		Name:        fn.Name.Name,
		Annotations: fn.Annotations,
		ReturnType:  fn.ReturnType,
		Span:        fn.Span(),
	}

	for _, in := range fn.Inputs {
		if in.IsSelfReceiver {
			var t ast.Type = ast.SelfType{}
			if selfCircuit != nil {
				t = ast.CircuitType{Name: *selfCircuit}
			}

			id := b.arena.Alloc(VarBinding{Name: "self", Type: t, Span: in.Span()})
			funcScope.bind("self", id)
			out.Inputs = append(out.Inputs, Param{ID: id, Name: "self", Type: t, IsSelf: true})

			continue
		}

		id := b.arena.Alloc(VarBinding{Name: in.Name.Name, Type: in.DeclaredType, Span: in.Span()})
		funcScope.bind(in.Name.Name, id)
		out.Inputs = append(out.Inputs, Param{ID: id, Name: in.Name.Name, Type: in.DeclaredType})
	}

	body, err := b.buildBlock(fn.Body)
	if err != nil {
		return nil, err
	}

	out.Body = body

	return out, nil
}

func (b *Builder) buildBlock(block *ast.BlockStmt) (*BlockStmt, error) {
	blockScope := newScope(b.currentScope)
	prevScope := b.currentScope
	b.currentScope = blockScope
	defer func() { b.currentScope = prevScope }()

	out := &BlockStmt{stmtBase: stmtBase{NodeSpan: block.Span()}}

	for _, s := range block.Statements {
		resolved, err := b.buildStmt(s)
		if err != nil {
			return nil, err
		}

		out.Statements = append(out.Statements, resolved)
	}

	return out, nil
}

func (b *Builder) buildStmt(s ast.Stmt) (Stmt, error) {
	switch st := s.(type) {
	case *ast.ReturnStmt:
		value, err := b.buildExpr(st.Value)
		if err != nil {
			return nil, err
		}

		return &ReturnStmt{stmtBase: stmtBase{NodeSpan: st.Span()}, Value: value}, nil

	case *ast.DefinitionStmt:
		value, err := b.buildExpr(st.Value)
		if err != nil {
			return nil, err
		}

		names := make([]VarID, len(st.Names))
		for i, n := range st.Names {
			t := st.DeclaredType
			if t == nil {
				t = value.Type()
			}

			id := b.arena.Alloc(VarBinding{Name: n.Name, Type: t, Span: n.Span()})
			b.currentScope.bind(n.Name, id)
			names[i] = id
		}

		return &DefinitionStmt{stmtBase: stmtBase{NodeSpan: st.Span()}, Names: names, Value: value}, nil

	case *ast.AssignStmt:
		id, ok := b.currentScope.resolve(st.Target.Name.Name)
		if !ok {
			return nil, &NameUnresolvedError{Name: st.Target.Name.Name, Span: st.Target.Name.Span()}
		}

		accesses, err := b.buildAccesses(st.Target.Accesses)
		if err != nil {
			return nil, err
		}

		value, err := b.buildExpr(st.Value)
		if err != nil {
			return nil, err
		}

		return &AssignStmt{
			stmtBase: stmtBase{NodeSpan: st.Span()}, Target: id, Accesses: accesses, Value: value,
		}, nil

	case *ast.ConditionalStmt:
		cond, err := b.buildExpr(st.Cond)
		if err != nil {
			return nil, err
		}

		if _, ok := cond.Type().(ast.BoolType); !ok {
			return nil, &TypeMismatchError{Expected: ast.BoolType{}, Found: cond.Type(), Span: st.Cond.Span()}
		}

		then, err := b.buildBlock(st.Then)
		if err != nil {
			return nil, err
		}

		var elseStmt Stmt
		if st.Else != nil {
			elseStmt, err = b.buildStmt(st.Else)
			if err != nil {
				return nil, err
			}
		}

		return &ConditionalStmt{
			stmtBase: stmtBase{NodeSpan: st.Span()}, Cond: cond, Then: then, Else: elseStmt,
		}, nil

	case *ast.IterationStmt:
		start, err := b.buildExpr(st.Start)
		if err != nil {
			return nil, err
		}

		stop, err := b.buildExpr(st.Stop)
		if err != nil {
			return nil, err
		}

		loopScope := newScope(b.currentScope)
		prevScope := b.currentScope
		b.currentScope = loopScope

		id := b.arena.Alloc(VarBinding{Name: st.Variable.Name, Type: start.Type(), Span: st.Variable.Span()})
		loopScope.bind(st.Variable.Name, id)

		body, err := b.buildBlock(st.Body)
		b.currentScope = prevScope
		if err != nil {
			return nil, err
		}

		return &IterationStmt{
			stmtBase: stmtBase{NodeSpan: st.Span()}, Variable: id, Start: start, Stop: stop, Body: body,
		}, nil

	case *ast.ConsoleStmt:
		args := make([]Expr, len(st.Arguments))
		for i, a := range st.Arguments {
			resolved, err := b.buildExpr(a)
			if err != nil {
				return nil, err
			}

			args[i] = resolved
		}

		return &ConsoleStmt{
			stmtBase: stmtBase{NodeSpan: st.Span()}, Op: st.Op, Format: st.Format, Arguments: args,
		}, nil

	case *ast.ExpressionStmt:
		value, err := b.buildExpr(st.Value)
		if err != nil {
			return nil, err
		}

		return &ExpressionStmt{stmtBase: stmtBase{NodeSpan: st.Span()}, Value: value}, nil

	case *ast.BlockStmt:
		return b.buildBlock(st)

	default:
		return nil, source.NewError("AsgBuild", "unhandled statement kind", s.Span())
	}
}

func (b *Builder) buildAccesses(accesses []ast.AssigneeAccess) ([]AssigneeAccess, error) {
	out := make([]AssigneeAccess, len(accesses))

	for i, a := range accesses {
		resolved := AssigneeAccess{Kind: a.Kind, TupleIndex: a.TupleIndex}
		if a.Kind == ast.AssigneeMember {
			resolved.Member = a.Member.Name
		}

		if a.Index != nil {
			idx, err := b.buildExpr(a.Index)
			if err != nil {
				return nil, err
			}

			resolved.Index = idx
		}

		if a.Start != nil {
			start, err := b.buildExpr(a.Start)
			if err != nil {
				return nil, err
			}

			resolved.Start = start
		}

		if a.End != nil {
			end, err := b.buildExpr(a.End)
			if err != nil {
				return nil, err
			}

			resolved.End = end
		}

		out[i] = resolved
	}

	return out, nil
}

func (b *Builder) buildExpr(e ast.Expr) (Expr, error) {
	switch ex := e.(type) {
	case *ast.IdentifierExpr:
		id, ok := b.currentScope.resolve(ex.Name.Name)
		if !ok {
			return nil, &NameUnresolvedError{Name: ex.Name.Name, Span: ex.Span()}
		}

		binding := b.arena.Get(id)

		return &VarRefExpr{
			exprBase: exprBase{NodeSpan: ex.Span(), NodeType: binding.Type}, ID: id, Name: ex.Name.Name,
		}, nil

	case *ast.LiteralExpr:
		return b.buildLiteral(ex)

	case *ast.UnaryExpr:
		arg, err := b.buildExpr(ex.Arg)
		if err != nil {
			return nil, err
		}

		t := arg.Type()
		if ex.Op == ast.OpNot {
			if _, ok := t.(ast.BoolType); !ok {
				return nil, &TypeMismatchError{Expected: ast.BoolType{}, Found: t, Span: ex.Span()}
			}
		}

		return &UnaryExpr{exprBase: exprBase{NodeSpan: ex.Span(), NodeType: t}, Op: ex.Op, Arg: arg}, nil

	case *ast.BinaryExpr:
		return b.buildBinary(ex)

	case *ast.TernaryExpr:
		cond, err := b.buildExpr(ex.Cond)
		if err != nil {
			return nil, err
		}

		if _, ok := cond.Type().(ast.BoolType); !ok {
			return nil, &TypeMismatchError{Expected: ast.BoolType{}, Found: cond.Type(), Span: ex.Cond.Span()}
		}

		then, err := b.buildExpr(ex.Then)
		if err != nil {
			return nil, err
		}

		els, err := b.buildExpr(ex.Else)
		if err != nil {
			return nil, err
		}

		if !then.Type().Equals(els.Type()) {
			return nil, &TypeMismatchError{Expected: then.Type(), Found: els.Type(), Span: ex.Span()}
		}

		return &TernaryExpr{
			exprBase: exprBase{NodeSpan: ex.Span(), NodeType: then.Type()}, Cond: cond, Then: then, Else: els,
		}, nil

	case *ast.CastExpr:
		arg, err := b.buildExpr(ex.Arg)
		if err != nil {
			return nil, err
		}

		return &CastExpr{exprBase: exprBase{NodeSpan: ex.Span(), NodeType: ex.TargetType}, Arg: arg}, nil

	case *ast.ArrayInlineExpr:
		elems := make([]Expr, len(ex.Elements))
		var elemType ast.Type

		for i, el := range ex.Elements {
			resolved, err := b.buildExpr(el)
			if err != nil {
				return nil, err
			}

			if elemType == nil {
				elemType = resolved.Type()
			} else if !elemType.Equals(resolved.Type()) {
				return nil, &TypeMismatchError{Expected: elemType, Found: resolved.Type(), Span: el.Span()}
			}

			elems[i] = resolved
		}

		t := ast.ArrayType{Element: elemType, Dimensions: []uint{uint(len(elems))}}

		return &ArrayInlineExpr{exprBase: exprBase{NodeSpan: ex.Span(), NodeType: t}, Elements: elems}, nil

	case *ast.ArrayInitExpr:
		value, err := b.buildExpr(ex.Value)
		if err != nil {
			return nil, err
		}

		dims := make([]uint, len(ex.Dimensions))
		for i, d := range ex.Dimensions {
			lit, ok := d.(*ast.LiteralExpr)
			if !ok || lit.Kind != ast.LiteralInteger {
				return nil, source.NewError("AsgBuild", "array dimension must be a constant integer", d.Span())
			}

			dims[i] = parseDimension(lit.Text)
		}

		t := ast.ArrayType{Element: value.Type(), Dimensions: dims}

		return &ArrayInitExpr{
			exprBase: exprBase{NodeSpan: ex.Span(), NodeType: t}, Value: value, Dimensions: dims,
		}, nil

	case *ast.ArrayAccessExpr:
		arr, err := b.buildExpr(ex.Array)
		if err != nil {
			return nil, err
		}

		arrType, ok := arr.Type().(ast.ArrayType)
		if !ok {
			return nil, &TypeMismatchError{Found: arr.Type(), Span: ex.Array.Span()}
		}

		index, err := b.buildExpr(ex.Index)
		if err != nil {
			return nil, err
		}

		elemType := elementAfterIndex(arrType)

		return &ArrayAccessExpr{
			exprBase: exprBase{NodeSpan: ex.Span(), NodeType: elemType}, Array: arr, Index: index,
		}, nil

	case *ast.ArrayRangeAccessExpr:
		arr, err := b.buildExpr(ex.Array)
		if err != nil {
			return nil, err
		}

		var start, end Expr

		if ex.Start != nil {
			start, err = b.buildExpr(ex.Start)
			if err != nil {
				return nil, err
			}
		}

		if ex.End != nil {
			end, err = b.buildExpr(ex.End)
			if err != nil {
				return nil, err
			}
		}

		return &ArrayRangeAccessExpr{
			exprBase: exprBase{NodeSpan: ex.Span(), NodeType: arr.Type()}, Array: arr, Start: start, End: end,
		}, nil

	case *ast.TupleInitExpr:
		elems := make([]Expr, len(ex.Elements))
		types := make([]ast.Type, len(ex.Elements))

		for i, el := range ex.Elements {
			resolved, err := b.buildExpr(el)
			if err != nil {
				return nil, err
			}

			elems[i] = resolved
			types[i] = resolved.Type()
		}

		t := ast.TupleType{Elements: types}

		return &TupleInitExpr{exprBase: exprBase{NodeSpan: ex.Span(), NodeType: t}, Elements: elems}, nil

	case *ast.TupleAccessExpr:
		tuple, err := b.buildExpr(ex.Tuple)
		if err != nil {
			return nil, err
		}

		tupleType, ok := tuple.Type().(ast.TupleType)
		if !ok || int(ex.Index) >= len(tupleType.Elements) {
			return nil, &TypeMismatchError{Found: tuple.Type(), Span: ex.Span()}
		}

		return &TupleAccessExpr{
			exprBase: exprBase{NodeSpan: ex.Span(), NodeType: tupleType.Elements[ex.Index]},
			Tuple:    tuple, Index: ex.Index,
		}, nil

	case *ast.CircuitInitExpr:
		circuit, ok := b.graph.Circuits[ex.Circuit.Name]
		if !ok {
			return nil, &NameUnresolvedError{Name: ex.Circuit.Name, Span: ex.Circuit.Span()}
		}

		members := make([]CircuitInitMember, len(ex.Members))
		for i, m := range ex.Members {
			value, err := b.buildExpr(m.Value)
			if err != nil {
				return nil, err
			}

			field := fieldOf(circuit, m.Name.Name)
			if field == nil {
				return nil, &NameUnresolvedError{Name: m.Name.Name, Span: m.Name.Span()}
			}

			if !field.Type.Equals(value.Type()) {
				return nil, &TypeMismatchError{Expected: field.Type, Found: value.Type(), Span: m.Value.Span()}
			}

			members[i] = CircuitInitMember{Name: m.Name.Name, Value: value}
		}

		t := ast.CircuitType{Name: ex.Circuit.Name}

		return &CircuitInitExpr{
			exprBase: exprBase{NodeSpan: ex.Span(), NodeType: t}, Circuit: ex.Circuit.Name, Members: members,
		}, nil

	case *ast.CircuitMemberAccessExpr:
		receiver, err := b.buildExpr(ex.Receiver)
		if err != nil {
			return nil, err
		}

		circuitType, ok := receiver.Type().(ast.CircuitType)
		if !ok {
			return nil, &TypeMismatchError{Found: receiver.Type(), Span: ex.Receiver.Span()}
		}

		circuit, ok := b.graph.Circuits[circuitType.Name]
		if !ok {
			return nil, &NameUnresolvedError{Name: circuitType.Name, Span: ex.Span()}
		}

		var memberType ast.Type
		if field := fieldOf(circuit, ex.Member.Name); field != nil {
			memberType = field.Type
		} else if method := methodOf(circuit, ex.Member.Name); method != nil {
			memberType = method.ReturnType
		} else {
			return nil, &NameUnresolvedError{Name: ex.Member.Name, Span: ex.Member.Span()}
		}

		return &CircuitMemberAccessExpr{
			exprBase: exprBase{NodeSpan: ex.Span(), NodeType: memberType}, Receiver: receiver, Member: ex.Member.Name,
		}, nil

	case *ast.CircuitStaticFunctionAccessExpr:
		circuit, ok := b.graph.Circuits[ex.Circuit.Name]
		if !ok {
			return nil, &NameUnresolvedError{Name: ex.Circuit.Name, Span: ex.Circuit.Span()}
		}

		method := methodOf(circuit, ex.Function.Name)
		if method == nil {
			return nil, &NameUnresolvedError{Name: ex.Function.Name, Span: ex.Function.Span()}
		}

		return &CircuitStaticFunctionAccessExpr{
			exprBase: exprBase{NodeSpan: ex.Span(), NodeType: method.ReturnType},
			Circuit:  ex.Circuit.Name, Function: ex.Function.Name,
		}, nil

	case *ast.CallExpr:
		return b.buildCall(ex)

	default:
		return nil, source.NewError("AsgBuild", "unhandled expression kind", e.Span())
	}
}

func (b *Builder) buildLiteral(ex *ast.LiteralExpr) (Expr, error) {
	span := ex.Span()

	switch ex.Kind {
	case ast.LiteralBool:
		return &ConstBoolExpr{
			exprBase: exprBase{NodeSpan: span, NodeType: ast.BoolType{}}, Value: ex.Text == "true",
		}, nil
	case ast.LiteralInteger:
		return &ConstIntExpr{
			exprBase: exprBase{NodeSpan: span, NodeType: ast.IntType{Kind: ex.IntKind}}, Kind: ex.IntKind, Text: ex.Text,
		}, nil
	case ast.LiteralField:
		return &ConstFieldExpr{exprBase: exprBase{NodeSpan: span, NodeType: ast.FieldType{}}, Text: ex.Text}, nil
	case ast.LiteralGroup:
		return &ConstGroupExpr{exprBase: exprBase{NodeSpan: span, NodeType: ast.GroupType{}}, Text: ex.Text}, nil
	case ast.LiteralAddress:
		return &ConstAddressExpr{exprBase: exprBase{NodeSpan: span, NodeType: ast.AddressType{}}, Text: ex.Text}, nil
	case ast.LiteralChar:
		return &ConstCharExpr{exprBase: exprBase{NodeSpan: span, NodeType: ast.CharType{}}, Text: ex.Text}, nil
	default:
		return nil, source.NewError("AsgBuild", "unhandled literal kind", span)
	}
}

func (b *Builder) buildBinary(ex *ast.BinaryExpr) (Expr, error) {
	lhs, err := b.buildExpr(ex.Lhs)
	if err != nil {
		return nil, err
	}

	rhs, err := b.buildExpr(ex.Rhs)
	if err != nil {
		return nil, err
	}

	switch ex.Op {
	case ast.OpAnd, ast.OpOr:
		if _, ok := lhs.Type().(ast.BoolType); !ok {
			return nil, &TypeMismatchError{Expected: ast.BoolType{}, Found: lhs.Type(), Span: ex.Lhs.Span()}
		}

		if _, ok := rhs.Type().(ast.BoolType); !ok {
			return nil, &TypeMismatchError{Expected: ast.BoolType{}, Found: rhs.Type(), Span: ex.Rhs.Span()}
		}

		return &BinaryExpr{
			exprBase: exprBase{NodeSpan: ex.Span(), NodeType: ast.BoolType{}}, Op: ex.Op, Lhs: lhs, Rhs: rhs,
		}, nil

	case ast.OpEq, ast.OpNeq, ast.OpLt, ast.OpLe, ast.OpGt, ast.OpGe:
		if !lhs.Type().Equals(rhs.Type()) {
			return nil, &TypeMismatchError{Expected: lhs.Type(), Found: rhs.Type(), Span: ex.Span()}
		}

		return &BinaryExpr{
			exprBase: exprBase{NodeSpan: ex.Span(), NodeType: ast.BoolType{}}, Op: ex.Op, Lhs: lhs, Rhs: rhs,
		}, nil

	default:
		if !lhs.Type().Equals(rhs.Type()) {
			return nil, &TypeMismatchError{Expected: lhs.Type(), Found: rhs.Type(), Span: ex.Span()}
		}

		return &BinaryExpr{
			exprBase: exprBase{NodeSpan: ex.Span(), NodeType: lhs.Type()}, Op: ex.Op, Lhs: lhs, Rhs: rhs,
		}, nil
	}
}

func (b *Builder) buildCall(ex *ast.CallExpr) (Expr, error) {
	target, err := b.buildExpr(ex.Target)
	if err != nil {
		return nil, err
	}

	args := make([]Expr, len(ex.Arguments))
	for i, a := range ex.Arguments {
		resolved, err := b.buildExpr(a)
		if err != nil {
			return nil, err
		}

		args[i] = resolved
	}

	expected, name := b.calleeArity(ex.Target)
	if expected >= 0 && expected != len(args) {
		return nil, &ArityMismatchError{Name: name, Expected: expected, Found: len(args), Span: ex.Span()}
	}

	return &CallExpr{
		exprBase: exprBase{NodeSpan: ex.Span(), NodeType: target.Type()}, Target: target, Arguments: args,
	}, nil
}

// calleeArity looks up the declared parameter count of a call target when
// it is a direct free-function, static-method, or bound-method reference;
// it returns -1 when the target is itself a dynamic expression whose arity
// cannot be checked statically here.
func (b *Builder) calleeArity(target ast.Expr) (int, string) {
	switch t := target.(type) {
	case *ast.IdentifierExpr:
		if fn, ok := b.program.Functions[t.Name.Name]; ok {
			return len(fn.Inputs), t.Name.Name
		}
	case *ast.CircuitStaticFunctionAccessExpr:
		if circuit, ok := b.program.Circuits[t.Circuit.Name]; ok {
			for _, m := range circuit.Members {
				if m.IsMethod && m.Method.Name.Name == t.Function.Name {
					return len(m.Method.Inputs), t.Function.Name
				}
			}
		}
	case *ast.CircuitMemberAccessExpr:
		if receiverType, ok := b.resolveStaticType(t.Receiver); ok {
			if circuitType, ok := receiverType.(ast.CircuitType); ok {
				if circuit, ok := b.program.Circuits[circuitType.Name]; ok {
					for _, m := range circuit.Members {
						if m.IsMethod && m.Method.Name.Name == t.Member.Name {
							selfInputs := 0
							for _, in := range m.Method.Inputs {
								if !in.IsSelfReceiver {
									selfInputs++
								}
							}

							return selfInputs, t.Member.Name
						}
					}
				}
			}
		}
	}

	return -1, ""
}

// resolveStaticType looks up the already-bound type of a variable reference
// without re-resolving through buildExpr, used only for the arity-check
// lookahead.
func (b *Builder) resolveStaticType(e ast.Expr) (ast.Type, bool) {
	id, ok := e.(*ast.IdentifierExpr)
	if !ok {
		return nil, false
	}

	varID, ok := b.currentScope.resolve(id.Name.Name)
	if !ok {
		return nil, false
	}

	return b.arena.Get(varID).Type, true
}

func fieldOf(c *Circuit, name string) *Field {
	for _, m := range c.Members {
		if !m.IsMethod && m.Field.Name == name {
			return m.Field
		}
	}

	return nil
}

func methodOf(c *Circuit, name string) *Function {
	for _, m := range c.Members {
		if m.IsMethod && m.Method.Name == name {
			return m.Method
		}
	}

	return nil
}

// elementAfterIndex computes the type of a single-element index into an
// array, peeling off one dimension (spec.md §3: a multi-dimensional array
// access strips its outermost dimension per index applied).
func elementAfterIndex(t ast.ArrayType) ast.Type {
	if len(t.Dimensions) <= 1 {
		return t.Element
	}

	return ast.ArrayType{Element: t.Element, Dimensions: t.Dimensions[1:]}
}

// parseDimension parses an array dimension's decimal text. Its caller has
// already checked that the dimension is an integer literal and reports any
// other dimension expression as an error.
func parseDimension(text string) uint {
	var n uint
	for _, r := range text {
		if r < '0' || r > '9' {
			break
		}

		n = n*10 + uint(r-'0')
	}

	return n
}
