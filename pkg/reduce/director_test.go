package reduce_test

import (
	"testing"

	"github.com/npty/leo/pkg/ast"
	"github.com/npty/leo/pkg/reduce"
	"github.com/npty/leo/pkg/source"
)

// recordingReducer is an IdentityReducer that records the inCircuit flag it
// was called with for every ReduceType hook, keyed by the type it saw.
type recordingReducer struct {
	*reduce.IdentityReducer
	inCircuitByType map[string]bool
}

func newRecordingReducer() *recordingReducer {
	return &recordingReducer{
		IdentityReducer: &reduce.IdentityReducer{},
		inCircuitByType: make(map[string]bool),
	}
}

func (r *recordingReducer) ReduceType(old, new_ ast.Type, inCircuit bool, span source.Span) (ast.Type, error) {
	r.inCircuitByType[old.String()] = inCircuit
	return new_, nil
}

// TestInCircuitPropagatesToReturnAndInputTypes verifies spec.md §4.3's
// contract that the director's inCircuit flag "is propagated to every
// hook": a circuit method's return type and parameter types must see
// inCircuit=true exactly like its body does, since they can themselves
// reference `Self`.
func TestInCircuitPropagatesToReturnAndInputTypes(t *testing.T) {
	span := source.NewSpan(1, 1)

	body := &ast.BlockStmt{Statements: []ast.Stmt{}}
	body.NodeSpan = span

	method := &ast.Function{
		Name:       ast.NewIdentifier("make", span),
		ReturnType: ast.SelfType{},
		Inputs: []ast.FunctionInput{
			{Name: ast.NewIdentifier("n", span), DeclaredType: ast.SelfType{}, InputSpan: span},
		},
		Body:     body,
		NodeSpan: span,
	}

	circuit := &ast.Circuit{
		Name:     ast.NewIdentifier("Point", span),
		Members:  []ast.CircuitMember{{IsMethod: true, Method: method}},
		NodeSpan: span,
	}

	reducer := newRecordingReducer()
	director := reduce.NewDirector(reducer)

	if _, err := director.ReduceCircuit(circuit); err != nil {
		t.Fatalf("ReduceCircuit: %v", err)
	}

	selfSeen, ok := reducer.inCircuitByType["Self"]
	if !ok {
		t.Fatalf("ReduceType never saw the Self type")
	}

	if !selfSeen {
		t.Fatalf("inCircuit = false while reducing a circuit method's Self-typed return/input type, want true")
	}
}

// TestTraversalOrderMatchesDeclarationOrder verifies spec.md §4.3:
// "Traversal order matches declaration order of every ordered container."
func TestTraversalOrderMatchesDeclarationOrder(t *testing.T) {
	span := source.NewSpan(1, 1)

	var order []string

	reducer := &orderTrackingReducer{
		IdentityReducer: &reduce.IdentityReducer{},
		record:          func(name string) { order = append(order, name) },
	}
	director := reduce.NewDirector(reducer)

	program := ast.NewProgram(span)

	for _, name := range []string{"first", "second", "third"} {
		block := &ast.BlockStmt{Statements: []ast.Stmt{}}
		block.NodeSpan = span

		fn := &ast.Function{Name: ast.NewIdentifier(name, span), Body: block, NodeSpan: span}
		program.AddFunction(fn)
	}

	if _, err := director.ReduceProgram(program); err != nil {
		t.Fatalf("ReduceProgram: %v", err)
	}

	want := []string{"first", "second", "third"}
	if len(order) != len(want) {
		t.Fatalf("visited %v, want %v", order, want)
	}

	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("visited %v, want %v", order, want)
		}
	}
}

type orderTrackingReducer struct {
	*reduce.IdentityReducer
	record func(string)
}

func (r *orderTrackingReducer) ReduceFunction(old, new_ *ast.Function, inCircuit bool) (*ast.Function, error) {
	r.record(old.Name.Name)
	return new_, nil
}
