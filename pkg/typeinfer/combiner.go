// Package typeinfer implements the type-inference combiner (spec.md §4.5):
// a second reduce.Reducer pass that walks the canonicalized AST again with
// an already-built asg.Graph as a side input, and stamps each node's
// inferred type back onto a reconstructed AST. It is a minimal
// specialization of the reduction framework: every hook looks up the ASG
// counterpart of the node it is given, keyed by span, and calls SetType on
// the tentative new node before returning it.
package typeinfer

import (
	"github.com/npty/leo/pkg/asg"
	"github.com/npty/leo/pkg/ast"
	"github.com/npty/leo/pkg/reduce"
	"github.com/npty/leo/pkg/source"
)

// Combiner is a reduce.Reducer that merges asg.Graph-inferred types into the
// AST. Construct one per Graph with New, then drive it with reduce.Director
// exactly as the canonicalizer is driven.
type Combiner struct {
	*reduce.IdentityReducer
	bySpan map[source.Span]ast.Type
}

// New builds a Combiner by indexing every typed expression reachable from
// graph by its source span, so later hooks can look a node's inferred type
// up in O(1) rather than re-walking the graph per node.
func New(graph *asg.Graph) *Combiner {
	c := &Combiner{IdentityReducer: &reduce.IdentityReducer{}, bySpan: make(map[source.Span]ast.Type)}

	for _, name := range graph.CircuitNames {
		circuit := graph.Circuits[name]
		for _, m := range circuit.Members {
			if m.IsMethod {
				c.indexFunction(m.Method)
			}
		}
	}

	for _, name := range graph.FunctionNames {
		c.indexFunction(graph.Functions[name])
	}

	return c
}

func (c *Combiner) indexFunction(fn *asg.Function) {
	if fn.Body != nil {
		c.indexBlock(fn.Body)
	}
}

func (c *Combiner) indexBlock(block *asg.BlockStmt) {
	for _, s := range block.Statements {
		c.indexStmt(s)
	}
}

func (c *Combiner) indexStmt(s asg.Stmt) {
	switch st := s.(type) {
	case *asg.ReturnStmt:
		c.indexExpr(st.Value)
	case *asg.DefinitionStmt:
		c.indexExpr(st.Value)
	case *asg.AssignStmt:
		for _, a := range st.Accesses {
			c.indexExpr(a.Index)
			c.indexExpr(a.Start)
			c.indexExpr(a.End)
		}

		c.indexExpr(st.Value)
	case *asg.ConditionalStmt:
		c.indexExpr(st.Cond)
		c.indexBlock(st.Then)

		if st.Else != nil {
			c.indexStmt(st.Else)
		}
	case *asg.IterationStmt:
		c.indexExpr(st.Start)
		c.indexExpr(st.Stop)
		c.indexBlock(st.Body)
	case *asg.ConsoleStmt:
		for _, a := range st.Arguments {
			c.indexExpr(a)
		}
	case *asg.ExpressionStmt:
		c.indexExpr(st.Value)
	case *asg.BlockStmt:
		c.indexBlock(st)
	}
}

// indexExpr records e's type and recurses into its operands. e may be nil
// (e.g. an open-ended array range bound), in which case it is a no-op.
func (c *Combiner) indexExpr(e asg.Expr) {
	if e == nil {
		return
	}

	c.bySpan[e.Span()] = e.Type()

	switch ex := e.(type) {
	case *asg.UnaryExpr:
		c.indexExpr(ex.Arg)
	case *asg.BinaryExpr:
		c.indexExpr(ex.Lhs)
		c.indexExpr(ex.Rhs)
	case *asg.TernaryExpr:
		c.indexExpr(ex.Cond)
		c.indexExpr(ex.Then)
		c.indexExpr(ex.Else)
	case *asg.CastExpr:
		c.indexExpr(ex.Arg)
	case *asg.ArrayInlineExpr:
		for _, el := range ex.Elements {
			c.indexExpr(el)
		}
	case *asg.ArrayInitExpr:
		c.indexExpr(ex.Value)
	case *asg.ArrayAccessExpr:
		c.indexExpr(ex.Array)
		c.indexExpr(ex.Index)
	case *asg.ArrayRangeAccessExpr:
		c.indexExpr(ex.Array)
		c.indexExpr(ex.Start)
		c.indexExpr(ex.End)
	case *asg.TupleInitExpr:
		for _, el := range ex.Elements {
			c.indexExpr(el)
		}
	case *asg.TupleAccessExpr:
		c.indexExpr(ex.Tuple)
	case *asg.CircuitInitExpr:
		for _, m := range ex.Members {
			c.indexExpr(m.Value)
		}
	case *asg.CircuitMemberAccessExpr:
		c.indexExpr(ex.Receiver)
	case *asg.CallExpr:
		c.indexExpr(ex.Target)
		for _, a := range ex.Arguments {
			c.indexExpr(a)
		}
	}
}

func (c *Combiner) lookup(span source.Span) (ast.Type, bool) {
	t, ok := c.bySpan[span]
	return t, ok
}

// stamp sets new_'s resolved type from the index when present, leaving
// nodes the index does not hold (e.g. an ArrayInitExpr's dimension
// expressions, which indexExpr does not visit) untouched; Combiner is
// best-effort over whatever the index reached.
func stamp[T interface {
	ast.Expr
	SetType(ast.Type)
}](c *Combiner, old T, new_ T) {
	if t, ok := c.lookup(old.Span()); ok {
		new_.SetType(t)
	}
}

func (c *Combiner) ReduceIdentifierExpr(old, new_ *ast.IdentifierExpr, _ bool) (ast.Expr, error) {
	stamp(c, old, new_)
	return new_, nil
}

func (c *Combiner) ReduceLiteralExpr(old, new_ *ast.LiteralExpr, _ bool) (ast.Expr, error) {
	stamp(c, old, new_)
	return new_, nil
}

func (c *Combiner) ReduceUnaryExpr(old, new_ *ast.UnaryExpr, _ bool) (ast.Expr, error) {
	stamp(c, old, new_)
	return new_, nil
}

func (c *Combiner) ReduceBinaryExpr(old, new_ *ast.BinaryExpr, _ bool) (ast.Expr, error) {
	stamp(c, old, new_)
	return new_, nil
}

func (c *Combiner) ReduceTernaryExpr(old, new_ *ast.TernaryExpr, _ bool) (ast.Expr, error) {
	stamp(c, old, new_)
	return new_, nil
}

func (c *Combiner) ReduceCastExpr(old, new_ *ast.CastExpr, _ bool) (ast.Expr, error) {
	stamp(c, old, new_)
	return new_, nil
}

func (c *Combiner) ReduceArrayInlineExpr(old, new_ *ast.ArrayInlineExpr, _ bool) (ast.Expr, error) {
	stamp(c, old, new_)
	return new_, nil
}

func (c *Combiner) ReduceArrayInitExpr(old, new_ *ast.ArrayInitExpr, _ bool) (ast.Expr, error) {
	stamp(c, old, new_)
	return new_, nil
}

func (c *Combiner) ReduceArrayAccessExpr(old, new_ *ast.ArrayAccessExpr, _ bool) (ast.Expr, error) {
	stamp(c, old, new_)
	return new_, nil
}

func (c *Combiner) ReduceArrayRangeAccessExpr(old, new_ *ast.ArrayRangeAccessExpr, _ bool) (ast.Expr, error) {
	stamp(c, old, new_)
	return new_, nil
}

func (c *Combiner) ReduceTupleInitExpr(old, new_ *ast.TupleInitExpr, _ bool) (ast.Expr, error) {
	stamp(c, old, new_)
	return new_, nil
}

func (c *Combiner) ReduceTupleAccessExpr(old, new_ *ast.TupleAccessExpr, _ bool) (ast.Expr, error) {
	stamp(c, old, new_)
	return new_, nil
}

func (c *Combiner) ReduceCircuitInitExpr(old, new_ *ast.CircuitInitExpr, _ bool) (ast.Expr, error) {
	stamp(c, old, new_)
	return new_, nil
}

func (c *Combiner) ReduceCircuitMemberAccessExpr(old, new_ *ast.CircuitMemberAccessExpr, _ bool) (ast.Expr, error) {
	stamp(c, old, new_)
	return new_, nil
}

func (c *Combiner) ReduceCircuitStaticFunctionAccessExpr(
	old, new_ *ast.CircuitStaticFunctionAccessExpr, _ bool,
) (ast.Expr, error) {
	stamp(c, old, new_)
	return new_, nil
}

func (c *Combiner) ReduceCallExpr(old, new_ *ast.CallExpr, _ bool) (ast.Expr, error) {
	stamp(c, old, new_)
	return new_, nil
}

// Combine drives the director over program using this combiner, returning
// an AST equivalent in structure but with every reachable expression's
// ResolvedType populated from the graph.
func Combine(program *ast.Program, graph *asg.Graph) (*ast.Program, error) {
	c := New(graph)
	director := reduce.NewDirector(c)

	return director.ReduceProgram(program)
}
