package ast

import "github.com/npty/leo/pkg/source"

// FunctionInput is one parameter of a function: either a named, typed
// variable or a `self`-like receiver marker (spec.md §3). Exactly one
// receiver input, if present, must be first and is only legal on circuit
// methods; the canonicalizer's implicit-self pass relies on this.
type FunctionInput struct {
	IsSelfReceiver bool
	Name           Identifier // empty when IsSelfReceiver
	DeclaredType   Type       // nil when IsSelfReceiver
	InputSpan      source.Span
}

// Span returns the source span of this input.
func (f FunctionInput) Span() source.Span { return f.InputSpan }

// Function is a named, ordered sequence of inputs, an optional return type,
// and a body block (spec.md §3).
type Function struct {
	Name        Identifier
	Annotations []string // e.g. "test" for an `@test` annotated function
	Inputs      []FunctionInput
	ReturnType  Type // nilable
	Body        *BlockStmt
	NodeSpan    source.Span
}

// Span returns the source span of this function.
func (f *Function) Span() source.Span { return f.NodeSpan }

// HasAnnotation reports whether the named annotation marks this function.
func (f *Function) HasAnnotation(name string) bool {
	for _, a := range f.Annotations {
		if a == name {
			return true
		}
	}
	return false
}

// CircuitMember is either a typed field or a method (function) of a circuit,
// in declaration order (spec.md §3).
type CircuitMember struct {
	IsMethod bool
	Field    *CircuitField // non-nil when !IsMethod
	Method   *Function     // non-nil when IsMethod
}

// CircuitField is a single typed member of a circuit's data layout.
type CircuitField struct {
	Name         Identifier
	DeclaredType Type
	FieldSpan    source.Span
}

// Span returns the source span of this field.
func (f CircuitField) Span() source.Span { return f.FieldSpan }

// Circuit is a user-defined product type with an ordered list of members
// (spec.md §3).
type Circuit struct {
	Name     Identifier
	Members  []CircuitMember
	NodeSpan source.Span
}

// Span returns the source span of this circuit.
func (c *Circuit) Span() source.Span { return c.NodeSpan }

// Import is a single ordered import declaration (the resolution of imports
// into other programs is an external collaborator; the core only preserves
// the ordered list, per spec.md §1).
type Import struct {
	Path     []string
	NodeSpan source.Span
}

// Span returns the source span of this import.
func (i Import) Span() source.Span { return i.NodeSpan }

// ExpectedInput describes one top-level `main` parameter the program expects
// an External caller to supply (spec.md §6).
type ExpectedInput struct {
	Name         Identifier
	DeclaredType Type
}

// Program is the root AST node: an ordered list of imports, an
// insertion-ordered mapping from circuit name to definition, an
// insertion-ordered mapping from function name to definition, and the
// expected `main` input list. Insertion order is meaningful: it determines
// diagnostic order and R1CS output-register order (spec.md §3).
type Program struct {
	Imports        []Import
	CircuitNames   []string
	Circuits       map[string]*Circuit
	FunctionNames  []string
	Functions      map[string]*Function
	ExpectedInputs []ExpectedInput
	NodeSpan       source.Span
}

// Span returns the source span of the program (the whole file).
func (p *Program) Span() source.Span { return p.NodeSpan }

// NewProgram constructs an empty program ready to be populated in
// declaration order by AddCircuit/AddFunction.
func NewProgram(span source.Span) *Program {
	return &Program{
		Circuits:  make(map[string]*Circuit),
		Functions: make(map[string]*Function),
		NodeSpan:  span,
	}
}

// AddCircuit appends a circuit, preserving insertion order.
func (p *Program) AddCircuit(c *Circuit) {
	p.CircuitNames = append(p.CircuitNames, c.Name.Name)
	p.Circuits[c.Name.Name] = c
}

// AddFunction appends a function, preserving insertion order.
func (p *Program) AddFunction(f *Function) {
	p.FunctionNames = append(p.FunctionNames, f.Name.Name)
	p.Functions[f.Name.Name] = f
}

// OrderedCircuits returns circuits in declaration order.
func (p *Program) OrderedCircuits() []*Circuit {
	out := make([]*Circuit, len(p.CircuitNames))
	for i, n := range p.CircuitNames {
		out[i] = p.Circuits[n]
	}
	return out
}

// OrderedFunctions returns functions in declaration order.
func (p *Program) OrderedFunctions() []*Function {
	out := make([]*Function, len(p.FunctionNames))
	for i, n := range p.FunctionNames {
		out[i] = p.Functions[n]
	}
	return out
}
