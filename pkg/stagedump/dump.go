package stagedump

import "github.com/npty/leo/pkg/ast"

// ProgramDump is a flat, JSON-serializable snapshot of an *ast.Program
// suitable for writing to `initial.json` / `canonicalization.json` /
// `type_inference.json` (spec.md §6). It deliberately does not mirror the
// AST's interface-typed node shapes 1:1 (encoding/json cannot discriminate
// an unexported interface field's concrete variant on decode); instead each
// statement of a body is flattened to its rendered text. Spans are kept only
// for functions and circuits, and resolved types are not included, so the
// type_inference dump renders the same text as the canonicalization dump.
type ProgramDump struct {
	Imports        []string       `json:"imports"`
	Circuits       []CircuitDump  `json:"circuits"`
	Functions      []FunctionDump `json:"functions"`
	ExpectedInputs []InputDump    `json:"expected_inputs"`
}

// InputDump is one expected top-level `main` parameter.
type InputDump struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// CircuitDump is one circuit definition.
type CircuitDump struct {
	Name    string         `json:"name"`
	Span    string         `json:"span"`
	Fields  []FieldDump    `json:"fields"`
	Methods []FunctionDump `json:"methods"`
}

// FieldDump is one typed circuit field.
type FieldDump struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// FunctionDump is one function (free or circuit method) definition.
type FunctionDump struct {
	Name        string      `json:"name"`
	Annotations []string    `json:"annotations"`
	Inputs      []InputDump `json:"inputs"`
	ReturnType  string      `json:"return_type,omitempty"`
	Body        []string    `json:"body"`
	Span        string      `json:"span"`
}

// DumpProgram converts program into its JSON-serializable snapshot.
func DumpProgram(program *ast.Program) ProgramDump {
	dump := ProgramDump{
		Imports: make([]string, len(program.Imports)),
	}

	for i, imp := range program.Imports {
		dump.Imports[i] = renderImportPath(imp.Path)
	}

	for _, input := range program.ExpectedInputs {
		dump.ExpectedInputs = append(dump.ExpectedInputs, InputDump{
			Name: input.Name.Name,
			Type: typeString(input.DeclaredType),
		})
	}

	for _, circuit := range program.OrderedCircuits() {
		dump.Circuits = append(dump.Circuits, dumpCircuit(circuit))
	}

	for _, fn := range program.OrderedFunctions() {
		dump.Functions = append(dump.Functions, dumpFunction(fn))
	}

	return dump
}

func dumpCircuit(c *ast.Circuit) CircuitDump {
	out := CircuitDump{Name: c.Name.Name, Span: c.Span().String()}

	for _, member := range c.Members {
		if member.IsMethod {
			out.Methods = append(out.Methods, dumpFunction(member.Method))
		} else {
			out.Fields = append(out.Fields, FieldDump{
				Name: member.Field.Name.Name,
				Type: typeString(member.Field.DeclaredType),
			})
		}
	}

	return out
}

func dumpFunction(fn *ast.Function) FunctionDump {
	out := FunctionDump{
		Name:        fn.Name.Name,
		Annotations: fn.Annotations,
		ReturnType:  typeString(fn.ReturnType),
		Span:        fn.Span().String(),
	}

	for _, input := range fn.Inputs {
		if input.IsSelfReceiver {
			out.Inputs = append(out.Inputs, InputDump{Name: "self", Type: "Self"})
			continue
		}

		out.Inputs = append(out.Inputs, InputDump{
			Name: input.Name.Name,
			Type: typeString(input.DeclaredType),
		})
	}

	if fn.Body != nil {
		for _, stmt := range fn.Body.Statements {
			out.Body = append(out.Body, RenderStmt(stmt, 0))
		}
	}

	return out
}

func typeString(t ast.Type) string {
	if t == nil {
		return ""
	}

	return t.String()
}

func renderImportPath(path []string) string {
	out := ""

	for i, p := range path {
		if i > 0 {
			out += "."
		}

		out += p
	}

	return out
}
