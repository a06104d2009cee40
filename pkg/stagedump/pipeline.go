package stagedump

import (
	"encoding/json"
	"os"

	"github.com/npty/leo/pkg/asg"
	"github.com/npty/leo/pkg/ast"
	"github.com/npty/leo/pkg/canonicalize"
	"github.com/npty/leo/pkg/input"
	"github.com/npty/leo/pkg/r1cs"
	"github.com/npty/leo/pkg/synthesize"
	"github.com/npty/leo/pkg/typeinfer"
)

// Stage names, also used as the stem of the emitted file names
// ("<stage>.json"), per spec.md §6's "initial.json, canonicalization.json,
// type_inference.json".
const (
	StageInitial       = "initial"
	StageCanonicalize  = "canonicalization"
	StageTypeInference = "type_inference"
)

// Result holds the program at each stage the driver was asked to emit,
// keyed by stage name, ready to be marshaled to the on-disk JSON dumps.
type Result struct {
	Stages map[string]ProgramDump
}

// Options selects which stages RunPipeline emits, mirroring the
// stage-dump CLI's `--initial`/`--canonicalize`/`--inference`/`--all` flags
// (spec.md §6).
type Options struct {
	Initial      bool
	Canonicalize bool
	Inference    bool
}

// All reports whether every stage is selected, equivalent to `--all`.
func (o Options) All() bool {
	return o.Initial && o.Canonicalize && o.Inference
}

// RunPipeline drives the canonicalizer, ASG builder and type-inference
// combiner over an already-parsed program (parsing itself is the external
// lexer/parser collaborator, out of scope per spec.md §1 — this module's
// entry point is the initial AST, not source text) and returns a dump for
// each stage opts selects.
//
// This is the Go-level core of the stage-dump CLI (spec.md §6): cmd/leo's
// `dump` subcommand wires a source-producing collaborator to build the
// initial *ast.Program, then calls this function and writes each selected
// stage to `<name>.json`.
func RunPipeline(initial *ast.Program, opts Options) (*Result, error) {
	result := &Result{Stages: make(map[string]ProgramDump)}

	if opts.Initial {
		result.Stages[StageInitial] = DumpProgram(initial)
	}

	if !opts.Canonicalize && !opts.Inference {
		return result, nil
	}

	canonicalized, err := canonicalize.New().Canonicalize(initial)
	if err != nil {
		return nil, err
	}

	if opts.Canonicalize {
		result.Stages[StageCanonicalize] = DumpProgram(canonicalized)
	}

	if !opts.Inference {
		return result, nil
	}

	graph, err := asg.NewBuilder(canonicalized).Build()
	if err != nil {
		return nil, err
	}

	inferenced, err := typeinfer.Combine(canonicalized, graph)
	if err != nil {
		return nil, err
	}

	result.Stages[StageTypeInference] = DumpProgram(inferenced)

	return result, nil
}

// Synthesize runs a program through canonicalization and ASG building, then
// drives pkg/synthesize over the named function to produce a satisfied (or
// not) pkg/r1cs.System — the step spec.md §2 places after type inference:
// "per-function constraint synthesis using the integer domain → R1CS".
//
// Unlike RunPipeline, this always needs the ASG (synthesis walks resolved,
// typed asg.Function bodies, not raw AST), so it is not gated by an
// Options flag: a caller wanting a constraint system asks for it directly,
// the way cmd/leo's (not yet built) `build`/`run` subcommands would, as
// opposed to the JSON stage dumps the `dump` subcommand's flags select
// (spec.md §6).
func Synthesize(initial *ast.Program, functionName string, inputs input.Record) (*r1cs.System, synthesize.Value, error) {
	canonicalized, err := canonicalize.New().Canonicalize(initial)
	if err != nil {
		return nil, nil, err
	}

	graph, err := asg.NewBuilder(canonicalized).Build()
	if err != nil {
		return nil, nil, err
	}

	cs := r1cs.NewSystem()

	result, err := synthesize.Synthesize(cs, graph, functionName, inputs)
	if err != nil {
		return nil, nil, err
	}

	return cs, result, nil
}

// WriteStages writes each stage in result to "<stage>.json" under dir,
// pretty-printed, matching the teacher's JSON debug-dump convention (e.g.
// go-corset's `--json` trace/constraint dumps in pkg/cmd/binfile.go).
func WriteStages(dir string, result *Result) error {
	for _, stage := range []string{StageInitial, StageCanonicalize, StageTypeInference} {
		dump, ok := result.Stages[stage]
		if !ok {
			continue
		}

		bytes, err := json.MarshalIndent(dump, "", "  ")
		if err != nil {
			return err
		}

		path := dir + "/" + stage + ".json"
		if dir == "" {
			path = stage + ".json"
		}

		if err := os.WriteFile(path, bytes, 0o644); err != nil {
			return err
		}
	}

	return nil
}
