package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/npty/leo/pkg/ast"
	"github.com/npty/leo/pkg/stagedump"
)

// SourceLoader parses a source file into the initial AST. Lexing/parsing is
// an external collaborator out of this module's scope (spec.md §1): this
// var is the integration point a full distribution wires a real
// lexer/parser into before calling cmd.Execute. It is nil in this module,
// since no parser ships here.
var SourceLoader func(path string) (*ast.Program, error)

var dumpCmd = &cobra.Command{
	Use:   "dump --file <path> [--initial] [--canonicalize] [--inference] [--all]",
	Short: "Dump one or more compiler pipeline stages to JSON.",
	Long: `Run the canonicalizer, ASG builder and type-inference combiner over a
parsed program and write each selected stage to "<stage>.json" in the
current directory: initial.json, canonicalization.json, type_inference.json
(spec.md §6).`,
	Run: func(cmd *cobra.Command, args []string) {
		file := GetString(cmd, "file")
		if file == "" {
			fail("--file is required")
		}

		opts := stagedump.Options{
			Initial:      GetFlag(cmd, "initial") || GetFlag(cmd, "all"),
			Canonicalize: GetFlag(cmd, "canonicalize") || GetFlag(cmd, "all"),
			Inference:    GetFlag(cmd, "inference") || GetFlag(cmd, "all"),
		}

		if !opts.Initial && !opts.Canonicalize && !opts.Inference {
			fail("at least one of --initial, --canonicalize, --inference, --all is required")
		}

		if SourceLoader == nil {
			fail("no source loader configured: this module has no lexer/parser, " +
				"wire cmd.SourceLoader to one before calling cmd.Execute")
		}

		program, err := SourceLoader(file)
		if err != nil {
			fail("%v", err)
		}

		log.WithField("file", file).Debug("parsed initial program")

		result, err := stagedump.RunPipeline(program, opts)
		if err != nil {
			fail("%v", err)
		}

		if err := stagedump.WriteStages("", result); err != nil {
			fail("%v", err)
		}

		for stage := range result.Stages {
			log.WithField("stage", stage).Info("wrote stage dump")
		}
	},
}

func init() {
	dumpCmd.Flags().String("file", "", "source file to compile (required)")
	dumpCmd.Flags().Bool("initial", false, "dump the initial (pre-canonicalization) AST")
	dumpCmd.Flags().Bool("canonicalize", false, "dump the canonicalized AST")
	dumpCmd.Flags().Bool("inference", false, "dump the type-inferenced AST")
	dumpCmd.Flags().Bool("all", false, "dump every stage")
}
