// Package cmd wires up the peripheral CLI surface (spec.md §6): the `new`
// project-scaffolding command and the `dump` stage-dump debug command. It
// plays the same role as the teacher's pkg/cmd package (go-corset's
// cobra-based command tree rooted at pkg/cmd/root.go), but over this
// module's pipeline instead of go-corset's.
package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled in when building with a version-stamping build step,
// left empty for a plain `go build`/`go run`.
var Version string

var rootCmd = &cobra.Command{
	Use:   "leo",
	Short: "A compiler front end for the Leo zk-DSL constraint-synthesis core.",
	Long: `leo drives the AST canonicalization, ASG/type-inference, and
integer constraint-synthesis core described by this module: it can
scaffold a new project and dump the compiler's intermediate stages for
inspection.`,
}

// Execute adds all child commands to the root command and runs it. Called
// once by cmd/leo's main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug-level logging")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
	}

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(dumpCmd)
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
