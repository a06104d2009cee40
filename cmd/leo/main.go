// Command leo is the peripheral CLI surface described by spec.md §6: `new`
// project scaffolding and the stage-dump debug driver. All actual compiler
// logic lives in pkg/cmd and the packages it drives (pkg/canonicalize,
// pkg/asg, pkg/typeinfer, pkg/stagedump); main only calls Execute, matching
// the teacher's cmd/main.go -> pkg/cmd split.
package main

import "github.com/npty/leo/pkg/cmd"

func main() {
	cmd.Execute()
}
