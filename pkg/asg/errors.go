package asg

import (
	"fmt"

	"github.com/npty/leo/pkg/ast"
	"github.com/npty/leo/pkg/source"
)

// The closed set of ASG-build failure modes (spec.md §4.5, §7).

// NameUnresolvedError reports a reference to an undeclared name.
type NameUnresolvedError struct {
	Name string
	Span source.Span
}

func (e *NameUnresolvedError) Error() string {
	return fmt.Sprintf("AsgBuild: name `%s` unresolved at %s", e.Name, e.Span)
}

// TypeMismatchError reports an expression whose type does not match what
// its context requires.
type TypeMismatchError struct {
	Expected, Found ast.Type
	Span            source.Span
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("AsgBuild: expected type %s, found %s at %s", e.Expected, e.Found, e.Span)
}

// ArityMismatchError reports a call with the wrong number of arguments.
type ArityMismatchError struct {
	Name           string
	Expected, Found int
	Span           source.Span
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf(
		"AsgBuild: `%s` expects %d argument(s), found %d at %s", e.Name, e.Expected, e.Found, e.Span,
	)
}

// DuplicateMemberError reports a circuit with two members of the same name.
type DuplicateMemberError struct {
	Circuit, Member string
	Span            source.Span
}

func (e *DuplicateMemberError) Error() string {
	return fmt.Sprintf("AsgBuild: duplicate member `%s` in circuit `%s` at %s", e.Member, e.Circuit, e.Span)
}

// CircularImportError reports an import cycle. The core does not itself
// resolve imports (spec.md §1); this error exists for the import-resolver
// collaborator to report through the same error surface.
type CircularImportError struct {
	Path []string
	Span source.Span
}

func (e *CircularImportError) Error() string {
	return fmt.Sprintf("AsgBuild: circular import %v at %s", e.Path, e.Span)
}
