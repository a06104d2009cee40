// Package stagedump implements the stage-dump debug surface (spec.md §6):
// rendering the AST at each pipeline stage (initial, canonicalized,
// type-inferenced) to a JSON file, the way the teacher's pkg/cmd/debug
// package renders its intermediate representations to stdout/JSON for
// inspection. This package is glue, not core: it never emits constraints
// and never resolves names itself, it only describes trees already built by
// pkg/canonicalize, pkg/asg and pkg/typeinfer.
package stagedump

import (
	"fmt"
	"strings"

	"github.com/npty/leo/pkg/ast"
)

// RenderExpr renders an expression as a compact, parenthesized textual form
// suitable for a human or a diagnostic renderer to read back, matching the
// teacher's debug dumps (e.g. pkg/cmd/debug/asm.go's instruction printer)
// rather than round-tripping to valid source syntax.
func RenderExpr(e ast.Expr) string {
	if e == nil {
		return ""
	}

	switch x := e.(type) {
	case *ast.IdentifierExpr:
		return x.Name.Name
	case *ast.LiteralExpr:
		return x.Text
	case *ast.UnaryExpr:
		return fmt.Sprintf("(%s %s)", unaryOpText(x.Op), RenderExpr(x.Arg))
	case *ast.BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", binaryOpText(x.Op), RenderExpr(x.Lhs), RenderExpr(x.Rhs))
	case *ast.TernaryExpr:
		return fmt.Sprintf("(? %s %s %s)", RenderExpr(x.Cond), RenderExpr(x.Then), RenderExpr(x.Else))
	case *ast.CastExpr:
		return fmt.Sprintf("(cast %s %s)", RenderExpr(x.Arg), x.TargetType)
	case *ast.ArrayInlineExpr:
		return fmt.Sprintf("[%s]", joinExprs(x.Elements))
	case *ast.ArrayInitExpr:
		return fmt.Sprintf("[%s; %s]", RenderExpr(x.Value), joinExprs(x.Dimensions))
	case *ast.ArrayAccessExpr:
		return fmt.Sprintf("%s[%s]", RenderExpr(x.Array), RenderExpr(x.Index))
	case *ast.ArrayRangeAccessExpr:
		return fmt.Sprintf("%s[%s..%s]", RenderExpr(x.Array), RenderExpr(x.Start), RenderExpr(x.End))
	case *ast.TupleInitExpr:
		return fmt.Sprintf("(%s)", joinExprs(x.Elements))
	case *ast.TupleAccessExpr:
		return fmt.Sprintf("%s.%d", RenderExpr(x.Tuple), x.Index)
	case *ast.CircuitInitExpr:
		parts := make([]string, len(x.Members))
		for i, m := range x.Members {
			parts[i] = fmt.Sprintf("%s: %s", m.Name.Name, RenderExpr(m.Value))
		}

		return fmt.Sprintf("%s { %s }", x.Circuit.Name, strings.Join(parts, ", "))
	case *ast.CircuitMemberAccessExpr:
		return fmt.Sprintf("%s.%s", RenderExpr(x.Receiver), x.Member.Name)
	case *ast.CircuitStaticFunctionAccessExpr:
		return fmt.Sprintf("%s::%s", x.Circuit.Name, x.Function.Name)
	case *ast.CallExpr:
		return fmt.Sprintf("%s(%s)", RenderExpr(x.Target), joinExprs(x.Arguments))
	default:
		return fmt.Sprintf("<unknown expr %T>", e)
	}
}

func joinExprs(es []ast.Expr) string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = RenderExpr(e)
	}

	return strings.Join(parts, ", ")
}

func unaryOpText(op ast.UnaryOp) string {
	switch op {
	case ast.OpNegate:
		return "neg"
	case ast.OpNot:
		return "not"
	default:
		return "?unop"
	}
}

func binaryOpText(op ast.BinaryOp) string {
	names := [...]string{"+", "-", "*", "/", "**", "==", "!=", "<", "<=", ">", ">=", "&&", "||"}
	if int(op) < len(names) {
		return names[op]
	}

	return "?binop"
}

// RenderStmt renders a statement as indented, s-expression-flavoured text,
// one construct per line, again a debug rendering rather than valid source.
func RenderStmt(s ast.Stmt, indent int) string {
	pad := strings.Repeat("  ", indent)

	switch x := s.(type) {
	case *ast.ReturnStmt:
		return fmt.Sprintf("%sreturn %s", pad, RenderExpr(x.Value))
	case *ast.DefinitionStmt:
		names := make([]string, len(x.Names))
		for i, n := range x.Names {
			names[i] = n.Name
		}

		typeText := ""
		if x.DeclaredType != nil {
			typeText = ": " + x.DeclaredType.String()
		}

		return fmt.Sprintf("%slet %s%s = %s", pad, strings.Join(names, ", "), typeText, RenderExpr(x.Value))
	case *ast.AssignStmt:
		return fmt.Sprintf("%s%s = %s", pad, renderAssignee(x.Target), RenderExpr(x.Value))
	case *ast.ConditionalStmt:
		out := fmt.Sprintf("%sif %s {\n%s\n%s}", pad, RenderExpr(x.Cond), RenderStmt(x.Then, indent+1), pad)
		if x.Else != nil {
			out += fmt.Sprintf(" else {\n%s\n%s}", RenderStmt(x.Else, indent+1), pad)
		}

		return out
	case *ast.IterationStmt:
		return fmt.Sprintf(
			"%sfor %s in %s..%s {\n%s\n%s}",
			pad, x.Variable.Name, RenderExpr(x.Start), RenderExpr(x.Stop), RenderStmt(x.Body, indent+1), pad,
		)
	case *ast.ConsoleStmt:
		return fmt.Sprintf("%sconsole.%s(%s, %s)", pad, consoleOpText(x.Op), x.Format, joinExprs(x.Arguments))
	case *ast.ExpressionStmt:
		return fmt.Sprintf("%s%s", pad, RenderExpr(x.Value))
	case *ast.BlockStmt:
		lines := make([]string, len(x.Statements))
		for i, inner := range x.Statements {
			lines[i] = RenderStmt(inner, indent)
		}

		return strings.Join(lines, "\n")
	default:
		return fmt.Sprintf("%s<unknown stmt %T>", pad, s)
	}
}

func renderAssignee(a ast.Assignee) string {
	out := a.Name.Name

	for _, access := range a.Accesses {
		switch access.Kind {
		case ast.AssigneeArrayIndex:
			out += fmt.Sprintf("[%s]", RenderExpr(access.Index))
		case ast.AssigneeArrayRange:
			out += fmt.Sprintf("[%s..%s]", RenderExpr(access.Start), RenderExpr(access.End))
		case ast.AssigneeTupleIndex:
			out += fmt.Sprintf(".%d", access.TupleIndex)
		case ast.AssigneeMember:
			out += "." + access.Member.Name
		}
	}

	return out
}

func consoleOpText(op ast.ConsoleOp) string {
	switch op {
	case ast.ConsoleAssert:
		return "assert"
	case ast.ConsoleDebug:
		return "debug"
	case ast.ConsoleError:
		return "error"
	case ast.ConsoleLog:
		return "log"
	default:
		return "?console"
	}
}
