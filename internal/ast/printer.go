package ast

import (
	"fmt"
	"strings"
)

// stringer is satisfied by every Stmt and Expr node type; it exists only so Dump
// can print a node without a giant type switch for the leaf case.
type stringer interface{ String() string }

// Dump renders prog as an indented tree, one node per line. It exists for
// debugging and for the optional CLI driver; the core analyzer never
// calls it.
func Dump(prog *Program) string {
	var sb strings.Builder
	for _, fn := range prog.Functions {
		dumpFunction(&sb, fn, 0)
	}
	return sb.String()
}

func indent(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
}

func dumpFunction(sb *strings.Builder, fn *Function, depth int) {
	indent(sb, depth)
	fmt.Fprintf(sb, "Function(%s) -> %s\n", fn.Name, fn.ReturnType)
	for _, p := range fn.Params {
		indent(sb, depth+1)
		fmt.Fprintf(sb, "Param(%s: %s)\n", p.Name, p.Type)
	}
	dumpStmt(sb, fn.Body, depth+1)
}

func dumpStmt(sb *strings.Builder, s Stmt, depth int) {
	if s == nil {
		return
	}
	if str, ok := s.(stringer); ok {
		indent(sb, depth)
		sb.WriteString(str.String())
		sb.WriteString("\n")
	}

	switch node := s.(type) {
	case *BlockStmt:
		for _, inner := range node.Stmts {
			dumpStmt(sb, inner, depth+1)
		}
	case *IfStmt:
		dumpExpr(sb, node.Cond, depth+1)
		dumpStmt(sb, node.Then, depth+1)
		dumpStmt(sb, node.Else, depth+1)
	case *WhileStmt:
		dumpExpr(sb, node.Cond, depth+1)
		dumpStmt(sb, node.Body, depth+1)
	case *ForStmt:
		dumpStmt(sb, node.Init, depth+1)
		dumpExpr(sb, node.Cond, depth+1)
		dumpExpr(sb, node.Post, depth+1)
		dumpStmt(sb, node.Body, depth+1)
	case *ReturnStmt:
		dumpExpr(sb, node.Value, depth+1)
	case *DeclStmt:
		for _, d := range node.Declarators {
			indent(sb, depth+1)
			fmt.Fprintf(sb, "Declarator(%s)\n", d.Name)
			dumpExpr(sb, d.Init, depth+2)
		}
	case *ExprStmt:
		dumpExpr(sb, node.X, depth+1)
	}
}

func dumpExpr(sb *strings.Builder, e Expr, depth int) {
	if e == nil {
		return
	}
	if str, ok := e.(stringer); ok {
		indent(sb, depth)
		sb.WriteString(str.String())
		sb.WriteString("\n")
	}

	switch node := e.(type) {
	case *UnaryPrefixExpr:
		dumpExpr(sb, node.Rhs, depth+1)
	case *UnaryPostfixExpr:
		dumpExpr(sb, node.Lhs, depth+1)
	case *BinaryExpr:
		dumpExpr(sb, node.Lhs, depth+1)
		dumpExpr(sb, node.Rhs, depth+1)
	case *AssignExpr:
		dumpExpr(sb, node.Left, depth+1)
		dumpExpr(sb, node.Right, depth+1)
	case *CallExpr:
		for _, a := range node.Args {
			dumpExpr(sb, a, depth+1)
		}
	case *ArrayIndexExpr:
		dumpExpr(sb, node.Array, depth+1)
		dumpExpr(sb, node.Index, depth+1)
	case *InitializerListExpr:
		for _, el := range node.Elems {
			dumpExpr(sb, el, depth+1)
		}
	}
}
