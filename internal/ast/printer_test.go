package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nanoc-lang/nanoc/internal/ast"
)

func TestDumpRendersFunctionTree(t *testing.T) {
	prog := &ast.Program{Functions: []*ast.Function{{
		Name:       "add",
		ReturnType: ast.IntType(),
		Params: []ast.Param{
			{Name: "a", Type: ast.IntType()},
			{Name: "b", Type: ast.IntType()},
		},
		Body: &ast.BlockStmt{Stmts: []ast.Stmt{
			&ast.ReturnStmt{Value: &ast.BinaryExpr{
				Lhs: &ast.Ident{Name: "a"},
				Op:  "+",
				Rhs: &ast.Ident{Name: "b"},
			}},
		}},
	}}}

	out := ast.Dump(prog)
	assert.Contains(t, out, "Function(add) -> int")
	assert.Contains(t, out, "Param(a: int)")
	assert.Contains(t, out, "BinaryOp(+)")
	assert.Contains(t, out, "Ident(a)")
}

func TestDumpHandlesNilChildren(t *testing.T) {
	prog := &ast.Program{Functions: []*ast.Function{{
		Name:       "f",
		ReturnType: ast.VoidType(),
		Body: &ast.BlockStmt{Stmts: []ast.Stmt{
			&ast.IfStmt{Cond: &ast.IntLiteral{Value: 1}, Then: &ast.ReturnStmt{}},
			&ast.ForStmt{Init: &ast.ExprStmt{}, Body: &ast.BlockStmt{}},
		}},
	}}}

	out := ast.Dump(prog)
	assert.Contains(t, out, "If")
	assert.Contains(t, out, "Return(none)")
	assert.Contains(t, out, "For")
}
