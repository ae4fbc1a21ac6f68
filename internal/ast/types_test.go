package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nanoc-lang/nanoc/internal/ast"
)

func TestTypesEqualScalars(t *testing.T) {
	assert.True(t, ast.TypesEqual(ast.IntType(), ast.IntType()))
	assert.False(t, ast.TypesEqual(ast.IntType(), ast.CharType()))
	assert.False(t, ast.TypesEqual(ast.IntType(), ast.VoidType()))
}

func TestTypesEqualPointers(t *testing.T) {
	pInt := ast.PointerTo(ast.IntType())
	pInt2 := ast.PointerTo(ast.IntType())
	pChar := ast.PointerTo(ast.CharType())
	ppInt := ast.PointerTo(ast.PointerTo(ast.IntType()))

	assert.True(t, ast.TypesEqual(pInt, pInt2))
	assert.False(t, ast.TypesEqual(pInt, pChar))
	assert.False(t, ast.TypesEqual(pInt, ppInt))
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "int", ast.IntType().String())
	assert.Equal(t, "char*", ast.PointerTo(ast.CharType()).String())
	assert.Equal(t, "int**", ast.PointerTo(ast.PointerTo(ast.IntType())).String())
}

func TestIsPointer(t *testing.T) {
	inner, ok := ast.PointerTo(ast.IntType()).IsPointer()
	assert.True(t, ok)
	assert.True(t, ast.TypesEqual(inner, ast.IntType()))

	_, ok = ast.IntType().IsPointer()
	assert.False(t, ok)
}
