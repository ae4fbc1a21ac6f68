package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanoc-lang/nanoc/internal/ast"
	"github.com/nanoc-lang/nanoc/internal/lexer"
	"github.com/nanoc-lang/nanoc/internal/parser"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := parser.Parse(lexer.Lex(src))
	require.NoError(t, err)
	return prog
}

func parseErr(t *testing.T, src string) error {
	t.Helper()
	_, err := parser.Parse(lexer.Lex(src))
	require.Error(t, err)
	return err
}

func TestSimpleFunctionAST(t *testing.T) {
	prog := parse(t, "int add(int a, int b) { return a + b; }")
	require.Len(t, prog.Functions, 1)
	fn := prog.Functions[0]
	assert.Equal(t, "add", fn.Name)
	assert.True(t, ast.TypesEqual(ast.IntType(), fn.ReturnType))
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Name)
	assert.Equal(t, "b", fn.Params[1].Name)

	require.Len(t, fn.Body.Stmts, 1)
	ret, ok := fn.Body.Stmts[0].(*ast.ReturnStmt)
	require.True(t, ok)
	bin, ok := ret.Value.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Op)
	assert.Equal(t, "a", bin.Lhs.(*ast.Ident).Name)
	assert.Equal(t, "b", bin.Rhs.(*ast.Ident).Name)
}

// Call-site argument counts are not the parser's concern; a mismatched
// call still parses and is rejected later by sema.
func TestCallWithArgumentParses(t *testing.T) {
	prog := parse(t, "int f() { return 1; } int g() { return f(1); }")
	require.Len(t, prog.Functions, 2)
	ret := prog.Functions[1].Body.Stmts[0].(*ast.ReturnStmt)
	call, ok := ret.Value.(*ast.CallExpr)
	require.True(t, ok)
	assert.Equal(t, "f", call.Func.Name)
	assert.Len(t, call.Args, 1)
}

// A bare break parses fine structurally; rejecting it outside a loop is
// a sema concern.
func TestBareBreakParses(t *testing.T) {
	prog := parse(t, "int main() { break; }")
	_, ok := prog.Functions[0].Body.Stmts[0].(*ast.BreakStmt)
	assert.True(t, ok)
}

func TestPointerDeclarationAddressOfAndDereference(t *testing.T) {
	prog := parse(t, "int main() { int *p; int x = 0; p = &x; int y = *p; return 0; }")
	fn := prog.Functions[0]
	declP := fn.Body.Stmts[0].(*ast.DeclStmt)
	assert.True(t, ast.TypesEqual(ast.PointerTo(ast.IntType()), declP.Type))

	assign := fn.Body.Stmts[2].(*ast.ExprStmt).X.(*ast.AssignExpr)
	addr, ok := assign.Right.(*ast.UnaryPrefixExpr)
	require.True(t, ok)
	assert.Equal(t, "&", addr.Op)

	declY := fn.Body.Stmts[3].(*ast.DeclStmt)
	deref, ok := declY.Declarators[0].Init.(*ast.UnaryPrefixExpr)
	require.True(t, ok)
	assert.Equal(t, "*", deref.Op)
}

// An unterminated char literal becomes an ERROR token. At the start of
// the program a function's type specifier is expected, so the parser
// reports the ERROR token found there as UnexpectedToken.
func TestUnterminatedCharLiteralFailsToParse(t *testing.T) {
	err := parseErr(t, "'x")
	var pe *parser.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, parser.UnexpectedToken, pe.Kind)
}

// Trailing comma permitted in initializer lists, array size kept.
func TestArrayInitializerWithTrailingComma(t *testing.T) {
	prog := parse(t, "int main() { int a[3] = {1, 2, 3,}; return 0; }")
	decl := prog.Functions[0].Body.Stmts[0].(*ast.DeclStmt)
	d := decl.Declarators[0]
	require.NotNil(t, d.ArraySize)
	assert.EqualValues(t, 3, *d.ArraySize)
	list, ok := d.Init.(*ast.InitializerListExpr)
	require.True(t, ok)
	require.Len(t, list.Elems, 3)
	for i, want := range []int64{1, 2, 3} {
		lit := list.Elems[i].(*ast.IntLiteral)
		assert.Equal(t, want, lit.Value)
	}
}

// Precedence and associativity across the binary operator ladder,
// including where the bitwise level sits.
func TestPrecedenceAndAssociativity(t *testing.T) {
	cases := []struct {
		name string
		expr string
		// want describes the expected top-level operator and which side
		// carries the nested binary expression.
		topOp      string
		nestedSide string // "lhs" or "rhs"
		nestedOp   string
	}{
		{"mul binds tighter than add", "a + b * c", "+", "rhs", "*"},
		{"add left-associative", "a - b - c", "-", "lhs", "-"},
		{"relational looser than additive", "a + b < c", "<", "lhs", "+"},
		{"equality looser than relational", "a < b == c", "==", "lhs", "<"},
		{"and looser than equality", "a == b && c", "&&", "lhs", "=="},
		{"or looser than and", "a && b || c", "||", "lhs", "&&"},
		{"bitwise looser than additive", "a & b + c", "&", "rhs", "+"},
		{"relational looser than bitwise", "a < b & c", "<", "rhs", "&"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prog := parse(t, "int f() { return "+tc.expr+"; }")
			ret := prog.Functions[0].Body.Stmts[0].(*ast.ReturnStmt)
			top, ok := ret.Value.(*ast.BinaryExpr)
			require.True(t, ok)
			assert.Equal(t, tc.topOp, top.Op)

			var nested ast.Expr
			if tc.nestedSide == "lhs" {
				nested = top.Lhs
			} else {
				nested = top.Rhs
			}
			nestedBin, ok := nested.(*ast.BinaryExpr)
			require.True(t, ok, "expected nested BinaryExpr on %s", tc.nestedSide)
			assert.Equal(t, tc.nestedOp, nestedBin.Op)
		})
	}
}

func TestAssignmentIsRightAssociative(t *testing.T) {
	prog := parse(t, "int f() { int a; int b; int c; a = b = c; return 0; }")
	stmt := prog.Functions[0].Body.Stmts[3].(*ast.ExprStmt)
	outer := stmt.X.(*ast.AssignExpr)
	assert.Equal(t, "a", outer.Left.(*ast.Ident).Name)
	inner, ok := outer.Right.(*ast.AssignExpr)
	require.True(t, ok)
	assert.Equal(t, "b", inner.Left.(*ast.Ident).Name)
	assert.Equal(t, "c", inner.Right.(*ast.Ident).Name)
}

func TestAmpersandAsPrefixIsAddressOf(t *testing.T) {
	prog := parse(t, "int f() { int x; int *p; p = &x; return 0; }")
	assign := prog.Functions[0].Body.Stmts[2].(*ast.ExprStmt).X.(*ast.AssignExpr)
	unary, ok := assign.Right.(*ast.UnaryPrefixExpr)
	require.True(t, ok)
	assert.Equal(t, "&", unary.Op)
}

func TestAmpersandBetweenOperandsIsBitwiseAnd(t *testing.T) {
	prog := parse(t, "int f() { int a; int b; int c; c = a & b; return 0; }")
	assign := prog.Functions[0].Body.Stmts[3].(*ast.ExprStmt).X.(*ast.AssignExpr)
	bin, ok := assign.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "&", bin.Op)
}

func TestVoidParameterMarkerYieldsNoParams(t *testing.T) {
	prog := parse(t, "int main(void) { return 0; }")
	assert.Empty(t, prog.Functions[0].Params)
}

func TestArrayParamDecaysToPointer(t *testing.T) {
	prog := parse(t, "int f(int xs[10]) { return 0; }")
	p := prog.Functions[0].Params[0]
	assert.True(t, ast.TypesEqual(ast.PointerTo(ast.IntType()), p.Type))
}

func TestDanglingElseBindsToNearestIf(t *testing.T) {
	prog := parse(t, "int f() { if (1) if (2) return 1; else return 2; return 0; }")
	outer := prog.Functions[0].Body.Stmts[0].(*ast.IfStmt)
	inner, ok := outer.Then.(*ast.IfStmt)
	require.True(t, ok)
	assert.NotNil(t, inner.Else)
	assert.Nil(t, outer.Else)
}

func TestForLoopWithEmptyClauses(t *testing.T) {
	prog := parse(t, "int f() { for (;;) { break; } return 0; }")
	forStmt := prog.Functions[0].Body.Stmts[0].(*ast.ForStmt)
	assert.Nil(t, forStmt.Cond)
	assert.Nil(t, forStmt.Post)
	exprInit, ok := forStmt.Init.(*ast.ExprStmt)
	require.True(t, ok)
	assert.Nil(t, exprInit.X)
}

func TestForLoopWithDeclarationInit(t *testing.T) {
	prog := parse(t, "int f() { for (int i = 0; i; i = i + 1) { } return 0; }")
	forStmt := prog.Functions[0].Body.Stmts[0].(*ast.ForStmt)
	decl, ok := forStmt.Init.(*ast.DeclStmt)
	require.True(t, ok)
	assert.Equal(t, "i", decl.Declarators[0].Name)
}

func TestFunctionPrototypeHasEmptyBody(t *testing.T) {
	prog := parse(t, "int f(int x);")
	assert.Empty(t, prog.Functions[0].Body.Stmts)
}

func TestTrailingCommaNotAllowedInCallArgs(t *testing.T) {
	err := parseErr(t, "int f() { return g(1, 2,); }")
	var pe *parser.ParseError
	require.ErrorAs(t, err, &pe)
}

func TestEmptyStatementParses(t *testing.T) {
	prog := parse(t, "int f() { ; return 0; }")
	_, ok := prog.Functions[0].Body.Stmts[0].(*ast.ExprStmt)
	require.True(t, ok)
	assert.Nil(t, prog.Functions[0].Body.Stmts[0].(*ast.ExprStmt).X)
}

func TestUnexpectedEOFIsReportedDistinctly(t *testing.T) {
	err := parseErr(t, "int f() {")
	var pe *parser.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, parser.UnexpectedEOF, pe.Kind)
}

func TestUnexpectedTokenInFunctionHeader(t *testing.T) {
	err := parseErr(t, "int 5() {}")
	var pe *parser.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, parser.UnexpectedToken, pe.Kind)
}
