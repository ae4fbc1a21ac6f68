package sema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanoc-lang/nanoc/internal/ast"
	"github.com/nanoc-lang/nanoc/internal/lexer"
	"github.com/nanoc-lang/nanoc/internal/parser"
	"github.com/nanoc-lang/nanoc/internal/sema"
	"github.com/nanoc-lang/nanoc/internal/symtab"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := parser.Parse(lexer.Lex(src))
	require.NoError(t, err)
	return prog
}

func TestAddFunctionAnalyzesOK(t *testing.T) {
	prog := mustParse(t, "int add(int a, int b) { return a + b; }")
	assert.NoError(t, sema.Analyze(prog))
}

// Mixing Char and Int arithmetic yields Int.
func TestCharIntArithmeticAnalyzesOK(t *testing.T) {
	prog := mustParse(t, "int main() { int x = 'A' + 1; return x; }")
	assert.NoError(t, sema.Analyze(prog))
}

func TestArgumentCountMismatch(t *testing.T) {
	prog := mustParse(t, "int f() { return 1; } int g() { return f(1); }")
	err := sema.Analyze(prog)
	require.Error(t, err)
	var mismatch *sema.ArgumentCountMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 0, mismatch.Expected)
	assert.Equal(t, 1, mismatch.Found)
}

func TestBreakOutsideLoopFails(t *testing.T) {
	prog := mustParse(t, "int main() { break; }")
	err := sema.Analyze(prog)
	var invalid *sema.InvalidBreakError
	require.ErrorAs(t, err, &invalid)
}

func TestPointersAnalyzeOK(t *testing.T) {
	prog := mustParse(t, "int main() { int *p; int x = 0; p = &x; int y = *p; return 0; }")
	assert.NoError(t, sema.Analyze(prog))
}

func TestArrayInitializerAnalyzesOK(t *testing.T) {
	prog := mustParse(t, "int main() { int a[3] = {1, 2, 3,}; return 0; }")
	assert.NoError(t, sema.Analyze(prog))
}

// After a successful analysis only the global frame remains open.
func TestScopeCleanlinessAfterSuccessfulAnalysis(t *testing.T) {
	prog := mustParse(t, `
		int helper(int n) { return n * 2; }
		int main() {
			int total = 0;
			for (int i = 0; i < 10; i = i + 1) {
				total = total + helper(i);
			}
			return total;
		}
	`)
	r := sema.NewResolver()
	require.NoError(t, r.Resolve(prog))
	require.NoError(t, sema.NewChecker(r.Table()).Check(prog))
	assert.Equal(t, 1, r.Table().Depth())
}

// A prototype and a matching definition coexist in either order; a
// mismatched signature is a duplicate declaration.
func TestPrototypeThenDefinitionSucceeds(t *testing.T) {
	prog := mustParse(t, "int f(int); int f(int x) { return x; }")
	assert.NoError(t, sema.Analyze(prog))
}

func TestDefinitionThenMatchingPrototypeSucceeds(t *testing.T) {
	prog := mustParse(t, "int f(int x) { return x; } int f(int);")
	assert.NoError(t, sema.Analyze(prog))
}

func TestMismatchedPrototypeParamTypeFails(t *testing.T) {
	prog := mustParse(t, "int f(int); int f(char x) { return x; }")
	err := sema.Analyze(prog)
	var dup *symtab.DuplicateDeclarationError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "f", dup.Name)
}

func TestBreakContinueAcceptedInsideWhile(t *testing.T) {
	prog := mustParse(t, "int main() { while (1) { break; continue; } return 0; }")
	assert.NoError(t, sema.Analyze(prog))
}

func TestBreakContinueAcceptedInsideFor(t *testing.T) {
	prog := mustParse(t, "int main() { for (;;) { if (1) { break; } continue; } return 0; }")
	assert.NoError(t, sema.Analyze(prog))
}

func TestContinueOutsideLoopFails(t *testing.T) {
	prog := mustParse(t, "int main() { continue; }")
	err := sema.Analyze(prog)
	var invalid *sema.InvalidContinueError
	require.ErrorAs(t, err, &invalid)
}

func TestUndefinedSymbolFails(t *testing.T) {
	prog := mustParse(t, "int main() { return y; }")
	err := sema.Analyze(prog)
	var undef *sema.UndefinedSymbolError
	require.ErrorAs(t, err, &undef)
	assert.Equal(t, "y", undef.Name)
}

func TestCallToVariableFails(t *testing.T) {
	prog := mustParse(t, "int main() { int f; return f(); }")
	err := sema.Analyze(prog)
	var notFn *sema.NotAFunctionError
	require.ErrorAs(t, err, &notFn)
}

func TestDerefOfNonPointerFails(t *testing.T) {
	prog := mustParse(t, "int main() { int x; int y = *x; return 0; }")
	err := sema.Analyze(prog)
	var mismatch *sema.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestIndexOfNonPointerFails(t *testing.T) {
	prog := mustParse(t, "int main() { int x; return x[0]; }")
	err := sema.Analyze(prog)
	var expected *sema.ExpectedPointerError
	require.ErrorAs(t, err, &expected)
}

func TestCharReturnAcceptsIntExpression(t *testing.T) {
	prog := mustParse(t, "char f() { return 1 + 2; }")
	assert.NoError(t, sema.Analyze(prog))
}

func TestIntReturnRejectsCharExpression(t *testing.T) {
	// Char -> Int is not the allowed direction: only Int found where Char
	// is expected is special-cased. A Char expression returned where Int
	// is expected must still equal exactly, but Char and Int share no
	// implicit narrowing, so this is a TypeMismatch.
	prog := mustParse(t, "int f() { return 'a'; }")
	err := sema.Analyze(prog)
	var mismatch *sema.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestIfConditionRejectsChar(t *testing.T) {
	prog := mustParse(t, "int main() { if ('a') { return 1; } return 0; }")
	err := sema.Analyze(prog)
	var mismatch *sema.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestDuplicateParameterNameFails(t *testing.T) {
	prog := mustParse(t, "int f(int a, int a) { return a; }")
	err := sema.Analyze(prog)
	var dup *symtab.DuplicateDeclarationError
	require.ErrorAs(t, err, &dup)
}

func TestShadowingInNestedForScopeIsAllowed(t *testing.T) {
	prog := mustParse(t, `
		int main() {
			int i = 100;
			for (int i = 0; i < 3; i = i + 1) { }
			return i;
		}
	`)
	assert.NoError(t, sema.Analyze(prog))
}

func TestEmptyInitializerListDefaultsToFunctionReturnType(t *testing.T) {
	// An empty list borrows the enclosing function's return type as its
	// own type, so this only analyzes OK when that and the declared type
	// happen to coincide.
	prog := mustParse(t, "int f() { int xs[0] = {}; return 0; }")
	assert.NoError(t, sema.Analyze(prog))
}
