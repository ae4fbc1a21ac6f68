// Package sema implements the two-pass semantic analyzer: a name/scope
// resolver followed by a type checker, both walking the same AST and
// sharing one symtab.Table.
package sema

import (
	"fmt"

	"github.com/nanoc-lang/nanoc/internal/ast"
	"github.com/nanoc-lang/nanoc/internal/token"
)

// UndefinedSymbolError is raised when an Ident or a Call's function name
// does not resolve in any open scope.
type UndefinedSymbolError struct {
	Name string
	Pos  token.Position
}

func (e *UndefinedSymbolError) Error() string {
	return fmt.Sprintf("%s: undefined symbol %q", e.Pos, e.Name)
}

// InvalidBreakError is raised by a break outside any loop.
type InvalidBreakError struct {
	Pos token.Position
}

func (e *InvalidBreakError) Error() string {
	return fmt.Sprintf("%s: break outside a loop", e.Pos)
}

// InvalidContinueError is raised by a continue outside any loop.
type InvalidContinueError struct {
	Pos token.Position
}

func (e *InvalidContinueError) Error() string {
	return fmt.Sprintf("%s: continue outside a loop", e.Pos)
}

// TypeMismatchError covers every "expected this type, found that one"
// failure in the checker.
type TypeMismatchError struct {
	Expected ast.TypeSpec
	Found    ast.TypeSpec
	Pos      token.Position
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: type mismatch: expected %s, found %s", e.Pos, e.Expected, e.Found)
}

// NotAFunctionError is raised when a call target resolves to a non-
// function symbol.
type NotAFunctionError struct {
	Name string
	Pos  token.Position
}

func (e *NotAFunctionError) Error() string {
	return fmt.Sprintf("%s: %q is not a function", e.Pos, e.Name)
}

// ArgumentCountMismatchError is raised when a call's argument count
// differs from the callee's declared parameter count.
type ArgumentCountMismatchError struct {
	Expected int
	Found    int
	Pos      token.Position
}

func (e *ArgumentCountMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %d argument(s), found %d", e.Pos, e.Expected, e.Found)
}

// ExpectedPointerError is raised when an array-index base is not a
// pointer type. Dereferencing a non-pointer is reported as
// TypeMismatchError instead.
type ExpectedPointerError struct {
	Found ast.TypeSpec
	Pos   token.Position
}

func (e *ExpectedPointerError) Error() string {
	return fmt.Sprintf("%s: expected a pointer type, found %s", e.Pos, e.Found)
}

// InvalidReturnTypeError is reserved by the error taxonomy but not
// currently raised: return-type mismatches are reported as
// TypeMismatchError instead.
type InvalidReturnTypeError struct {
	Expected ast.TypeSpec
	Found    ast.TypeSpec
	Pos      token.Position
}

func (e *InvalidReturnTypeError) Error() string {
	return fmt.Sprintf("%s: invalid return type: expected %s, found %s", e.Pos, e.Expected, e.Found)
}
