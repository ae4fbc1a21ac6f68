package sema

import "github.com/nanoc-lang/nanoc/internal/ast"

// Analyze runs both semantic passes over prog in order: name/scope
// resolution, then type checking. It is the analyze entry point of the
// library's public surface.
func Analyze(prog *ast.Program) error {
	r := NewResolver()
	if err := r.Resolve(prog); err != nil {
		return err
	}
	return NewChecker(r.Table()).Check(prog)
}
