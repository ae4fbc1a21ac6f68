// Package symtab implements the lexically-nested symbol table shared by
// the name resolver and the type checker. The resolver owns
// the Table instance; the type checker borrows it mutably for the
// duration of its own pass. At no point do both hold it concurrently.
package symtab

import (
	"fmt"

	"github.com/nanoc-lang/nanoc/internal/ast"
)

// Kind distinguishes a variable symbol from a function symbol.
type Kind int

const (
	Variable Kind = iota
	Function
)

// Symbol is the analyzer's record for one declared name.
type Symbol struct {
	Name string
	Type ast.TypeSpec // for a Function symbol, this is its return type
	Kind Kind

	// ParamTypes is set only for Function symbols.
	ParamTypes []ast.TypeSpec
}

// DuplicateDeclarationError is returned by Declare when name is already
// bound in the innermost scope.
type DuplicateDeclarationError struct {
	Name string
}

func (e *DuplicateDeclarationError) Error() string {
	return fmt.Sprintf("duplicate declaration: %s", e.Name)
}

// Table is a stack of scope frames, each mapping name to Symbol with
// unique keys per frame. The stack is never empty: a Table always has at
// least the global frame.
type Table struct {
	scopes []map[string]*Symbol
}

// New creates a Table containing a single, empty global frame.
func New() *Table {
	return &Table{scopes: []map[string]*Symbol{make(map[string]*Symbol)}}
}

// PushScope opens a new, empty innermost frame.
func (t *Table) PushScope() {
	t.scopes = append(t.scopes, make(map[string]*Symbol))
}

// PopScope closes the innermost frame. It panics if called when only the
// global frame remains, since that would violate the "stack is never
// empty" invariant callers rely on.
func (t *Table) PopScope() {
	if len(t.scopes) <= 1 {
		panic("symtab: PopScope called with only the global frame left")
	}
	t.scopes = t.scopes[:len(t.scopes)-1]
}

// Depth reports the current number of open scope frames (>= 1).
func (t *Table) Depth() int { return len(t.scopes) }

// Declare binds name to sym in the innermost frame. It fails with
// *DuplicateDeclarationError if name is already bound in that frame;
// declarations in outer frames do not conflict (shadowing is allowed).
func (t *Table) Declare(name string, sym *Symbol) error {
	innermost := t.scopes[len(t.scopes)-1]
	if _, exists := innermost[name]; exists {
		return &DuplicateDeclarationError{Name: name}
	}
	innermost[name] = sym
	return nil
}

// Lookup searches frames innermost-first and returns the first match.
func (t *Table) Lookup(name string) (*Symbol, bool) {
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if sym, ok := t.scopes[i][name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// DeclareGlobal binds name in the outermost (global) frame directly,
// independent of how deep the stack currently is. Used by the resolver's
// global-registration phase, which always targets the global frame even
// though at that point it also happens to be the only frame open.
func (t *Table) DeclareGlobal(name string, sym *Symbol) error {
	global := t.scopes[0]
	if _, exists := global[name]; exists {
		return &DuplicateDeclarationError{Name: name}
	}
	global[name] = sym
	return nil
}

// LookupGlobal looks up name in the outermost (global) frame only.
func (t *Table) LookupGlobal(name string) (*Symbol, bool) {
	sym, ok := t.scopes[0][name]
	return sym, ok
}
