package sema

import (
	"github.com/nanoc-lang/nanoc/internal/ast"
	"github.com/nanoc-lang/nanoc/internal/symtab"
)

// Resolver is the first semantic pass: it registers every top-level
// function, then walks each function body confirming every name used
// resolves and every break/continue sits inside a loop.
type Resolver struct {
	table     *symtab.Table
	loopDepth int
}

// NewResolver builds a Resolver over a fresh, empty symbol table.
func NewResolver() *Resolver {
	return &Resolver{table: symtab.New()}
}

// Table returns the symbol table the resolver built. The resolver owns
// the table; the type checker borrows it mutably for the duration of its
// own pass.
func (r *Resolver) Table() *symtab.Table { return r.table }

// Resolve runs both resolution phases over prog: global function
// registration, then per-function body resolution.
func (r *Resolver) Resolve(prog *ast.Program) error {
	if err := r.registerGlobals(prog); err != nil {
		return err
	}
	for _, fn := range prog.Functions {
		if err := r.resolveFunction(fn); err != nil {
			return err
		}
	}
	return nil
}

// registerGlobals implements the prototype/redefinition rule: a second
// declaration with an identical signature is silently accepted (the
// first entry is kept); anything else is a DuplicateDeclaration.
func (r *Resolver) registerGlobals(prog *ast.Program) error {
	for _, fn := range prog.Functions {
		paramTypes := make([]ast.TypeSpec, len(fn.Params))
		for i, param := range fn.Params {
			paramTypes[i] = param.Type
		}
		newSym := &symtab.Symbol{
			Name: fn.Name, Type: fn.ReturnType, Kind: symtab.Function, ParamTypes: paramTypes,
		}

		if existing, ok := r.table.LookupGlobal(fn.Name); ok {
			if sameSignature(existing, newSym) {
				continue
			}
			return &symtab.DuplicateDeclarationError{Name: fn.Name}
		}
		if err := r.table.DeclareGlobal(fn.Name, newSym); err != nil {
			return err
		}
	}
	return nil
}

func sameSignature(a, b *symtab.Symbol) bool {
	if a.Kind != symtab.Function {
		return false
	}
	if !ast.TypesEqual(a.Type, b.Type) {
		return false
	}
	if len(a.ParamTypes) != len(b.ParamTypes) {
		return false
	}
	for i := range a.ParamTypes {
		if !ast.TypesEqual(a.ParamTypes[i], b.ParamTypes[i]) {
			return false
		}
	}
	return true
}

// resolveFunction pushes a scope, declares the parameters, resolves the
// body, and pops the scope. A prototype's body has zero statements and
// this runs the same way over it — resolving an empty statement list is
// a no-op, so prototypes and genuinely empty definitions behave
// identically here (they are indistinguishable at this layer anyway).
func (r *Resolver) resolveFunction(fn *ast.Function) error {
	r.table.PushScope()
	defer r.table.PopScope()

	for _, param := range fn.Params {
		// An anonymous prototype parameter (`int f(int);`) has no name to
		// declare and nothing ever looks it up, so it is simply skipped.
		if param.Name == "" {
			continue
		}
		sym := &symtab.Symbol{Name: param.Name, Type: param.Type, Kind: symtab.Variable}
		if err := r.table.Declare(param.Name, sym); err != nil {
			return err
		}
	}
	for _, stmt := range fn.Body.Stmts {
		if err := r.resolveStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (r *Resolver) resolveStmt(s ast.Stmt) error {
	switch node := s.(type) {
	case *ast.BlockStmt:
		// No extra scope per inner block at this pass; the checker is the
		// layer that scopes blocks.
		for _, inner := range node.Stmts {
			if err := r.resolveStmt(inner); err != nil {
				return err
			}
		}
		return nil

	case *ast.IfStmt:
		if err := r.resolveExpr(node.Cond); err != nil {
			return err
		}
		if err := r.resolveStmt(node.Then); err != nil {
			return err
		}
		if node.Else != nil {
			return r.resolveStmt(node.Else)
		}
		return nil

	case *ast.WhileStmt:
		if err := r.resolveExpr(node.Cond); err != nil {
			return err
		}
		r.loopDepth++
		err := r.resolveStmt(node.Body)
		r.loopDepth--
		return err

	case *ast.ForStmt:
		r.table.PushScope()
		err := r.resolveForClauses(node)
		r.table.PopScope()
		return err

	case *ast.ReturnStmt:
		if node.Value != nil {
			return r.resolveExpr(node.Value)
		}
		return nil

	case *ast.BreakStmt:
		if r.loopDepth == 0 {
			return &InvalidBreakError{Pos: node.BreakPos}
		}
		return nil

	case *ast.ContinueStmt:
		if r.loopDepth == 0 {
			return &InvalidContinueError{Pos: node.ContinuePos}
		}
		return nil

	case *ast.DeclStmt:
		return r.resolveDecl(node)

	case *ast.ExprStmt:
		if node.X != nil {
			return r.resolveExpr(node.X)
		}
		return nil
	}
	return nil
}

// resolveForClauses resolves a for loop's init/cond/post/body together in
// the one scope ForStmt's caller already pushed, so a for-declared
// variable is visible throughout but not after the loop.
func (r *Resolver) resolveForClauses(node *ast.ForStmt) error {
	if err := r.resolveStmt(node.Init); err != nil {
		return err
	}
	if node.Cond != nil {
		if err := r.resolveExpr(node.Cond); err != nil {
			return err
		}
	}
	if node.Post != nil {
		if err := r.resolveExpr(node.Post); err != nil {
			return err
		}
	}
	r.loopDepth++
	err := r.resolveStmt(node.Body)
	r.loopDepth--
	return err
}

func (r *Resolver) resolveDecl(node *ast.DeclStmt) error {
	for _, d := range node.Declarators {
		ty := node.Type
		if d.ArraySize != nil {
			ty = ast.PointerTo(node.Type)
		}
		sym := &symtab.Symbol{Name: d.Name, Type: ty, Kind: symtab.Variable}
		if err := r.table.Declare(d.Name, sym); err != nil {
			return err
		}
		if d.Init != nil {
			if err := r.resolveExpr(d.Init); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Resolver) resolveExpr(e ast.Expr) error {
	switch node := e.(type) {
	case *ast.Ident:
		if _, ok := r.table.Lookup(node.Name); !ok {
			return &UndefinedSymbolError{Name: node.Name, Pos: node.NamePos}
		}
		return nil

	case *ast.IntLiteral, *ast.CharLiteral:
		return nil

	case *ast.UnaryPrefixExpr:
		return r.resolveExpr(node.Rhs)

	case *ast.UnaryPostfixExpr:
		return r.resolveExpr(node.Lhs)

	case *ast.BinaryExpr:
		if err := r.resolveExpr(node.Lhs); err != nil {
			return err
		}
		return r.resolveExpr(node.Rhs)

	case *ast.AssignExpr:
		if err := r.resolveExpr(node.Left); err != nil {
			return err
		}
		return r.resolveExpr(node.Right)

	case *ast.CallExpr:
		sym, ok := r.table.Lookup(node.Func.Name)
		if !ok {
			return &UndefinedSymbolError{Name: node.Func.Name, Pos: node.Func.NamePos}
		}
		if sym.Kind != symtab.Function {
			return &NotAFunctionError{Name: node.Func.Name, Pos: node.Func.NamePos}
		}
		for _, arg := range node.Args {
			if err := r.resolveExpr(arg); err != nil {
				return err
			}
		}
		return nil

	case *ast.ArrayIndexExpr:
		if err := r.resolveExpr(node.Array); err != nil {
			return err
		}
		return r.resolveExpr(node.Index)

	case *ast.InitializerListExpr:
		for _, el := range node.Elems {
			if err := r.resolveExpr(el); err != nil {
				return err
			}
		}
		return nil
	}
	return nil
}
