package sema

import (
	"fmt"

	"github.com/nanoc-lang/nanoc/internal/ast"
	"github.com/nanoc-lang/nanoc/internal/symtab"
)

// Checker is the second semantic pass: it assigns and validates a type
// for every expression and statement, borrowing the resolver's symbol
// table.
type Checker struct {
	table           *symtab.Table
	currentReturnTy ast.TypeSpec
}

// NewChecker builds a Checker over table, which the caller's Resolver has
// already balanced back down to just the global frame.
func NewChecker(table *symtab.Table) *Checker {
	return &Checker{table: table}
}

// Check type-checks every function in prog.
func (c *Checker) Check(prog *ast.Program) error {
	for _, fn := range prog.Functions {
		if err := c.checkFunction(fn); err != nil {
			return err
		}
	}
	return nil
}

func (c *Checker) checkFunction(fn *ast.Function) error {
	prevReturnTy := c.currentReturnTy
	c.currentReturnTy = fn.ReturnType
	defer func() { c.currentReturnTy = prevReturnTy }()

	c.table.PushScope()
	defer c.table.PopScope()

	for _, param := range fn.Params {
		if param.Name == "" {
			continue
		}
		sym := &symtab.Symbol{Name: param.Name, Type: param.Type, Kind: symtab.Variable}
		if err := c.table.Declare(param.Name, sym); err != nil {
			return err
		}
	}
	for _, stmt := range fn.Body.Stmts {
		if err := c.checkStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

// typesCompatible is the one coercion the checker allows: a Char-typed
// destination accepts an Int-typed source. The allowance covers return
// values and declarator initializers alike; every other pairing must be
// structurally equal.
func typesCompatible(expected, found ast.TypeSpec) bool {
	if ast.TypesEqual(expected, found) {
		return true
	}
	return ast.TypesEqual(expected, ast.CharType()) && ast.TypesEqual(found, ast.IntType())
}

func isIntOrChar(t ast.TypeSpec) bool {
	return ast.TypesEqual(t, ast.IntType()) || ast.TypesEqual(t, ast.CharType())
}

func (c *Checker) checkStmt(s ast.Stmt) error {
	switch node := s.(type) {
	case *ast.BlockStmt:
		c.table.PushScope()
		defer c.table.PopScope()
		for _, inner := range node.Stmts {
			if err := c.checkStmt(inner); err != nil {
				return err
			}
		}
		return nil

	case *ast.IfStmt:
		if err := c.checkCondition(node.Cond); err != nil {
			return err
		}
		if err := c.checkStmt(node.Then); err != nil {
			return err
		}
		if node.Else != nil {
			return c.checkStmt(node.Else)
		}
		return nil

	case *ast.WhileStmt:
		if err := c.checkCondition(node.Cond); err != nil {
			return err
		}
		return c.checkStmt(node.Body)

	case *ast.ForStmt:
		c.table.PushScope()
		defer c.table.PopScope()
		if err := c.checkStmt(node.Init); err != nil {
			return err
		}
		if node.Cond != nil {
			if err := c.checkCondition(node.Cond); err != nil {
				return err
			}
		}
		if node.Post != nil {
			if _, err := c.checkExpr(node.Post); err != nil {
				return err
			}
		}
		return c.checkStmt(node.Body)

	case *ast.ReturnStmt:
		if node.Value == nil {
			return nil
		}
		ty, err := c.checkExpr(node.Value)
		if err != nil {
			return err
		}
		if !typesCompatible(c.currentReturnTy, ty) {
			return &TypeMismatchError{Expected: c.currentReturnTy, Found: ty, Pos: node.Value.Pos()}
		}
		return nil

	case *ast.BreakStmt, *ast.ContinueStmt:
		return nil

	case *ast.DeclStmt:
		return c.checkDecl(node)

	case *ast.ExprStmt:
		if node.X == nil {
			return nil
		}
		_, err := c.checkExpr(node.X)
		return err
	}
	return nil
}

func (c *Checker) checkCondition(cond ast.Expr) error {
	ty, err := c.checkExpr(cond)
	if err != nil {
		return err
	}
	if !ast.TypesEqual(ty, ast.IntType()) {
		return &TypeMismatchError{Expected: ast.IntType(), Found: ty, Pos: cond.Pos()}
	}
	return nil
}

func (c *Checker) checkDecl(node *ast.DeclStmt) error {
	for _, d := range node.Declarators {
		declTy := node.Type
		if d.ArraySize != nil {
			declTy = ast.PointerTo(node.Type)
		}
		if d.Init != nil {
			initTy, err := c.checkExpr(d.Init)
			if err != nil {
				return err
			}
			if !typesCompatible(node.Type, initTy) {
				return &TypeMismatchError{Expected: node.Type, Found: initTy, Pos: d.Init.Pos()}
			}
		}
		sym := &symtab.Symbol{Name: d.Name, Type: declTy, Kind: symtab.Variable}
		if err := c.table.Declare(d.Name, sym); err != nil {
			return err
		}
	}
	return nil
}

func (c *Checker) checkExpr(e ast.Expr) (ast.TypeSpec, error) {
	switch node := e.(type) {
	case *ast.IntLiteral:
		return ast.IntType(), nil

	case *ast.CharLiteral:
		return ast.CharType(), nil

	case *ast.Ident:
		sym, ok := c.table.Lookup(node.Name)
		if !ok {
			return ast.TypeSpec{}, &UndefinedSymbolError{Name: node.Name, Pos: node.NamePos}
		}
		return sym.Type, nil

	case *ast.UnaryPrefixExpr:
		return c.checkUnaryPrefix(node)

	case *ast.UnaryPostfixExpr:
		ty, err := c.checkExpr(node.Lhs)
		if err != nil {
			return ast.TypeSpec{}, err
		}
		if !ast.TypesEqual(ty, ast.IntType()) {
			return ast.TypeSpec{}, &TypeMismatchError{Expected: ast.IntType(), Found: ty, Pos: node.Pos()}
		}
		return ast.IntType(), nil

	case *ast.BinaryExpr:
		return c.checkBinary(node)

	case *ast.AssignExpr:
		lty, err := c.checkExpr(node.Left)
		if err != nil {
			return ast.TypeSpec{}, err
		}
		rty, err := c.checkExpr(node.Right)
		if err != nil {
			return ast.TypeSpec{}, err
		}
		if !ast.TypesEqual(lty, rty) {
			return ast.TypeSpec{}, &TypeMismatchError{Expected: lty, Found: rty, Pos: node.Pos()}
		}
		return lty, nil

	case *ast.CallExpr:
		return c.checkCall(node)

	case *ast.ArrayIndexExpr:
		return c.checkArrayIndex(node)

	case *ast.InitializerListExpr:
		return c.checkInitializerList(node)
	}
	return ast.TypeSpec{}, fmt.Errorf("sema: unhandled expression node %T", e)
}

func (c *Checker) checkUnaryPrefix(node *ast.UnaryPrefixExpr) (ast.TypeSpec, error) {
	switch node.Op {
	case "-", "!", "++", "--":
		ty, err := c.checkExpr(node.Rhs)
		if err != nil {
			return ast.TypeSpec{}, err
		}
		if !ast.TypesEqual(ty, ast.IntType()) {
			return ast.TypeSpec{}, &TypeMismatchError{Expected: ast.IntType(), Found: ty, Pos: node.Pos()}
		}
		return ast.IntType(), nil
	case "&":
		ty, err := c.checkExpr(node.Rhs)
		if err != nil {
			return ast.TypeSpec{}, err
		}
		return ast.PointerTo(ty), nil
	case "*":
		ty, err := c.checkExpr(node.Rhs)
		if err != nil {
			return ast.TypeSpec{}, err
		}
		inner, ok := ty.IsPointer()
		if !ok {
			return ast.TypeSpec{}, &TypeMismatchError{Expected: ast.PointerTo(ast.IntType()), Found: ty, Pos: node.Pos()}
		}
		return inner, nil
	}
	return ast.TypeSpec{}, fmt.Errorf("sema: unhandled prefix operator %q", node.Op)
}

func (c *Checker) checkBinary(node *ast.BinaryExpr) (ast.TypeSpec, error) {
	lty, err := c.checkExpr(node.Lhs)
	if err != nil {
		return ast.TypeSpec{}, err
	}
	rty, err := c.checkExpr(node.Rhs)
	if err != nil {
		return ast.TypeSpec{}, err
	}

	switch node.Op {
	case "+", "-", "*", "/", "%", "&", "|", "^":
		if !isIntOrChar(lty) {
			return ast.TypeSpec{}, &TypeMismatchError{Expected: ast.IntType(), Found: lty, Pos: node.Lhs.Pos()}
		}
		if !isIntOrChar(rty) {
			return ast.TypeSpec{}, &TypeMismatchError{Expected: ast.IntType(), Found: rty, Pos: node.Rhs.Pos()}
		}
		return ast.IntType(), nil
	case "&&", "||":
		if !ast.TypesEqual(lty, ast.IntType()) {
			return ast.TypeSpec{}, &TypeMismatchError{Expected: ast.IntType(), Found: lty, Pos: node.Lhs.Pos()}
		}
		if !ast.TypesEqual(rty, ast.IntType()) {
			return ast.TypeSpec{}, &TypeMismatchError{Expected: ast.IntType(), Found: rty, Pos: node.Rhs.Pos()}
		}
		return ast.IntType(), nil
	case "==", "!=", "<", "<=", ">", ">=":
		if !ast.TypesEqual(lty, rty) {
			return ast.TypeSpec{}, &TypeMismatchError{Expected: lty, Found: rty, Pos: node.Rhs.Pos()}
		}
		return ast.IntType(), nil
	}
	return ast.TypeSpec{}, fmt.Errorf("sema: unhandled binary operator %q", node.Op)
}

func (c *Checker) checkCall(node *ast.CallExpr) (ast.TypeSpec, error) {
	sym, ok := c.table.Lookup(node.Func.Name)
	if !ok {
		return ast.TypeSpec{}, &UndefinedSymbolError{Name: node.Func.Name, Pos: node.Func.NamePos}
	}
	if sym.Kind != symtab.Function {
		return ast.TypeSpec{}, &NotAFunctionError{Name: node.Func.Name, Pos: node.Func.NamePos}
	}
	if len(node.Args) != len(sym.ParamTypes) {
		return ast.TypeSpec{}, &ArgumentCountMismatchError{
			Expected: len(sym.ParamTypes), Found: len(node.Args), Pos: node.Pos(),
		}
	}
	for i, arg := range node.Args {
		argTy, err := c.checkExpr(arg)
		if err != nil {
			return ast.TypeSpec{}, err
		}
		if !ast.TypesEqual(argTy, sym.ParamTypes[i]) {
			return ast.TypeSpec{}, &TypeMismatchError{Expected: sym.ParamTypes[i], Found: argTy, Pos: arg.Pos()}
		}
	}
	return sym.Type, nil
}

func (c *Checker) checkArrayIndex(node *ast.ArrayIndexExpr) (ast.TypeSpec, error) {
	indexTy, err := c.checkExpr(node.Index)
	if err != nil {
		return ast.TypeSpec{}, err
	}
	if !ast.TypesEqual(indexTy, ast.IntType()) {
		return ast.TypeSpec{}, &TypeMismatchError{Expected: ast.IntType(), Found: indexTy, Pos: node.Index.Pos()}
	}
	arrayTy, err := c.checkExpr(node.Array)
	if err != nil {
		return ast.TypeSpec{}, err
	}
	inner, ok := arrayTy.IsPointer()
	if !ok {
		return ast.TypeSpec{}, &ExpectedPointerError{Found: arrayTy, Pos: node.Array.Pos()}
	}
	return inner, nil
}

// checkInitializerList falls back to the enclosing function's return
// type for an empty list: a pragmatic hack inherited rather than
// designed, kept because nothing downstream reads an empty initializer's
// type independent of that return-type context.
func (c *Checker) checkInitializerList(node *ast.InitializerListExpr) (ast.TypeSpec, error) {
	if len(node.Elems) == 0 {
		return c.currentReturnTy, nil
	}
	first, err := c.checkExpr(node.Elems[0])
	if err != nil {
		return ast.TypeSpec{}, err
	}
	for _, el := range node.Elems[1:] {
		ty, err := c.checkExpr(el)
		if err != nil {
			return ast.TypeSpec{}, err
		}
		if !ast.TypesEqual(ty, first) {
			return ast.TypeSpec{}, &TypeMismatchError{Expected: first, Found: ty, Pos: el.Pos()}
		}
	}
	return first, nil
}
