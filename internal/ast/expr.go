package ast

import (
	"fmt"

	"github.com/nanoc-lang/nanoc/internal/token"
)

// Expr is the interface implemented by every expression node. Each Expr
// value is uniquely owned by its parent; the tree never shares structure.
type Expr interface {
	Pos() token.Position
	exprNode()
}

// Ident is a bare name reference.
type Ident struct {
	NamePos token.Position
	Name    string
}

func (e *Ident) Pos() token.Position { return e.NamePos }
func (*Ident) exprNode()             {}

// IntLiteral is a decimal integer constant.
type IntLiteral struct {
	LitPos token.Position
	Value  int64
}

func (e *IntLiteral) Pos() token.Position { return e.LitPos }
func (*IntLiteral) exprNode()             {}

// CharLiteral is a character constant. The AST stores the decoded value
// as a full Unicode scalar for simplicity; the type system treats Char as
// an abstract 8-bit integer regardless (no width checks occur).
type CharLiteral struct {
	LitPos token.Position
	Value  rune
}

func (e *CharLiteral) Pos() token.Position { return e.LitPos }
func (*CharLiteral) exprNode()             {}

// UnaryPrefixExpr is a prefix unary operator applied to Rhs: one of
// & * - ! ++ --.
type UnaryPrefixExpr struct {
	OpPos token.Position
	Op    string
	Rhs   Expr
}

func (e *UnaryPrefixExpr) Pos() token.Position { return e.OpPos }
func (*UnaryPrefixExpr) exprNode()             {}

// UnaryPostfixExpr is a postfix ++ or -- applied to Lhs.
type UnaryPostfixExpr struct {
	Lhs Expr
	Op  string
	// OpPos is kept for diagnostics even though Pos() reports Lhs.Pos()
	// per the grammar (a postfix expression's position is its operand's).
	OpPos token.Position
}

func (e *UnaryPostfixExpr) Pos() token.Position { return e.Lhs.Pos() }
func (*UnaryPostfixExpr) exprNode()             {}

// BinaryExpr is a left-associative binary operator: arithmetic, bitwise,
// comparison, or short-circuit logical.
type BinaryExpr struct {
	Lhs   Expr
	Op    string
	OpPos token.Position
	Rhs   Expr
}

func (e *BinaryExpr) Pos() token.Position { return e.Lhs.Pos() }
func (*BinaryExpr) exprNode()             {}

// AssignExpr is `=` or a compound assignment (+=, -=, ...). Right-
// associative; Left is not validated as an l-value at any layer.
type AssignExpr struct {
	Left  Expr
	Op    string
	OpPos token.Position
	Right Expr
}

func (e *AssignExpr) Pos() token.Position { return e.Left.Pos() }
func (*AssignExpr) exprNode()             {}

// CallExpr is a function call. Func is always an *Ident: the language has
// no first-class functions.
type CallExpr struct {
	Func    *Ident
	LParPos token.Position
	Args    []Expr
}

func (e *CallExpr) Pos() token.Position { return e.Func.Pos() }
func (*CallExpr) exprNode()             {}

// ArrayIndexExpr is `array[index]`.
type ArrayIndexExpr struct {
	Array   Expr
	LBrkPos token.Position
	Index   Expr
}

func (e *ArrayIndexExpr) Pos() token.Position { return e.Array.Pos() }
func (*ArrayIndexExpr) exprNode()             {}

// InitializerListExpr is a brace-enclosed `{ e1, e2, ... }` initializer.
// It is only ever valid as a variable initializer, never as a general
// sub-expression; the parser enforces that by only calling into
// initializer parsing in initializer position.
type InitializerListExpr struct {
	LBracePos token.Position
	Elems     []Expr
}

func (e *InitializerListExpr) Pos() token.Position { return e.LBracePos }
func (*InitializerListExpr) exprNode()             {}

// String implementations below exist purely for debug output (ast.Dump);
// they are intentionally terse, mirroring the density the rest of this
// package uses for its node types.

func (e *Ident) String() string       { return fmt.Sprintf("Ident(%s)", e.Name) }
func (e *IntLiteral) String() string  { return fmt.Sprintf("IntLiteral(%d)", e.Value) }
func (e *CharLiteral) String() string { return fmt.Sprintf("CharLiteral(%q)", e.Value) }
func (e *UnaryPrefixExpr) String() string {
	return fmt.Sprintf("UnaryPrefixOp(%s)", e.Op)
}
func (e *UnaryPostfixExpr) String() string {
	return fmt.Sprintf("UnaryPostfixOp(%s)", e.Op)
}
func (e *BinaryExpr) String() string  { return fmt.Sprintf("BinaryOp(%s)", e.Op) }
func (e *AssignExpr) String() string  { return fmt.Sprintf("Assignment(%s)", e.Op) }
func (e *CallExpr) String() string    { return fmt.Sprintf("Call(%s, %d args)", e.Func.Name, len(e.Args)) }
func (e *ArrayIndexExpr) String() string {
	return "ArrayIndex"
}
func (e *InitializerListExpr) String() string {
	return fmt.Sprintf("InitializerList(%d)", len(e.Elems))
}
