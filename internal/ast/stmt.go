package ast

import (
	"fmt"

	"github.com/nanoc-lang/nanoc/internal/token"
)

// Stmt is the interface implemented by every statement node.
type Stmt interface {
	Pos() token.Position
	stmtNode()
}

// BlockStmt is a `{ ... }` sequence of statements. The type checker gives
// each inner block its own scope; the name resolver does not.
type BlockStmt struct {
	LBracePos token.Position
	Stmts     []Stmt
}

func (s *BlockStmt) Pos() token.Position { return s.LBracePos }
func (*BlockStmt) stmtNode()             {}

// IfStmt is `if (Cond) Then [else Else]`. Else is nil when absent; the
// dangling-else ambiguity is resolved by the parser, which always binds a
// trailing `else` to the nearest open `if`.
type IfStmt struct {
	IfPos token.Position
	Cond  Expr
	Then  Stmt
	Else  Stmt
}

func (s *IfStmt) Pos() token.Position { return s.IfPos }
func (*IfStmt) stmtNode()             {}

// WhileStmt is `while (Cond) Body`.
type WhileStmt struct {
	WhilePos token.Position
	Cond     Expr
	Body     Stmt
}

func (s *WhileStmt) Pos() token.Position { return s.WhilePos }
func (*WhileStmt) stmtNode()             {}

// ForStmt is `for (Init; Cond; Post) Body`. Init, Cond and Post are all
// optional (Cond/Post nil when omitted; Init an *ExprStmt with a nil X
// when the init clause is empty). Init/Cond/Post/Body all live in one
// scope, so a for-declared variable is not visible after the loop.
type ForStmt struct {
	ForPos token.Position
	Init   Stmt
	Cond   Expr
	Post   Expr
	Body   Stmt
}

func (s *ForStmt) Pos() token.Position { return s.ForPos }
func (*ForStmt) stmtNode()             {}

// ReturnStmt is `return [Value];`. Value is nil for a bare `return;`.
type ReturnStmt struct {
	ReturnPos token.Position
	Value     Expr
}

func (s *ReturnStmt) Pos() token.Position { return s.ReturnPos }
func (*ReturnStmt) stmtNode()             {}

// BreakStmt is `break;`.
type BreakStmt struct {
	BreakPos token.Position
}

func (s *BreakStmt) Pos() token.Position { return s.BreakPos }
func (*BreakStmt) stmtNode()             {}

// ContinueStmt is `continue;`.
type ContinueStmt struct {
	ContinuePos token.Position
}

func (s *ContinueStmt) Pos() token.Position { return s.ContinuePos }
func (*ContinueStmt) stmtNode()             {}

// Declarator is one `name [ '[' size ']' ] [ '=' init ]` inside a
// declaration. ArraySize is nil unless the declarator had an array
// suffix, in which case it holds the literal non-negative size.
type Declarator struct {
	NamePos   token.Position
	Name      string
	ArraySize *int64
	Init      Expr
}

// DeclStmt is `Type declarator (, declarator)* ;`.
type DeclStmt struct {
	DeclPos     token.Position
	Type        TypeSpec
	Declarators []Declarator
}

func (s *DeclStmt) Pos() token.Position { return s.DeclPos }
func (*DeclStmt) stmtNode()             {}

// ExprStmt is an expression used as a statement, or an empty `;` when X
// is nil.
type ExprStmt struct {
	SemiPos token.Position
	X       Expr
}

func (s *ExprStmt) Pos() token.Position { return s.SemiPos }
func (*ExprStmt) stmtNode()             {}

func (s *BlockStmt) String() string { return fmt.Sprintf("Block(%d stmts)", len(s.Stmts)) }
func (s *IfStmt) String() string    { return "If" }
func (s *WhileStmt) String() string { return "While" }
func (s *ForStmt) String() string   { return "For" }
func (s *ReturnStmt) String() string {
	if s.Value == nil {
		return "Return(none)"
	}
	return "Return"
}
func (s *BreakStmt) String() string    { return "Break" }
func (s *ContinueStmt) String() string { return "Continue" }
func (s *DeclStmt) String() string {
	return fmt.Sprintf("Declaration(%s, %d declarators)", s.Type, len(s.Declarators))
}
func (s *ExprStmt) String() string {
	if s.X == nil {
		return "ExprStmt(empty)"
	}
	return "ExprStmt"
}
