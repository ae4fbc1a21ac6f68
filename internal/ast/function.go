package ast

import "github.com/nanoc-lang/nanoc/internal/token"

// Param is one function parameter. An array suffix on a parameter decays
// its declared type to a pointer; by the time a Param reaches the AST
// that decay has already happened, so Type is simply whatever type the
// parameter has after decay.
type Param struct {
	NamePos token.Position
	Name    string
	Type    TypeSpec
}

// Function is a function declaration or definition. A prototype (header
// followed by `;`) and a full definition populate this struct
// identically: Body is always present, with an empty Stmts slice for a
// prototype. The analyzer distinguishes "declared but not defined" only
// implicitly, by that emptiness.
type Function struct {
	FnPos      token.Position
	Name       string
	ReturnType TypeSpec
	Params     []Param
	Body       *BlockStmt
}

func (f *Function) Pos() token.Position { return f.FnPos }

// Program is an ordered sequence of top-level function declarations and
// definitions, in source order.
type Program struct {
	Functions []*Function
}
