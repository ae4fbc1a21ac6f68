package parser

import (
	"github.com/nanoc-lang/nanoc/internal/ast"
	"github.com/nanoc-lang/nanoc/internal/token"
)

// ParseProgram parses a sequence of function declarations/definitions
// until EOF.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for !p.s.isEOF() {
		fn, err := p.parseFunction()
		if err != nil {
			return nil, err
		}
		prog.Functions = append(prog.Functions, fn)
	}
	return prog, nil
}

func (p *Parser) parseTypeSpecifier() (ast.TypeSpec, error) {
	var base ast.TypeSpec
	switch {
	case p.isKeyword("int"):
		p.s.advance()
		base = ast.IntType()
	case p.isKeyword("char"):
		p.s.advance()
		base = ast.CharType()
	case p.isKeyword("void"):
		p.s.advance()
		base = ast.VoidType()
	default:
		return ast.TypeSpec{}, errUnexpected("a type ('int', 'char', or 'void')", p.cur())
	}
	for p.isOperator("*") {
		p.s.advance()
		base = ast.PointerTo(base)
	}
	return base, nil
}

// parseFunction parses one top-level `type name(params) ;` prototype or
// `type name(params) { ... }` definition.
func (p *Parser) parseFunction() (*ast.Function, error) {
	pos := p.cur().Pos()
	retTy, err := p.parseTypeSpecifier()
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectPunct("("); err != nil {
		return nil, err
	}
	params, err := p.parseParameters()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectPunct(")"); err != nil {
		return nil, err
	}

	if p.isPunct(";") {
		p.s.advance()
		return &ast.Function{FnPos: pos, Name: nameTok.Literal, ReturnType: retTy, Params: params, Body: &ast.BlockStmt{}}, nil
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.Function{FnPos: pos, Name: nameTok.Literal, ReturnType: retTy, Params: params, Body: body}, nil
}

// parseParameters handles the `(void)` empty-parameter marker before
// falling through to a normal comma-separated list, since `void` also
// legitimately starts a parameter type (`void *p`).
func (p *Parser) parseParameters() ([]ast.Param, error) {
	if p.isKeyword("void") && p.s.peekAt(1).Type == token.PUNCT && p.s.peekAt(1).Literal == ")" {
		p.s.advance()
		return nil, nil
	}
	if p.isPunct(")") {
		return nil, nil
	}

	var params []ast.Param
	for {
		param, err := p.parseParameter()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if p.isPunct(",") {
			p.s.advance()
			continue
		}
		break
	}
	return params, nil
}

// parseParameter parses `type name [ '[' int ']' ]`. An array suffix
// decays the declared type to a pointer; the bracketed size, when
// present, is discarded. The name is optional, matching a
// bare prototype parameter such as `int f(int);`: in that position
// nothing ever looks the parameter up by name, so an anonymous Param
// simply carries an empty Name.
func (p *Parser) parseParameter() (ast.Param, error) {
	pos := p.cur().Pos()
	ty, err := p.parseTypeSpecifier()
	if err != nil {
		return ast.Param{}, err
	}
	name := ""
	if p.cur().Type == token.IDENT {
		nameTok := p.s.advance()
		pos = nameTok.Pos()
		name = nameTok.Literal
	}
	if p.isPunct("[") {
		p.s.advance()
		if p.cur().Type == token.INT {
			p.s.advance()
		}
		if _, err := p.expectPunct("]"); err != nil {
			return ast.Param{}, err
		}
		ty = ast.PointerTo(ty)
	}
	return ast.Param{NamePos: pos, Name: name, Type: ty}, nil
}

func (p *Parser) parseBlock() (*ast.BlockStmt, error) {
	lbrace, err := p.expectPunct("{")
	if err != nil {
		return nil, err
	}
	var stmts []ast.Stmt
	for !p.isPunct("}") && !p.s.isEOF() {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.expectPunct("}"); err != nil {
		return nil, err
	}
	return &ast.BlockStmt{LBracePos: lbrace.Pos(), Stmts: stmts}, nil
}

// parseStmt dispatches on the current token to the right statement
// production.
func (p *Parser) parseStmt() (ast.Stmt, error) {
	switch {
	case p.isPunct("{"):
		return p.parseBlock()
	case p.isKeyword("if"):
		return p.parseIf()
	case p.isKeyword("while"):
		return p.parseWhile()
	case p.isKeyword("for"):
		return p.parseFor()
	case p.isKeyword("return"):
		return p.parseReturn()
	case p.isKeyword("break"):
		tok := p.s.advance()
		if _, err := p.expectPunct(";"); err != nil {
			return nil, err
		}
		return &ast.BreakStmt{BreakPos: tok.Pos()}, nil
	case p.isKeyword("continue"):
		tok := p.s.advance()
		if _, err := p.expectPunct(";"); err != nil {
			return nil, err
		}
		return &ast.ContinueStmt{ContinuePos: tok.Pos()}, nil
	case p.isTypeStart():
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectPunct(";"); err != nil {
			return nil, err
		}
		return decl, nil
	case p.isPunct(";"):
		tok := p.s.advance()
		return &ast.ExprStmt{SemiPos: tok.Pos()}, nil
	default:
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		semi, err := p.expectPunct(";")
		if err != nil {
			return nil, err
		}
		return &ast.ExprStmt{SemiPos: semi.Pos(), X: expr}, nil
	}
}

func (p *Parser) parseIf() (ast.Stmt, error) {
	ifTok, err := p.expectKeyword("if")
	if err != nil {
		return nil, err
	}
	if _, err := p.expectPunct("("); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectPunct(")"); err != nil {
		return nil, err
	}
	then, err := p.parseStmt()
	if err != nil {
		return nil, err
	}
	var elseStmt ast.Stmt
	// Dangling else binds to the nearest open if: since we resolve the
	// else immediately after parsing `then`, an `else` following a nested
	// `if` is consumed by that inner parseIf call first, not this one.
	if p.isKeyword("else") {
		p.s.advance()
		elseStmt, err = p.parseStmt()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfStmt{IfPos: ifTok.Pos(), Cond: cond, Then: then, Else: elseStmt}, nil
}

func (p *Parser) parseWhile() (ast.Stmt, error) {
	whileTok, err := p.expectKeyword("while")
	if err != nil {
		return nil, err
	}
	if _, err := p.expectPunct("("); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectPunct(")"); err != nil {
		return nil, err
	}
	body, err := p.parseStmt()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{WhilePos: whileTok.Pos(), Cond: cond, Body: body}, nil
}

func (p *Parser) parseFor() (ast.Stmt, error) {
	forTok, err := p.expectKeyword("for")
	if err != nil {
		return nil, err
	}
	if _, err := p.expectPunct("("); err != nil {
		return nil, err
	}

	var init ast.Stmt
	switch {
	case p.isPunct(";"):
		tok := p.s.advance()
		init = &ast.ExprStmt{SemiPos: tok.Pos()}
	case p.isTypeStart():
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		init = decl
		if _, err := p.expectPunct(";"); err != nil {
			return nil, err
		}
	default:
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		semi, err := p.expectPunct(";")
		if err != nil {
			return nil, err
		}
		init = &ast.ExprStmt{SemiPos: semi.Pos(), X: expr}
	}

	var cond ast.Expr
	if !p.isPunct(";") {
		var err error
		cond, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expectPunct(";"); err != nil {
		return nil, err
	}

	var post ast.Expr
	if !p.isPunct(")") {
		var err error
		post, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expectPunct(")"); err != nil {
		return nil, err
	}

	body, err := p.parseStmt()
	if err != nil {
		return nil, err
	}
	return &ast.ForStmt{ForPos: forTok.Pos(), Init: init, Cond: cond, Post: post, Body: body}, nil
}

func (p *Parser) parseReturn() (ast.Stmt, error) {
	retTok, err := p.expectKeyword("return")
	if err != nil {
		return nil, err
	}
	var val ast.Expr
	if !p.isPunct(";") {
		val, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expectPunct(";"); err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{ReturnPos: retTok.Pos(), Value: val}, nil
}

// parseDeclaration parses `type declarator (',' declarator)*` without
// consuming the trailing ';' — callers (a declaration statement, or a for
// loop's init clause) consume that themselves.
func (p *Parser) parseDeclaration() (*ast.DeclStmt, error) {
	pos := p.cur().Pos()
	ty, err := p.parseTypeSpecifier()
	if err != nil {
		return nil, err
	}
	var declarators []ast.Declarator
	for {
		d, err := p.parseInitDeclarator()
		if err != nil {
			return nil, err
		}
		declarators = append(declarators, d)
		if p.isPunct(",") {
			p.s.advance()
			continue
		}
		break
	}
	return &ast.DeclStmt{DeclPos: pos, Type: ty, Declarators: declarators}, nil
}

func (p *Parser) parseInitDeclarator() (ast.Declarator, error) {
	nameTok, err := p.expectIdent()
	if err != nil {
		return ast.Declarator{}, err
	}
	var arraySize *int64
	if p.isPunct("[") {
		p.s.advance()
		sizeTok, err := p.expectInt()
		if err != nil {
			return ast.Declarator{}, err
		}
		if _, err := p.expectPunct("]"); err != nil {
			return ast.Declarator{}, err
		}
		v := sizeTok.IntValue
		arraySize = &v
	}
	var init ast.Expr
	if p.isOperator("=") {
		p.s.advance()
		init, err = p.parseInitializer()
		if err != nil {
			return ast.Declarator{}, err
		}
	}
	return ast.Declarator{NamePos: nameTok.Pos(), Name: nameTok.Literal, ArraySize: arraySize, Init: init}, nil
}

// parseInitializer parses either a brace-enclosed initializer list or a
// plain assignment-precedence expression. It is only ever called from
// declarator position, so InitializerListExpr never leaks into general
// expression context.
func (p *Parser) parseInitializer() (ast.Expr, error) {
	if p.isPunct("{") {
		return p.parseInitializerList()
	}
	return p.parseExpr()
}

func (p *Parser) parseInitializerList() (ast.Expr, error) {
	lbrace, err := p.expectPunct("{")
	if err != nil {
		return nil, err
	}
	var elems []ast.Expr
	if !p.isPunct("}") {
		for {
			el, err := p.parseInitializer()
			if err != nil {
				return nil, err
			}
			elems = append(elems, el)
			if p.isPunct(",") {
				p.s.advance()
				if p.isPunct("}") {
					// trailing comma, permitted only here
					break
				}
				continue
			}
			break
		}
	}
	if _, err := p.expectPunct("}"); err != nil {
		return nil, err
	}
	return &ast.InitializerListExpr{LBracePos: lbrace.Pos(), Elems: elems}, nil
}
