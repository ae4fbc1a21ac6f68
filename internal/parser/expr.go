package parser

import (
	"github.com/nanoc-lang/nanoc/internal/ast"
	"github.com/nanoc-lang/nanoc/internal/token"
)

// parseExpr is the entry point into the expression grammar: assignment is
// the loosest-binding level.
func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseAssignment()
}

var assignOps = []string{"=", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^="}

// parseAssignment is right-associative: `a = b = c` parses as
// `a = (b = c)`. The left operand is not checked for l-value-ness here
// or anywhere downstream; the language has no l-value predicate.
func (p *Parser) parseAssignment() (ast.Expr, error) {
	left, err := p.parseLogicalOr()
	if err != nil {
		return nil, err
	}
	if op, ok := p.isOperatorIn(assignOps...); ok {
		opTok := p.s.advance()
		right, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		return &ast.AssignExpr{Left: left, Op: op, OpPos: opTok.Pos(), Right: right}, nil
	}
	return left, nil
}

func (p *Parser) parseLogicalOr() (ast.Expr, error) {
	left, err := p.parseLogicalAnd()
	if err != nil {
		return nil, err
	}
	for p.isOperator("||") {
		opTok := p.s.advance()
		right, err := p.parseLogicalAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Lhs: left, Op: "||", OpPos: opTok.Pos(), Rhs: right}
	}
	return left, nil
}

func (p *Parser) parseLogicalAnd() (ast.Expr, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.isOperator("&&") {
		opTok := p.s.advance()
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Lhs: left, Op: "&&", OpPos: opTok.Pos(), Rhs: right}
	}
	return left, nil
}

var equalityOps = []string{"==", "!="}

func (p *Parser) parseEquality() (ast.Expr, error) {
	left, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.isOperatorIn(equalityOps...)
		if !ok {
			return left, nil
		}
		opTok := p.s.advance()
		right, err := p.parseRelational()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Lhs: left, Op: op, OpPos: opTok.Pos(), Rhs: right}
	}
}

var relationalOps = []string{"<=", ">=", "<", ">"}

func (p *Parser) parseRelational() (ast.Expr, error) {
	left, err := p.parseBitwise()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.isOperatorIn(relationalOps...)
		if !ok {
			return left, nil
		}
		opTok := p.s.advance()
		right, err := p.parseBitwise()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Lhs: left, Op: op, OpPos: opTok.Pos(), Rhs: right}
	}
}

var bitwiseOps = []string{"&", "|", "^"}

// parseBitwise handles binary &, | and ^ at a single left-associative
// level sitting between relational and additive: `a & b + c` parses as
// `a & (b + c)`, since the additive level is parsed in full before a
// bitwise operator ever gets to combine with it. At prefix position (no
// left operand yet) `&` is address-of instead; that case is handled
// entirely in parseUnary and never reaches here.
func (p *Parser) parseBitwise() (ast.Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.isOperatorIn(bitwiseOps...)
		if !ok {
			return left, nil
		}
		opTok := p.s.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Lhs: left, Op: op, OpPos: opTok.Pos(), Rhs: right}
	}
}

var additiveOps = []string{"+", "-"}

func (p *Parser) parseAdditive() (ast.Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.isOperatorIn(additiveOps...)
		if !ok {
			return left, nil
		}
		opTok := p.s.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Lhs: left, Op: op, OpPos: opTok.Pos(), Rhs: right}
	}
}

var multiplicativeOps = []string{"*", "/", "%"}

func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.isOperatorIn(multiplicativeOps...)
		if !ok {
			return left, nil
		}
		opTok := p.s.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Lhs: left, Op: op, OpPos: opTok.Pos(), Rhs: right}
	}
}

var unaryPrefixOps = []string{"!", "-", "&", "*", "++", "--"}

// parseUnary recognizes the prefix operators, recursing on itself so
// chains like `!!x` or `--*p` parse. This is also where `&` means
// address-of: it is only considered here, at the start of a new operand,
// never inside the binary loops above.
func (p *Parser) parseUnary() (ast.Expr, error) {
	if op, ok := p.isOperatorIn(unaryPrefixOps...); ok {
		opTok := p.s.advance()
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryPrefixExpr{OpPos: opTok.Pos(), Op: op, Rhs: rhs}, nil
	}
	return p.parsePostfix()
}

var postfixOps = []string{"++", "--"}

func (p *Parser) parsePostfix() (ast.Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.isPunct("("):
			ident, ok := expr.(*ast.Ident)
			if !ok {
				return nil, errUnsupported(p.cur())
			}
			lpar := p.s.advance()
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			if _, err := p.expectPunct(")"); err != nil {
				return nil, err
			}
			expr = &ast.CallExpr{Func: ident, LParPos: lpar.Pos(), Args: args}
		case p.isPunct("["):
			lbrk := p.s.advance()
			index, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expectPunct("]"); err != nil {
				return nil, err
			}
			expr = &ast.ArrayIndexExpr{Array: expr, LBrkPos: lbrk.Pos(), Index: index}
		default:
			op, ok := p.isOperatorIn(postfixOps...)
			if !ok {
				return expr, nil
			}
			opTok := p.s.advance()
			expr = &ast.UnaryPostfixExpr{Lhs: expr, Op: op, OpPos: opTok.Pos()}
		}
	}
}

// parseArgs parses a comma-separated argument list, with no trailing
// comma permitted (unlike initializer lists).
func (p *Parser) parseArgs() ([]ast.Expr, error) {
	if p.isPunct(")") {
		return nil, nil
	}
	var args []ast.Expr
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.isPunct(",") {
			p.s.advance()
			continue
		}
		break
	}
	return args, nil
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.cur()
	switch {
	case tok.Type == token.IDENT:
		p.s.advance()
		return &ast.Ident{NamePos: tok.Pos(), Name: tok.Literal}, nil
	case tok.Type == token.INT:
		p.s.advance()
		return &ast.IntLiteral{LitPos: tok.Pos(), Value: tok.IntValue}, nil
	case tok.Type == token.CHAR:
		p.s.advance()
		return &ast.CharLiteral{LitPos: tok.Pos(), Value: tok.CharValue}, nil
	case tok.Type == token.PUNCT && tok.Literal == "(":
		p.s.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectPunct(")"); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, errUnsupported(tok)
	}
}
