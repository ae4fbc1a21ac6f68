package parser

import (
	"github.com/nanoc-lang/nanoc/internal/ast"
	"github.com/nanoc-lang/nanoc/internal/token"
)

// Parser holds the cursor over one token slice and the recursive-descent
// state needed to turn it into an *ast.Program.
type Parser struct {
	s *stream
}

// New builds a Parser over tokens, which must end in a single EOF token
// (the shape internal/lexer.Lex produces).
func New(tokens []token.Token) *Parser {
	return &Parser{s: newStream(tokens)}
}

// Parse parses a complete token slice in one call, for callers that don't
// need a long-lived Parser value.
func Parse(tokens []token.Token) (*ast.Program, error) {
	return New(tokens).ParseProgram()
}

func (p *Parser) cur() token.Token { return p.s.current() }

func (p *Parser) isPunct(lit string) bool {
	t := p.cur()
	return t.Type == token.PUNCT && t.Literal == lit
}

func (p *Parser) isOperator(lit string) bool {
	t := p.cur()
	return t.Type == token.OPERATOR && t.Literal == lit
}

func (p *Parser) isKeyword(lit string) bool {
	t := p.cur()
	return t.Type == token.KEYWORD && t.Literal == lit
}

func (p *Parser) isOperatorIn(lits ...string) (string, bool) {
	t := p.cur()
	if t.Type != token.OPERATOR {
		return "", false
	}
	for _, lit := range lits {
		if t.Literal == lit {
			return lit, true
		}
	}
	return "", false
}

func (p *Parser) isTypeStart() bool {
	t := p.cur()
	return t.Type == token.KEYWORD && (t.Literal == "int" || t.Literal == "char" || t.Literal == "void")
}

// expectPunct consumes the current token if it is PUNCT(lit), else returns
// a ParseError describing what was expected.
func (p *Parser) expectPunct(lit string) (token.Token, error) {
	if !p.isPunct(lit) {
		return token.Token{}, errUnexpected("'"+lit+"'", p.cur())
	}
	return p.s.advance(), nil
}

func (p *Parser) expectKeyword(lit string) (token.Token, error) {
	if !p.isKeyword(lit) {
		return token.Token{}, errUnexpected("'"+lit+"'", p.cur())
	}
	return p.s.advance(), nil
}

func (p *Parser) expectIdent() (token.Token, error) {
	if p.cur().Type != token.IDENT {
		return token.Token{}, errUnexpected("an identifier", p.cur())
	}
	return p.s.advance(), nil
}

func (p *Parser) expectInt() (token.Token, error) {
	if p.cur().Type != token.INT {
		return token.Token{}, errUnexpected("an integer literal", p.cur())
	}
	return p.s.advance(), nil
}
