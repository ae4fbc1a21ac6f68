// Package parser implements a recursive-descent, precedence-climbing
// parser that turns a token slice produced by internal/lexer into an
// internal/ast.Program.
package parser

import "github.com/nanoc-lang/nanoc/internal/token"

// stream is a cursor over a fixed token slice. The slice is expected to
// end in exactly one EOF token (as internal/lexer.Lex guarantees); once
// the cursor reaches it, current and peekAt keep returning that same EOF
// token instead of panicking on an out-of-range index.
type stream struct {
	tokens []token.Token
	pos    int
}

func newStream(tokens []token.Token) *stream {
	return &stream{tokens: tokens}
}

func (s *stream) current() token.Token {
	return s.peekAt(0)
}

// peekAt returns the token offset positions ahead of the cursor (offset 0
// is current()), clamped to the trailing EOF token.
func (s *stream) peekAt(offset int) token.Token {
	idx := s.pos + offset
	if idx >= len(s.tokens) {
		idx = len(s.tokens) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return s.tokens[idx]
}

// advance returns the current token and moves the cursor forward one
// position, unless the cursor is already sitting on the trailing EOF.
func (s *stream) advance() token.Token {
	tok := s.current()
	if s.pos < len(s.tokens)-1 {
		s.pos++
	}
	return tok
}

func (s *stream) isEOF() bool {
	return s.current().Type == token.EOF
}
