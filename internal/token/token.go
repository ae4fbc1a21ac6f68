// Package token defines the lexical categories produced by the lexer and
// the position information attached to every token.
package token

import "fmt"

// TokenType enumerates the lexical categories a token can belong to.
type TokenType int

const (
	// EOF marks the end of the input. Exactly one is emitted, as the last token.
	EOF TokenType = iota

	// IDENT is a name that is not one of the reserved keywords.
	IDENT

	// KEYWORD is one of the reserved words of the language (int, if, while, ...).
	// The reserved text itself lives in Token.Literal.
	KEYWORD

	// INT is a decimal integer literal. Token.IntValue holds the parsed value.
	INT

	// CHAR is a character literal. Token.CharValue holds the decoded rune.
	CHAR

	// OPERATOR is one of the arithmetic/bitwise/logical/assignment operators.
	OPERATOR

	// PUNCT is one of the structural punctuation marks: ; , ( ) { } [ ].
	PUNCT

	// ERROR wraps a lexical error (see LexError) encountered while scanning
	// a literal. It becomes a parse error only once the parser consumes it.
	ERROR

	// ILLEGAL is a single character the lexer does not recognize.
	ILLEGAL
)

// String renders the token type name. Declared to satisfy fmt.Stringer for
// diagnostics; unlike Token.String it is safe to call on a bare TokenType.
func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case IDENT:
		return "IDENT"
	case KEYWORD:
		return "KEYWORD"
	case INT:
		return "INT"
	case CHAR:
		return "CHAR"
	case OPERATOR:
		return "OPERATOR"
	case PUNCT:
		return "PUNCT"
	case ERROR:
		return "ERROR"
	case ILLEGAL:
		return "ILLEGAL"
	default:
		return "UNKNOWN"
	}
}

// LexErrorKind distinguishes the two lexical error shapes the lexer can
// produce.
type LexErrorKind int

const (
	// UnterminatedCharLiteral: a ' was opened but the character or escape
	// after it was not followed by a closing ' (including input ending).
	UnterminatedCharLiteral LexErrorKind = iota
	// InvalidNumericLiteral: a run of decimal digits overflowed an int64.
	InvalidNumericLiteral
)

// LexError is the payload of an ERROR token.
type LexError struct {
	Kind LexErrorKind
	Text string // the offending literal text, set for InvalidNumericLiteral
}

func (e *LexError) Error() string {
	switch e.Kind {
	case UnterminatedCharLiteral:
		return "unterminated character literal"
	case InvalidNumericLiteral:
		return fmt.Sprintf("invalid numeric literal: %q", e.Text)
	default:
		return "lexical error"
	}
}

// Position is a 1-based (line, column) pair marking where a token starts.
type Position struct {
	Line int
	Col  int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Token is one lexeme produced by the lexer, tagged with its category and
// carrying whatever payload that category needs.
type Token struct {
	Type TokenType

	// Literal is the raw source text for IDENT, KEYWORD, OPERATOR, PUNCT,
	// and ILLEGAL tokens, and the original digit run for INT.
	Literal string

	IntValue  int64 // valid when Type == INT
	CharValue rune  // valid when Type == CHAR

	LexErr *LexError // valid when Type == ERROR

	Line int
	Col  int
}

// Pos returns the token's starting position.
func (t Token) Pos() Position {
	return Position{Line: t.Line, Col: t.Col}
}

// String renders a short diagnostic form of the token, mainly for test
// failure messages and debugging.
func (t Token) String() string {
	switch t.Type {
	case IDENT, KEYWORD, OPERATOR, PUNCT, ILLEGAL:
		return fmt.Sprintf("%s(%q)", t.Type, t.Literal)
	case INT:
		return fmt.Sprintf("INT(%d)", t.IntValue)
	case CHAR:
		return fmt.Sprintf("CHAR(%q)", t.CharValue)
	case ERROR:
		return fmt.Sprintf("ERROR(%v)", t.LexErr)
	default:
		return t.Type.String()
	}
}

// Keywords is the reserved-word table consulted by the lexer when an
// identifier-shaped run of characters is scanned.
var Keywords = map[string]bool{
	"int": true, "char": true, "void": true,
	"if": true, "else": true, "while": true, "for": true,
	"return": true, "break": true, "continue": true,
}
