// Package lexer turns nanoc source text into a stream of positioned tokens.
package lexer

// operators2 and operators1 are the multi-character and single-character
// operator spellings the lexer recognizes, split by length so that
// longest-match-wins can be implemented by trying the two-character table
// before falling back to the one-character table.
var operators2 = map[string]bool{
	"++": true, "--": true,
	"==": true, "!=": true, "<=": true, ">=": true,
	"&&": true, "||": true,
	"+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"&=": true, "|=": true, "^=": true,
}

var operators1 = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "%": true,
	"=": true, "<": true, ">": true, "!": true,
	"&": true, "|": true, "^": true,
}

var punctuation1 = map[string]bool{
	";": true, ",": true,
	"(": true, ")": true,
	"{": true, "}": true,
	"[": true, "]": true,
}
