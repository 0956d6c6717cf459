package scanner

import (
	"fmt"

	"github.com/npillmayer/noam"
)

//go:generate stringer -type=Kind

// Kind is a category type for a Token.
type Kind int

// Token kinds.
const (
	Illegal  Kind = iota // not a token; tags inner nodes of the prefix tree
	Word                 // identifiers and keywords like `if` or `print`
	Int                  // 123
	Float                // 1.5
	String               // "abc", lexeme without quotes
	Bool                 // true, false
	Newline              // \n
	Assign               // =
	Operator             // + - * / < > == !=
	LParen               // (
	RParen               // )
	LBrace               // {
	RBrace               // }
	Comma                // ,
	Nil                  // nil
	EOF                  // end of input
)

// Token represents an input token. Tokens are produced by the tokenizer and are
// immutable.
//
// An example would be a token for a floating point numer:
//
//    Kind   = Float       // category of this token
//    Lexeme = "3.1416"    // lexeme how it appeared in the input stream
//    Span   = 67…73       // occured from byte position 67 in the input stream
//
type Token struct {
	kind   Kind
	lexeme string
	span   noam.Span
}

// MakeToken creates a token.
func MakeToken(kind Kind, lexeme string, span noam.Span) Token {
	return Token{
		kind:   kind,
		lexeme: lexeme,
		span:   span,
	}
}

// Kind returns the category of a token.
func (t Token) Kind() Kind {
	return t.kind
}

// Lexeme returns the exact source text of a token. For strings, the
// surrounding quotes are not part of the lexeme.
func (t Token) Lexeme() string {
	return t.lexeme
}

// Span returns the byte positions the token covers in the input.
func (t Token) Span() noam.Span {
	return t.span
}

func (t Token) String() string {
	return fmt.Sprintf("<%s %q>", t.kind, t.lexeme)
}
