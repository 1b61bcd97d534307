package slang

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Package lexer defines the
// categories of the slang language.
type TokType int

// Tokens represent input tokens. They are produced by a lexer and
// reflect terminals of the language.
//
// An example would be a token for a number:
//
//    TokType = Number      // identifier for this kind of tokens
//    Lexeme  = "42"        // lexeme how it appeared in the input stream
//    Value   = uint32(42)  // value as converted by the lexer
//    Span    = 67…69       // occured from position 67 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input positions. A span
// denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
