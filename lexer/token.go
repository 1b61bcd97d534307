package lexer

import (
	"fmt"
	"strings"

	"github.com/npillmayer/slang"
)

// Token categories of the slang language.
const (
	EOF slang.TokType = iota - 1
	Bra
	Ket
	Keyword
	String
	Number
	Name
)

// TokTypeString returns a readable name for a token category.
func TokTypeString(t slang.TokType) string {
	switch t {
	case EOF:
		return "EOF"
	case Bra:
		return "Bra"
	case Ket:
		return "Ket"
	case Keyword:
		return "Keyword"
	case String:
		return "String"
	case Number:
		return "Number"
	case Name:
		return "Name"
	}
	return fmt.Sprintf("<unknown %d>", t)
}

// Keywords lists the lexemes which are reserved words of slang.
var Keywords = []string{"+", "fn", "let", "macro", "print"}

// Token is the token type produced by the lexer. It implements slang.Token.
//
// Val holds the converted value of a token: an uint32 for numbers, the text
// without quotes for strings, and the lexeme for all other categories.
type Token struct {
	kind   slang.TokType
	lexeme string
	Val    interface{}
	span   slang.Span
}

var _ slang.Token = Token{}

// MakeToken creates a token. It is exported for clients which construct
// token sequences without scanning text.
func MakeToken(typ slang.TokType, lexeme string, value interface{}, span slang.Span) Token {
	return Token{
		kind:   typ,
		lexeme: lexeme,
		Val:    value,
		span:   span,
	}
}

func (t Token) TokType() slang.TokType {
	return t.kind
}

func (t Token) Value() interface{} {
	return t.Val
}

func (t Token) Lexeme() string {
	return t.lexeme
}

func (t Token) Span() slang.Span {
	return t.span
}

// String returns the display form of a token. Strings are shown without quotes.
func (t Token) String() string {
	if t.kind == String {
		return t.Val.(string)
	}
	return t.lexeme
}

// GoString returns the debug form of a token, e.g. `Keyword(let)` or `Number(42)`.
func (t Token) GoString() string {
	switch t.kind {
	case Bra, Ket, EOF:
		return TokTypeString(t.kind)
	case String:
		return fmt.Sprintf("String(%q)", t.Val)
	case Number:
		return fmt.Sprintf("Number(%d)", t.Val)
	}
	return fmt.Sprintf("%s(%s)", TokTypeString(t.kind), t.lexeme)
}

// Display returns the display forms of a token sequence, space-separated.
func Display(tokens []Token) string {
	var b strings.Builder
	for i, t := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}

// Dump returns the debug form of a token sequence.
func Dump(tokens []Token) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, t := range tokens {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.GoString())
	}
	b.WriteByte(']')
	return b.String()
}
