package lexer

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/npillmayer/slang"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// ErrNumber is returned for numerals which do not fit into an uint32.
var ErrNumber = errors.New("malformed number")

// Patterns for white space and names. lexmachine matches bytes, so Unicode
// white space (U+0085, U+00A0, U+1680, U+2000–U+200A, U+2028, U+2029,
// U+202F, U+205F, U+3000) is spelled out as UTF-8 byte sequences.
const (
	wideSpace = "\xC2[\x85\xA0]|\xE1\x9A\x80|\xE2\x80[\x80-\x8A\xA8\xA9\xAF]|\xE2\x81\x9F|\xE3\x80\x80"

	// multi-byte characters other than white space; stray bytes are kept
	wideChar = "\xC2[\x80-\x84\x86-\x9F\xA1-\xBF]|[\xC3-\xDF][\x80-\xBF]|" +
		"[\xE0\xE4-\xEF][\x80-\xBF][\x80-\xBF]|" +
		"\xE1[\x80-\x99\x9B-\xBF][\x80-\xBF]|\xE1\x9A[\x81-\xBF]|" +
		"\xE2[\x82-\xBF][\x80-\xBF]|\xE2\x80[\x8B-\xA7\xAA-\xAE\xB0-\xBF]|\xE2\x81[\x80-\x9E\xA0-\xBF]|" +
		"\xE3[\x81-\xBF][\x80-\xBF]|\xE3\x80[\x81-\xBF]|" +
		"[\xF0-\xF4][\x80-\xBF][\x80-\xBF][\x80-\xBF]|[\x80-\xC1\xF5-\xFF]"

	spacePattern = "([ \t\n\r\f\v]|" + wideSpace + ")+"

	namePattern = "([^ \t\n\r\f\v\\(\\)\"0-9\x80-\xFF]|" + wideChar + ")" +
		"([^ \t\n\r\f\v\\(\\)\"\x80-\xFF]|" + wideChar + ")*"
)

// Lexer is a tokenizer for slang, backed by a compiled lexmachine DFA.
// A Lexer may be used for any number of inputs.
type Lexer struct {
	lexer    *lexmachine.Lexer
	keywords map[string]bool
}

// Option configures a lexer.
type Option func(lx *Lexer)

// Macros sets or clears recognition of the keyword `macro`. Without it,
// `macro` is scanned as an ordinary name.
func Macros(b bool) Option {
	return func(lx *Lexer) {
		if b {
			lx.keywords["macro"] = true
		} else {
			delete(lx.keywords, "macro")
		}
	}
}

// New creates a lexer. It will return an error if compiling the DFA failed.
func New(opts ...Option) (*Lexer, error) {
	lx := &Lexer{keywords: make(map[string]bool, len(Keywords))}
	for _, kw := range Keywords {
		lx.keywords[kw] = true
	}
	for _, opt := range opts {
		opt(lx)
	}
	lx.lexer = lexmachine.NewLexer()
	lx.lexer.Add([]byte(`\(`), makeToken(Bra))
	lx.lexer.Add([]byte(`\)`), makeToken(Ket))
	lx.lexer.Add([]byte(`\"[^"]*\"?`), makeString)
	lx.lexer.Add([]byte(`[0-9]+`), makeNumber)
	lx.lexer.Add([]byte(namePattern), lx.makeNameOrKeyword)
	lx.lexer.Add([]byte(spacePattern), skip)
	if err := lx.lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return lx, nil
}

var defaultLexer *Lexer
var defaultErr error
var initOnce sync.Once // monitors one-time creation of the default lexer

// Tokenize scans input with a default lexer, which recognizes all keywords.
func Tokenize(input string) ([]Token, error) {
	initOnce.Do(func() {
		tracer().Infof("Creating default lexer")
		defaultLexer, defaultErr = New()
	})
	if defaultErr != nil {
		return nil, defaultErr
	}
	return defaultLexer.Tokenize(input)
}

// Tokenize scans the complete input and returns its tokens. The EOF token
// is not included.
func (lx *Lexer) Tokenize(input string) ([]Token, error) {
	scan, err := lx.lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	var tokens []Token
	for tok, err, eof := scan.Next(); !eof; tok, err, eof = scan.Next() {
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				tracer().Errorf("scanner error at %d: %v", ui.FailTC, err)
			}
			return nil, err
		}
		t := tok.(*lexmachine.Token)
		token := Token{
			kind:   slang.TokType(t.Type),
			lexeme: string(t.Lexeme),
			Val:    t.Value,
			span:   slang.Span{uint64(t.TC), uint64(t.TC + len(t.Lexeme))},
		}
		tracer().Debugf("token %#v at %v", token, token.span)
		tokens = append(tokens, token)
	}
	return tokens, nil
}

// --- Actions ---------------------------------------------------------------

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(typ slang.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(typ), string(m.Bytes), m), nil
	}
}

func makeString(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	text := string(m.Bytes[1:]) // trim off opening "
	if l := len(text); l > 0 && text[l-1] == '"' {
		text = text[:l-1]
	}
	return s.Token(int(String), text, m), nil
}

func makeNumber(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	n, err := strconv.ParseUint(string(m.Bytes), 10, 32)
	if err != nil {
		tracer().Errorf("cannot convert numeral %q", string(m.Bytes))
		return nil, fmt.Errorf("%w at %d: %q", ErrNumber, m.TC, string(m.Bytes))
	}
	return s.Token(int(Number), uint32(n), m), nil
}

func (lx *Lexer) makeNameOrKeyword(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	lexeme := string(m.Bytes)
	if lx.keywords[lexeme] {
		return s.Token(int(Keyword), lexeme, m), nil
	}
	return s.Token(int(Name), lexeme, m), nil
}
