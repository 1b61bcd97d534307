package syntax

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/slang"
	"github.com/npillmayer/slang/lexer"
)

// Structural errors of the tree builder.
var (
	ErrUnexpectedClose = errors.New("unexpected `)`")
	ErrUnclosedForm    = errors.New("unclosed form")
	ErrUnexpectedToken = errors.New("unexpected token")
)

// frame is a node under construction, together with the position of the
// bracket which opened it.
type frame struct {
	node Node
	open slang.Span
}

func (fr frame) append(n Node) {
	switch x := fr.node.(type) {
	case *Program:
		x.Children = append(x.Children, n)
	case *Form:
		x.Children = append(x.Children, n)
	default:
		panic(fmt.Sprintf("cannot append to %#v", fr.node))
	}
}

// Build creates a syntax tree from a token sequence. It returns a Program
// node or an error, if brackets do not match.
//
// Build makes a single left-to-right pass over the tokens. Nodes under
// construction are kept on an explicit stack, with the current node starting
// out as an empty Program. An empty token sequence results in an empty Program.
func Build(tokens []lexer.Token) (*Program, error) {
	stack := arraystack.New()
	current := frame{node: &Program{}}
	for _, tok := range tokens {
		switch tok.TokType() {
		case lexer.Bra:
			stack.Push(current)
			current = frame{node: &Form{}, open: tok.Span()}
		case lexer.Ket:
			form, ok := current.node.(*Form)
			if !ok {
				tracer().Errorf("unexpected `)` at %v", tok.Span())
				return nil, fmt.Errorf("%w at %v", ErrUnexpectedClose, tok.Span())
			}
			top, _ := stack.Pop()
			current = top.(frame)
			current.append(form)
		default:
			leaf, err := leafFor(tok)
			if err != nil {
				return nil, err
			}
			current.append(leaf)
		}
	}
	if !stack.Empty() {
		tracer().Errorf("unexpected end of input, %d form(s) open", stack.Size())
		return nil, fmt.Errorf("%w: form opened at %v", ErrUnclosedForm, current.open)
	}
	prog, ok := current.node.(*Program)
	if !ok {
		return nil, fmt.Errorf("%w: expected program, found %#v", ErrUnclosedForm, current.node)
	}
	tracer().Debugf("built: %#v", prog)
	return prog, nil
}

func leafFor(tok lexer.Token) (Node, error) {
	switch tok.TokType() {
	case lexer.Keyword:
		if k, ok := KeywordFor(tok.Lexeme()); ok {
			return k, nil
		}
	case lexer.Name:
		return Ident{Name: tok.Lexeme()}, nil
	case lexer.Number:
		if n, ok := tok.Value().(uint32); ok {
			return Number{Value: n}, nil
		}
	case lexer.String:
		if s, ok := tok.Value().(string); ok {
			return String{Text: s}, nil
		}
	}
	tracer().Errorf("unexpected token %#v at %v", tok, tok.Span())
	return nil, fmt.Errorf("%w %#v at %v", ErrUnexpectedToken, tok, tok.Span())
}

// Parse tokenizes and builds input with the default lexer.
func Parse(input string) (*Program, error) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return Build(tokens)
}
