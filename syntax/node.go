package syntax

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// Node is a node of a syntax tree. The set of implementing types is closed:
// *Program, *Form, Keyword, Ident, Number and String.
type Node interface {
	fmt.Stringer   // source text
	fmt.GoStringer // debug form
	isNode()
}

// Program is the root of a syntax tree. Each child is an independent
// top-level expression.
type Program struct {
	Children []Node
}

// Form is a parenthesized expression. Its first child determines its meaning.
type Form struct {
	Children []Node
}

// Keyword is a reserved word of the language.
type Keyword int8

// The keywords of slang.
const (
	KwPlus Keyword = iota
	KwFn
	KwLet
	KwPrint
	KwMacro
)

var keywordLexemes = [...]string{"+", "fn", "let", "print", "macro"}
var keywordNames = [...]string{"Plus", "Fn", "Let", "Print", "Macro"}

// KeywordFor returns the keyword for a lexeme.
func KeywordFor(lexeme string) (Keyword, bool) {
	for k, l := range keywordLexemes {
		if l == lexeme {
			return Keyword(k), true
		}
	}
	return 0, false
}

// Ident is a reference to a bound name.
type Ident struct {
	Name string
}

// Number is an unsigned integer literal.
type Number struct {
	Value uint32
}

// String is a string literal.
type String struct {
	Text string
}

func (*Program) isNode() {}
func (*Form) isNode()    {}
func (Keyword) isNode()  {}
func (Ident) isNode()    {}
func (Number) isNode()   {}
func (String) isNode()   {}

// MakeProgram creates a program node from top-level expressions.
func MakeProgram(children ...Node) *Program {
	return &Program{Children: children}
}

// MakeForm creates a form with the given children. MakeForm() is the empty form.
func MakeForm(children ...Node) *Form {
	return &Form{Children: children}
}

// Empty returns the empty form.
func Empty() *Form {
	return &Form{}
}

// Len returns the number of children of a form.
func (f *Form) Len() int {
	return len(f.Children)
}

// Head returns the first child of a form, or nil for the empty form.
func (f *Form) Head() Node {
	if len(f.Children) == 0 {
		return nil
	}
	return f.Children[0]
}

// Args returns all children except the head.
func (f *Form) Args() []Node {
	if len(f.Children) == 0 {
		return nil
	}
	return f.Children[1:]
}

// IsEmpty is a predicate: is this the empty form ()?
func (f *Form) IsEmpty() bool {
	return len(f.Children) == 0
}

// IsFn is a predicate: is this a function literal (fn …)?
func (f *Form) IsFn() bool {
	return len(f.Children) > 0 && f.Children[0] == KwFn
}

// IsValue is a predicate: does n evaluate to itself? Literals, the empty
// form and function literals are values.
func IsValue(n Node) bool {
	switch x := n.(type) {
	case Number, String:
		return true
	case *Form:
		return x.IsEmpty() || x.IsFn()
	}
	return false
}

// --- Structural operations -------------------------------------------------

// Equal compares two trees structurally.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case *Program:
		y, ok := b.(*Program)
		return ok && equalNodes(x.Children, y.Children)
	case *Form:
		y, ok := b.(*Form)
		return ok && equalNodes(x.Children, y.Children)
	case Keyword, Ident, Number, String:
		return a == b
	}
	return a == nil && b == nil
}

func equalNodes(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Clone creates a deep copy of a tree.
func Clone(n Node) Node {
	switch x := n.(type) {
	case *Program:
		return &Program{Children: cloneNodes(x.Children)}
	case *Form:
		return &Form{Children: cloneNodes(x.Children)}
	}
	return n // leafs are values
}

func cloneNodes(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	c := make([]Node, len(nodes))
	for i, n := range nodes {
		c[i] = Clone(n)
	}
	return c
}
