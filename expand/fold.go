package expand

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/slang/syntax"
)

// Folder decides how to rewrite forms during a Fold.
//
// FoldIdent is called for every form whose head is an identifier, FoldMacro
// for every form whose head is the keyword `macro`. Both receive the complete
// form, head included, with its children not yet folded. A folder which
// wants the children of a form to be folded has to call Fold on them.
type Folder interface {
	FoldIdent(f *syntax.Form) (syntax.Node, error)
	FoldMacro(f *syntax.Form) (syntax.Node, error)
}

// Fold walks a tree and returns a rewritten tree. Forms headed by an
// identifier or by `macro` are delegated to f; other forms are rebuilt from
// their folded children. Leafs and the empty form pass through unchanged.
func Fold(n syntax.Node, f Folder) (syntax.Node, error) {
	switch x := n.(type) {
	case *syntax.Program:
		children, err := foldAll(x.Children, f)
		if err != nil {
			return nil, err
		}
		return syntax.MakeProgram(children...), nil
	case *syntax.Form:
		switch x.Head().(type) {
		case nil:
			return x, nil
		case syntax.Ident:
			return f.FoldIdent(x)
		case syntax.Keyword:
			if x.Head() == syntax.KwMacro {
				return f.FoldMacro(x)
			}
		}
		children, err := foldAll(x.Children, f)
		if err != nil {
			return nil, err
		}
		return syntax.MakeForm(children...), nil
	}
	return n, nil
}

func foldAll(nodes []syntax.Node, f Folder) ([]syntax.Node, error) {
	folded := make([]syntax.Node, 0, len(nodes))
	for _, n := range nodes {
		fn, err := Fold(n, f)
		if err != nil {
			return nil, err
		}
		folded = append(folded, fn)
	}
	return folded, nil
}

// NoopFolder rebuilds every form unchanged.
type NoopFolder struct{}

func (NoopFolder) FoldIdent(f *syntax.Form) (syntax.Node, error) {
	return refold(f, NoopFolder{})
}

func (NoopFolder) FoldMacro(f *syntax.Form) (syntax.Node, error) {
	return refold(f, NoopFolder{})
}

// refold rebuilds a form from its folded children.
func refold(f *syntax.Form, folder Folder) (syntax.Node, error) {
	children, err := foldAll(f.Children, folder)
	if err != nil {
		return nil, err
	}
	return syntax.MakeForm(children...), nil
}
