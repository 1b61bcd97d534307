package expand

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/slang/syntax"
)

// Errors of macro expansion.
var (
	ErrMalformedMacro = errors.New("malformed macro definition")
	ErrMacroArity     = errors.New("wrong number of macro arguments")
)

// Definition is a macro as recorded by its definition form.
type Definition struct {
	Name   string
	Params []string
	Body   syntax.Node // raw, unexpanded
}

func (d Definition) String() string {
	return fmt.Sprintf("(macro %s %v %s)", d.Name, d.Params, syntax.Print(d.Body))
}

// Unhygienic is a Folder which expands macros without renaming. It keeps a
// table of macro definitions seen so far; clients should create a fresh
// Unhygienic for every expansion run, or re-use one deliberately to keep
// macros across runs (as an interactive session does).
type Unhygienic struct {
	macros *treemap.Map // name → Definition
}

var _ Folder = &Unhygienic{}

// NewUnhygienic creates a folder with an empty macro table.
func NewUnhygienic() *Unhygienic {
	return &Unhygienic{macros: treemap.NewWithStringComparator()}
}

// Macros returns the names of all defined macros, sorted.
func (u *Unhygienic) Macros() []string {
	names := make([]string, 0, u.macros.Size())
	for _, k := range u.macros.Keys() {
		names = append(names, k.(string))
	}
	return names
}

// Lookup returns the definition of a macro.
func (u *Unhygienic) Lookup(name string) (Definition, bool) {
	d, found := u.macros.Get(name)
	if !found {
		return Definition{}, false
	}
	return d.(Definition), true
}

// FoldMacro records a definition (macro name param… body) and replaces it
// by the empty form. An existing definition with the same name is replaced.
func (u *Unhygienic) FoldMacro(f *syntax.Form) (syntax.Node, error) {
	if f.Len() < 3 {
		tracer().Errorf("macro definition needs a name and a body: %s", f)
		return nil, fmt.Errorf("%w: %s", ErrMalformedMacro, f)
	}
	args := f.Args()
	name, ok := args[0].(syntax.Ident)
	if !ok {
		tracer().Errorf("macro name is not an identifier: %#v", args[0])
		return nil, fmt.Errorf("%w: name %s is not an identifier", ErrMalformedMacro, args[0])
	}
	def := Definition{
		Name: name.Name,
		Body: args[len(args)-1],
	}
	for _, p := range args[1 : len(args)-1] {
		param, ok := p.(syntax.Ident)
		if !ok {
			tracer().Errorf("macro parameter is not an identifier: %#v", p)
			return nil, fmt.Errorf("%w: parameter %s of %s is not an identifier",
				ErrMalformedMacro, p, name.Name)
		}
		def.Params = append(def.Params, param.Name)
	}
	if _, found := u.macros.Get(def.Name); found {
		tracer().Infof("redefining macro %s", def.Name)
	}
	tracer().Debugf("define macro %v", def)
	u.macros.Put(def.Name, def)
	return syntax.Empty(), nil
}

// FoldIdent substitutes a call of a defined macro. Forms headed by any other
// identifier are rebuilt with their children expanded.
func (u *Unhygienic) FoldIdent(f *syntax.Form) (syntax.Node, error) {
	name := f.Head().(syntax.Ident).Name
	def, found := u.Lookup(name)
	if !found {
		return refold(f, u)
	}
	args := f.Args()
	if len(args) != len(def.Params) {
		tracer().Errorf("macro %s expects %d argument(s), got %d", name, len(def.Params), len(args))
		return nil, fmt.Errorf("%w: macro %s expects %d, got %d", ErrMacroArity,
			name, len(def.Params), len(args))
	}
	bindings := make(map[string]syntax.Node, len(args))
	for i, p := range def.Params {
		if _, dup := bindings[p]; !dup { // first occurrence of a parameter wins
			bindings[p] = args[i]
		}
	}
	expanded := substitute(def.Body, bindings)
	tracer().Debugf("expand %s ⇒ %s", f, expanded)
	return expanded, nil
}

// substitute copies a tree, replacing identifiers by copies of the trees
// bound to them.
func substitute(n syntax.Node, bindings map[string]syntax.Node) syntax.Node {
	switch x := n.(type) {
	case syntax.Ident:
		if arg, ok := bindings[x.Name]; ok {
			return syntax.Clone(arg)
		}
	case *syntax.Form:
		children := make([]syntax.Node, len(x.Children))
		for i, ch := range x.Children {
			children[i] = substitute(ch, bindings)
		}
		return syntax.MakeForm(children...)
	}
	return n
}

// Expand expands all macros of a tree in a single pass, with a fresh
// macro table.
func Expand(tree syntax.Node) (syntax.Node, error) {
	return Fold(tree, NewUnhygienic())
}
