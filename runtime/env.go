package runtime

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
	"github.com/npillmayer/slang/syntax"
)

// Errors of name binding.
var (
	ErrAlreadyBound = errors.New("name already bound in scope")
	ErrNoScope      = errors.New("no scope to bind in")
)

// Scope is a rib of an environment.
type Scope struct {
	Level  int
	symtab *SymbolTable
}

func newScope(level int) *Scope {
	return &Scope{Level: level, symtab: NewSymbolTable()}
}

func (sc *Scope) String() string {
	return fmt.Sprintf("<scope #%d, %d tags>", sc.Level, sc.symtab.Size())
}

// Tags returns the symbol table of a scope.
func (sc *Scope) Tags() *SymbolTable {
	return sc.symtab
}

// Environment is a stack of scopes. The zero value is not usable, create
// environments with NewEnvironment.
type Environment struct {
	ribs *arraystack.Stack // of *Scope, innermost on top
}

// NewEnvironment creates an environment without any scope.
func NewEnvironment() *Environment {
	return &Environment{ribs: arraystack.New()}
}

// NewEnvironmentWith creates an environment with one scope, holding a
// single binding.
func NewEnvironmentWith(name string, value syntax.Node) *Environment {
	env := NewEnvironment()
	env.PushScope()
	env.Current().symtab.DefineTag(name, value)
	return env
}

// Depth returns the number of scopes.
func (env *Environment) Depth() int {
	return env.ribs.Size()
}

// Current gets the innermost scope, or nil for an empty environment.
func (env *Environment) Current() *Scope {
	top, ok := env.ribs.Peek()
	if !ok {
		return nil
	}
	return top.(*Scope)
}

// PushScope pushes a new, empty scope. The returned guard has to be released
// to pop the scope again, usually in a deferred call.
func (env *Environment) PushScope() *Guard {
	sc := newScope(env.ribs.Size() + 1)
	env.ribs.Push(sc)
	tracer().Debugf("pushing new scope #%d", sc.Level)
	return &Guard{env: env, scope: sc}
}

// Bind binds a name to a value in the innermost scope. Binding a name
// twice within the same scope is an error; shadowing a name of an outer
// scope is not.
func (env *Environment) Bind(name string, value syntax.Node) error {
	sc := env.Current()
	if sc == nil {
		tracer().Errorf("cannot bind %s: no scope", name)
		return fmt.Errorf("%w: %s", ErrNoScope, name)
	}
	if sc.symtab.ResolveTag(name) != nil {
		tracer().Errorf("name %s already bound in scope #%d", name, sc.Level)
		return fmt.Errorf("%w: %s", ErrAlreadyBound, name)
	}
	tag, _ := sc.symtab.DefineTag(name, value)
	tracer().Debugf("bind %v in scope #%d", tag, sc.Level)
	return nil
}

// Lookup finds the value bound to a name, searching from the innermost
// scope outwards.
func (env *Environment) Lookup(name string) (syntax.Node, bool) {
	it := env.ribs.Iterator() // iterates from top of stack
	for it.Next() {
		if tag := it.Value().(*Scope).symtab.ResolveTag(name); tag != nil {
			return tag.Value, true
		}
	}
	return nil, false
}

// Guard is the handle for a pushed scope.
type Guard struct {
	env   *Environment
	scope *Scope
}

// Release pops the scope the guard has been created for. Scopes must be
// released in reverse order of pushing; Release panics otherwise. Releasing
// a guard more than once has no effect.
func (g *Guard) Release() {
	if g.scope == nil {
		return
	}
	if g.env.Current() != g.scope {
		panic(fmt.Sprintf("scope %v released out of order, innermost is %v",
			g.scope, g.env.Current()))
	}
	g.env.ribs.Pop()
	tracer().Debugf("popping scope #%d", g.scope.Level)
	g.scope.Tags().Each(func(_ string, tag *Tag) {
		tracer().Debugf("    dropping %s", tag.Name())
	})
	g.scope = nil
}
