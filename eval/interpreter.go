package eval

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/npillmayer/slang/runtime"
	"github.com/npillmayer/slang/syntax"
)

// Interpreter evaluates slang syntax trees. Output of the `print` operation
// goes to the interpreter's writer.
type Interpreter struct {
	out io.Writer
}

// Option configures an interpreter.
type Option func(ip *Interpreter)

// Output sets the writer for the `print` operation. Default is os.Stdout.
func Output(w io.Writer) Option {
	return func(ip *Interpreter) {
		ip.out = w
	}
}

// New creates an interpreter.
func New(opts ...Option) *Interpreter {
	ip := &Interpreter{out: os.Stdout}
	for _, opt := range opts {
		opt(ip)
	}
	return ip
}

// Run evaluates every top-level expression of a program in a fresh
// environment and returns the results in order. Run stops at the first
// error.
func (ip *Interpreter) Run(p *syntax.Program) ([]syntax.Node, error) {
	results := make([]syntax.Node, 0, len(p.Children))
	for i, n := range p.Children {
		tracer().Debugf("run #%d: %s", i, n)
		r, err := ip.Eval(n, runtime.NewEnvironment())
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}
	tracer().Infof("run: %d result(s)", len(results))
	return results, nil
}

// Eval evaluates a node within an environment.
func (ip *Interpreter) Eval(n syntax.Node, env *runtime.Environment) (syntax.Node, error) {
	if syntax.IsValue(n) {
		return n, nil
	}
	switch x := n.(type) {
	case syntax.Ident:
		if v, ok := env.Lookup(x.Name); ok {
			return v, nil
		}
		return nil, failf(ErrUnknownIdent, nil, "%s", x.Name)
	case *syntax.Form:
		return ip.evalForm(x, env)
	}
	return nil, failf(ErrUnexpectedNode, n, "cannot evaluate %#v", n)
}

func (ip *Interpreter) evalForm(f *syntax.Form, env *runtime.Environment) (syntax.Node, error) {
	for {
		tracer().Debugf("eval %s", f)
		switch head := f.Head().(type) {
		case syntax.Keyword:
			switch head {
			case syntax.KwPrint:
				return ip.print(f, env)
			case syntax.KwPlus:
				return ip.plus(f, env)
			case syntax.KwLet:
				return ip.let(f, env)
			}
			return nil, failf(ErrUnexpectedNode, f, "keyword %s not in operator position", head)
		case *syntax.Form:
			if head.IsFn() {
				return ip.apply(head, f.Args(), env)
			} else if head.IsEmpty() {
				return nil, failf(ErrNotCallable, f, "empty form is not a function")
			}
		case syntax.Number, syntax.String:
			return nil, failf(ErrNotCallable, f, "%s is not a function", head)
		}
		// reduce head and try again
		v, err := ip.Eval(f.Head(), env)
		if err != nil {
			return nil, err
		} else if !syntax.IsValue(v) {
			return nil, failf(ErrNotCallable, f, "head evaluates to %#v", v)
		}
		children := make([]syntax.Node, 0, f.Len())
		children = append(children, v)
		f = syntax.MakeForm(append(children, f.Args()...)...)
	}
}

// evalArgs evaluates the arguments of a form left to right.
func (ip *Interpreter) evalArgs(args []syntax.Node, env *runtime.Environment) ([]syntax.Node, error) {
	values := make([]syntax.Node, len(args))
	for i, a := range args {
		v, err := ip.Eval(a, env)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// (print a…)
func (ip *Interpreter) print(f *syntax.Form, env *runtime.Environment) (syntax.Node, error) {
	values, err := ip.evalArgs(f.Args(), env)
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		if _, err := fmt.Fprintln(ip.out, syntax.Display(v)); err != nil {
			tracer().Errorf("print: %v", err)
			return nil, fmt.Errorf("print: %w", err)
		}
	}
	return syntax.Empty(), nil
}

// (+ a…)
func (ip *Interpreter) plus(f *syntax.Form, env *runtime.Environment) (syntax.Node, error) {
	values, err := ip.evalArgs(f.Args(), env)
	if err != nil {
		return nil, err
	}
	var sum uint64
	for _, v := range values {
		n, ok := v.(syntax.Number)
		if !ok {
			return nil, failf(ErrType, f, "cannot add %s", syntax.Print(v))
		}
		sum += uint64(n.Value)
		if sum > math.MaxUint32 {
			return nil, failf(ErrOverflow, f, "sum exceeds %d", uint32(math.MaxUint32))
		}
	}
	return syntax.Number{Value: uint32(sum)}, nil
}

// (let name value … body)
func (ip *Interpreter) let(f *syntax.Form, env *runtime.Environment) (syntax.Node, error) {
	if f.Len() < 2 {
		return nil, failf(ErrArity, f, "let without body")
	}
	args := f.Args()
	bindings, body := args[:len(args)-1], args[len(args)-1]
	if len(bindings)%2 != 0 {
		return nil, failf(ErrArity, f, "let binding without a value")
	}
	defer env.PushScope().Release()
	for i := 0; i < len(bindings); i += 2 {
		name, ok := bindings[i].(syntax.Ident)
		if !ok {
			return nil, failf(ErrType, f, "cannot bind to %s", syntax.Print(bindings[i]))
		}
		v, err := ip.Eval(bindings[i+1], env)
		if err != nil {
			return nil, err
		}
		if err = env.Bind(name.Name, v); err != nil {
			return nil, &Error{Err: err, Node: f, Msg: "let"}
		}
	}
	return ip.Eval(body, env)
}

// ((fn param… body) arg…)
func (ip *Interpreter) apply(fn *syntax.Form, args []syntax.Node, env *runtime.Environment) (syntax.Node, error) {
	if fn.Len() < 2 {
		return nil, failf(ErrArity, fn, "function without body")
	}
	params := fn.Children[1 : fn.Len()-1]
	body := fn.Children[fn.Len()-1]
	names := make([]string, len(params))
	for i, p := range params {
		id, ok := p.(syntax.Ident)
		if !ok {
			return nil, failf(ErrType, fn, "parameter %s is not an identifier", syntax.Print(p))
		}
		names[i] = id.Name
	}
	values, err := ip.evalArgs(args, env)
	if err != nil {
		return nil, err
	}
	if len(values) != len(names) {
		return nil, failf(ErrArity, fn, "expected %d argument(s), got %d", len(names), len(values))
	}
	defer env.PushScope().Release()
	for i, name := range names {
		if err := env.Bind(name, values[i]); err != nil {
			return nil, &Error{Err: err, Node: fn, Msg: "function parameters"}
		}
	}
	return ip.Eval(body, env)
}
