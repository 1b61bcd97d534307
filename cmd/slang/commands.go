package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/slang/eval"
	"github.com/npillmayer/slang/expand"
	"github.com/npillmayer/slang/lexer"
	"github.com/npillmayer/slang/syntax"
	"github.com/pterm/pterm"
)

// session holds what the actions share: a lexer configured for the macro
// setting and the output writer.
type session struct {
	lx     *lexer.Lexer
	macros bool
	out    io.Writer
}

func newSession(macros bool, out io.Writer) (*session, error) {
	lx, err := lexer.New(lexer.Macros(macros))
	if err != nil {
		return nil, err
	}
	return &session{lx: lx, macros: macros, out: out}, nil
}

// action executes a command on a program text.
type action func(s *session, input string) error

var actions = map[string]action{
	"lex":    (*session).lex,
	"parse":  (*session).parse,
	"print":  (*session).print,
	"expand": (*session).expand,
	"run":    (*session).run,
	"tree":   (*session).tree,
}

// Do executes the action named cmd. Unknown actions are reported, but are
// not an error.
func (s *session) Do(cmd string, input string) error {
	a, ok := actions[cmd]
	if !ok || (cmd == "expand" && !s.macros) {
		tracer().Infof("unknown action %q", cmd)
		_, err := fmt.Fprintf(s.out, "unknown action: `%s`\n", cmd)
		return err
	}
	return a(s, input)
}

// build tokenizes and builds a program.
func (s *session) build(input string) (*syntax.Program, error) {
	tokens, err := s.lx.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return syntax.Build(tokens)
}

func (s *session) lex(input string) error {
	tokens, err := s.lx.Tokenize(input)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, lexer.Display(tokens))
	fmt.Fprintln(s.out, lexer.Dump(tokens))
	return nil
}

func (s *session) parse(input string) error {
	prog, err := s.build(input)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, syntax.Dump(prog))
	return nil
}

func (s *session) print(input string) error {
	prog, err := s.build(input)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, syntax.Print(prog))
	return nil
}

func (s *session) expand(input string) error {
	prog, err := s.build(input)
	if err != nil {
		return err
	}
	tree, err := expand.Expand(prog)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, syntax.Print(tree))
	return s.runProgram(tree.(*syntax.Program))
}

func (s *session) run(input string) error {
	prog, err := s.build(input)
	if err != nil {
		return err
	}
	return s.runProgram(prog)
}

func (s *session) runProgram(prog *syntax.Program) error {
	results, err := eval.New(eval.Output(s.out)).Run(prog)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, syntax.DumpAll(results))
	return nil
}

// tree renders a syntax tree on the terminal.
func (s *session) tree(input string) error {
	prog, err := s.build(input)
	if err != nil {
		return err
	}
	renderTree(s.out, "program", prog)
	return nil
}

func renderTree(w io.Writer, label string, n syntax.Node) {
	pterm.Fprintln(w, label)
	ll := leveledNodes(n, pterm.LeveledList{}, 0)
	if len(ll) == 0 {
		return
	}
	root := pterm.NewTreeFromLeveledList(ll)
	tree, _ := pterm.DefaultTree.WithRoot(root).Srender()
	pterm.Fprint(w, tree)
}

// leveledNodes flattens a syntax tree into a leveled list, one item per node.
// Forms are shown as a bracket pair with their children one level deeper.
func leveledNodes(n syntax.Node, ll pterm.LeveledList, level int) pterm.LeveledList {
	var children []syntax.Node
	switch x := n.(type) {
	case *syntax.Program:
		children = x.Children
		level-- // top-level expressions are roots
	case *syntax.Form:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: "()"})
		children = x.Children
	default:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: n.GoString()})
	}
	for _, ch := range children {
		ll = leveledNodes(ch, ll, level+1)
	}
	return ll
}
