package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/slang/eval"
	"github.com/npillmayer/slang/expand"
	"github.com/npillmayer/slang/syntax"
	"github.com/pterm/pterm"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Intp is our interactive interpreter object. All lines of a session
// share one macro table.
type Intp struct {
	session *session
	folder  *expand.Unhygienic // nil without macro support
	interp  *eval.Interpreter
	repl    *readline.Instance
}

func newIntp(s *session) *Intp {
	intp := &Intp{
		session: s,
		interp:  eval.New(eval.Output(s.out)),
	}
	if s.macros {
		intp.folder = expand.NewUnhygienic()
	}
	return intp
}

// REPL starts an interactive session, after evaluating the lines of an
// init file, if any.
func (s *session) REPL(initf string) error {
	repl, err := readline.New("slang> ")
	if err != nil {
		tracer().Errorf("%v", err)
		return err
	}
	defer repl.Close()
	intp := newIntp(s)
	intp.repl = repl
	pterm.Info.Println("Welcome to slang")
	tracer().Infof("Quit with <ctrl>D")
	intp.loadInitFile(initf)
	intp.loop()
	return nil
}

func (intp *Intp) loop() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Execute(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, err := intp.Execute(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
}

// Execute handles a line of input. Lines starting with a colon are
// commands:
//
//    :tree expr   display the syntax tree of expr
//    :macros      list the macros defined so far
//    :quit        end the session
//
// Any other line is evaluated and its results are shown.
func (intp *Intp) Execute(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		results, err := intp.Eval(line)
		if err != nil {
			return false, err
		}
		pterm.Info.Println(syntax.DumpAll(results))
		return false, nil
	}
	cmd, arg := line[1:], ""
	if i := strings.IndexByte(cmd, ' '); i >= 0 {
		cmd, arg = cmd[:i], strings.TrimSpace(cmd[i:])
	}
	switch cmd {
	case "quit", "q":
		return true, nil
	case "macros":
		if intp.folder == nil {
			return false, fmt.Errorf("macro support is switched off")
		}
		for _, name := range intp.folder.Macros() {
			def, _ := intp.folder.Lookup(name)
			pterm.Println(def.String())
		}
	case "tree":
		prog, err := intp.session.build(arg)
		if err != nil {
			return false, err
		}
		renderTree(intp.session.out, "tree", prog)
	default:
		return false, fmt.Errorf("unknown command: %s", cmd)
	}
	return false, nil
}

// Eval tokenizes, builds, expands and runs a line of input.
func (intp *Intp) Eval(line string) ([]syntax.Node, error) {
	level := tracer().GetTraceLevel()
	tracer().Debugf("----------------------- Parse -----------------------------")
	prog, err := intp.session.build(line)
	if err != nil {
		return nil, err
	}
	if intp.folder != nil {
		tracer().Debugf("----------------------- Expand ----------------------------")
		tree, err := expand.Fold(prog, intp.folder)
		if err != nil {
			return nil, err
		}
		prog = tree.(*syntax.Program)
		if level >= tracing.LevelDebug {
			tracer().Debugf("expanded: %s", prog)
		}
	}
	tracer().Debugf("----------------------- Output ----------------------------")
	return intp.interp.Run(prog)
}
