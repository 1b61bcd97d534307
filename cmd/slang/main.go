package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

func main() {
	initDisplay()
	flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	flag.Bool("macros", true, "Enable macro support")
	flag.String("init", "", "Initial load for interactive mode")
	flag.Usage = usage
	flag.Parse()
	//
	// set up configuration and tracing
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := configFromFlags(flag.CommandLine)
	gconf.Initialize(conf)
	initTracing(conf)
	//
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}
	action := flag.Arg(0)
	if action == "repl" {
		s, err := newSession(gconf.GetBool("macros"), os.Stdout)
		if err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(1)
		}
		if err = s.REPL(gconf.GetString("init")); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(1)
		}
		os.Exit(0)
	}
	os.Exit(run(action, gconf.GetBool("macros"), os.Stdin, os.Stdout))
}

// run reads a program from in and executes an action on it. It returns the
// exit status.
func run(action string, macros bool, in io.Reader, out io.Writer) int {
	s, err := newSession(macros, out)
	if err != nil {
		pterm.Error.Println(err.Error())
		return 1
	}
	input, err := io.ReadAll(in)
	if err != nil {
		pterm.Error.Println(err.Error())
		return 1
	}
	tracer().Infof("action %s, %d bytes of input", action, len(input))
	if err = s.Do(action, string(input)); err != nil {
		pterm.Error.Println(err.Error())
		return 1
	}
	return 0
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(),
		"Usage: %s [flags] lex|parse|print|expand|run|tree|repl\n", os.Args[0])
	flag.PrintDefaults()
}

// initTracing installs a Go logger based tracer for all trace keys, with
// the trace level set from the configuration.
func initTracing(conf flagConfig) {
	adapter := tracing.GetAdapterFromConfiguration(conf, "")
	tracing.SetTraceSelector(tracing.SelectorForAdapter(adapter))
	tracer().SetTraceLevel(tracing.TraceLevelFromString(conf.GetString("trace")))
	tracer().Infof("Trace level is %s", conf.GetString("trace"))
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
