/*
Command slang runs slang programs and shows the intermediate stages of
running them.

Usage:

	slang [-trace Error|Info|Debug] [-macros=true] [-init file] <action>

All actions except `repl` read a program from stdin:

	lex      print the tokens, first in display form, then in debug form
	parse    print the debug form of the syntax tree
	print    pretty-print the syntax tree
	expand   expand macros, print the expanded tree, run it and print the results
	run      run the program without macro expansion and print the results
	tree     render the syntax tree as a tree on the terminal
	repl     start an interactive session

Action `expand` is available only with macro support enabled (the
default). In an interactive session, macros defined on earlier lines remain
available on later lines. Flag -init names a file of lines to evaluate
before the session starts.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slang.cli'.
func tracer() tracing.Trace {
	return tracing.Select("slang.cli")
}
