/*
Package lexer tokenizes slang source text.

The lexer is built on lexmachine, which compiles a set of regular expressions
into a DFA. For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Slang knows few token categories: brackets, keywords, strings, numbers and
names. Keywords are recognized after a name has been scanned, so every
keyword is spelled like a name:

	+  fn  let  print  macro

Strings are enclosed in double quotes and do not support escapes. A quote
always ends a string; an unterminated string runs to the end of the input.
Numbers are unsigned 32-bit decimal integers.

	lx, err := lexer.New(lexer.Macros(false))
	if err != nil {
		// do error handling
	}
	tokens, err := lx.Tokenize(`(let x 3 (print x))`)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slang.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("slang.lexer")
}
