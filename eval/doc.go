/*
Package eval implements the slang interpreter.

The interpreter evaluates syntax trees directly. A program is a sequence of
independent top-level expressions; each one is evaluated in a fresh
environment and contributes one result:

	prog, _ := syntax.Parse(`(+ 1 2) (let x "a" x)`)
	results, err := eval.New().Run(prog)   // [Number(3), String("a")]

Evaluation follows a handful of rules. Numbers, strings, the empty form and
function literals (fn p… body) evaluate to themselves. Identifiers evaluate
to their bound value. Forms headed by `print`, `+` or `let` are built-in
operations. A form headed by a function literal applies the function to
its evaluated arguments. Any other head is evaluated first and the form is
tried again with the result in head position.

There are no closures. A function body sees the bindings of the environment
it is applied in, not of the one it was defined in.

Errors are reported as *Error values, which wrap one of the sentinel errors
of this package (or of package runtime). Use errors.Is to test for them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package eval

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slang.eval'.
func tracer() tracing.Trace {
	return tracing.Select("slang.eval")
}
