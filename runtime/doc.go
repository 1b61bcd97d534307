/*
Package runtime implements the runtime environment of the slang interpreter.

An Environment is a stack of scopes, called ribs. Each rib holds a symbol
table of tags, binding names to values. Ribs are pushed when a `let` or a
function application starts and popped when it ends, no matter how it ends:

	defer env.PushScope().Release()

Name lookup searches the ribs from innermost to outermost, so inner bindings
shadow outer ones. Scoping is lexical only in the sense that the stack of
ribs mirrors the nesting of evaluation; functions do not capture their
defining environment.

For a thorough discussion of an interpreter's runtime environment, refer to
"Language Implementation Patterns" by Terence Parr.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package runtime

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slang.runtime'.
func tracer() tracing.Trace {
	return tracing.Select("slang.runtime")
}
