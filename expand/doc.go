/*
Package expand implements macro expansion for slang syntax trees.

Expansion is a fold over the tree. Fold walks every form and hands forms
headed by the keyword `macro` or by an identifier to a Folder, which decides
what to replace them with. Two folders are provided: NoopFolder, which
rebuilds the tree unchanged, and Unhygienic, which records macro definitions
and substitutes macro calls.

Macros are unhygienic: a macro body is inserted at the call site with its
parameters replaced by the raw argument trees, and names in the body may
capture names at the call site.

	(macro inc y (let x 1 (+ x y)))
	(let x 10 (inc x))       ⇒  2, not 11

Expansion is a single pass. The result of a substitution is not expanded
again, and a macro is only known to forms following its definition.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package expand

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slang.expand'.
func tracer() tracing.Trace {
	return tracing.Select("slang.expand")
}
