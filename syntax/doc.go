/*
Package syntax defines the syntax tree of slang, the tree builder and printers.

Syntax trees are strict trees of Nodes. A Node is one of

	*Program   the root of a tree; each child is a top-level expression
	*Form      a parenthesized expression
	Keyword    one of + fn let print macro
	Ident      a name
	Number     an unsigned 32-bit integer literal
	String     a string literal

Clients switch over the concrete node types; the set of types is closed.
Program occurs only at the root of a tree.

Trees are built from a token sequence with Build. They may be printed in
three flavours: as slang source text (Print), as text for output by the
`print` operation (Display) and as a debug dump (Dump).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package syntax

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slang.syntax'.
func tracer() tracing.Trace {
	return tracing.Select("slang.syntax")
}
