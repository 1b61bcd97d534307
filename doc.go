/*
Package slang is a small runtime for an s-expression language.

Slang turns a token stream into a syntax tree, may rewrite that tree by
unhygienic macro substitution, and evaluates it with a tree-walking
interpreter over a stack of scopes. Package structure is
as follows:

■ lexer: Package lexer tokenizes slang source text, using a lexmachine DFA.

■ syntax: Package syntax defines the syntax tree, the tree builder and printers.

■ expand: Package expand implements folds over syntax trees and the macro expander.

■ runtime: Package runtime provides scope chains (environments) for the evaluator.

■ eval: Package eval implements the evaluator.

■ cmd/slang: Command slang runs programs from stdin and hosts an interactive session.

The base package contains token data types which are used throughout all the
other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package slang
