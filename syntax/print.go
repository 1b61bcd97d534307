package syntax

import (
	"fmt"
	"strconv"
	"strings"
)

// Print returns a tree as slang source text. Formatting of the source
// input is not preserved, but tokenizing and building the output again
// results in an equal tree.
func Print(n Node) string {
	var b strings.Builder
	write(&b, n, true)
	return b.String()
}

// Display returns the text the `print` operation outputs for a value.
// It differs from Print in showing strings without quotes.
func Display(n Node) string {
	var b strings.Builder
	write(&b, n, false)
	return b.String()
}

func write(b *strings.Builder, n Node, quote bool) {
	switch x := n.(type) {
	case *Program:
		writeAll(b, x.Children, quote)
	case *Form:
		b.WriteByte('(')
		writeAll(b, x.Children, quote)
		b.WriteByte(')')
	case Keyword:
		b.WriteString(keywordLexemes[x])
	case Ident:
		b.WriteString(x.Name)
	case Number:
		b.WriteString(strconv.FormatUint(uint64(x.Value), 10))
	case String:
		if quote {
			b.WriteByte('"')
			b.WriteString(x.Text)
			b.WriteByte('"')
		} else {
			b.WriteString(x.Text)
		}
	}
}

func writeAll(b *strings.Builder, nodes []Node, quote bool) {
	for i, n := range nodes {
		if i > 0 {
			b.WriteByte(' ')
		}
		write(b, n, quote)
	}
}

func (p *Program) String() string { return Print(p) }
func (f *Form) String() string    { return Print(f) }
func (k Keyword) String() string  { return keywordLexemes[k] }
func (id Ident) String() string   { return id.Name }
func (n Number) String() string   { return Print(n) }
func (s String) String() string   { return Print(s) }

// --- Debug form ------------------------------------------------------------

// Dump returns the debug form of a tree, e.g.
//
//    Program[Form[Plus, Number(1), Ident(x)]]
//
func Dump(n Node) string {
	var b strings.Builder
	dump(&b, n)
	return b.String()
}

// DumpAll returns the debug form of a sequence of nodes, e.g. a sequence of
// results from evaluating a program.
func DumpAll(nodes []Node) string {
	var b strings.Builder
	b.WriteByte('[')
	dumpAll(&b, nodes)
	b.WriteByte(']')
	return b.String()
}

func dump(b *strings.Builder, n Node) {
	switch x := n.(type) {
	case *Program:
		b.WriteString("Program[")
		dumpAll(b, x.Children)
		b.WriteByte(']')
	case *Form:
		b.WriteString("Form[")
		dumpAll(b, x.Children)
		b.WriteByte(']')
	case Keyword:
		b.WriteString(keywordNames[x])
	case Ident:
		fmt.Fprintf(b, "Ident(%s)", x.Name)
	case Number:
		fmt.Fprintf(b, "Number(%d)", x.Value)
	case String:
		fmt.Fprintf(b, "String(%q)", x.Text)
	case nil:
		b.WriteString("<nil>")
	}
}

func dumpAll(b *strings.Builder, nodes []Node) {
	for i, n := range nodes {
		if i > 0 {
			b.WriteString(", ")
		}
		dump(b, n)
	}
}

func (p *Program) GoString() string { return Dump(p) }
func (f *Form) GoString() string    { return Dump(f) }
func (k Keyword) GoString() string  { return keywordNames[k] }
func (id Ident) GoString() string   { return Dump(id) }
func (n Number) GoString() string   { return Dump(n) }
func (s String) GoString() string   { return Dump(s) }
