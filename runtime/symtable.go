package runtime

import (
	"fmt"

	"github.com/npillmayer/slang/syntax"
)

// --- Tags -------------------------------------------------------

// Tag is the symbol type stored into symbol tables. It binds a name to a
// value. Values are syntax nodes: numbers, strings, the empty form, and
// function literals.
type Tag struct {
	name  string
	Value syntax.Node
}

// NewTag creates a new tag.
func NewTag(nm string, value syntax.Node) *Tag {
	return &Tag{
		name:  nm,
		Value: value,
	}
}

// String is a debug Stringer for tags.
func (t *Tag) String() string {
	return fmt.Sprintf("<tag '%s'=%#v>", t.name, t.Value)
}

// Name gets the tag's name.
func (t *Tag) Name() string {
	return t.name
}

// === Symbol Tables =========================================================

// SymbolTable is a symbol table to store tags (map-like semantics).
type SymbolTable struct {
	Table map[string]*Tag
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{Table: make(map[string]*Tag)}
}

// ResolveTag checks for a tag in the symbol table.
// Returns a tag or nil.
func (st *SymbolTable) ResolveTag(tagname string) *Tag {
	return st.Table[tagname]
}

// DefineTag creates a new tag to store into the symbol table.
// Overwrites an existing tag with this name, if any.
// Returns the new tag and the previously stored tag (or nil).
//
func (st *SymbolTable) DefineTag(tagname string, value syntax.Node) (*Tag, *Tag) {
	tag := NewTag(tagname, value)
	old := st.ResolveTag(tagname)
	st.Table[tagname] = tag
	return tag, old
}

// Size counts the tags in a symbol table.
func (st *SymbolTable) Size() int {
	return len(st.Table)
}

// Each iterates over each tag in the table, executing a mapper function.
func (st *SymbolTable) Each(mapper func(string, *Tag)) {
	for k, v := range st.Table {
		mapper(k, v)
	}
}
