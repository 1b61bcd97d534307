package runtime

import (
	"errors"
	"sort"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/slang/syntax"
)

func TestSymbolTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.runtime")
	defer teardown()
	//
	symtab := NewSymbolTable()
	tag, old := symtab.DefineTag("new-sym", syntax.Number{Value: 5})
	if tag == nil || old != nil {
		t.Fatalf("expected new tag without predecessor, got %v, %v", tag, old)
	}
	if s := symtab.ResolveTag("new-sym"); s != tag {
		t.Errorf("cannot find stored tag in table")
	}
	if _, old = symtab.DefineTag("new-sym", syntax.Empty()); old != tag {
		t.Errorf("tag should have been replaced")
	}
	if symtab.Size() != 1 {
		t.Errorf("expected table size 1, is %d", symtab.Size())
	}
}

func TestEmptyEnvironment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.runtime")
	defer teardown()
	//
	env := NewEnvironment()
	if env.Depth() != 0 {
		t.Errorf("expected depth 0, is %d", env.Depth())
	}
	if _, ok := env.Lookup("a"); ok {
		t.Errorf("did not expect to find a name in an empty environment")
	}
	if err := env.Bind("a", syntax.Number{Value: 1}); !errors.Is(err, ErrNoScope) {
		t.Errorf("expected %v, got %v", ErrNoScope, err)
	}
}

func TestShadowing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.runtime")
	defer teardown()
	//
	env := NewEnvironmentWith("a", syntax.Number{Value: 0})
	if v, ok := env.Lookup("a"); !ok || !syntax.Equal(v, syntax.Number{Value: 0}) {
		t.Fatalf("expected a = 0, got %v", v)
	}
	g := env.PushScope()
	if err := env.Bind("a", syntax.Number{Value: 42}); err != nil {
		t.Fatal(err)
	}
	if env.Depth() != 2 {
		t.Errorf("expected depth 2, is %d", env.Depth())
	}
	if v, _ := env.Lookup("a"); !syntax.Equal(v, syntax.Number{Value: 42}) {
		t.Errorf("expected inner a = 42, got %v", v)
	}
	g.Release()
	if v, _ := env.Lookup("a"); !syntax.Equal(v, syntax.Number{Value: 0}) {
		t.Errorf("expected outer a = 0 after release, got %v", v)
	}
	if env.Depth() != 1 {
		t.Errorf("expected depth 1, is %d", env.Depth())
	}
}

func TestAlreadyBound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.runtime")
	defer teardown()
	//
	env := NewEnvironment()
	defer env.PushScope().Release()
	if err := env.Bind("x", syntax.String{Text: "a"}); err != nil {
		t.Fatal(err)
	}
	if err := env.Bind("x", syntax.String{Text: "b"}); !errors.Is(err, ErrAlreadyBound) {
		t.Errorf("expected %v, got %v", ErrAlreadyBound, err)
	}
	if v, _ := env.Lookup("x"); !syntax.Equal(v, syntax.String{Text: "a"}) {
		t.Errorf("expected first binding to survive, got %v", v)
	}
}

func TestGuard(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.runtime")
	defer teardown()
	//
	env := NewEnvironment()
	outer := env.PushScope()
	inner := env.PushScope()
	inner.Release()
	inner.Release() // no-op
	if env.Depth() != 1 {
		t.Errorf("expected depth 1 after double release, is %d", env.Depth())
	}
	outer.Release()
	if env.Depth() != 0 {
		t.Errorf("expected depth 0, is %d", env.Depth())
	}
}

func TestGuardOutOfOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.runtime")
	defer teardown()
	//
	env := NewEnvironment()
	outer := env.PushScope()
	env.PushScope()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected out-of-order release to panic")
		}
	}()
	outer.Release()
}

func TestScopeTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.runtime")
	defer teardown()
	//
	env := NewEnvironmentWith("a", syntax.Number{Value: 1})
	g := env.PushScope()
	env.Bind("y", syntax.Empty())
	env.Bind("x", syntax.String{Text: "x"})
	var names []string
	env.Current().Tags().Each(func(key string, tag *Tag) {
		if key != tag.Name() {
			t.Errorf("tag %v stored under key %s", tag, key)
		}
		names = append(names, tag.Name())
	})
	sort.Strings(names)
	if len(names) != 2 || names[0] != "x" || names[1] != "y" {
		t.Errorf("expected tags [x y] in inner scope, have %v", names)
	}
	g.Release()
	if n := env.Current().Tags().Size(); n != 1 {
		t.Errorf("expected 1 tag in outer scope, have %d", n)
	}
}
