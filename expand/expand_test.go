package expand

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/slang/syntax"
)

func parse(t *testing.T, input string) *syntax.Program {
	t.Helper()
	prog, err := syntax.Parse(input)
	if err != nil {
		t.Fatalf("%q: %v", input, err)
	}
	return prog
}

func TestNoop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.expand")
	defer teardown()
	//
	inputs := []string{
		"",
		`(print "Hello world!")`,
		`a (let a 42 (fn x (+ x a)))`,
		`((fn x (+ x 42)) (+ 3 "a string"))`,
		`(macro m x x) (m 1) () (() (f g))`,
	}
	for _, input := range inputs {
		prog := parse(t, input)
		folded, err := Fold(prog, NoopFolder{})
		if err != nil {
			t.Errorf("%q: %v", input, err)
			continue
		}
		if !syntax.Equal(prog, folded) {
			t.Errorf("%q: noop fold changed %#v to %#v", input, prog, folded)
		}
	}
}

func TestExpand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.expand")
	defer teardown()
	//
	inputs := []struct {
		input, expected string
	}{
		{`(macro m x (let x 1 x)) (m x)`, `() (let x 1 x)`},
		{`(macro inc y (let x 1 (+ x y))) (let x 10 (inc x))`,
			`() (let x 10 (let x 1 (+ x x)))`},
		{`(macro twice a (+ a a)) (print (twice (+ 1 2)))`,
			`() (print (+ (+ 1 2) (+ 1 2)))`},
		{`(macro k 42) (k)`, `() 42`},
		{`(f (g 1)) (macro g x x) (f (g 1))`, `(f (g 1)) () (f 1)`},
		{`(macro a x x) (macro a x (+ x x)) (a 2)`, `() () (+ 2 2)`},
		{`(macro m x (n x)) (macro n x x) (m 3)`, `() () (n 3)`},
		{`((fn x (m x)) 1) (macro m x x)`, `((fn x (m x)) 1) ()`},
		{`(let m 3 (macro m x x) (m 5))`, `(let m 3 () 5)`},
		{`macro fn (+)`, `macro fn (+)`},
	}
	for _, x := range inputs {
		prog := parse(t, x.input)
		expanded, err := Expand(prog)
		if err != nil {
			t.Errorf("%q: %v", x.input, err)
			continue
		}
		if p := syntax.Print(expanded); p != x.expected {
			t.Errorf("%q: expected %s, got %s", x.input, x.expected, p)
		}
	}
}

func TestMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.expand")
	defer teardown()
	//
	inputs := []string{
		`(macro)`,
		`(macro m)`,
		`(macro 42 x x)`,
		`(macro m "x" x)`,
		`(macro m (x) x)`,
		`(let a 1 (macro))`,
	}
	for _, input := range inputs {
		if _, err := Expand(parse(t, input)); !errors.Is(err, ErrMalformedMacro) {
			t.Errorf("%q: expected %v, got %v", input, ErrMalformedMacro, err)
		}
	}
}

func TestArity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.expand")
	defer teardown()
	//
	inputs := []string{
		`(macro m x y (+ x y)) (m 1)`,
		`(macro m x y (+ x y)) (m 1 2 3)`,
		`(macro k 42) (k 1)`,
	}
	for _, input := range inputs {
		if _, err := Expand(parse(t, input)); !errors.Is(err, ErrMacroArity) {
			t.Errorf("%q: expected %v, got %v", input, ErrMacroArity, err)
		}
	}
}

func TestMacroTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.expand")
	defer teardown()
	//
	u := NewUnhygienic()
	prog := parse(t, `(macro zz a b (+ a b)) (macro aa x) (macro mm q (print q))`)
	if _, err := Fold(prog, u); err != nil {
		t.Fatal(err)
	}
	names := u.Macros()
	if len(names) != 3 || names[0] != "aa" || names[1] != "mm" || names[2] != "zz" {
		t.Errorf("expected macros [aa mm zz], got %v", names)
	}
	def, ok := u.Lookup("zz")
	if !ok {
		t.Fatalf("expected macro zz to be defined")
	}
	if len(def.Params) != 2 || def.Params[0] != "a" || def.Params[1] != "b" {
		t.Errorf("expected parameters [a b], got %v", def.Params)
	}
	if syntax.Print(def.Body) != "(+ a b)" {
		t.Errorf("expected body (+ a b), got %s", syntax.Print(def.Body))
	}
	if _, ok := u.Lookup("nope"); ok {
		t.Errorf("did not expect macro nope to be defined")
	}
	// macros survive across folds with the same folder
	expanded, err := Fold(parse(t, `(zz 1 2)`), u)
	if err != nil {
		t.Fatal(err)
	}
	if p := syntax.Print(expanded); p != "(+ 1 2)" {
		t.Errorf("expected (+ 1 2), got %s", p)
	}
}

func TestArgumentsAreCopied(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.expand")
	defer teardown()
	//
	prog := parse(t, `(macro twice a (+ a a)) (twice (f 1))`)
	expanded, err := Expand(prog)
	if err != nil {
		t.Fatal(err)
	}
	sum := expanded.(*syntax.Program).Children[1].(*syntax.Form)
	first, second := sum.Children[1].(*syntax.Form), sum.Children[2].(*syntax.Form)
	if first == second {
		t.Errorf("expected substituted arguments to be distinct copies")
	}
	first.Children[1] = syntax.Number{Value: 7}
	if syntax.Print(second) != "(f 1)" {
		t.Errorf("expected second argument to be unaffected, is %s", second)
	}
}
