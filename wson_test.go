package wson

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/wson-format/wson/encode"
	"github.com/signadot/wson-format/wson/ir"
	"github.com/signadot/wson-format/wson/libdiff"
	"github.com/signadot/wson-format/wson/parse"
)

func TestLoadsDumps(t *testing.T) {
	doc, err := Loads(`{ name = "Alice", age = 30 }`)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := doc.Keys(), []string{"age", "name"}; !cmp.Equal(got, want) {
		t.Errorf("keys %v", got)
	}
	text, err := Dumps(doc)
	if err != nil {
		t.Fatal(err)
	}
	if want := "{\n    age = 30,\n\n    name = \"Alice\"\n}"; text != want {
		t.Errorf("got %q want %q", text, want)
	}
}

func TestValidate(t *testing.T) {
	for _, in := range []string{
		`{ a = 1 }`,
		`{ a = 1`,
		`{ a = ? }`,
		``,
		"{ /* open",
		`{ a = [1, {b = 2}] }`,
	} {
		_, err := Loads(in)
		if Validate(in) != (err == nil) {
			t.Errorf("%q: Validate disagrees with Loads (%v)", in, err)
		}
	}
	if _, err := Loads(`{ a = 1`); !errors.Is(err, parse.ErrMalformedStructure) {
		t.Errorf("got %v", err)
	}
}

func TestDiff(t *testing.T) {
	a, _ := Loads(`{ a = 1, b = [1, 2] }`)
	b, _ := Loads(`{ a = 2, b = [1] }`)
	changes := Diff(a, b)
	if len(changes) != 2 || changes[0].Op != libdiff.Changed || changes[1].Path != "$.b[1]" {
		t.Errorf("got %v", changes)
	}
	text, err := TextDiff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, "-    a = 1,\n+    a = 2,\n") {
		t.Errorf("got\n%s", text)
	}
	if text, _ := TextDiff(a, a.Clone()); text != "" {
		t.Errorf("equal documents: %q", text)
	}
}

func TestPatch(t *testing.T) {
	doc, err := Loads(`{ v = 1.2.3, d = 2024-01-02, f = 2e0, list = [1, 2], name = "x" }`)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Patch(doc, []byte(`[
		{"op": "replace", "path": "/name", "value": "y"},
		{"op": "add", "path": "/list/-", "value": 3},
		{"op": "remove", "path": "/d"}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	want, err := Loads(`{ v = 1.2.3, f = 2e0, list = [1, 2, 3], name = "y" }`)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	for _, bad := range []string{`{`, `[{"op": "remove", "path": "/nope"}]`} {
		if _, err := Patch(doc, []byte(bad)); !errors.Is(err, ErrPatch) {
			t.Errorf("%s: got %v", bad, err)
		}
	}
}

func TestSum(t *testing.T) {
	a, _ := Loads("{ b = 2, a = 1 }")
	b, _ := Loads("{\n  a: 1, // one\n  b: 2\n}")
	c, _ := Loads("{ a = 1, b = 3 }")
	sa, err := Sum(a)
	if err != nil {
		t.Fatal(err)
	}
	sb, _ := Sum(b)
	sc, _ := Sum(c)
	if sa != sb {
		t.Errorf("equal documents hash differently: %s %s", sa, sb)
	}
	if sa == sc {
		t.Errorf("different documents hash the same")
	}
	if len(sa) != 64 {
		t.Errorf("unexpected sum length %d", len(sa))
	}
}

func TestRoundTripProperty(t *testing.T) {
	inputs := []string{
		`{ name = "Alice", age = 30 }`,
		`{ v = 1.2.3 }`,
		"{ /* c\n omment */ a = 1 }",
		`{ a = 1, b = }`,
		`{ f = 1.5e2, g = -0.25, n = [[], [null, true]], o = { p = { q = 2024-02-29 23:00:00 } } }`,
	}
	for _, in := range inputs {
		doc, err := Loads(in)
		if err != nil {
			t.Fatalf("%s: %v", in, err)
		}
		text := encode.MustString(doc)
		back, err := Loads(text)
		if err != nil {
			t.Fatalf("%s: reparse: %v", text, err)
		}
		if !back.Equal(doc) {
			t.Errorf("%s: round trip changed document\n%v", in, Diff(doc, back))
		}
	}
	if _, err := Dumps(ir.NewDocument(), encode.Depth(1)); err != nil {
		t.Error(err)
	}
}
