package libdiff

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/wson-format/wson/ir"
)

func doc(kvs ...any) *ir.Document {
	d := ir.NewDocument()
	for i := 0; i < len(kvs); i += 2 {
		d.Set(kvs[i].(string), kvs[i+1].(*ir.Node))
	}
	return d
}

func ints(is ...int64) *ir.Node {
	vs := make([]*ir.Node, len(is))
	for i, x := range is {
		vs[i] = ir.FromInt(x)
	}
	return ir.FromSlice(vs)
}

func TestDiff(t *testing.T) {
	from := doc(
		"name", ir.FromString("a"),
		"gone", ir.FromBool(true),
		"list", ints(1, 2, 3),
		"sub", ir.FromDocument(doc("v", ir.FromVersion(1, 0))),
		"kind", ir.FromInt(1),
	)
	to := doc(
		"name", ir.FromString("b"),
		"list", ints(1, 5),
		"sub", ir.FromDocument(doc("v", ir.FromVersion(1, 1), "new", ir.Null())),
		"kind", ir.FromFloat(1),
		"odd key", ints(),
	)
	got := Diff(from, to)
	want := []Change{
		{Path: "$.gone", Op: Removed, From: ir.FromBool(true)},
		{Path: "$.kind", Op: Changed, From: ir.FromInt(1), To: ir.FromFloat(1)},
		{Path: "$.list[1]", Op: Changed, From: ir.FromInt(2), To: ir.FromInt(5)},
		{Path: "$.list[2]", Op: Removed, From: ir.FromInt(3)},
		{Path: "$.name", Op: Changed, From: ir.FromString("a"), To: ir.FromString("b")},
		{Path: "$.'odd key'", Op: Added, To: ints()},
		{Path: "$.sub.new", Op: Added, To: ir.Null()},
		{Path: "$.sub.v", Op: Changed, From: ir.FromVersion(1, 0), To: ir.FromVersion(1, 1)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got)\n%s", diff)
	}
	if len(Diff(from, from.Clone())) != 0 {
		t.Errorf("expected no changes against a copy")
	}

	applied, err := Apply(from, got)
	if err != nil {
		t.Fatal(err)
	}
	if !applied.Equal(to) {
		t.Errorf("apply: got %v", Diff(applied, to))
	}
	undone, err := Apply(to, Reverse(got))
	if err != nil {
		t.Fatal(err)
	}
	if !undone.Equal(from) {
		t.Errorf("reverse: got %v", Diff(undone, from))
	}
}

func TestApplyErrors(t *testing.T) {
	d := doc("a", ints(1))
	for _, c := range []Change{
		{Path: "$", Op: Changed, To: ir.Null()},
		{Path: "$.a.b", Op: Changed, To: ir.Null()},
		{Path: "$.a[5]", Op: Changed, To: ir.Null()},
		{Path: "$.x", Op: Removed, From: ir.Null()},
		{Path: "$..a", Op: Changed, To: ir.Null()},
		{Path: "a", Op: Changed, To: ir.Null()},
	} {
		if _, err := Apply(d, []Change{c}); !errors.Is(err, ErrApply) {
			t.Errorf("%s: got %v", c.Path, err)
		}
	}
}

func TestChangeString(t *testing.T) {
	tests := []struct {
		c   Change
		out string
	}{
		{Change{Path: "$.a", Op: Added, To: ir.FromString("x")}, `+ $.a: "x"`},
		{Change{Path: "$.a", Op: Removed, From: ir.FromVersion(1, 2)}, `- $.a: 1.2`},
		{Change{Path: "$.a[0]", Op: Changed, From: ir.FromInt(1), To: ir.Null()}, `~ $.a[0]: 1 -> null`},
	}
	for _, tc := range tests {
		if got := tc.c.String(); got != tc.out {
			t.Errorf("got %q want %q", got, tc.out)
		}
	}
}

func TestText(t *testing.T) {
	if got := Text("a\nb\n", "a\nb\n"); got != "" {
		t.Errorf("equal texts: %q", got)
	}
	got := Text("a\nb\nc\n", "a\nx\nc\n")
	want := " a\n-b\n+x\n c\n"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
