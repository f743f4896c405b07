package parse

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/wson-format/wson/ir"
	"github.com/signadot/wson-format/wson/token"
)

func obj(kvs ...any) *ir.Document {
	d := ir.NewDocument()
	for i := 0; i < len(kvs); i += 2 {
		d.Set(kvs[i].(string), kvs[i+1].(*ir.Node))
	}
	return d
}

func arr(vs ...*ir.Node) *ir.Node {
	return ir.FromSlice(vs)
}

type parseTest struct {
	in  string
	out *ir.Document
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{
			in:  `{ name = "Alice", age = 30 }`,
			out: obj("age", ir.FromInt(30), "name", ir.FromString("Alice")),
		},
		{
			in:  `{ v = 1.2.3 }`,
			out: obj("v", ir.FromVersion(1, 2, 3)),
		},
		{
			in:  "{ /* c\n omment */ a = 1 }",
			out: obj("a", ir.FromInt(1)),
		},
		{
			in:  `{ a = 1, b = }`,
			out: obj("a", ir.FromInt(1), "b", ir.Null()),
		},
		{
			in:  `{}`,
			out: obj(),
		},
		{
			in:  "{\n\n}",
			out: obj(),
		},
		{
			in:  `{ a: 1, "b": 2 }`,
			out: obj("a", ir.FromInt(1), `"b"`, ir.FromInt(2)),
		},
		{
			in:  `{ a = 1, }`,
			out: obj("a", ir.FromInt(1)),
		},
		{
			in:  `{ a = 1, a = 2 }`,
			out: obj("a", ir.FromInt(2)),
		},
		{
			in: `{ a = { b = [1, [2, 3]], c = "x" } }`,
			out: obj("a", ir.FromDocument(obj(
				"b", arr(ir.FromInt(1), arr(ir.FromInt(2), ir.FromInt(3))),
				"c", ir.FromString("x"),
			))),
		},
		{
			in:  `{ a = [ { k = 1 }, { k = 2 } ] }`,
			out: obj("a", arr(ir.FromDocument(obj("k", ir.FromInt(1))), ir.FromDocument(obj("k", ir.FromInt(2))))),
		},
		{
			in:  `{ a = [], b = [ ], c = {} }`,
			out: obj("a", arr(), "b", arr(), "c", ir.FromDocument(obj())),
		},
		{
			in:  `{ a = [1, , 2,] }`,
			out: obj("a", arr(ir.FromInt(1), ir.Null(), ir.FromInt(2))),
		},
		{
			in:  `{ t = "a = b" }`,
			out: obj("t", ir.FromString("a = b")),
		},
		{
			in:  `{ d = 2024-02-29, dt = 2024-02-29 13:04:05 }`,
			out: obj("d", ir.FromDate("2024-02-29"), "dt", ir.FromDateTime("2024-02-29 13:04:05")),
		},
		{
			in: `{
    // comment
    on = TRUE,   # also a comment
    off = false,
    nothing = Null,
    ratio = 1.5e2
}`,
			out: obj(
				"nothing", ir.Null(),
				"off", ir.FromBool(false),
				"on", ir.FromBool(true),
				"ratio", ir.FromFloat(150),
			),
		},
	}
	for i := range pts {
		pt := &pts[i]
		doc, err := Parse([]byte(pt.in))
		if err != nil {
			t.Errorf("# doc\n%s\n# error %v", pt.in, err)
			continue
		}
		if diff := cmp.Diff(pt.out, doc); diff != "" {
			t.Errorf("# doc\n%s\n# diff (-want +got)\n%s", pt.in, diff)
		}
		if !Valid([]byte(pt.in)) {
			t.Errorf("# doc\n%s\nparsed but not valid", pt.in)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in   string
		kind error
		msg  string
	}{
		{
			in:   `{ a = 1`,
			kind: ErrMalformedStructure,
			msg:  "WSON document must start with '{' and end with '}' (line 1, column 1)",
		},
		{
			in:   ``,
			kind: ErrMalformedStructure,
		},
		{
			in:   `[1, 2]`,
			kind: ErrMalformedStructure,
		},
		{
			in:   "{\n  a = 1,\n  b = oops\n}",
			kind: ErrInvalidValue,
			msg:  "invalid value: oops (line 3, column 7)",
		},
		{
			in:   "{\n# header\n  a = [1, 2, nope]\n}",
			kind: ErrInvalidValue,
			msg:  "invalid value: nope (line 3, column 14)",
		},
		{
			in:   "{ /* a long note */ a = bad }",
			kind: ErrInvalidValue,
			msg:  "invalid value: bad (line 1, column 25)",
		},
		{
			in:   "{ /* x\n still comment */ a = bad }",
			kind: ErrInvalidValue,
			msg:  "invalid value: bad (line 2, column 23)",
		},
		{
			in:   `{ d = 2023-02-29 }`,
			kind: ErrInvalidValue,
		},
		{
			in:   `{ v = 1.2.99999999999 }`,
			kind: ErrInvalidValue,
		},
		{
			in:   `{ u = "http://example.com" }`,
			kind: ErrMalformedStructure,
		},
	}
	for _, tc := range tests {
		_, err := Parse([]byte(tc.in))
		if err == nil {
			t.Errorf("%q: expected error", tc.in)
			continue
		}
		if !errors.Is(err, tc.kind) {
			t.Errorf("%q: got %v, want kind %v", tc.in, err, tc.kind)
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("%q: %v is not a parse error", tc.in, err)
		}
		if tc.msg != "" && err.Error() != tc.msg {
			t.Errorf("%q: got message %q want %q", tc.in, err.Error(), tc.msg)
		}
		if Valid([]byte(tc.in)) {
			t.Errorf("%q: valid despite error", tc.in)
		}
	}
}

func TestClassifyScalar(t *testing.T) {
	tests := []struct {
		in  string
		out *ir.Node
	}{
		{"", ir.Null()},
		{`""`, ir.FromString("")},
		{`"x y"`, ir.FromString("x y")},
		{`"`, nil},
		{"True", ir.FromBool(true)},
		{"FALSE", ir.FromBool(false)},
		{"nULL", ir.Null()},
		{"42", ir.FromInt(42)},
		{"-7", ir.FromInt(-7)},
		{"1.2", ir.FromVersion(1, 2)},
		{"0.0.1", ir.FromVersion(0, 0, 1)},
		{"1.5e2", ir.FromFloat(150)},
		{"-3.5", ir.FromFloat(-3.5)},
		{".5", ir.FromFloat(0.5)},
		{"4294967296.5", ir.FromFloat(4294967296.5)},
		{"9223372036854775808", ir.FromFloat(9223372036854775808)},
		{"1e400", ir.FromFloat(math.Inf(1))},
		{"0x1p3", nil},
		{"1_000", nil},
		{"2024-01-02", ir.FromDate("2024-01-02")},
		{"2024-1-2", nil},
		{"2024-01-02 03:04:05", ir.FromDateTime("2024-01-02 03:04:05")},
		{"2024-01-02 03:04:05.5", nil},
		{"2024-01-02 25:04:05", nil},
		{"hello", nil},
		{"{}", nil},
	}
	for _, tc := range tests {
		got := classifyScalar(tc.in)
		if diff := cmp.Diff(tc.out, got); diff != "" {
			t.Errorf("%q: (-want +got)\n%s", tc.in, diff)
		}
	}
}

func TestCommentTransparency(t *testing.T) {
	plain := "{\n    a = 1,\n    b = [\"x\", \"y\"],\n    c = { d = 2.0.1 }\n}"
	commented := "{ // top\n    a = 1, # one\n    b = [/* inline */ \"x\", \"y\"], /* spans\n lines */\n    c = { d = 2.0.1 } // last\n}"
	want, err := Parse([]byte(plain))
	if err != nil {
		t.Fatal(err)
	}
	got, err := Parse([]byte(commented))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestQuoteAwareComments(t *testing.T) {
	in := []byte(`{ u = "http://example.com/#top" } // trailing`)
	doc, err := Parse(in, QuoteAwareComments(true))
	if err != nil {
		t.Fatal(err)
	}
	want := obj("u", ir.FromString("http://example.com/#top"))
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	if Valid(in) {
		t.Errorf("default stripping should cut the string")
	}
}

func TestCommentColumns(t *testing.T) {
	for _, quote := range []bool{false, true} {
		_, err := Parse([]byte("{\n  a = /* é */ [1, /**/ nope]\n}"), QuoteAwareComments(quote))
		var perr *Error
		if !errors.As(err, &perr) || perr.Pos == nil {
			t.Fatalf("quote %t: got %v", quote, err)
		}
		if perr.Pos.Line != 2 || perr.Pos.Col != 24 {
			t.Errorf("quote %t: got %s, want line 2, column 24", quote, perr.Pos)
		}
	}
}

func TestMaxDepth(t *testing.T) {
	if _, err := Parse([]byte(`{ a = { b = 1 } }`), MaxDepth(2)); err != nil {
		t.Errorf("depth 2: %v", err)
	}
	for _, in := range []string{
		`{ a = { b = { c = 1 } } }`,
		`{ a = [[1]] }`,
	} {
		_, err := Parse([]byte(in), MaxDepth(2))
		if !errors.Is(err, ErrNestingTooDeep) {
			t.Errorf("%s: got %v", in, err)
		}
	}
	deep := ""
	for range DefaultMaxDepth + 1 {
		deep += "["
	}
	for range DefaultMaxDepth + 1 {
		deep += "]"
	}
	_, err := Parse([]byte("{ a = " + deep + " }"))
	if !errors.Is(err, ErrNestingTooDeep) {
		t.Errorf("default depth: got %v", err)
	}
}

func TestParsePositions(t *testing.T) {
	in := "{\n// note\n  a = 1,\n  b = [true,\n       \"x\"]\n}"
	pos := map[*ir.Node]token.Pos{}
	doc, err := Parse([]byte(in), ParsePositions(pos))
	if err != nil {
		t.Fatal(err)
	}
	a, _ := doc.Get("a")
	b, _ := doc.Get("b")
	check := func(what string, n *ir.Node, line, col int) {
		t.Helper()
		p, ok := pos[n]
		if !ok {
			t.Errorf("%s: no position", what)
			return
		}
		if p.Line != line || p.Col != col {
			t.Errorf("%s: got %s want line %d, column %d", what, p, line, col)
		}
	}
	check("a", a, 3, 7)
	check("b", b, 4, 7)
	check("b[0]", b.Values[0], 4, 8)
	check("b[1]", b.Values[1], 5, 8)
}

func TestParseJSON(t *testing.T) {
	in := `{"a": 1, "b": [true, null, 1.5], "c": {"d": "x"}}`
	doc, err := Parse([]byte(in), ParseJSON())
	if err != nil {
		t.Fatal(err)
	}
	want := obj(
		"a", ir.FromInt(1),
		"b", arr(ir.FromBool(true), ir.Null(), ir.FromFloat(1.5)),
		"c", ir.FromDocument(obj("d", ir.FromString("x"))),
	)
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	for _, bad := range []string{`[1]`, `{"a": }`, `{} {}`} {
		_, err := Parse([]byte(bad), ParseJSON())
		if !errors.Is(err, ErrFormat) {
			t.Errorf("%s: got %v", bad, err)
		}
	}
}

func TestParseYAML(t *testing.T) {
	in := "a: 1\nb:\n  - x\n  - 2.5\nc:\n  d: true\n"
	doc, err := Parse([]byte(in), ParseYAML())
	if err != nil {
		t.Fatal(err)
	}
	want := obj(
		"a", ir.FromInt(1),
		"b", arr(ir.FromString("x"), ir.FromFloat(2.5)),
		"c", ir.FromDocument(obj("d", ir.FromBool(true))),
	)
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	doc, err = Parse(nil, ParseYAML())
	if err != nil || doc.Len() != 0 {
		t.Errorf("empty yaml: %v %v", doc, err)
	}
	if _, err := Parse([]byte("- 1\n- 2\n"), ParseYAML()); !errors.Is(err, ErrFormat) {
		t.Errorf("yaml sequence: got %v", err)
	}
}

func TestForeignMaxDepth(t *testing.T) {
	for _, tc := range []struct {
		in  string
		opt ParseOption
	}{
		{`{"a": {"b": [1]}}`, ParseJSON()},
		{"a:\n  b:\n    - 1\n", ParseYAML()},
	} {
		if _, err := Parse([]byte(tc.in), tc.opt, MaxDepth(3)); err != nil {
			t.Errorf("%q depth 3: %v", tc.in, err)
		}
		_, err := Parse([]byte(tc.in), tc.opt, MaxDepth(2))
		if !errors.Is(err, ErrNestingTooDeep) {
			t.Errorf("%q depth 2: got %v", tc.in, err)
		}
	}
	deep := strings.Repeat("[", DefaultMaxDepth) + strings.Repeat("]", DefaultMaxDepth)
	if _, err := Parse([]byte(`{"a": `+deep+`}`), ParseJSON()); !errors.Is(err, ErrNestingTooDeep) {
		t.Errorf("default depth: got %v", err)
	}
}
