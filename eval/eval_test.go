package eval

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/wson-format/wson/ir"
)

func testDoc() *ir.Document {
	server := ir.NewDocument()
	server.Set("host", ir.FromString("localhost"))
	server.Set("port", ir.FromInt(8080))
	doc := ir.NewDocument()
	doc.Set("name", ir.FromString("svc"))
	doc.Set("replicas", ir.FromInt(3))
	doc.Set("version", ir.FromVersion(1, 4, 2))
	doc.Set("server", ir.FromDocument(server))
	doc.Set("ports", ir.FromSlice([]*ir.Node{ir.FromInt(80), ir.FromInt(443)}))
	return doc
}

func TestEval(t *testing.T) {
	tests := []struct {
		src string
		out *ir.Node
	}{
		{`replicas * 2`, ir.FromInt(6)},
		{`name + "-x"`, ir.FromString("svc-x")},
		{`server.port`, ir.FromInt(8080)},
		{`getpath("$.server.host")`, ir.FromString("localhost")},
		{`getpath("$.missing")`, ir.Null()},
		{`len(listpath("$..port"))`, ir.FromInt(1)},
		{`ports[1]`, ir.FromInt(443)},
		{`vercmp(version, "1.10") < 0`, ir.FromBool(true)},
		{`vercmp("2", "2.0.0")`, ir.FromInt(0)},
		{`version`, ir.FromString("1.4.2")},
	}
	doc := testDoc()
	for _, tc := range tests {
		got, err := Eval(tc.src, doc)
		if err != nil {
			t.Errorf("%s: %v", tc.src, err)
			continue
		}
		if diff := cmp.Diff(tc.out, got); diff != "" {
			t.Errorf("%s: (-want +got)\n%s", tc.src, diff)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	for _, src := range []string{
		`replicas +`,
		`vercmp("x.1", "1")`,
		`getpath("nope")`,
	} {
		if _, err := Eval(src, testDoc()); !errors.Is(err, ErrEval) {
			t.Errorf("%s: got %v", src, err)
		}
	}
}

func TestExpand(t *testing.T) {
	doc := testDoc()
	doc.Set("url", ir.FromString("http://$[server.host]:$[server.port]/$[name]"))
	doc.Set("total", ir.FromString(".[replicas + len(ports)]"))
	doc.Set("plain", ir.FromString("a ] b ["))
	got, err := Expand(doc)
	if err != nil {
		t.Fatal(err)
	}
	want := testDoc()
	want.Set("url", ir.FromString("http://localhost:8080/svc"))
	want.Set("total", ir.FromInt(5))
	want.Set("plain", ir.FromString("a ] b ["))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	s, _ := doc.Get("url")
	if s.String != "http://$[server.host]:$[server.port]/$[name]" {
		t.Errorf("input modified: %q", s.String)
	}

	doc.Set("bad", ir.FromString("$[name"))
	if _, err := Expand(doc); !errors.Is(err, ErrEval) {
		t.Errorf("unterminated: got %v", err)
	}
}

func TestGetRaw(t *testing.T) {
	for in, out := range map[string]string{
		".[x]":  "x",
		".[]":   "",
		"x":     "",
		".[a]b": "",
	} {
		if got := GetRaw(in); got != out {
			t.Errorf("%q: got %q want %q", in, got, out)
		}
	}
}
