package token

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type stripTest struct {
	in    string
	out   string
	lines []int
	opts  []StripOption
}

func TestStripComments(t *testing.T) {
	sts := []stripTest{
		{
			in:    "{ a = 1 }",
			out:   "{ a = 1 }",
			lines: []int{1},
		},
		{
			in:    "{ /* c\n omment */ a = 1 }",
			out:   "{\n a = 1 }",
			lines: []int{1, 2},
		},
		{
			in:    "{\n  a = 1 // trailing\n}",
			out:   "{\n  a = 1\n}",
			lines: []int{1, 2, 3},
		},
		{
			in:    "{\n  # whole line\n  a = 1 # hash\n}",
			out:   "{\n  a = 1\n}",
			lines: []int{1, 3, 4},
		},
		{
			in:    "a = 1 # c // d",
			out:   "a = 1",
			lines: []int{1},
		},
		{
			in:    "a /* x */ = /* y */ 1",
			out:   "a  =  1",
			lines: []int{1},
		},
		{
			in:    "{\n/*\nall\nof\nthis\n*/\nb = 2\n\n\n}",
			out:   "{\nb = 2\n}",
			lines: []int{1, 7, 10},
		},
		{
			in:    "a = 1   \t\n\n   \n",
			out:   "a = 1",
			lines: []int{1},
		},
		{
			in:    "x = \"a#b\"",
			out:   "x = \"a",
			lines: []int{1},
		},
		{
			in:    "x = \"a#b\" # c",
			out:   "x = \"a#b\"",
			lines: []int{1},
			opts:  []StripOption{QuoteAware()},
		},
		{
			in:    "u = \"http://x/*y*/\" /* c */, v = 1",
			out:   "u = \"http://x/*y*/\" , v = 1",
			lines: []int{1},
			opts:  []StripOption{QuoteAware()},
		},
		{
			in:    "a = 1 /* open\nstill */ b = 2",
			out:   "a = 1\n b = 2",
			lines: []int{1, 2},
			opts:  []StripOption{QuoteAware()},
		},
		{
			in:    "// nothing",
			out:   "",
			lines: []int{1},
		},
	}
	for _, st := range sts {
		src := StripComments(st.in, st.opts...)
		if src.Text() != st.out {
			t.Errorf("StripComments(%q) = %q, want %q", st.in, src.Text(), st.out)
		}
		if diff := cmp.Diff(st.lines, src.lines); diff != "" {
			t.Errorf("StripComments(%q) lines (-want +got):\n%s", st.in, diff)
		}
	}
}
