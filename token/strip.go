package token

import (
	"strings"
	"unicode"

	"github.com/signadot/wson-format/wson/debug"
)

type stripOpts struct {
	quoteAware bool
}

type StripOption func(*stripOpts)

// QuoteAware makes StripComments leave comment markers inside
// double quoted text on a line alone.
func QuoteAware() StripOption {
	return func(o *stripOpts) { o.quoteAware = true }
}

// StripComments removes comments from input line by line.
//
// Block comments /* ... */ may span lines.  A line comment starts at
// the first "//" or "#" outside any block comment.  Lines left blank
// are dropped, and the remaining lines are right trimmed.
//
// By default comment markers are recognised anywhere, including inside
// quoted strings.
func StripComments(input string, opts ...StripOption) *Source {
	sOpts := &stripOpts{}
	for _, o := range opts {
		o(sOpts)
	}
	strip := stripLine
	if sOpts.quoteAware {
		strip = stripLineQuoted
	}
	src := &Source{}
	b := &strings.Builder{}
	inBlock := false
	n := 0
	for i, orig := range strings.Split(input, "\n") {
		n++
		line, base := orig, 0
		if inBlock {
			end := strings.Index(line, "*/")
			if end < 0 {
				continue
			}
			base = end + 2
			line = line[base:]
			inBlock = false
		}
		var cols []int
		line, cols, inBlock = strip(line, base)
		line = strings.TrimRightFunc(line, unicode.IsSpace)
		if line == "" {
			continue
		}
		if len(src.lines) > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		src.lines = append(src.lines, i+1)
		src.orig = append(src.orig, orig)
		src.cols = append(src.cols, cols[:len(line)])
	}
	src.text = b.String()
	src.index()
	if debug.Strip() {
		debug.Logf("strip: %d lines in, %d kept, block open %t\n", n, len(src.lines), inBlock)
	}
	if len(src.lines) == 0 {
		src.lines = []int{1}
	}
	return src
}

// offsets gives the original byte offsets base, base+1, ... of the
// n bytes of a line.
func offsets(base, n int) []int {
	res := make([]int, n)
	for i := range res {
		res[i] = base + i
	}
	return res
}

// stripLine removes comments from l, reporting whether an unterminated
// block comment was opened.  The returned offsets give, for each kept
// byte, its position in the original line, l starting at base.
func stripLine(l string, base int) (string, []int, bool) {
	cols := offsets(base, len(l))
	inBlock := false
	for {
		start := strings.Index(l, "/*")
		if start < 0 {
			break
		}
		end := strings.Index(l[start+2:], "*/")
		if end < 0 {
			l, cols = l[:start], cols[:start]
			inBlock = true
			break
		}
		rest := start + 2 + end + 2
		l = l[:start] + l[rest:]
		cols = append(cols[:start:start], cols[rest:]...)
	}
	cut := len(l)
	if i := strings.Index(l, "//"); i >= 0 {
		cut = i
	}
	if i := strings.IndexByte(l, '#'); i >= 0 && i < cut {
		cut = i
	}
	return l[:cut], cols[:cut], inBlock
}

// stripLineQuoted is stripLine but skips markers between double
// quotes.  Quote state does not carry across lines.
func stripLineQuoted(l string, base int) (string, []int, bool) {
	b := &strings.Builder{}
	cols := make([]int, 0, len(l))
	keep := func(i int) {
		b.WriteByte(l[i])
		cols = append(cols, base+i)
	}
	inStr := false
	for i := 0; i < len(l); i++ {
		c := l[i]
		if inStr {
			keep(i)
			if c == '"' {
				inStr = false
			}
			continue
		}
		switch {
		case c == '"':
			inStr = true
			keep(i)
		case c == '/' && i+1 < len(l) && l[i+1] == '*':
			end := strings.Index(l[i+2:], "*/")
			if end < 0 {
				return b.String(), cols, true
			}
			i += 2 + end + 1
		case c == '/' && i+1 < len(l) && l[i+1] == '/':
			return b.String(), cols, false
		case c == '#':
			return b.String(), cols, false
		default:
			keep(i)
		}
	}
	return b.String(), cols, false
}
