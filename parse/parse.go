package parse

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/signadot/wson-format/wson/debug"
	"github.com/signadot/wson-format/wson/format"
	"github.com/signadot/wson-format/wson/ir"
	"github.com/signadot/wson-format/wson/token"
)

// Parse parses d into a document.  The first malformed value stops
// the parse; no partial result is returned.
func Parse(d []byte, opts ...ParseOption) (*ir.Document, error) {
	pOpts := &parseOpts{format: format.WSONFormat, maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	switch {
	case pOpts.format.IsJSON():
		return parseJSON(d, pOpts.maxDepth)
	case pOpts.format.IsYAML():
		return parseYAML(d, pOpts.maxDepth)
	}
	src := token.StripComments(string(d), pOpts.stripOpts()...)
	p := &parser{src: src, text: src.Text(), opts: pOpts}
	return p.document()
}

// Valid reports whether Parse would succeed.
func Valid(d []byte, opts ...ParseOption) bool {
	_, err := Parse(d, opts...)
	return err == nil
}

type parser struct {
	src  *token.Source
	text string
	opts *parseOpts
}

func (p *parser) errorf(kind error, off int, msg string, args ...any) error {
	pos := p.src.Pos(off)
	return &Error{Kind: kind, Msg: fmt.Sprintf(msg, args...), Pos: &pos}
}

func (p *parser) document() (*ir.Document, error) {
	lo, hi := trimSpan(p.text, 0, len(p.text))
	if hi-lo < 2 || p.text[lo] != '{' || p.text[hi-1] != '}' {
		return nil, p.errorf(ErrMalformedStructure, lo, "WSON document must start with '{' and end with '}'")
	}
	return p.object(lo, hi, 1)
}

// object splits the span [lo, hi), which starts with '{' and ends
// with '}', into fields.
func (p *parser) object(lo, hi, depth int) (*ir.Document, error) {
	if depth > p.opts.maxDepth {
		return nil, p.errorf(ErrNestingTooDeep, lo, "nesting depth exceeds %d", p.opts.maxDepth)
	}
	doc := ir.NewDocument()
	var (
		brace, bracket int
		keyEnd         = -1
		segStart       = lo + 1
	)
	emit := func(end int, trailing bool) error {
		kEnd, vStart := end, end
		if keyEnd >= 0 {
			kEnd, vStart = keyEnd, keyEnd+1
		}
		kLo, kHi := trimSpan(p.text, segStart, kEnd)
		vLo, vHi := trimSpan(p.text, vStart, end)
		if trailing && kLo == kHi && vLo == vHi {
			return nil
		}
		v, err := p.value(vLo, vHi, depth)
		if err != nil {
			return err
		}
		key := p.text[kLo:kHi]
		if debug.Parse() {
			debug.Logf("parse: field %q = %v at %s\n", key, v, p.src.Pos(vLo))
		}
		doc.Set(key, v)
		return nil
	}
	for i := lo + 1; i < hi-1; i++ {
		switch p.text[i] {
		case '=', ':':
			if keyEnd < 0 && brace == 0 && bracket == 0 {
				keyEnd = i
			}
		case '{':
			brace++
		case '}':
			brace--
		case '[':
			bracket++
		case ']':
			bracket--
		case ',':
			if brace != 0 || bracket != 0 {
				continue
			}
			if err := emit(i, false); err != nil {
				return nil, err
			}
			segStart = i + 1
			keyEnd = -1
		}
	}
	if err := emit(hi-1, true); err != nil {
		return nil, err
	}
	return doc, nil
}

// array splits the span [lo, hi), which starts with '[' and ends with
// ']', into values.
func (p *parser) array(lo, hi, depth int) ([]*ir.Node, error) {
	if depth > p.opts.maxDepth {
		return nil, p.errorf(ErrNestingTooDeep, lo, "nesting depth exceeds %d", p.opts.maxDepth)
	}
	res := []*ir.Node{}
	brace, bracket := 0, 0
	segStart := lo + 1
	for i := lo + 1; i < hi-1; i++ {
		switch p.text[i] {
		case '{':
			brace++
		case '}':
			brace--
		case '[':
			bracket++
		case ']':
			bracket--
		case ',':
			if brace != 0 || bracket != 0 {
				continue
			}
			v, err := p.value(segStart, i, depth)
			if err != nil {
				return nil, err
			}
			res = append(res, v)
			segStart = i + 1
		}
	}
	vLo, vHi := trimSpan(p.text, segStart, hi-1)
	if vLo < vHi {
		v, err := p.value(vLo, vHi, depth)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}

// value classifies the span [lo, hi) found inside a container at
// depth.
func (p *parser) value(lo, hi, depth int) (*ir.Node, error) {
	lo, hi = trimSpan(p.text, lo, hi)
	text := p.text[lo:hi]
	res := classifyScalar(text)
	if res == nil {
		switch {
		case strings.HasPrefix(text, "{") && strings.HasSuffix(text, "}"):
			doc, err := p.object(lo, hi, depth+1)
			if err != nil {
				return nil, err
			}
			res = ir.FromDocument(doc)
		case strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]"):
			vs, err := p.array(lo, hi, depth+1)
			if err != nil {
				return nil, err
			}
			res = ir.FromSlice(vs)
		default:
			return nil, p.errorf(ErrInvalidValue, lo, "invalid value: %s", text)
		}
	}
	if p.opts.positions != nil {
		p.opts.positions[res] = p.src.Pos(lo)
	}
	return res, nil
}

// trimSpan narrows [lo, hi) of s to exclude surrounding white space.
func trimSpan(s string, lo, hi int) (int, int) {
	seg := s[lo:hi]
	l := strings.TrimLeftFunc(seg, unicode.IsSpace)
	lo += len(seg) - len(l)
	return lo, lo + len(strings.TrimRightFunc(l, unicode.IsSpace))
}
