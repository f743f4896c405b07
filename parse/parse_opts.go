package parse

import (
	"github.com/signadot/wson-format/wson/format"
	"github.com/signadot/wson-format/wson/ir"
	"github.com/signadot/wson-format/wson/token"
)

// DefaultMaxDepth bounds object and array nesting.
const DefaultMaxDepth = 1000

type parseOpts struct {
	format     format.Format
	maxDepth   int
	quoteAware bool
	positions  map[*ir.Node]token.Pos
}

func (o *parseOpts) stripOpts() []token.StripOption {
	if o.quoteAware {
		return []token.StripOption{token.QuoteAware()}
	}
	return nil
}

type ParseOption func(*parseOpts)

func ParseWSON() ParseOption {
	return ParseFormat(format.WSONFormat)
}
func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// MaxDepth sets how deeply objects and arrays may nest, the document
// itself being depth 1.  n <= 0 restores the default.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n <= 0 {
			n = DefaultMaxDepth
		}
		o.maxDepth = n
	}
}

// QuoteAwareComments keeps comment markers which occur inside double
// quoted strings.
func QuoteAwareComments(v bool) ParseOption {
	return func(o *parseOpts) { o.quoteAware = v }
}

// ParsePositions records in m the start of every parsed value.
func ParsePositions(m map[*ir.Node]token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}
