// Package wson reads and writes WSON, a JSON-like configuration
// format with unquoted keys, comments, and date and version literals.
//
//	doc, err := wson.Loads(`{ name = "api", version = 1.2.3 }`)
//	text, err := wson.Dumps(doc)
//
// Parsing and encoding live in the parse and encode packages; this
// package puts them behind a small API together with diffs, patches
// and matching.
package wson

import (
	"bytes"

	"github.com/signadot/wson-format/wson/encode"
	"github.com/signadot/wson-format/wson/ir"
	"github.com/signadot/wson-format/wson/parse"
)

// Loads parses text into a document.  Errors are *parse.Error.
func Loads(text string, opts ...parse.ParseOption) (*ir.Document, error) {
	return parse.Parse([]byte(text), opts...)
}

// Dumps renders doc as canonical WSON, or the format selected by
// opts.  Errors are *encode.Error.
func Dumps(doc *ir.Document, opts ...encode.EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Validate reports whether Loads(text) succeeds.
func Validate(text string) bool {
	return parse.Valid([]byte(text))
}
