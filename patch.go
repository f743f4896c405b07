package wson

import (
	"encoding/json"
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/signadot/wson-format/wson/ir"
	"github.com/signadot/wson-format/wson/parse"
)

var ErrPatch = errors.New("patch error")

// Patch applies an RFC 6902 JSON patch to doc.  The patch operates on
// the JSON view of doc, so dates, date-times and versions it touches
// come back as strings.  Untouched values keep their kind.
func Patch(doc *ir.Document, patchJSON []byte) (*ir.Document, error) {
	p, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding: %w", ErrPatch, err)
	}
	orig, err := json.Marshal(ir.DocumentToAny(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	patched, err := p.Apply(orig)
	if err != nil {
		return nil, fmt.Errorf("%w: applying: %w", ErrPatch, err)
	}
	res, err := parse.Parse(patched, parse.ParseJSON())
	if err != nil {
		return nil, fmt.Errorf("%w: result: %w", ErrPatch, err)
	}
	return restoreKinds(doc, res), nil
}

// restoreKinds puts back the original node wherever the JSON round
// trip left a value unchanged apart from its kind.
func restoreKinds(orig, res *ir.Document) *ir.Document {
	for k, v := range res.All() {
		o, ok := orig.Get(k)
		if !ok {
			continue
		}
		res.Set(k, restoreNode(o, v))
	}
	return res
}

func restoreNode(orig, res *ir.Node) *ir.Node {
	switch {
	case orig.Type == ir.ObjectType && res.Type == ir.ObjectType:
		return ir.FromDocument(restoreKinds(orig.Object, res.Object))
	case orig.Type == ir.ArrayType && res.Type == ir.ArrayType:
		for i := range min(len(orig.Values), len(res.Values)) {
			res.Values[i] = restoreNode(orig.Values[i], res.Values[i])
		}
		return res
	case orig.Type == ir.FloatType && res.Type == ir.IntType && float64(res.Int64) == orig.Float64:
		return orig.Clone()
	case res.Type == ir.StringType && !orig.Type.IsNumber() && orig.Type != ir.StringType && orig.Type.IsLeaf():
		if ir.ToAny(orig) == res.String {
			return orig.Clone()
		}
	}
	return res
}
