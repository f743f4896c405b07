package wson

import (
	"github.com/signadot/wson-format/wson/debug"
	"github.com/signadot/wson-format/wson/ir"
)

// Match reports whether doc matches pattern.  A null pattern matches
// anything.  An object pattern matches an object holding at least the
// pattern's keys with matching values; an array pattern matches an
// array of the same length element by element.  Other patterns match
// equal values.
func Match(doc, pattern *ir.Node) bool {
	if debug.Eval() {
		debug.Logf("match %v against %v\n", doc, pattern)
	}
	if pattern.Type == ir.NullType {
		return true
	}
	if doc.Type != pattern.Type {
		return false
	}
	switch pattern.Type {
	case ir.ObjectType:
		return matchObj(doc.Object, pattern.Object)
	case ir.ArrayType:
		if len(doc.Values) != len(pattern.Values) {
			return false
		}
		for i := range doc.Values {
			if !Match(doc.Values[i], pattern.Values[i]) {
				return false
			}
		}
		return true
	default:
		return doc.Equal(pattern)
	}
}

// MatchDocument is Match on two documents.
func MatchDocument(doc, pattern *ir.Document) bool {
	return matchObj(doc, pattern)
}

func matchObj(doc, pattern *ir.Document) bool {
	for k, pv := range pattern.All() {
		dv, ok := doc.Get(k)
		if !ok || !Match(dv, pv) {
			return false
		}
	}
	return true
}

// Trim keeps only the parts of doc named by pattern.  Object fields
// absent from the pattern are dropped; for arrays each pattern
// element keeps the first unused element of doc it matches.
func Trim(pattern, doc *ir.Node) *ir.Node {
	switch {
	case pattern.Type == ir.ObjectType && doc.Type == ir.ObjectType:
		return ir.FromDocument(TrimDocument(pattern.Object, doc.Object))
	case pattern.Type == ir.ArrayType && doc.Type == ir.ArrayType:
		var res []*ir.Node
		used := make([]bool, len(doc.Values))
		for _, pe := range pattern.Values {
			for i, de := range doc.Values {
				if used[i] || !Match(de, pe) {
					continue
				}
				res = append(res, Trim(pe, de))
				used[i] = true
				break
			}
		}
		return ir.FromSlice(res)
	default:
		return doc.Clone()
	}
}

// TrimDocument is Trim on two documents.
func TrimDocument(pattern, doc *ir.Document) *ir.Document {
	res := ir.NewDocument()
	for k, dv := range doc.All() {
		pv, ok := pattern.Get(k)
		if !ok {
			continue
		}
		res.Set(k, Trim(pv, dv))
	}
	return res
}
