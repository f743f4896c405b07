// Package libdiff compares documents.
package libdiff

import (
	"fmt"
	"slices"

	"github.com/signadot/wson-format/wson/ir"
)

// Change is one difference.  From is nil for Added and To is nil for
// Removed.
type Change struct {
	Path string
	Op   Op
	From *ir.Node
	To   *ir.Node
}

func (c Change) String() string {
	switch c.Op {
	case Added:
		return fmt.Sprintf("%s %s: %s", c.Op.Sign(), c.Path, nodeText(c.To))
	case Removed:
		return fmt.Sprintf("%s %s: %s", c.Op.Sign(), c.Path, nodeText(c.From))
	default:
		return fmt.Sprintf("%s %s: %s -> %s", c.Op.Sign(), c.Path, nodeText(c.From), nodeText(c.To))
	}
}

func nodeText(n *ir.Node) string {
	if n.Type == ir.StringType {
		return `"` + n.String + `"`
	}
	return n.Text()
}

// Diff lists the changes which turn from into to, in path order.
// Objects are compared key by key and arrays index by index; any
// other difference, including a change of type, is a single Changed
// entry.
func Diff(from, to *ir.Document) []Change {
	return diffDocs("$", from, to, nil)
}

func diffDocs(path string, from, to *ir.Document, dst []Change) []Change {
	keys := append(from.Keys(), to.Keys()...)
	slices.Sort(keys)
	keys = slices.Compact(keys)
	for _, k := range keys {
		kp := ir.FieldPath(path, k)
		a, inFrom := from.Get(k)
		b, inTo := to.Get(k)
		switch {
		case !inTo:
			dst = append(dst, Change{Path: kp, Op: Removed, From: a.Clone()})
		case !inFrom:
			dst = append(dst, Change{Path: kp, Op: Added, To: b.Clone()})
		default:
			dst = diffNodes(kp, a, b, dst)
		}
	}
	return dst
}

func diffNodes(path string, from, to *ir.Node, dst []Change) []Change {
	switch {
	case from.Type == ir.ObjectType && to.Type == ir.ObjectType:
		return diffDocs(path, from.Object, to.Object, dst)
	case from.Type == ir.ArrayType && to.Type == ir.ArrayType:
		return diffArrays(path, from.Values, to.Values, dst)
	case from.Equal(to):
		return dst
	default:
		return append(dst, Change{Path: path, Op: Changed, From: from.Clone(), To: to.Clone()})
	}
}

func diffArrays(path string, from, to []*ir.Node, dst []Change) []Change {
	n := min(len(from), len(to))
	for i := range n {
		dst = diffNodes(ir.IndexPath(path, i), from[i], to[i], dst)
	}
	for i := n; i < len(to); i++ {
		dst = append(dst, Change{Path: ir.IndexPath(path, i), Op: Added, To: to[i].Clone()})
	}
	for i := n; i < len(from); i++ {
		dst = append(dst, Change{Path: ir.IndexPath(path, i), Op: Removed, From: from[i].Clone()})
	}
	return dst
}
