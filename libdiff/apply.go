package libdiff

import (
	"errors"
	"fmt"
	"slices"

	"github.com/signadot/wson-format/wson/ir"
)

var ErrApply = errors.New("cannot apply change")

// Apply returns a copy of doc with changes applied.  Removals from
// arrays are applied last, highest index first, so that the indices
// Diff produced stay valid.
func Apply(doc *ir.Document, changes []Change) (*ir.Document, error) {
	root := ir.FromDocument(doc.Clone())
	var removals []Change
	for _, c := range changes {
		if c.Op == Removed {
			removals = append(removals, c)
			continue
		}
		if err := apply(root, c); err != nil {
			return nil, err
		}
	}
	for _, c := range slices.Backward(removals) {
		if err := apply(root, c); err != nil {
			return nil, err
		}
	}
	return root.Object, nil
}

func apply(root *ir.Node, c Change) error {
	p, err := ir.ParsePath(c.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrApply, err)
	}
	if p.Field == nil && p.Index == nil {
		return fmt.Errorf("%w: %s does not name a value", ErrApply, c.Path)
	}
	node := root
	for x := p; x != nil; x = x.Next {
		if x.Subtree || x.IndexAll {
			return fmt.Errorf("%w: %s is not a single value", ErrApply, c.Path)
		}
		last := x.Next == nil
		switch {
		case x.Field != nil:
			if node.Type != ir.ObjectType {
				return fmt.Errorf("%w: %s: expected object, got %s", ErrApply, c.Path, node.Type)
			}
			if last {
				return applyField(node.Object, *x.Field, c)
			}
			next, ok := node.Object.Get(*x.Field)
			if !ok {
				return fmt.Errorf("%w: %s: no field %q", ErrApply, c.Path, *x.Field)
			}
			node = next
		case x.Index != nil:
			if node.Type != ir.ArrayType {
				return fmt.Errorf("%w: %s: expected array, got %s", ErrApply, c.Path, node.Type)
			}
			if last {
				return applyIndex(node, *x.Index, c)
			}
			i := *x.Index
			if i >= len(node.Values) {
				return fmt.Errorf("%w: %s: index %d out of range", ErrApply, c.Path, i)
			}
			node = node.Values[i]
		}
	}
	return nil
}

func applyField(d *ir.Document, key string, c Change) error {
	switch c.Op {
	case Removed:
		if !d.Delete(key) {
			return fmt.Errorf("%w: %s: no field %q", ErrApply, c.Path, key)
		}
	default:
		d.Set(key, c.To.Clone())
	}
	return nil
}

func applyIndex(arr *ir.Node, i int, c Change) error {
	n := len(arr.Values)
	switch {
	case c.Op == Added && i == n:
		arr.Values = append(arr.Values, c.To.Clone())
	case i >= n:
		return fmt.Errorf("%w: %s: index %d out of range", ErrApply, c.Path, i)
	case c.Op == Removed:
		arr.Values = slices.Delete(arr.Values, i, i+1)
	case c.Op == Added:
		arr.Values = slices.Insert(arr.Values, i, c.To.Clone())
	default:
		arr.Values[i] = c.To.Clone()
	}
	return nil
}
