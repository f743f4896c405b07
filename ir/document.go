package ir

import (
	"iter"
	"slices"
	"strings"
)

// Document is a WSON object: a set of keyed values kept sorted by key.
//
// Insertion order is not kept.  Keys iterate, and serialize, in
// byte-wise ascending order.
type Document struct {
	fields []Field
}

type Field struct {
	Key   string
	Value *Node
}

func NewDocument() *Document {
	return &Document{}
}

func (d *Document) search(key string) (int, bool) {
	return slices.BinarySearchFunc(d.fields, key, func(f Field, k string) int {
		return strings.Compare(f.Key, k)
	})
}

// Set stores v under key, replacing any previous value.
func (d *Document) Set(key string, v *Node) {
	i, found := d.search(key)
	if found {
		d.fields[i].Value = v
		return
	}
	d.fields = slices.Insert(d.fields, i, Field{Key: key, Value: v})
}

func (d *Document) Get(key string) (*Node, bool) {
	if d == nil {
		return nil, false
	}
	i, found := d.search(key)
	if !found {
		return nil, false
	}
	return d.fields[i].Value, true
}

func (d *Document) Delete(key string) bool {
	i, found := d.search(key)
	if !found {
		return false
	}
	d.fields = slices.Delete(d.fields, i, i+1)
	return true
}

func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.fields)
}

func (d *Document) Keys() []string {
	res := make([]string, 0, d.Len())
	for k := range d.All() {
		res = append(res, k)
	}
	return res
}

// Fields returns a copy of the fields in key order.
func (d *Document) Fields() []Field {
	if d == nil {
		return nil
	}
	return slices.Clone(d.fields)
}

// All iterates over the fields in key order.
func (d *Document) All() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		if d == nil {
			return
		}
		for _, f := range d.fields {
			if !yield(f.Key, f.Value) {
				return
			}
		}
	}
}

func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	res := &Document{fields: make([]Field, len(d.fields))}
	for i, f := range d.fields {
		res.fields[i] = Field{Key: f.Key, Value: f.Value.Clone()}
	}
	return res
}

func (d *Document) Equal(o *Document) bool {
	if d.Len() != o.Len() {
		return false
	}
	if d.Len() == 0 {
		return true
	}
	return slices.EqualFunc(d.fields, o.fields, func(a, b Field) bool {
		return a.Key == b.Key && a.Value.Equal(b.Value)
	})
}
