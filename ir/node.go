package ir

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Node is a WSON value.  Type says which of the remaining fields
// carries the value:
//
//   - BoolType: Bool
//   - IntType: Int64
//   - FloatType: Float64
//   - StringType, DateType, DateTimeType: String
//   - VersionType: Version
//   - ArrayType: Values
//   - ObjectType: Object
type Node struct {
	Type Type

	Bool    bool
	Int64   int64
	Float64 float64
	String  string
	Version []uint32
	Values  []*Node
	Object  *Document
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: IntType, Int64: v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: FloatType, Float64: f}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

// FromDate makes a date node.  v should already be in the
// canonical YYYY-MM-DD form.
func FromDate(v string) *Node {
	return &Node{Type: DateType, String: v}
}

// FromDateTime makes a date-time node.  v should already be in the
// canonical YYYY-MM-DD HH:MM:SS form.
func FromDateTime(v string) *Node {
	return &Node{Type: DateTimeType, String: v}
}

// FromVersion makes a version node; it panics when no component is
// given.
func FromVersion(parts ...uint32) *Node {
	if len(parts) == 0 {
		panic("empty version")
	}
	return &Node{Type: VersionType, Version: slices.Clone(parts)}
}

func FromSlice(vs []*Node) *Node {
	if vs == nil {
		vs = []*Node{}
	}
	return &Node{Type: ArrayType, Values: vs}
}

func FromDocument(d *Document) *Node {
	if d == nil {
		d = NewDocument()
	}
	return &Node{Type: ObjectType, Object: d}
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type:    y.Type,
		Bool:    y.Bool,
		Int64:   y.Int64,
		Float64: y.Float64,
		String:  y.String,
	}
	if y.Version != nil {
		res.Version = slices.Clone(y.Version)
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	if y.Object != nil {
		res.Object = y.Object.Clone()
	}
	return res
}

// Equal reports whether y and o hold the same value.  NaN floats
// compare equal to each other.
func (y *Node) Equal(o *Node) bool {
	if y == nil || o == nil {
		return y == o
	}
	if y.Type != o.Type {
		return false
	}
	switch y.Type {
	case NullType:
		return true
	case BoolType:
		return y.Bool == o.Bool
	case IntType:
		return y.Int64 == o.Int64
	case FloatType:
		if math.IsNaN(y.Float64) {
			return math.IsNaN(o.Float64)
		}
		return y.Float64 == o.Float64
	case StringType, DateType, DateTimeType:
		return y.String == o.String
	case VersionType:
		return slices.Equal(y.Version, o.Version)
	case ArrayType:
		return slices.EqualFunc(y.Values, o.Values, (*Node).Equal)
	case ObjectType:
		return y.Object.Equal(o.Object)
	default:
		return false
	}
}

// Text gives a short plain rendering of leaf values, mostly for
// messages.  Containers render as their bracket pair.
func (y *Node) Text() string {
	switch y.Type {
	case NullType:
		return "null"
	case BoolType:
		return strconv.FormatBool(y.Bool)
	case IntType:
		return strconv.FormatInt(y.Int64, 10)
	case FloatType:
		return strconv.FormatFloat(y.Float64, 'g', -1, 64)
	case StringType, DateType, DateTimeType:
		return y.String
	case VersionType:
		return VersionString(y.Version)
	case ArrayType:
		return "[]"
	case ObjectType:
		return "{}"
	default:
		return ""
	}
}

// VersionString joins version components with '.'.
func VersionString(parts []uint32) string {
	b := &strings.Builder{}
	for i, p := range parts {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.FormatUint(uint64(p), 10))
	}
	return b.String()
}

// CompareVersions orders two versions component-wise; a missing
// component counts as 0, so 1.2 == 1.2.0.
func CompareVersions(a, b []uint32) int {
	n := max(len(a), len(b))
	for i := range n {
		var x, y uint32
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
	}
	return 0
}
