package ir

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// ValidTime reports whether text is a valid time in layout and
// already in canonical form.
func ValidTime(text, layout string) bool {
	if len(text) != len(layout) {
		return false
	}
	t, err := time.Parse(layout, text)
	if err != nil {
		return false
	}
	return t.Format(layout) == text
}

// ToAny converts y to plain Go values: nil, bool, int64, float64,
// string, []any and map[string]any.  Dates, date-times and versions
// become their text.
func ToAny(y *Node) any {
	switch y.Type {
	case NullType:
		return nil
	case BoolType:
		return y.Bool
	case IntType:
		return y.Int64
	case FloatType:
		return y.Float64
	case StringType, DateType, DateTimeType:
		return y.String
	case VersionType:
		return VersionString(y.Version)
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToAny(v)
		}
		return res
	case ObjectType:
		return DocumentToAny(y.Object)
	default:
		return nil
	}
}

func DocumentToAny(d *Document) map[string]any {
	res := make(map[string]any, d.Len())
	for k, v := range d.All() {
		res[k] = ToAny(v)
	}
	return res
}

// FromAny converts a Go value as produced by encoding/json (with
// UseNumber), YAML decoders or expression evaluation into a node.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x.Clone(), nil
	case *Document:
		return FromDocument(x.Clone()), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return FromInt(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: number %q: %w", ErrUnsupported, x, err)
		}
		return FromFloat(f), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case time.Time:
		h, m, s := x.Clock()
		if h == 0 && m == 0 && s == 0 && x.Nanosecond() == 0 {
			return FromDate(x.Format(DateLayout)), nil
		}
		return FromDateTime(x.Format(DateTimeLayout)), nil
	case []uint32:
		if len(x) == 0 {
			return FromSlice(nil), nil
		}
		return FromVersion(x...), nil
	case []any:
		vs := make([]*Node, len(x))
		for i, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			vs[i] = n
		}
		return FromSlice(vs), nil
	case map[string]any:
		d := NewDocument()
		for k, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			d.Set(k, n)
		}
		return FromDocument(d), nil
	}
	return fromReflect(reflect.ValueOf(v))
}

func fromUint(u uint64) *Node {
	if u > math.MaxInt64 {
		return FromFloat(float64(u))
	}
	return FromInt(int64(u))
}

func fromReflect(rv reflect.Value) (*Node, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return FromAny(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		vs := make([]*Node, rv.Len())
		for i := range rv.Len() {
			n, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			vs[i] = n
		}
		return FromSlice(vs), nil
	case reflect.Map:
		d := NewDocument()
		iter := rv.MapRange()
		for iter.Next() {
			n, err := FromAny(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			d.Set(fmt.Sprint(iter.Key().Interface()), n)
		}
		return FromDocument(d), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupported, rv.Interface())
}

// DocumentFromAny is FromAny restricted to values that convert to an
// object.
func DocumentFromAny(v any) (*Document, error) {
	n, err := FromAny(v)
	if err != nil {
		return nil, err
	}
	if n.Type != ObjectType {
		return nil, fmt.Errorf("%w: top level %s is not an object", ErrUnsupported, n.Type)
	}
	return n.Object, nil
}
