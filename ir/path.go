package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path is a parsed document path such as $.server.ports[0].
//
//	$          the root
//	.key       a field; 'quoted keys' may contain . [ ] ' * $
//	[3]        an array index
//	[*]        every array element
//	..         every node below, recursively
type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	x := p
	sub := false
	for x != nil {
		if x.Subtree {
			buf.WriteString("..")
			sub = true
			x = x.Next
			continue
		}
		if x.IndexAll {
			buf.WriteString("[*]")
			sub = false
			x = x.Next
			continue
		}
		if x.Field != nil {
			if !sub {
				buf.WriteByte('.')
			}
			buf.WriteString(pathString(*x.Field))
			sub = false
			x = x.Next
			continue
		}
		sub = false
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
			x = x.Next
			continue
		}
		x = x.Next
	}
	return buf.String()
}

// FieldPath extends the path string parent with a field.
func FieldPath(parent, field string) string {
	return parent + "." + pathString(field)
}

// IndexPath extends the path string parent with an array index.
func IndexPath(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: %q should start with '$'", ErrPath, p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrPath, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			parent.Subtree = true
			rest := frag[2:]
			if rest != "" && rest[0] != '.' && rest[0] != '[' {
				rest = "." + rest
			}
			next := &Path{}
			if err := parseFrag(rest, next); err != nil {
				return err
			}
			parent.Next = next
			return nil
		}
		field, rest, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		if len(rest) == 0 {
			return nil
		}
		next := &Path{}
		if err := parseFrag(rest, next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		if len(frag) == i+2 {
			return nil
		}
		next := &Path{}
		if err := parseFrag(frag[i+2:], next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	default:
		return fmt.Errorf("expected '.' or '['")
	}
}

func parseIndex(is string) (index int, all bool, err error) {
	if len(is) == 1 && is[0] == '*' {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(is, 10, 32)
	if err != nil {
		return 0, false, err
	}
	return int(u64), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			if escaped {
				res = append(res, c)
			}
			escaped = !escaped
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[] ") == -1 {
		return f
	}
	return "'" + strings.Replace(f, "'", "\\'", -1) + "'"
}

// GetPath returns a copy of the node at path, or nil when an
// object along the way lacks the field.
func (y *Node) GetPath(yPath string) (*Node, error) {
	yp, err := ParsePath(yPath)
	if err != nil {
		return nil, err
	}
	res := y
	for yp != nil {
		if yp.IndexAll {
			return nil, fmt.Errorf("%w: any index in get", ErrPath)
		}
		if yp.Subtree {
			return nil, fmt.Errorf("%w: recurse .. in get", ErrPath)
		}
		if yp.Index != nil {
			if res.Type != ArrayType {
				return nil, fmt.Errorf("expected array, got %s", res.Type)
			}
			index := *yp.Index
			if index < 0 || index >= len(res.Values) {
				return nil, fmt.Errorf("index out of bounds %d (len %d)", index, len(res.Values))
			}
			res = res.Values[index]
			yp = yp.Next
			continue
		}
		if yp.Field != nil {
			if res.Type != ObjectType {
				return nil, fmt.Errorf("expected object got %s", res.Type)
			}
			v, ok := res.Object.Get(*yp.Field)
			if !ok {
				return nil, nil
			}
			res = v
			yp = yp.Next
			continue
		}
		if yp.Next != nil {
			return nil, fmt.Errorf("unexpected next w/out index or field")
		}
		return res.Clone(), nil
	}
	return res.Clone(), nil
}

// ListPath appends to dst copies of every node matching path.
func (y *Node) ListPath(dst []*Node, yPath string) ([]*Node, error) {
	yp, err := ParsePath(yPath)
	if err != nil {
		return nil, err
	}
	return y.listPath(dst, yp), nil
}

func (y *Node) listPath(dst []*Node, yp *Path) []*Node {
	if yp == nil {
		return append(dst, y.Clone())
	}
	if yp.Subtree {
		y.Visit(func(node *Node) bool {
			dst = node.listPath(dst, yp.Next)
			return true
		})
		return dst
	}
	switch y.Type {
	case ObjectType:
		if yp.IndexAll || yp.Index != nil {
			return dst
		}
		if yp.Field == nil {
			if yp.Next == nil {
				return append(dst, y.Clone())
			}
			return dst
		}
		if v, ok := y.Object.Get(*yp.Field); ok {
			dst = v.listPath(dst, yp.Next)
		}
		return dst

	case ArrayType:
		if yp.Field != nil {
			return dst
		}
		if yp.Index == nil && !yp.IndexAll {
			if yp.Next == nil {
				return append(dst, y.Clone())
			}
			return dst
		}
		if yp.Index != nil {
			idx := *yp.Index
			if 0 <= idx && idx < len(y.Values) {
				dst = y.Values[idx].listPath(dst, yp.Next)
			}
			return dst
		}
		for _, yv := range y.Values {
			dst = yv.listPath(dst, yp.Next)
		}
		return dst

	default:
		if yp.Field != nil || yp.Index != nil || yp.IndexAll {
			return dst
		}
		if yp.Next == nil {
			dst = append(dst, y.Clone())
		}
		return dst
	}
}

// Visit calls f on y and, when f returns true, on the descendants of
// y in document order.
func (y *Node) Visit(f func(*Node) bool) {
	if !f(y) {
		return
	}
	switch y.Type {
	case ArrayType:
		for _, v := range y.Values {
			v.Visit(f)
		}
	case ObjectType:
		for _, v := range y.Object.All() {
			v.Visit(f)
		}
	}
}
