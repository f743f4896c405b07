package eval

import (
	"fmt"
	"strings"

	"github.com/signadot/wson-format/wson/ir"
)

// Expand returns a copy of doc whose string values have been
// expanded.  Expressions see the original, unexpanded doc.
func Expand(doc *ir.Document) (*ir.Document, error) {
	root := ir.FromDocument(doc)
	env := Env(ir.DocumentToAny(doc))
	res, err := expandNode(root, root, env)
	if err != nil {
		return nil, err
	}
	return res.Object, nil
}

func expandNode(node, root *ir.Node, env Env) (*ir.Node, error) {
	switch node.Type {
	case ir.ObjectType:
		d := ir.NewDocument()
		for k, v := range node.Object.All() {
			xv, err := expandNode(v, root, env)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			d.Set(k, xv)
		}
		return ir.FromDocument(d), nil
	case ir.ArrayType:
		res := make([]*ir.Node, len(node.Values))
		for i, v := range node.Values {
			xv, err := expandNode(v, root, env)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			res[i] = xv
		}
		return ir.FromSlice(res), nil
	case ir.StringType:
		if raw := GetRaw(node.String); raw != "" {
			return evalNode(raw, root, env)
		}
		s, err := expandString(node.String, root, env)
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil
	default:
		return node.Clone(), nil
	}
}

// GetRaw extracts expr from a ".[expr]" reference, or returns "".
func GetRaw(v string) string {
	if len(v) < 3 || !strings.HasPrefix(v, ".[") || !strings.HasSuffix(v, "]") {
		return ""
	}
	return v[2 : len(v)-1]
}

// expandString replaces each "$[expr]" in v with the text of its
// value.  Inside an expression "\]" stands for ']'.
func expandString(v string, root *ir.Node, env Env) (string, error) {
	if !strings.Contains(v, "$[") {
		return v, nil
	}
	out := &strings.Builder{}
	key := &strings.Builder{}
	inExpr := false
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch {
		case !inExpr && c == '$' && i+1 < len(v) && v[i+1] == '[':
			inExpr = true
			key.Reset()
			i++
		case !inExpr:
			out.WriteByte(c)
		case c == '\\' && i+1 < len(v):
			key.WriteByte(v[i+1])
			i++
		case c == ']':
			src := strings.TrimSpace(key.String())
			n, err := evalNode(src, root, env)
			if err != nil {
				return "", err
			}
			out.WriteString(n.Text())
			inExpr = false
		default:
			key.WriteByte(c)
		}
	}
	if inExpr {
		return "", fmt.Errorf("%w: unterminated $[ in %q", ErrEval, v)
	}
	return out.String(), nil
}
