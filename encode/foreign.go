package encode

import (
	"bytes"
	"encoding/json"

	"github.com/goccy/go-yaml"
	"github.com/signadot/wson-format/wson/ir"
)

func encodeJSON(n *ir.Node, es *EncState) ([]byte, error) {
	v, err := es.plain(n, false)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indentUnit)
	if err := enc.Encode(v); err != nil {
		return nil, &Error{Msg: "json", Err: err}
	}
	return trimNL(buf.Bytes()), nil
}

func encodeYAML(n *ir.Node, es *EncState) ([]byte, error) {
	v, err := es.plain(n, true)
	if err != nil {
		return nil, err
	}
	d, err := yaml.Marshal(v)
	if err != nil {
		return nil, &Error{Msg: "yaml", Err: err}
	}
	return trimNL(d), nil
}

// plain is ir.ToAny with the depth guard.  Objects become
// yaml.MapSlice in key order when ordered is set.
func (es *EncState) plain(n *ir.Node, ordered bool) (any, error) {
	switch n.Type {
	case ir.ArrayType:
		if err := es.enter(); err != nil {
			return nil, err
		}
		defer es.leave()
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			p, err := es.plain(v, ordered)
			if err != nil {
				return nil, err
			}
			res[i] = p
		}
		return res, nil
	case ir.ObjectType:
		if err := es.enter(); err != nil {
			return nil, err
		}
		defer es.leave()
		if ordered {
			res := make(yaml.MapSlice, 0, n.Object.Len())
			for k, v := range n.Object.All() {
				p, err := es.plain(v, ordered)
				if err != nil {
					return nil, err
				}
				res = append(res, yaml.MapItem{Key: k, Value: p})
			}
			return res, nil
		}
		res := make(map[string]any, n.Object.Len())
		for k, v := range n.Object.All() {
			p, err := es.plain(v, ordered)
			if err != nil {
				return nil, err
			}
			res[k] = p
		}
		return res, nil
	}
	return ir.ToAny(n), nil
}
