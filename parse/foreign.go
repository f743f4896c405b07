package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/signadot/wson-format/wson/ir"
)

func parseJSON(d []byte, maxDepth int) (*ir.Document, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &Error{Kind: ErrFormat, Msg: "json: " + err.Error()}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &Error{Kind: ErrFormat, Msg: "json: trailing data after top level value"}
	}
	if tooDeep(v, 1, maxDepth) {
		return nil, &Error{Kind: ErrNestingTooDeep, Msg: fmt.Sprintf("json: nesting exceeds depth %d", maxDepth)}
	}
	return foreignDocument("json", v)
}

func parseYAML(d []byte, maxDepth int) (*ir.Document, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, &Error{Kind: ErrFormat, Msg: "yaml: " + err.Error()}
	}
	if v == nil {
		return ir.NewDocument(), nil
	}
	if tooDeep(v, 1, maxDepth) {
		return nil, &Error{Kind: ErrNestingTooDeep, Msg: fmt.Sprintf("yaml: nesting exceeds depth %d", maxDepth)}
	}
	return foreignDocument("yaml", fromMapSlice(v))
}

// tooDeep reports whether the containers in v, itself at depth,
// nest deeper than maxDepth.
func tooDeep(v any, depth, maxDepth int) bool {
	var elems []any
	switch x := v.(type) {
	case yaml.MapSlice:
		for _, item := range x {
			elems = append(elems, item.Value)
		}
	case map[string]any:
		for _, e := range x {
			elems = append(elems, e)
		}
	case []any:
		elems = x
	default:
		return false
	}
	if depth > maxDepth {
		return true
	}
	for _, e := range elems {
		if tooDeep(e, depth+1, maxDepth) {
			return true
		}
	}
	return false
}

// fromMapSlice turns ordered yaml mappings into plain maps.  Keys
// are sorted by the document anyway.
func fromMapSlice(v any) any {
	switch x := v.(type) {
	case yaml.MapSlice:
		m := make(map[string]any, len(x))
		for _, item := range x {
			m[keyString(item.Key)] = fromMapSlice(item.Value)
		}
		return m
	case map[string]any:
		for k, e := range x {
			x[k] = fromMapSlice(e)
		}
		return x
	case []any:
		for i, e := range x {
			x[i] = fromMapSlice(e)
		}
		return x
	}
	return v
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	n, err := ir.FromAny(k)
	if err != nil || !n.Type.IsLeaf() {
		return ""
	}
	return n.Text()
}

func foreignDocument(what string, v any) (*ir.Document, error) {
	doc, err := ir.DocumentFromAny(v)
	if err != nil {
		return nil, &Error{Kind: ErrFormat, Msg: what + ": " + err.Error()}
	}
	return doc, nil
}
