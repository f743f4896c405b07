package eval

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/signadot/wson-format/wson/ir"

	"github.com/expr-lang/expr"
)

func exprOpts(root *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := root.GetPath(path)
			if err != nil {
				return nil, err
			}
			if res == nil {
				return nil, nil
			}
			return ir.ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			path := params[0].(string)
			yRes, err := root.ListPath(nil, path)
			if err != nil {
				return nil, err
			}
			res := make([]any, len(yRes))
			for i, item := range yRes {
				res[i] = ir.ToAny(item)
			}
			return res, nil
		},
			new(func(string) []any)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
		expr.Function("vercmp", func(params ...any) (any, error) {
			a, err := parseVersion(params[0])
			if err != nil {
				return nil, err
			}
			b, err := parseVersion(params[1])
			if err != nil {
				return nil, err
			}
			return ir.CompareVersions(a, b), nil
		}),
	}
}

// parseVersion accepts dotted version text or a bare integer.
func parseVersion(v any) ([]uint32, error) {
	var s string
	switch x := v.(type) {
	case string:
		s = x
	case int, int64:
		s = fmt.Sprint(x)
	default:
		return nil, fmt.Errorf("%w: vercmp: %T is not a version", ErrEval, v)
	}
	parts := strings.Split(strings.TrimSpace(s), ".")
	res := make([]uint32, len(parts))
	for i, p := range parts {
		u, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: vercmp: bad version %q", ErrEval, s)
		}
		res[i] = uint32(u)
	}
	return res, nil
}
