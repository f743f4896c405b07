package eval

import (
	"errors"
	"fmt"

	"github.com/signadot/wson-format/wson/debug"
	"github.com/signadot/wson-format/wson/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrEval = errors.New("eval error")

// Env holds expression variables.
type Env map[string]any

// Eval evaluates src with the fields of doc as variables.
func Eval(src string, doc *ir.Document) (*ir.Node, error) {
	return evalNode(src, ir.FromDocument(doc), Env(ir.DocumentToAny(doc)))
}

func evalNode(src string, root *ir.Node, env Env) (*ir.Node, error) {
	program, err := expr.Compile(src, exprOpts(root)...)
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrEval, src, err)
	}
	val, err := vm.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("%w: evaluating %q: %w", ErrEval, src, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %#v\n", src, val)
	}
	res, err := ir.FromAny(val)
	if err != nil {
		return nil, fmt.Errorf("%w: result of %q: %w", ErrEval, src, err)
	}
	return res, nil
}
