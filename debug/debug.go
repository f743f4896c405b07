// Package debug provides environment controlled diagnostic logging.
package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/signadot/wson-format/wson/ir"
)

type debug struct {
	Strip  bool
	Parse  bool
	Encode bool
	Eval   bool
	LSP    bool
}

var (
	d *debug

	// Out is where Logf writes.
	Out io.Writer = os.Stderr
)

func init() {
	d = &debug{}
	d.Strip = boolEnv("WSON_DEBUG_STRIP")
	d.Parse = boolEnv("WSON_DEBUG_PARSE")
	d.Encode = boolEnv("WSON_DEBUG_ENCODE")
	d.Eval = boolEnv("WSON_DEBUG_EVAL")
	d.LSP = boolEnv("WSON_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Strip() bool {
	return d.Strip
}
func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Eval() bool {
	return d.Eval
}
func LSP() bool {
	return d.LSP
}

// Logf formats like fmt.Fprintf to Out.  Nodes and documents are
// rendered in a compact single line form, maps and slices as json.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			args[i] = nodeString(x)
		case *ir.Document:
			args[i] = nodeString(ir.FromDocument(x))
		default:
		}
	}
	fmt.Fprintf(Out, msg, args...)
}

func nodeString(n *ir.Node) string {
	if n == nil {
		return "<nil>"
	}
	buf := bytes.NewBuffer(nil)
	writeNode(buf, n)
	return buf.String()
}

func writeNode(buf *bytes.Buffer, n *ir.Node) {
	switch n.Type {
	case ir.ArrayType:
		buf.WriteByte('[')
		for i, v := range n.Values {
			if i > 0 {
				buf.WriteString(", ")
			}
			writeNode(buf, v)
		}
		buf.WriteByte(']')
	case ir.ObjectType:
		buf.WriteByte('{')
		i := 0
		for k, v := range n.Object.All() {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(k)
			buf.WriteString(" = ")
			writeNode(buf, v)
			i++
		}
		buf.WriteByte('}')
	case ir.StringType:
		buf.WriteString(strconv.Quote(n.String))
	default:
		buf.WriteString(strings.TrimSpace(n.Text()))
	}
}
