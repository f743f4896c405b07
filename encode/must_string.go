package encode

import (
	"bytes"

	"github.com/signadot/wson-format/wson/ir"
)

func MustString(doc *ir.Document, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(doc, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

func MustValueString(v *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := EncodeValue(v, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
