package encode

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/signadot/wson-format/wson/debug"
	"github.com/signadot/wson-format/wson/format"
	"github.com/signadot/wson-format/wson/ir"
)

const indentUnit = "    "

type EncState struct {
	depth    int
	maxDepth int

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes doc to w.  Nothing is written when encoding fails
// before reaching w.
func Encode(doc *ir.Document, w io.Writer, opts ...EncodeOption) error {
	return EncodeValue(ir.FromDocument(doc), w, opts...)
}

// EncodeValue writes v to w as Encode does for documents.  Values
// other than objects have no enclosing document, so their WSON text
// can only be re-read as part of one.
func EncodeValue(v *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(es)
	}
	if debug.Encode() {
		debug.Logf("encode %v as %s\n", v, es.format)
	}
	var (
		d   []byte
		err error
	)
	switch {
	case es.format.IsJSON():
		d, err = encodeJSON(v, es)
	case es.format.IsYAML():
		d, err = encodeYAML(v, es)
	default:
		buf := bytes.NewBuffer(nil)
		if v.Type == ir.ObjectType {
			err = encodeDocument(v.Object, buf, es)
		} else {
			err = encodeValue(v, buf, es, "")
		}
		d = buf.Bytes()
	}
	if err != nil {
		return err
	}
	if _, err := w.Write(d); err != nil {
		return &Error{Msg: "write", Err: err}
	}
	return nil
}

func encodeDocument(doc *ir.Document, buf *bytes.Buffer, es *EncState) error {
	buf.WriteString(applyColor(es, ir.ObjectType, SepColor, "{"))
	buf.WriteByte('\n')
	if err := encodeFields(doc, buf, es, indentUnit); err != nil {
		return err
	}
	buf.WriteByte('\n')
	buf.WriteString(applyColor(es, ir.ObjectType, SepColor, "}"))
	return nil
}

func (es *EncState) enter() error {
	es.depth++
	if es.depth > es.maxDepth {
		return &Error{
			Msg: fmt.Sprintf("nesting depth exceeds %d", es.maxDepth),
			Err: ErrNestingTooDeep,
		}
	}
	return nil
}

func (es *EncState) leave() {
	es.depth--
}

// encodeFields writes the entries of doc, each prefixed by indent.
func encodeFields(doc *ir.Document, buf *bytes.Buffer, es *EncState, indent string) error {
	if err := es.enter(); err != nil {
		return err
	}
	defer es.leave()
	i := 0
	for k, v := range doc.All() {
		if i > 0 {
			buf.WriteString(applyColor(es, ir.ObjectType, SepColor, ","))
			buf.WriteString("\n\n")
		}
		buf.WriteString(indent)
		buf.WriteString(applyColor(es, ir.ObjectType, FieldColor, k))
		buf.WriteString(applyColor(es, ir.ObjectType, SepColor, " ="))
		buf.WriteByte(' ')
		if err := encodeValue(v, buf, es, indent); err != nil {
			return err
		}
		i++
	}
	return nil
}

// encodeValue writes v where the enclosing line is indented by
// indent.
func encodeValue(v *ir.Node, buf *bytes.Buffer, es *EncState, indent string) error {
	switch v.Type {
	case ir.ObjectType:
		buf.WriteString(applyColor(es, ir.ObjectType, SepColor, "{"))
		buf.WriteByte('\n')
		if err := encodeFields(v.Object, buf, es, indent+indentUnit); err != nil {
			return err
		}
		buf.WriteByte('\n')
		buf.WriteString(indent)
		buf.WriteString(applyColor(es, ir.ObjectType, SepColor, "}"))
		return nil
	case ir.ArrayType:
		return encodeArray(v, buf, es, indent)
	}
	text, err := leafText(v)
	if err != nil {
		return err
	}
	buf.WriteString(applyColor(es, v.Type, ValueColor, text))
	return nil
}

func encodeArray(v *ir.Node, buf *bytes.Buffer, es *EncState, indent string) error {
	if err := es.enter(); err != nil {
		return err
	}
	defer es.leave()
	buf.WriteString(applyColor(es, ir.ArrayType, SepColor, "["))
	buf.WriteByte('\n')
	inner := indent + indentUnit
	for i, e := range v.Values {
		if i > 0 {
			buf.WriteString(applyColor(es, ir.ArrayType, SepColor, ","))
			buf.WriteByte('\n')
		}
		buf.WriteString(inner)
		if err := encodeValue(e, buf, es, inner); err != nil {
			return err
		}
	}
	buf.WriteByte('\n')
	buf.WriteString(indent)
	buf.WriteString(applyColor(es, ir.ArrayType, SepColor, "]"))
	return nil
}

func leafText(v *ir.Node) (string, error) {
	switch v.Type {
	case ir.NullType:
		return "null", nil
	case ir.BoolType:
		return strconv.FormatBool(v.Bool), nil
	case ir.IntType:
		return strconv.FormatInt(v.Int64, 10), nil
	case ir.FloatType:
		return FormatFloat(v.Float64), nil
	case ir.StringType:
		return `"` + v.String + `"`, nil
	case ir.DateType:
		if !ir.ValidTime(v.String, ir.DateLayout) {
			return "", &Error{Msg: fmt.Sprintf("invalid date %q", v.String)}
		}
		return v.String, nil
	case ir.DateTimeType:
		if !ir.ValidTime(v.String, ir.DateTimeLayout) {
			return "", &Error{Msg: fmt.Sprintf("invalid date-time %q", v.String)}
		}
		return v.String, nil
	case ir.VersionType:
		// one component would read back as an int
		if len(v.Version) < 2 {
			return "", &Error{Msg: fmt.Sprintf("version %q needs at least two components", ir.VersionString(v.Version))}
		}
		return ir.VersionString(v.Version), nil
	}
	return "", &Error{Msg: fmt.Sprintf("unknown type %s", v.Type)}
}

var (
	intText     = regexp.MustCompile(`^-?[0-9]+$`)
	versionText = regexp.MustCompile(`^[0-9]+(\.[0-9]+)+$`)
)

// FormatFloat gives the shortest text that parses back to f as a
// float.  Values whose plain form reads as an integer or a version
// are written with an exponent.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if intText.MatchString(s) || versionText.MatchString(s) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	return s
}

func applyColor(es *EncState, t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

// trimNL drops the final newline encoders add, so every format ends
// the same way.
func trimNL(d []byte) []byte {
	return []byte(strings.TrimSuffix(string(d), "\n"))
}
