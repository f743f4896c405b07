package parse

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/signadot/wson-format/wson/ir"
)

var versionRE = regexp.MustCompile(`^[0-9]+(\.[0-9]+)+$`)

// classifyScalar runs the scalar cascade over trimmed text.  It
// returns nil when text is not a scalar, leaving objects and arrays
// to the caller.
func classifyScalar(text string) *ir.Node {
	if text == "" {
		return ir.Null()
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		return ir.FromString(text[1 : len(text)-1])
	}
	switch strings.ToLower(text) {
	case "true":
		return ir.FromBool(true)
	case "false":
		return ir.FromBool(false)
	case "null":
		return ir.Null()
	}
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return ir.FromInt(i)
	}
	if v := parseVersion(text); v != nil {
		return ir.FromVersion(v...)
	}
	if f, ok := parseFloat(text); ok {
		return ir.FromFloat(f)
	}
	if ir.ValidTime(text, ir.DateLayout) {
		return ir.FromDate(text)
	}
	if ir.ValidTime(text, ir.DateTimeLayout) {
		return ir.FromDateTime(text)
	}
	return nil
}

// parseVersion returns nil unless text is a dotted numeral all of
// whose components fit in 32 bits.
func parseVersion(text string) []uint32 {
	if !versionRE.MatchString(text) {
		return nil
	}
	parts := strings.Split(text, ".")
	res := make([]uint32, len(parts))
	for i, p := range parts {
		u, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return nil
		}
		res[i] = uint32(u)
	}
	return res
}

// parseFloat accepts decimal floats, including inf and nan spellings
// and values that overflow to infinity.  Hex floats and digit
// separators are not WSON.
func parseFloat(text string) (float64, bool) {
	if strings.ContainsAny(text, "xX_") {
		return 0, false
	}
	f, err := strconv.ParseFloat(text, 64)
	if err == nil {
		return f, true
	}
	if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange && math.IsInf(f, 0) {
		return f, true
	}
	return 0, false
}
