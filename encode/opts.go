package encode

import "github.com/signadot/wson-format/wson/format"

// DefaultMaxDepth bounds object and array nesting when encoding.
const DefaultMaxDepth = 1000

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// Depth sets the deepest nesting Encode accepts, the document itself
// being depth 1.  n <= 0 restores the default.
func Depth(n int) EncodeOption {
	return func(es *EncState) {
		if n <= 0 {
			n = DefaultMaxDepth
		}
		es.maxDepth = n
	}
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
