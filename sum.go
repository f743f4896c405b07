package wson

import (
	"encoding/hex"

	"github.com/signadot/wson-format/wson/encode"
	"github.com/signadot/wson-format/wson/ir"
	"github.com/zeebo/blake3"
)

// Sum is the hex BLAKE3 hash of the canonical text of doc.  Documents
// equal as values have equal sums, whatever their source formatting.
func Sum(doc *ir.Document) (string, error) {
	h := blake3.New()
	if err := encode.Encode(doc, h); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
