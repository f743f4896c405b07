package wson

import (
	"github.com/signadot/wson-format/wson/ir"
	"github.com/signadot/wson-format/wson/libdiff"
)

// Diff lists the changes turning from into to.
func Diff(from, to *ir.Document) []libdiff.Change {
	return libdiff.Diff(from, to)
}

// TextDiff is a line diff of the canonical forms of from and to, ""
// when they are equal.
func TextDiff(from, to *ir.Document) (string, error) {
	a, err := Dumps(from)
	if err != nil {
		return "", err
	}
	b, err := Dumps(to)
	if err != nil {
		return "", err
	}
	return libdiff.Text(a+"\n", b+"\n"), nil
}
