// Package encode renders documents as WSON text.
//
// # Usage
//
//	doc := ir.NewDocument()
//	doc.Set("name", ir.FromString("alice"))
//	doc.Set("version", ir.FromVersion(1, 2, 3))
//	err := encode.Encode(doc, os.Stdout)
//
//	// produces
//	{
//	    name = "alice",
//
//	    version = 1.2.3
//	}
//
// The output is canonical: keys in sorted order, four space indents, one
// blank line between object entries.  Strings are written between double
// quotes without escaping, so a string holding '"' does not survive a
// round trip.
//
// EncodeFormat selects JSON or YAML output instead.  Dates, date-times and
// versions are written there as strings.
//
// # Related Packages
//
//   - github.com/signadot/wson-format/wson/ir - value model
//   - github.com/signadot/wson-format/wson/parse - Parse text to documents
package encode
