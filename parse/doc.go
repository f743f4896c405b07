// Package parse turns WSON text into an [ir.Document].
//
// Parsing strips comments (see [token.StripComments]), checks the text
// is a brace delimited object and then splits it recursively.  Splitting
// is a plain scan counting {} and [] depth: a ',' separates entries
// only at depth zero, and the first '=' or ':' at depth zero separates
// a key from its value.  Each value is classified by trying, in order,
//
//	empty                 Null
//	"text"                String (no escapes)
//	true, false           Bool (any case)
//	null                  Null (any case)
//	-12                   Int
//	1.2, 1.2.3            Version
//	1.5e2, .5, inf        Float
//	2024-01-31            Date
//	2024-01-31 12:00:00   DateTime
//	{ ... }               Object
//	[ ... ]               Array
//
// and the first value that fails every rule aborts the parse.
//
// JSON and YAML input can be read too with [ParseFormat].
package parse
