// Package eval evaluates expressions against WSON documents.
//
// Expressions use the expr language (github.com/expr-lang/expr).  The
// top level keys of the document are variables; dates, date-times and
// versions appear as strings.  Besides the expr builtins these
// functions are available:
//
//	getpath(path)    the value at a document path, or nil
//	listpath(path)   every value matching a path, e.g. "$..port"
//	getenv(name)     an environment variable
//	vercmp(a, b)     -1, 0 or 1 comparing dotted versions
//
// Expand rewrites the string values of a document: a string of the
// form ".[expr]" is replaced by the value of expr, and "$[expr]"
// inside a string is replaced by the text of its value.
package eval
