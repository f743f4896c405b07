// Package token prepares WSON text for parsing.
//
// [StripComments] removes line and block comments and blank lines,
// producing a [Source].  A [Source] maps byte offsets in the stripped
// text back to lines and columns of the original input so that
// errors found later can be reported against what the user wrote.
package token
