package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/wson-format/wson/token"
)

var (
	ErrParse              = errors.New("parse error")
	ErrMalformedStructure = fmt.Errorf("%w: malformed structure", ErrParse)
	ErrInvalidValue       = fmt.Errorf("%w: invalid value", ErrParse)
	ErrNestingTooDeep     = fmt.Errorf("%w: nesting too deep", ErrParse)
	ErrFormat             = fmt.Errorf("%w: bad input", ErrParse)
)

// Error is a parse failure.  Kind is one of the Err* values above and
// is what errors.Is matches against.  Pos is nil when the failure has
// no location.
type Error struct {
	Kind error
	Msg  string
	Pos  *token.Pos
}

func (e *Error) Error() string {
	if e.Pos != nil {
		return fmt.Sprintf("%s (line %d, column %d)", e.Msg, e.Pos.Line, e.Pos.Col)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}
