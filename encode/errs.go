package encode

import (
	"errors"
	"fmt"
)

var (
	ErrSerialize      = errors.New("serialization failed")
	ErrNestingTooDeep = fmt.Errorf("%w: nesting too deep", ErrSerialize)
)

// Error is a serialization failure.  Err is ErrSerialize,
// ErrNestingTooDeep, or the underlying write error.
type Error struct {
	Msg string
	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrSerialize}
	}
	return []error{ErrSerialize, e.Err}
}
