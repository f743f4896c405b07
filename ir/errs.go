package ir

import (
	"errors"
)

var (
	ErrPath        = errors.New("bad path")
	ErrUnsupported = errors.New("unsupported go value")
)
