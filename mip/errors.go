package mip

import (
	"errors"
	"fmt"
)

// ErrIndex reports an N-D container addressed with the wrong number of
// indices or with a component outside its dimension's bounds.
var ErrIndex = errors.New("indexing error")

// ErrNotInitialized reports a variable family read before it was set.
var ErrNotInitialized = errors.New("variable family not initialized")

// UsageError is a programming error in model-building code: wrong index
// arity, out-of-range component, or reading an unset family slot. These are
// raised as panics at the call site and are not classified by the solve
// boundary.
type UsageError struct {
	Op  string
	Err error
	Msg string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Msg, e.Err)
}

func (e *UsageError) Unwrap() error { return e.Err }

func usagePanic(op string, sentinel error, format string, args ...any) {
	panic(&UsageError{Op: op, Err: sentinel, Msg: fmt.Sprintf(format, args...)})
}
