package ot

import (
	"errors"
	"fmt"
)

// ErrConflict is the distinguished "algebraic conflict" result: rebase could
// not reconcile two operations under the current mode. It is returned as an
// ordinary error value, never panicked, so callers can remediate (retry
// under conflictless, roll back, escalate) instead of unwinding a stack.
var ErrConflict = errors.New("ot: rebase conflict")

// IsConflict reports whether err is (or wraps) ErrConflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// InvalidOperationError is a programmer error: an operation was applied
// outside the domain it is defined on (e.g. Math on a string, a Patch hunk
// reaching past the end of the document, a Set whose declared old side does
// not match the live document). It is never retried or silently recovered.
type InvalidOperationError struct {
	Op      string
	Message string
}

func (e *InvalidOperationError) Error() string {
	return "ot: invalid " + e.Op + " operation: " + e.Message
}

func invalidOp(op, format string, args ...any) error {
	return &InvalidOperationError{Op: op, Message: fmt.Sprintf(format, args...)}
}

// IsInvalidOperation reports whether err is (or wraps) an
// *InvalidOperationError.
func IsInvalidOperation(err error) bool {
	var target *InvalidOperationError
	return errors.As(err, &target)
}
