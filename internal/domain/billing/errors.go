package billing

import (
	"errors"
	"fmt"
)

// User-correctable bill errors. The current bill is left untouched when
// any of these is returned, so the caller can fix the input and retry.
var (
	ErrEmptyBill       = errors.New("bill has no lines")
	ErrMissingReceiver = errors.New("receiver is required")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	ErrInvalidGSTRate  = errors.New("gst rate must be between 0 and 100")
)

// PersistenceError wraps a sink failure during invoice materialization.
// The bill that produced the invoice is still intact and can be retried.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist invoice: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
