package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// Hanoi Errors.

	// ErrInvalidDiskCount indicates a disk count below one.
	// The message is part of the HTTP contract and must not change.
	ErrInvalidDiskCount = errors.New("N must be >= 1")

	// ErrDiskCountTooLarge indicates a disk count above the configured limit.
	ErrDiskCountTooLarge = errors.New("disk count exceeds limit")

	// ErrIllegalMove indicates a replayed move breaks the Tower of Hanoi rules.
	ErrIllegalMove = errors.New("illegal move")

	// Matrix Errors.

	// ErrMatrixNotSquare is the message reported for wrong rank or non-square input.
	// The message is part of the HTTP contract and must not change.
	ErrMatrixNotSquare = errors.New("Matrix must be 2D and square") //nolint:staticcheck // wire format

	// ErrMatrixRagged indicates rows of differing length.
	ErrMatrixRagged = errors.New("Matrix rows must all have the same length") //nolint:staticcheck // wire format

	// ErrMatrixNotNumeric indicates an entry that is not a finite number.
	ErrMatrixNotNumeric = errors.New("Matrix entries must be finite numbers") //nolint:staticcheck // wire format
)

// DiskLimitError reports a disk count above the configured maximum.
type DiskLimitError struct {
	Max int
}

// Error returns the client-facing message.
func (e *DiskLimitError) Error() string {
	return fmt.Sprintf("N must be <= %d", e.Max)
}

// Unwrap allows errors.Is(err, ErrDiskCountTooLarge).
func (e *DiskLimitError) Unwrap() error {
	return ErrDiskCountTooLarge
}
