package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrNotImplemented", ErrNotImplemented},
		{"ErrInvalidDiskCount", ErrInvalidDiskCount},
		{"ErrDiskCountTooLarge", ErrDiskCountTooLarge},
		{"ErrIllegalMove", ErrIllegalMove},
		{"ErrMatrixNotSquare", ErrMatrixNotSquare},
		{"ErrMatrixRagged", ErrMatrixRagged},
		{"ErrMatrixNotNumeric", ErrMatrixNotNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestWireMessages pins the messages clients depend on.
func TestWireMessages(t *testing.T) {
	assert.Equal(t, "N must be >= 1", ErrInvalidDiskCount.Error())
	assert.Equal(t, "Matrix must be 2D and square", ErrMatrixNotSquare.Error())
}

func TestDiskLimitError(t *testing.T) {
	err := &DiskLimitError{Max: 24}

	assert.Equal(t, "N must be <= 24", err.Error())
	assert.True(t, errors.Is(err, ErrDiskCountTooLarge))
	assert.False(t, errors.Is(err, ErrInvalidDiskCount))

	wrapped := fmt.Errorf("solving: %w", err)
	var limitErr *DiskLimitError
	assert.True(t, errors.As(wrapped, &limitErr))
	assert.Equal(t, 24, limitErr.Max)
}
