package domain

import (
	"fmt"
	"strings"
)

// Matrix is a dense row-major matrix of 64-bit floats.
type Matrix [][]float64

// Dims returns the row count and the length of the first row.
func (m Matrix) Dims() (rows, cols int) {
	if len(m) == 0 {
		return 0, 0
	}
	return len(m), len(m[0])
}

// IsRectangular returns true if every row has the same length.
func (m Matrix) IsRectangular() bool {
	_, cols := m.Dims()
	for _, row := range m {
		if len(row) != cols {
			return false
		}
	}
	return true
}

// IsSquare returns true for a non-empty rectangular matrix with as many rows as columns.
func (m Matrix) IsSquare() bool {
	rows, cols := m.Dims()
	return rows > 0 && rows == cols && m.IsRectangular()
}

// Mul returns m × o. Both must be rectangular with compatible inner dimensions.
func (m Matrix) Mul(o Matrix) (Matrix, error) {
	mr, mc := m.Dims()
	or, oc := o.Dims()
	if !m.IsRectangular() || !o.IsRectangular() || mc != or {
		return nil, fmt.Errorf("%w: cannot multiply %dx%d by %dx%d", ErrInvalidInput, mr, mc, or, oc)
	}
	out := make(Matrix, mr)
	for i := range out {
		out[i] = make([]float64, oc)
		for j := 0; j < oc; j++ {
			var sum float64
			for k := 0; k < mc; k++ {
				sum += m[i][k] * o[k][j]
			}
			out[i][j] = sum
		}
	}
	return out, nil
}

// String formats the matrix the way the services log it, e.g. [[1 2] [3 4]].
func (m Matrix) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, row := range m {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, row)
	}
	b.WriteByte(']')
	return b.String()
}

// Identity returns the n×n identity matrix.
func Identity(n int) Matrix {
	out := make(Matrix, n)
	for i := range out {
		out[i] = make([]float64, n)
		out[i][i] = 1
	}
	return out
}

// InversionErrorKind classifies why a matrix could not be inverted.
type InversionErrorKind string

// Inversion failure kinds, in the order the checks run.
const (
	// InversionErrorShape means the input is not a numeric array with consistent row lengths.
	InversionErrorShape InversionErrorKind = "shape"

	// InversionErrorDimension means the input is not 2D or not square.
	InversionErrorDimension InversionErrorKind = "dimension"

	// InversionErrorSingular means the numeric routine could not invert the matrix.
	InversionErrorSingular InversionErrorKind = "singular"
)

// InversionError is the failure variant of a matrix inversion.
// Message is passed to clients verbatim.
type InversionError struct {
	Kind    InversionErrorKind
	Message string
}

// NewInversionError builds an InversionError from an underlying error's text.
func NewInversionError(kind InversionErrorKind, err error) *InversionError {
	return &InversionError{Kind: kind, Message: err.Error()}
}

// Error returns the client-facing message.
func (e *InversionError) Error() string {
	return e.Message
}

// Is reports every inversion failure as invalid input.
func (e *InversionError) Is(target error) bool {
	return target == ErrInvalidInput
}
