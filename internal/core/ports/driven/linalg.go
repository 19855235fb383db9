package driven

import "github.com/custodia-labs/toolbox/internal/core/domain"

// MatrixInverter computes the inverse of a square matrix.
// Callers guarantee m is non-empty and square; implementations
// report singular or ill-conditioned input as an error whose
// text is suitable for clients.
type MatrixInverter interface {
	Inverse(m domain.Matrix) (domain.Matrix, error)
}
