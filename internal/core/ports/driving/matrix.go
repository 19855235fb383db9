package driving

import (
	"context"

	"github.com/custodia-labs/toolbox/internal/core/domain"
)

// MatrixService inverts square matrices.
// Every validation or numeric failure is returned as a *domain.InversionError.
type MatrixService interface {
	// Invert validates m and returns its inverse.
	Invert(ctx context.Context, m domain.Matrix) (domain.Matrix, error)

	// InvertJSON decodes a JSON array of arrays of numbers and inverts it.
	InvertJSON(ctx context.Context, raw []byte) (domain.Matrix, error)
}
