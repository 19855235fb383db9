package driving

import (
	"context"

	"github.com/custodia-labs/toolbox/internal/core/domain"
)

// HanoiService solves the Tower of Hanoi puzzle.
type HanoiService interface {
	// Solve returns the full move sequence for moving n disks from peg A to peg C.
	// Returns domain.ErrInvalidDiskCount for n < 1 and a *domain.DiskLimitError
	// when n exceeds the configured maximum.
	Solve(ctx context.Context, n int) (domain.HanoiSolution, error)
}
