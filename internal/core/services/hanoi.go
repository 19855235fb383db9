package services

import (
	"context"

	"github.com/custodia-labs/toolbox/internal/core/domain"
	"github.com/custodia-labs/toolbox/internal/core/ports/driven"
	"github.com/custodia-labs/toolbox/internal/core/ports/driving"
	"github.com/custodia-labs/toolbox/internal/logger"
)

// Ensure HanoiService implements the interface.
var _ driving.HanoiService = (*HanoiService)(nil)

// cancelCheckInterval is how many frames are processed between context checks.
const cancelCheckInterval = 1 << 16

// maxPreallocDisks caps the up-front slice allocation.
const maxPreallocDisks = 24

// HanoiService generates Tower of Hanoi move sequences.
type HanoiService struct {
	maxDisks int
	log      driven.Logger
}

// NewHanoiService creates a new Hanoi service.
// maxDisks caps the accepted disk count; 0 disables the cap.
// log may be nil.
func NewHanoiService(maxDisks int, log driven.Logger) *HanoiService {
	if log == nil {
		log = logger.Nop()
	}
	return &HanoiService{
		maxDisks: maxDisks,
		log:      log,
	}
}

// MaxDisks returns the configured cap, 0 meaning unbounded.
func (s *HanoiService) MaxDisks() int {
	return s.maxDisks
}

// Solve returns the moves that transfer n disks from peg A to peg C via peg B.
func (s *HanoiService) Solve(ctx context.Context, n int) (domain.HanoiSolution, error) {
	s.log.Info("Request: N=%d", n)

	if n < 1 {
		return domain.HanoiSolution{}, domain.ErrInvalidDiskCount
	}
	if s.maxDisks > 0 && n > s.maxDisks {
		return domain.HanoiSolution{}, &domain.DiskLimitError{Max: s.maxDisks}
	}
	if n > domain.MaxSolvableDisks {
		return domain.HanoiSolution{}, &domain.DiskLimitError{Max: domain.MaxSolvableDisks}
	}

	moves, err := generateMoves(ctx, n, domain.PegA, domain.PegC, domain.PegB)
	if err != nil {
		return domain.HanoiSolution{}, err
	}

	return domain.HanoiSolution{
		Disks: n,
		Moves: moves,
		Count: len(moves),
	}, nil
}

// frame is one pending step of the move generator. A frame with
// disks == 0 and emit set stands for the single move from -> to.
type frame struct {
	disks         int
	from, to, via domain.Peg
	emit          bool
}

// generateMoves produces the moves in the same order as the textbook
// recursion (move n-1 to via, move the largest, move n-1 onto it), using
// an explicit stack so call depth stays constant for any n.
func generateMoves(ctx context.Context, n int, from, to, via domain.Peg) ([]domain.Move, error) {
	capacity := 0
	if n <= maxPreallocDisks {
		capacity = int(domain.MinimumMoves(n))
	}
	moves := make([]domain.Move, 0, capacity)

	// The stack never holds more than 2n+1 frames.
	stack := make([]frame, 0, 2*min(n, maxPreallocDisks)+1)
	stack = append(stack, frame{disks: n, from: from, to: to, via: via})

	for steps := 0; len(stack) > 0; steps++ {
		if steps%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.emit {
			moves = append(moves, domain.Move{From: f.from, To: f.to})
			continue
		}
		if f.disks == 0 {
			continue
		}

		// Pushed in reverse so the n-1 move onto via is popped first.
		stack = append(stack,
			frame{disks: f.disks - 1, from: f.via, to: f.to, via: f.from},
			frame{from: f.from, to: f.to, emit: true},
			frame{disks: f.disks - 1, from: f.from, to: f.via, via: f.to},
		)
	}

	return moves, nil
}
