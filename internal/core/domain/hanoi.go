package domain

import "fmt"

// Peg identifies one of the three Tower of Hanoi pegs.
type Peg string

// Fixed peg labels. A full solve always moves the tower from PegA to PegC.
const (
	PegA Peg = "A"
	PegB Peg = "B"
	PegC Peg = "C"
)

// IsValid returns true if the peg is one of the three labels.
func (p Peg) IsValid() bool {
	switch p {
	case PegA, PegB, PegC:
		return true
	default:
		return false
	}
}

// String returns the peg label.
func (p Peg) String() string {
	return string(p)
}

// Move transfers the top disk of From onto To.
type Move struct {
	From Peg
	To   Peg
}

// String formats the move as "<from> -> <to>".
func (m Move) String() string {
	return fmt.Sprintf("%s -> %s", m.From, m.To)
}

// HanoiSolution is the ordered move sequence for a tower of Disks disks.
type HanoiSolution struct {
	// Disks is the tower height the solution was computed for.
	Disks int

	// Moves is in execution order.
	Moves []Move

	// Count is len(Moves), always 2^Disks - 1.
	Count int
}

// MoveStrings renders every move with Move.String.
func (s HanoiSolution) MoveStrings() []string {
	out := make([]string, len(s.Moves))
	for i, m := range s.Moves {
		out[i] = m.String()
	}
	return out
}

// MaxSolvableDisks is the largest disk count whose move count fits in an int64.
const MaxSolvableDisks = 62

// MinimumMoves returns 2^n - 1, the optimal move count for n disks.
// Returns 0 for n < 1 and -1 when the result does not fit in an int64.
func MinimumMoves(n int) int64 {
	if n < 1 {
		return 0
	}
	if n > MaxSolvableDisks {
		return -1
	}
	return int64(1)<<uint(n) - 1
}
