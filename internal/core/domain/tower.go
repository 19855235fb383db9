package domain

import "fmt"

// Tower is a three-peg board holding disks numbered 1 (smallest) to n.
// It is used to replay a move sequence and check it obeys the rules.
type Tower struct {
	disks int
	pegs  map[Peg][]int
}

// NewTower returns a board with n disks stacked on PegA.
func NewTower(n int) *Tower {
	if n < 0 {
		n = 0
	}
	stack := make([]int, 0, n)
	for d := n; d >= 1; d-- {
		stack = append(stack, d)
	}
	return &Tower{
		disks: n,
		pegs: map[Peg][]int{
			PegA: stack,
			PegB: {},
			PegC: {},
		},
	}
}

// Apply performs a single move, rejecting unknown pegs, empty sources
// and placing a larger disk on a smaller one.
func (t *Tower) Apply(m Move) error {
	if !m.From.IsValid() || !m.To.IsValid() || m.From == m.To {
		return fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}

	src := t.pegs[m.From]
	if len(src) == 0 {
		return fmt.Errorf("%w: %s: peg %s is empty", ErrIllegalMove, m, m.From)
	}
	disk := src[len(src)-1]

	dst := t.pegs[m.To]
	if len(dst) > 0 && dst[len(dst)-1] < disk {
		return fmt.Errorf("%w: %s: disk %d onto disk %d", ErrIllegalMove, m, disk, dst[len(dst)-1])
	}

	t.pegs[m.From] = src[:len(src)-1]
	t.pegs[m.To] = append(dst, disk)
	return nil
}

// Peg returns the disks on p from bottom to top.
func (t *Tower) Peg(p Peg) []int {
	out := make([]int, len(t.pegs[p]))
	copy(out, t.pegs[p])
	return out
}

// Solved returns true if every disk sits on PegC.
func (t *Tower) Solved() bool {
	return len(t.pegs[PegC]) == t.disks
}

// Replay applies moves to a fresh n-disk tower and reports the first
// illegal move, or an error if the tower does not end up on PegC.
func Replay(n int, moves []Move) error {
	t := NewTower(n)
	for i, m := range moves {
		if err := t.Apply(m); err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
	}
	if !t.Solved() {
		return fmt.Errorf("%w: %d of %d disks on peg %s after %d moves",
			ErrIllegalMove, len(t.pegs[PegC]), n, PegC, len(moves))
	}
	return nil
}
