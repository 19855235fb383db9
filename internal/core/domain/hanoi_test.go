package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeg_IsValid(t *testing.T) {
	tests := []struct {
		peg      Peg
		expected bool
	}{
		{PegA, true},
		{PegB, true},
		{PegC, true},
		{Peg("D"), false},
		{Peg(""), false},
		{Peg("a"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.peg), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.peg.IsValid())
		})
	}
}

func TestMove_String(t *testing.T) {
	assert.Equal(t, "A -> C", Move{From: PegA, To: PegC}.String())
	assert.Equal(t, "B -> A", Move{From: PegB, To: PegA}.String())
}

func TestHanoiSolution_MoveStrings(t *testing.T) {
	s := HanoiSolution{
		Disks: 2,
		Moves: []Move{{PegA, PegB}, {PegA, PegC}, {PegB, PegC}},
		Count: 3,
	}

	assert.Equal(t, []string{"A -> B", "A -> C", "B -> C"}, s.MoveStrings())
}

func TestHanoiSolution_MoveStrings_Empty(t *testing.T) {
	assert.Empty(t, HanoiSolution{}.MoveStrings())
}

func TestMinimumMoves(t *testing.T) {
	tests := []struct {
		n        int
		expected int64
	}{
		{-3, 0},
		{0, 0},
		{1, 1},
		{2, 3},
		{3, 7},
		{10, 1023},
		{62, 1<<62 - 1},
		{63, -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, MinimumMoves(tt.n), "n=%d", tt.n)
	}
}
