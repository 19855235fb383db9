package mcp

import (
	"github.com/custodia-labs/toolbox/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Hanoi solves Tower of Hanoi puzzles.
	Hanoi driving.HanoiService

	// Matrix inverts square matrices.
	Matrix driving.MatrixService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Hanoi == nil {
		return ErrMissingHanoiService
	}
	if p.Matrix == nil {
		return ErrMissingMatrixService
	}
	return nil
}
