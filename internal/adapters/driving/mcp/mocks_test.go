package mcp

import (
	"context"

	"github.com/custodia-labs/toolbox/internal/core/domain"
)

// mockHanoiService is a mock implementation of driving.HanoiService.
type mockHanoiService struct {
	solution domain.HanoiSolution
	err      error
	gotN     int
}

func (m *mockHanoiService) Solve(_ context.Context, n int) (domain.HanoiSolution, error) {
	m.gotN = n
	return m.solution, m.err
}

// mockMatrixService is a mock implementation of driving.MatrixService.
type mockMatrixService struct {
	result domain.Matrix
	err    error
	got    domain.Matrix
}

func (m *mockMatrixService) Invert(_ context.Context, a domain.Matrix) (domain.Matrix, error) {
	m.got = a
	return m.result, m.err
}

func (m *mockMatrixService) InvertJSON(_ context.Context, _ []byte) (domain.Matrix, error) {
	return m.result, m.err
}
