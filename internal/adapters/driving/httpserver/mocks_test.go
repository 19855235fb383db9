package httpserver

import (
	"context"

	"github.com/custodia-labs/toolbox/internal/core/domain"
)

// mockHanoiService is a mock implementation of driving.HanoiService.
type mockHanoiService struct {
	solution domain.HanoiSolution
	err      error
	panics   bool
}

func (m *mockHanoiService) Solve(_ context.Context, _ int) (domain.HanoiSolution, error) {
	if m.panics {
		panic("boom")
	}
	return m.solution, m.err
}
