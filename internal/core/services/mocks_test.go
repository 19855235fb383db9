package services

import (
	"fmt"
	"sync"

	"github.com/custodia-labs/toolbox/internal/core/domain"
)

// --- Mock implementations ---

// recordingLogger implements driven.Logger and keeps every line.
type recordingLogger struct {
	mu     sync.Mutex
	infos  []string
	errors []string
}

func (l *recordingLogger) Info(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Error(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

// mockInverter implements driven.MatrixInverter for testing.
type mockInverter struct {
	result domain.Matrix
	err    error
	calls  int
	got    domain.Matrix
}

func (m *mockInverter) Inverse(a domain.Matrix) (domain.Matrix, error) {
	m.calls++
	m.got = a
	return m.result, m.err
}
