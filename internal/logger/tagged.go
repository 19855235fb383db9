package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/custodia-labs/toolbox/internal/core/ports/driven"
)

// Ensure Tagged implements the interface.
var _ driven.Logger = (*Tagged)(nil)

// Tagged writes "[TAG] message" lines to a writer.
// Safe for concurrent use; each line is written with a single Write call.
type Tagged struct {
	mu  sync.Mutex
	tag string
	out io.Writer
}

// NewTagged creates a logger that prefixes every line with [tag].
// If w is nil, lines go to os.Stdout.
func NewTagged(tag string, w io.Writer) *Tagged {
	if w == nil {
		w = os.Stdout
	}
	return &Tagged{tag: tag, out: w}
}

// Tag returns the prefix without brackets.
func (l *Tagged) Tag() string {
	return l.tag
}

// Info logs a request or progress line.
func (l *Tagged) Info(format string, args ...any) {
	l.write(format, args...)
}

// Error logs a failure line.
func (l *Tagged) Error(format string, args ...any) {
	l.write("Error: "+format, args...)
}

func (l *Tagged) write(format string, args ...any) {
	line := fmt.Sprintf("[%s] "+format+"\n", append([]any{l.tag}, args...)...)

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.out, line)
}

// nop discards everything.
type nop struct{}

// Nop returns a driven.Logger that discards all lines.
func Nop() driven.Logger {
	return nop{}
}

func (nop) Info(string, ...any)  {}
func (nop) Error(string, ...any) {}
