package driven

// Logger receives the per-request log lines a service emits.
// Implementations prefix lines with a service tag.
type Logger interface {
	// Info logs a request or progress line.
	Info(format string, args ...any)

	// Error logs a failure line.
	Error(format string, args ...any)
}
