// Package logger provides logging for the toolbox services.
//
// Two kinds of logger live here. The package-level functions are a
// verbose debug log: when enabled via the --verbose flag, messages are
// printed to stderr to help users follow startup and configuration.
// Tagged loggers implement driven.Logger and write the per-request lines
// each service emits, prefixed with the service tag, to stdout.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug logs configuration and wiring details.
func Debug(format string, args ...any) {
	printf("[DEBUG] "+format+"\n", args...)
}

// Section opens a group of log lines, one per command run.
func Section(name string) {
	printf("\n=== %s ===\n", name)
}

// Info logs server lifecycle events such as listen and shutdown.
func Info(format string, args ...any) {
	printf("[INFO] "+format+"\n", args...)
}

// Warn logs failures that do not change the response, such as a client
// that went away mid-write.
func Warn(format string, args ...any) {
	printf("[WARN] "+format+"\n", args...)
}

// printf writes to the verbose log; it is a no-op unless verbose is set.
func printf(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, format, args...)
	}
}
