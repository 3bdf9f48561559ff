// Package logger provides leveled logging for the rnamsa service and CLI.
// Debug, Info and Warn messages are only printed in verbose mode (the
// --verbose flag or server.debug). Error messages are always printed.
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

type level string

const (
	levelDebug level = "DEBUG"
	levelInfo  level = "INFO"
	levelWarn  level = "WARN"
	levelError level = "ERROR"
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

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Logger prefixes every message with a component name.
type Logger struct {
	component string
}

// Named returns a logger for one component (e.g., "http", "s3").
func Named(component string) *Logger {
	return &Logger{component: component}
}

var std = &Logger{}

// logf holds the write lock so concurrent messages never interleave.
func (l *Logger) logf(lvl level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !verbose && lvl != levelError {
		return
	}
	prefix := "[" + string(lvl) + "] "
	if l.component != "" {
		prefix += l.component + ": "
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}

// Debug prints a message if verbose mode is enabled.
func (l *Logger) Debug(format string, args ...any) { l.logf(levelDebug, format, args...) }

// Info prints an informational message if verbose mode is enabled.
func (l *Logger) Info(format string, args ...any) { l.logf(levelInfo, format, args...) }

// Warn prints a warning message if verbose mode is enabled.
func (l *Logger) Warn(format string, args ...any) { l.logf(levelWarn, format, args...) }

// Error prints an error message regardless of verbose mode.
func (l *Logger) Error(format string, args ...any) { l.logf(levelError, format, args...) }

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) { std.logf(levelDebug, format, args...) }

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) { std.logf(levelInfo, format, args...) }

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) { std.logf(levelWarn, format, args...) }

// Error prints an error message regardless of verbose mode.
func Error(format string, args ...any) { std.logf(levelError, format, args...) }

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}
