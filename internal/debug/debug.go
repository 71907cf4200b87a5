// Package debug provides opt-in file logging for troubleshooting
// git invocations and state transitions without disturbing the TUI.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable that enables logging when the
// --debug-log flag is not given. Its value is the log file path.
const EnvVar = "STASHTUI_DEBUG"

var (
	mu      sync.Mutex
	enabled bool
	logFile *os.File
)

// Enable turns on debug logging to the given file, truncating it.
func Enable(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	logFile = f
	enabled = true

	log("debug logging enabled")
	return nil
}

// EnableFromEnv enables logging if EnvVar is set to a path.
func EnableFromEnv() error {
	path := os.Getenv(EnvVar)
	if path == "" {
		return nil
	}
	return Enable(path)
}

// Close flushes and closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	enabled = false
}

// IsEnabled reports whether debug logging is on.
func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// Log writes a formatted debug line if logging is enabled.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	log(format, args...)
}

// log writes a line. Caller must hold mu.
func log(format string, args ...any) {
	if !enabled || logFile == nil {
		return
	}
	_, _ = fmt.Fprintf(logFile, "[%s] %s\n",
		time.Now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
}

// Timed logs the duration of an operation. Usage:
//
//	defer debug.Timed("stash list")()
func Timed(name string) func() {
	if !IsEnabled() {
		return func() {}
	}

	start := time.Now()
	return func() {
		Log("%s took %v", name, time.Since(start))
	}
}
