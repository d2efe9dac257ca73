// Package verbose provides opt-in debug logging for sysupdate.
//
// All output is prefixed with [DEBUG] and written to stderr unless another
// writer is configured. Nothing is printed until Enable is called, which the
// root command does when --verbose is set.
package verbose

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

var (
	mu      sync.RWMutex
	enabled bool
	writer  io.Writer = os.Stderr
)

// Enable turns on verbose logging.
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// Disable turns off verbose logging.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// IsEnabled returns whether verbose logging is currently enabled.
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetWriter sets the output writer for verbose messages.
//
// Parameters:
//   - w: The io.Writer to use for output; if nil, the writer remains unchanged
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w != nil {
		writer = w
	}
}

func getWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return writer
}

// Printf prints a formatted verbose message if enabled.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
func Printf(format string, args ...any) {
	if IsEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] "+format+"\n", args...)
	}
}

// Debugf is an alias of Printf used for decision points (filters, probes).
func Debugf(format string, args ...any) {
	Printf(format, args...)
}

// CommandExec logs a command right before it is started.
//
// Parameters:
//   - cmd: The display form of the command
//   - workDir: Working directory, empty for the current one
func CommandExec(cmd, workDir string) {
	if !IsEnabled() {
		return
	}
	w := getWriter()
	_, _ = fmt.Fprintf(w, "[DEBUG] Executing: %s\n", cmd)
	if workDir != "" {
		_, _ = fmt.Fprintf(w, "        Working dir: %s\n", workDir)
	}
}

// CommandResult logs the outcome of a finished command.
//
// Long commands are truncated to 60 characters; at most five output lines
// are shown (three plus a remainder count when there are more).
//
// Parameters:
//   - cmd: The display form of the command
//   - exitCode: Exit code, -1 when the process could not be started
//   - output: Captured output, may be empty
func CommandResult(cmd string, exitCode int, output string) {
	if !IsEnabled() {
		return
	}
	w := getWriter()
	if exitCode == 0 {
		_, _ = fmt.Fprintf(w, "[DEBUG] Command succeeded: %s\n", truncate(cmd, 60))
	} else {
		_, _ = fmt.Fprintf(w, "[DEBUG] Command failed (exit %d): %s\n", exitCode, truncate(cmd, 60))
	}
	output = strings.TrimSpace(output)
	if output == "" {
		return
	}
	lines := strings.Split(output, "\n")
	if len(lines) > 5 {
		for _, line := range lines[:3] {
			_, _ = fmt.Fprintf(w, "        | %s\n", truncate(line, 100))
		}
		_, _ = fmt.Fprintf(w, "        | ... (%d more lines)\n", len(lines)-3)
		return
	}
	for _, line := range lines {
		_, _ = fmt.Fprintf(w, "        | %s\n", truncate(line, 100))
	}
}

// SectionFiltered logs why a section was not dispatched.
func SectionFiltered(name, reason string) {
	if IsEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Section '%s' not run: %s\n", name, reason)
	}
}

// ToolMissing logs a missing executable together with its install hint.
func ToolMissing(tool, hint string) {
	if !IsEnabled() {
		return
	}
	w := getWriter()
	_, _ = fmt.Fprintf(w, "[DEBUG] Tool '%s' not found in PATH\n", tool)
	if hint != "" {
		_, _ = fmt.Fprintf(w, "        💡 %s\n", hint)
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
