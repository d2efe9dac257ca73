// Package console prints sysupdate's human-readable progress lines.
//
// Everything goes to stderr so that the output of the package managers
// themselves, which goes to stdout, stays clean. ANSI bold and colour
// escapes are only emitted when the stream is an interactive terminal and
// TERM is not "dumb".
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Foreground colours accepted by Status.
const (
	Yellow = color.FgYellow
	Green  = color.FgGreen
	Red    = color.FgRed
)

// Reporter writes status lines to a single stream.
type Reporter struct {
	w     io.Writer
	color bool
}

// New creates a Reporter writing to w.
//
// Parameters:
//   - w: Destination stream
//   - useColor: Emit ANSI escapes when true
//
// Returns:
//   - *Reporter: Ready to use reporter
func New(w io.Writer, useColor bool) *Reporter {
	return &Reporter{w: w, color: useColor}
}

// NewStderr creates a Reporter for os.Stderr with colour auto-detected.
func NewStderr() *Reporter {
	return New(os.Stderr, ShouldColor(os.Stderr.Fd(), os.Getenv("TERM")))
}

// ShouldColor reports whether escapes should be written to the stream
// with file descriptor fd, given the value of TERM.
func ShouldColor(fd uintptr, term string) bool {
	if term == "dumb" {
		return false
	}
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Writer returns the underlying stream.
func (r *Reporter) Writer() io.Writer {
	return r.w
}

// Colored reports whether the reporter emits ANSI escapes.
func (r *Reporter) Colored() bool {
	return r.color
}

// Bold prints msg in bold.
func (r *Reporter) Bold(msg string) {
	r.println(msg, color.Bold)
}

// Warn prints msg in bold yellow.
func (r *Reporter) Warn(msg string) {
	r.println(msg, color.Bold, color.FgYellow)
}

// Status prints msg in bold, optionally with a foreground colour.
// It is used for "Updating ..." notices and yellow skip notices alike.
func (r *Reporter) Status(msg string, fg ...color.Attribute) {
	attrs := append([]color.Attribute{color.Bold}, fg...)
	r.println(msg, attrs...)
}

// Statusf is Status with a format string and no colour.
func (r *Reporter) Statusf(format string, args ...any) {
	r.Status(fmt.Sprintf(format, args...))
}

// Skip prints the yellow notice used when a section's tool is missing.
func (r *Reporter) Skip(format string, args ...any) {
	r.Status(fmt.Sprintf(format, args...), Yellow)
}

// Plain prints msg without any decoration.
func (r *Reporter) Plain(msg string) {
	_, _ = fmt.Fprintln(r.w, msg)
}

func (r *Reporter) println(msg string, attrs ...color.Attribute) {
	if !r.color {
		_, _ = fmt.Fprintln(r.w, msg)
		return
	}
	c := color.New(attrs...)
	c.EnableColor()
	_, _ = fmt.Fprintln(r.w, c.Sprint(msg))
}
