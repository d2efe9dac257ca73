// Package testutil provides shared test utilities for sysupdate packages:
// stream capture and fake implementations of the executor and probe.
package testutil

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// stream is a redirected standard stream whose content is drained while
// the captured function runs, so large outputs cannot fill the pipe.
type stream struct {
	target **os.File
	old    *os.File
	w      *os.File
	done   chan string
}

func redirect(t *testing.T, target **os.File) *stream {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	s := &stream{target: target, old: *target, w: w, done: make(chan string, 1)}
	*target = w

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		_ = r.Close()
		s.done <- buf.String()
	}()

	return s
}

// restore puts the original file back and returns what was written.
func (s *stream) restore() string {
	_ = s.w.Close()
	*s.target = s.old
	return <-s.done
}

// CaptureStdout captures stdout during the execution of fn and returns the output as a string.
//
// The original stdout is restored after fn returns.
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()

	out := redirect(t, &os.Stdout)
	fn()
	return out.restore()
}

// CaptureStderr captures stderr during the execution of fn and returns the output as a string.
func CaptureStderr(t *testing.T, fn func()) string {
	t.Helper()

	errs := redirect(t, &os.Stderr)
	fn()
	return errs.restore()
}

// CaptureOutput captures both stdout and stderr during the execution of fn.
//
// Returns:
//   - stdout: All content written to stdout during fn execution
//   - stderr: All content written to stderr during fn execution
func CaptureOutput(t *testing.T, fn func()) (stdout, stderr string) {
	t.Helper()

	out := redirect(t, &os.Stdout)
	errs := redirect(t, &os.Stderr)
	fn()
	stderr = errs.restore()
	stdout = out.restore()
	return stdout, stderr
}
