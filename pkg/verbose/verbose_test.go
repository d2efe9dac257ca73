package verbose

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// withBuffer enables verbose output into a fresh buffer for the duration of a test.
func withBuffer(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	SetWriter(buf)
	Enable()
	t.Cleanup(Disable)
	return buf
}

// TestEnableDisable tests the behavior of Enable and Disable functions.
func TestEnableDisable(t *testing.T) {
	Disable()
	assert.False(t, IsEnabled())

	Enable()
	assert.True(t, IsEnabled())

	Disable()
	assert.False(t, IsEnabled())
}

// TestPrintf tests the behavior of Printf.
//
// It verifies:
//   - No output when verbose is disabled
//   - Formatted output with [DEBUG] prefix when enabled
//   - A nil writer passed to SetWriter is ignored
func TestPrintf(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)

	Disable()
	Printf("should not appear")
	assert.Empty(t, buf.String())

	Enable()
	Printf("test %s %d", "arg", 42)
	SetWriter(nil)
	Debugf("still %s", "here")
	Disable()

	assert.Contains(t, buf.String(), "[DEBUG] test arg 42")
	assert.Contains(t, buf.String(), "[DEBUG] still here")
}

// TestCommandExec tests the behavior of CommandExec.
func TestCommandExec(t *testing.T) {
	buf := withBuffer(t)

	CommandExec("npm update", "/home/me/tools/node/v14/eslint")
	CommandExec("gem update", "")

	out := buf.String()
	assert.Contains(t, out, "[DEBUG] Executing: npm update")
	assert.Contains(t, out, "Working dir: /home/me/tools/node/v14/eslint")
	assert.Equal(t, 1, strings.Count(out, "Working dir"))
}

// TestCommandResult tests the behavior of CommandResult.
//
// It verifies:
//   - Success and failure lines carry the exit code
//   - Long output is cut to three lines plus a remainder count
func TestCommandResult(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		buf := withBuffer(t)
		CommandResult("opam update", 0, "")
		assert.Contains(t, buf.String(), "[DEBUG] Command succeeded: opam update")
		assert.NotContains(t, buf.String(), "|")
	})

	t.Run("failure with output", func(t *testing.T) {
		buf := withBuffer(t)
		CommandResult("opam upgrade --yes", 31, "line1\nline2")
		assert.Contains(t, buf.String(), "Command failed (exit 31): opam upgrade --yes")
		assert.Contains(t, buf.String(), "| line1")
		assert.Contains(t, buf.String(), "| line2")
	})

	t.Run("long output", func(t *testing.T) {
		buf := withBuffer(t)
		CommandResult("cargo install-update --list", 0, "a\nb\nc\nd\ne\nf")
		assert.Contains(t, buf.String(), "| c")
		assert.NotContains(t, buf.String(), "| d")
		assert.Contains(t, buf.String(), "... (3 more lines)")
	})
}

// TestSectionFilteredAndToolMissing tests the section-level helpers.
func TestSectionFilteredAndToolMissing(t *testing.T) {
	buf := withBuffer(t)

	SectionFiltered("nix", "not selected")
	ToolMissing("opam", "Install opam: https://opam.ocaml.org/doc/Install.html")
	ToolMissing("custom", "")

	out := buf.String()
	assert.Contains(t, out, "Section 'nix' not run: not selected")
	assert.Contains(t, out, "Tool 'opam' not found in PATH")
	assert.Contains(t, out, "Install opam")
	assert.Equal(t, 1, strings.Count(out, "💡"))
}

// TestTruncate tests the behavior of truncate.
func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
