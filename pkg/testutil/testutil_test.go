package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajxudir/sysupdate/pkg/cmdexec"
	"github.com/ajxudir/sysupdate/pkg/preflight"
)

var (
	_ cmdexec.Executor = (*FakeExecutor)(nil)
	_ preflight.Probe  = (*FakeProbe)(nil)
)

// TestCaptureOutput tests the stream capture helpers.
func TestCaptureOutput(t *testing.T) {
	assert.Equal(t, "out\n", CaptureStdout(t, func() { fmt.Println("out") }))
	assert.Equal(t, "err\n", CaptureStderr(t, func() { fmt.Fprintln(os.Stderr, "err") }))

	stdout, stderr := CaptureOutput(t, func() {
		fmt.Print("a")
		fmt.Fprint(os.Stderr, "b")
	})
	assert.Equal(t, "a", stdout)
	assert.Equal(t, "b", stderr)
}

// TestFakeExecutor tests the behavior of FakeExecutor.
//
// It verifies:
//   - Calls are recorded in order for Run and Output
//   - Configured failures and outputs are returned
func TestFakeExecutor(t *testing.T) {
	ctx := context.Background()
	f := NewFakeExecutor().Fail("opam update").Respond("cargo install-update --list", "racer v1 v2 Yes")

	assert.NoError(t, f.Run(ctx, cmdexec.New("gem", "update")))
	assert.Error(t, f.Run(ctx, cmdexec.New("opam", "update")))
	out, err := f.Output(ctx, cmdexec.New("cargo", "install-update", "--list"))
	assert.NoError(t, err)
	assert.Equal(t, "racer v1 v2 Yes", string(out))

	assert.Equal(t, []string{"gem update", "opam update", "cargo install-update --list"}, f.Commands())
}

// TestFakeProbe tests the behavior of FakeProbe.
func TestFakeProbe(t *testing.T) {
	p := NewFakeProbe("/home/me").WithTools("gem").WithFiles("/etc/arch-release")

	path, ok := p.LookPath("gem")
	assert.True(t, ok)
	assert.Equal(t, "/usr/bin/gem", path)

	_, ok = p.LookPath("npm")
	assert.False(t, ok)

	assert.True(t, p.Exists("/etc/arch-release"))
	assert.False(t, p.Exists("/opt/xkeysnail/bin/pip"))
	assert.Equal(t, "/home/me", p.HomeDir())
}

// TestFakeExecutorKeysByDir tests that commands with a directory are keyed separately.
func TestFakeExecutorKeysByDir(t *testing.T) {
	ctx := context.Background()
	f := NewFakeExecutor().Respond("/a: npm update", "updated").Fail("/b: npm update")

	out, err := f.Output(ctx, cmdexec.New("npm", "update").InDir("/a"))
	assert.NoError(t, err)
	assert.Equal(t, "updated", string(out))

	out, err = f.Output(ctx, cmdexec.New("npm", "update").InDir("/b"))
	assert.Error(t, err)
	assert.Empty(t, out)

	assert.Equal(t, []string{"npm update", "npm update"}, f.Commands())
}
