package cmd

import (
	"bytes"
	stderrors "errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/sysupdate/pkg/cmdexec"
	"github.com/ajxudir/sysupdate/pkg/console"
	"github.com/ajxudir/sysupdate/pkg/errors"
	"github.com/ajxudir/sysupdate/pkg/preflight"
	"github.com/ajxudir/sysupdate/pkg/sections"
	"github.com/ajxudir/sysupdate/pkg/testutil"
	"github.com/ajxudir/sysupdate/pkg/verbose"
	"github.com/ajxudir/sysupdate/pkg/warnings"
)

// cli swaps the process-facing hooks of the root command for fakes.
type cli struct {
	exec    *testutil.FakeExecutor
	probe   *testutil.FakeProbe
	console *bytes.Buffer
	out     *bytes.Buffer
}

func resetFlags() {
	verboseFlag = false
	versionFlag = false
	dryRunFlag = false
	skipBuildChecksFlag = false
	listOutputFlag = ""
}

func newCLI(t *testing.T, user string) *cli {
	t.Helper()

	c := &cli{
		exec:    testutil.NewFakeExecutor(),
		probe:   testutil.NewFakeProbe("/home/me"),
		console: &bytes.Buffer{},
		out:     &bytes.Buffer{},
	}

	oldUser := preflight.CurrentUser
	oldReporter := newReporter
	oldEnv := newEnv
	t.Cleanup(func() {
		preflight.CurrentUser = oldUser
		newReporter = oldReporter
		newEnv = oldEnv
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		resetFlags()
		verbose.Disable()
	})

	resetFlags()
	preflight.CurrentUser = func() (string, error) { return user, nil }
	newReporter = func() *console.Reporter { return console.New(c.console, false) }
	newEnv = func(rep *console.Reporter) *sections.Env {
		return &sections.Env{Exec: c.exec, Probe: c.probe, Console: rep, Out: c.out}
	}
	rootCmd.SetOut(c.out)

	return c
}

func (c *cli) run(args ...string) error {
	rootCmd.SetArgs(args)
	return ExecuteTest()
}

// TestRootRefusesSuperUser tests the privilege guard of the root command.
//
// It verifies:
//   - Running as root exits with code 1
//   - No command is executed
//   - The refusal is printed
func TestRootRefusesSuperUser(t *testing.T) {
	c := newCLI(t, "root")
	c.probe.WithTools("gem", "npm", "opam", "go", "rustup", "nix-env")
	c.probe.WithFiles("/etc/arch-release")

	err := c.run()
	require.Error(t, err)
	assert.Equal(t, errors.ExitFailure, errors.GetExitCode(err))
	assert.True(t, errors.IsPrivilegeError(err))
	assert.Empty(t, c.exec.Commands())
	assert.Contains(t, c.console.String(), "Do not run this as root")
}

// TestRootUserLookupFailure tests that an unknown user is treated as fatal.
func TestRootUserLookupFailure(t *testing.T) {
	c := newCLI(t, "me")
	preflight.CurrentUser = func() (string, error) { return "", stderrors.New("no passwd entry") }
	c.probe.WithTools("gem")

	err := c.run("ruby")
	require.Error(t, err)
	assert.Equal(t, errors.ExitFailure, errors.GetExitCode(err))
	assert.Empty(t, c.exec.Commands())
	assert.Contains(t, c.console.String(), "no passwd entry")
}

// TestRubyWithoutGem tests the ruby section on a machine without gem.
//
// It verifies:
//   - The skip notice is printed
//   - No subprocess runs
//   - The run succeeds
func TestRubyWithoutGem(t *testing.T) {
	c := newCLI(t, "me")

	err := c.run("ruby")
	require.NoError(t, err)
	assert.Contains(t, c.console.String(), "gem not found, skipping Ruby")
	assert.Contains(t, c.console.String(), "All updates succeeded")
	assert.Empty(t, c.exec.Commands())
}

// TestOnlyArchMarker tests a machine where only /etc/arch-release exists.
//
// It verifies:
//   - Only the pacman upgrade runs
//   - The exit code mirrors the pacman result
func TestOnlyArchMarker(t *testing.T) {
	t.Run("pacman succeeds", func(t *testing.T) {
		c := newCLI(t, "me")
		c.probe.WithFiles("/etc/arch-release")

		require.NoError(t, c.run())
		assert.Equal(t, []string{"sudo pacman -Syu"}, c.exec.Commands())
		assert.Contains(t, c.console.String(), "All updates succeeded")
	})

	t.Run("pacman fails", func(t *testing.T) {
		c := newCLI(t, "me")
		c.probe.WithFiles("/etc/arch-release")
		c.exec.Fail("sudo pacman -Syu")

		err := c.run()
		require.Error(t, err)
		assert.Equal(t, errors.ExitFailure, errors.GetExitCode(err))
		assert.Equal(t, []string{"sudo pacman -Syu"}, c.exec.Commands())
		assert.Contains(t, c.console.String(), "Some commands failed")
		assert.NotContains(t, c.console.String(), "All updates succeeded")

		failure, ok := errors.IsSectionFailure(err)
		require.True(t, ok)
		assert.Equal(t, []string{"archlinux"}, failure.Failed)
	})
}

// TestRootFilter tests that positional arguments select sections.
func TestRootFilter(t *testing.T) {
	c := newCLI(t, "me")
	c.probe.WithTools("gem", "opam", "go")

	require.NoError(t, c.run("ocaml", "go"))
	assert.Equal(t, []string{
		"/usr/bin/opam update",
		"/usr/bin/opam upgrade --yes",
		"GO111MODULE=off /usr/bin/go get -u all",
	}, c.exec.Commands())
}

// TestRootFailureContinues tests that one failing section does not stop the
// others and still fails the run.
func TestRootFailureContinues(t *testing.T) {
	c := newCLI(t, "me")
	c.probe.WithTools("gem", "opam")
	c.exec.Fail("/usr/bin/gem update")

	err := c.run()
	require.Error(t, err)
	assert.Equal(t, []string{
		"/usr/bin/gem update",
		"/usr/bin/opam update",
		"/usr/bin/opam upgrade --yes",
	}, c.exec.Commands())

	failure, ok := errors.IsSectionFailure(err)
	require.True(t, ok)
	assert.Equal(t, []string{"ruby"}, failure.Failed)
	assert.Equal(t, 1, failure.Succeeded)
}

// TestRootUnknownSection tests that unknown names match nothing and are
// reported in verbose mode.
func TestRootUnknownSection(t *testing.T) {
	c := newCLI(t, "me")
	c.probe.WithTools("gem")

	var debug bytes.Buffer
	verbose.SetWriter(&debug)
	defer verbose.SetWriter(os.Stderr)

	require.NoError(t, c.run("--verbose", "haskell"))
	assert.Empty(t, c.exec.Commands())
	assert.Contains(t, debug.String(), `Unknown section "haskell" matches nothing`)
}

// TestDefaultEnv tests the executor chosen by defaultEnv.
//
// It verifies:
//   - --dry-run selects the printing executor
//   - Otherwise the system executor is used
func TestDefaultEnv(t *testing.T) {
	defer resetFlags()
	rep := console.New(&bytes.Buffer{}, false)

	dryRunFlag = true
	env := defaultEnv(rep)
	assert.IsType(t, cmdexec.DryRun{}, env.Exec)
	assert.IsType(t, preflight.System{}, env.Probe)
	assert.Same(t, rep, env.Console)

	dryRunFlag = false
	env = defaultEnv(rep)
	assert.IsType(t, &cmdexec.System{}, env.Exec)
}

// TestExecuteExitCodes tests the behavior of Execute.
//
// It verifies:
//   - exitFunc is not called on success
//   - A failed section exits with code 1 without an extra error line
//   - An invalid flag exits with code 1 and prints the error
func TestExecuteExitCodes(t *testing.T) {
	oldExit := exitFunc
	defer func() { exitFunc = oldExit }()

	var warned bytes.Buffer
	restore := warnings.SetWarningWriter(&warned)
	defer restore()

	t.Run("success", func(t *testing.T) {
		c := newCLI(t, "me")
		called := false
		exitFunc = func(int) { called = true }

		rootCmd.SetArgs([]string{"ruby"})
		Execute()
		assert.False(t, called)
		assert.Empty(t, c.exec.Commands())
	})

	t.Run("failed section", func(t *testing.T) {
		c := newCLI(t, "me")
		c.probe.WithTools("gem")
		c.exec.Fail("/usr/bin/gem update")
		warned.Reset()

		code := -1
		exitFunc = func(c int) { code = c }

		rootCmd.SetArgs([]string{"ruby"})
		Execute()
		assert.Equal(t, 1, code)
		assert.NotContains(t, warned.String(), "Error:")
	})

	t.Run("invalid flag", func(t *testing.T) {
		newCLI(t, "me")
		warned.Reset()

		code := -1
		exitFunc = func(c int) { code = c }

		rootCmd.SetArgs([]string{"--no-such-flag"})
		Execute()
		assert.Equal(t, 1, code)
		assert.Contains(t, warned.String(), "Error:")
	})
}

// TestRootVersionFlag tests that --version prints build information and runs
// no section.
func TestRootVersionFlag(t *testing.T) {
	c := newCLI(t, "root")

	output := testutil.CaptureStdout(t, func() {
		require.NoError(t, c.run("--version"))
	})

	assert.Contains(t, output, "Version:")
	assert.Empty(t, c.exec.Commands())
	assert.NotContains(t, c.console.String(), "Do not run this as root")
}

// TestPersistentPreRunVerbose tests the behavior of PersistentPreRun with verbose flag.
func TestPersistentPreRunVerbose(t *testing.T) {
	defer func() {
		resetFlags()
		verbose.Disable()
	}()

	verboseFlag = true
	rootCmd.PersistentPreRun(rootCmd, []string{})
	assert.True(t, verbose.IsEnabled())
}

// TestPersistentPreRunNotVerbose tests the behavior of PersistentPreRun without verbose flag.
func TestPersistentPreRunNotVerbose(t *testing.T) {
	defer verbose.Disable()

	verboseFlag = false
	rootCmd.PersistentPreRun(rootCmd, []string{})
	assert.False(t, verbose.IsEnabled())
}

// TestPersistentPreRunBuildWarnings tests the behavior of PersistentPreRun with build warnings.
//
// It verifies:
//   - The architecture warning is shown when skipBuildChecksFlag is false
//   - The warning is skipped when skipBuildChecksFlag is true
func TestPersistentPreRunBuildWarnings(t *testing.T) {
	oldBuildOS := BuildOS
	oldBuildArch := BuildArch
	defer func() {
		BuildOS = oldBuildOS
		BuildArch = oldBuildArch
		resetFlags()
	}()

	BuildOS = "impossible_os"
	BuildArch = "impossible_arch"

	t.Run("shows warnings when not skipped", func(t *testing.T) {
		var buf bytes.Buffer
		restore := warnings.SetWarningWriter(&buf)
		defer restore()

		skipBuildChecksFlag = false
		rootCmd.PersistentPreRun(rootCmd, []string{})
		assert.Contains(t, buf.String(), "Architecture mismatch")
	})

	t.Run("skips warnings when flag set", func(t *testing.T) {
		var buf bytes.Buffer
		restore := warnings.SetWarningWriter(&buf)
		defer restore()

		skipBuildChecksFlag = true
		rootCmd.PersistentPreRun(rootCmd, []string{})
		assert.Empty(t, buf.String())
	})
}
