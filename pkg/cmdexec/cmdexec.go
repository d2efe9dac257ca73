// Package cmdexec runs the external update commands of sysupdate.
//
// Commands are argument vectors, not shell strings: no shell is involved, so
// nothing needs quoting and no user profile is sourced. An Executor either
// runs a command with the terminal attached (Run) or captures its standard
// output (Output). DryRun prints commands instead of running them.
package cmdexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/ajxudir/sysupdate/pkg/verbose"
	"github.com/ajxudir/sysupdate/pkg/warnings"
)

// Command describes one external process invocation.
//
// Fields:
//   - Name: Executable name (looked up in PATH) or absolute path
//   - Args: Arguments passed to the executable
//   - Dir: Working directory; empty means the current directory
//   - Env: Extra environment variables layered over os.Environ
type Command struct {
	Name string
	Args []string
	Dir  string
	Env  map[string]string
}

// New creates a Command for the given executable and arguments.
func New(name string, args ...string) Command {
	return Command{Name: name, Args: args}
}

// InDir returns a copy of c that runs in dir.
func (c Command) InDir(dir string) Command {
	c.Dir = dir
	return c
}

// WithEnv returns a copy of c with one extra environment variable.
func (c Command) WithEnv(key, value string) Command {
	env := make(map[string]string, len(c.Env)+1)
	for k, v := range c.Env {
		env[k] = v
	}
	env[key] = value
	c.Env = env
	return c
}

// String renders the command the way it would be typed in a shell.
//
// Environment overrides are printed first in sorted order; arguments that
// contain shell metacharacters are single-quoted.
func (c Command) String() string {
	var parts []string
	keys := make([]string, 0, len(c.Env))
	for k := range c.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, k+"="+shellEscape(c.Env[k]))
	}
	parts = append(parts, shellEscape(c.Name))
	for _, a := range c.Args {
		parts = append(parts, shellEscape(a))
	}
	return strings.Join(parts, " ")
}

// Executor runs commands synchronously.
//
// Run attaches the command to the executor's streams and returns nil only
// when the process exited with code 0. Output captures standard output and
// has the same error contract.
type Executor interface {
	Run(ctx context.Context, c Command) error
	Output(ctx context.Context, c Command) ([]byte, error)
}

// System executes commands as real child processes.
type System struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewSystem returns a System executor attached to the process streams.
func NewSystem() *System {
	return &System{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes c with stdin, stdout and stderr attached and waits for it.
//
// Returns:
//   - error: nil on exit code 0; otherwise an error wrapping *exec.ExitError
//     or the start failure
func (s *System) Run(ctx context.Context, c Command) error {
	cmd := s.build(ctx, c)
	cmd.Stdout = s.Stdout
	err := cmd.Run()
	return s.finish(c, err, "")
}

// Output executes c and returns its standard output.
//
// Standard error stays attached to the executor's stderr so that progress
// and error messages of the tool remain visible.
func (s *System) Output(ctx context.Context, c Command) ([]byte, error) {
	cmd := s.build(ctx, c)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	err := cmd.Run()
	return stdout.Bytes(), s.finish(c, err, stdout.String())
}

func (s *System) build(ctx context.Context, c Command) *exec.Cmd {
	verbose.CommandExec(c.String(), c.Dir)

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Stdin = s.Stdin
	cmd.Stderr = s.Stderr
	if c.Dir != "" {
		cmd.Dir = c.Dir
	}
	if len(c.Env) > 0 {
		environ := os.Environ()
		for key, value := range c.Env {
			environ = append(environ, fmt.Sprintf("%s=%s", key, os.ExpandEnv(value)))
		}
		cmd.Env = environ
	}
	return cmd
}

func (s *System) finish(c Command, err error, output string) error {
	code := ExitCode(err)
	verbose.CommandResult(c.String(), code, output)
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		warnings.Warnf("failed to start %s: %v\n", c.Name, err)
	}
	return fmt.Errorf("%s: %w", c.String(), err)
}

// ExitCode extracts the process exit code from an error returned by an Executor.
//
// Returns:
//   - int: 0 for nil, the exit status for *exec.ExitError, -1 otherwise
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// DryRun prints every command prefixed with "+ " instead of executing it.
// Output always returns empty output.
type DryRun struct {
	W io.Writer
}

// Run prints c and reports success.
func (d DryRun) Run(_ context.Context, c Command) error {
	d.print(c)
	return nil
}

// Output prints c and returns no output.
func (d DryRun) Output(_ context.Context, c Command) ([]byte, error) {
	d.print(c)
	return nil, nil
}

func (d DryRun) print(c Command) {
	if c.Dir != "" {
		_, _ = fmt.Fprintf(d.W, "+ (cd %s) %s\n", shellEscape(c.Dir), c)
		return
	}
	_, _ = fmt.Fprintf(d.W, "+ %s\n", c)
}

// shellEscape quotes s for display when it contains characters a shell
// would interpret. Safe strings are returned unquoted for readability.
func shellEscape(s string) string {
	if s == "" {
		return "''"
	}

	needsEscape := false
	for _, r := range s {
		if !isShellSafe(r) {
			needsEscape = true
			break
		}
	}
	if !needsEscape {
		return s
	}

	var escaped strings.Builder
	escaped.WriteRune('\'')
	for _, r := range s {
		if r == '\'' {
			escaped.WriteString("'\\''")
		} else {
			escaped.WriteRune(r)
		}
	}
	escaped.WriteRune('\'')
	return escaped.String()
}

func isShellSafe(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '-' || r == '_' || r == '.' ||
		r == '/' || r == '@' || r == ':' ||
		r == '+' || r == '=' || r == '~'
}
