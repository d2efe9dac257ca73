package testutil

import (
	"context"
	"fmt"

	"github.com/ajxudir/sysupdate/pkg/cmdexec"
)

// FakeExecutor records commands instead of running them.
//
// Results are keyed by the command's display form (cmdexec.Command.String),
// e.g. "sudo pacman -Syu". Commands with a working directory are keyed as
// "<dir>: <command>". Commands without an entry succeed with no output.
type FakeExecutor struct {
	// Calls holds every command in invocation order.
	Calls []cmdexec.Command

	// ExitCodes maps a command to the exit code it should report.
	ExitCodes map[string]int

	// Outputs maps a command to the stdout returned by Output.
	Outputs map[string]string
}

// NewFakeExecutor creates an empty FakeExecutor.
func NewFakeExecutor() *FakeExecutor {
	return &FakeExecutor{ExitCodes: map[string]int{}, Outputs: map[string]string{}}
}

// Fail makes cmd report exit code 1.
func (f *FakeExecutor) Fail(cmd string) *FakeExecutor {
	f.ExitCodes[cmd] = 1
	return f
}

// Respond makes cmd print out when captured.
func (f *FakeExecutor) Respond(cmd, out string) *FakeExecutor {
	f.Outputs[cmd] = out
	return f
}

// Run records c and returns its configured result.
func (f *FakeExecutor) Run(_ context.Context, c cmdexec.Command) error {
	f.Calls = append(f.Calls, c)
	return f.result(c)
}

// Output records c and returns its configured output and result.
func (f *FakeExecutor) Output(_ context.Context, c cmdexec.Command) ([]byte, error) {
	f.Calls = append(f.Calls, c)
	return []byte(f.Outputs[Key(c)]), f.result(c)
}

// Commands returns the display form of every recorded call.
func (f *FakeExecutor) Commands() []string {
	out := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		out = append(out, c.String())
	}
	return out
}

// Key returns the lookup key FakeExecutor uses for c.
func Key(c cmdexec.Command) string {
	if c.Dir != "" {
		return c.Dir + ": " + c.String()
	}
	return c.String()
}

func (f *FakeExecutor) result(c cmdexec.Command) error {
	key := Key(c)
	if code := f.ExitCodes[key]; code != 0 {
		return fmt.Errorf("%s: exit status %d", key, code)
	}
	return nil
}

// FakeProbe answers probes from fixed tables.
type FakeProbe struct {
	// Paths maps executable names to their resolved path.
	Paths map[string]string

	// Files lists paths that exist.
	Files map[string]bool

	// Home is returned by HomeDir.
	Home string
}

// NewFakeProbe creates a FakeProbe with the given home directory and no tools.
func NewFakeProbe(home string) *FakeProbe {
	return &FakeProbe{Paths: map[string]string{}, Files: map[string]bool{}, Home: home}
}

// WithTools registers executables as /usr/bin/<name>.
func (p *FakeProbe) WithTools(names ...string) *FakeProbe {
	for _, n := range names {
		p.Paths[n] = "/usr/bin/" + n
	}
	return p
}

// WithFiles registers existing paths.
func (p *FakeProbe) WithFiles(paths ...string) *FakeProbe {
	for _, path := range paths {
		p.Files[path] = true
	}
	return p
}

// LookPath resolves name from Paths.
func (p *FakeProbe) LookPath(name string) (string, bool) {
	path, ok := p.Paths[name]
	return path, ok
}

// Exists reports whether path was registered.
func (p *FakeProbe) Exists(path string) bool {
	return p.Files[path]
}

// HomeDir returns Home.
func (p *FakeProbe) HomeDir() string {
	return p.Home
}
