package sections

import (
	"context"
	"io"

	"github.com/ajxudir/sysupdate/pkg/cmdexec"
	"github.com/ajxudir/sysupdate/pkg/console"
	"github.com/ajxudir/sysupdate/pkg/constants"
	"github.com/ajxudir/sysupdate/pkg/preflight"
	"github.com/ajxudir/sysupdate/pkg/verbose"
)

// Env is everything a section needs from the outside world.
type Env struct {
	// Exec runs the update commands.
	Exec cmdexec.Executor

	// Probe discovers tools and files.
	Probe preflight.Probe

	// Console receives status lines.
	Console *console.Reporter

	// Out receives captured tool output that is echoed back to the user.
	Out io.Writer
}

// Section is one named entry of the dispatch list.
type Section struct {
	// Name is the identifier accepted on the command line.
	Name string

	// Title is the human-readable name used in status lines.
	Title string

	// Tool is the executable or path the section revolves around.
	Tool string

	// Applicable decides whether the section is dispatched at all.
	Applicable func(env *Env) bool

	// Detect reports whether there is anything for the section to update.
	// It is used by the list command only.
	Detect func(env *Env) bool

	// Update runs the section's commands.
	Update func(ctx context.Context, env *Env) Result
}

// Result is the outcome of a single section.
type Result struct {
	Name   string
	Status string

	// OK is false only when an invoked command failed.
	OK bool
}

func always(*Env) bool { return true }

func onPath(tool string) func(env *Env) bool {
	return func(env *Env) bool {
		_, ok := env.Probe.LookPath(tool)
		return ok
	}
}

func fileExists(path string) func(env *Env) bool {
	return func(env *Env) bool {
		return env.Probe.Exists(path)
	}
}

func skipped(name string) Result {
	return Result{Name: name, Status: constants.StatusSkipped, OK: true}
}

// batch runs the commands of one section and ANDs their results.
type batch struct {
	ctx context.Context
	env *Env
	ran bool
	ok  bool
}

func newBatch(ctx context.Context, env *Env) *batch {
	return &batch{ctx: ctx, env: env, ok: true}
}

// run executes c and reports whether it exited with code 0.
func (b *batch) run(c cmdexec.Command) bool {
	b.ran = true
	if err := b.env.Exec.Run(b.ctx, c); err != nil {
		verbose.Debugf("Command failed: %v", err)
		b.ok = false
		return false
	}
	return true
}

// output executes c capturing stdout.
func (b *batch) output(c cmdexec.Command) (string, bool) {
	b.ran = true
	out, err := b.env.Exec.Output(b.ctx, c)
	if err != nil {
		verbose.Debugf("Command failed: %v", err)
		b.ok = false
		return string(out), false
	}
	return string(out), true
}

func (b *batch) result(name string) Result {
	switch {
	case !b.ok:
		return Result{Name: name, Status: constants.StatusFailed, OK: false}
	case !b.ran:
		return skipped(name)
	default:
		return Result{Name: name, Status: constants.StatusUpdated, OK: true}
	}
}
