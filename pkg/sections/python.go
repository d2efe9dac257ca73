package sections

import (
	"context"
	"path/filepath"

	"github.com/ajxudir/sysupdate/pkg/cmdexec"
	"github.com/ajxudir/sysupdate/pkg/constants"
	"github.com/ajxudir/sysupdate/pkg/verbose"
)

const pythonVersion = "3.8"

// pythonTools are the per-tool virtualenvs under ~/tools/python/<version>.
// dir is the virtualenv directory, pkg the distribution installed in it.
var pythonTools = []struct {
	dir string
	pkg string
}{
	{"black", "black"},
	{"flake8", "flake8"},
	{"httpie", "httpie"},
	{"ipython", "ipython"},
	{"mypy", "mypy"},
	{"pgcli", "pgcli"},
	{"poetry", "poetry"},
	{"youtube-dl", "youtube_dl"},
}

func pythonRoot(env *Env) string {
	home := env.Probe.HomeDir()
	if home == "" {
		return ""
	}
	return filepath.Join(home, "tools", "python", pythonVersion)
}

func pythonPip(root, dir string) string {
	return filepath.Join(root, dir, "bin", "pip3")
}

func hasPythonTools(env *Env) bool {
	root := pythonRoot(env)
	if root == "" {
		return false
	}
	for _, t := range pythonTools {
		if env.Probe.Exists(pythonPip(root, t.dir)) {
			return true
		}
	}
	return false
}

// updatePython upgrades pip and the tool itself in every virtualenv that exists.
func updatePython(ctx context.Context, env *Env) Result {
	root := pythonRoot(env)
	if root == "" {
		env.Console.Skip("Home directory unknown, skipping Python")
		return skipped(constants.SectionPython)
	}

	b := newBatch(ctx, env)
	for _, t := range pythonTools {
		pip := pythonPip(root, t.dir)
		if !env.Probe.Exists(pip) {
			verbose.Debugf("Python: %s not installed (%s missing)", t.dir, pip)
			continue
		}

		env.Console.Statusf("Updating Python tool %s", t.dir)
		b.run(cmdexec.New(pip, "install", "--upgrade", "pip"))
		b.run(cmdexec.New(pip, "install", "--upgrade", t.pkg))
	}

	if !b.ran {
		env.Console.Skip("No Python tools found in %s, skipping Python", root)
	}
	return b.result(constants.SectionPython)
}
