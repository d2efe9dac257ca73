package sections

import (
	"context"
	"regexp"

	"golang.org/x/mod/semver"

	"github.com/ajxudir/sysupdate/pkg/cmdexec"
	"github.com/ajxudir/sysupdate/pkg/constants"
)

// nightlyPackages only build on the nightly toolchain.
var nightlyPackages = []string{"racer", "clippy"}

// nightlyUpdatePattern matches a `cargo install-update --list` row of a
// nightly package that needs an update:
//
//	racer    v2.1.40  v2.1.48  Yes
var nightlyUpdatePattern = regexp.MustCompile(`(?m)^\s*(racer|clippy)\s+(v\d+\.\d+\.\d+\S*)\s+(v\d+\.\d+\.\d+\S*)\s+Yes\s*$`)

// NightlyUpdateAvailable reports whether list, the output of
// `cargo install-update --list`, shows an update for a nightly package.
func NightlyUpdateAvailable(list string) bool {
	for _, m := range nightlyUpdatePattern.FindAllStringSubmatch(list, -1) {
		if semver.IsValid(m[2]) && semver.IsValid(m[3]) {
			return true
		}
	}
	return false
}

// updateRust updates rustup, the nightly packages when cargo-update reports
// a new release of one of them, and finally the stable toolchain together
// with every cargo-installed binary.
func updateRust(ctx context.Context, env *Env) Result {
	rustup, ok := env.Probe.LookPath("rustup")
	if !ok {
		env.Console.Skip("rustup not found, skipping Rust")
		return skipped(constants.SectionRust)
	}
	cargo, ok := env.Probe.LookPath("cargo")
	if !ok {
		cargo = "cargo"
	}

	b := newBatch(ctx, env)

	env.Console.Status("Updating rustup")
	if b.run(cmdexec.New(rustup, "self", "update")) {
		list, listed := b.output(cmdexec.New(cargo, "install-update", "--list"))
		if listed && NightlyUpdateAvailable(list) {
			env.Console.Status("Updating nightly toolchain")
			b.run(cmdexec.New(rustup, "update", "nightly"))
			args := append([]string{"+nightly", "install", "--force"}, nightlyPackages...)
			b.run(cmdexec.New(cargo, args...))
		}
	}

	env.Console.Status("Updating stable toolchain")
	b.run(cmdexec.New(rustup, "update", "stable"))
	b.run(cmdexec.New(cargo, "+stable", "install-update", "--all"))

	return b.result(constants.SectionRust)
}
