package sections

import (
	"context"

	"github.com/ajxudir/sysupdate/pkg/cmdexec"
	"github.com/ajxudir/sysupdate/pkg/constants"
)

const archReleaseFile = "/etc/arch-release"

// updateArchLinux upgrades the system with pacman, then AUR packages with
// yay when it is installed.
func updateArchLinux(ctx context.Context, env *Env) Result {
	b := newBatch(ctx, env)

	env.Console.Status("Updating Arch Linux packages")
	b.run(cmdexec.New("sudo", "pacman", "-Syu"))

	if yay, ok := env.Probe.LookPath("yay"); ok {
		env.Console.Status("Updating AUR packages")
		b.run(cmdexec.New(yay, "-Sua"))
	}

	return b.result(constants.SectionArchLinux)
}
