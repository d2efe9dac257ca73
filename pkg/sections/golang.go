package sections

import (
	"context"

	"github.com/ajxudir/sysupdate/pkg/cmdexec"
	"github.com/ajxudir/sysupdate/pkg/constants"
)

// updateGo upgrades every package in GOPATH. The skip decision is made on
// the resolved path of the go executable.
func updateGo(ctx context.Context, env *Env) Result {
	goPath, _ := env.Probe.LookPath("go")
	if goPath == "" {
		env.Console.Skip("go not found, skipping Go")
		return skipped(constants.SectionGo)
	}

	b := newBatch(ctx, env)
	env.Console.Status("Updating Go packages")
	b.run(cmdexec.New(goPath, "get", "-u", "all").WithEnv("GO111MODULE", "off"))
	return b.result(constants.SectionGo)
}
