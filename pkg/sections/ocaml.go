package sections

import (
	"context"

	"github.com/ajxudir/sysupdate/pkg/cmdexec"
	"github.com/ajxudir/sysupdate/pkg/constants"
)

func updateOCaml(ctx context.Context, env *Env) Result {
	opam, ok := env.Probe.LookPath("opam")
	if !ok {
		env.Console.Skip("opam not found, skipping OCaml")
		return skipped(constants.SectionOCaml)
	}

	b := newBatch(ctx, env)
	env.Console.Status("Updating opam repositories")
	b.run(cmdexec.New(opam, "update"))
	env.Console.Status("Upgrading opam packages")
	b.run(cmdexec.New(opam, "upgrade", "--yes"))
	return b.result(constants.SectionOCaml)
}
