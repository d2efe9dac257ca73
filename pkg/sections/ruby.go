package sections

import (
	"context"

	"github.com/ajxudir/sysupdate/pkg/cmdexec"
	"github.com/ajxudir/sysupdate/pkg/constants"
)

func updateRuby(ctx context.Context, env *Env) Result {
	gem, ok := env.Probe.LookPath("gem")
	if !ok {
		env.Console.Skip("gem not found, skipping Ruby")
		return skipped(constants.SectionRuby)
	}

	b := newBatch(ctx, env)
	env.Console.Status("Updating Ruby gems")
	b.run(cmdexec.New(gem, "update"))
	return b.result(constants.SectionRuby)
}
