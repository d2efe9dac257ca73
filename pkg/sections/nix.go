package sections

import (
	"context"

	"github.com/ajxudir/sysupdate/pkg/cmdexec"
	"github.com/ajxudir/sysupdate/pkg/constants"
)

func updateNix(ctx context.Context, env *Env) Result {
	b := newBatch(ctx, env)
	env.Console.Status("Updating Nix user environment")
	b.run(cmdexec.New("nix-env", "--upgrade"))
	return b.result(constants.SectionNix)
}
