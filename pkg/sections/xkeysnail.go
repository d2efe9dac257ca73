package sections

import (
	"context"

	"github.com/ajxudir/sysupdate/pkg/cmdexec"
	"github.com/ajxudir/sysupdate/pkg/constants"
)

// xkeysnail lives in its own root-owned virtualenv.
const xkeysnailPip = "/opt/xkeysnail/bin/pip"

func updateXkeysnail(ctx context.Context, env *Env) Result {
	b := newBatch(ctx, env)
	env.Console.Status("Updating xkeysnail")
	b.run(cmdexec.New("sudo", xkeysnailPip, "install", "--upgrade", "xkeysnail"))
	return b.result(constants.SectionXkeysnail)
}
