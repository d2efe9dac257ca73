package sections

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ajxudir/sysupdate/pkg/cmdexec"
	"github.com/ajxudir/sysupdate/pkg/constants"
)

const nodeVersion = "v14"

// nodePackages each have their own package.json under ~/tools/node/<version>.
var nodePackages = []string{"eslint", "prettier", "typescript"}

// updateNode runs npm update in every package directory and echoes what
// npm reports. An empty report prints "No packages to update" instead.
func updateNode(ctx context.Context, env *Env) Result {
	npm, ok := env.Probe.LookPath("npm")
	if !ok {
		env.Console.Skip("npm not found, skipping Node")
		return skipped(constants.SectionNode)
	}

	home := env.Probe.HomeDir()
	if home == "" {
		env.Console.Skip("Home directory unknown, skipping Node")
		return skipped(constants.SectionNode)
	}

	b := newBatch(ctx, env)
	for _, name := range nodePackages {
		dir := filepath.Join(home, "tools", "node", nodeVersion, name)
		if !env.Probe.Exists(dir) {
			env.Console.Skip("%s not found, skipping %s", dir, name)
			continue
		}

		env.Console.Statusf("Updating Node package %s", name)
		out, _ := b.output(cmdexec.New(npm, "update").InDir(dir))
		if report := strings.TrimSpace(out); report != "" {
			_, _ = fmt.Fprintln(env.Out, report)
		} else {
			env.Console.Plain("No packages to update")
		}
	}

	return b.result(constants.SectionNode)
}
