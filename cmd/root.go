// Package cmd implements the command-line interface for sysupdate.
// The root command runs the update sections; list and version are
// informational.
package cmd

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajxudir/sysupdate/pkg/cmdexec"
	"github.com/ajxudir/sysupdate/pkg/console"
	"github.com/ajxudir/sysupdate/pkg/constants"
	"github.com/ajxudir/sysupdate/pkg/errors"
	"github.com/ajxudir/sysupdate/pkg/filtering"
	"github.com/ajxudir/sysupdate/pkg/preflight"
	"github.com/ajxudir/sysupdate/pkg/sections"
	"github.com/ajxudir/sysupdate/pkg/verbose"
	"github.com/ajxudir/sysupdate/pkg/warnings"
)

var exitFunc = os.Exit
var verboseFlag bool
var versionFlag bool
var dryRunFlag bool
var skipBuildChecksFlag bool

// Hooks swapped by tests.
var (
	newReporter = console.NewStderr
	newEnv      = defaultEnv
	sectionList = sections.Default
)

var rootCmd = &cobra.Command{
	Use:   "sysupdate [sections...]",
	Short: "Update every package manager on this machine",
	Long: `Run the update commands of every package manager found on this machine,
in a fixed order, and report whether all of them succeeded.

Sections: ` + strings.Join(constants.SectionOrder, ", ") + `

Pass section names to run only those sections. Without arguments every
section that applies to this machine runs.`,
	Args:          cobra.ArbitraryArgs,
	ValidArgs:     constants.SectionOrder,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			verbose.Enable()
		}
		if IsDevBuild() {
			verbose.Debugf("Running development build")
		}
		if !skipBuildChecksFlag {
			if w := GetArchMismatchWarning(); w != "" {
				warnings.Warnf("%s\n", w)
			}
		}
	},
	RunE: runUpdate,
}

// Execute runs the root command and exits with appropriate code:
//   - 0: Every executed command succeeded
//   - 1: Running as root, a command failed, or the arguments were invalid
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		code := errors.GetExitCode(err)
		if _, reported := errors.IsExitError(err); !reported {
			warnings.Warnf("Error: %v\n", err)
		}
		verbose.Printf("Exit code %d: %v", code, err)
		exitFunc(code)
	}
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
func ExecuteTest() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().BoolVar(&skipBuildChecksFlag, "skip-build-checks", false, "Skip the architecture mismatch warning")

	rootCmd.Flags().BoolVarP(&versionFlag, "version", "v", false, "Show version information")
	rootCmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "n", false, "Print the commands instead of running them")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
}

// defaultEnv wires the real executor and probe. With --dry-run commands are
// printed to stdout instead.
func defaultEnv(rep *console.Reporter) *sections.Env {
	var exec cmdexec.Executor = cmdexec.NewSystem()
	if dryRunFlag {
		exec = cmdexec.DryRun{W: os.Stdout}
	}
	return &sections.Env{
		Exec:    exec,
		Probe:   preflight.System{},
		Console: rep,
		Out:     os.Stdout,
	}
}

// runUpdate refuses to run as root, dispatches the selected sections and
// turns the summary into an exit code.
//
// Parameters:
//   - cmd: The cobra command, source of the context
//   - args: Section names; empty selects every section
//
// Returns:
//   - error: *errors.ExitError with code 1 on refusal or failure; nil on success
func runUpdate(cmd *cobra.Command, args []string) error {
	if versionFlag {
		printVersionOutput()
		return nil
	}

	rep := newReporter()

	if err := preflight.CheckPrivileges(); err != nil {
		if errors.IsPrivilegeError(err) {
			rep.Warn("Do not run this as root")
		} else {
			rep.Warn(err.Error())
		}
		return errors.NewExitError(errors.ExitFailure, err)
	}

	list := sectionList()
	filter := filtering.NewSectionFilter(args)
	for _, name := range filter.Unknown(sections.Names(list)) {
		verbose.Printf("Unknown section %q matches nothing (known: %s)", name, strings.Join(sections.Names(list), ", "))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	summary := sections.Dispatch(ctx, newEnv(rep), list, filter)
	if !summary.OK() {
		rep.Warn("Some commands failed")
		failure := errors.NewSectionFailureError(summary.Failed(), summary.Count(constants.StatusUpdated))
		return errors.NewExitError(errors.ExitFailure, failure)
	}

	rep.Status("All updates succeeded", console.Green)
	return nil
}
