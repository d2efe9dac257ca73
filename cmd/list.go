package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ajxudir/sysupdate/pkg/output"
	"github.com/ajxudir/sysupdate/pkg/sections"
)

var listOutputFlag string

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show the update sections and whether they apply here",
	Long: `Show every section in dispatch order with the tool it drives, whether it
would be dispatched on this machine, and whether that tool was found.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listOutputFlag, "output", "o", "", "Output format: json, yaml (default: table)")
}

// runList probes every section and renders the rows. No command is run and
// the privilege guard does not apply.
func runList(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(listOutputFlag)
	if err != nil {
		return err
	}

	env := newEnv(newReporter())
	rows := sectionRows(env, sectionList())

	return output.NewFormatter(format, cmd.OutOrStdout()).WriteSections(rows)
}

func sectionRows(env *sections.Env, list []sections.Section) []output.SectionRow {
	rows := make([]output.SectionRow, 0, len(list))
	for _, s := range list {
		rows = append(rows, output.SectionRow{
			Name:       s.Name,
			Title:      s.Title,
			Tool:       s.Tool,
			Applicable: s.Applicable(env),
			Detected:   s.Detect(env),
		})
	}
	return rows
}
