package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"wptscore.dev/pkg/wptscore/internal/domain"
	m "wptscore.dev/pkg/wptscore/internal/model"
)

// addCmd represents the add command.
var addCmd = newAddCmd()

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <chunks-dir> <date>",
		Short: "Assemble a run from its shard reports and rescore",
		Long: `Read every shard report in chunks-dir, merge them into one run, store it in
the runs directory as <date>.xz (date is YYYY-MM-DD) and recalculate the
scores of every stored run.

Shards must report disjoint tests. Reports may be plain, gzip or xz
compressed JSON.`,
		Args:   cobra.ExactArgs(2),
		PreRun: bindRecalcFlags,
		RunE: func(_ *cobra.Command, args []string) error {
			recalc, err := recalcArgs()
			if err != nil {
				return err
			}

			return workflow.Add(context.Background(), domain.AddArgs{
				Chunks: m.Path(args[0]),
				Date:   args[1],
				Recalc: recalc,
			})
		},
	}

	configureRecalcFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(addCmd)
}
