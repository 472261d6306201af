package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var recalcParallelFlag int
var recalcBaselineFlag string

// recalcCmd represents the recalc command.
var recalcCmd = newRecalcCmd()

func newRecalcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recalc",
		Short: "Recalculate the scores of every stored run",
		Long: `Score every run in the runs directory against the baseline run (the latest
run unless --baseline names a date) and publish scores and scores-last-run
documents to the site directory.`,
		Args:   cobra.ExactArgs(0),
		PreRun: bindRecalcFlags,
		RunE: func(_ *cobra.Command, _ []string) error {
			args, err := recalcArgs()
			if err != nil {
				return err
			}

			return workflow.Recalc(context.Background(), args)
		},
	}

	configureRecalcFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(recalcCmd)
}

// configureRecalcFlags adds the flags of every command that ends in a recalculation.
func configureRecalcFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&recalcParallelFlag, parallelFlagName, "p", viper.GetInt(recalcParallelKey), "number of runs scored in parallel")
	cmd.Flags().StringVarP(&recalcBaselineFlag, baselineFlagName, "b", viper.GetString(recalcBaselineKey), "date of the baseline run (default: latest run)")
}

// bindRecalcFlags binds the recalculation flags of the running command. Several
// commands share the keys, so binding happens when one of them runs.
func bindRecalcFlags(cmd *cobra.Command, _ []string) {
	if flag := cmd.Flags().Lookup(parallelFlagName); flag != nil {
		bindFlagToConfig(flag, recalcParallelKey)
	}

	if flag := cmd.Flags().Lookup(baselineFlagName); flag != nil {
		bindFlagToConfig(flag, recalcBaselineKey)
	}
}
