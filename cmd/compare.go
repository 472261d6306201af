package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"wptscore.dev/pkg/wptscore/internal/domain"
	m "wptscore.dev/pkg/wptscore/internal/model"
)

var compareBaselineFlag string

// compareCmd represents the compare command.
var compareCmd = newCompareCmd()

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <date-a> <date-b>",
		Short: "Show how area scores changed between two runs",
		Long: `Score the runs stored for date-a and date-b against the same baseline and
print the differences per focus area as a unified diff.`,
		Args:   cobra.ExactArgs(2),
		PreRun: bindRecalcFlags,
		RunE: func(_ *cobra.Command, args []string) error {
			areas, err := configuredAreas()
			if err != nil {
				return err
			}

			return workflow.Compare(context.Background(), domain.CompareArgs{
				Runs:     m.Path(viper.GetString(runsDirKey)),
				Baseline: viper.GetString(recalcBaselineKey),
				From:     args[0],
				To:       args[1],
				Areas:    areas,
			})
		},
	}

	cmd.Flags().StringVarP(&compareBaselineFlag, baselineFlagName, "b", viper.GetString(recalcBaselineKey), "date of the baseline run (default: latest run)")

	return cmd
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
