package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"wptscore.dev/pkg/wptscore/internal/domain"
)

// areasCmd represents the areas command.
var areasCmd = newAreasCmd()

func newAreasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "areas [test-path...]",
		Short: "List focus areas",
		Long: `List the focus areas scores are broken down by, including the ones declared
under focus_areas.extra in the configuration. Given test paths such as
/css/CSS2/floats/float-001.html, show the areas each of them belongs to.`,
		RunE: func(_ *cobra.Command, args []string) error {
			areas, err := configuredAreas()
			if err != nil {
				return err
			}

			return workflow.Areas(context.Background(), domain.AreasArgs{
				Tests: args,
				Areas: areas,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(areasCmd)
}
