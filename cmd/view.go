package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"wptscore.dev/pkg/wptscore/internal/adapter"
	"wptscore.dev/pkg/wptscore/internal/domain"
	m "wptscore.dev/pkg/wptscore/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View the scores of the latest published run",
		Long:  "View the per-area scores of the last run published to the site directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			format, err := adapter.ParseSiteFormat(viper.GetString(siteFormatKey))
			if err != nil {
				return err
			}

			return workflow.View(context.Background(), domain.ViewArgs{
				Site:   m.Path(viper.GetString(siteDirKey)),
				Format: format,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
