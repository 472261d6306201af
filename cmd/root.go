// Package cmd provides the root command and CLI setup for wptscore.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"wptscore.dev/pkg/wptscore/internal/adapter"
	"wptscore.dev/pkg/wptscore/internal/controller"
	"wptscore.dev/pkg/wptscore/internal/domain"
	m "wptscore.dev/pkg/wptscore/internal/model"
)

var chunkSource adapter.ChunkSource
var runStore adapter.RunStore
var siteStore adapter.SiteStore
var workflow domain.Workflow
var ui controller.UI

// Root-level flags shared by every command that reads or writes runs and scores.
var (
	runsDirFlag    string
	siteDirFlag    string
	siteFormatFlag string
	logFileFlag    string
	verboseFlag    bool
)

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	chunkSource = adapter.NewLocalChunkSource()
	runStore = adapter.NewLocalRunStore()
	siteStore = adapter.NewLocalSiteStore()
	workflow = domain.NewWorkflow(chunkSource, runStore, siteStore, ui)
}

const rootLongDescription = `wptscore turns web-platform-tests result reports into per-area pass rates.

Runs are assembled from the shard reports of one test run, stored as
compressed files named after their date, and scored against a baseline run.
Scores are published as documents for the results site.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wptscore",
		Short: "Web platform tests scoring tool",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&runsDirFlag, runsFlagName, "r", viper.GetString(runsDirKey), "directory holding the stored runs")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(runsFlagName), runsDirKey)

	cmd.PersistentFlags().StringVarP(&siteDirFlag, siteFlagName, "s", viper.GetString(siteDirKey), "directory the score documents are published to")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(siteFlagName), siteDirKey)

	cmd.PersistentFlags().StringVar(&siteFormatFlag, formatFlagName, viper.GetString(siteFormatKey), "encoding of the score documents (json or yaml)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(formatFlagName), siteFormatKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// recalcArgs collects the recalculation settings from flags, env and config.
func recalcArgs() (domain.RecalcArgs, error) {
	format, err := adapter.ParseSiteFormat(viper.GetString(siteFormatKey))
	if err != nil {
		return domain.RecalcArgs{}, err
	}

	areas, err := configuredAreas()
	if err != nil {
		return domain.RecalcArgs{}, err
	}

	return domain.RecalcArgs{
		Runs:     m.Path(viper.GetString(runsDirKey)),
		Site:     m.Path(viper.GetString(siteDirKey)),
		Format:   format,
		Threads:  viper.GetInt(recalcParallelKey),
		Baseline: viper.GetString(recalcBaselineKey),
		Areas:    areas,
	}, nil
}
