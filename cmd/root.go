// Package cmd provides the root command and CLI setup for diamondkit.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"

	"diamondkit.dev/pkg/diamondkit/internal/adapter"
	"diamondkit.dev/pkg/diamondkit/internal/controller"
	"diamondkit.dev/pkg/diamondkit/internal/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var fsAdapter adapter.SourceFSAdapter
var artifactStore adapter.ArtifactStore
var envStore adapter.EnvStore
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

// Root-level flags shared by every command.
var (
	configFileFlag string
	artifactsFlag  string
	networkFlag    string
	logFileFlag    string
	verboseFlag    bool
)

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	artifactStore = adapter.NewLocalArtifactStore()
	envStore = adapter.NewDotEnvStore()
	reportStore = adapter.NewFileReportStore()
	workflow = domain.NewWorkflow(
		fsAdapter,
		artifactStore,
		envStore,
		reportStore,
		ui,
		adapter.DialChain,
	)
}

const rootLongDescription = `diamondkit plans, deploys and upgrades EIP-2535 diamonds from Hardhat
artifacts, merges facet ABIs, and scans JavaScript/TypeScript sources for
files that depend on a given module.

Configuration is read from diamondkit.yaml, DIAMONDKIT_* environment
variables and a .env file (RPC_URL and PRIVATE_KEY are honoured).`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "diamondkit",
		Short:             "EIP-2535 diamond deployment and dependency scanning toolkit",
		Long:              rootLongDescription,
		SilenceUsage:      true,
		PersistentPreRunE: prepareRun,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&configFileFlag, configFlagName, "", "config file (default ./"+configFileName+")")

	cmd.PersistentFlags().StringVar(&artifactsFlag, artifactsFlagName, viper.GetString(artifactsDirKey), "directory holding Hardhat contract artifacts")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(artifactsFlagName), artifactsDirKey)

	cmd.PersistentFlags().StringVarP(&networkFlag, networkFlagName, "n", viper.GetString(networkNameKey), "network name used for env keys and RPC settings")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(networkFlagName), networkNameKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// prepareRun loads an explicit config file and the .env file, then sets up logging.
func prepareRun(_ *cobra.Command, _ []string) error {
	if configFileFlag != "" {
		viper.SetConfigFile(configFileFlag)

		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", configFileFlag, err)
		}
	}

	envFile := viper.GetString(envFileKey)
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", envFile, err)
	}

	configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
	slog.Debug("Configuration loaded", "config", viper.ConfigFileUsed(), "network", viper.GetString(networkNameKey))

	return nil
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
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}
