package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"diamondkit.dev/pkg/diamondkit/internal/domain"
	m "diamondkit.dev/pkg/diamondkit/internal/model"
)

const (
	rootFlagName        = "root"
	extFlagName         = "ext"
	excludeFlagName     = "exclude"
	fingerprintFlagName = "fingerprint"
)

var scanRootFlag string
var scanExtFlag []string
var scanExcludeFlag []string
var scanFingerprintFlag bool
var scanReportFlag string

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [target]",
		Short: "Find source files that depend on a target module",
		Long: `Build the import graph of the JavaScript/TypeScript files under --root,
then list the files importing the target directly, every file reaching it
transitively, and the files that do not depend on it at all.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := viper.GetString(scanTargetKey)
			if len(args) == 1 {
				target = args[0]
			}

			return workflow.Scan(cmd.Context(), domain.ScanArgs{
				Root:             m.Path(viper.GetString(scanRootKey)),
				Target:           target,
				Extensions:       viper.GetStringSlice(scanExtensionsKey),
				Exclude:          viper.GetStringSlice(scanExcludeKey),
				ResolveCacheSize: viper.GetInt(resolveCacheKey),
				Fingerprint:      scanFingerprintFlag,
				Report:           m.Path(scanReportFlag),
			})
		},
	}

	configureScanFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func configureScanFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&scanRootFlag, rootFlagName, viper.GetString(scanRootKey), "directory to scan")
	bindFlagToConfig(cmd.Flags().Lookup(rootFlagName), scanRootKey)
	cmd.Flags().StringSliceVar(&scanExtFlag, extFlagName, viper.GetStringSlice(scanExtensionsKey), "source file extensions to include")
	bindFlagToConfig(cmd.Flags().Lookup(extFlagName), scanExtensionsKey)
	cmd.Flags().StringArrayVarP(&scanExcludeFlag, excludeFlagName, "x", viper.GetStringSlice(scanExcludeKey), "exclude paths matching a glob (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(excludeFlagName), scanExcludeKey)
	cmd.Flags().BoolVar(&scanFingerprintFlag, fingerprintFlagName, false, "record a BLAKE3 fingerprint of every dependent file")
	cmd.Flags().StringVar(&scanReportFlag, reportFlagName, "", "write the scan report to this file")
}
