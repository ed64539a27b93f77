package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"diamondkit.dev/pkg/diamondkit/internal/domain"
	m "diamondkit.dev/pkg/diamondkit/internal/model"
)

const (
	outputFlagName = "output"
	dedupFlagName  = "dedup"
	allFlagName    = "all"
	diffFlagName   = "diff"
)

var abiOutputFlag string
var abiDedupFlag string
var abiAllFlag bool
var abiDiffFlag bool

// abiCmd groups ABI commands.
var abiCmd = newABICmd()

func newABICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abi",
		Short: "Work with facet ABIs",
	}
}

func newABIMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge [facets...]",
		Short: "Merge facet ABIs into one diamond ABI",
		Long: `Concatenate the function and event entries of the facet artifacts into a
single ABI document. With --all every artifact under the artifacts
directory is merged instead of the configured facet list.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := domain.ParseDedupPolicy(viper.GetString(abiDedupKey))
			if err != nil {
				return err
			}

			facets := args
			if len(facets) == 0 {
				facets = viper.GetStringSlice(facetsKey)
			}

			return workflow.MergeABI(cmd.Context(), domain.MergeABIArgs{
				ArtifactsDir: m.Path(viper.GetString(artifactsDirKey)),
				Facets:       facets,
				All:          abiAllFlag,
				Policy:       policy,
				Output:       m.Path(viper.GetString(abiOutputKey)),
				Diff:         abiDiffFlag,
			})
		},
	}

	configureABIMergeFlags(cmd)

	return cmd
}

func init() {
	abiCmd.AddCommand(newABIMergeCmd())
	rootCmd.AddCommand(abiCmd)
}

func configureABIMergeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&abiOutputFlag, outputFlagName, "o", viper.GetString(abiOutputKey), "merged ABI output file")
	bindFlagToConfig(cmd.Flags().Lookup(outputFlagName), abiOutputKey)
	cmd.Flags().StringVar(&abiDedupFlag, dedupFlagName, viper.GetString(abiDedupKey), "duplicate policy: kind-name or none")
	bindFlagToConfig(cmd.Flags().Lookup(dedupFlagName), abiDedupKey)
	cmd.Flags().BoolVar(&abiAllFlag, allFlagName, false, "merge every artifact under the artifacts directory")
	cmd.Flags().BoolVar(&abiDiffFlag, diffFlagName, false, "show a unified diff against the previous output")
}
