package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"diamondkit.dev/pkg/diamondkit/internal/domain"
	m "diamondkit.dev/pkg/diamondkit/internal/model"
)

const constructorFlagName = "constructor"

var deployConstructorFlag string
var deployReportFlag string

// deployCmd represents the deploy command.
var deployCmd = newDeployCmd()

func newDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy [facets...]",
		Short: "Deploy the cut facet, every facet and the diamond",
		Long: `Deploy diamond.cut_facet, then each facet in order, plan the initial cut
and deploy diamond.name with it. Deployed addresses are saved to the env
file as <FACET>_ADDRESS_<NETWORK> and DIAMOND_ADDRESS_<NETWORK>.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			planning, err := planningArgs(args)
			if err != nil {
				return err
			}

			return workflow.Deploy(cmd.Context(), domain.DeployArgs{
				PlanningArgs: planning,
				NetworkArgs:  networkArgs(),
				CutFacet:     viper.GetString(cutFacetKey),
				Diamond:      viper.GetString(diamondNameKey),
				Constructor:  domain.ConstructorMode(viper.GetString(constructorKey)),
				Report:       m.Path(deployReportFlag),
			})
		},
	}

	configureDeployFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(deployCmd)
}

func configureDeployFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&deployConstructorFlag, constructorFlagName, viper.GetString(constructorKey), "diamond constructor shape: cut or owner-cut-facet")
	bindFlagToConfig(cmd.Flags().Lookup(constructorFlagName), constructorKey)
	cmd.Flags().StringVar(&deployReportFlag, reportFlagName, "", "write the deployment report to this file")
}
