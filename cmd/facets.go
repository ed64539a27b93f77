package cmd

import (
	"github.com/spf13/cobra"

	"diamondkit.dev/pkg/diamondkit/internal/domain"
)

var facetsDiamondFlag string

// facetsCmd represents the facets command.
var facetsCmd = newFacetsCmd()

func newFacetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "facets",
		Short: "List the facets and selectors a deployed diamond routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			diamond, err := parseAddressFlag(diamondFlagName, facetsDiamondFlag)
			if err != nil {
				return err
			}

			return workflow.Facets(cmd.Context(), domain.FacetsArgs{
				NetworkArgs: networkArgs(),
				Diamond:     diamond,
			})
		},
	}

	cmd.Flags().StringVar(&facetsDiamondFlag, diamondFlagName, "", "diamond address (default from the env file)")

	return cmd
}

func init() {
	rootCmd.AddCommand(facetsCmd)
}
