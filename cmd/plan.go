package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"diamondkit.dev/pkg/diamondkit/internal/domain"
	m "diamondkit.dev/pkg/diamondkit/internal/model"
)

const (
	actionFlagName     = "action"
	validationFlagName = "validation"
)

var planActionFlag string
var planValidationFlag string
var planReportFlag string

// planCmd represents the plan command.
var planCmd = newPlanCmd()

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [facets...]",
		Short: "Compute a diamond cut plan from artifacts without touching a chain",
		Long: `Extract selectors from each facet artifact in order, resolve collisions
first-seen-wins, and print the resulting cut records with their digest.
Facet names default to diamond.facets from the configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			action, err := m.ParseCutAction(planActionFlag)
			if err != nil {
				return err
			}

			planning, err := planningArgs(args)
			if err != nil {
				return err
			}

			return workflow.Plan(cmd.Context(), domain.PlanArgs{
				PlanningArgs: planning,
				Action:       action,
				Report:       m.Path(planReportFlag),
			})
		},
	}

	configurePlanFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func configurePlanFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&planActionFlag, actionFlagName, m.CutAdd.String(), "cut action for every record: add, replace or remove")
	cmd.Flags().StringVar(&planValidationFlag, validationFlagName, viper.GetString(validationKey), "selector validation mode: strict or lenient")
	bindFlagToConfig(cmd.Flags().Lookup(validationFlagName), validationKey)
	cmd.Flags().StringVar(&planReportFlag, reportFlagName, "", "write the plan to this file (.json, .yaml or .yml)")
}
