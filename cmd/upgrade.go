package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"diamondkit.dev/pkg/diamondkit/internal/domain"
	m "diamondkit.dev/pkg/diamondkit/internal/model"
)

const (
	diamondFlagName     = "diamond"
	initFlagName        = "init"
	calldataFlagName    = "calldata"
	removeStaleFlagName = "remove-stale"
)

var upgradeDiamondFlag string
var upgradeInitFlag string
var upgradeCalldataFlag string
var upgradeRemoveStaleFlag bool
var upgradeReportFlag string

// upgradeCmd represents the upgrade command.
var upgradeCmd = newUpgradeCmd()

func newUpgradeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upgrade facets...",
		Short: "Deploy facets and cut them into an existing diamond",
		Long: `Read the diamond's current routing through its loupe, deploy the named
facets and send one diamondCut that adds new selectors and replaces
selectors routed elsewhere. The diamond address defaults to
DIAMOND_ADDRESS_<NETWORK> from the env file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			diamond, err := parseAddressFlag(diamondFlagName, upgradeDiamondFlag)
			if err != nil {
				return err
			}

			initAddr, err := parseAddressFlag(initFlagName, upgradeInitFlag)
			if err != nil {
				return err
			}

			var calldata []byte
			if upgradeCalldataFlag != "" {
				calldata, err = hexutil.Decode(upgradeCalldataFlag)
				if err != nil {
					return fmt.Errorf("invalid --%s: %w", calldataFlagName, err)
				}
			}

			planning, err := planningArgs(args)
			if err != nil {
				return err
			}

			return workflow.Upgrade(cmd.Context(), domain.UpgradeArgs{
				PlanningArgs: planning,
				NetworkArgs:  networkArgs(),
				Diamond:      diamond,
				Init:         initAddr,
				Calldata:     calldata,
				RemoveStale:  upgradeRemoveStaleFlag,
				Report:       m.Path(upgradeReportFlag),
			})
		},
	}

	configureUpgradeFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(upgradeCmd)
}

func configureUpgradeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&upgradeDiamondFlag, diamondFlagName, "", "diamond address (default from the env file)")
	cmd.Flags().StringVar(&upgradeInitFlag, initFlagName, "", "address called with --calldata after the cut")
	cmd.Flags().StringVar(&upgradeCalldataFlag, calldataFlagName, "", "hex calldata for the init address")
	cmd.Flags().BoolVar(&upgradeRemoveStaleFlag, removeStaleFlagName, false, "remove selectors the new facets no longer provide")
	cmd.Flags().StringVar(&upgradeReportFlag, reportFlagName, "", "write the upgrade report to this file")
}

// parseAddressFlag returns the zero address for an empty value.
func parseAddressFlag(name, value string) (common.Address, error) {
	if value == "" {
		return common.Address{}, nil
	}

	if !common.IsHexAddress(value) {
		return common.Address{}, fmt.Errorf("invalid --%s address %q", name, value)
	}

	return common.HexToAddress(value), nil
}
