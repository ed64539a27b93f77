package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"diamondkit.dev/pkg/diamondkit/internal/domain"
	m "diamondkit.dev/pkg/diamondkit/internal/model"
)

// envCmd groups env file commands.
var envCmd = newEnvCmd()

func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Manage deployed addresses in the env file",
	}
}

func newEnvSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set NAME ADDRESS",
		Short: "Save an address as <NAME>_ADDRESS_<NETWORK>",
		Long: `Insert or replace <NAME>_ADDRESS_<NETWORK> in the env file. Use the name
"diamond" for the diamond proxy itself.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.SetEnv(cmd.Context(), domain.SetEnvArgs{
				EnvFile: m.Path(viper.GetString(envFileKey)),
				Name:    args[0],
				Network: viper.GetString(networkNameKey),
				Address: args[1],
			})
		},
	}
}

func init() {
	envCmd.AddCommand(newEnvSetCmd())
	rootCmd.AddCommand(envCmd)
}
