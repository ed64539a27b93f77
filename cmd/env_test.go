package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"diamondkit.dev/pkg/diamondkit/internal/domain"
	domainmocks "diamondkit.dev/pkg/diamondkit/internal/domain/mocks"
	m "diamondkit.dev/pkg/diamondkit/internal/model"
)

func newTestEnvCmd() *cobra.Command {
	cmd := newEnvCmd()
	cmd.AddCommand(newEnvSetCmd())

	return cmd
}

func TestEnvSetCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newTestEnvCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("SetEnv", mock.Anything, mock.MatchedBy(func(args domain.SetEnvArgs) bool {
		return args.Name == "OwnershipFacet" &&
			args.Address == "0x00000000000000000000000000000000000000a1" &&
			args.Network == "sepolia" &&
			args.EnvFile == m.Path(defaultEnvFile)
	})).Return(nil)

	cmd.SetArgs(append([]string{
		"env", "set", "OwnershipFacet", "0x00000000000000000000000000000000000000a1", "-n", "sepolia",
	}, testLogArgs(t)...))
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestEnvSetCmd_RequiresTwoArgs(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newTestEnvCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	cmd.SetArgs(append([]string{"env", "set", "OwnershipFacet"}, testLogArgs(t)...))
	err := cmd.Execute()
	require.Error(t, err)
}
