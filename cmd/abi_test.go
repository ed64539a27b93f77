package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"diamondkit.dev/pkg/diamondkit/internal/domain"
	domainmocks "diamondkit.dev/pkg/diamondkit/internal/domain/mocks"
	m "diamondkit.dev/pkg/diamondkit/internal/model"
)

func newTestABICmd() *cobra.Command {
	cmd := newABICmd()
	cmd.AddCommand(newABIMergeCmd())

	return cmd
}

func TestABIMergeCmd_Defaults(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newTestABICmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("MergeABI", mock.Anything, mock.MatchedBy(func(args domain.MergeABIArgs) bool {
		return args.Output == m.Path(defaultABIOutput) &&
			args.Policy == domain.DedupKindName &&
			!args.All &&
			!args.Diff &&
			assert.ObjectsAreEqual(defaultFacets, args.Facets)
	})).Return(nil)

	cmd.SetArgs(append([]string{"abi", "merge"}, testLogArgs(t)...))
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestABIMergeCmd_Flags(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newTestABICmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("MergeABI", mock.Anything, mock.MatchedBy(func(args domain.MergeABIArgs) bool {
		return args.Output == m.Path("out/Diamond.json") &&
			args.Policy == domain.DedupNone &&
			args.All &&
			args.Diff
	})).Return(nil)

	cmd.SetArgs(append([]string{"abi", "merge", "-o", "out/Diamond.json", "--dedup", "none", "--all", "--diff"}, testLogArgs(t)...))
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestABIMergeCmd_InvalidDedup(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newTestABICmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	cmd.SetArgs(append([]string{"abi", "merge", "--dedup", "signature"}, testLogArgs(t)...))
	err := cmd.Execute()
	require.Error(t, err)
}
