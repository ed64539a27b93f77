// Package controller provides output adapters for displaying plans, deployments and scan results.
package controller

import (
	"context"
	"os"

	m "diamondkit.dev/pkg/diamondkit/internal/model"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	// ModeReport collects output and shows it when the run finishes.
	ModeReport StartMode = iota
	// ModeStream prints progress as it happens (deployments).
	ModeStream
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode  StartMode
	title string
}

// WithReportMode buffers output until Wait.
func WithReportMode(title string) StartOption {
	return func(c *StartConfig) {
		c.mode = ModeReport
		c.title = title
	}
}

// WithStreamMode prints output immediately.
func WithStreamMode(title string) StartOption {
	return func(c *StartConfig) {
		c.mode = ModeStream
		c.title = title
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeReport}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines how workflows present their results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayProgress(ctx context.Context, message string)
	DisplayDiagnostics(ctx context.Context, diagnostics []m.Diagnostic)
	DisplayPlan(ctx context.Context, plan m.CutPlan) error
	DisplayDeployment(ctx context.Context, report m.DeploymentReport) error
	DisplayLoupe(ctx context.Context, diamond common.Address, facets []m.LoupeFacet) error
	DisplayMerge(ctx context.Context, summary m.MergeSummary) error
	DisplayScan(ctx context.Context, report m.ScanReport) error
}

// NewUI picks the TUI for terminals and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
