package controller

import (
	"context"
	"fmt"
	"strings"

	m "diamondkit.dev/pkg/diamondkit/internal/model"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if cfg := newStartConfig(options); cfg.title != "" {
		s.printf("%s\n", cfg.title)
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayProgress prints a single status line.
func (s *SimpleUI) DisplayProgress(ctx context.Context, message string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", message)
}

// DisplayDiagnostics prints each warning on its own line.
func (s *SimpleUI) DisplayDiagnostics(ctx context.Context, diagnostics []m.Diagnostic) {
	if err := ctx.Err(); err != nil {
		return
	}

	for _, d := range diagnostics {
		s.printf("%s\n", renderDiagnostic(d))
	}
}

// DisplayPlan prints the cut plan table.
func (s *SimpleUI) DisplayPlan(ctx context.Context, plan m.CutPlan) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderPlan(plan))

	return nil
}

// DisplayDeployment prints deployed addresses followed by the plan.
func (s *SimpleUI) DisplayDeployment(ctx context.Context, report m.DeploymentReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderDeployment(report))

	return nil
}

// DisplayLoupe prints the facets a diamond reports.
func (s *SimpleUI) DisplayLoupe(ctx context.Context, diamond common.Address, facets []m.LoupeFacet) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderLoupe(diamond, facets))

	return nil
}

// DisplayMerge prints the merge summary and optional diff.
func (s *SimpleUI) DisplayMerge(ctx context.Context, summary m.MergeSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderMerge(summary))

	return nil
}

// DisplayScan prints the scan report.
func (s *SimpleUI) DisplayScan(ctx context.Context, report m.ScanReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n", strings.Join(scanLines(report), "\n"))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
