package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"diamondkit.dev/pkg/diamondkit/internal/controller"
	m "diamondkit.dev/pkg/diamondkit/internal/model"
	"github.com/pmezard/go-difflib/difflib"
)

const abiOutputPerm os.FileMode = 0o644

// Plan builds a cut plan from artifacts alone. Facet addresses are zero.
func (w *workflow) Plan(ctx context.Context, args PlanArgs) error {
	if err := w.Start(ctx, controller.WithReportMode("Diamond cut plan")); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	artifacts, diagnostics, err := w.loadArtifacts(ctx, args.ArtifactsDir, args.Facets, args.Validation)
	if err != nil {
		return err
	}

	facets := make([]m.Facet, 0, len(artifacts))

	for _, artifact := range artifacts {
		if artifact == nil {
			continue
		}

		facets = append(facets, m.Facet{
			Name:      artifact.ContractName,
			Interface: FacetInterfaceFromABI(artifact.ABI),
		})
	}

	plan, err := newPlanner(args.PlanningArgs).Plan(facets, args.Action)
	if err != nil {
		return fmt.Errorf("plan cut: %w", err)
	}

	plan.Diagnostics = append(diagnostics, plan.Diagnostics...)

	w.DisplayDiagnostics(ctx, plan.Diagnostics)

	if err := w.DisplayPlan(ctx, plan); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	if err := w.saveReport(args.Report, plan); err != nil {
		return err
	}

	w.Wait(ctx)

	return nil
}

// MergeABI merges facet ABIs into one document and writes it to args.Output.
func (w *workflow) MergeABI(ctx context.Context, args MergeABIArgs) error {
	if args.Output == "" {
		return fmt.Errorf("%w: abi output path", ErrMissingConfig)
	}

	if err := w.Start(ctx, controller.WithReportMode("ABI merge")); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	documents, err := w.abiDocuments(ctx, args)
	if err != nil {
		return err
	}

	merger := NewAbiMerger(args.Policy)
	merged, summary := merger.Merge(documents)

	data, err := merger.Encode(merged)
	if err != nil {
		return fmt.Errorf("encode merged abi: %w", err)
	}

	if args.Diff {
		summary.Diff, err = w.abiDiff(args.Output, data)
		if err != nil {
			return err
		}
	}

	if err := w.WriteFile(args.Output, data, abiOutputPerm); err != nil {
		return fmt.Errorf("write merged abi: %w", err)
	}

	summary.Output = args.Output
	slog.Info("Merged ABI written", "path", args.Output, "entries", summary.Entries, "dropped", summary.Dropped)

	if err := w.DisplayMerge(ctx, summary); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return nil
}

func (w *workflow) abiDocuments(ctx context.Context, args MergeABIArgs) ([]m.InterfaceDescription, error) {
	if args.All {
		artifacts, err := w.List(args.ArtifactsDir)
		if err != nil {
			return nil, fmt.Errorf("list artifacts: %w", err)
		}

		documents := make([]m.InterfaceDescription, 0, len(artifacts))
		for _, artifact := range artifacts {
			documents = append(documents, artifact.Description())
		}

		return documents, nil
	}

	artifacts, diagnostics, err := w.loadArtifacts(ctx, args.ArtifactsDir, args.Facets, ValidationLenient)
	if err != nil {
		return nil, err
	}

	w.DisplayDiagnostics(ctx, diagnostics)

	documents := make([]m.InterfaceDescription, 0, len(artifacts))

	for _, artifact := range artifacts {
		if artifact != nil {
			documents = append(documents, artifact.Description())
		}
	}

	return documents, nil
}

func (w *workflow) abiDiff(path m.Path, next []byte) (string, error) {
	var previous []byte

	if w.Exists(path) {
		data, err := w.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read previous abi: %w", err)
		}

		previous = data
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(previous)),
		B:        difflib.SplitLines(string(next)),
		FromFile: string(path),
		ToFile:   string(path) + " (merged)",
		Context:  3,
	})
	if err != nil {
		return "", fmt.Errorf("diff abi: %w", err)
	}

	return strings.TrimRight(diff, "\n"), nil
}
