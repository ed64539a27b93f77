package domain

import (
	"context"
	"fmt"
	"log/slog"

	"diamondkit.dev/pkg/diamondkit/internal/controller"
	m "diamondkit.dev/pkg/diamondkit/internal/model"
)

// Scan builds the import graph under args.Root and reports which files depend
// on args.Target. Paths in the report are relative to the root.
func (w *workflow) Scan(ctx context.Context, args ScanArgs) error {
	if args.Target == "" {
		return fmt.Errorf("%w: scan target", ErrMissingConfig)
	}

	root := args.Root
	if root == "" {
		root = "."
	}

	exclude := args.Exclude
	if exclude == nil {
		exclude = DefaultScanExclude
	}

	cacheSize := args.ResolveCacheSize
	if cacheSize <= 0 {
		cacheSize = DefaultResolveCacheSize
	}

	resolver, err := NewPathResolver(w.SourceFSAdapter, cacheSize)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithReportMode(fmt.Sprintf("Dependency scan for %s", args.Target))); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	result, err := NewGraphBuilder(w.SourceFSAdapter, resolver).Build(GraphOptions{
		Root:       root,
		Extensions: args.Extensions,
		Exclude:    exclude,
	})
	if err != nil {
		return fmt.Errorf("build dependency graph: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	report := w.Analyze(result.Graph, args.Target)
	report.Root = root
	report.Skipped = result.Skipped

	for _, skipped := range result.Skipped {
		report.Diagnostics = append(report.Diagnostics, m.Diagnostic{
			Kind:    m.DiagnosticUnreadableFile,
			Subject: string(w.relative(result.Root, skipped)),
			Message: "could not be read, left out of the graph",
		})
	}

	if args.Fingerprint {
		report.Fingerprints = w.fingerprints(result.Root, report.Closure)
	}

	report.Direct = w.relativeAll(result.Root, report.Direct)
	report.Closure = w.relativeAll(result.Root, report.Closure)
	report.SafeToRemove = w.relativeAll(result.Root, report.SafeToRemove)
	report.Skipped = w.relativeAll(result.Root, report.Skipped)

	slog.Info("Scan finished",
		"root", root,
		"target", args.Target,
		"files", report.TotalFiles,
		"direct", len(report.Direct),
		"closure", len(report.Closure),
	)

	w.DisplayDiagnostics(ctx, report.Diagnostics)

	if err := w.DisplayScan(ctx, report); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	if err := w.saveReport(args.Report, report); err != nil {
		return err
	}

	w.Wait(ctx)

	return nil
}

// fingerprints hashes files and keys the sums by their path relative to root.
func (w *workflow) fingerprints(root m.Path, files []m.Path) map[m.Path]string {
	sums := make(map[m.Path]string, len(files))

	for _, file := range files {
		sum, err := w.HashFile(file)
		if err != nil {
			slog.Debug("Skipping fingerprint", "path", file, "error", err)
			continue
		}

		sums[w.relative(root, file)] = sum
	}

	return sums
}

func (w *workflow) relative(root, path m.Path) m.Path {
	rel, err := w.RelPath(root, path)
	if err != nil {
		return path
	}

	return rel
}

func (w *workflow) relativeAll(root m.Path, paths []m.Path) []m.Path {
	if paths == nil {
		return nil
	}

	out := make([]m.Path, 0, len(paths))
	for _, path := range paths {
		out = append(out, w.relative(root, path))
	}

	return out
}
