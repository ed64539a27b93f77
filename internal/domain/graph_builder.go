package domain

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"diamondkit.dev/pkg/diamondkit/internal/adapter"
	m "diamondkit.dev/pkg/diamondkit/internal/model"
	"github.com/bmatcuk/doublestar/v4"
)

// DefaultSourceExtensions are the file types that become graph nodes.
var DefaultSourceExtensions = []string{".js", ".ts", ".jsx", ".tsx"}

// DefaultScanExclude keeps dependency and VCS trees out of the walk.
var DefaultScanExclude = []string{"**/node_modules/**", "**/.git/**"}

// GraphOptions configures one GraphBuilder run.
type GraphOptions struct {
	Root       m.Path
	Extensions []string
	Exclude    []string
}

// GraphResult is a built graph plus the files that could not be read.
type GraphResult struct {
	Root    m.Path
	Graph   *m.DependencyGraph
	Skipped []m.Path
}

// GraphBuilder walks a source tree and records resolved imports per file.
type GraphBuilder interface {
	Build(opts GraphOptions) (GraphResult, error)
}

type graphBuilder struct {
	adapter.SourceFSAdapter
	PathResolver
}

// NewGraphBuilder returns a GraphBuilder reading through fsAdapter.
func NewGraphBuilder(fsAdapter adapter.SourceFSAdapter, resolver PathResolver) GraphBuilder {
	return &graphBuilder{SourceFSAdapter: fsAdapter, PathResolver: resolver}
}

// Build walks opts.Root in lexical order. Unreadable files are left out of
// the graph and reported in Skipped; empty files become nodes without edges.
func (b *graphBuilder) Build(opts GraphOptions) (GraphResult, error) {
	root, err := b.AbsPath(opts.Root)
	if err != nil {
		return GraphResult{}, fmt.Errorf("resolve scan root: %w", err)
	}

	if _, err := b.FileInfo(root); err != nil {
		return GraphResult{}, fmt.Errorf("scan root: %w", err)
	}

	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = DefaultSourceExtensions
	}

	allowed := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		allowed[ext] = struct{}{}
	}

	for _, pattern := range opts.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return GraphResult{}, fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	result := GraphResult{Root: root, Graph: m.NewDependencyGraph()}

	err = b.Walk(root, func(path m.Path, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}

			slog.Debug("Skipping unreadable path", "path", path, "error", walkErr)

			return nil
		}

		if path != root && b.excluded(root, path, opts.Exclude) {
			if entry.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if entry.IsDir() {
			return nil
		}

		if _, ok := allowed[filepath.Ext(string(path))]; !ok {
			return nil
		}

		file := path

		content, readErr := b.ReadFile(file)
		if readErr != nil {
			slog.Debug("Skipping unreadable file", "path", path, "error", readErr)

			result.Skipped = append(result.Skipped, file)

			return nil
		}

		result.Graph.AddFile(file, b.resolveAll(file, string(content)))

		return nil
	})
	if err != nil {
		return GraphResult{}, fmt.Errorf("walk %s: %w", root, err)
	}

	return result, nil
}

func (b *graphBuilder) resolveAll(file m.Path, content string) []m.Path {
	specs := ExtractImports(content)
	deps := make([]m.Path, 0, len(specs))

	for _, spec := range specs {
		if dep, ok := b.Resolve(file, spec); ok {
			deps = append(deps, dep)
		}
	}

	return deps
}

func (b *graphBuilder) excluded(root, path m.Path, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}

	rel, err := b.RelPath(root, path)
	if err != nil {
		return false
	}

	name := filepath.ToSlash(string(rel))
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}

	return false
}
