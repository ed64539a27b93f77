package domain

import (
	"path/filepath"
	"strings"

	"diamondkit.dev/pkg/diamondkit/internal/adapter"
	m "diamondkit.dev/pkg/diamondkit/internal/model"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultResolveCacheSize bounds the existence cache of a PathResolver.
const DefaultResolveCacheSize = 4096

// resolveSuffixes are tried in order against the joined import path.
var resolveSuffixes = []string{".js", ".ts", ".jsx", ".tsx", "/index.js", "/index.ts"}

// PathResolver maps an import specifier to a file path.
type PathResolver interface {
	// Resolve returns the resolved path, or false for non-relative imports.
	Resolve(importer m.Path, spec string) (m.Path, bool)
}

type pathResolver struct {
	adapter.SourceFSAdapter
	exists *lru.Cache[m.Path, bool]
}

// NewPathResolver returns a resolver that memoises existence checks in an
// LRU cache of cacheSize entries.
func NewPathResolver(fsAdapter adapter.SourceFSAdapter, cacheSize int) (PathResolver, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultResolveCacheSize
	}

	cache, err := lru.New[m.Path, bool](cacheSize)
	if err != nil {
		return nil, err
	}

	return &pathResolver{SourceFSAdapter: fsAdapter, exists: cache}, nil
}

// Resolve joins spec onto the importer's directory and probes the candidate
// suffixes. When none exists the raw join is returned unchecked, so the
// graph may hold dangling edges.
func (r *pathResolver) Resolve(importer m.Path, spec string) (m.Path, bool) {
	if !strings.HasPrefix(spec, ".") {
		return "", false
	}

	base := filepath.Join(filepath.Dir(string(importer)), filepath.FromSlash(spec))

	for _, suffix := range resolveSuffixes {
		candidate := m.Path(base + filepath.FromSlash(suffix))
		if r.fileExists(candidate) {
			return candidate, true
		}
	}

	return m.Path(base), true
}

func (r *pathResolver) fileExists(path m.Path) bool {
	if known, ok := r.exists.Get(path); ok {
		return known
	}

	found := r.Exists(path)
	r.exists.Add(path, found)

	return found
}
