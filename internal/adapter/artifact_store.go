package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"

	m "diamondkit.dev/pkg/diamondkit/internal/model"
	"github.com/bmatcuk/doublestar/v4"
)

// ErrArtifactNotFound is returned when no compilation artifact matches a contract name.
var ErrArtifactNotFound = errors.New("artifact not found")

// ArtifactStore loads Hardhat compilation artifacts.
type ArtifactStore interface {
	// Find locates <name>.sol/<name>.json anywhere under dir.
	Find(dir m.Path, name string) (m.Artifact, error)
	// List returns every artifact under dir that carries an abi array.
	List(dir m.Path) ([]m.Artifact, error)
}

// LocalArtifactStore reads artifacts from the local filesystem.
type LocalArtifactStore struct{}

// NewLocalArtifactStore constructs a LocalArtifactStore.
func NewLocalArtifactStore() *LocalArtifactStore {
	return &LocalArtifactStore{}
}

type artifactFile struct {
	ContractName string          `json:"contractName"`
	SourceName   string          `json:"sourceName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     string          `json:"bytecode"`
}

// Find resolves the artifact for a contract name. When several match, the
// shortest relative path wins so facets/<Name>.sol beats deeper copies.
func (s *LocalArtifactStore) Find(dir m.Path, name string) (m.Artifact, error) {
	pattern := "**/" + name + ".sol/" + name + ".json"

	matches, err := doublestar.Glob(os.DirFS(string(dir)), pattern)
	if err != nil {
		return m.Artifact{}, fmt.Errorf("glob %s: %w", pattern, err)
	}

	if len(matches) == 0 {
		return m.Artifact{}, fmt.Errorf("%w: %s in %s", ErrArtifactNotFound, name, dir)
	}

	sort.Slice(matches, func(i, j int) bool {
		if len(matches[i]) != len(matches[j]) {
			return len(matches[i]) < len(matches[j])
		}

		return matches[i] < matches[j]
	})

	artifact, ok, err := s.load(filepath.Join(string(dir), filepath.FromSlash(matches[0])))
	if err != nil {
		return m.Artifact{}, err
	}

	if !ok {
		return m.Artifact{}, fmt.Errorf("%w: %s has no abi", ErrArtifactNotFound, matches[0])
	}

	if artifact.ContractName == "" {
		artifact.ContractName = name
	}

	return artifact, nil
}

// List walks dir for *.json files. Files that fail to parse are logged and skipped.
func (s *LocalArtifactStore) List(dir m.Path) ([]m.Artifact, error) {
	matches, err := doublestar.Glob(os.DirFS(string(dir)), "**/*.json")
	if err != nil {
		return nil, fmt.Errorf("glob artifacts: %w", err)
	}

	sort.Strings(matches)

	artifacts := make([]m.Artifact, 0, len(matches))

	for _, match := range matches {
		artifact, ok, err := s.load(filepath.Join(string(dir), filepath.FromSlash(match)))
		if err != nil {
			slog.Warn("Skipping unreadable artifact", "path", match, "error", err)
			continue
		}

		if !ok {
			continue
		}

		if artifact.ContractName == "" {
			artifact.ContractName = trimJSONExt(path.Base(match))
		}

		artifacts = append(artifacts, artifact)
	}

	return artifacts, nil
}

func (s *LocalArtifactStore) load(file string) (m.Artifact, bool, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return m.Artifact{}, false, fmt.Errorf("read artifact %s: %w", file, err)
	}

	var raw artifactFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return m.Artifact{}, false, fmt.Errorf("decode artifact %s: %w", file, err)
	}

	trimmed := bytes.TrimSpace(raw.ABI)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return m.Artifact{}, false, nil
	}

	var entries []m.ABIEntry
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return m.Artifact{}, false, fmt.Errorf("decode abi %s: %w", file, err)
	}

	return m.Artifact{
		ContractName: raw.ContractName,
		SourceName:   raw.SourceName,
		ABI:          entries,
		RawABI:       trimmed,
		Bytecode:     raw.Bytecode,
		Path:         m.Path(file),
	}, true, nil
}

func trimJSONExt(name string) string {
	return name[:len(name)-len(path.Ext(name))]
}
