// Package domain implements diamond cut planning, ABI merging, import graph
// scanning and the workflows that drive them.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"diamondkit.dev/pkg/diamondkit/internal/adapter"
	"diamondkit.dev/pkg/diamondkit/internal/controller"
	m "diamondkit.dev/pkg/diamondkit/internal/model"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"
)

// ErrMissingConfig is returned before any side effect when a required setting is empty.
var ErrMissingConfig = errors.New("missing configuration")

// ConstructorMode selects how the diamond constructor receives its facets.
type ConstructorMode string

const (
	// ConstructorCut passes the whole cut to constructor(FacetCut[]).
	ConstructorCut ConstructorMode = "cut"
	// ConstructorOwnerCutFacet deploys with constructor(owner, cutFacet) and
	// sends the cut as a separate diamondCut transaction.
	ConstructorOwnerCutFacet ConstructorMode = "owner-cut-facet"
)

// ParseConstructorMode parses a constructor mode name.
func ParseConstructorMode(value string) (ConstructorMode, error) {
	switch ConstructorMode(strings.ToLower(strings.TrimSpace(value))) {
	case "", ConstructorCut:
		return ConstructorCut, nil
	case ConstructorOwnerCutFacet:
		return ConstructorOwnerCutFacet, nil
	default:
		return "", fmt.Errorf("unknown constructor mode %q", value)
	}
}

// PlanningArgs selects facet artifacts and how their selectors are extracted.
type PlanningArgs struct {
	ArtifactsDir m.Path
	Facets       []string
	Validation   ValidationMode
	Initializers []string
}

// NetworkArgs identifies the target chain and the env file holding addresses.
type NetworkArgs struct {
	Network string
	Chain   adapter.ChainConfig
	EnvFile m.Path
}

// PlanArgs contains the arguments for an offline cut plan.
type PlanArgs struct {
	PlanningArgs
	Action m.CutAction
	Report m.Path
}

// DeployArgs contains the arguments for a full diamond deployment.
type DeployArgs struct {
	PlanningArgs
	NetworkArgs
	CutFacet    string
	Diamond     string
	Constructor ConstructorMode
	Report      m.Path
}

// UpgradeArgs contains the arguments for upgrading a deployed diamond.
// A zero Diamond is read from the env file.
type UpgradeArgs struct {
	PlanningArgs
	NetworkArgs
	Diamond     common.Address
	Init        common.Address
	Calldata    []byte
	RemoveStale bool
	Report      m.Path
}

// FacetsArgs contains the arguments for listing a diamond's facets.
type FacetsArgs struct {
	NetworkArgs
	Diamond common.Address
}

// MergeABIArgs contains the arguments for merging facet ABIs.
type MergeABIArgs struct {
	ArtifactsDir m.Path
	Facets       []string
	All          bool
	Policy       DedupPolicy
	Output       m.Path
	Diff         bool
}

// ScanArgs contains the arguments for a dependency scan.
type ScanArgs struct {
	Root             m.Path
	Target           string
	Extensions       []string
	Exclude          []string
	ResolveCacheSize int
	Fingerprint      bool
	Report           m.Path
}

// SetEnvArgs contains the arguments for saving one address to the env file.
type SetEnvArgs struct {
	EnvFile m.Path
	Name    string
	Network string
	Address string
}

// Workflow defines the operations exposed to the CLI.
type Workflow interface {
	Plan(ctx context.Context, args PlanArgs) error
	Deploy(ctx context.Context, args DeployArgs) error
	Upgrade(ctx context.Context, args UpgradeArgs) error
	Facets(ctx context.Context, args FacetsArgs) error
	MergeABI(ctx context.Context, args MergeABIArgs) error
	Scan(ctx context.Context, args ScanArgs) error
	SetEnv(ctx context.Context, args SetEnvArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ArtifactStore
	adapter.EnvStore
	adapter.ReportStore
	controller.UI
	ReachabilityAnalyzer

	dial adapter.ChainDialer
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
// Planners, resolvers and graphs are built per call from the call's arguments.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	artifactStore adapter.ArtifactStore,
	envStore adapter.EnvStore,
	reportStore adapter.ReportStore,
	ui controller.UI,
	dial adapter.ChainDialer,
) Workflow {
	return &workflow{
		SourceFSAdapter:      fsAdapter,
		ArtifactStore:        artifactStore,
		EnvStore:             envStore,
		ReportStore:          reportStore,
		UI:                   ui,
		ReachabilityAnalyzer: NewReachabilityAnalyzer(),
		dial:                 dial,
	}
}

func (w *workflow) SetEnv(ctx context.Context, args SetEnvArgs) error {
	if args.Name == "" || args.Network == "" {
		return fmt.Errorf("%w: name and network are required", ErrMissingConfig)
	}

	if !common.IsHexAddress(args.Address) {
		return fmt.Errorf("invalid address %q", args.Address)
	}

	key := adapter.AddressKey(args.Name, args.Network)
	value := common.HexToAddress(args.Address).Hex()

	if err := w.Upsert(args.EnvFile, key, value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}

	slog.Info("Address saved", "key", key, "file", args.EnvFile)
	w.DisplayProgress(ctx, fmt.Sprintf("%s=%s saved to %s", key, value, args.EnvFile))

	return nil
}

// loadArtifacts finds every named artifact concurrently. Results keep the
// order of names; a missing artifact leaves a nil slot and a diagnostic.
func (w *workflow) loadArtifacts(ctx context.Context, dir m.Path, names []string, mode ValidationMode) ([]*m.Artifact, []m.Diagnostic, error) {
	artifacts := make([]*m.Artifact, len(names))

	group, groupCtx := errgroup.WithContext(ctx)

	for i, name := range names {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			artifact, err := w.Find(dir, name)
			if errors.Is(err, adapter.ErrArtifactNotFound) {
				return nil
			}

			if err != nil {
				return fmt.Errorf("load artifact %s: %w", name, err)
			}

			if mode != ValidationLenient {
				if err := ValidateABI(artifact.RawABI); err != nil {
					return fmt.Errorf("%w: %s: %w", ErrMalformedInterface, name, err)
				}
			}

			artifacts[i] = &artifact

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, nil, err
	}

	var diagnostics []m.Diagnostic

	for i, artifact := range artifacts {
		if artifact != nil {
			continue
		}

		slog.Warn("Artifact not found, skipping", "name", names[i], "dir", dir)
		diagnostics = append(diagnostics, m.Diagnostic{
			Kind:    m.DiagnosticMissingArtifact,
			Subject: names[i],
			Message: fmt.Sprintf("no %s.sol/%s.json under %s", names[i], names[i], dir),
		})
	}

	return artifacts, diagnostics, nil
}

// loadRequired finds one artifact that the run cannot do without.
func (w *workflow) loadRequired(dir m.Path, name string, mode ValidationMode) (m.Artifact, error) {
	artifact, err := w.Find(dir, name)
	if err != nil {
		return m.Artifact{}, fmt.Errorf("load artifact %s: %w", name, err)
	}

	if mode != ValidationLenient {
		if err := ValidateABI(artifact.RawABI); err != nil {
			return m.Artifact{}, fmt.Errorf("%w: %s: %w", ErrMalformedInterface, name, err)
		}
	}

	return artifact, nil
}

func newPlanner(args PlanningArgs) CutPlanner {
	return NewCutPlanner(NewSelectorExtractor(ExtractorOptions{
		Mode:         args.Validation,
		Initializers: args.Initializers,
	}))
}

func (w *workflow) saveReport(path m.Path, report any) error {
	if path == "" {
		return nil
	}

	if err := w.SaveReport(path, report); err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	slog.Info("Report saved", "path", path)

	return nil
}
