package domain

import (
	"context"
	"fmt"
	"log/slog"

	"diamondkit.dev/pkg/diamondkit/internal/adapter"
	"diamondkit.dev/pkg/diamondkit/internal/controller"
	m "diamondkit.dev/pkg/diamondkit/internal/model"
	"github.com/ethereum/go-ethereum/common"
)

// diamondCutSignature is routed to the cut facet; upgrades never remove it.
const diamondCutSignature = "diamondCut((address,uint8,bytes4[])[],address,bytes)"

func validateNetwork(args NetworkArgs, needKey bool) error {
	switch {
	case args.Network == "":
		return fmt.Errorf("%w: network name", ErrMissingConfig)
	case args.Chain.RPCURL == "":
		return fmt.Errorf("%w: rpc url for network %s", ErrMissingConfig, args.Network)
	case needKey && args.Chain.PrivateKey == "":
		return fmt.Errorf("%w: private key for network %s", ErrMissingConfig, args.Network)
	}

	return nil
}

// Deploy deploys the cut facet, every facet and the diamond, then records the
// addresses in the env file.
func (w *workflow) Deploy(ctx context.Context, args DeployArgs) error {
	if err := validateNetwork(args.NetworkArgs, true); err != nil {
		return err
	}

	if args.CutFacet == "" || args.Diamond == "" {
		return fmt.Errorf("%w: cut facet and diamond contract names", ErrMissingConfig)
	}

	mode, err := ParseConstructorMode(string(args.Constructor))
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithStreamMode(fmt.Sprintf("Deploying %s to %s", args.Diamond, args.Network))); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	cutArtifact, err := w.loadRequired(args.ArtifactsDir, args.CutFacet, args.Validation)
	if err != nil {
		return err
	}

	diamondArtifact, err := w.loadRequired(args.ArtifactsDir, args.Diamond, args.Validation)
	if err != nil {
		return err
	}

	artifacts, diagnostics, err := w.loadArtifacts(ctx, args.ArtifactsDir, args.Facets, args.Validation)
	if err != nil {
		return err
	}

	w.DisplayDiagnostics(ctx, diagnostics)

	chain, err := w.dial(ctx, args.Chain)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", args.Network, err)
	}
	defer closeChain(chain)

	report := m.DeploymentReport{Network: args.Network, Diagnostics: diagnostics}

	cutFacet, err := w.deployArtifact(ctx, chain, cutArtifact)
	if err != nil {
		return err
	}

	report.CutFacet = &cutFacet

	facets, deployed, err := w.deployFacets(ctx, chain, artifacts)
	if err != nil {
		return err
	}

	report.Facets = deployed

	plan, err := newPlanner(args.PlanningArgs).Plan(facets, m.CutAdd)
	if err != nil {
		return fmt.Errorf("plan cut: %w", err)
	}

	w.DisplayDiagnostics(ctx, plan.Diagnostics)
	report.Diagnostics = append(report.Diagnostics, plan.Diagnostics...)
	report.Plan = plan

	if err := w.deployDiamond(ctx, chain, diamondArtifact, cutFacet.Address, mode, &report); err != nil {
		return err
	}

	if err := w.saveAddresses(args.NetworkArgs, &report); err != nil {
		return err
	}

	if err := w.DisplayDeployment(ctx, report); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	if err := w.saveReport(args.Report, report); err != nil {
		return err
	}

	w.Wait(ctx)

	return nil
}

// Upgrade deploys the named facets and applies the difference against the
// diamond's current routing in one diamondCut transaction.
func (w *workflow) Upgrade(ctx context.Context, args UpgradeArgs) error {
	if err := validateNetwork(args.NetworkArgs, true); err != nil {
		return err
	}

	diamond, err := w.diamondAddress(args.NetworkArgs, args.Diamond)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithStreamMode(fmt.Sprintf("Upgrading diamond %s on %s", diamond.Hex(), args.Network))); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	artifacts, diagnostics, err := w.loadArtifacts(ctx, args.ArtifactsDir, args.Facets, args.Validation)
	if err != nil {
		return err
	}

	w.DisplayDiagnostics(ctx, diagnostics)

	chain, err := w.dial(ctx, args.Chain)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", args.Network, err)
	}
	defer closeChain(chain)

	current, err := readFacets(ctx, chain, diamond)
	if err != nil {
		return err
	}

	facets, deployed, err := w.deployFacets(ctx, chain, artifacts)
	if err != nil {
		return err
	}

	plan, err := newPlanner(args.PlanningArgs).PlanUpgrade(current, facets, UpgradeOptions{
		RemoveStale: args.RemoveStale,
		Protected:   protectedAddresses(current, diamond),
	})
	if err != nil {
		return fmt.Errorf("plan upgrade: %w", err)
	}

	w.DisplayDiagnostics(ctx, plan.Diagnostics)

	report := m.DeploymentReport{
		Network:     args.Network,
		Diamond:     diamond,
		Facets:      deployed,
		Plan:        plan,
		Diagnostics: append(diagnostics, plan.Diagnostics...),
	}

	if len(plan.Records) == 0 {
		w.DisplayProgress(ctx, "Diamond already routes every selector, nothing to cut")
	} else {
		data, err := EncodeDiamondCut(plan.Records, args.Init, args.Calldata)
		if err != nil {
			return err
		}

		w.DisplayProgress(ctx, fmt.Sprintf("Sending diamondCut with %d records", len(plan.Records)))

		report.CutTx, err = chain.Transact(ctx, diamond, data)
		if err != nil {
			return fmt.Errorf("diamondCut: %w", err)
		}
	}

	for _, record := range plan.Records {
		if record.Action == m.CutRemove {
			continue
		}

		key := adapter.AddressKey(record.FacetName, args.Network)
		if err := w.Upsert(args.EnvFile, key, record.FacetAddress.Hex()); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}

		report.SavedKeys = append(report.SavedKeys, key)
	}

	if err := w.DisplayDeployment(ctx, report); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	if err := w.saveReport(args.Report, report); err != nil {
		return err
	}

	w.Wait(ctx)

	return nil
}

// Facets prints the facets and selectors the diamond's loupe reports.
func (w *workflow) Facets(ctx context.Context, args FacetsArgs) error {
	if err := validateNetwork(args.NetworkArgs, false); err != nil {
		return err
	}

	diamond, err := w.diamondAddress(args.NetworkArgs, args.Diamond)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithReportMode("Diamond facets")); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	chain, err := w.dial(ctx, args.Chain)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", args.Network, err)
	}
	defer closeChain(chain)

	facets, err := readFacets(ctx, chain, diamond)
	if err != nil {
		return err
	}

	if err := w.DisplayLoupe(ctx, diamond, facets); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return nil
}

func (w *workflow) diamondAddress(args NetworkArgs, explicit common.Address) (common.Address, error) {
	if explicit != (common.Address{}) {
		return explicit, nil
	}

	key := adapter.DiamondAddressKey(args.Network)

	value, ok, err := w.Get(args.EnvFile, key)
	if err != nil {
		return common.Address{}, fmt.Errorf("read %s: %w", args.EnvFile, err)
	}

	if !ok || !common.IsHexAddress(value) {
		return common.Address{}, fmt.Errorf("%w: %s", ErrMissingConfig, key)
	}

	return common.HexToAddress(value), nil
}

func (w *workflow) deployArtifact(ctx context.Context, chain adapter.ChainAdapter, artifact m.Artifact, args ...any) (m.DeployResult, error) {
	data, err := DeployData(artifact, args...)
	if err != nil {
		return m.DeployResult{}, err
	}

	w.DisplayProgress(ctx, fmt.Sprintf("Deploying %s...", artifact.ContractName))

	result, err := chain.Deploy(ctx, artifact.ContractName, data)
	if err != nil {
		return m.DeployResult{}, err
	}

	slog.Info("Contract deployed", "name", result.Name, "address", result.Address.Hex())
	w.DisplayProgress(ctx, fmt.Sprintf("%s deployed: %s", result.Name, result.Address.Hex()))

	return result, nil
}

// deployFacets deploys the loaded artifacts in order, skipping nil slots.
func (w *workflow) deployFacets(ctx context.Context, chain adapter.ChainAdapter, artifacts []*m.Artifact) ([]m.Facet, []m.DeployResult, error) {
	facets := make([]m.Facet, 0, len(artifacts))
	deployed := make([]m.DeployResult, 0, len(artifacts))

	for _, artifact := range artifacts {
		if artifact == nil {
			continue
		}

		result, err := w.deployArtifact(ctx, chain, *artifact)
		if err != nil {
			return nil, nil, err
		}

		deployed = append(deployed, result)
		facets = append(facets, m.Facet{
			Name:      artifact.ContractName,
			Address:   result.Address,
			Interface: FacetInterfaceFromABI(artifact.ABI),
		})
	}

	return facets, deployed, nil
}

func (w *workflow) deployDiamond(
	ctx context.Context,
	chain adapter.ChainAdapter,
	artifact m.Artifact,
	cutFacet common.Address,
	mode ConstructorMode,
	report *m.DeploymentReport,
) error {
	if mode == ConstructorCut {
		result, err := w.deployArtifact(ctx, chain, artifact, FacetCuts(report.Plan.Records))
		if err != nil {
			return err
		}

		report.Diamond = result.Address
		report.CutTx = result.TxHash

		return nil
	}

	result, err := w.deployArtifact(ctx, chain, artifact, chain.Address(), cutFacet)
	if err != nil {
		return err
	}

	report.Diamond = result.Address

	if len(report.Plan.Records) == 0 {
		return nil
	}

	data, err := EncodeDiamondCut(report.Plan.Records, common.Address{}, nil)
	if err != nil {
		return err
	}

	w.DisplayProgress(ctx, fmt.Sprintf("Sending diamondCut with %d records", len(report.Plan.Records)))

	report.CutTx, err = chain.Transact(ctx, result.Address, data)
	if err != nil {
		return fmt.Errorf("diamondCut: %w", err)
	}

	return nil
}

// saveAddresses writes every planned facet, the cut facet and the diamond.
func (w *workflow) saveAddresses(args NetworkArgs, report *m.DeploymentReport) error {
	type entry struct {
		key     string
		address common.Address
	}

	entries := make([]entry, 0, len(report.Plan.Records)+2)
	for _, record := range report.Plan.Records {
		entries = append(entries, entry{adapter.AddressKey(record.FacetName, args.Network), record.FacetAddress})
	}

	if report.CutFacet != nil {
		entries = append(entries, entry{adapter.AddressKey(report.CutFacet.Name, args.Network), report.CutFacet.Address})
	}

	entries = append(entries, entry{adapter.DiamondAddressKey(args.Network), report.Diamond})

	for _, e := range entries {
		if err := w.Upsert(args.EnvFile, e.key, e.address.Hex()); err != nil {
			return fmt.Errorf("save %s: %w", e.key, err)
		}

		report.SavedKeys = append(report.SavedKeys, e.key)
	}

	slog.Info("Addresses saved", "file", args.EnvFile, "keys", len(entries))

	return nil
}

func readFacets(ctx context.Context, chain adapter.ChainAdapter, diamond common.Address) ([]m.LoupeFacet, error) {
	data, err := EncodeFacetsCall()
	if err != nil {
		return nil, err
	}

	output, err := chain.Call(ctx, diamond, data)
	if err != nil {
		return nil, fmt.Errorf("read facets of %s: %w", diamond.Hex(), err)
	}

	return DecodeFacets(output)
}

// protectedAddresses keeps the diamond and whichever facet routes diamondCut
// out of stale-selector removal.
func protectedAddresses(current []m.LoupeFacet, diamond common.Address) []common.Address {
	protected := []common.Address{diamond}
	cut := SelectorOf(diamondCutSignature)

	for _, facet := range current {
		for _, sel := range facet.Selectors {
			if sel == cut {
				protected = append(protected, facet.Address)
			}
		}
	}

	return protected
}

func closeChain(chain adapter.ChainAdapter) {
	if err := chain.Close(); err != nil {
		slog.Warn("Failed to close chain client", "error", err)
	}
}
