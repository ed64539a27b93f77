package domain

import (
	"fmt"
	"log/slog"

	m "diamondkit.dev/pkg/diamondkit/internal/model"
	"github.com/ethereum/go-ethereum/common"
)

// UpgradeOptions tunes PlanUpgrade.
type UpgradeOptions struct {
	// RemoveStale emits a trailing Remove record for routed selectors that no
	// facet claims any more.
	RemoveStale bool
	// Protected addresses never lose selectors to RemoveStale.
	Protected []common.Address
}

// CutPlanner assembles diamondCut batches from facets.
type CutPlanner interface {
	Plan(facets []m.Facet, action m.CutAction) (m.CutPlan, error)
	PlanUpgrade(current []m.LoupeFacet, facets []m.Facet, opts UpgradeOptions) (m.CutPlan, error)
}

type cutPlanner struct {
	SelectorExtractor
}

// NewCutPlanner returns a planner that extracts selectors with extractor.
func NewCutPlanner(extractor SelectorExtractor) CutPlanner {
	return &cutPlanner{SelectorExtractor: extractor}
}

// Plan walks facets in order with a fresh registry. Each facet with at least
// one unique selector yields a record; the rest land in Skipped. A facet whose
// non-zero address already has a record is folded into it. Remove records
// always carry the zero address and therefore share one record.
// One record per address holds for deployed addresses only: an offline plan
// of undeployed (zero-address) facets keeps one record per facet.
func (p *cutPlanner) Plan(facets []m.Facet, action m.CutAction) (m.CutPlan, error) {
	plan := m.CutPlan{Action: action, Records: []m.CutRecord{}}
	registry := NewSelectorRegistry()
	byAddress := map[common.Address]int{}

	for _, facet := range facets {
		accepted, err := p.claim(registry, &plan, facet)
		if err != nil {
			return m.CutPlan{}, err
		}

		if len(accepted) == 0 {
			skipFacet(&plan, facet.Name)
			continue
		}

		address := facet.Address
		if action == m.CutRemove {
			address = common.Address{}
		}

		foldable := action == m.CutRemove || address != (common.Address{})
		if idx, ok := byAddress[address]; ok && foldable {
			mergeInto(&plan, idx, facet.Name, accepted)
			continue
		}

		if foldable {
			byAddress[address] = len(plan.Records)
		}

		plan.Records = append(plan.Records, m.CutRecord{
			FacetName:    facet.Name,
			FacetAddress: address,
			Action:       action,
			Selectors:    accepted,
		})
	}

	plan.Ownership = registry.Ownership()
	plan.Digest = PlanDigest(plan.Records)

	return plan, nil
}

// PlanUpgrade diffs the desired routing against what the diamond reports via
// its loupe. New selectors are added, selectors routed elsewhere are
// replaced, and selectors already on the right address are left alone.
func (p *cutPlanner) PlanUpgrade(current []m.LoupeFacet, facets []m.Facet, opts UpgradeOptions) (m.CutPlan, error) {
	plan := m.CutPlan{Action: m.CutAdd, Records: []m.CutRecord{}}
	registry := NewSelectorRegistry()

	routed := map[m.Selector]common.Address{}
	for _, lf := range current {
		for _, sel := range lf.Selectors {
			routed[sel] = lf.Address
		}
	}

	type recordKey struct {
		address common.Address
		action  m.CutAction
	}

	byKey := map[recordKey]int{}
	desired := map[m.Selector]struct{}{}

	for _, facet := range facets {
		accepted, err := p.claim(registry, &plan, facet)
		if err != nil {
			return m.CutPlan{}, err
		}

		if len(accepted) == 0 {
			skipFacet(&plan, facet.Name)
			continue
		}

		var adds, replaces []m.Selector

		for _, sel := range accepted {
			desired[sel] = struct{}{}

			owner, ok := routed[sel]

			switch {
			case !ok:
				adds = append(adds, sel)
			case owner != facet.Address:
				replaces = append(replaces, sel)
			}
		}

		if len(adds) == 0 && len(replaces) == 0 {
			slog.Debug("Facet already routed", "facet", facet.Name, "address", facet.Address.Hex())
		}

		for _, group := range []struct {
			action    m.CutAction
			selectors []m.Selector
		}{{m.CutAdd, adds}, {m.CutReplace, replaces}} {
			if len(group.selectors) == 0 {
				continue
			}

			key := recordKey{address: facet.Address, action: group.action}
			if idx, ok := byKey[key]; ok {
				mergeInto(&plan, idx, facet.Name, group.selectors)
				continue
			}

			byKey[key] = len(plan.Records)
			plan.Records = append(plan.Records, m.CutRecord{
				FacetName:    facet.Name,
				FacetAddress: facet.Address,
				Action:       group.action,
				Selectors:    group.selectors,
			})
		}
	}

	if opts.RemoveStale {
		if stale := staleSelectors(current, desired, opts.Protected); len(stale) > 0 {
			plan.Records = append(plan.Records, m.CutRecord{
				FacetName: "stale",
				Action:    m.CutRemove,
				Selectors: stale,
			})
		}
	}

	plan.Ownership = registry.Ownership()
	plan.Digest = PlanDigest(plan.Records)

	return plan, nil
}

func (p *cutPlanner) claim(registry *SelectorRegistry, plan *m.CutPlan, facet m.Facet) ([]m.Selector, error) {
	selectors, err := p.Extract(facet.Interface)
	if err != nil {
		return nil, fmt.Errorf("extract selectors for %s: %w", facet.Name, err)
	}

	accepted, collisions := registry.Claim(facet.Name, selectors)
	for _, c := range collisions {
		slog.Warn("Skipping duplicate selector", "facet", c.Facet, "selector", c.Selector.String(), "owner", c.Owner)

		plan.Collisions = append(plan.Collisions, c)
		plan.Diagnostics = append(plan.Diagnostics, m.Diagnostic{
			Kind:    m.DiagnosticCollision,
			Subject: c.Facet,
			Message: fmt.Sprintf("selector %s already owned by %s", c.Selector, c.Owner),
		})
	}

	return accepted, nil
}

func skipFacet(plan *m.CutPlan, name string) {
	slog.Warn("Skipping facet with no unique selectors", "facet", name)

	plan.Skipped = append(plan.Skipped, name)
	plan.Diagnostics = append(plan.Diagnostics, m.Diagnostic{
		Kind:    m.DiagnosticSkippedFacet,
		Subject: name,
		Message: "no unique selectors",
	})
}

func mergeInto(plan *m.CutPlan, idx int, facet string, selectors []m.Selector) {
	record := &plan.Records[idx]

	slog.Warn("Merging facet into existing cut record", "facet", facet, "into", record.FacetName, "address", record.FacetAddress.Hex())

	record.Selectors = append(record.Selectors, selectors...)
	plan.Diagnostics = append(plan.Diagnostics, m.Diagnostic{
		Kind:    m.DiagnosticMergedFacet,
		Subject: facet,
		Message: fmt.Sprintf("address %s already cut as %s", record.FacetAddress.Hex(), record.FacetName),
	})
}

func staleSelectors(current []m.LoupeFacet, desired map[m.Selector]struct{}, protected []common.Address) []m.Selector {
	keep := make(map[common.Address]struct{}, len(protected))
	for _, addr := range protected {
		keep[addr] = struct{}{}
	}

	var stale []m.Selector

	for _, lf := range current {
		if _, ok := keep[lf.Address]; ok {
			continue
		}

		for _, sel := range lf.Selectors {
			if _, ok := desired[sel]; !ok {
				stale = append(stale, sel)
			}
		}
	}

	return stale
}
