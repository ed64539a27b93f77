package domain

import (
	"testing"

	m "diamondkit.dev/pkg/diamondkit/internal/model"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sigTransfer    = "transfer(address,uint256)"
	sigBalanceOf   = "balanceOf(address)"
	sigApprove     = "approve(address,uint256)"
	sigOwner       = "owner()"
	sigTotalSupply = "totalSupply()"
)

func newTestPlanner() CutPlanner {
	return NewCutPlanner(NewSelectorExtractor(ExtractorOptions{}))
}

func TestCutPlanner_Plan(t *testing.T) {
	t.Run("disjoint facets keep everything", func(t *testing.T) {
		plan, err := newTestPlanner().Plan([]m.Facet{
			facetOf("A", 1, sigTransfer, sigBalanceOf),
			facetOf("B", 2, sigOwner),
		}, m.CutAdd)
		require.NoError(t, err)

		require.Len(t, plan.Records, 2)
		assert.Equal(t, sels(sigTransfer, sigBalanceOf), plan.Records[0].Selectors)
		assert.Equal(t, sels(sigOwner), plan.Records[1].Selectors)
		assert.Empty(t, plan.Collisions)
		assert.Empty(t, plan.Skipped)
		assert.Equal(t, 3, plan.SelectorCount())
	})

	t.Run("partial overlap keeps first owner", func(t *testing.T) {
		plan, err := newTestPlanner().Plan([]m.Facet{
			facetOf("A", 1, sigTransfer, sigBalanceOf),
			facetOf("B", 2, sigBalanceOf, sigApprove),
		}, m.CutAdd)
		require.NoError(t, err)

		assert.Equal(t, []m.CutRecord{
			{FacetName: "A", FacetAddress: addrOf(1), Action: m.CutAdd, Selectors: sels(sigTransfer, sigBalanceOf)},
			{FacetName: "B", FacetAddress: addrOf(2), Action: m.CutAdd, Selectors: sels(sigApprove)},
		}, plan.Records)
		assert.Equal(t, []m.Collision{{Facet: "B", Selector: sel(sigBalanceOf), Owner: "A"}}, plan.Collisions)
		require.Len(t, plan.Diagnostics, 1)
		assert.Equal(t, m.DiagnosticCollision, plan.Diagnostics[0].Kind)
	})

	t.Run("fully shadowed facet is skipped", func(t *testing.T) {
		plan, err := newTestPlanner().Plan([]m.Facet{
			facetOf("A", 1, sigTransfer),
			facetOf("B", 2, sigTransfer),
		}, m.CutAdd)
		require.NoError(t, err)

		assert.Equal(t, []m.CutRecord{
			{FacetName: "A", FacetAddress: addrOf(1), Action: m.CutAdd, Selectors: sels(sigTransfer)},
		}, plan.Records)
		assert.Equal(t, []string{"B"}, plan.Skipped)
		assert.Equal(t, []m.Collision{{Facet: "B", Selector: sel(sigTransfer), Owner: "A"}}, plan.Collisions)
	})

	t.Run("order decides ownership", func(t *testing.T) {
		a := facetOf("A", 1, sigTransfer, sigOwner)
		b := facetOf("B", 2, sigTransfer, sigApprove)

		forward, err := newTestPlanner().Plan([]m.Facet{a, b}, m.CutAdd)
		require.NoError(t, err)
		backward, err := newTestPlanner().Plan([]m.Facet{b, a}, m.CutAdd)
		require.NoError(t, err)

		assert.Equal(t, "A", ownerOf(forward, sel(sigTransfer)))
		assert.Equal(t, "B", ownerOf(backward, sel(sigTransfer)))
		assert.NotEqual(t, forward.Digest, backward.Digest)
	})

	t.Run("no selector appears twice", func(t *testing.T) {
		plan, err := newTestPlanner().Plan([]m.Facet{
			facetOf("A", 1, sigTransfer, sigBalanceOf),
			facetOf("B", 2, sigBalanceOf, sigApprove, sigOwner),
			facetOf("C", 3, sigOwner, sigTransfer, sigTotalSupply),
		}, m.CutAdd)
		require.NoError(t, err)

		seen := map[m.Selector]bool{}
		for _, record := range plan.Records {
			assert.NotEmpty(t, record.Selectors)
			for _, s := range record.Selectors {
				assert.False(t, seen[s])
				seen[s] = true
			}
		}
		assert.Len(t, seen, 5)
		assert.Len(t, plan.Ownership, 5)
	})

	t.Run("initializer is never routed", func(t *testing.T) {
		plan, err := newTestPlanner().Plan([]m.Facet{facetOf("A", 1, "init(address)", sigOwner)}, m.CutAdd)
		require.NoError(t, err)

		require.Len(t, plan.Records, 1)
		assert.Equal(t, sels(sigOwner), plan.Records[0].Selectors)
	})

	t.Run("facet with only an initializer is skipped", func(t *testing.T) {
		plan, err := newTestPlanner().Plan([]m.Facet{facetOf("Init", 1, "init(address)")}, m.CutAdd)
		require.NoError(t, err)

		assert.Empty(t, plan.Records)
		assert.Equal(t, []string{"Init"}, plan.Skipped)
	})

	t.Run("same address folds into one record", func(t *testing.T) {
		plan, err := newTestPlanner().Plan([]m.Facet{
			facetOf("A", 1, sigTransfer),
			facetOf("B", 2, sigOwner),
			facetOf("A2", 1, sigApprove),
		}, m.CutAdd)
		require.NoError(t, err)

		require.Len(t, plan.Records, 2)
		assert.Equal(t, sels(sigTransfer, sigApprove), plan.Records[0].Selectors)
		assert.Equal(t, m.DiagnosticMergedFacet, plan.Diagnostics[len(plan.Diagnostics)-1].Kind)
	})

	t.Run("zero addresses stay separate", func(t *testing.T) {
		plan, err := newTestPlanner().Plan([]m.Facet{
			{Name: "A", Interface: ifaceOf(sigTransfer)},
			{Name: "B", Interface: ifaceOf(sigOwner)},
		}, m.CutAdd)
		require.NoError(t, err)

		assert.Len(t, plan.Records, 2)
	})

	t.Run("remove uses the zero address", func(t *testing.T) {
		plan, err := newTestPlanner().Plan([]m.Facet{
			facetOf("A", 1, sigTransfer),
			facetOf("B", 2, sigOwner),
		}, m.CutRemove)
		require.NoError(t, err)

		require.Len(t, plan.Records, 1)
		assert.Equal(t, common.Address{}, plan.Records[0].FacetAddress)
		assert.Equal(t, m.CutRemove, plan.Records[0].Action)
		assert.Equal(t, sels(sigTransfer, sigOwner), plan.Records[0].Selectors)
	})

	t.Run("malformed facet aborts", func(t *testing.T) {
		_, err := newTestPlanner().Plan([]m.Facet{
			facetOf("A", 1, sigTransfer),
			{Name: "Broken", Address: addrOf(2)},
		}, m.CutAdd)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedInterface)
		assert.Contains(t, err.Error(), "Broken")
	})

	t.Run("empty input", func(t *testing.T) {
		plan, err := newTestPlanner().Plan(nil, m.CutAdd)
		require.NoError(t, err)
		assert.Empty(t, plan.Records)
		assert.NotEmpty(t, plan.Digest)
	})

	t.Run("digest is stable", func(t *testing.T) {
		facets := []m.Facet{facetOf("A", 1, sigTransfer), facetOf("B", 2, sigOwner)}

		first, err := newTestPlanner().Plan(facets, m.CutAdd)
		require.NoError(t, err)
		second, err := newTestPlanner().Plan(facets, m.CutAdd)
		require.NoError(t, err)

		assert.Equal(t, first.Digest, second.Digest)
		assert.Len(t, first.Digest, 64)
	})
}

func TestCutPlanner_PlanUpgrade(t *testing.T) {
	cutFacet := addrOf(0xc0)
	oldFacet := addrOf(0x10)
	newFacet := addrOf(0x20)

	current := []m.LoupeFacet{
		{Address: cutFacet, Selectors: sels("diamondCut((address,uint8,bytes4[])[],address,bytes)")},
		{Address: oldFacet, Selectors: sels(sigTransfer, sigBalanceOf, sigTotalSupply)},
	}

	t.Run("adds and replaces", func(t *testing.T) {
		plan, err := newTestPlanner().PlanUpgrade(current, []m.Facet{
			{Name: "Token", Address: newFacet, Interface: ifaceOf(sigTransfer, sigApprove)},
			{Name: "Keep", Address: oldFacet, Interface: ifaceOf(sigBalanceOf)},
		}, UpgradeOptions{})
		require.NoError(t, err)

		assert.Equal(t, []m.CutRecord{
			{FacetName: "Token", FacetAddress: newFacet, Action: m.CutAdd, Selectors: sels(sigApprove)},
			{FacetName: "Token", FacetAddress: newFacet, Action: m.CutReplace, Selectors: sels(sigTransfer)},
		}, plan.Records)
	})

	t.Run("remove stale skips protected", func(t *testing.T) {
		plan, err := newTestPlanner().PlanUpgrade(current, []m.Facet{
			{Name: "Token", Address: newFacet, Interface: ifaceOf(sigTransfer)},
		}, UpgradeOptions{RemoveStale: true, Protected: []common.Address{cutFacet}})
		require.NoError(t, err)

		require.Len(t, plan.Records, 2)
		assert.Equal(t, m.CutReplace, plan.Records[0].Action)

		last := plan.Records[1]
		assert.Equal(t, m.CutRemove, last.Action)
		assert.Equal(t, common.Address{}, last.FacetAddress)
		assert.Equal(t, sels(sigBalanceOf, sigTotalSupply), last.Selectors)
	})

	t.Run("nothing to do", func(t *testing.T) {
		plan, err := newTestPlanner().PlanUpgrade(current, []m.Facet{
			{Name: "Old", Address: oldFacet, Interface: ifaceOf(sigTransfer, sigBalanceOf)},
		}, UpgradeOptions{})
		require.NoError(t, err)

		assert.Empty(t, plan.Records)
		assert.Empty(t, plan.Skipped)
	})

	t.Run("loupe facet on fresh diamond", func(t *testing.T) {
		plan, err := newTestPlanner().PlanUpgrade(current[:1], []m.Facet{
			{Name: "DiamondLoupeFacet", Address: newFacet, Interface: ifaceOf("facets()", "facetAddresses()")},
		}, UpgradeOptions{})
		require.NoError(t, err)

		require.Len(t, plan.Records, 1)
		assert.Equal(t, m.CutAdd, plan.Records[0].Action)
		assert.Equal(t, sels("facets()", "facetAddresses()"), plan.Records[0].Selectors)
	})
}

func ownerOf(plan m.CutPlan, s m.Selector) string {
	for _, o := range plan.Ownership {
		if o.Selector == s {
			return o.Facet
		}
	}

	return ""
}
