package domain

import (
	"testing"

	m "diamondkit.dev/pkg/diamondkit/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestPlanDigest(t *testing.T) {
	a := m.CutRecord{FacetName: "A", FacetAddress: addrOf(1), Action: m.CutAdd, Selectors: []m.Selector{sel(sigTransfer)}}
	b := m.CutRecord{FacetName: "B", FacetAddress: addrOf(2), Action: m.CutAdd, Selectors: []m.Selector{sel(sigApprove)}}

	digest := PlanDigest([]m.CutRecord{a, b})
	assert.Len(t, digest, 64)
	assert.Equal(t, digest, PlanDigest([]m.CutRecord{a, b}))

	t.Run("order matters", func(t *testing.T) {
		assert.NotEqual(t, digest, PlanDigest([]m.CutRecord{b, a}))
	})

	t.Run("facet names ignored", func(t *testing.T) {
		renamed := a
		renamed.FacetName = "Renamed"
		assert.Equal(t, digest, PlanDigest([]m.CutRecord{renamed, b}))
	})

	t.Run("action matters", func(t *testing.T) {
		replaced := a
		replaced.Action = m.CutReplace
		assert.NotEqual(t, digest, PlanDigest([]m.CutRecord{replaced, b}))
	})

	t.Run("empty plan", func(t *testing.T) {
		assert.Len(t, PlanDigest(nil), 64)
	})
}
