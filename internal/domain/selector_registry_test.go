package domain

import (
	"testing"

	m "diamondkit.dev/pkg/diamondkit/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestSelectorRegistry_Claim(t *testing.T) {
	s1 := m.Selector{0, 0, 0, 1}
	s2 := m.Selector{0, 0, 0, 2}
	s3 := m.Selector{0, 0, 0, 3}

	t.Run("first seen wins", func(t *testing.T) {
		registry := NewSelectorRegistry()

		accepted, collisions := registry.Claim("A", []m.Selector{s1, s2})
		assert.Equal(t, []m.Selector{s1, s2}, accepted)
		assert.Empty(t, collisions)

		accepted, collisions = registry.Claim("B", []m.Selector{s2, s3})
		assert.Equal(t, []m.Selector{s3}, accepted)
		assert.Equal(t, []m.Collision{{Facet: "B", Selector: s2, Owner: "A"}}, collisions)

		owner, ok := registry.Owner(s2)
		assert.True(t, ok)
		assert.Equal(t, "A", owner)
		assert.Equal(t, 3, registry.Len())
		assert.Equal(t, []m.SelectorOwnership{
			{Selector: s1, Facet: "A"},
			{Selector: s2, Facet: "A"},
			{Selector: s3, Facet: "B"},
		}, registry.Ownership())
	})

	t.Run("repeat within one facet collides with itself", func(t *testing.T) {
		registry := NewSelectorRegistry()

		accepted, collisions := registry.Claim("A", []m.Selector{s1, s1})
		assert.Equal(t, []m.Selector{s1}, accepted)
		assert.Equal(t, []m.Collision{{Facet: "A", Selector: s1, Owner: "A"}}, collisions)
	})

	t.Run("accepted selectors are unique across facets", func(t *testing.T) {
		registry := NewSelectorRegistry()
		seen := map[m.Selector]bool{}

		for _, claim := range [][]m.Selector{{s1, s2}, {s2, s3, s1}, {s3}} {
			accepted, _ := registry.Claim("F", claim)
			for _, sel := range accepted {
				assert.False(t, seen[sel], "selector %s accepted twice", sel)
				seen[sel] = true
			}
		}
	})

	t.Run("unknown selector has no owner", func(t *testing.T) {
		_, ok := NewSelectorRegistry().Owner(s1)
		assert.False(t, ok)
	})
}
