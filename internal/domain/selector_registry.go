package domain

import (
	m "diamondkit.dev/pkg/diamondkit/internal/model"
)

// SelectorRegistry assigns each selector to the first facet that claims it.
// A registry lives for one planning run.
type SelectorRegistry struct {
	owners map[m.Selector]string
	order  []m.SelectorOwnership
}

// NewSelectorRegistry returns an empty registry.
func NewSelectorRegistry() *SelectorRegistry {
	return &SelectorRegistry{owners: map[m.Selector]string{}}
}

// Claim records every unowned selector for facet and returns them in input
// order. Selectors already owned, including repeats within selectors itself,
// come back as collisions.
func (r *SelectorRegistry) Claim(facet string, selectors []m.Selector) ([]m.Selector, []m.Collision) {
	accepted := make([]m.Selector, 0, len(selectors))

	var collisions []m.Collision

	for _, sel := range selectors {
		if owner, taken := r.owners[sel]; taken {
			collisions = append(collisions, m.Collision{Facet: facet, Selector: sel, Owner: owner})
			continue
		}

		r.owners[sel] = facet
		r.order = append(r.order, m.SelectorOwnership{Selector: sel, Facet: facet})
		accepted = append(accepted, sel)
	}

	return accepted, collisions
}

// Owner returns the facet that owns sel.
func (r *SelectorRegistry) Owner(sel m.Selector) (string, bool) {
	owner, ok := r.owners[sel]
	return owner, ok
}

// Ownership returns every claim in the order it was made.
func (r *SelectorRegistry) Ownership() []m.SelectorOwnership {
	return append([]m.SelectorOwnership(nil), r.order...)
}

// Len returns the number of owned selectors.
func (r *SelectorRegistry) Len() int {
	return len(r.order)
}
