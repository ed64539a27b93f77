package domain

import (
	"encoding/hex"

	m "diamondkit.dev/pkg/diamondkit/internal/model"
	"lukechampine.com/blake3"
)

// PlanDigest fingerprints the ordered cut records so two plans can be
// compared without diffing them. Facet names are not part of the digest.
func PlanDigest(records []m.CutRecord) string {
	h := blake3.New(32, nil)

	for _, record := range records {
		_, _ = h.Write(record.FacetAddress.Bytes())
		_, _ = h.Write([]byte{byte(record.Action), byte(len(record.Selectors) >> 8), byte(len(record.Selectors))})

		for _, sel := range record.Selectors {
			_, _ = h.Write(sel[:])
		}
	}

	return hex.EncodeToString(h.Sum(nil))
}
