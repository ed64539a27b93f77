package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	m "diamondkit.dev/pkg/diamondkit/internal/model"
)

// DedupPolicy selects how AbiMerger handles repeated entries.
type DedupPolicy string

const (
	// DedupKindName keeps the first entry for each (type, name) pair.
	DedupKindName DedupPolicy = "kind-name"
	// DedupNone concatenates entries unchanged.
	DedupNone DedupPolicy = "none"
)

// ParseDedupPolicy accepts "kind-name" or "none"; empty means kind-name.
func ParseDedupPolicy(value string) (DedupPolicy, error) {
	switch DedupPolicy(strings.ToLower(strings.TrimSpace(value))) {
	case DedupKindName, "":
		return DedupKindName, nil
	case DedupNone:
		return DedupNone, nil
	}

	return DedupKindName, fmt.Errorf("unknown dedup policy %q", value)
}

// AbiMerger combines several interface descriptions into one.
type AbiMerger interface {
	Merge(documents []m.InterfaceDescription) (m.InterfaceDescription, m.MergeSummary)
	Encode(merged m.InterfaceDescription) ([]byte, error)
}

type abiMerger struct {
	policy DedupPolicy
}

// NewAbiMerger returns a merger using policy.
func NewAbiMerger(policy DedupPolicy) AbiMerger {
	if policy == "" {
		policy = DedupKindName
	}

	return &abiMerger{policy: policy}
}

// Merge keeps function and event entries in input order. Under kind-name
// dedup, overloads after the first are dropped and counted.
func (a *abiMerger) Merge(documents []m.InterfaceDescription) (m.InterfaceDescription, m.MergeSummary) {
	merged := m.InterfaceDescription{Entries: []m.ABIEntry{}}
	summary := m.MergeSummary{Documents: len(documents), Policy: string(a.policy)}
	seen := map[string]struct{}{}

	for _, doc := range documents {
		for _, entry := range doc.Entries {
			if entry.Type != "function" && entry.Type != "event" {
				continue
			}

			if a.policy == DedupKindName {
				key := entry.Type + ":" + entry.Name
				if _, dup := seen[key]; dup {
					summary.Dropped++
					continue
				}

				seen[key] = struct{}{}
			}

			merged.Entries = append(merged.Entries, entry)
		}
	}

	summary.Entries = len(merged.Entries)

	return merged, summary
}

// Encode renders merged as an indented JSON array and checks that it parses
// as a contract ABI.
func (a *abiMerger) Encode(merged m.InterfaceDescription) ([]byte, error) {
	entries := merged.Entries
	if entries == nil {
		entries = []m.ABIEntry{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode merged abi: %w", err)
	}

	if err := ValidateABI(data); err != nil {
		return nil, err
	}

	return append(data, '\n'), nil
}
