package domain

import (
	"encoding/json"
	"testing"

	m "diamondkit.dev/pkg/diamondkit/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abiDoc(t *testing.T, name, raw string) m.InterfaceDescription {
	t.Helper()

	var entries []m.ABIEntry
	require.NoError(t, json.Unmarshal([]byte(raw), &entries))

	return m.InterfaceDescription{Name: name, Entries: entries}
}

func TestAbiMerger_Merge(t *testing.T) {
	admin := `[
		{"type":"constructor","inputs":[]},
		{"type":"function","name":"pause","inputs":[],"outputs":[],"stateMutability":"nonpayable"},
		{"type":"event","name":"Paused","inputs":[],"anonymous":false},
		{"type":"error","name":"NotOwner","inputs":[]}
	]`
	income := `[
		{"type":"function","name":"pause","inputs":[{"name":"reason","type":"string"}],"outputs":[],"stateMutability":"nonpayable"},
		{"type":"function","name":"claim","inputs":[],"outputs":[],"stateMutability":"nonpayable"},
		{"type":"receive","stateMutability":"payable"}
	]`

	t.Run("kind-name keeps first occurrence", func(t *testing.T) {
		merged, summary := NewAbiMerger(DedupKindName).Merge([]m.InterfaceDescription{
			abiDoc(t, "AdminFacet", admin),
			abiDoc(t, "IncomeFacet", income),
		})

		names := entryNames(merged)
		assert.Equal(t, []string{"function:pause", "event:Paused", "function:claim"}, names)
		assert.Equal(t, 2, summary.Documents)
		assert.Equal(t, 3, summary.Entries)
		assert.Equal(t, 1, summary.Dropped)
		assert.Equal(t, "kind-name", summary.Policy)
	})

	t.Run("none concatenates", func(t *testing.T) {
		merged, summary := NewAbiMerger(DedupNone).Merge([]m.InterfaceDescription{
			abiDoc(t, "AdminFacet", admin),
			abiDoc(t, "IncomeFacet", income),
		})

		assert.Equal(t, []string{"function:pause", "event:Paused", "function:pause", "function:claim"}, entryNames(merged))
		assert.Zero(t, summary.Dropped)
	})

	t.Run("empty input", func(t *testing.T) {
		merged, summary := NewAbiMerger("").Merge(nil)
		assert.Empty(t, merged.Entries)
		assert.Zero(t, summary.Entries)
	})
}

func TestAbiMerger_Encode(t *testing.T) {
	merger := NewAbiMerger(DedupNone)

	merged, _ := merger.Merge([]m.InterfaceDescription{abiDoc(t, "A", `[
		{"type":"function","name":"pause","inputs":[],"outputs":[],"stateMutability":"nonpayable","custom":"kept"}
	]`)})

	data, err := merger.Encode(merged)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "kept", decoded[0]["custom"])

	empty, err := merger.Encode(m.InterfaceDescription{})
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(empty))
}

func TestParseDedupPolicy(t *testing.T) {
	policy, err := ParseDedupPolicy("")
	require.NoError(t, err)
	assert.Equal(t, DedupKindName, policy)

	policy, err = ParseDedupPolicy("none")
	require.NoError(t, err)
	assert.Equal(t, DedupNone, policy)

	_, err = ParseDedupPolicy("signature")
	assert.Error(t, err)
}

func entryNames(doc m.InterfaceDescription) []string {
	names := make([]string, 0, len(doc.Entries))
	for _, e := range doc.Entries {
		names = append(names, e.Type+":"+e.Name)
	}

	return names
}
