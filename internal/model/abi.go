package model

import (
	"encoding/json"
	"fmt"
)

// ABIEntry is one element of a compiler-produced interface description. The
// original JSON is kept so merged documents re-emit entries unchanged.
type ABIEntry struct {
	Type   string
	Name   string
	Inputs []ABIParam
	Raw    json.RawMessage
}

// ABIParam is a function or event parameter; Components is set for tuples.
type ABIParam struct {
	Name         string     `json:"name"`
	Type         string     `json:"type"`
	InternalType string     `json:"internalType,omitempty"`
	Components   []ABIParam `json:"components,omitempty"`
}

type abiEntryFields struct {
	Type   string     `json:"type"`
	Name   string     `json:"name"`
	Inputs []ABIParam `json:"inputs"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *ABIEntry) UnmarshalJSON(data []byte) error {
	var fields abiEntryFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("decode abi entry: %w", err)
	}

	e.Type = fields.Type
	e.Name = fields.Name
	e.Inputs = fields.Inputs
	e.Raw = append(json.RawMessage(nil), data...)

	return nil
}

// MarshalJSON implements json.Marshaler.
func (e ABIEntry) MarshalJSON() ([]byte, error) {
	if len(e.Raw) > 0 {
		return e.Raw, nil
	}

	return json.Marshal(abiEntryFields{Type: e.Type, Name: e.Name, Inputs: e.Inputs})
}

// InterfaceDescription is a named ABI document.
type InterfaceDescription struct {
	Name    string
	Entries []ABIEntry
}

// Artifact is the subset of a Hardhat compilation artifact this tool consumes.
type Artifact struct {
	ContractName string          `json:"contractName"`
	SourceName   string          `json:"sourceName"`
	ABI          []ABIEntry      `json:"abi"`
	RawABI       json.RawMessage `json:"-"`
	Bytecode     string          `json:"bytecode"`
	Path         Path            `json:"-"`
}

// Description returns the artifact's ABI as an InterfaceDescription.
func (a Artifact) Description() InterfaceDescription {
	return InterfaceDescription{Name: a.ContractName, Entries: a.ABI}
}

// MergeSummary describes the outcome of an ABI merge.
type MergeSummary struct {
	Documents int    `json:"documents"`
	Entries   int    `json:"entries"`
	Dropped   int    `json:"dropped"`
	Policy    string `json:"policy"`
	Output    Path   `json:"output,omitempty"`
	Diff      string `json:"-"`
}
