package model

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// FunctionSignature is one externally callable function of a facet.
type FunctionSignature struct {
	Name   string
	Inputs []string // canonical ABI parameter types
}

// Signature renders the canonical text form, e.g. "transfer(address,uint256)".
func (f FunctionSignature) Signature() string {
	return f.Name + "(" + strings.Join(f.Inputs, ",") + ")"
}

// FacetInterface is the ordered list of callable functions a compiled facet exposes.
type FacetInterface struct {
	Functions []FunctionSignature
}

// Facet is a named, compiled unit behind the diamond proxy.
type Facet struct {
	Name      string
	Address   common.Address
	Interface *FacetInterface
}

// CutAction mirrors the on-chain FacetCutAction enum.
type CutAction uint8

const (
	// CutAdd routes new selectors to a facet.
	CutAdd CutAction = iota
	// CutReplace re-routes existing selectors to a different facet.
	CutReplace
	// CutRemove drops selectors from the diamond.
	CutRemove
)

func (a CutAction) String() string {
	switch a {
	case CutAdd:
		return "add"
	case CutReplace:
		return "replace"
	case CutRemove:
		return "remove"
	}

	return fmt.Sprintf("action(%d)", uint8(a))
}

// MarshalText implements encoding.TextMarshaler.
func (a CutAction) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *CutAction) UnmarshalText(text []byte) error {
	parsed, err := ParseCutAction(string(text))
	if err != nil {
		return err
	}

	*a = parsed

	return nil
}

// ParseCutAction parses "add", "replace" or "remove".
func ParseCutAction(value string) (CutAction, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "add", "":
		return CutAdd, nil
	case "replace":
		return CutReplace, nil
	case "remove":
		return CutRemove, nil
	}

	return CutAdd, fmt.Errorf("unknown cut action %q", value)
}

// CutRecord is one entry of a diamondCut batch. Selectors is never empty.
type CutRecord struct {
	FacetName    string         `json:"facet" yaml:"facet"`
	FacetAddress common.Address `json:"facetAddress" yaml:"facetAddress"`
	Action       CutAction      `json:"action" yaml:"action"`
	Selectors    []Selector     `json:"functionSelectors" yaml:"functionSelectors"`
}

// SelectorOwnership records which facet first claimed a selector.
type SelectorOwnership struct {
	Selector Selector `json:"selector" yaml:"selector"`
	Facet    string   `json:"facet" yaml:"facet"`
}

// Collision is a selector rejected because an earlier facet already owns it.
type Collision struct {
	Facet    string   `json:"facet" yaml:"facet"`
	Selector Selector `json:"selector" yaml:"selector"`
	Owner    string   `json:"owner" yaml:"owner"`
}

// CutPlan is the result of one planning pass.
type CutPlan struct {
	Action      CutAction           `json:"action" yaml:"action"`
	Records     []CutRecord         `json:"cut" yaml:"cut"`
	Ownership   []SelectorOwnership `json:"ownership" yaml:"ownership"`
	Collisions  []Collision         `json:"collisions,omitempty" yaml:"collisions,omitempty"`
	Skipped     []string            `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Diagnostics []Diagnostic        `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
	Digest      string              `json:"digest,omitempty" yaml:"digest,omitempty"`
}

// SelectorCount returns the total number of selectors routed by the plan.
func (p CutPlan) SelectorCount() int {
	total := 0
	for _, record := range p.Records {
		total += len(record.Selectors)
	}

	return total
}

// LoupeFacet is one facet as reported by a deployed diamond's facets() call.
type LoupeFacet struct {
	Address   common.Address `json:"facetAddress" yaml:"facetAddress"`
	Selectors []Selector     `json:"functionSelectors" yaml:"functionSelectors"`
}
