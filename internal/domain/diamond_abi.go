package domain

import (
	"bytes"
	"fmt"

	m "diamondkit.dev/pkg/diamondkit/internal/model"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/lmittmann/w3"
)

var (
	funcDiamondCut = w3.MustNewFunc(
		"diamondCut((address facetAddress, uint8 action, bytes4[] functionSelectors)[] _diamondCut, address _init, bytes _calldata)", "",
	)
	funcFacets = w3.MustNewFunc(
		"facets()", "(address facetAddress, bytes4[] functionSelectors)[] facets_",
	)
)

// FacetCut is the Go shape of the IDiamondCut.FacetCut struct.
type FacetCut struct {
	FacetAddress      common.Address
	Action            uint8
	FunctionSelectors [][4]byte
}

type loupeFacet struct {
	FacetAddress      common.Address
	FunctionSelectors [][4]byte
}

// FacetCuts converts plan records into constructor/diamondCut arguments.
func FacetCuts(records []m.CutRecord) []FacetCut {
	cuts := make([]FacetCut, 0, len(records))

	for _, record := range records {
		selectors := make([][4]byte, 0, len(record.Selectors))
		for _, sel := range record.Selectors {
			selectors = append(selectors, [4]byte(sel))
		}

		cuts = append(cuts, FacetCut{
			FacetAddress:      record.FacetAddress,
			Action:            uint8(record.Action),
			FunctionSelectors: selectors,
		})
	}

	return cuts
}

// EncodeDiamondCut builds calldata for diamondCut(cut, init, calldata).
func EncodeDiamondCut(records []m.CutRecord, init common.Address, calldata []byte) ([]byte, error) {
	if calldata == nil {
		calldata = []byte{}
	}

	data, err := funcDiamondCut.EncodeArgs(FacetCuts(records), init, calldata)
	if err != nil {
		return nil, fmt.Errorf("encode diamondCut: %w", err)
	}

	return data, nil
}

// EncodeFacetsCall builds calldata for the loupe facets() view.
func EncodeFacetsCall() ([]byte, error) {
	data, err := funcFacets.EncodeArgs()
	if err != nil {
		return nil, fmt.Errorf("encode facets: %w", err)
	}

	return data, nil
}

// DecodeFacets decodes the return data of facets().
func DecodeFacets(output []byte) ([]m.LoupeFacet, error) {
	var raw []loupeFacet
	if err := funcFacets.DecodeReturns(output, &raw); err != nil {
		return nil, fmt.Errorf("decode facets: %w", err)
	}

	facets := make([]m.LoupeFacet, 0, len(raw))
	for _, f := range raw {
		selectors := make([]m.Selector, 0, len(f.FunctionSelectors))
		for _, sel := range f.FunctionSelectors {
			selectors = append(selectors, m.Selector(sel))
		}

		facets = append(facets, m.LoupeFacet{Address: f.FacetAddress, Selectors: selectors})
	}

	return facets, nil
}

// ValidateABI parses raw as a contract ABI document.
func ValidateABI(raw []byte) error {
	if _, err := abi.JSON(bytes.NewReader(raw)); err != nil {
		return fmt.Errorf("parse abi: %w", err)
	}

	return nil
}

// DeployData appends ABI-encoded constructor arguments to the artifact bytecode.
func DeployData(artifact m.Artifact, args ...any) ([]byte, error) {
	bytecode := common.FromHex(artifact.Bytecode)
	if len(bytecode) == 0 {
		return nil, fmt.Errorf("artifact %s has no bytecode", artifact.ContractName)
	}

	if len(args) == 0 {
		return bytecode, nil
	}

	parsed, err := abi.JSON(bytes.NewReader(artifact.RawABI))
	if err != nil {
		return nil, fmt.Errorf("parse abi of %s: %w", artifact.ContractName, err)
	}

	packed, err := parsed.Pack("", args...)
	if err != nil {
		return nil, fmt.Errorf("pack constructor of %s: %w", artifact.ContractName, err)
	}

	return append(bytecode, packed...), nil
}
