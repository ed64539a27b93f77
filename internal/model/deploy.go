package model

import "github.com/ethereum/go-ethereum/common"

// DeployResult is one contract creation.
type DeployResult struct {
	Name    string         `json:"name"`
	Address common.Address `json:"address"`
	TxHash  common.Hash    `json:"txHash"`
}

// DeploymentReport summarises a diamond deployment or upgrade.
type DeploymentReport struct {
	Network     string         `json:"network"`
	Diamond     common.Address `json:"diamond"`
	CutFacet    *DeployResult  `json:"cutFacet,omitempty"`
	Facets      []DeployResult `json:"facets"`
	CutTx       common.Hash    `json:"cutTx,omitempty"`
	Plan        CutPlan        `json:"plan"`
	SavedKeys   []string       `json:"savedKeys,omitempty"`
	Diagnostics []Diagnostic   `json:"diagnostics,omitempty"`
}
