package adapter

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialChain_RejectsBadKeyBeforeDialing(t *testing.T) {
	_, err := DialChain(context.Background(), ChainConfig{
		RPCURL:     "http://127.0.0.1:1",
		PrivateKey: "not-a-key",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse private key")
}

func TestW3ChainAdapter_ReadOnlyRejectsTransactions(t *testing.T) {
	chain := &w3ChainAdapter{}

	_, err := chain.Deploy(context.Background(), "DiamondCutFacet", []byte{0x60, 0x80})
	require.ErrorIs(t, err, ErrReadOnly)

	_, err = chain.Transact(context.Background(), common.HexToAddress("0x01"), nil)
	require.ErrorIs(t, err, ErrReadOnly)

	assert.Equal(t, common.Address{}, chain.Address())
}
