package adapter

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	m "diamondkit.dev/pkg/diamondkit/internal/model"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/lmittmann/w3"
	"github.com/lmittmann/w3/module/eth"
	"github.com/lmittmann/w3/w3types"
)

var (
	// ErrTransactionFailed is returned when a mined transaction reverted.
	ErrTransactionFailed = errors.New("transaction failed")
	// ErrReadOnly is returned when a transaction is sent without a private key.
	ErrReadOnly = errors.New("no private key configured")
)

const defaultPollInterval = 2 * time.Second

// ChainConfig holds what is needed to talk to an EVM node and sign transactions.
type ChainConfig struct {
	RPCURL       string
	PrivateKey   string
	GasFeeCap    *big.Int
	GasTipCap    *big.Int
	GasLimit     uint64
	Timeout      time.Duration
	PollInterval time.Duration
}

// ChainAdapter is the minimal EVM surface the deployment workflows need.
// Deploy and Transact block until the receipt is available.
type ChainAdapter interface {
	Address() common.Address
	Deploy(ctx context.Context, name string, bytecode []byte) (m.DeployResult, error)
	Transact(ctx context.Context, to common.Address, data []byte) (common.Hash, error)
	Call(ctx context.Context, to common.Address, data []byte) ([]byte, error)
	Close() error
}

// ChainDialer opens a ChainAdapter for a configuration.
type ChainDialer func(ctx context.Context, cfg ChainConfig) (ChainAdapter, error)

type w3ChainAdapter struct {
	client  *w3.Client
	signer  types.Signer
	key     *ecdsa.PrivateKey
	address common.Address
	cfg     ChainConfig
}

// DialChain connects to cfg.RPCURL with a w3 client and resolves the chain ID
// for London signing. Without a private key the adapter is read-only.
func DialChain(ctx context.Context, cfg ChainConfig) (ChainAdapter, error) {
	var key *ecdsa.PrivateKey

	if hexKey := strings.TrimPrefix(strings.TrimSpace(cfg.PrivateKey), "0x"); hexKey != "" {
		parsed, err := crypto.HexToECDSA(hexKey)
		if err != nil {
			return nil, fmt.Errorf("parse private key: %w", err)
		}

		key = parsed
	}

	client, err := w3.Dial(cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial rpc: %w", err)
	}

	var chainID uint64
	if err := client.CallCtx(ctx, eth.ChainID().Returns(&chainID)); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("get chain id: %w", err)
	}

	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}

	chain := &w3ChainAdapter{
		client: client,
		signer: types.NewLondonSigner(new(big.Int).SetUint64(chainID)),
		key:    key,
		cfg:    cfg,
	}
	if key != nil {
		chain.address = crypto.PubkeyToAddress(key.PublicKey)
	}

	return chain, nil
}

func (a *w3ChainAdapter) Address() common.Address {
	return a.address
}

func (a *w3ChainAdapter) Close() error {
	return a.client.Close()
}

func (a *w3ChainAdapter) Deploy(ctx context.Context, name string, bytecode []byte) (m.DeployResult, error) {
	if a.key == nil {
		return m.DeployResult{}, ErrReadOnly
	}

	nonce, err := a.getNonce(ctx)
	if err != nil {
		return m.DeployResult{}, err
	}

	tx := types.NewTx(&types.DynamicFeeTx{
		Nonce:     nonce,
		GasFeeCap: a.cfg.GasFeeCap,
		GasTipCap: a.cfg.GasTipCap,
		Gas:       a.cfg.GasLimit,
		Data:      bytecode,
	})

	txHash, err := a.sendTx(ctx, tx)
	if err != nil {
		return m.DeployResult{}, fmt.Errorf("deploy %s: %w", name, err)
	}

	receipt, err := a.waitForReceipt(ctx, txHash)
	if err != nil {
		return m.DeployResult{}, fmt.Errorf("deploy %s: %w", name, err)
	}

	address := crypto.CreateAddress(a.address, nonce)
	if receipt.ContractAddress != (common.Address{}) {
		address = receipt.ContractAddress
	}

	slog.Debug("Contract deployed", "name", name, "address", address.Hex(), "tx", txHash.Hex())

	return m.DeployResult{Name: name, Address: address, TxHash: txHash}, nil
}

func (a *w3ChainAdapter) Transact(ctx context.Context, to common.Address, data []byte) (common.Hash, error) {
	if a.key == nil {
		return common.Hash{}, ErrReadOnly
	}

	nonce, err := a.getNonce(ctx)
	if err != nil {
		return common.Hash{}, err
	}

	tx := types.NewTx(&types.DynamicFeeTx{
		Nonce:     nonce,
		To:        &to,
		GasFeeCap: a.cfg.GasFeeCap,
		GasTipCap: a.cfg.GasTipCap,
		Gas:       a.cfg.GasLimit,
		Data:      data,
	})

	txHash, err := a.sendTx(ctx, tx)
	if err != nil {
		return common.Hash{}, err
	}

	if _, err := a.waitForReceipt(ctx, txHash); err != nil {
		return txHash, err
	}

	return txHash, nil
}

func (a *w3ChainAdapter) Call(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
	var out []byte

	msg := &w3types.Message{From: a.address, To: &to, Input: data}
	if err := a.client.CallCtx(ctx, eth.Call(msg, nil, nil).Returns(&out)); err != nil {
		return nil, fmt.Errorf("eth_call %s: %w", to.Hex(), err)
	}

	return out, nil
}

func (a *w3ChainAdapter) getNonce(ctx context.Context) (uint64, error) {
	var nonce uint64
	if err := a.client.CallCtx(ctx, eth.Nonce(a.address, nil).Returns(&nonce)); err != nil {
		return 0, fmt.Errorf("get nonce: %w", err)
	}

	return nonce, nil
}

func (a *w3ChainAdapter) sendTx(ctx context.Context, tx *types.Transaction) (common.Hash, error) {
	signedTx, err := types.SignTx(tx, a.signer, a.key)
	if err != nil {
		return common.Hash{}, fmt.Errorf("sign tx: %w", err)
	}

	var txHash common.Hash
	if err := a.client.CallCtx(ctx, eth.SendTx(signedTx).Returns(&txHash)); err != nil {
		return common.Hash{}, fmt.Errorf("send tx: %w", err)
	}

	return txHash, nil
}

func (a *w3ChainAdapter) waitForReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	ticker := time.NewTicker(a.cfg.PollInterval)
	defer ticker.Stop()

	for {
		var receipt *types.Receipt

		err := a.client.CallCtx(ctx, eth.TxReceipt(txHash).Returns(&receipt))
		if err == nil && receipt != nil {
			if receipt.Status == types.ReceiptStatusFailed {
				return receipt, fmt.Errorf("%w: %s", ErrTransactionFailed, txHash.Hex())
			}

			return receipt, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("wait for receipt %s: %w", txHash.Hex(), ctx.Err())
		case <-ticker.C:
		}
	}
}
