// Copyright 2025 The Sweeper Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chaincli

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
)

// Fixed network parameters. The sweeper is operational tooling for a
// single testnet; these are compiled in on purpose.
const (
	DaemonBinary   = "gaiad"
	ChainID        = "theta-testnet-001"
	NodeEndpoint   = "https://rpc.state-sync-01.theta-testnet.polypore.xyz:443"
	Denom          = "uatom"
	KeyringBackend = "test"

	gasAdjustment = "1.5"
	gasPrices     = "0.025" + Denom
)

// Client talks to the chain daemon CLI. Every call is one subprocess
// invocation whose JSON output is decoded; the daemon owns the keyring,
// signing and broadcast.
type Client interface {
	ResolveAddress(ctx context.Context, wallet string) (string, error)
	Balance(ctx context.Context, address string) (*big.Int, error)
	Send(ctx context.Context, fromWallet, toAddress string, amount *big.Int) (TxResult, error)
}

// TxResult is the decoded outcome of a submitted transfer. The daemon
// reports success solely through a transaction hash; everything else in
// the response is kept as raw text for the log.
type TxResult struct {
	Hash        string
	RawResponse string
}

func (r TxResult) Confirmed() bool {
	return r.Hash != ""
}

func NewClient(runner CommandRunner) Client {
	if runner == nil {
		runner = execRunner{}
	}

	return &client{
		runner: runner,
	}
}

type client struct {
	runner CommandRunner
}

func (c *client) ResolveAddress(ctx context.Context, wallet string) (string, error) {
	out, err := c.runner.Run(ctx, DaemonBinary,
		"keys", "show", wallet,
		"--keyring-backend", KeyringBackend,
		"--output", "json",
	)
	if err != nil {
		return "", fmt.Errorf("key lookup for %q failed: %w", wallet, err)
	}

	keyResponse := struct {
		Address string `json:"address"`
	}{}
	if err := json.Unmarshal(out, &keyResponse); err != nil {
		return "", fmt.Errorf("failed to unmarshal key response: %w", err)
	}

	return keyResponse.Address, nil
}

func (c *client) Balance(ctx context.Context, address string) (*big.Int, error) {
	out, err := c.runner.Run(ctx, DaemonBinary,
		"query", "bank", "balances", address,
		"--denom", Denom,
		"--node", NodeEndpoint,
		"--output", "json",
	)
	if err != nil {
		return nil, fmt.Errorf("balance query for %s failed: %w", address, err)
	}

	balanceResponse := struct {
		Amount string `json:"amount"`
	}{}
	if err := json.Unmarshal(out, &balanceResponse); err != nil {
		return nil, fmt.Errorf("failed to unmarshal balance response: %w", err)
	}

	amount, ok := new(big.Int).SetString(balanceResponse.Amount, 10)
	if !ok || amount.Sign() < 0 {
		return nil, fmt.Errorf("balance query for %s returned malformed amount %q", address, balanceResponse.Amount)
	}

	return amount, nil
}

func (c *client) Send(ctx context.Context, fromWallet, toAddress string, amount *big.Int) (TxResult, error) {
	out, err := c.runner.Run(ctx, DaemonBinary,
		"tx", "bank", "send", fromWallet, toAddress, amount.String()+Denom,
		"--chain-id", ChainID,
		"--node", NodeEndpoint,
		"--gas", "auto",
		"--gas-adjustment", gasAdjustment,
		"--gas-prices", gasPrices,
		"--keyring-backend", KeyringBackend,
		"--broadcast-mode", "block",
		"--yes",
		"--output", "json",
	)

	result := TxResult{RawResponse: string(out)}

	if err != nil {
		if result.RawResponse == "" {
			result.RawResponse = err.Error()
		}

		return result, fmt.Errorf("transfer from %q failed: %w", fromWallet, err)
	}

	txResponse := struct {
		TxHash string `json:"txhash"`
	}{}
	if err := json.Unmarshal(out, &txResponse); err != nil {
		// A response that does not decode is a failed transfer, not a
		// parse error; the raw text is all there is to report.
		return result, nil
	}

	result.Hash = txResponse.TxHash

	return result, nil
}
