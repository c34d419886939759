// Copyright 2025 The Sweeper Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mock

import (
	"context"
	"errors"
	"math/big"

	"github.com/testnetops/wallet-sweeper/pkg/chaincli"
)

const defaultTxHash = "91B0B16C2C027B35A0DBD6EB1BAB54C51553D2A9B6B5BE33F0A71FAFF7B18A2E"

type SendCall struct {
	FromWallet string
	ToAddress  string
	Amount     *big.Int
}

func NewClient() *Client {
	return &Client{
		Addresses: make(map[string]string),
		Balances:  make(map[string]*big.Int),
		Results:   make(map[string]chaincli.TxResult),
	}
}

// Client is a canned-response chain client. Wallets resolve through
// Addresses, balances are read by address from Balances, and Send
// outcomes come from Results (defaulting to a confirmed transfer).
// Every Send call is recorded.
type Client struct {
	Addresses map[string]string
	Balances  map[string]*big.Int
	Results   map[string]chaincli.TxResult
	SendErr   error
	Sends     []SendCall
}

func (c *Client) ResolveAddress(ctx context.Context, wallet string) (string, error) {
	address, ok := c.Addresses[wallet]
	if !ok {
		return "", errors.New("key not found in keyring")
	}

	return address, nil
}

func (c *Client) Balance(ctx context.Context, address string) (*big.Int, error) {
	balance, ok := c.Balances[address]
	if !ok {
		return nil, errors.New("balance unavailable")
	}

	return new(big.Int).Set(balance), nil
}

func (c *Client) Send(ctx context.Context, fromWallet, toAddress string, amount *big.Int) (chaincli.TxResult, error) {
	c.Sends = append(c.Sends, SendCall{
		FromWallet: fromWallet,
		ToAddress:  toAddress,
		Amount:     new(big.Int).Set(amount),
	})

	if c.SendErr != nil {
		return chaincli.TxResult{RawResponse: c.SendErr.Error()}, c.SendErr
	}

	if result, ok := c.Results[fromWallet]; ok {
		return result, nil
	}

	return chaincli.TxResult{Hash: defaultTxHash}, nil
}
