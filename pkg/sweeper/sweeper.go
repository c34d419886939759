// Copyright 2025 The Sweeper Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweeper

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/big"
	"strings"
	"time"

	"github.com/ethersphere/beekeeper/pkg/logging"
	"github.com/olekukonko/tablewriter"

	"github.com/testnetops/wallet-sweeper/pkg/chaincli"
)

// Sweep moves every source wallet's balance, minus the gas reserve, into
// the target wallet. Per-wallet failures are logged and counted, never
// fatal; only an unusable target wallet or an empty sweep set aborts the
// run. Declining the confirmation prompt is not an error.
func Sweep(ctx context.Context, cfg Config, client chaincli.Client, options ...Option) error {
	opts := defaultOptions()
	for _, opt := range options {
		opt(opts)
	}

	if client == nil {
		client = chaincli.NewClient(nil)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	log := opts.log

	targetAddress, entries, err := resolveWallets(ctx, cfg, client, log)
	if err != nil {
		return err
	}

	total := queryBalances(ctx, client, entries, log)
	writePlan(opts.out, entries, total)

	if !opts.skipConfirm {
		ok, err := confirm(opts.in, opts.out, cfg.TargetWallet, len(entries))
		if err != nil {
			return fmt.Errorf("reading confirmation failed: %w", err)
		}

		if !ok {
			log.Info("aborted, no transfers submitted")
			return nil
		}
	}

	report := executePlan(ctx, client, entries, targetAddress, opts.sendDelay, log)

	log.Infof("swept %d", report.Swept)
	log.Infof("skipped %d", report.Skipped)
	log.Infof("failed %d", report.Failed)

	final := balanceOrZero(ctx, client, targetAddress, cfg.TargetWallet, log)
	log.Infof("target wallet %q balance: %s%s", cfg.TargetWallet, final, chaincli.Denom)

	return nil
}

// Plan prints the pre-flight report without submitting any transfers.
func Plan(ctx context.Context, cfg Config, client chaincli.Client, options ...Option) error {
	opts := defaultOptions()
	for _, opt := range options {
		opt(opts)
	}

	if client == nil {
		client = chaincli.NewClient(nil)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	_, entries, err := resolveWallets(ctx, cfg, client, opts.log)
	if err != nil {
		return err
	}

	total := queryBalances(ctx, client, entries, opts.log)
	writePlan(opts.out, entries, total)

	return nil
}

func resolveWallets(ctx context.Context, cfg Config, client chaincli.Client, log logging.Logger) (string, []PlanEntry, error) {
	targetAddress, err := client.ResolveAddress(ctx, cfg.TargetWallet)
	if err != nil || targetAddress == "" {
		return "", nil, fmt.Errorf("target wallet %q not found in keyring", cfg.TargetWallet)
	}

	entries := make([]PlanEntry, 0, len(cfg.SourceWallets))

	for _, name := range cfg.SourceWallets {
		address, err := client.ResolveAddress(ctx, name)
		if err != nil || address == "" {
			log.Warningf("wallet %q not found in keyring, skipping", name)
			continue
		}

		entries = append(entries, PlanEntry{Name: name, Address: address})
	}

	if len(entries) == 0 {
		return "", nil, fmt.Errorf("no source wallet resolved to an address")
	}

	return targetAddress, entries, nil
}

func queryBalances(ctx context.Context, client chaincli.Client, entries []PlanEntry, log logging.Logger) *big.Int {
	total := new(big.Int)

	for i := range entries {
		entries[i].Balance = balanceOrZero(ctx, client, entries[i].Address, entries[i].Name, log)
		total.Add(total, entries[i].Balance)
	}

	return total
}

// balanceOrZero folds query failures into a zero balance, which the
// sweep treats the same as an empty wallet. The underlying error still
// reaches the log so the two can be told apart.
func balanceOrZero(ctx context.Context, client chaincli.Client, address, name string, log logging.Logger) *big.Int {
	balance, err := client.Balance(ctx, address)
	if err != nil {
		log.Warningf("balance query for wallet %q failed, treating as zero: %s", name, err)
		return new(big.Int)
	}

	return balance
}

func writePlan(out io.Writer, entries []PlanEntry, total *big.Int) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Wallet", "Address", "Balance (" + chaincli.Denom + ")"})

	for _, e := range entries {
		table.Append([]string{e.Name, e.Address, e.Balance.String()})
	}

	table.Render()

	fmt.Fprintf(out, "total: %s%s (%s ATOM)\n", total, chaincli.Denom, formatAmount(total, denomDecimals))
}

func confirm(in io.Reader, out io.Writer, target string, count int) (bool, error) {
	fmt.Fprintf(out, "sweep %d wallet(s) into %q? [y/N]: ", count, target)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}

	return false, nil
}

func executePlan(ctx context.Context, client chaincli.Client, entries []PlanEntry, targetAddress string, delay time.Duration, log logging.Logger) Report {
	var report Report

	reserve := big.NewInt(GasReserve)

	for _, entry := range entries {
		// Balances are read again right before the transfer; the
		// pre-confirmation reading is a preview, not a commitment.
		balance := balanceOrZero(ctx, client, entry.Address, entry.Name, log)

		if balance.Sign() == 0 {
			report.Skipped++
			log.Infof("wallet %q is empty, skipping", entry.Name)

			continue
		}

		if balance.Cmp(reserve) <= 0 {
			report.Skipped++
			log.Infof("wallet %q balance %s%s does not cover the %d%s gas reserve, skipping",
				entry.Name, balance, chaincli.Denom, GasReserve, chaincli.Denom)

			continue
		}

		amount := new(big.Int).Sub(balance, reserve)

		result, err := client.Send(ctx, entry.Name, targetAddress, amount)
		if err != nil {
			report.Failed++
			log.Errorf("transfer from wallet %q failed: %s", entry.Name, err)

			continue
		}

		if !result.Confirmed() {
			report.Failed++
			log.Errorf("transfer from wallet %q failed, response: %s", entry.Name, result.RawResponse)

			continue
		}

		report.Swept++
		log.Infof("swept %s%s from wallet %q (tx %s)", amount, chaincli.Denom, entry.Name, result.Hash)

		if delay > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(delay):
			}
		}
	}

	return report
}
