// Copyright 2025 The Sweeper Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/ethersphere/beekeeper/pkg/logging"
	"github.com/spf13/cobra"

	"github.com/testnetops/wallet-sweeper/pkg/chaincli"
	"github.com/testnetops/wallet-sweeper/pkg/sweeper"
)

const (
	optionLogVerbosity string = "log-verbosity"
)

func main() {
	var (
		logLevel    string
		skipConfirm bool
	)

	rootCmd := &cobra.Command{
		Use: "sweeper",
		Run: func(cmd *cobra.Command, args []string) {
			if err := cmd.Help(); err != nil {
				log.Fatal(err)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, optionLogVerbosity, "info", "log verbosity level 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=trace")

	sweepCmd := &cobra.Command{
		Use:   "sweep <target-wallet> <source-wallet>...",
		Short: "sweep source wallet balances into the target wallet",
		Args:  cobra.MinimumNArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			doSweep(cmd, args, logLevel, skipConfirm)
		},
	}
	sweepCmd.PersistentFlags().BoolVar(&skipConfirm, "yes", false, "skip the confirmation prompt")

	balancesCmd := &cobra.Command{
		Use:   "balances <target-wallet> <source-wallet>...",
		Short: "report wallet balances without sweeping",
		Args:  cobra.MinimumNArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			doBalances(cmd, args, logLevel)
		},
	}

	rootCmd.AddCommand(sweepCmd, balancesCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func doSweep(cmd *cobra.Command, args []string, logLevel string, skipConfirm bool) {
	ctx := context.Background()

	logger, err := newLogger(cmd, logLevel)
	if err != nil {
		log.Fatal(err)
	}

	checkNode(ctx, logger)

	cfg := sweeper.Config{
		TargetWallet:  args[0],
		SourceWallets: args[1:],
	}

	opts := []sweeper.Option{sweeper.WithLogger(logger)}
	if skipConfirm {
		opts = append(opts, sweeper.WithoutConfirmation())
	}

	if err := sweeper.Sweep(ctx, cfg, nil, opts...); err != nil {
		logger.Fatalf("error while sweeping: %v", err)
	}
}

func doBalances(cmd *cobra.Command, args []string, logLevel string) {
	ctx := context.Background()

	logger, err := newLogger(cmd, logLevel)
	if err != nil {
		log.Fatal(err)
	}

	cfg := sweeper.Config{
		TargetWallet:  args[0],
		SourceWallets: args[1:],
	}

	if err := sweeper.Plan(ctx, cfg, nil, sweeper.WithLogger(logger)); err != nil {
		logger.Fatalf("error while querying balances: %v", err)
	}
}

// checkNode warns when the RPC node is unreachable or serves a different
// chain. The sweep itself still runs; per-wallet queries decide.
func checkNode(ctx context.Context, logger logging.Logger) {
	status, err := sweeper.FetchNodeStatus(ctx, chaincli.NodeEndpoint)
	if err != nil {
		logger.Warningf("node status check failed: %v", err)
		return
	}

	if status.Network != chaincli.ChainID {
		logger.Warningf("node %s serves chain %q, expected %q", chaincli.NodeEndpoint, status.Network, chaincli.ChainID)
		return
	}

	logger.Debugf("node on chain %q at height %s", status.Network, status.LatestBlockHeight)
}

func newLogger(cmd *cobra.Command, verbosity string) (logging.Logger, error) {
	var logger logging.Logger

	switch strings.ToLower(verbosity) {
	case "0", "silent":
		logger = logging.New(io.Discard, 0)
	case "1", "error":
		logger = logging.New(cmd.OutOrStdout(), 2)
	case "2", "warn":
		logger = logging.New(cmd.OutOrStdout(), 3)
	case "3", "info":
		logger = logging.New(cmd.OutOrStdout(), 4)
	case "4", "debug":
		logger = logging.New(cmd.OutOrStdout(), 5)
	case "5", "trace":
		logger = logging.New(cmd.OutOrStdout(), 6)
	default:
		return nil, fmt.Errorf("unknown %s level %q, use help to check flag usage options", optionLogVerbosity, verbosity)
	}

	return logger, nil
}
