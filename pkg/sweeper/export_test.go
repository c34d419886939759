// Copyright 2025 The Sweeper Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweeper

import (
	"context"
	"io"
	"math/big"

	"github.com/ethersphere/beekeeper/pkg/logging"

	"github.com/testnetops/wallet-sweeper/pkg/chaincli"
)

func ExecutePlan(ctx context.Context, client chaincli.Client, entries []PlanEntry, targetAddress string, log logging.Logger) Report {
	return executePlan(ctx, client, entries, targetAddress, 0, log)
}

func FormatAmount(amount *big.Int, decimals int) string {
	return formatAmount(amount, decimals)
}

func Confirm(in io.Reader, out io.Writer) (bool, error) {
	return confirm(in, out, "admin", 1)
}
