// Copyright 2025 The Sweeper Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweeper

import (
	"fmt"
	"math/big"
	"strings"
)

const denomDecimals = 6

func formatAmount(amount *big.Int, decimals int) string {
	if amount == nil {
		return "0"
	}

	if decimals <= 0 {
		return amount.String()
	}

	exp := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	whole, frac := new(big.Int).QuoRem(amount, exp, new(big.Int))

	if frac.Sign() == 0 {
		return whole.String()
	}

	fracStr := strings.TrimRight(fmt.Sprintf("%0*d", decimals, frac), "0")

	return whole.String() + "." + fracStr
}
