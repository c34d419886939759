// Copyright 2025 The Sweeper Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweeper

import (
	"fmt"
	"time"
)

// GasReserve is withheld from every transfer so the source wallet can
// cover its own transaction fee, in base denomination units.
const GasReserve = 100_000

// Pause after each accepted transfer so the node is not hit with
// back-to-back broadcasts. Not a confirmation wait.
const sendDelay = 2 * time.Second

type Config struct {
	TargetWallet  string
	SourceWallets []string
}

func (c Config) Validate() error {
	if c.TargetWallet == "" {
		return fmt.Errorf("target wallet must be set")
	}

	if len(c.SourceWallets) == 0 {
		return fmt.Errorf("at least one source wallet must be set")
	}

	return nil
}
