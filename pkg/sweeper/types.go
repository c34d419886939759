// Copyright 2025 The Sweeper Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweeper

import "math/big"

// PlanEntry is one source wallet scheduled for sweeping. Entries are
// recomputed on every run and never persisted.
type PlanEntry struct {
	Name    string
	Address string
	Balance *big.Int
}

// Report holds the outcome counts of one execution pass.
type Report struct {
	Swept   int
	Skipped int
	Failed  int
}
