// Copyright 2025 The Sweeper Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweeper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/testnetops/wallet-sweeper/pkg/util"
)

// NodeStatus is the subset of the RPC node status report the sweeper
// cares about.
type NodeStatus struct {
	Network           string
	LatestBlockHeight string
}

func FetchNodeStatus(ctx context.Context, endpoint string) (NodeStatus, error) {
	response, err := util.SendHTTPRequest(ctx, http.MethodGet, endpoint+"/status", nil)
	if err != nil {
		return NodeStatus{}, fmt.Errorf("get node status failed: %w", err)
	}

	statusResponse := struct {
		Result struct {
			NodeInfo struct {
				Network string `json:"network"`
			} `json:"node_info"`
			SyncInfo struct {
				LatestBlockHeight string `json:"latest_block_height"`
			} `json:"sync_info"`
		} `json:"result"`
	}{}
	if err := json.Unmarshal(response, &statusResponse); err != nil {
		return NodeStatus{}, fmt.Errorf("failed to unmarshal status response: %w", err)
	}

	if statusResponse.Result.NodeInfo.Network == "" {
		return NodeStatus{}, fmt.Errorf("node status response missing network id")
	}

	return NodeStatus{
		Network:           statusResponse.Result.NodeInfo.Network,
		LatestBlockHeight: statusResponse.Result.SyncInfo.LatestBlockHeight,
	}, nil
}
