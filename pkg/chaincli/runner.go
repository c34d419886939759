// Copyright 2025 The Sweeper Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chaincli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// CommandRunner executes one external command and returns its stdout.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return out, fmt.Errorf("%w: %s", err, bytes.TrimSpace(exitErr.Stderr))
		}

		return out, err
	}

	return out, nil
}
