// Copyright 2025 The Sweeper Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweeper

import (
	"io"
	"os"
	"time"

	"github.com/ethersphere/beekeeper/pkg/logging"
)

type Option func(*options)

type options struct {
	log         logging.Logger
	in          io.Reader
	out         io.Writer
	skipConfirm bool
	sendDelay   time.Duration
}

func defaultOptions() *options {
	return &options{
		log:       logging.New(io.Discard, 0),
		in:        os.Stdin,
		out:       os.Stdout,
		sendDelay: sendDelay,
	}
}

func WithLogger(log logging.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

func WithInput(in io.Reader) Option {
	return func(o *options) {
		o.in = in
	}
}

func WithOutput(out io.Writer) Option {
	return func(o *options) {
		o.out = out
	}
}

// WithoutConfirmation skips the interactive prompt, for unattended runs.
func WithoutConfirmation() Option {
	return func(o *options) {
		o.skipConfirm = true
	}
}

func WithSendDelay(d time.Duration) Option {
	return func(o *options) {
		o.sendDelay = d
	}
}
