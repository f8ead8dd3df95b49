// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the sub-command in args and blocks until it is done.
	Run(ctx context.Context, args []string) error
}

// UI is an interactive front end started by the "ui" sub-command.
type UI interface {
	Run(ctx context.Context) error
}
