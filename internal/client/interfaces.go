// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is a runnable client application.
type Client interface {
	// Run starts the client and blocks until it is stopped.
	Run() error
}

var _ Client = (*App)(nil)
