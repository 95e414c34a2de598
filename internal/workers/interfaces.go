// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that runs multiple
// workers together, and Loop, the single serialized event queue every client
// component delivers its callbacks on.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the worker has nothing left to do.
type Worker interface {
	Run(ctx context.Context)
}
