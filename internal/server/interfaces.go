// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the lifecycle of the sync server.
type Server interface {
	// RunServer serves requests until a stop signal arrives.
	RunServer()

	// Shutdown gracefully stops the server.
	Shutdown()
}
