// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the avatar sync client and the preference sync server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The entry points are [GetClientConfig] and [GetServerConfig], which map the
// merged [StructuredConfig] to a validated, runtime-specific view.
package config
