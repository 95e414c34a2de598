// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client runs the avatar sync client: it admits the configured user,
// keeps the user's avatar reconciled with the synced preference and
// replicates preferences with the sync server until the process is stopped.
package client
