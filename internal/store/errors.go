// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no local record exists for the
	// requested user.
	ErrUserNotFound = errors.New("user was not found")

	// ErrPrefNotSaved is returned when an upsert of a preference completes
	// without error but affects no rows.
	ErrPrefNotSaved = errors.New("preference was not saved")

	// ErrMalformedPref is returned when a stored preference value cannot be
	// decoded as a dictionary.
	ErrMalformedPref = errors.New("stored preference is malformed")
)

// Low-level database operation errors.
var (
	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or UPDATE
	// statement fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
