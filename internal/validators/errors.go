// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrEmptyPrefs       = errors.New("prefs list cannot be empty")
	ErrLengthMismatch   = errors.New("length does not match number of prefs")
	ErrInvalidPrefKey   = errors.New("invalid pref key")
	ErrEmptyPrefValue   = errors.New("pref value is required")
	ErrInvalidUpdatedAt = errors.New("pref updated_at is required")
	ErrDuplicatePrefKey = errors.New("duplicate pref key")
)
