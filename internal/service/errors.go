// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrProfileNotReady is returned by FullSync before the user's profile
	// has been prepared.
	ErrProfileNotReady = errors.New("profile is not ready")

	// ErrVersionIsNotSpecified is returned when the server starts without a
	// version string.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrInvalidUserID             = errors.New("invalid user id")
	ErrValidationNoPrefsProvided = errors.New("no prefs provided")
	ErrValidationInvalidPref     = errors.New("invalid pref record")
)
