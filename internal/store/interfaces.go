// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements SQLite persistence for local users and for
// dictionary preferences. The same schema serves the client (its own user
// and profile preferences) and the sync server (every user's synced
// preferences).
package store

import (
	"context"

	"github.com/MKhiriev/go-avatar-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists locally admitted users and their avatar index.
type UserRepository interface {
	// GetUser returns the stored user. Returns [ErrUserNotFound] if the
	// user has never been saved.
	GetUser(ctx context.Context, userID string) (models.User, error)

	// SaveUser inserts or replaces the user record.
	SaveUser(ctx context.Context, user models.User) error
}

// PrefRepository persists dictionary preferences per user.
type PrefRepository interface {
	// GetPrefs returns every stored preference of userID, ordered by key.
	GetPrefs(ctx context.Context, userID string) ([]models.PrefRecord, error)

	// SavePref inserts or replaces a single preference of userID.
	SavePref(ctx context.Context, userID string, pref models.PrefRecord) error
}
