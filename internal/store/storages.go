// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-avatar-sync/internal/config"
	"github.com/MKhiriev/go-avatar-sync/internal/logger"
)

// Storages groups the repositories built on one SQLite database.
type Storages struct {
	// UserRepository persists local users and their avatar index.
	UserRepository UserRepository

	// PrefRepository persists dictionary preferences.
	PrefRepository PrefRepository

	db *DB
}

// NewStorages opens the SQLite database described by cfg, runs pending
// migrations, and wires the repositories to it.
func NewStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		PrefRepository: NewPrefRepository(db, logger),
		db:             db,
	}, nil
}

// Close releases the underlying database.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
