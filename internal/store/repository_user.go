// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-avatar-sync/internal/logger"
	"github.com/MKhiriev/go-avatar-sync/models"
)

type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository returns a SQLite-backed [UserRepository].
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	return &userRepository{db: db, logger: logger}
}

func (u *userRepository) GetUser(ctx context.Context, userID string) (models.User, error) {
	var user models.User
	err := u.db.QueryRowContext(ctx, getUser, userID).Scan(&user.UserID, &user.ImageIndex, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		u.logger.Err(err).
			Str("func", "userRepository.GetUser").
			Str("user_id", userID).
			Msg("failed to scan user row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

func (u *userRepository) SaveUser(ctx context.Context, user models.User) error {
	_, err := u.db.execRetrying(ctx, saveUser, user.UserID, user.ImageIndex, user.UpdatedAt)
	if err != nil {
		u.logger.Err(err).
			Str("func", "userRepository.SaveUser").
			Str("user_id", user.UserID).
			Int("image_index", user.ImageIndex).
			Msg("failed to execute upsert for user")
		return fmt.Errorf("%w: save user %s: %w", ErrExecutingStatement, user.UserID, err)
	}

	return nil
}
