// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-avatar-sync/internal/events"
	"github.com/MKhiriev/go-avatar-sync/internal/logger"
	"github.com/MKhiriev/go-avatar-sync/internal/store"
	"github.com/MKhiriev/go-avatar-sync/models"
)

type userImageManager struct {
	repo              store.UserRepository
	dispatcher        Dispatcher
	notifier          events.Notifier
	defaultImageIndex int
	logger            *logger.Logger
	now               func() time.Time

	users map[string]models.User
}

// NewUserImageManager creates a manager whose writes run on dispatcher.
// defaultImageIndex is assigned to users stored for the first time; an
// unsupported value falls back to the first built-in image.
func NewUserImageManager(repo store.UserRepository, dispatcher Dispatcher, notifier events.Notifier, defaultImageIndex int, logger *logger.Logger) UserImageManager {
	if defaultImageIndex < models.FirstDefaultImageIndex || defaultImageIndex >= models.DefaultImagesCount {
		defaultImageIndex = models.FirstDefaultImageIndex
	}

	return &userImageManager{
		repo:              repo,
		dispatcher:        dispatcher,
		notifier:          notifier,
		defaultImageIndex: defaultImageIndex,
		logger:            logger,
		now:               time.Now,
		users:             make(map[string]models.User),
	}
}

func (m *userImageManager) LoadUser(ctx context.Context, userID string) (models.User, error) {
	if userID == "" {
		return models.User{}, ErrInvalidUserID
	}

	user, err := m.repo.GetUser(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		user = models.User{UserID: userID, ImageIndex: m.defaultImageIndex, UpdatedAt: m.now().UTC()}
		if err = m.repo.SaveUser(ctx, user); err != nil {
			return models.User{}, fmt.Errorf("create user %s: %w", userID, err)
		}
		m.logger.Info().
			Str("func", "userImageManager.LoadUser").
			Str("user_id", userID).
			Int("image_index", user.ImageIndex).
			Msg("user admitted with default avatar")
	} else if err != nil {
		return models.User{}, fmt.Errorf("load user %s: %w", userID, err)
	}

	m.users[userID] = user
	return user, nil
}

func (m *userImageManager) ImageIndex(userID string) int {
	user, ok := m.users[userID]
	if !ok {
		return models.InvalidImageIndex
	}
	return user.ImageIndex
}

func (m *userImageManager) SaveUserDefaultImageIndex(userID string, index int) {
	m.dispatcher.Post(func() { m.saveImageIndex(userID, index) })
}

func (m *userImageManager) SaveUserImageFromProfileImage(userID string) {
	m.dispatcher.Post(func() { m.saveImageIndex(userID, models.ProfileImageIndex) })
}

func (m *userImageManager) saveImageIndex(userID string, index int) {
	log := m.logger.ForUser(userID)

	user, ok := m.users[userID]
	if !ok {
		log.Warn().
			Str("func", "userImageManager.saveImageIndex").
			Msg("avatar change for a user that is not loaded")
		return
	}

	user.ImageIndex = index
	user.UpdatedAt = m.now().UTC()
	if err := m.repo.SaveUser(context.Background(), user); err != nil {
		log.Err(err).
			Str("func", "userImageManager.saveImageIndex").
			Int("image_index", index).
			Msg("failed to store avatar index")
		return
	}
	m.users[userID] = user

	log.Info().
		Str("func", "userImageManager.saveImageIndex").
		Int("image_index", index).
		Msg("avatar changed")

	m.notifier.Notify(events.Event{Type: events.TypeUserImageChanged, UserID: userID})
}
