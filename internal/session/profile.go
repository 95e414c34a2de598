// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session tracks the profiles of users admitted on this device. A
// profile becomes available once its preference store has been loaded, which
// is announced through the notification service.
package session

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-avatar-sync/internal/events"
	"github.com/MKhiriev/go-avatar-sync/internal/logger"
	"github.com/MKhiriev/go-avatar-sync/internal/prefs"
	"github.com/MKhiriev/go-avatar-sync/internal/store"
)

// Profile is the prepared session state of one user.
type Profile struct {
	UserID string
	Prefs  *prefs.Service
}

// ProfileManager creates and owns profiles. Like the preference stores it
// hands out, it is used from the client event loop only.
type ProfileManager struct {
	repo          store.PrefRepository
	notifier      events.Notifier
	logger        *logger.Logger
	registrations []func(*prefs.Service)

	profiles map[string]*Profile
}

// NewProfileManager creates a manager. Every registration function is applied
// to the preference store of each new profile before it is loaded.
func NewProfileManager(repo store.PrefRepository, notifier events.Notifier, logger *logger.Logger, registrations ...func(*prefs.Service)) *ProfileManager {
	return &ProfileManager{
		repo:          repo,
		notifier:      notifier,
		logger:        logger,
		registrations: registrations,
		profiles:      make(map[string]*Profile),
	}
}

// Profile returns the prepared profile of userID, or nil if it is not ready.
func (m *ProfileManager) Profile(userID string) *Profile {
	return m.profiles[userID]
}

// PrepareProfile loads the preferences of userID and announces the profile
// with [events.TypeUserProfilePrepared]. Preparing a ready profile returns it
// without a second announcement.
func (m *ProfileManager) PrepareProfile(ctx context.Context, userID string) (*Profile, error) {
	if p, ok := m.profiles[userID]; ok {
		return p, nil
	}

	svc := prefs.NewService(userID, m.repo, m.logger)
	for _, register := range m.registrations {
		register(svc)
	}
	if err := svc.Load(ctx); err != nil {
		m.logger.Err(err).
			Str("func", "ProfileManager.PrepareProfile").
			Str("user_id", userID).
			Msg("failed to load profile prefs")
		return nil, fmt.Errorf("prepare profile: %w", err)
	}

	p := &Profile{UserID: userID, Prefs: svc}
	m.profiles[userID] = p

	m.logger.Info().
		Str("func", "ProfileManager.PrepareProfile").
		Str("user_id", userID).
		Msg("profile prepared")

	m.notifier.Notify(events.Event{
		Type:    events.TypeUserProfilePrepared,
		UserID:  userID,
		Details: p,
	})

	return p, nil
}

// RemoveProfile forgets the profile of userID.
func (m *ProfileManager) RemoveProfile(userID string) {
	delete(m.profiles, userID)
}
