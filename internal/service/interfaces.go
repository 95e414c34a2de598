// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the avatar sync client and of
// the preference sync server.
//
// On the client, [UserImageSyncObserver] keeps a user's avatar index in
// agreement with the synced "user_image_info" preference, [UserImageManager]
// owns the local avatar, and [ClientSyncService] replicates preferences with
// the server. On the server, [PrefsService] stores uploaded preferences.
package service

import (
	"context"

	"github.com/MKhiriev/go-avatar-sync/internal/prefs"
	"github.com/MKhiriev/go-avatar-sync/internal/session"
	"github.com/MKhiriev/go-avatar-sync/internal/workers"
	"github.com/MKhiriev/go-avatar-sync/models"
)

// PrefsService stores the synced preferences of every user on the server.
type PrefsService interface {
	// GetUserPrefs returns every stored preference record of userID.
	GetUserPrefs(ctx context.Context, userID string) ([]models.PrefRecord, error)

	// SaveUserPrefs stores records of userID. A record older than the stored
	// one of the same key is skipped.
	SaveUserPrefs(ctx context.Context, userID string, records []models.PrefRecord) error
}

// PrefsServiceWrapper decorates a PrefsService, e.g. with validation.
type PrefsServiceWrapper interface {
	Wrap(PrefsService) PrefsService
}

// AppInfoService reports build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ProfileSource returns prepared profiles. It is implemented by
// [session.ProfileManager].
type ProfileSource interface {
	Profile(userID string) *session.Profile
}

// SyncablePrefs is the view of a user's preference store used to reconcile
// the avatar. It is implemented by [prefs.Service].
type SyncablePrefs interface {
	prefs.PrefSource

	GetDictionary(key string) (models.PrefDictionary, bool)
	UpdateDictionary(key string, fn func(d models.PrefDictionary))

	IsPrioritySyncing() bool
	AddSyncObserver(o prefs.SyncObserver)
	RemoveSyncObserver(o prefs.SyncObserver)
}

// UserImageManager owns the locally stored avatar of admitted users.
type UserImageManager interface {
	// LoadUser reads userID from storage into memory, creating it with the
	// default avatar if it was never stored.
	LoadUser(ctx context.Context, userID string) (models.User, error)

	// ImageIndex returns the current avatar index of a loaded user, or
	// [models.InvalidImageIndex] if the user is not loaded.
	ImageIndex(userID string) int

	// SaveUserDefaultImageIndex schedules a switch to the built-in image
	// index. The change is announced with [events.TypeUserImageChanged] once
	// it has been stored.
	SaveUserDefaultImageIndex(userID string, index int)

	// SaveUserImageFromProfileImage schedules a switch to the account profile
	// picture.
	SaveUserImageFromProfileImage(userID string)
}

// ImageUpdateGuard tells whether the local avatar may be replaced right now.
type ImageUpdateGuard interface {
	CanUpdateLocalImageNow() bool
}

// InitialSyncObserver learns how the first avatar reconciliation ended.
type InitialSyncObserver interface {
	OnInitialSync(localImageUpdated bool)
}

// Dispatcher runs tasks on the client event loop. It is implemented by
// [workers.Loop].
type Dispatcher interface {
	Post(fn func())
}

// Executor runs a task on the client event loop and waits for it.
type Executor interface {
	Do(ctx context.Context, fn func()) error
}

// UserImageSyncObserver reconciles the avatar of one user with sync.
type UserImageSyncObserver interface {
	AddObserver(o InitialSyncObserver)
	RemoveObserver(o InitialSyncObserver)
	HasObserver(o InitialSyncObserver) bool

	// State returns the current reconciliation state.
	State() ReconcilerState

	// Close drops every registration. The observer is inert afterwards.
	Close()
}

// ClientSyncService replicates a user's preferences with the server.
type ClientSyncService interface {
	FullSync(ctx context.Context, userID string) error
}

// ClientSyncJob runs FullSync periodically. Run makes it a [workers.Worker].
type ClientSyncJob interface {
	workers.Worker

	Start(ctx context.Context)
	Stop()
}
