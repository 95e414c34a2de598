// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-avatar-sync/internal/adapter"
	"github.com/MKhiriev/go-avatar-sync/internal/config"
	"github.com/MKhiriev/go-avatar-sync/internal/events"
	"github.com/MKhiriev/go-avatar-sync/internal/logger"
	"github.com/MKhiriev/go-avatar-sync/internal/session"
	"github.com/MKhiriev/go-avatar-sync/internal/store"
	"github.com/MKhiriev/go-avatar-sync/internal/workers"
)

// ClientServices groups everything the client runs for its admitted user.
// Except for SyncJob, all of it is used from Loop only.
type ClientServices struct {
	Loop     *workers.Loop
	Events   *events.Service
	Profiles *session.ProfileManager
	Images   UserImageManager
	Screen   *UserImageScreen

	Adapter     adapter.ServerAdapter
	SyncService ClientSyncService
	SyncJob     ClientSyncJob
}

func NewClientServices(storages *store.Storages, serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	loop := workers.NewLoop()
	bus := events.NewService()
	userID := cfg.App.UserID

	profiles := session.NewProfileManager(storages.PrefRepository, bus, logger, RegisterProfilePrefs)
	images := NewUserImageManager(storages.UserRepository, loop, bus, cfg.App.DefaultImageIndex, logger)
	syncSvc := NewClientSyncService(profiles, serverAdapter, loop, logger)

	return &ClientServices{
		Loop:        loop,
		Events:      bus,
		Profiles:    profiles,
		Images:      images,
		Screen:      NewUserImageScreen(userID, images, logger),
		Adapter:     serverAdapter,
		SyncService: syncSvc,
		SyncJob:     NewClientSyncJob(syncSvc, userID, cfg.Workers.SyncInterval, logger),
	}
}
