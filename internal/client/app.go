// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-avatar-sync/internal/logger"
	"github.com/MKhiriev/go-avatar-sync/internal/service"
	"github.com/MKhiriev/go-avatar-sync/internal/workers"
)

var errNoUser = errors.New("no user to admit")

type App struct {
	services *service.ClientServices
	userID   string

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, userID string, logger *logger.Logger) (*App, error) {
	if userID == "" {
		return nil, errNoUser
	}
	return &App{
		services: services,
		userID:   userID,
		logger:   logger.ForUser(userID),
	}, nil
}

// Run blocks until SIGINT, SIGTERM or SIGQUIT.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(parent context.Context) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	a.checkServerVersion(ctx)

	var (
		reconciler service.UserImageSyncObserver
		setupErr   error
	)
	a.services.Loop.Post(func() {
		reconciler, setupErr = a.setup(ctx)
		if setupErr != nil {
			cancel()
		}
	})

	a.logger.Info().Msg("client started")
	workers.NewWorkers(a.services.Loop, a.services.SyncJob).Run(ctx)

	// The loop has stopped, so the loop-only state can be used here directly.
	if reconciler != nil {
		a.logger.Info().
			Str("state", reconciler.State().String()).
			Int("image_index", a.services.Images.ImageIndex(a.userID)).
			Msg("client stopped")
		reconciler.RemoveObserver(a.services.Screen)
		reconciler.Close()
	}
	a.services.Profiles.RemoveProfile(a.userID)

	if setupErr != nil {
		return fmt.Errorf("client setup: %w", setupErr)
	}
	return nil
}

// setup runs on the event loop. The reconciler is created before the profile
// is prepared and picks the profile up from the prepared notification.
func (a *App) setup(ctx context.Context) (service.UserImageSyncObserver, error) {
	user, err := a.services.Images.LoadUser(ctx, a.userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	a.logger.Info().Int("image_index", user.ImageIndex).Msg("user admitted")

	reconciler := service.NewUserImageSyncObserver(
		a.userID,
		a.services.Profiles,
		a.services.Events,
		a.services.Images,
		a.services.Screen,
		a.logger,
	)
	reconciler.AddObserver(a.services.Screen)

	if _, err = a.services.Profiles.PrepareProfile(ctx, a.userID); err != nil {
		reconciler.Close()
		return nil, fmt.Errorf("prepare profile: %w", err)
	}

	return reconciler, nil
}

func (a *App) checkServerVersion(ctx context.Context) {
	version, err := a.services.Adapter.GetServerVersion(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("sync server is not reachable, will retry on next sync")
		return
	}
	a.logger.Info().Str("server_version", version).Msg("sync server reachable")
}
