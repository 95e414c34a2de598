// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-avatar-sync/internal/config"
	"github.com/MKhiriev/go-avatar-sync/internal/logger"
	"github.com/MKhiriev/go-avatar-sync/internal/store"
	"github.com/MKhiriev/go-avatar-sync/models"
)

// Services groups the sync server's services.
type Services struct {
	PrefsService   PrefsService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.Version, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	prefsService := NewPrefsValidationService().Wrap(NewPrefsService(storages.PrefRepository, logger))

	return &Services{
		PrefsService:   prefsService,
		AppInfoService: appInfo,
	}, nil
}
