// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-avatar-sync/internal/logger"
	"github.com/MKhiriev/go-avatar-sync/models"
)

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

// NewAppInfoService reports version, or the build version of buildInfo when
// version is empty.
func NewAppInfoService(version string, buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if version == "" {
		if !buildInfo.HasVersion() {
			return nil, ErrVersionIsNotSpecified
		}
		version = buildInfo.BuildVersion()
	}

	return &appInfoService{
		appVersion: version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
