// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-avatar-sync/internal/adapter"
	"github.com/MKhiriev/go-avatar-sync/internal/client"
	"github.com/MKhiriev/go-avatar-sync/internal/config"
	"github.com/MKhiriev/go-avatar-sync/internal/logger"
	"github.com/MKhiriev/go-avatar-sync/internal/service"
	"github.com/MKhiriev/go-avatar-sync/internal/store"
	"github.com/MKhiriev/go-avatar-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("avatar-sync-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("avatar-sync-client", cfg.App.LogDir)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	services := service.NewClientServices(storages, serverAdapter, cfg, log)

	app, err := client.NewApp(services, cfg.App.UserID, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
