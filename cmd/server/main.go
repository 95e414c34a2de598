// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-avatar-sync/internal/config"
	"github.com/MKhiriev/go-avatar-sync/internal/handler"
	"github.com/MKhiriev/go-avatar-sync/internal/logger"
	"github.com/MKhiriev/go-avatar-sync/internal/server"
	"github.com/MKhiriev/go-avatar-sync/internal/service"
	"github.com/MKhiriev/go-avatar-sync/internal/store"
	"github.com/MKhiriev/go-avatar-sync/internal/utils"
	"github.com/MKhiriev/go-avatar-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("avatar-sync-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("dsn", cfg.Storage.DB.DSN).
		Bool("hash_check", cfg.HashKey != "").
		Msg("received configs")

	utils.InitHasherPool(cfg.HashKey)

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() models.AppBuildInfo {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(info)
	return info
}
