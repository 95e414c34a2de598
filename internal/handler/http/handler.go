// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-avatar-sync/internal/config"
	"github.com/MKhiriev/go-avatar-sync/internal/logger"
	"github.com/MKhiriev/go-avatar-sync/internal/service"
	"github.com/MKhiriev/go-avatar-sync/internal/utils"
)

type Handler struct {
	services    *service.Services
	idGenerator *utils.UUIDGenerator
	verifyHash  bool
	token       config.Token

	logger *logger.Logger
}

// NewHandler creates the REST handler. Upload hashes are verified with the
// pooled hasher from utils.InitHasherPool when hashKey is not empty. Prefs
// routes require a bearer token when token has a sign key.
func NewHandler(services *service.Services, hashKey string, token config.Token, logger *logger.Logger) *Handler {
	logger.Info().
		Bool("verify_hash", hashKey != "").
		Bool("verify_token", token.Enabled()).
		Msg("http handler created")
	return &Handler{
		services:    services,
		idGenerator: utils.NewUUIDGenerator(),
		verifyHash:  hashKey != "",
		token:       token,
		logger:      logger,
	}
}
