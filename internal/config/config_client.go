// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// UserID is the user whose avatar the client keeps in sync.
	UserID string
	// HashKey is the HMAC key used to sign uploaded preference batches.
	HashKey string
	// DefaultImageIndex is the avatar of a user admitted for the first time.
	DefaultImageIndex int
	// LogDir is the directory of the client log file.
	LogDir string
	// Token holds the settings of the bearer tokens the client mints.
	Token Token
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the sync server address.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB DB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the client sync job runs.
	SyncInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			UserID:            cfg.App.UserID,
			HashKey:           cfg.App.HashKey,
			DefaultImageIndex: cfg.App.DefaultImageIndex,
			LogDir:            cfg.App.LogDir,
			Token:             newToken(cfg.App),
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{DB: cfg.Storage.DB},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
	}

	return clientCfg, clientCfg.validate()
}
