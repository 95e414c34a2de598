// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks invariants of the merged [StructuredConfig] that hold for
// every runtime.
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.SyncInterval < 0 || cfg.Server.RequestTimeout < 0 || cfg.Adapter.RequestTimeout < 0 ||
		cfg.App.TokenDuration < 0 {
		return ErrNegativeDuration
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.App.UserID == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
