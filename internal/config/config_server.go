// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ServerConfig is the configuration view of the preference sync server.
type ServerConfig struct {
	// HashKey verifies uploaded preference batches; empty disables the check.
	HashKey string
	// Version is reported by the version endpoint.
	Version string
	// Token verifies bearer tokens; an empty SignKey disables the check.
	Token   Token
	Server  Server
	Storage Storage
}

// GetServerConfig builds and validates the server config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		HashKey: cfg.App.HashKey,
		Version: cfg.App.Version,
		Token:   newToken(cfg.App),
		Server:  cfg.Server,
		Storage: cfg.Storage,
	}

	return serverCfg, serverCfg.validate()
}
