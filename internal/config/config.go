// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// avatar sync client and the preference sync server. It is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds identity and integrity settings.
	App App `envPrefix:"APP_"`

	// Storage holds the SQLite database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address of the preference sync server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address of the sync server as seen by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background sync job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// UserID is the identity of the user admitted by the client
	// (typically an email).
	// Env: APP_USER_ID
	UserID string `env:"USER_ID"`

	// HashKey is the HMAC key protecting uploaded preference batches.
	// Must match between client and server.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// DefaultImageIndex is the avatar assigned to a user admitted for the
	// first time on this device.
	// Env: APP_DEFAULT_IMAGE_INDEX
	DefaultImageIndex int `env:"DEFAULT_IMAGE_INDEX"`

	// LogDir is the directory of the client log file. Empty means the
	// directory of the executable.
	// Env: APP_LOG_DIR
	LogDir string `env:"LOG_DIR"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// TokenSignKey signs and verifies the bearer tokens of prefs requests.
	// Empty on the server disables token checks.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long a token minted by the client stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite database.
type DB struct {
	// DSN is the SQLite file path or URI (e.g. "avatar.db",
	// "file:avatar.db?_busy_timeout=5000").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings of the sync server.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the sync server endpoint used by the client.
type Adapter struct {
	// HTTPAddress is the base address of the sync server, either
	// "host:port" or a full "http://host:port" URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is the period of the client preference sync job.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(commandLineArgs()).
		withJSON().
		build()
}
