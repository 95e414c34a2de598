// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment.
func parseEnv(cfg *StructuredConfig) error {
	return parseEnvFrom(cfg, nil)
}

// parseEnvFrom fills cfg from environ, or from the process environment when
// environ is nil. Variable names come from the env and envPrefix tags, e.g.
// APP_USER_ID or WORKERS_SYNC_INTERVAL.
func parseEnvFrom(cfg *StructuredConfig, environ map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
