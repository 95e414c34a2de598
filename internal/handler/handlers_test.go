// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-avatar-sync/internal/config"
	"github.com/MKhiriev/go-avatar-sync/internal/logger"
	"github.com/MKhiriev/go-avatar-sync/internal/service"
)

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.ServerConfig
		wantErr error
	}{
		{
			name: "http address configured",
			cfg:  &config.ServerConfig{Server: config.Server{HTTPAddress: ":8080"}},
		},
		{
			name:    "no address",
			cfg:     &config.ServerConfig{},
			wantErr: errNoHandlersAreCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlers, err := NewHandlers(&service.Services{}, tt.cfg, logger.Nop())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, handlers)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, handlers.HTTP)
		})
	}
}
