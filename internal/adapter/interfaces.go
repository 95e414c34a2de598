// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the preference sync server.
//
// The primary abstraction is [ServerAdapter], which decouples the client sync
// service from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-avatar-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the preference
// sync server.
type ServerAdapter interface {
	// GetPrefs fetches every preference record the server holds for userID.
	// A user unknown to the server has no records; that is not an error.
	GetPrefs(ctx context.Context, userID string) ([]models.PrefRecord, error)

	// UploadPrefs sends locally changed records of userID. A transport
	// integrity hash covering the records is attached automatically.
	UploadPrefs(ctx context.Context, userID string, records []models.PrefRecord) error

	// GetServerVersion returns the version string reported by the server.
	GetServerVersion(ctx context.Context) (string, error)
}
