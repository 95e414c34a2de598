// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes returned by the sync server.
var (
	// ErrBadRequest is returned for HTTP 400, e.g. a failed integrity check.
	ErrBadRequest = errors.New("bad request")
	// ErrUnauthorized is returned for HTTP 401.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrForbidden is returned for HTTP 403.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound is returned for HTTP 404.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned for HTTP 409.
	ErrConflict = errors.New("conflict")
	// ErrBadGateway is returned for HTTP 502.
	ErrBadGateway = errors.New("bad gateway")
	// ErrInternalServerError is returned for HTTP 500.
	ErrInternalServerError = errors.New("internal server error")
)
