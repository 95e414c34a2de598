// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-avatar-sync/internal/service"
	"github.com/MKhiriev/go-avatar-sync/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidUserID:             http.StatusBadRequest,
	service.ErrValidationNoPrefsProvided: http.StatusBadRequest,
	service.ErrValidationInvalidPref:     http.StatusBadRequest,

	store.ErrUserNotFound:  http.StatusNotFound,
	store.ErrPrefNotSaved:  http.StatusInternalServerError,
	store.ErrMalformedPref: http.StatusInternalServerError,

	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
