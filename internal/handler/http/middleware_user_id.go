// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-avatar-sync/internal/app"
	"github.com/MKhiriev/go-avatar-sync/internal/logger"
	"github.com/MKhiriev/go-avatar-sync/internal/utils"
)

// withUserID moves the {user_id} path parameter into the request context and
// into the request logger.
func (h *Handler) withUserID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		userID, err := url.PathUnescape(chi.URLParam(r, userIDParam))
		if err != nil || userID == "" {
			log.Error().Str("func", "*Handler.withUserID").Msg("no valid user ID in path")
			http.Error(w, app.MsgInvalidUserID, http.StatusBadRequest)
			return
		}

		ctx := utils.WithUserID(r.Context(), userID)
		ctx = log.ForUser(userID).WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
