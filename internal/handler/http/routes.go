// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const userIDParam = "user_id"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)

	router.Get("/api/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.withUserID, h.auth)
		r.Get("/api/prefs/{"+userIDParam+"}", h.getUserPrefs)
		r.With(h.uploadHashing).Put("/api/prefs/{"+userIDParam+"}", h.uploadUserPrefs)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
