// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-avatar-sync/internal/app"
	"github.com/MKhiriev/go-avatar-sync/internal/logger"
	"github.com/MKhiriev/go-avatar-sync/internal/utils"
	"github.com/MKhiriev/go-avatar-sync/models"
)

func (h *Handler) getUserPrefs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getUserPrefs").Msg(app.MsgInvalidUserID)
		http.Error(w, app.MsgInvalidUserID, http.StatusBadRequest)
		return
	}

	records, err := h.services.PrefsService.GetUserPrefs(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getUserPrefs").Msg(app.MsgErrorGettingPrefs)
		http.Error(w, app.MsgErrorGettingPrefs, statusFromError(err))
		return
	}
	if records == nil {
		records = []models.PrefRecord{}
	}

	utils.WriteJSON(w, models.PrefsSyncResponse{Prefs: records, Length: len(records)}, http.StatusOK)
}

func (h *Handler) uploadUserPrefs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.uploadUserPrefs").Msg(app.MsgInvalidUserID)
		http.Error(w, app.MsgInvalidUserID, http.StatusBadRequest)
		return
	}

	var req models.PrefsUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.uploadUserPrefs").Msg(app.MsgInvalidDataProvided)
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	if req.Length != len(req.Prefs) {
		log.Error().Str("func", "*Handler.uploadUserPrefs").
			Int("length", req.Length).
			Int("prefs", len(req.Prefs)).
			Msg(app.MsgLengthMismatch)
		http.Error(w, app.MsgLengthMismatch, http.StatusBadRequest)
		return
	}

	if err := h.services.PrefsService.SaveUserPrefs(ctx, userID, req.Prefs); err != nil {
		log.Err(err).Str("func", "*Handler.uploadUserPrefs").Msg(app.MsgErrorSavingPrefs)
		http.Error(w, app.MsgErrorSavingPrefs, statusFromError(err))
		return
	}

	log.Debug().Str("func", "*Handler.uploadUserPrefs").Int("length", len(req.Prefs)).Msg("prefs saved")
	w.WriteHeader(http.StatusOK)
}
