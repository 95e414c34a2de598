// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"crypto/hmac"
	"encoding/json"
	"io"
	"net/http"

	"github.com/MKhiriev/go-avatar-sync/internal/app"
	"github.com/MKhiriev/go-avatar-sync/internal/logger"
	"github.com/MKhiriev/go-avatar-sync/internal/utils"
	"github.com/MKhiriev/go-avatar-sync/models"
)

// uploadHashing rejects a [models.PrefsUploadRequest] whose hash does not
// match the HMAC of its prefs. The body is restored for the next handler.
func (h *Handler) uploadHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.verifyHash {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.uploadHashing").Msg(app.MsgFailedToReadBody)
			http.Error(w, app.MsgFailedToReadBody, http.StatusBadRequest)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		var req models.PrefsUploadRequest
		if err = json.Unmarshal(body, &req); err != nil {
			log.Err(err).Str("func", "*Handler.uploadHashing").Msg("failed to decode JSON")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}

		payload, err := json.Marshal(req.Prefs)
		if err != nil {
			log.Err(err).Str("func", "*Handler.uploadHashing").Msg("failed to marshal prefs")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}

		hashedBody := utils.HashHex(payload)
		if !hmac.Equal([]byte(hashedBody), []byte(req.Hash)) {
			log.Error().Str("func", "*Handler.uploadHashing").
				Str("hash from request", req.Hash).
				Str("hashed body", hashedBody).
				Msg("hashes are not equal")
			http.Error(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
