// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-avatar-sync/internal/app"
	"github.com/MKhiriev/go-avatar-sync/internal/logger"
	"github.com/MKhiriev/go-avatar-sync/internal/utils"
)

// auth requires an "Authorization: Bearer <jwt>" header whose subject is the
// user of the request path. It runs after withUserID and does nothing when no
// token sign key is configured.
//
// Missing, malformed, expired or foreign-signed tokens get 401. A valid token
// of another user gets 403.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.token.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Send()
			http.Error(w, app.MsgInvalidAuthorization, http.StatusUnauthorized)
			return
		}

		subject, err := utils.ValidateJWTToken(tokenString, h.token.SignKey, h.token.Issuer)
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Msg("token rejected")
			if errors.Is(err, jwt.ErrTokenExpired) {
				http.Error(w, app.MsgTokenIsExpired, http.StatusUnauthorized)
				return
			}
			http.Error(w, app.MsgInvalidAuthorization, http.StatusUnauthorized)
			return
		}

		userID, _ := utils.GetUserIDFromContext(r.Context())
		if subject != userID {
			log.Warn().Str("func", "*Handler.auth").Str("token_subject", subject).Msg(app.MsgTokenUserMismatch)
			http.Error(w, app.MsgTokenUserMismatch, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
