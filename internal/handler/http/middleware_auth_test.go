// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-avatar-sync/internal/app"
	"github.com/MKhiriev/go-avatar-sync/internal/config"
	"github.com/MKhiriev/go-avatar-sync/internal/utils"
)

var testToken = config.Token{SignKey: "test-sign-key", Issuer: "avatar-sync", Duration: time.Minute}

func mustToken(t *testing.T, userID string, d time.Duration, signKey string) string {
	t.Helper()
	tok, err := utils.GenerateJWTToken(testToken.Issuer, userID, d, signKey)
	require.NoError(t, err)
	return tok
}

func expiredToken(t *testing.T, userID string) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:    testToken.Issuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}).SignedString([]byte(testToken.SignKey))
	require.NoError(t, err)
	return tok
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		wantCode      int
		wantBody      string
	}{
		{
			name:          "valid token",
			authorization: "Bearer " + mustToken(t, testUserID, time.Minute, testToken.SignKey),
			wantCode:      http.StatusOK,
		},
		{
			name:     "missing header",
			wantCode: http.StatusUnauthorized,
			wantBody: app.MsgInvalidAuthorization,
		},
		{
			name:          "not a bearer token",
			authorization: "Basic YWxpY2U6c2VjcmV0",
			wantCode:      http.StatusUnauthorized,
			wantBody:      app.MsgInvalidAuthorization,
		},
		{
			name:          "foreign sign key",
			authorization: "Bearer " + mustToken(t, testUserID, time.Minute, "other-key"),
			wantCode:      http.StatusUnauthorized,
			wantBody:      app.MsgInvalidAuthorization,
		},
		{
			name:          "expired",
			authorization: "Bearer " + expiredToken(t, testUserID),
			wantCode:      http.StatusUnauthorized,
			wantBody:      app.MsgTokenIsExpired,
		},
		{
			name:          "other user",
			authorization: "Bearer " + mustToken(t, "mallory@example.com", time.Minute, testToken.SignKey),
			wantCode:      http.StatusForbidden,
			wantBody:      app.MsgTokenUserMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, prefsService := newTokenTestHandler(t, testToken)
			prefsService.stored[testUserID] = sampleRecords()

			req := httptest.NewRequest(http.MethodGet, "/api/prefs/"+testUserID, nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			rec := httptest.NewRecorder()
			h.Init().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestAuth_RejectedUploadIsNotSaved(t *testing.T) {
	h, prefsService := newTokenTestHandler(t, testToken)

	req := httptest.NewRequest(http.MethodPut, "/api/prefs/"+testUserID,
		bytes.NewReader(uploadBody(t, sampleRecords(), "")))
	req.Header.Set("Authorization", "Bearer "+mustToken(t, "mallory@example.com", time.Minute, testToken.SignKey))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, prefsService.saved)
}

func TestAuth_DisabledWithoutSignKey(t *testing.T) {
	h, prefsService := newTestHandler(t, "")
	prefsService.stored[testUserID] = sampleRecords()

	rec := serve(h.Init(), http.MethodGet, "/api/prefs/"+testUserID, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_VersionIsPublic(t *testing.T) {
	h, _ := newTokenTestHandler(t, testToken)

	rec := serve(h.Init(), http.MethodGet, "/api/version", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}
