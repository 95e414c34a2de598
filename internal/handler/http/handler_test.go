// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-avatar-sync/internal/config"
	"github.com/MKhiriev/go-avatar-sync/internal/logger"
	"github.com/MKhiriev/go-avatar-sync/internal/service"
	"github.com/MKhiriev/go-avatar-sync/internal/utils"
	"github.com/MKhiriev/go-avatar-sync/models"
)

const (
	testHashKey = "test-hash-key"
	testUserID  = "alice@example.com"
)

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(context.Context) string {
	return f.version
}

type fakePrefsService struct {
	stored  map[string][]models.PrefRecord
	saved   []models.PrefRecord
	getErr  error
	saveErr error
}

func (f *fakePrefsService) GetUserPrefs(_ context.Context, userID string) ([]models.PrefRecord, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.stored[userID], nil
}

func (f *fakePrefsService) SaveUserPrefs(_ context.Context, _ string, records []models.PrefRecord) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, records...)
	return nil
}

func newTestHandler(t *testing.T, hashKey string) (*Handler, *fakePrefsService) {
	t.Helper()
	utils.InitHasherPool(testHashKey)

	prefsService := &fakePrefsService{stored: make(map[string][]models.PrefRecord)}
	services := &service.Services{
		PrefsService:   prefsService,
		AppInfoService: &fakeAppInfoService{version: "1.2.3"},
	}
	return NewHandler(services, hashKey, config.Token{}, logger.Nop()), prefsService
}

func newTokenTestHandler(t *testing.T, token config.Token) (*Handler, *fakePrefsService) {
	t.Helper()
	h, prefsService := newTestHandler(t, "")
	h.token = token
	return h, prefsService
}

func sampleRecords() []models.PrefRecord {
	return []models.PrefRecord{{
		Key:       models.UserImageInfoPref,
		Value:     models.PrefDictionary{models.ImageIndexField: 7},
		UpdatedAt: time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC),
	}}
}

func uploadBody(t *testing.T, records []models.PrefRecord, hash string) []byte {
	t.Helper()
	body, err := json.Marshal(models.PrefsUploadRequest{Prefs: records, Length: len(records), Hash: hash})
	require.NoError(t, err)
	return body
}

func validHash(t *testing.T, records []models.PrefRecord) string {
	t.Helper()
	payload, err := json.Marshal(records)
	require.NoError(t, err)
	return utils.HashString(string(payload), testHashKey)
}

func serve(h http.Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
