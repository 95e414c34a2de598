// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-avatar-sync/internal/config"
	"github.com/MKhiriev/go-avatar-sync/internal/logger"
	"github.com/MKhiriev/go-avatar-sync/internal/utils"
	"github.com/MKhiriev/go-avatar-sync/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	hashKey string
	token   config.Token

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, hashKey: appCfg.HashKey, token: appCfg.Token, logger: logger}, nil
}

// authorization returns the bearer header value for userID, or "" when no
// token sign key is configured.
func (h *httpServerAdapter) authorization(userID string) (string, error) {
	if !h.token.Enabled() {
		return "", nil
	}
	token, err := utils.GenerateJWTToken(h.token.Issuer, userID, h.token.Duration, h.token.SignKey)
	if err != nil {
		return "", fmt.Errorf("sign request token: %w", err)
	}
	return "Bearer " + token, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetPrefs implements [ServerAdapter]. It calls GET /api/prefs/{user_id}.
func (h *httpServerAdapter) GetPrefs(ctx context.Context, userID string) ([]models.PrefRecord, error) {
	var response models.PrefsSyncResponse

	auth, err := h.authorization(userID)
	if err != nil {
		return nil, err
	}

	request := h.client.R().
		SetContext(ctx).
		SetPathParam("user_id", userID).
		SetResult(&response)
	if auth != "" {
		request.SetHeader("Authorization", auth)
	}

	resp, err := request.Get("/api/prefs/{user_id}")
	if err != nil {
		return nil, fmt.Errorf("get prefs request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	h.logger.Debug().
		Str("func", "httpServerAdapter.GetPrefs").
		Str("user_id", userID).
		Int("length", response.Length).
		Msg("prefs fetched from server")

	return response.Prefs, nil
}

// UploadPrefs implements [ServerAdapter]. It calls PUT /api/prefs/{user_id}
// with a [models.PrefsUploadRequest].
func (h *httpServerAdapter) UploadPrefs(ctx context.Context, userID string, records []models.PrefRecord) error {
	hash, err := computeTransportHash(records, h.hashKey)
	if err != nil {
		return fmt.Errorf("hash upload payload: %w", err)
	}

	req := models.PrefsUploadRequest{
		Prefs:  records,
		Length: len(records),
		Hash:   hash,
	}

	auth, err := h.authorization(userID)
	if err != nil {
		return err
	}

	request := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("user_id", userID).
		SetBody(req)
	if auth != "" {
		request.SetHeader("Authorization", auth)
	}

	resp, err := request.Put("/api/prefs/{user_id}")
	if err != nil {
		return fmt.Errorf("upload prefs request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.logger.Debug().
		Str("func", "httpServerAdapter.UploadPrefs").
		Str("user_id", userID).
		Int("length", len(records)).
		Msg("prefs uploaded to server")

	return nil
}

// GetServerVersion implements [ServerAdapter]. It calls GET /api/version.
func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("get server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func computeTransportHash(v any, hashKey string) (string, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	return utils.HashString(string(payload), hashKey), nil
}
