// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-avatar-sync/internal/logger"
	"github.com/MKhiriev/go-avatar-sync/internal/store"
	"github.com/MKhiriev/go-avatar-sync/models"
)

type prefsService struct {
	prefRepository store.PrefRepository

	logger *logger.Logger
}

func NewPrefsService(prefRepository store.PrefRepository, logger *logger.Logger) PrefsService {
	return &prefsService{
		prefRepository: prefRepository,
		logger:         logger,
	}
}

func (p *prefsService) GetUserPrefs(ctx context.Context, userID string) ([]models.PrefRecord, error) {
	return p.prefRepository.GetPrefs(ctx, userID)
}

// SaveUserPrefs keeps the newest write per key: a record whose UpdatedAt is
// before the stored one is dropped.
func (p *prefsService) SaveUserPrefs(ctx context.Context, userID string, records []models.PrefRecord) error {
	stored, err := p.prefRepository.GetPrefs(ctx, userID)
	if err != nil {
		return fmt.Errorf("load stored prefs: %w", err)
	}

	current := make(map[string]models.PrefRecord, len(stored))
	for _, rec := range stored {
		current[rec.Key] = rec
	}

	for _, rec := range records {
		if existing, ok := current[rec.Key]; ok && existing.UpdatedAt.After(rec.UpdatedAt) {
			p.logger.Debug().
				Str("func", "prefsService.SaveUserPrefs").
				Str("user_id", userID).
				Str("pref_key", rec.Key).
				Msg("stale pref upload skipped")
			continue
		}
		if err = p.prefRepository.SavePref(ctx, userID, rec); err != nil {
			return fmt.Errorf("save pref %s: %w", rec.Key, err)
		}
	}

	return nil
}
