// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-avatar-sync/internal/logger"
	"github.com/MKhiriev/go-avatar-sync/models"
)

type prefRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewPrefRepository returns a SQLite-backed [PrefRepository]. Dictionary
// values are stored as JSON text.
func NewPrefRepository(db *DB, logger *logger.Logger) PrefRepository {
	return &prefRepository{db: db, logger: logger}
}

func (p *prefRepository) GetPrefs(ctx context.Context, userID string) ([]models.PrefRecord, error) {
	rows, err := p.db.QueryContext(ctx, getPrefs, userID)
	if err != nil {
		p.logger.Err(err).
			Str("func", "prefRepository.GetPrefs").
			Str("user_id", userID).
			Msg("failed to execute query for getting prefs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var prefs []models.PrefRecord
	for rows.Next() {
		var (
			rec models.PrefRecord
			raw string
		)
		if err = rows.Scan(&rec.Key, &raw, &rec.UpdatedAt, &rec.Pending); err != nil {
			p.logger.Err(err).
				Str("func", "prefRepository.GetPrefs").
				Str("user_id", userID).
				Msg("failed to scan pref row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if err = json.Unmarshal([]byte(raw), &rec.Value); err != nil {
			p.logger.Err(err).
				Str("func", "prefRepository.GetPrefs").
				Str("user_id", userID).
				Str("pref_key", rec.Key).
				Msg("failed to decode pref value")
			return nil, fmt.Errorf("%w (key=%s): %w", ErrMalformedPref, rec.Key, err)
		}
		prefs = append(prefs, rec)
	}

	if err = rows.Err(); err != nil {
		p.logger.Err(err).
			Str("func", "prefRepository.GetPrefs").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return prefs, nil
}

func (p *prefRepository) SavePref(ctx context.Context, userID string, pref models.PrefRecord) error {
	value := pref.Value
	if value == nil {
		value = models.PrefDictionary{}
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode pref %s: %w", pref.Key, err)
	}

	result, err := p.db.execRetrying(ctx, savePref, userID, pref.Key, string(raw), pref.UpdatedAt, pref.Pending)
	if err != nil {
		p.logger.Err(err).
			Str("func", "prefRepository.SavePref").
			Str("user_id", userID).
			Str("pref_key", pref.Key).
			Msg("failed to execute upsert for pref")
		return fmt.Errorf("%w: save pref %s: %w", ErrExecutingStatement, pref.Key, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for pref %s: %w", pref.Key, err)
	}
	if affected == 0 {
		return ErrPrefNotSaved
	}

	return nil
}
