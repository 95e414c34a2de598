// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-avatar-sync/internal/logger"
	"github.com/MKhiriev/go-avatar-sync/models"
)

func TestPrefRepository_GetPrefs_DecodesJSON(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPrefRepository(db, logger.Nop())

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT pref_key, value, updated_at").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"pref_key", "value", "updated_at", "pending"}).
			AddRow(models.UserImageInfoPref, `{"image_index":3}`, now, true))

	prefs, err := repo.GetPrefs(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, prefs, 1)
	assert.Equal(t, models.UserImageInfoPref, prefs[0].Key)
	assert.Equal(t, now, prefs[0].UpdatedAt)
	assert.True(t, prefs[0].Pending)

	index, ok := models.ImageIndexFromRecord(prefs[0].Value)
	assert.True(t, ok)
	assert.Equal(t, 3, index)
}

func TestPrefRepository_GetPrefs_MalformedValue(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPrefRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT pref_key, value, updated_at").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"pref_key", "value", "updated_at", "pending"}).
			AddRow(models.UserImageInfoPref, `[1,2`, time.Now(), false))

	_, err := repo.GetPrefs(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrMalformedPref)
}

func TestPrefRepository_GetPrefs_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPrefRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT pref_key, value, updated_at").
		WillReturnError(errors.New("no such table: prefs"))

	_, err := repo.GetPrefs(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestPrefRepository_GetPrefs_RowError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPrefRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT pref_key, value, updated_at").
		WillReturnRows(sqlmock.NewRows([]string{"pref_key", "value", "updated_at", "pending"}).
			AddRow("a", `{}`, time.Now(), false).
			RowError(0, errors.New("interrupted")))

	_, err := repo.GetPrefs(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestPrefRepository_SavePref(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPrefRepository(db, logger.Nop())

	rec := models.PrefRecord{
		Key:       models.UserImageInfoPref,
		Value:     models.PrefDictionary{models.ImageIndexField: 7},
		UpdatedAt: time.Now(),
		Pending:   true,
	}
	mock.ExpectExec("INSERT INTO prefs").
		WithArgs("alice", rec.Key, `{"image_index":7}`, rec.UpdatedAt, true).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SavePref(context.Background(), "alice", rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPrefRepository_SavePref_NilValueStoredAsEmptyObject(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPrefRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO prefs").
		WithArgs("alice", "empty", `{}`, sqlmock.AnyArg(), false).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SavePref(context.Background(), "alice", models.PrefRecord{Key: "empty"}))
}

func TestPrefRepository_SavePref_NoRowsAffected(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPrefRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO prefs").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SavePref(context.Background(), "alice", models.PrefRecord{Key: "k"})
	assert.ErrorIs(t, err, ErrPrefNotSaved)
}

func TestPrefRepository_SavePref_UnencodableValue(t *testing.T) {
	db, _ := newTestDB(t)
	repo := NewPrefRepository(db, logger.Nop())

	err := repo.SavePref(context.Background(), "alice", models.PrefRecord{
		Key:   "bad",
		Value: models.PrefDictionary{"ch": make(chan int)},
	})
	assert.Error(t, err)
}
