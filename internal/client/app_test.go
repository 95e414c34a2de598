// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-avatar-sync/internal/config"
	"github.com/MKhiriev/go-avatar-sync/internal/logger"
	"github.com/MKhiriev/go-avatar-sync/internal/mock"
	"github.com/MKhiriev/go-avatar-sync/internal/service"
	"github.com/MKhiriev/go-avatar-sync/internal/store"
	"github.com/MKhiriev/go-avatar-sync/models"
)

const testUser = "alice@example.com"

func newTestApp(t *testing.T) (*App, *store.Storages, *mock.MockServerAdapter) {
	t.Helper()

	storages, err := store.NewStorages(context.Background(), config.DB{DSN: filepath.Join(t.TempDir(), "client.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	adapter := mock.NewMockServerAdapter(gomock.NewController(t))
	cfg := &config.ClientConfig{
		App:     config.ClientApp{UserID: testUser, DefaultImageIndex: 5},
		Workers: config.ClientWorkers{SyncInterval: 20 * time.Millisecond},
	}

	services := service.NewClientServices(storages, adapter, cfg, logger.Nop())
	app, err := NewApp(services, testUser, logger.Nop())
	require.NoError(t, err)

	return app, storages, adapter
}

func TestNewApp_RequiresUser(t *testing.T) {
	_, err := NewApp(&service.ClientServices{}, "", logger.Nop())
	assert.ErrorIs(t, err, errNoUser)
}

func TestApp_PullsSyncedAvatar(t *testing.T) {
	app, storages, adapter := newTestApp(t)

	adapter.EXPECT().GetServerVersion(gomock.Any()).Return("1.0.0", nil)
	adapter.EXPECT().GetPrefs(gomock.Any(), testUser).Return([]models.PrefRecord{{
		Key:       models.UserImageInfoPref,
		Value:     models.PrefDictionary{models.ImageIndexField: 3},
		UpdatedAt: time.Now().UTC(),
	}}, nil).AnyTimes()
	adapter.EXPECT().UploadPrefs(gomock.Any(), testUser, gomock.Any()).Return(nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.run(ctx) }()

	require.Eventually(t, func() bool {
		user, err := storages.UserRepository.GetUser(context.Background(), testUser)
		return err == nil && user.ImageIndex == 3
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("client did not stop")
	}
}

func TestApp_PushesLocalAvatarWhenRemoteMissing(t *testing.T) {
	app, _, adapter := newTestApp(t)

	uploaded := make(chan []models.PrefRecord, 1)
	adapter.EXPECT().GetServerVersion(gomock.Any()).Return("", errors.New("connection refused"))
	adapter.EXPECT().GetPrefs(gomock.Any(), testUser).Return(nil, nil).AnyTimes()
	adapter.EXPECT().UploadPrefs(gomock.Any(), testUser, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, records []models.PrefRecord) error {
			select {
			case uploaded <- records:
			default:
			}
			return nil
		}).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.run(ctx) }()

	var records []models.PrefRecord
	select {
	case records = <-uploaded:
	case <-time.After(2 * time.Second):
		t.Fatal("nothing uploaded")
	}
	cancel()
	require.NoError(t, <-done)

	require.Len(t, records, 1)
	index, ok := models.ImageIndexFromRecord(records[0].Value)
	assert.True(t, ok)
	assert.Equal(t, 5, index)
}
