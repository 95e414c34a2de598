// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-avatar-sync/internal/adapter"
	"github.com/MKhiriev/go-avatar-sync/internal/logger"
	"github.com/MKhiriev/go-avatar-sync/internal/prefs"
	"github.com/MKhiriev/go-avatar-sync/models"
)

type clientSyncService struct {
	profiles ProfileSource
	adapter  adapter.ServerAdapter
	executor Executor

	logger *logger.Logger
}

// NewClientSyncService creates the client side of preference replication.
// Network calls run on the caller's goroutine; every access to a preference
// store is executed on the event loop through executor.
func NewClientSyncService(profiles ProfileSource, serverAdapter adapter.ServerAdapter, executor Executor, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{
		profiles: profiles,
		adapter:  serverAdapter,
		executor: executor,
		logger:   logger,
	}
}

// FullSync pulls the server records of userID and merges them, priority tier
// first. Once the priority tier is merged the store reports priority syncing.
// Local changes still pending afterwards are uploaded and marked synced.
func (s *clientSyncService) FullSync(ctx context.Context, userID string) error {
	remote, err := s.adapter.GetPrefs(ctx, userID)
	if err != nil {
		return fmt.Errorf("get server prefs: %w", err)
	}

	var (
		pending  []models.PrefRecord
		merged   int
		notReady bool
	)
	err = s.executor.Do(ctx, func() {
		p := s.profiles.Profile(userID)
		if p == nil {
			notReady = true
			return
		}

		merged += mergeTier(p.Prefs, remote, prefs.PrioritySyncable)
		p.Prefs.SetPrioritySyncing(true)
		merged += mergeTier(p.Prefs, remote, prefs.Syncable)

		pending = p.Prefs.PendingChanges()
	})
	if err != nil {
		return fmt.Errorf("merge server prefs: %w", err)
	}
	if notReady {
		return ErrProfileNotReady
	}

	s.logger.Debug().
		Str("func", "clientSyncService.FullSync").
		Str("user_id", userID).
		Int("remote", len(remote)).
		Int("merged", merged).
		Int("pending", len(pending)).
		Msg("server prefs merged")

	if len(pending) == 0 {
		return nil
	}

	if err = s.adapter.UploadPrefs(ctx, userID, pending); err != nil {
		return fmt.Errorf("upload pending prefs: %w", err)
	}

	err = s.executor.Do(ctx, func() {
		if p := s.profiles.Profile(userID); p != nil {
			p.Prefs.MarkSynced(pending)
		}
	})
	if err != nil {
		return fmt.Errorf("mark prefs synced: %w", err)
	}

	return nil
}

func mergeTier(store *prefs.Service, records []models.PrefRecord, tier prefs.Tier) int {
	merged := 0
	for _, rec := range records {
		if store.Tier(rec.Key) != tier {
			continue
		}
		if store.MergeRemote(rec) {
			merged++
		}
	}
	return merged
}
