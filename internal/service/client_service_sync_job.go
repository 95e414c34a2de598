// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-avatar-sync/internal/logger"
)

const defaultSyncInterval = 5 * time.Minute

type clientSyncJob struct {
	syncService ClientSyncService
	userID      string
	interval    time.Duration
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a job that calls syncService.FullSync for userID
// right away and then every interval. If interval is zero or negative it
// defaults to 5 minutes. The job is idle until Start or Run is called.
func NewClientSyncJob(syncService ClientSyncService, userID string, interval time.Duration, logger *logger.Logger) ClientSyncJob {
	if interval <= 0 {
		interval = defaultSyncInterval
	}
	return &clientSyncJob{
		syncService: syncService,
		userID:      userID,
		interval:    interval,
		logger:      logger,
	}
}

// Run implements [workers.Worker]. It blocks until ctx is cancelled.
func (j *clientSyncJob) Run(ctx context.Context) {
	j.Start(ctx)
	<-ctx.Done()
	j.Stop()
}

// Start stops any previously running job, then launches a background
// goroutine that syncs immediately and on every tick. The goroutine exits
// when ctx is cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		j.sync(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.sync(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has exited. It is
// a no-op when the job is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *clientSyncJob) sync(ctx context.Context) {
	if err := j.syncService.FullSync(ctx, j.userID); err != nil && ctx.Err() == nil {
		j.logger.Err(err).
			Str("func", "clientSyncJob.sync").
			Str("user_id", j.userID).
			Msg("preference sync failed")
	}
}
