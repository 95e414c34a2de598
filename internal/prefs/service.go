// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package prefs implements the per-user keyed preference store that the sync
// job replicates to the server and that client components observe.
//
// A Service is not safe for concurrent use. The client calls it only from its
// event loop, so change notifications are delivered one at a time and in
// order.
package prefs

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"sort"
	"time"

	"github.com/MKhiriev/go-avatar-sync/internal/logger"
	"github.com/MKhiriev/go-avatar-sync/internal/store"
	"github.com/MKhiriev/go-avatar-sync/models"
)

// Tier decides whether and when a preference takes part in sync.
type Tier int

const (
	// Unsyncable preferences stay on this device.
	Unsyncable Tier = iota
	// Syncable preferences are replicated with the regular batch.
	Syncable
	// PrioritySyncable preferences are merged before the regular batch and
	// become readable as soon as IsPrioritySyncing reports true.
	PrioritySyncable
)

func (t Tier) String() string {
	switch t {
	case Unsyncable:
		return "unsyncable"
	case Syncable:
		return "syncable"
	case PrioritySyncable:
		return "priority_syncable"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// PrefObserver is notified after the value of an observed key changed,
// whether by a local write or by a merged remote record.
type PrefObserver interface {
	OnPreferenceChanged(key string)
}

// SyncObserver is notified once priority preferences finished their first
// merge with the server.
type SyncObserver interface {
	OnIsSyncingChanged()
}

type entry struct {
	tier      Tier
	value     models.PrefDictionary
	updatedAt time.Time
	dirty     bool
	revision  uint64
}

// Service holds the dictionary preferences of one user.
type Service struct {
	userID string
	repo   store.PrefRepository
	logger *logger.Logger
	now    func() time.Time

	entries         map[string]*entry
	prefObservers   map[string][]PrefObserver
	syncObservers   []SyncObserver
	prioritySyncing bool
}

// NewService creates an empty preference store of userID. repo may be nil,
// in which case values are kept in memory only.
func NewService(userID string, repo store.PrefRepository, logger *logger.Logger) *Service {
	return &Service{
		userID:        userID,
		repo:          repo,
		logger:        logger,
		now:           time.Now,
		entries:       make(map[string]*entry),
		prefObservers: make(map[string][]PrefObserver),
	}
}

// UserID returns the owner of the store.
func (s *Service) UserID() string {
	return s.userID
}

// Register declares key with the given sync tier. Registering an already
// registered key only updates its tier.
func (s *Service) Register(key string, tier Tier) {
	if e, ok := s.entries[key]; ok {
		e.tier = tier
		return
	}
	s.entries[key] = &entry{tier: tier}
}

// IsRegistered reports whether key was registered.
func (s *Service) IsRegistered(key string) bool {
	_, ok := s.entries[key]
	return ok
}

// Tier returns the sync tier of key, Unsyncable for unknown keys.
func (s *Service) Tier(key string) Tier {
	if e, ok := s.entries[key]; ok {
		return e.tier
	}
	return Unsyncable
}

// GetDictionary returns a copy of the value stored under key. It reports
// false if the key is unknown or has never been written.
func (s *Service) GetDictionary(key string) (models.PrefDictionary, bool) {
	e, ok := s.entries[key]
	if !ok || e.value == nil {
		return nil, false
	}
	return e.value.Clone(), true
}

// UpdateDictionary applies fn to a copy of the value under key and stores the
// result if it differs from the current value. A changed syncable value is
// marked as pending upload. Observers of key are notified after the write.
//
// Updating an unregistered key panics.
func (s *Service) UpdateDictionary(key string, fn func(d models.PrefDictionary)) {
	e, ok := s.entries[key]
	if !ok {
		panic(fmt.Sprintf("prefs: update of unregistered key %q", key))
	}

	next := e.value.Clone()
	fn(next)
	next = normalize(next)

	if e.value != nil && reflect.DeepEqual(e.value, next) {
		return
	}

	e.value = next
	e.updatedAt = s.now().UTC()
	e.revision++
	if e.tier != Unsyncable {
		e.dirty = true
	}

	s.persist(key, e)
	s.notifyPref(key)
}

// IsPrioritySyncing reports whether priority preferences have been merged
// with the server at least once.
func (s *Service) IsPrioritySyncing() bool {
	return s.prioritySyncing
}

// SetPrioritySyncing records the priority sync state. Sync observers are
// notified only on the false to true transition.
func (s *Service) SetPrioritySyncing(syncing bool) {
	if s.prioritySyncing == syncing {
		return
	}
	s.prioritySyncing = syncing
	if !syncing {
		return
	}

	for _, o := range slices.Clone(s.syncObservers) {
		if !slices.Contains(s.syncObservers, o) {
			continue
		}
		o.OnIsSyncingChanged()
	}
}

// AddSyncObserver registers o for sync state changes.
func (s *Service) AddSyncObserver(o SyncObserver) {
	if slices.Contains(s.syncObservers, o) {
		return
	}
	s.syncObservers = append(s.syncObservers, o)
}

// RemoveSyncObserver unregisters o.
func (s *Service) RemoveSyncObserver(o SyncObserver) {
	if i := slices.Index(s.syncObservers, o); i >= 0 {
		s.syncObservers = slices.Delete(slices.Clone(s.syncObservers), i, i+1)
	}
}

// HasSyncObserver reports whether o is registered for sync state changes.
func (s *Service) HasSyncObserver(o SyncObserver) bool {
	return slices.Contains(s.syncObservers, o)
}

// AddPrefObserver registers o for changes of key.
func (s *Service) AddPrefObserver(key string, o PrefObserver) {
	if slices.Contains(s.prefObservers[key], o) {
		return
	}
	s.prefObservers[key] = append(s.prefObservers[key], o)
}

// RemovePrefObserver unregisters o from changes of key.
func (s *Service) RemovePrefObserver(key string, o PrefObserver) {
	list := s.prefObservers[key]
	i := slices.Index(list, o)
	if i < 0 {
		return
	}
	list = slices.Delete(slices.Clone(list), i, i+1)
	if len(list) == 0 {
		delete(s.prefObservers, key)
		return
	}
	s.prefObservers[key] = list
}

// PrefObserverCount returns the number of observers registered for key.
func (s *Service) PrefObserverCount(key string) int {
	return len(s.prefObservers[key])
}

// MergeRemote applies a record received from the server. Records of unknown
// or unsyncable keys are ignored, as are records for keys with local changes
// still pending upload. It reports whether the stored value changed.
func (s *Service) MergeRemote(rec models.PrefRecord) bool {
	e, ok := s.entries[rec.Key]
	if !ok || e.tier == Unsyncable || e.dirty {
		return false
	}

	value := normalize(rec.Value)
	if e.value != nil && reflect.DeepEqual(e.value, value) {
		return false
	}

	e.value = value
	e.updatedAt = rec.UpdatedAt
	e.revision++

	s.persist(rec.Key, e)
	s.notifyPref(rec.Key)
	return true
}

// PendingChanges returns the syncable records written locally since their
// last successful upload, ordered by key.
func (s *Service) PendingChanges() []models.PrefRecord {
	var out []models.PrefRecord
	for key, e := range s.entries {
		if !e.dirty || e.tier == Unsyncable {
			continue
		}
		out = append(out, models.PrefRecord{
			Key:       key,
			Value:     e.value.Clone(),
			UpdatedAt: e.updatedAt,
			Revision:  e.revision,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// MarkSynced clears the pending flag of uploaded records. A key written again
// after the record was taken stays pending.
func (s *Service) MarkSynced(records []models.PrefRecord) {
	for _, rec := range records {
		e, ok := s.entries[rec.Key]
		if !ok || e.revision != rec.Revision || !e.dirty {
			continue
		}
		e.dirty = false
		s.persist(rec.Key, e)
	}
}

// Revision returns the local write counter of key.
func (s *Service) Revision(key string) uint64 {
	if e, ok := s.entries[key]; ok {
		return e.revision
	}
	return 0
}

// Load reads the stored values of every registered key. Values written
// locally but never uploaded come back pending, so a sync after a restart
// uploads them instead of merging the server's value over them. Observers
// are not notified. Without a repository Load does nothing.
func (s *Service) Load(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}

	records, err := s.repo.GetPrefs(ctx, s.userID)
	if err != nil {
		return fmt.Errorf("load prefs of %s: %w", s.userID, err)
	}

	for _, rec := range records {
		e, ok := s.entries[rec.Key]
		if !ok {
			continue
		}
		e.value = normalize(rec.Value)
		e.updatedAt = rec.UpdatedAt
		e.dirty = rec.Pending && e.tier != Unsyncable
	}

	s.logger.Debug().
		Str("func", "prefs.Service.Load").
		Str("user_id", s.userID).
		Int("count", len(records)).
		Msg("prefs loaded")

	return nil
}

func (s *Service) persist(key string, e *entry) {
	if s.repo == nil {
		return
	}

	rec := models.PrefRecord{Key: key, Value: e.value, UpdatedAt: e.updatedAt, Pending: e.dirty}
	if err := s.repo.SavePref(context.Background(), s.userID, rec); err != nil {
		s.logger.Err(err).
			Str("func", "prefs.Service.persist").
			Str("user_id", s.userID).
			Str("pref_key", key).
			Msg("failed to persist pref")
	}
}

func (s *Service) notifyPref(key string) {
	for _, o := range slices.Clone(s.prefObservers[key]) {
		if !slices.Contains(s.prefObservers[key], o) {
			continue
		}
		o.OnPreferenceChanged(key)
	}
}

// normalize gives d the shape it has after a JSON round trip, so values read
// back from storage or from the wire compare equal to values written locally.
func normalize(d models.PrefDictionary) models.PrefDictionary {
	if d == nil {
		return models.PrefDictionary{}
	}

	raw, err := json.Marshal(d)
	if err != nil {
		return d.Clone()
	}
	var out models.PrefDictionary
	if err = json.Unmarshal(raw, &out); err != nil || out == nil {
		return models.PrefDictionary{}
	}
	return out
}
