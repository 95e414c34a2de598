// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"slices"

	"github.com/MKhiriev/go-avatar-sync/internal/events"
	"github.com/MKhiriev/go-avatar-sync/internal/logger"
	"github.com/MKhiriev/go-avatar-sync/internal/prefs"
	"github.com/MKhiriev/go-avatar-sync/internal/session"
	"github.com/MKhiriev/go-avatar-sync/models"
)

// ReconcilerState is the lifecycle stage of a [UserImageSyncObserver].
type ReconcilerState int

const (
	// StateCreated is the state before the constructor finished.
	StateCreated ReconcilerState = iota
	// StateAwaitingStore waits for the user's profile to be prepared.
	StateAwaitingStore
	// StateAwaitingInitialSync has the preference store but priority
	// preferences have not been merged with the server yet.
	StateAwaitingInitialSync
	// StateReconciled mirrors changes in both directions.
	StateReconciled
	// StateClosed is terminal.
	StateClosed
)

func (s ReconcilerState) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateAwaitingStore:
		return "awaiting_store"
	case StateAwaitingInitialSync:
		return "awaiting_initial_sync"
	case StateReconciled:
		return "reconciled"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// RegisterProfilePrefs declares the preferences the avatar reconciliation
// relies on. It is passed to [session.NewProfileManager].
func RegisterProfilePrefs(s *prefs.Service) {
	s.Register(models.UserImageInfoPref, prefs.PrioritySyncable)
}

type userImageSyncObserver struct {
	userID string
	images UserImageManager
	guard  ImageUpdateGuard
	logger *logger.Logger

	state                  ReconcilerState
	prefs                  SyncablePrefs
	registrar              *events.Registrar
	prefRegistrar          *prefs.ChangeRegistrar
	localChangedBeforeSync bool
	observers              []InitialSyncObserver
}

// NewUserImageSyncObserver starts reconciling the avatar of userID. If the
// profile is already prepared the store is attached immediately, otherwise
// the observer waits for [events.TypeUserProfilePrepared] from source.
//
// Every method and every callback must run on the client event loop.
func NewUserImageSyncObserver(
	userID string,
	profiles ProfileSource,
	source events.Source,
	images UserImageManager,
	guard ImageUpdateGuard,
	logger *logger.Logger,
) UserImageSyncObserver {
	o := &userImageSyncObserver{
		userID:    userID,
		images:    images,
		guard:     guard,
		logger:    logger.ForUser(userID),
		state:     StateCreated,
		registrar: events.NewRegistrar(source),
	}

	o.registrar.Add(o, events.TypeUserImageChanged)
	o.state = StateAwaitingStore

	if p := profiles.Profile(userID); p != nil {
		o.onProfileGained(p.Prefs)
	} else {
		o.registrar.Add(o, events.TypeUserProfilePrepared)
	}

	return o
}

func (o *userImageSyncObserver) State() ReconcilerState {
	return o.state
}

func (o *userImageSyncObserver) AddObserver(obs InitialSyncObserver) {
	if slices.Contains(o.observers, obs) {
		return
	}
	o.observers = append(o.observers, obs)
}

func (o *userImageSyncObserver) RemoveObserver(obs InitialSyncObserver) {
	if i := slices.Index(o.observers, obs); i >= 0 {
		o.observers = slices.Delete(slices.Clone(o.observers), i, i+1)
	}
}

func (o *userImageSyncObserver) HasObserver(obs InitialSyncObserver) bool {
	return slices.Contains(o.observers, obs)
}

func (o *userImageSyncObserver) Close() {
	if o.state == StateClosed {
		return
	}

	o.registrar.RemoveAll()
	if o.prefRegistrar != nil {
		o.prefRegistrar.RemoveAll()
	}
	if o.prefs != nil {
		o.prefs.RemoveSyncObserver(o)
	}
	o.state = StateClosed
}

// Observe implements [events.Observer].
func (o *userImageSyncObserver) Observe(e events.Event) {
	switch e.Type {
	case events.TypeUserProfilePrepared:
		p, ok := e.Details.(*session.Profile)
		if !ok || p == nil || p.UserID != o.userID || o.state != StateAwaitingStore {
			return
		}
		o.registrar.Remove(o, events.TypeUserProfilePrepared)
		o.onProfileGained(p.Prefs)

	case events.TypeUserImageChanged:
		if e.UserID != o.userID {
			return
		}
		switch o.state {
		case StateReconciled:
			o.updateSyncedImageFromLocal()
		case StateAwaitingStore, StateAwaitingInitialSync:
			o.localChangedBeforeSync = true
		}

	default:
		panic(fmt.Sprintf("userImageSyncObserver: unexpected event %s", e.Type))
	}
}

// OnIsSyncingChanged implements [prefs.SyncObserver].
func (o *userImageSyncObserver) OnIsSyncingChanged() {
	if o.state != StateAwaitingInitialSync || !o.prefs.IsPrioritySyncing() {
		return
	}
	o.onInitialSync()
}

func (o *userImageSyncObserver) onProfileGained(store SyncablePrefs) {
	o.prefs = store
	o.prefRegistrar = prefs.NewChangeRegistrar(store)
	o.prefRegistrar.Add(models.UserImageInfoPref, o.onPreferenceChanged)
	o.state = StateAwaitingInitialSync

	if store.IsPrioritySyncing() {
		o.onInitialSync()
		return
	}
	store.AddSyncObserver(o)
}

// onPreferenceChanged may arrive before OnIsSyncingChanged: the store can
// deliver synced data ahead of its sync state. Either one completes the
// initial sync.
func (o *userImageSyncObserver) onPreferenceChanged(string) {
	switch o.state {
	case StateAwaitingInitialSync:
		o.onInitialSync()
	case StateReconciled:
		o.updateLocalImageFromSynced()
	}
}

func (o *userImageSyncObserver) onInitialSync() {
	o.state = StateReconciled
	o.prefs.RemoveSyncObserver(o)

	localChanged := o.localChangedBeforeSync
	o.localChangedBeforeSync = false

	localImageUpdated := false
	synced, ok := o.syncedImageIndex()
	switch {
	case !ok || localChanged || !models.IsImageIndexSupported(synced):
		o.updateSyncedImageFromLocal()
	default:
		localImageUpdated = o.updateLocalImageFromSynced()
	}

	o.logger.Debug().
		Str("func", "userImageSyncObserver.onInitialSync").
		Bool("local_changed_before_sync", localChanged).
		Bool("local_image_updated", localImageUpdated).
		Msg("initial avatar reconciliation finished")

	for _, obs := range slices.Clone(o.observers) {
		if !slices.Contains(o.observers, obs) {
			continue
		}
		obs.OnInitialSync(localImageUpdated)
	}
}

func (o *userImageSyncObserver) updateSyncedImageFromLocal() {
	index := models.SyncableImageIndex(o.images.ImageIndex(o.userID))
	if synced, ok := o.syncedImageIndex(); ok && synced == index {
		return
	}

	o.prefs.UpdateDictionary(models.UserImageInfoPref, func(d models.PrefDictionary) {
		d[models.ImageIndexField] = index
	})

	o.logger.Info().
		Str("func", "userImageSyncObserver.updateSyncedImageFromLocal").
		Int("image_index", index).
		Msg("saved avatar index to sync")
}

// updateLocalImageFromSynced reports whether a local change was requested.
func (o *userImageSyncObserver) updateLocalImageFromSynced() bool {
	synced, ok := o.syncedImageIndex()
	if !ok || !models.IsImageIndexSupported(synced) || synced == o.images.ImageIndex(o.userID) {
		return false
	}
	if !o.guard.CanUpdateLocalImageNow() {
		o.logger.Debug().
			Str("func", "userImageSyncObserver.updateLocalImageFromSynced").
			Int("image_index", synced).
			Msg("local avatar is being edited, synced index dropped")
		return false
	}

	if synced == models.ProfileImageIndex {
		o.images.SaveUserImageFromProfileImage(o.userID)
	} else {
		o.images.SaveUserDefaultImageIndex(o.userID, synced)
	}

	o.logger.Info().
		Str("func", "userImageSyncObserver.updateLocalImageFromSynced").
		Int("image_index", synced).
		Msg("loaded avatar index from sync")
	return true
}

func (o *userImageSyncObserver) syncedImageIndex() (int, bool) {
	d, ok := o.prefs.GetDictionary(models.UserImageInfoPref)
	if !ok {
		return models.InvalidImageIndex, false
	}
	return models.ImageIndexFromRecord(d)
}
