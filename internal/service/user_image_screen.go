// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-avatar-sync/internal/logger"
	"github.com/MKhiriev/go-avatar-sync/models"
)

// UserImageScreen models the avatar picker shown while a user is set up on a
// device. While it is shown with a selection the user has not confirmed yet,
// synced avatars must not replace the local one.
type UserImageScreen struct {
	userID string
	images UserImageManager
	logger *logger.Logger

	shown          bool
	selected       bool
	selectedIndex  int
	waitingForSync bool
}

// NewUserImageScreen creates a hidden screen for userID.
func NewUserImageScreen(userID string, images UserImageManager, logger *logger.Logger) *UserImageScreen {
	return &UserImageScreen{
		userID: userID,
		images: images,
		logger: logger,
	}
}

// Show displays the picker with the current avatar preselected.
func (s *UserImageScreen) Show(waitingForSync bool) {
	s.shown = true
	s.selected = false
	s.waitingForSync = waitingForSync
}

// Hide closes the picker and discards an unconfirmed selection.
func (s *UserImageScreen) Hide() {
	s.shown = false
	s.selected = false
}

// IsShown reports whether the picker is on screen.
func (s *UserImageScreen) IsShown() bool {
	return s.shown
}

// SelectImage records the user's pick without storing it.
func (s *UserImageScreen) SelectImage(index int) {
	if !s.shown {
		return
	}
	s.selected = true
	s.selectedIndex = index
}

// SelectedIndex returns the index highlighted on the picker: the user's pick,
// or the current avatar while nothing is picked.
func (s *UserImageScreen) SelectedIndex() int {
	if s.selected {
		return s.selectedIndex
	}
	return s.images.ImageIndex(s.userID)
}

// IsWaitingForSync reports whether the screen still waits for the first avatar
// reconciliation.
func (s *UserImageScreen) IsWaitingForSync() bool {
	return s.waitingForSync
}

// Confirm stores the selected image and closes the picker.
func (s *UserImageScreen) Confirm() {
	if !s.shown {
		return
	}
	if s.selected {
		if s.selectedIndex == models.ProfileImageIndex {
			s.images.SaveUserImageFromProfileImage(s.userID)
		} else {
			s.images.SaveUserDefaultImageIndex(s.userID, s.selectedIndex)
		}
	}
	s.Hide()
}

// CanUpdateLocalImageNow implements [ImageUpdateGuard].
func (s *UserImageScreen) CanUpdateLocalImageNow() bool {
	return !(s.shown && s.selected)
}

// OnInitialSync implements [InitialSyncObserver]. It ends the wait for the
// first sync. The screen keeps no copy of the avatar: until the user picks one,
// SelectedIndex reads the local image, so a pulled value shows up as is.
func (s *UserImageScreen) OnInitialSync(localImageUpdated bool) {
	s.waitingForSync = false
	if !s.shown || s.selected || !localImageUpdated {
		return
	}

	s.logger.Debug().
		Str("func", "UserImageScreen.OnInitialSync").
		Str("user_id", s.userID).
		Msg("avatar picker follows synced image")
}
