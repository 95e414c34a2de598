// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Avatar image indices. Built-in (default) images occupy the half-open range
// [FirstDefaultImageIndex, DefaultImagesCount). The negative values are
// distinguished markers stored in the same integer field.
const (
	// FirstDefaultImageIndex is the index of the first built-in avatar image.
	FirstDefaultImageIndex = 0

	// DefaultImagesCount is the number of built-in avatar images.
	DefaultImagesCount = 19

	// ExternalImageIndex marks an image the user supplied from a file or
	// camera. Such images are device-local and are never synced.
	ExternalImageIndex = -1

	// ProfileImageIndex marks an avatar derived from the user's account
	// profile picture.
	ProfileImageIndex = -2

	// InvalidImageIndex is published to sync when the local image cannot be
	// represented remotely.
	InvalidImageIndex = -3
)

// IsImageIndexSupported reports whether index can be exchanged through sync:
// either a built-in image or the profile image marker.
func IsImageIndexSupported(index int) bool {
	return (index >= FirstDefaultImageIndex && index < DefaultImagesCount) ||
		index == ProfileImageIndex
}

// SyncableImageIndex returns index if it is supported, or InvalidImageIndex
// otherwise.
func SyncableImageIndex(index int) int {
	if !IsImageIndexSupported(index) {
		return InvalidImageIndex
	}
	return index
}

// User is the locally admitted account whose avatar is reconciled with sync.
type User struct {
	// UserID is the stable identity of the user (typically an email).
	UserID string `json:"user_id"`

	// ImageIndex is the currently selected avatar image.
	ImageIndex int `json:"image_index"`

	// UpdatedAt is the time of the last local avatar change.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
