// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PrefsUploadRequest carries locally changed preferences to the sync server.
type PrefsUploadRequest struct {
	// Prefs is the list of changed preference records.
	Prefs []PrefRecord `json:"prefs"`

	// Length is the number of records in Prefs.
	Length int `json:"length"`

	// Hash is the hex HMAC-SHA256 of the JSON-encoded Prefs.
	Hash string `json:"hash"`
}

// PrefsSyncResponse contains the server-side state of every synced preference
// of a user.
type PrefsSyncResponse struct {
	// Prefs is the list of stored preference records.
	Prefs []PrefRecord `json:"prefs"`

	// Length is the number of records in Prefs.
	Length int `json:"length"`
}
