// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	getUser = `SELECT user_id, image_index, updated_at
		FROM users
		WHERE user_id = ?;`

	saveUser = `INSERT INTO users (user_id, image_index, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			image_index = excluded.image_index,
			updated_at = excluded.updated_at;`

	getPrefs = `SELECT pref_key, value, updated_at, pending
		FROM prefs
		WHERE user_id = ?
		ORDER BY pref_key;`

	savePref = `INSERT INTO prefs (user_id, pref_key, value, updated_at, pending)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id, pref_key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at,
			pending = excluded.pending;`
)
