// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"math"
	"time"
)

const (
	// UserImageInfoPref is the dictionary preference holding avatar info.
	UserImageInfoPref = "user_image_info"

	// ImageIndexField is the integer field of UserImageInfoPref holding the
	// avatar image index.
	ImageIndexField = "image_index"
)

// PrefDictionary is a dictionary-valued preference. Values are JSON-compatible.
type PrefDictionary map[string]any

// Clone returns a shallow copy of d. A nil dictionary clones to an empty one.
func (d PrefDictionary) Clone() PrefDictionary {
	out := make(PrefDictionary, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Int returns the integer stored under key. It reports false if the key is
// absent or the value is not an integral number.
func (d PrefDictionary) Int(key string) (int, bool) {
	v, ok := d[key]
	if !ok {
		return 0, false
	}

	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || n > math.MaxInt32 || n < math.MinInt32 {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}

// PrefRecord is a single preference value as stored on disk and exchanged
// with the sync server.
type PrefRecord struct {
	// Key is the preference name, e.g. UserImageInfoPref.
	Key string `json:"key"`

	// Value is the dictionary value of the preference.
	Value PrefDictionary `json:"value"`

	// UpdatedAt is the time of the last write that produced Value.
	UpdatedAt time.Time `json:"updated_at"`

	// Revision is the local write counter the record was taken at.
	// It never leaves the process.
	Revision uint64 `json:"-"`

	// Pending marks a local write not yet uploaded. It is stored on the
	// client only and never sent over the wire.
	Pending bool `json:"-"`
}

// ImageIndexFromRecord extracts the avatar index from a user image info
// dictionary. Missing or malformed values report false.
func ImageIndexFromRecord(d PrefDictionary) (int, bool) {
	if d == nil {
		return InvalidImageIndex, false
	}
	index, ok := d.Int(ImageIndexField)
	if !ok {
		return InvalidImageIndex, false
	}
	return index, true
}
