// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-avatar-sync/models"
)

const testHashKey = "test-secret-key"

func TestInitHasherPoolAndHash(t *testing.T) {
	InitHasherPool(testHashKey)
	data := []byte("test-data")

	h := hmac.New(sha256.New, []byte(testHashKey))
	h.Write(data)

	assert.Equal(t, h.Sum(nil), Hash(data))
	assert.Equal(t, Hash(data), Hash(data))
}

// TestHashHex_MatchesHashString verifies that the pooled and the one-off
// hashers agree, which is what lets the server verify client uploads.
func TestHashHex_MatchesHashString(t *testing.T) {
	InitHasherPool(testHashKey)

	records := []models.PrefRecord{{
		Key:       models.UserImageInfoPref,
		Value:     models.PrefDictionary{"image_index": 7},
		UpdatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}}
	payload, err := json.Marshal(records)
	require.NoError(t, err)

	assert.Equal(t, HashString(string(payload), testHashKey), HashHex(payload))
}

func TestHashString_DifferentKeys(t *testing.T) {
	assert.NotEqual(t, HashString("payload", "a"), HashString("payload", "b"))
}

// TestHash_DecodeEncodeIsStable verifies that records decoded by the server
// re-encode to the bytes the client hashed.
func TestHash_DecodeEncodeIsStable(t *testing.T) {
	InitHasherPool(testHashKey)

	sent := []models.PrefRecord{{
		Key:       models.UserImageInfoPref,
		Value:     models.PrefDictionary{"image_index": 3.0, "extra": "x"},
		UpdatedAt: time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.UTC),
	}}
	clientBytes, err := json.Marshal(sent)
	require.NoError(t, err)

	var received []models.PrefRecord
	require.NoError(t, json.Unmarshal(clientBytes, &received))
	serverBytes, err := json.Marshal(received)
	require.NoError(t, err)

	assert.Equal(t, HashString(string(clientBytes), testHashKey), HashHex(serverBytes))
}
