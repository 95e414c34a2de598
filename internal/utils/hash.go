// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool holds HMAC-SHA256 instances keyed with the server hash key.
// It must be initialized via InitHasherPool before Hash is called.
var hasherPool sync.Pool

// InitHasherPool keys every pooled HMAC-SHA256 hasher with hashKey. The sync
// server calls it once at startup.
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash returns the HMAC-SHA256 of data using a pooled hasher.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// HashHex is Hash encoded as lowercase hex.
func HashHex(data []byte) string {
	return hex.EncodeToString(Hash(data))
}

// HashString returns the hex HMAC-SHA256 of data under hashKey without touching
// the pool. The client uses it, since it owns its key per adapter.
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}
