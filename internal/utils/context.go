// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the client and the
// sync server: context keys, HMAC hashing of transport payloads, JSON response
// writing, the resty-based HTTP client and trace id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so keys of this package never
// collide with string keys of other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey stores the id of the user a request is scoped to.
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext returns the user id stored by WithUserID. ok is false
// if the value is missing, has another type, or is empty.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}
