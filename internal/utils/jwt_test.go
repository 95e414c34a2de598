// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken("avatar-sync", "alice@example.com", time.Minute, "sign-key")
	require.NoError(t, err)

	subject, err := ValidateJWTToken(token, "sign-key", "avatar-sync")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", subject)
}

func TestValidateJWTToken_Rejects(t *testing.T) {
	valid, err := GenerateJWTToken("avatar-sync", "alice", time.Minute, "sign-key")
	require.NoError(t, err)

	_, err = ValidateJWTToken(valid, "other-key", "avatar-sync")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	_, err = ValidateJWTToken(valid, "sign-key", "someone-else")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)

	_, err = ValidateJWTToken("not.a.token", "sign-key", "avatar-sync")
	assert.Error(t, err)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:    "avatar-sync",
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}).SignedString([]byte("sign-key"))
	require.NoError(t, err)
	_, err = ValidateJWTToken(expired, "sign-key", "avatar-sync")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:    "avatar-sync",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString([]byte("sign-key"))
	require.NoError(t, err)
	_, err = ValidateJWTToken(noSubject, "sign-key", "avatar-sync")
	assert.ErrorIs(t, err, ErrEmptyTokenSubject)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	_, err := GenerateJWTToken("", "alice", time.Minute, "k")
	assert.Error(t, err)
	_, err = GenerateJWTToken("iss", "", time.Minute, "k")
	assert.Error(t, err)
	_, err = GenerateJWTToken("iss", "alice", 0, "k")
	assert.Error(t, err)
	_, err = GenerateJWTToken("iss", "alice", time.Minute, "")
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer  abc", want: "abc"},
		{header: "", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "Bearer   ", wantErr: true},
		{header: "Basic abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
