// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidAuthorizationHeader is returned for a header that is not
	// "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
	// ErrEmptyTokenSubject is returned for a token without a user id.
	ErrEmptyTokenSubject = errors.New("token has no subject")
)

// GenerateJWTToken signs an HS256 token whose subject is userID and which
// expires after tokenDuration.
func GenerateJWTToken(issuer, userID string, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || userID == "" || tokenDuration <= 0 || signKey == "" {
		return "", errors.New("invalid params for generating JWT token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error signing JWT token: %w", err)
	}
	return signed, nil
}

// ValidateJWTToken checks the signature, issuer and expiry of tokenString and
// returns its subject. An expired token yields an error matching
// jwt.ErrTokenExpired.
func ValidateJWTToken(tokenString, signKey, issuer string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("error validating token: %w", err)
	}

	if claims.Subject == "" {
		return "", ErrEmptyTokenSubject
	}
	return claims.Subject, nil
}

// ParseBearerToken extracts the token of an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", ErrInvalidAuthorizationHeader
	}
	return strings.TrimSpace(token), nil
}
