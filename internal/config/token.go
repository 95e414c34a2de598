// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultTokenIssuer   = "avatar-sync"
	defaultTokenDuration = 5 * time.Minute
)

// Token holds the bearer token settings shared by client and server.
type Token struct {
	SignKey  string
	Issuer   string
	Duration time.Duration
}

// Enabled reports whether tokens are minted and checked.
func (t Token) Enabled() bool {
	return t.SignKey != ""
}

func newToken(app App) Token {
	t := Token{
		SignKey:  app.TokenSignKey,
		Issuer:   app.TokenIssuer,
		Duration: app.TokenDuration,
	}
	if t.Issuer == "" {
		t.Issuer = defaultTokenIssuer
	}
	if t.Duration == 0 {
		t.Duration = defaultTokenDuration
	}
	return t
}
