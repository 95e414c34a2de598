// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the preference sync server.
//
// Routes:
//
//	GET /api/version            server version as plain text
//	GET /api/prefs/{user_id}    every stored preference of the user
//	PUT /api/prefs/{user_id}    upload changed preferences
//
// Every request gets a trace id and an access log entry. Bodies may be
// gzip-compressed in both directions. When the server has a hash key, uploads
// must carry the hex HMAC-SHA256 of their JSON-encoded prefs.
package http
