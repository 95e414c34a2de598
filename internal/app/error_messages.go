// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings the sync server writes into HTTP
// error responses.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidGzipBody is returned when a gzip-encoded body cannot be
	// opened.
	MsgInvalidGzipBody = "invalid gzip body"

	// MsgFailedToReadBody is returned when the request body cannot be read.
	MsgFailedToReadBody = "failed to read request body"

	// MsgInternalServerError is returned on unexpected server-side failures.
	MsgInternalServerError = "internal server error"

	// MsgIntegrityCheckFailed is returned when the upload hash does not match
	// the uploaded prefs.
	MsgIntegrityCheckFailed = "integrity check failed"

	MsgInvalidUserID = "invalid user ID"

	// MsgLengthMismatch is returned when the declared record count of an
	// upload differs from the number of records sent.
	MsgLengthMismatch = "length does not match prefs"

	// MsgInvalidAuthorization is returned when a prefs request carries no
	// valid bearer token.
	MsgInvalidAuthorization = "token is missing or invalid"

	MsgTokenIsExpired = "token is expired"

	// MsgTokenUserMismatch is returned when the token subject differs from
	// the user in the request path.
	MsgTokenUserMismatch = "token does not belong to the requested user"

	MsgErrorGettingPrefs = "error getting user prefs"
	MsgErrorSavingPrefs  = "error saving user prefs"
)
