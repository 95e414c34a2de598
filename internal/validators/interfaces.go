// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inputs of the sync server before they reach the
// storage layer.
//
// A Validator accepts arbitrary values and an optional list of field names
// that restricts which rules run. Without field names every rule applies.
package validators

import "context"

// Validator validates the provided input, optionally restricted to the named
// fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
