// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-avatar-sync/models"
)

// Field names accepted by [PrefsValidator].
const (
	FieldUserID    = "user_id"
	FieldPrefs     = "prefs"
	FieldLength    = "length"
	FieldKey       = "key"
	FieldValue     = "value"
	FieldUpdatedAt = "updated_at"
)

const (
	maxUserIDLength  = 254
	maxPrefKeyLength = 128
)

// UserID is a user identifier to be validated on its own.
type UserID string

// PrefsValidator validates [models.PrefsUploadRequest], [models.PrefRecord]
// and [UserID] values.
type PrefsValidator struct{}

func NewPrefsValidator() Validator {
	return &PrefsValidator{}
}

func (v *PrefsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case UserID:
		return validateUserID(string(value))

	case models.PrefRecord:
		return v.validateRecord(value, fields...)
	case *models.PrefRecord:
		return v.validateRecord(*value, fields...)

	case models.PrefsUploadRequest:
		return v.validateUploadRequest(value, fields...)
	case *models.PrefsUploadRequest:
		return v.validateUploadRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func validateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" || len(userID) > maxUserIDLength || strings.ContainsAny(userID, "/?#") {
		return ErrInvalidUserID
	}
	return nil
}

func (v *PrefsValidator) validateRecord(rec models.PrefRecord, fields ...string) error {
	if shouldValidate(fields, FieldKey) {
		if strings.TrimSpace(rec.Key) == "" || len(rec.Key) > maxPrefKeyLength {
			return fmt.Errorf("%w: %q", ErrInvalidPrefKey, rec.Key)
		}
	}
	if shouldValidate(fields, FieldValue) && rec.Value == nil {
		return fmt.Errorf("%w (key=%s)", ErrEmptyPrefValue, rec.Key)
	}
	if shouldValidate(fields, FieldUpdatedAt) && rec.UpdatedAt.IsZero() {
		return fmt.Errorf("%w (key=%s)", ErrInvalidUpdatedAt, rec.Key)
	}
	return nil
}

func (v *PrefsValidator) validateUploadRequest(req models.PrefsUploadRequest, fields ...string) error {
	if shouldValidate(fields, FieldPrefs) && len(req.Prefs) == 0 {
		return ErrEmptyPrefs
	}
	if shouldValidate(fields, FieldLength) && req.Length != len(req.Prefs) {
		return ErrLengthMismatch
	}

	seen := make(map[string]struct{}, len(req.Prefs))
	for _, rec := range req.Prefs {
		if err := v.validateRecord(rec, fields...); err != nil {
			return err
		}
		if _, ok := seen[rec.Key]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicatePrefKey, rec.Key)
		}
		seen[rec.Key] = struct{}{}
	}
	return nil
}

func shouldValidate(fields []string, field string) bool {
	return len(fields) == 0 || slices.Contains(fields, field)
}
