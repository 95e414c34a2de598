// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-avatar-sync/internal/validators"
	"github.com/MKhiriev/go-avatar-sync/models"
)

type PrefsValidationService struct {
	inner     PrefsService
	validator validators.Validator
}

func NewPrefsValidationService() PrefsServiceWrapper {
	return &PrefsValidationService{
		validator: validators.NewPrefsValidator(),
	}
}

func (v *PrefsValidationService) GetUserPrefs(ctx context.Context, userID string) ([]models.PrefRecord, error) {
	if err := v.validator.Validate(ctx, validators.UserID(userID)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidUserID, err)
	}

	return v.inner.GetUserPrefs(ctx, userID)
}

func (v *PrefsValidationService) SaveUserPrefs(ctx context.Context, userID string, records []models.PrefRecord) error {
	if err := v.validator.Validate(ctx, validators.UserID(userID)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUserID, err)
	}

	req := models.PrefsUploadRequest{Prefs: records, Length: len(records)}
	if err := v.validator.Validate(ctx, req); err != nil {
		if errors.Is(err, validators.ErrEmptyPrefs) {
			return fmt.Errorf("%w: %w", ErrValidationNoPrefsProvided, err)
		}
		return fmt.Errorf("%w: %w", ErrValidationInvalidPref, err)
	}

	return v.inner.SaveUserPrefs(ctx, userID, records)
}

func (v *PrefsValidationService) Wrap(inner PrefsService) PrefsService {
	v.inner = inner
	return v
}
