// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/Srejith/namemybaby/internal/logger"
	"github.com/Srejith/namemybaby/internal/store"
	"github.com/Srejith/namemybaby/internal/validators"
	"github.com/Srejith/namemybaby/models"
)

type preferencesService struct {
	preferences store.PreferencesRepository
	validator   validators.Validator

	logger *logger.Logger
}

func NewPreferencesService(preferences store.PreferencesRepository, logger *logger.Logger) PreferencesService {
	return &preferencesService{
		preferences: preferences,
		validator:   validators.NewNameValidator(),
		logger:      logger,
	}
}

// Get returns the stored preferences or the defaults when the user never
// saved any.
func (s *preferencesService) Get(ctx context.Context, userID int64) (models.UserPreferences, error) {
	prefs, err := s.preferences.Load(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*preferencesService.Get").Int64("user_id", userID).Msg("loading preferences failed")
		return models.UserPreferences{}, err
	}
	return prefs, nil
}

// Save replaces the preferences of userID.
func (s *preferencesService) Save(ctx context.Context, userID int64, prefs models.UserPreferences) (models.UserPreferences, error) {
	prefs.BabyGender = strings.TrimSpace(prefs.BabyGender)
	if err := s.validator.Validate(ctx, prefs); err != nil {
		return models.UserPreferences{}, err
	}

	saved, err := s.preferences.Save(ctx, userID, prefs)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*preferencesService.Save").Int64("user_id", userID).Msg("saving preferences failed")
		return models.UserPreferences{}, err
	}
	return saved, nil
}
