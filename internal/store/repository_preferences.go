// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Srejith/namemybaby/internal/logger"
	"github.com/Srejith/namemybaby/models"
)

type preferencesRepository struct {
	db     *DB
	now    func() time.Time
	logger *logger.Logger
}

// NewPreferencesRepository constructs a [PreferencesRepository].
func NewPreferencesRepository(db *DB, logger *logger.Logger) PreferencesRepository {
	logger.Debug().Msg("creating preferences repository")
	return &preferencesRepository{
		db:     db,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

// Load returns the stored preferences or [models.DefaultPreferences] when
// the user has none.
func (r *preferencesRepository) Load(ctx context.Context, userID int64) (models.UserPreferences, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLoadPreferencesQuery(r.db.builder, userID)
	if err != nil {
		return models.UserPreferences{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	var p models.UserPreferences
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&p.UserID,
		&p.UserName,
		&p.PartnerName,
		&p.BabyGender,
		&p.BirthCountry,
		&p.LivingCountry,
		&p.Religion,
		&p.Tone,
		&p.AlphabetPreferences,
		&p.OtherPreferences,
		&p.NumberOfNamesToGenerate,
		&p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultPreferences(userID), nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "*preferencesRepository.Load").
			Int64("user_id", userID).
			Msg("failed to load preferences")
		return models.UserPreferences{}, r.db.wrapError(ErrExecutingQuery, err)
	}

	if p.NumberOfNamesToGenerate <= 0 {
		p.NumberOfNamesToGenerate = models.DefaultNumberOfNames
	}

	return p, nil
}

// Save upserts the preferences of userID and returns the stored record.
func (r *preferencesRepository) Save(ctx context.Context, userID int64, prefs models.UserPreferences) (models.UserPreferences, error) {
	log := logger.FromContext(ctx)

	prefs.UserID = userID
	prefs.UpdatedAt = r.now()
	if prefs.NumberOfNamesToGenerate <= 0 {
		prefs.NumberOfNamesToGenerate = models.DefaultNumberOfNames
	}

	query, args, err := buildSavePreferencesQuery(r.db.builder, prefs)
	if err != nil {
		return models.UserPreferences{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*preferencesRepository.Save").
			Int64("user_id", userID).
			Msg("failed to save preferences")
		return models.UserPreferences{}, r.db.wrapError(ErrExecutingStatement, err)
	}

	return prefs, nil
}
