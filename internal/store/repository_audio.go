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

// audioRepository implements [AudioRepository] over one audio table.
// voice_audio_files and user_voice_recordings share the layout.
type audioRepository struct {
	db     *DB
	table  string
	ids    IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewAudioRepository constructs an [AudioRepository] over table, which is
// [TableVoiceAudio] or [TableVoiceRecordings].
func NewAudioRepository(db *DB, table string, ids IDGenerator, logger *logger.Logger) AudioRepository {
	logger.Debug().Str("table", table).Msg("creating audio repository")
	return &audioRepository{
		db:     db,
		table:  table,
		ids:    ids,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

// Get returns the entry stored under key or [ErrAudioNotFound].
func (r *audioRepository) Get(ctx context.Context, key models.AudioKey) (models.AudioEntry, error) {
	query, args, err := buildGetAudioQuery(r.db.builder, r.table, key)
	if err != nil {
		return models.AudioEntry{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	var entry models.AudioEntry
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&entry.ID,
		&entry.Key.UserID,
		&entry.Key.Name,
		&entry.Key.VoiceID,
		&entry.Data,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.AudioEntry{}, ErrAudioNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*audioRepository.Get").
			Str("table", r.table).
			Str("name", key.Name).
			Str("voice_id", key.VoiceID).
			Msg("failed to get audio")
		return models.AudioEntry{}, r.db.wrapError(ErrExecutingQuery, err)
	}

	return entry, nil
}

// Save upserts encoded under key.
func (r *audioRepository) Save(ctx context.Context, key models.AudioKey, encoded string) error {
	now := r.now()
	entry := models.AudioEntry{
		ID:        r.ids.Generate(),
		Key:       key,
		Data:      encoded,
		CreatedAt: now,
		UpdatedAt: now,
	}

	query, args, err := buildSaveAudioQuery(r.db.builder, r.table, entry)
	if err != nil {
		return errors.Join(ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*audioRepository.Save").
			Str("table", r.table).
			Str("name", key.Name).
			Str("voice_id", key.VoiceID).
			Msg("failed to save audio")
		return r.db.wrapError(ErrExecutingStatement, err)
	}

	return nil
}
