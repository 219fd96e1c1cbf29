// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/Srejith/namemybaby/internal/config"
	"github.com/Srejith/namemybaby/internal/logger"
	"github.com/Srejith/namemybaby/internal/utils"
)

// Storages aggregates every repository over one database connection.
type Storages struct {
	db *DB

	UserRepository        UserRepository
	NameRepository        NameRepository
	PreferencesRepository PreferencesRepository
	ReportRepository      ReportRepository
	VoiceAudioRepository  AudioRepository
	RecordingRepository   AudioRepository
}

// NewStorages connects to the database selected by cfg.DB.DSN, applies the
// migrations of its dialect and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories over an open connection.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	ids := utils.NewUUIDGenerator()

	return &Storages{
		db:                    db,
		UserRepository:        NewUserRepository(db, log),
		NameRepository:        NewNameRepository(db, ids, log),
		PreferencesRepository: NewPreferencesRepository(db, log),
		ReportRepository:      NewReportRepository(db, ids, log),
		VoiceAudioRepository:  NewAudioRepository(db, TableVoiceAudio, ids, log),
		RecordingRepository:   NewAudioRepository(db, TableVoiceRecordings, ids, log),
	}
}

// Ping checks that the database answers.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
