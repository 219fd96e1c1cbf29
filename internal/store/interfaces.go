// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/Srejith/namemybaby/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// NameRepository stores names in the four buckets. Every method is scoped by
// userID and name comparisons are case-insensitive.
type NameRepository interface {
	List(ctx context.Context, bucket models.Bucket, userID int64) ([]models.NameItem, error)
	Get(ctx context.Context, bucket models.Bucket, userID int64, id string) (models.NameItem, error)
	Exists(ctx context.Context, bucket models.Bucket, userID int64, name string) (bool, error)
	Add(ctx context.Context, bucket models.Bucket, userID int64, item models.NameItem) (models.NameItem, error)
	AddBatch(ctx context.Context, bucket models.Bucket, userID int64, items []models.NameItem, gender models.Gender) (models.BatchAddResult, error)
	Delete(ctx context.Context, bucket models.Bucket, userID int64, id string) error
	Move(ctx context.Context, req models.MoveRequest) (models.NameItem, error)
}

// PreferencesRepository stores the single onboarding record of a user.
type PreferencesRepository interface {
	Load(ctx context.Context, userID int64) (models.UserPreferences, error)
	Save(ctx context.Context, userID int64, prefs models.UserPreferences) (models.UserPreferences, error)
}

// ReportRepository stores etymology reports.
type ReportRepository interface {
	Upsert(ctx context.Context, userID int64, name, content string) (models.NameReport, error)
	List(ctx context.Context, userID int64) ([]models.NameReport, error)
	GetByName(ctx context.Context, userID int64, name string) (models.NameReport, error)
	GetByID(ctx context.Context, userID int64, id string) (models.NameReport, error)
	Delete(ctx context.Context, userID int64, id string) error
}

// AudioRepository is a keyed store of encoded audio blobs. One instance
// serves one keyspace (table).
type AudioRepository interface {
	Get(ctx context.Context, key models.AudioKey) (models.AudioEntry, error)
	Save(ctx context.Context, key models.AudioKey, encoded string) error
}

// IDGenerator produces identifiers for new rows.
type IDGenerator interface {
	Generate() string
}
