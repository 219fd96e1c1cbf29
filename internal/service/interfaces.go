// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the namemybaby server. Services
// sit between the HTTP handlers and the store and adapter packages: they
// validate input, call upstream services and decide what gets persisted.
package service

import (
	"context"

	"github.com/Srejith/namemybaby/models"
)

// AppInfoService reports the version and health of the server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) error
}

// AuthService registers users, checks credentials and issues JWT tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// NameService manages the names a user sorted into buckets.
type NameService interface {
	List(ctx context.Context, bucket models.Bucket, userID int64) ([]models.NameItem, error)
	Add(ctx context.Context, bucket models.Bucket, userID int64, item models.NameItem) (models.NameItem, error)
	AddBatch(ctx context.Context, bucket models.Bucket, userID int64, req models.BatchAddRequest) (models.BatchAddResult, error)
	Delete(ctx context.Context, bucket models.Bucket, userID int64, id string) error
	Move(ctx context.Context, req models.MoveRequest) (models.NameItem, error)
}

// NameServiceWrapper decorates a NameService, for example with validation.
type NameServiceWrapper interface {
	Wrap(NameService) NameService
}

// PreferencesService loads and stores the onboarding answers of a user.
type PreferencesService interface {
	Get(ctx context.Context, userID int64) (models.UserPreferences, error)
	Save(ctx context.Context, userID int64, prefs models.UserPreferences) (models.UserPreferences, error)
}

// GenerationService turns prompts into names and ideas through the flow
// service.
type GenerationService interface {
	Chat(ctx context.Context, userID int64, req models.ChatRequest) (models.ChatResponse, error)
	RequestNames(ctx context.Context, userID int64, req models.GenerateNamesRequest) (models.GenerateNamesResponse, error)
	RequestNamesFromPreferences(ctx context.Context, userID int64) (models.GenerateNamesResponse, error)
	RequestIdeas(ctx context.Context, userID int64, req models.GenerateIdeasRequest) (models.GenerateIdeasResponse, error)
}

// ReportService manages etymology reports.
type ReportService interface {
	Generate(ctx context.Context, userID int64, name string) (models.NameReport, error)
	Save(ctx context.Context, userID int64, req models.SaveReportRequest) (models.NameReport, error)
	List(ctx context.Context, userID int64) ([]models.NameReport, error)
	GetByName(ctx context.Context, userID int64, name string) (models.NameReport, error)
	GetByID(ctx context.Context, userID int64, id string) (models.NameReport, error)
	Delete(ctx context.Context, userID int64, id string) error
}

// VoiceService synthesizes pronunciations and manages the two audio caches.
type VoiceService interface {
	ListVoices(ctx context.Context) (models.VoicesResponse, error)
	Synthesize(ctx context.Context, req models.SynthesizeRequest) ([]byte, error)
	GetPronunciation(ctx context.Context, userID int64, req models.PronunciationRequest) (models.Pronunciation, error)

	GetVoiceAudio(ctx context.Context, key models.AudioKey) ([]byte, error)
	SaveVoiceAudio(ctx context.Context, key models.AudioKey, audio []byte) error

	GetRecording(ctx context.Context, key models.AudioKey) ([]byte, error)
	SaveRecording(ctx context.Context, key models.AudioKey, audio []byte) error

	HoldPendingRecording(ctx context.Context, userID int64, name string, audio []byte) error
	PendingRecordings(ctx context.Context, userID int64) []string
	FlushPendingRecordings(ctx context.Context, userID int64, voiceID string) ([]string, error)
}

// Pinger checks that a backing store answers.
type Pinger interface {
	Ping(ctx context.Context) error
}
