// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Srejith/namemybaby/internal/config"
	"github.com/Srejith/namemybaby/internal/logger"
	"github.com/Srejith/namemybaby/internal/service"
	"github.com/Srejith/namemybaby/internal/utils"
	"github.com/Srejith/namemybaby/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version   string
	healthErr error
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string { return m.version }
func (m *mockAppInfoService) Health(_ context.Context) error         { return m.healthErr }

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockNameService struct {
	listFn     func(ctx context.Context, bucket models.Bucket, userID int64) ([]models.NameItem, error)
	addFn      func(ctx context.Context, bucket models.Bucket, userID int64, item models.NameItem) (models.NameItem, error)
	addBatchFn func(ctx context.Context, bucket models.Bucket, userID int64, req models.BatchAddRequest) (models.BatchAddResult, error)
	deleteFn   func(ctx context.Context, bucket models.Bucket, userID int64, id string) error
	moveFn     func(ctx context.Context, req models.MoveRequest) (models.NameItem, error)
}

func (m *mockNameService) List(ctx context.Context, bucket models.Bucket, userID int64) ([]models.NameItem, error) {
	return m.listFn(ctx, bucket, userID)
}

func (m *mockNameService) Add(ctx context.Context, bucket models.Bucket, userID int64, item models.NameItem) (models.NameItem, error) {
	return m.addFn(ctx, bucket, userID, item)
}

func (m *mockNameService) AddBatch(ctx context.Context, bucket models.Bucket, userID int64, req models.BatchAddRequest) (models.BatchAddResult, error) {
	return m.addBatchFn(ctx, bucket, userID, req)
}

func (m *mockNameService) Delete(ctx context.Context, bucket models.Bucket, userID int64, id string) error {
	return m.deleteFn(ctx, bucket, userID, id)
}

func (m *mockNameService) Move(ctx context.Context, req models.MoveRequest) (models.NameItem, error) {
	return m.moveFn(ctx, req)
}

type mockPreferencesService struct {
	getFn  func(ctx context.Context, userID int64) (models.UserPreferences, error)
	saveFn func(ctx context.Context, userID int64, prefs models.UserPreferences) (models.UserPreferences, error)
}

func (m *mockPreferencesService) Get(ctx context.Context, userID int64) (models.UserPreferences, error) {
	return m.getFn(ctx, userID)
}

func (m *mockPreferencesService) Save(ctx context.Context, userID int64, prefs models.UserPreferences) (models.UserPreferences, error) {
	return m.saveFn(ctx, userID, prefs)
}

type mockGenerationService struct {
	chatFn            func(ctx context.Context, userID int64, req models.ChatRequest) (models.ChatResponse, error)
	requestNamesFn    func(ctx context.Context, userID int64, req models.GenerateNamesRequest) (models.GenerateNamesResponse, error)
	fromPreferencesFn func(ctx context.Context, userID int64) (models.GenerateNamesResponse, error)
	requestIdeasFn    func(ctx context.Context, userID int64, req models.GenerateIdeasRequest) (models.GenerateIdeasResponse, error)
}

func (m *mockGenerationService) Chat(ctx context.Context, userID int64, req models.ChatRequest) (models.ChatResponse, error) {
	return m.chatFn(ctx, userID, req)
}

func (m *mockGenerationService) RequestNames(ctx context.Context, userID int64, req models.GenerateNamesRequest) (models.GenerateNamesResponse, error) {
	return m.requestNamesFn(ctx, userID, req)
}

func (m *mockGenerationService) RequestNamesFromPreferences(ctx context.Context, userID int64) (models.GenerateNamesResponse, error) {
	return m.fromPreferencesFn(ctx, userID)
}

func (m *mockGenerationService) RequestIdeas(ctx context.Context, userID int64, req models.GenerateIdeasRequest) (models.GenerateIdeasResponse, error) {
	return m.requestIdeasFn(ctx, userID, req)
}

type mockReportService struct {
	generateFn  func(ctx context.Context, userID int64, name string) (models.NameReport, error)
	saveFn      func(ctx context.Context, userID int64, req models.SaveReportRequest) (models.NameReport, error)
	listFn      func(ctx context.Context, userID int64) ([]models.NameReport, error)
	getByNameFn func(ctx context.Context, userID int64, name string) (models.NameReport, error)
	getByIDFn   func(ctx context.Context, userID int64, id string) (models.NameReport, error)
	deleteFn    func(ctx context.Context, userID int64, id string) error
}

func (m *mockReportService) Generate(ctx context.Context, userID int64, name string) (models.NameReport, error) {
	return m.generateFn(ctx, userID, name)
}

func (m *mockReportService) Save(ctx context.Context, userID int64, req models.SaveReportRequest) (models.NameReport, error) {
	return m.saveFn(ctx, userID, req)
}

func (m *mockReportService) List(ctx context.Context, userID int64) ([]models.NameReport, error) {
	return m.listFn(ctx, userID)
}

func (m *mockReportService) GetByName(ctx context.Context, userID int64, name string) (models.NameReport, error) {
	return m.getByNameFn(ctx, userID, name)
}

func (m *mockReportService) GetByID(ctx context.Context, userID int64, id string) (models.NameReport, error) {
	return m.getByIDFn(ctx, userID, id)
}

func (m *mockReportService) Delete(ctx context.Context, userID int64, id string) error {
	return m.deleteFn(ctx, userID, id)
}

type mockVoiceService struct {
	listVoicesFn       func(ctx context.Context) (models.VoicesResponse, error)
	synthesizeFn       func(ctx context.Context, req models.SynthesizeRequest) ([]byte, error)
	getPronunciationFn func(ctx context.Context, userID int64, req models.PronunciationRequest) (models.Pronunciation, error)
	getVoiceAudioFn    func(ctx context.Context, key models.AudioKey) ([]byte, error)
	saveVoiceAudioFn   func(ctx context.Context, key models.AudioKey, audio []byte) error
	getRecordingFn     func(ctx context.Context, key models.AudioKey) ([]byte, error)
	saveRecordingFn    func(ctx context.Context, key models.AudioKey, audio []byte) error
	holdFn             func(ctx context.Context, userID int64, name string, audio []byte) error
	pendingFn          func(ctx context.Context, userID int64) []string
	flushFn            func(ctx context.Context, userID int64, voiceID string) ([]string, error)
}

func (m *mockVoiceService) ListVoices(ctx context.Context) (models.VoicesResponse, error) {
	return m.listVoicesFn(ctx)
}

func (m *mockVoiceService) Synthesize(ctx context.Context, req models.SynthesizeRequest) ([]byte, error) {
	return m.synthesizeFn(ctx, req)
}

func (m *mockVoiceService) GetPronunciation(ctx context.Context, userID int64, req models.PronunciationRequest) (models.Pronunciation, error) {
	return m.getPronunciationFn(ctx, userID, req)
}

func (m *mockVoiceService) GetVoiceAudio(ctx context.Context, key models.AudioKey) ([]byte, error) {
	return m.getVoiceAudioFn(ctx, key)
}

func (m *mockVoiceService) SaveVoiceAudio(ctx context.Context, key models.AudioKey, audio []byte) error {
	return m.saveVoiceAudioFn(ctx, key, audio)
}

func (m *mockVoiceService) GetRecording(ctx context.Context, key models.AudioKey) ([]byte, error) {
	return m.getRecordingFn(ctx, key)
}

func (m *mockVoiceService) SaveRecording(ctx context.Context, key models.AudioKey, audio []byte) error {
	return m.saveRecordingFn(ctx, key, audio)
}

func (m *mockVoiceService) HoldPendingRecording(ctx context.Context, userID int64, name string, audio []byte) error {
	return m.holdFn(ctx, userID, name, audio)
}

func (m *mockVoiceService) PendingRecordings(ctx context.Context, userID int64) []string {
	return m.pendingFn(ctx, userID)
}

func (m *mockVoiceService) FlushPendingRecordings(ctx context.Context, userID int64, voiceID string) ([]string, error) {
	return m.flushFn(ctx, userID, voiceID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testUserID int64 = 7

// newTestHandler builds a Handler over svcs with a generous rate limit.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}
	return NewHandler(svcs, config.Server{RateLimitRPS: 1000, RateLimitBurst: 1000}, logger.Nop())
}

// withUser returns ctx carrying the authenticated test user.
func withUser(ctx context.Context) context.Context {
	return context.WithValue(ctx, utils.UserIDCtxKey, testUserID)
}

// serve routes req through Init as the authenticated test user.
func serve(t *testing.T, svcs *service.Services, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return models.Token{UserID: testUserID}, nil
			},
		}
	}
	req.Header.Set("Authorization", "Bearer stub-token")

	rec := httptest.NewRecorder()
	newTestHandler(t, svcs).Init().ServeHTTP(rec, req)
	return rec
}
