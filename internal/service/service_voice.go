// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Srejith/namemybaby/internal/adapter"
	"github.com/Srejith/namemybaby/internal/logger"
	"github.com/Srejith/namemybaby/internal/store"
	"github.com/Srejith/namemybaby/internal/utils"
	"github.com/Srejith/namemybaby/internal/validators"
	"github.com/Srejith/namemybaby/internal/workers"
	"github.com/Srejith/namemybaby/models"
)

var pronunciationLookups = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "pronunciation_cache_lookups_total",
		Help: "Pronunciation cache lookups by result.",
	},
	[]string{"result"},
)

func init() {
	prometheus.MustRegister(pronunciationLookups)
}

const audioPreviewLen = 50

type voiceService struct {
	voice      adapter.VoiceAdapter
	voiceAudio store.AudioRepository
	recordings store.AudioRepository
	scheduler  workers.Scheduler
	validator  validators.Validator

	// pending recordings keyed by user, then by lowercased name
	mu      sync.Mutex
	pending map[int64]map[string]pendingRecording

	logger *logger.Logger
}

type pendingRecording struct {
	name  string
	audio []byte
}

func NewVoiceService(
	voice adapter.VoiceAdapter,
	voiceAudio store.AudioRepository,
	recordings store.AudioRepository,
	scheduler workers.Scheduler,
	logger *logger.Logger,
) VoiceService {
	return &voiceService{
		voice:      voice,
		voiceAudio: voiceAudio,
		recordings: recordings,
		scheduler:  scheduler,
		validator:  validators.NewNameValidator(),
		pending:    make(map[int64]map[string]pendingRecording),
		logger:     logger,
	}
}

func (s *voiceService) ListVoices(ctx context.Context) (models.VoicesResponse, error) {
	voices, err := s.voice.ListVoices(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*voiceService.ListVoices").Msg("listing voices failed")
		return models.VoicesResponse{}, err
	}
	return voices, nil
}

func (s *voiceService) Synthesize(ctx context.Context, req models.SynthesizeRequest) ([]byte, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return nil, err
	}

	audio, err := s.voice.Synthesize(ctx, req.VoiceID, req.Text)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*voiceService.Synthesize").Str("voice_id", req.VoiceID).Msg("synthesis failed")
		return nil, err
	}
	return audio, nil
}

// GetPronunciation serves cached audio when present. On a miss it synthesizes,
// returns the audio and schedules a single cache write in the background.
func (s *voiceService) GetPronunciation(ctx context.Context, userID int64, req models.PronunciationRequest) (models.Pronunciation, error) {
	log := logger.FromContext(ctx)

	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Pronunciation{}, err
	}

	key := models.AudioKey{UserID: userID, Name: req.Name, VoiceID: req.VoiceID}

	audio, err := s.getAudio(ctx, s.voiceAudio, key)
	switch {
	case err == nil:
		pronunciationLookups.WithLabelValues("hit").Inc()
		return models.Pronunciation{Audio: audio, Cached: true}, nil
	case isAudioNotFound(err):
		pronunciationLookups.WithLabelValues("miss").Inc()
	default:
		return models.Pronunciation{}, err
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		text = req.Name
	}

	audio, err = s.voice.Synthesize(ctx, req.VoiceID, text)
	if err != nil {
		log.Err(err).Str("func", "*voiceService.GetPronunciation").Str("voice_id", req.VoiceID).Msg("synthesis failed")
		return models.Pronunciation{}, err
	}
	if len(audio) == 0 {
		return models.Pronunciation{}, ErrEmptyAudio
	}

	encoded := utils.EncodeBase64(audio)
	s.scheduler.Schedule("pronunciation:"+key.Name, func(ctx context.Context) error {
		return s.voiceAudio.Save(ctx, key, encoded)
	})

	return models.Pronunciation{Audio: audio, Cached: false}, nil
}

func (s *voiceService) GetVoiceAudio(ctx context.Context, key models.AudioKey) ([]byte, error) {
	if err := s.validator.Validate(ctx, key); err != nil {
		return nil, err
	}
	return s.getAudio(ctx, s.voiceAudio, key)
}

func (s *voiceService) SaveVoiceAudio(ctx context.Context, key models.AudioKey, audio []byte) error {
	if err := s.validateAudio(ctx, key, audio); err != nil {
		return err
	}
	return s.voiceAudio.Save(ctx, key, utils.EncodeBase64(audio))
}

func (s *voiceService) GetRecording(ctx context.Context, key models.AudioKey) ([]byte, error) {
	if err := s.validator.Validate(ctx, key); err != nil {
		return nil, err
	}
	return s.getAudio(ctx, s.recordings, key)
}

func (s *voiceService) SaveRecording(ctx context.Context, key models.AudioKey, audio []byte) error {
	if err := s.validateAudio(ctx, key, audio); err != nil {
		return err
	}
	return s.recordings.Save(ctx, key, utils.EncodeHexEscaped(audio))
}

// HoldPendingRecording keeps audio in memory until the user picks a voice.
// A second recording of the same name replaces the first.
func (s *voiceService) HoldPendingRecording(ctx context.Context, userID int64, name string, audio []byte) error {
	name = strings.TrimSpace(name)
	if err := s.validator.Validate(ctx, models.AudioKey{UserID: userID, Name: name}, validators.FieldUserID, validators.FieldName); err != nil {
		return err
	}
	if len(audio) == 0 {
		return ErrEmptyAudio
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	byName, ok := s.pending[userID]
	if !ok {
		byName = make(map[string]pendingRecording)
		s.pending[userID] = byName
	}
	byName[strings.ToLower(name)] = pendingRecording{name: name, audio: slices.Clone(audio)}

	return nil
}

// PendingRecordings returns the held names in sorted order.
func (s *voiceService) PendingRecordings(ctx context.Context, userID int64) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.pending[userID]))
	for _, p := range s.pending[userID] {
		names = append(names, p.name)
	}
	slices.Sort(names)
	return names
}

// FlushPendingRecordings stores every held recording of userID under voiceID.
// Recordings that fail to store stay pending and the first error is returned
// together with the names that were stored.
func (s *voiceService) FlushPendingRecordings(ctx context.Context, userID int64, voiceID string) ([]string, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(voiceID) == "" {
		return nil, fmt.Errorf("%w: %w", validators.ErrValidation, validators.ErrEmptyVoiceID)
	}

	s.mu.Lock()
	held := make([]pendingRecording, 0, len(s.pending[userID]))
	for _, p := range s.pending[userID] {
		held = append(held, p)
	}
	s.mu.Unlock()

	if len(held) == 0 {
		return nil, ErrNoPendingRecordings
	}
	slices.SortFunc(held, func(a, b pendingRecording) int { return strings.Compare(a.name, b.name) })

	flushed := make([]string, 0, len(held))
	var firstErr error
	for _, p := range held {
		key := models.AudioKey{UserID: userID, Name: p.name, VoiceID: voiceID}
		if err := s.recordings.Save(ctx, key, utils.EncodeHexEscaped(p.audio)); err != nil {
			log.Err(err).Str("func", "*voiceService.FlushPendingRecordings").Str("name", p.name).Msg("storing pending recording failed")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		flushed = append(flushed, p.name)
		s.forget(userID, p)
	}

	return flushed, firstErr
}

func (s *voiceService) forget(userID int64, p pendingRecording) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byName := s.pending[userID]
	k := strings.ToLower(p.name)
	// a newer recording held during the flush is kept
	if cur, ok := byName[k]; ok && slices.Equal(cur.audio, p.audio) {
		delete(byName, k)
	}
	if len(byName) == 0 {
		delete(s.pending, userID)
	}
}

func (s *voiceService) getAudio(ctx context.Context, repo store.AudioRepository, key models.AudioKey) ([]byte, error) {
	entry, err := repo.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	audio, err := utils.DecodeAudio(entry.Data)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("func", "*voiceService.getAudio").
			Str("name", key.Name).
			Str("voice_id", key.VoiceID).
			Str("preview", utils.Preview(entry.Data, audioPreviewLen)).
			Msg("stored audio could not be decoded")
		return nil, utils.ErrUndecodableAudio
	}
	return audio, nil
}

func (s *voiceService) validateAudio(ctx context.Context, key models.AudioKey, audio []byte) error {
	if err := s.validator.Validate(ctx, key); err != nil {
		return err
	}
	if len(audio) == 0 {
		return ErrEmptyAudio
	}
	return nil
}

func isAudioNotFound(err error) bool {
	return errors.Is(err, store.ErrAudioNotFound)
}
