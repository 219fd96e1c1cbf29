// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Srejith/namemybaby/internal/logger"
	"github.com/Srejith/namemybaby/internal/mock"
	"github.com/Srejith/namemybaby/internal/store"
	"github.com/Srejith/namemybaby/internal/utils"
	"github.com/Srejith/namemybaby/internal/validators"
	"github.com/Srejith/namemybaby/internal/workers"
	"github.com/Srejith/namemybaby/models"
)

type voiceMocks struct {
	voice      *mock.MockVoiceAdapter
	voiceAudio *mock.MockAudioRepository
	recordings *mock.MockAudioRepository
	scheduler  *mock.MockScheduler
}

func newTestVoiceService(t *testing.T) (VoiceService, voiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := voiceMocks{
		voice:      mock.NewMockVoiceAdapter(ctrl),
		voiceAudio: mock.NewMockAudioRepository(ctrl),
		recordings: mock.NewMockAudioRepository(ctrl),
		scheduler:  mock.NewMockScheduler(ctrl),
	}

	return NewVoiceService(m.voice, m.voiceAudio, m.recordings, m.scheduler, logger.Nop()), m
}

// ─────────────────────────────────────────────
// GetPronunciation
// ─────────────────────────────────────────────

func TestGetPronunciation_Hit(t *testing.T) {
	svc, m := newTestVoiceService(t)
	key := models.AudioKey{UserID: 1, Name: "Aria", VoiceID: "v1"}
	hits := testutil.ToFloat64(pronunciationLookups.WithLabelValues("hit"))

	m.voiceAudio.EXPECT().Get(gomock.Any(), key).
		Return(models.AudioEntry{Data: utils.EncodeBase64([]byte("mp3"))}, nil)

	got, err := svc.GetPronunciation(context.Background(), 1, models.PronunciationRequest{Name: "Aria", VoiceID: "v1"})

	require.NoError(t, err)
	assert.True(t, got.Cached)
	assert.Equal(t, []byte("mp3"), got.Audio)
	assert.Equal(t, hits+1, testutil.ToFloat64(pronunciationLookups.WithLabelValues("hit")))
}

func TestGetPronunciation_MissSynthesizesAndSchedulesOneWrite(t *testing.T) {
	svc, m := newTestVoiceService(t)
	key := models.AudioKey{UserID: 1, Name: "Aria", VoiceID: "v1"}

	var scheduled workers.Task
	m.voiceAudio.EXPECT().Get(gomock.Any(), key).Return(models.AudioEntry{}, store.ErrAudioNotFound)
	m.voice.EXPECT().Synthesize(gomock.Any(), "v1", "AH-ree-ah").Return([]byte("mp3"), nil)
	m.scheduler.EXPECT().Schedule(gomock.Any(), gomock.Any()).Times(1).
		DoAndReturn(func(_ string, task workers.Task) bool {
			scheduled = task
			return true
		})

	got, err := svc.GetPronunciation(context.Background(), 1, models.PronunciationRequest{
		Name:    "Aria",
		VoiceID: "v1",
		Text:    "AH-ree-ah",
	})

	require.NoError(t, err)
	assert.False(t, got.Cached)
	assert.Equal(t, []byte("mp3"), got.Audio)

	require.NotNil(t, scheduled)
	m.voiceAudio.EXPECT().Save(gomock.Any(), key, utils.EncodeBase64([]byte("mp3"))).Return(nil)
	assert.NoError(t, scheduled(context.Background()))
}

func TestGetPronunciation_TextDefaultsToName(t *testing.T) {
	svc, m := newTestVoiceService(t)

	m.voiceAudio.EXPECT().Get(gomock.Any(), gomock.Any()).Return(models.AudioEntry{}, store.ErrAudioNotFound)
	m.voice.EXPECT().Synthesize(gomock.Any(), "v1", "Leo").Return([]byte("mp3"), nil)
	m.scheduler.EXPECT().Schedule(gomock.Any(), gomock.Any()).Return(false)

	_, err := svc.GetPronunciation(context.Background(), 1, models.PronunciationRequest{Name: "Leo", VoiceID: "v1"})

	assert.NoError(t, err)
}

func TestGetPronunciation_UndecodableHit(t *testing.T) {
	svc, m := newTestVoiceService(t)

	m.voiceAudio.EXPECT().Get(gomock.Any(), gomock.Any()).Return(models.AudioEntry{Data: `\xzz`}, nil)

	_, err := svc.GetPronunciation(context.Background(), 1, models.PronunciationRequest{Name: "Leo", VoiceID: "v1"})

	assert.ErrorIs(t, err, utils.ErrUndecodableAudio)
}

func TestGetPronunciation_StorageError(t *testing.T) {
	svc, m := newTestVoiceService(t)

	m.voiceAudio.EXPECT().Get(gomock.Any(), gomock.Any()).Return(models.AudioEntry{}, store.ErrStorageUnavailable)

	_, err := svc.GetPronunciation(context.Background(), 1, models.PronunciationRequest{Name: "Leo", VoiceID: "v1"})

	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
}

func TestGetPronunciation_MissingVoice(t *testing.T) {
	svc, _ := newTestVoiceService(t)

	_, err := svc.GetPronunciation(context.Background(), 1, models.PronunciationRequest{Name: "Leo"})

	assert.ErrorIs(t, err, validators.ErrEmptyVoiceID)
}

// ─────────────────────────────────────────────
// Explicit caches
// ─────────────────────────────────────────────

func TestSaveRecording_HexEncodes(t *testing.T) {
	svc, m := newTestVoiceService(t)
	key := models.AudioKey{UserID: 1, Name: "Aria", VoiceID: "v1"}

	m.recordings.EXPECT().Save(gomock.Any(), key, `\x0102ff`).Return(nil)

	assert.NoError(t, svc.SaveRecording(context.Background(), key, []byte{0x01, 0x02, 0xff}))
}

func TestGetRecording_DecodesHex(t *testing.T) {
	svc, m := newTestVoiceService(t)
	key := models.AudioKey{UserID: 1, Name: "Aria", VoiceID: "v1"}

	m.recordings.EXPECT().Get(gomock.Any(), key).Return(models.AudioEntry{Data: `\x0102ff`}, nil)

	got, err := svc.GetRecording(context.Background(), key)

	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0xff}, got)
}

func TestSaveVoiceAudio_Rejects(t *testing.T) {
	svc, _ := newTestVoiceService(t)

	err := svc.SaveVoiceAudio(context.Background(), models.AudioKey{UserID: 1, Name: "Aria", VoiceID: "v1"}, nil)
	assert.ErrorIs(t, err, ErrEmptyAudio)

	err = svc.SaveVoiceAudio(context.Background(), models.AudioKey{UserID: 1, Name: "Aria"}, []byte("x"))
	assert.ErrorIs(t, err, validators.ErrEmptyVoiceID)
}

func TestGetVoiceAudio_NotFound(t *testing.T) {
	svc, m := newTestVoiceService(t)

	m.voiceAudio.EXPECT().Get(gomock.Any(), gomock.Any()).Return(models.AudioEntry{}, store.ErrAudioNotFound)

	_, err := svc.GetVoiceAudio(context.Background(), models.AudioKey{UserID: 1, Name: "Aria", VoiceID: "v1"})

	assert.ErrorIs(t, err, store.ErrAudioNotFound)
}

// ─────────────────────────────────────────────
// Pending recordings
// ─────────────────────────────────────────────

func TestPendingRecordings_HoldReplaceAndFlush(t *testing.T) {
	svc, m := newTestVoiceService(t)
	ctx := context.Background()

	require.NoError(t, svc.HoldPendingRecording(ctx, 1, "Leo", []byte{0x01}))
	require.NoError(t, svc.HoldPendingRecording(ctx, 1, "Aria", []byte{0x02}))
	require.NoError(t, svc.HoldPendingRecording(ctx, 1, "aria", []byte{0x03}))
	require.NoError(t, svc.HoldPendingRecording(ctx, 2, "Mia", []byte{0x04}))

	assert.Equal(t, []string{"Leo", "aria"}, svc.PendingRecordings(ctx, 1))

	m.recordings.EXPECT().Save(gomock.Any(), models.AudioKey{UserID: 1, Name: "Leo", VoiceID: "v9"}, `\x01`).Return(nil)
	m.recordings.EXPECT().Save(gomock.Any(), models.AudioKey{UserID: 1, Name: "aria", VoiceID: "v9"}, `\x03`).Return(nil)

	flushed, err := svc.FlushPendingRecordings(ctx, 1, "v9")

	require.NoError(t, err)
	assert.Equal(t, []string{"Leo", "aria"}, flushed)
	assert.Empty(t, svc.PendingRecordings(ctx, 1))
	assert.Equal(t, []string{"Mia"}, svc.PendingRecordings(ctx, 2))
}

func TestFlushPendingRecordings_FailedStayPending(t *testing.T) {
	svc, m := newTestVoiceService(t)
	ctx := context.Background()
	saveErr := errors.New("disk full")

	require.NoError(t, svc.HoldPendingRecording(ctx, 1, "Aria", []byte{0x01}))
	require.NoError(t, svc.HoldPendingRecording(ctx, 1, "Leo", []byte{0x02}))

	m.recordings.EXPECT().Save(gomock.Any(), gomock.Any(), `\x01`).Return(saveErr)
	m.recordings.EXPECT().Save(gomock.Any(), gomock.Any(), `\x02`).Return(nil)

	flushed, err := svc.FlushPendingRecordings(ctx, 1, "v1")

	assert.ErrorIs(t, err, saveErr)
	assert.Equal(t, []string{"Leo"}, flushed)
	assert.Equal(t, []string{"Aria"}, svc.PendingRecordings(ctx, 1))
}

func TestFlushPendingRecordings_Errors(t *testing.T) {
	svc, _ := newTestVoiceService(t)
	ctx := context.Background()

	_, err := svc.FlushPendingRecordings(ctx, 1, "v1")
	assert.ErrorIs(t, err, ErrNoPendingRecordings)

	_, err = svc.FlushPendingRecordings(ctx, 1, " ")
	assert.ErrorIs(t, err, validators.ErrEmptyVoiceID)

	assert.ErrorIs(t, svc.HoldPendingRecording(ctx, 1, "Leo", nil), ErrEmptyAudio)
	assert.ErrorIs(t, svc.HoldPendingRecording(ctx, 1, "", []byte{1}), validators.ErrEmptyName)
}
