// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/Srejith/namemybaby/internal/utils"
	"github.com/Srejith/namemybaby/models"
)

const (
	audioCacheHeader  = "X-Audio-Cache"
	cacheControlAudio = "public, max-age=31536000"
	audioCacheHit     = "hit"
	audioCacheMiss    = "miss"
)

func (h *Handler) listVoices(w http.ResponseWriter, r *http.Request) {
	voices, err := h.services.VoiceService.ListVoices(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.listVoices")
		return
	}

	utils.WriteJSON(w, voices, http.StatusOK)
}

// synthesize streams freshly synthesized speech. Nothing is cached.
func (h *Handler) synthesize(w http.ResponseWriter, r *http.Request) {
	var req models.SynthesizeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "*Handler.synthesize")
		return
	}

	audio, err := h.services.VoiceService.Synthesize(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.synthesize")
		return
	}

	writeAudio(w, audio, models.ContentTypeVoiceAudio)
}

func (h *Handler) pronunciation(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.pronunciation")
		return
	}

	var req models.PronunciationRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "*Handler.pronunciation")
		return
	}

	p, err := h.services.VoiceService.GetPronunciation(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err, "*Handler.pronunciation")
		return
	}

	if p.Cached {
		w.Header().Set(audioCacheHeader, audioCacheHit)
	} else {
		w.Header().Set(audioCacheHeader, audioCacheMiss)
	}
	writeAudio(w, p.Audio, models.ContentTypeVoiceAudio)
}

// audioKeyFromQuery reads name and voice_id from the query string.
func audioKeyFromQuery(r *http.Request, userID int64) (models.AudioKey, error) {
	q := r.URL.Query()
	key := models.AudioKey{
		UserID:  userID,
		Name:    strings.TrimSpace(q.Get("name")),
		VoiceID: strings.TrimSpace(q.Get("voice_id")),
	}
	if key.Name == "" || key.VoiceID == "" {
		return models.AudioKey{}, ErrMissingQueryParam
	}
	return key, nil
}

func (h *Handler) getVoiceAudio(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.getVoiceAudio")
		return
	}

	key, err := audioKeyFromQuery(r, userID)
	if err != nil {
		writeError(w, r, err, "*Handler.getVoiceAudio")
		return
	}

	audio, err := h.services.VoiceService.GetVoiceAudio(r.Context(), key)
	if err != nil {
		writeError(w, r, err, "*Handler.getVoiceAudio")
		return
	}

	w.Header().Set("Cache-Control", cacheControlAudio)
	writeAudio(w, audio, models.ContentTypeVoiceAudio)
}

func (h *Handler) saveVoiceAudio(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.saveVoiceAudio")
		return
	}

	form, err := parseAudioForm(w, r)
	if err != nil {
		writeError(w, r, err, "*Handler.saveVoiceAudio")
		return
	}

	key := models.AudioKey{UserID: userID, Name: form.name, VoiceID: form.voiceID}
	if err = h.services.VoiceService.SaveVoiceAudio(r.Context(), key, form.audio); err != nil {
		writeError(w, r, err, "*Handler.saveVoiceAudio")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) getRecording(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.getRecording")
		return
	}

	key, err := audioKeyFromQuery(r, userID)
	if err != nil {
		writeError(w, r, err, "*Handler.getRecording")
		return
	}

	audio, err := h.services.VoiceService.GetRecording(r.Context(), key)
	if err != nil {
		writeError(w, r, err, "*Handler.getRecording")
		return
	}

	w.Header().Set("Cache-Control", cacheControlAudio)
	writeAudio(w, audio, models.ContentTypeRecording)
}

func (h *Handler) saveRecording(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.saveRecording")
		return
	}

	form, err := parseAudioForm(w, r)
	if err != nil {
		writeError(w, r, err, "*Handler.saveRecording")
		return
	}

	key := models.AudioKey{UserID: userID, Name: form.name, VoiceID: form.voiceID}
	if err = h.services.VoiceService.SaveRecording(r.Context(), key, form.audio); err != nil {
		writeError(w, r, err, "*Handler.saveRecording")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// holdRecording keeps a recording in memory until the user picks a voice.
func (h *Handler) holdRecording(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.holdRecording")
		return
	}

	form, err := parseAudioForm(w, r)
	if err != nil {
		writeError(w, r, err, "*Handler.holdRecording")
		return
	}

	if err = h.services.VoiceService.HoldPendingRecording(r.Context(), userID, form.name, form.audio); err != nil {
		writeError(w, r, err, "*Handler.holdRecording")
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) listPendingRecordings(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.listPendingRecordings")
		return
	}

	names := h.services.VoiceService.PendingRecordings(r.Context(), userID)
	utils.WriteJSON(w, models.PendingRecordingsResponse{Names: names}, http.StatusOK)
}

func (h *Handler) flushPendingRecordings(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.flushPendingRecordings")
		return
	}

	var req models.FlushRecordingsRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "*Handler.flushPendingRecordings")
		return
	}

	names, err := h.services.VoiceService.FlushPendingRecordings(r.Context(), userID, req.VoiceID)
	if err != nil {
		writeError(w, r, err, "*Handler.flushPendingRecordings")
		return
	}

	utils.WriteJSON(w, models.PendingRecordingsResponse{Names: names}, http.StatusOK)
}
