// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/url"
	"strings"

	"github.com/Srejith/namemybaby/internal/config"
	"github.com/Srejith/namemybaby/internal/logger"
	"github.com/Srejith/namemybaby/internal/utils"
	"github.com/Srejith/namemybaby/models"
)

type elevenLabsAdapter struct {
	client *utils.HTTPClient

	apiKey          string
	modelID         string
	stability       float64
	similarityBoost float64

	logger *logger.Logger
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type textToSpeechRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

// NewElevenLabsAdapter builds the ElevenLabs [VoiceAdapter]. An empty API key
// is accepted; every call then fails with [ErrVoiceNotConfigured].
func NewElevenLabsAdapter(cfg config.Voice, log *logger.Logger) VoiceAdapter {
	stability, similarityBoost := cfg.Settings()

	return &elevenLabsAdapter{
		client:          utils.NewHTTPClient(strings.TrimRight(cfg.BaseURL, "/"), cfg.Timeout),
		apiKey:          cfg.APIKey,
		modelID:         cfg.ModelID,
		stability:       stability,
		similarityBoost: similarityBoost,
		logger:          log,
	}
}

// ListVoices implements [VoiceAdapter].
func (a *elevenLabsAdapter) ListVoices(ctx context.Context) (models.VoicesResponse, error) {
	log := logger.FromContext(ctx)

	if a.apiKey == "" {
		return models.VoicesResponse{}, ErrVoiceNotConfigured
	}

	var voices models.VoicesResponse
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("xi-api-key", a.apiKey).
		SetHeader("Accept", "application/json").
		SetResult(&voices).
		Get("/v1/voices")
	if err != nil {
		log.Err(err).Str("func", "*elevenLabsAdapter.ListVoices").Msg("voices request failed")
		return models.VoicesResponse{}, mapTransportError(ctx, serviceElevenLabs, err)
	}
	if err = mapHTTPError(serviceElevenLabs, resp); err != nil {
		log.Error().Str("func", "*elevenLabsAdapter.ListVoices").
			Int("status", resp.StatusCode()).
			Str("body", utils.Preview(string(resp.Body()), 200)).
			Msg("voice provider returned an error")
		return models.VoicesResponse{}, err
	}

	if voices.Voices == nil {
		voices.Voices = []models.Voice{}
	}
	return voices, nil
}

// Synthesize implements [VoiceAdapter].
func (a *elevenLabsAdapter) Synthesize(ctx context.Context, voiceID, text string) ([]byte, error) {
	log := logger.FromContext(ctx)

	if a.apiKey == "" {
		return nil, ErrVoiceNotConfigured
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("xi-api-key", a.apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", models.ContentTypeVoiceAudio).
		SetBody(textToSpeechRequest{
			Text:    text,
			ModelID: a.modelID,
			VoiceSettings: voiceSettings{
				Stability:       a.stability,
				SimilarityBoost: a.similarityBoost,
			},
		}).
		Post("/v1/text-to-speech/" + url.PathEscape(voiceID))
	if err != nil {
		log.Err(err).Str("func", "*elevenLabsAdapter.Synthesize").Str("voice_id", voiceID).Msg("text-to-speech request failed")
		return nil, mapTransportError(ctx, serviceElevenLabs, err)
	}
	if err = mapHTTPError(serviceElevenLabs, resp); err != nil {
		log.Error().Str("func", "*elevenLabsAdapter.Synthesize").
			Int("status", resp.StatusCode()).
			Str("body", utils.Preview(string(resp.Body()), 200)).
			Msg("voice provider returned an error")
		return nil, err
	}

	return resp.Body(), nil
}
