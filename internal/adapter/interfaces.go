// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the upstream services the server depends on: the
// conversational flow service that generates names, ideas and reports, and
// the ElevenLabs speech synthesis API.
//
// Non-2xx upstream replies surface as [*UpstreamError], which carries the
// upstream status code so the HTTP layer can propagate it. Transport failures
// wrap [ErrUpstreamUnavailable].
package adapter

import (
	"context"

	"github.com/Srejith/namemybaby/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// FlowAdapter sends a single prompt to the flow service and returns the
// parsed reply.
type FlowAdapter interface {
	// Run posts req to the configured flow backend. The returned reply always
	// carries a session id: the upstream one if present, otherwise the one
	// that was sent.
	Run(ctx context.Context, req models.FlowRequest) (models.FlowReply, error)
}

// VoiceAdapter is the speech synthesis provider.
type VoiceAdapter interface {
	// ListVoices returns the voices available to the configured account.
	ListVoices(ctx context.Context) (models.VoicesResponse, error)

	// Synthesize renders text in voiceID and returns MPEG audio.
	Synthesize(ctx context.Context, voiceID, text string) ([]byte, error)
}
