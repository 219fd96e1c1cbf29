// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Audio content types served to clients.
const (
	ContentTypeVoiceAudio = "audio/mpeg"
	ContentTypeRecording  = "audio/webm; codecs=opus"
)

// AudioKey identifies a cached audio entry. Both audio keyspaces share it.
type AudioKey struct {
	UserID  int64
	Name    string
	VoiceID string
}

// AudioEntry is a stored audio blob. Data holds the encoded form as persisted
// (base64 for synthesized audio, hex-escaped for recordings).
type AudioEntry struct {
	ID        string
	Key       AudioKey
	Data      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Voice is a synthesis voice offered by the voice provider.
type Voice struct {
	VoiceID     string `json:"voice_id"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

// VoicesResponse mirrors the provider's voice listing.
type VoicesResponse struct {
	Voices []Voice `json:"voices"`
}

// SynthesizeRequest is the body of a raw text-to-speech call.
type SynthesizeRequest struct {
	Text    string `json:"text"`
	VoiceID string `json:"voice_id"`
}

// PronunciationRequest asks for the pronunciation of Name in voice VoiceID.
// Text defaults to Name.
type PronunciationRequest struct {
	Name    string `json:"name"`
	VoiceID string `json:"voice_id"`
	Text    string `json:"text,omitempty"`
}

// Pronunciation is synthesized or cached audio together with its origin.
type Pronunciation struct {
	Audio  []byte
	Cached bool
}

// FlushRecordingsRequest selects the voice under which pending recordings are
// stored.
type FlushRecordingsRequest struct {
	VoiceID string `json:"voice_id"`
}

// PendingRecordingsResponse lists the names that have a recording held in
// memory.
type PendingRecordingsResponse struct {
	Names []string `json:"names"`
}
