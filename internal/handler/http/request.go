// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	maxJSONBodyBytes  = 1 << 20
	maxAudioFileBytes = 10 << 20
	// multipart forms carry the file plus a few short text fields
	maxMultipartBytes = maxAudioFileBytes + 1<<20
)

// decodeJSON reads a single JSON value from the request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// decodeOptionalJSON is decodeJSON that accepts an empty body.
func decodeOptionalJSON(r *http.Request, dst any) error {
	err := decodeJSON(r, dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// audioForm holds the fields of an audio upload.
type audioForm struct {
	name    string
	voiceID string
	audio   []byte
}

// parseAudioForm reads the multipart fields name, voice_id and the audio file.
func parseAudioForm(w http.ResponseWriter, r *http.Request) (audioForm, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxMultipartBytes)
	if err := r.ParseMultipartForm(maxMultipartBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return audioForm{}, ErrAudioFileTooLarge
		}
		return audioForm{}, fmt.Errorf("%w: %w", ErrInvalidMultipart, err)
	}

	file, _, err := r.FormFile("audio")
	if err != nil {
		return audioForm{}, ErrMissingAudioFile
	}
	defer file.Close()

	audio, err := io.ReadAll(io.LimitReader(file, maxAudioFileBytes+1))
	if err != nil {
		return audioForm{}, fmt.Errorf("%w: %w", ErrInvalidMultipart, err)
	}
	if len(audio) > maxAudioFileBytes {
		return audioForm{}, ErrAudioFileTooLarge
	}
	if len(audio) == 0 {
		return audioForm{}, ErrMissingAudioFile
	}

	return audioForm{
		name:    strings.TrimSpace(r.FormValue("name")),
		voiceID: strings.TrimSpace(r.FormValue("voice_id")),
		audio:   audio,
	}, nil
}

// writeAudio writes raw audio bytes with the given content type.
func writeAudio(w http.ResponseWriter, audio []byte, contentType string) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(audio)
}
