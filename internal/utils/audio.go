// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
)

// Audio codec errors.
var (
	ErrEmptyAudio       = errors.New("audio data is empty")
	ErrUndecodableAudio = errors.New("audio data is neither base64 nor hex encoded")
)

const hexEscapePrefix = `\x`

// EncodeBase64 encodes synthesized audio for storage.
func EncodeBase64(audio []byte) string {
	return base64.StdEncoding.EncodeToString(audio)
}

// EncodeHexEscaped encodes recorded audio as `\x` followed by lowercase hex,
// the textual form of a Postgres bytea value.
func EncodeHexEscaped(audio []byte) string {
	return hexEscapePrefix + hex.EncodeToString(audio)
}

// DecodeAudio reverses both stored encodings. Base64 (padded, then unpadded)
// is tried first, then hex with every `\x` removed.
func DecodeAudio(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyAudio
	}

	if !strings.HasPrefix(s, hexEscapePrefix) {
		if b, err := base64.StdEncoding.DecodeString(s); err == nil {
			return b, nil
		}
		if b, err := base64.RawStdEncoding.DecodeString(s); err == nil {
			return b, nil
		}
	}

	hexStr := strings.ReplaceAll(s, hexEscapePrefix, "")
	if hexStr == "" {
		return nil, ErrEmptyAudio
	}
	if len(hexStr)%2 != 0 {
		return nil, ErrUndecodableAudio
	}

	b, err := hex.DecodeString(hexStr)
	if err != nil {
		return nil, ErrUndecodableAudio
	}

	return b, nil
}

// Preview returns at most n leading characters of s for logging.
func Preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
