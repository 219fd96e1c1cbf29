// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrFlowNotConfigured   = errors.New("LangFlow server URL is not configured")
	ErrVoiceNotConfigured  = errors.New("Eleven Labs API key is not configured")
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
	ErrInvalidEndpoint     = errors.New("flow endpoint must be a path starting with /")
	ErrInvalidFlowBackend  = errors.New("unknown flow backend")
)

// Upstream service names used in error messages.
const (
	serviceLangflow   = "LangFlow server"
	serviceElevenLabs = "Eleven Labs API"
)

// UpstreamError is a non-2xx reply of an upstream service.
type UpstreamError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s error: %d %s", e.Service, e.StatusCode, http.StatusText(e.StatusCode))
}
