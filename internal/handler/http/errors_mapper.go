// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/Srejith/namemybaby/internal/adapter"
	"github.com/Srejith/namemybaby/internal/logger"
	"github.com/Srejith/namemybaby/internal/service"
	"github.com/Srejith/namemybaby/internal/store"
	"github.com/Srejith/namemybaby/internal/utils"
	"github.com/Srejith/namemybaby/internal/validators"
)

// errorStatusMap holds the sentinels that do not map to 500. Errors must
// not match more than one key.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNoNamesFound:            http.StatusUnprocessableEntity,
	service.ErrNoIdeasFound:            http.StatusUnprocessableEntity,
	service.ErrEmptyFlowReply:          http.StatusBadGateway,
	service.ErrEmptyAudio:              http.StatusBadRequest,
	service.ErrNoPendingRecordings:     http.StatusNotFound,

	validators.ErrValidation: http.StatusBadRequest,

	adapter.ErrUpstreamUnavailable: http.StatusBadGateway,
	adapter.ErrInvalidEndpoint:     http.StatusBadRequest,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrNameNotFound:       http.StatusNotFound,
	store.ErrNameAlreadyExists:  http.StatusConflict,
	store.ErrSameBucket:         http.StatusBadRequest,
	store.ErrReportNotFound:     http.StatusNotFound,
	store.ErrAudioNotFound:      http.StatusNotFound,
	store.ErrStorageUnavailable: http.StatusServiceUnavailable,

	ErrInvalidJSON:       http.StatusBadRequest,
	ErrMissingQueryParam: http.StatusBadRequest,
	ErrInvalidMultipart:  http.StatusBadRequest,
	ErrMissingAudioFile:  http.StatusBadRequest,
	ErrNoUserInContext:   http.StatusUnauthorized,
	ErrRateLimitExceeded: http.StatusTooManyRequests,
	ErrAudioFileTooLarge: http.StatusRequestEntityTooLarge,
}

// exposedServerErrors are 5xx errors whose message is shown to the client.
var exposedServerErrors = []error{
	adapter.ErrFlowNotConfigured,
	adapter.ErrVoiceNotConfigured,
	utils.ErrUndecodableAudio,
}

func statusFromError(err error) int {
	var upstream *adapter.UpstreamError
	if errors.As(err, &upstream) {
		if upstream.StatusCode >= http.StatusBadRequest && upstream.StatusCode < 600 {
			return upstream.StatusCode
		}
		return http.StatusBadGateway
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorMessage returns the text put into the error body. Internal failures
// are hidden behind the status text.
func errorMessage(err error, status int) string {
	var upstream *adapter.UpstreamError
	if errors.As(err, &upstream) {
		return upstream.Error()
	}

	var duplicate *store.DuplicateNameError
	if errors.As(err, &duplicate) {
		return duplicate.Error()
	}

	if status < http.StatusInternalServerError {
		return err.Error()
	}

	for _, target := range exposedServerErrors {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	switch status {
	case http.StatusServiceUnavailable:
		return store.ErrStorageUnavailable.Error()
	case http.StatusBadGateway:
		return err.Error()
	}
	return http.StatusText(status)
}

// writeError logs err and writes the mapped status with a JSON error body.
func writeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, errorMessage(err, status), status)
}
