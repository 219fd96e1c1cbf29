// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

// ErrValidation wraps every error returned by a Validator so callers can map
// them to a single status.
var ErrValidation = errors.New("validation failed")

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID       = errors.New("invalid user ID")
	ErrUnknownBucket       = errors.New("unknown bucket")
	ErrEmptyName           = errors.New("name is required")
	ErrNameTooLong         = errors.New("name is too long")
	ErrInvalidGender       = errors.New("gender must be Boy or Girl")
	ErrEmptyIDAndName      = errors.New("id or name is required")
	ErrEmptyNames          = errors.New("names list cannot be empty")
	ErrTooManyNames        = errors.New("names list is too long")
	ErrInvalidBabyGender   = errors.New("baby gender must be Boy, Girl or I don't know yet")
	ErrInvalidNamesCount   = errors.New("number of names to generate is out of range")
	ErrEmptyReportContent  = errors.New("report content is required")
	ErrEmptyVoiceID        = errors.New("voice_id is required")
	ErrEmptyText           = errors.New("text is required")
	ErrTextTooLong         = errors.New("text is too long")
	ErrEmptyPrompt         = errors.New("prompt is required")
	ErrEmptyChatMessage    = errors.New("message is required")
	ErrInvalidFlowEndpoint = errors.New("endpoint must be a path starting with /")
)
