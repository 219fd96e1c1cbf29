// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrWrongPassword           = errors.New("wrong password")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")

	ErrNoNamesFound   = errors.New("No names were found in the response. Please try again.")
	ErrNoIdeasFound   = errors.New("No ideas were found in the response. Please try again.")
	ErrEmptyFlowReply = errors.New("flow service returned no text")

	ErrEmptyAudio          = errors.New("audio is required")
	ErrNoPendingRecordings = errors.New("no pending recordings")
)
