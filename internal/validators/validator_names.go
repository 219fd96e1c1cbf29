// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Srejith/namemybaby/models"
)

const (
	FieldUserID        = "user_id"
	FieldBucket        = "bucket"
	FieldName          = "name"
	FieldGender        = "gender"
	FieldFrom          = "from"
	FieldTo            = "to"
	FieldIDOrName      = "id_or_name"
	FieldNames         = "names"
	FieldBabyGender    = "baby_gender"
	FieldNamesCount    = "number_of_names_to_generate"
	FieldReportContent = "report_content"
	FieldVoiceID       = "voice_id"
	FieldText          = "text"
	FieldPrompt        = "prompt"
	FieldMessage       = "message"
	FieldEndpoint      = "endpoint"
)

const (
	maxNameLength  = 100
	maxBatchSize   = 100
	maxNamesCount  = 50
	maxSpeechChars = 5000
)

// NameValidator checks the requests of the naming API: bucket entries, moves,
// preferences, reports, generation prompts and voice requests.
type NameValidator struct {
}

// NewNameValidator returns a [Validator] for the request models of the
// naming API.
func NewNameValidator() Validator {
	return &NameValidator{}
}

// Validate implements [Validator]. Every returned error wraps [ErrValidation].
func (v *NameValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if err := v.validate(ctx, obj, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

func (v *NameValidator) validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Bucket:
		return validateBucket(value)

	case models.NameItem:
		return v.validateNameItem(ctx, value, fields...)
	case *models.NameItem:
		return v.validateNameItem(ctx, *value, fields...)

	case models.MoveRequest:
		return v.validateMoveRequest(ctx, value, fields...)
	case *models.MoveRequest:
		return v.validateMoveRequest(ctx, *value, fields...)

	case models.BatchAddRequest:
		return v.validateBatchAddRequest(ctx, value, fields...)
	case *models.BatchAddRequest:
		return v.validateBatchAddRequest(ctx, *value, fields...)

	case models.UserPreferences:
		return v.validatePreferences(ctx, value, fields...)
	case *models.UserPreferences:
		return v.validatePreferences(ctx, *value, fields...)

	case models.SaveReportRequest:
		return v.validateSaveReportRequest(ctx, value, fields...)

	case models.ChatRequest:
		return v.validateChatRequest(ctx, value, fields...)

	case models.GenerateNamesRequest:
		return v.validateGenerateNamesRequest(ctx, value, fields...)

	case models.SynthesizeRequest:
		return v.validateSynthesizeRequest(ctx, value, fields...)

	case models.PronunciationRequest:
		return v.validatePronunciationRequest(ctx, value, fields...)

	case models.AudioKey:
		return v.validateAudioKey(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func validateBucket(b models.Bucket) error {
	if !b.Valid() {
		return ErrUnknownBucket
	}
	return nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func validateGender(g models.Gender) error {
	if !g.Valid() {
		return ErrInvalidGender
	}
	return nil
}

func (v *NameValidator) validateNameItem(ctx context.Context, item models.NameItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldGender}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := validateName(item.Name); err != nil {
				return err
			}
		case FieldGender:
			if err := validateGender(item.Gender); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NameValidator) validateMoveRequest(ctx context.Context, req models.MoveRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldFrom, FieldTo, FieldIDOrName, FieldGender}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if req.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldFrom:
			if err := validateBucket(req.From); err != nil {
				return fmt.Errorf("from: %w", err)
			}
		case FieldTo:
			if err := validateBucket(req.To); err != nil {
				return fmt.Errorf("to: %w", err)
			}
		case FieldIDOrName:
			if strings.TrimSpace(req.ID) == "" && strings.TrimSpace(req.Name) == "" {
				return ErrEmptyIDAndName
			}
			if req.Name != "" {
				if err := validateName(req.Name); err != nil {
					return err
				}
			}
		case FieldGender:
			if err := validateGender(req.Gender); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NameValidator) validateBatchAddRequest(ctx context.Context, req models.BatchAddRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNames, FieldGender}
	}

	for _, f := range fields {
		switch f {
		case FieldNames:
			if len(req.Names) == 0 {
				return ErrEmptyNames
			}
			if len(req.Names) > maxBatchSize {
				return ErrTooManyNames
			}
			for i, item := range req.Names {
				// empty names are skipped by the store, only the other rules apply
				if strings.TrimSpace(item.Name) == "" {
					continue
				}
				if err := v.validateNameItem(ctx, item); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
		case FieldGender:
			if err := validateGender(req.Gender); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NameValidator) validatePreferences(ctx context.Context, prefs models.UserPreferences, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBabyGender, FieldNamesCount}
	}

	for _, f := range fields {
		switch f {
		case FieldBabyGender:
			if !models.ValidBabyGender(prefs.BabyGender) {
				return ErrInvalidBabyGender
			}
		case FieldNamesCount:
			// zero means "use the default"
			if prefs.NumberOfNamesToGenerate < 0 || prefs.NumberOfNamesToGenerate > maxNamesCount {
				return ErrInvalidNamesCount
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NameValidator) validateSaveReportRequest(ctx context.Context, req models.SaveReportRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldReportContent}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := validateName(req.Name); err != nil {
				return err
			}
		case FieldReportContent:
			if strings.TrimSpace(req.ReportContent) == "" {
				return ErrEmptyReportContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NameValidator) validateChatRequest(ctx context.Context, req models.ChatRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMessage, FieldEndpoint}
	}

	for _, f := range fields {
		switch f {
		case FieldMessage:
			if strings.TrimSpace(req.Message) == "" {
				return ErrEmptyChatMessage
			}
		case FieldEndpoint:
			if req.Endpoint == "" {
				continue
			}
			if !strings.HasPrefix(req.Endpoint, "/") || strings.HasPrefix(req.Endpoint, "//") || strings.Contains(req.Endpoint, "://") {
				return ErrInvalidFlowEndpoint
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NameValidator) validateGenerateNamesRequest(ctx context.Context, req models.GenerateNamesRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPrompt, FieldGender}
	}

	for _, f := range fields {
		switch f {
		case FieldPrompt:
			if strings.TrimSpace(req.Prompt) == "" {
				return ErrEmptyPrompt
			}
		case FieldGender:
			if err := validateGender(req.Gender); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NameValidator) validateSynthesizeRequest(ctx context.Context, req models.SynthesizeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldVoiceID, FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldVoiceID:
			if strings.TrimSpace(req.VoiceID) == "" {
				return ErrEmptyVoiceID
			}
		case FieldText:
			if strings.TrimSpace(req.Text) == "" {
				return ErrEmptyText
			}
			if utf8.RuneCountInString(req.Text) > maxSpeechChars {
				return ErrTextTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NameValidator) validatePronunciationRequest(ctx context.Context, req models.PronunciationRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldVoiceID, FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := validateName(req.Name); err != nil {
				return err
			}
		case FieldVoiceID:
			if strings.TrimSpace(req.VoiceID) == "" {
				return ErrEmptyVoiceID
			}
		case FieldText:
			if utf8.RuneCountInString(req.Text) > maxSpeechChars {
				return ErrTextTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NameValidator) validateAudioKey(ctx context.Context, key models.AudioKey, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldName, FieldVoiceID}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if key.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldName:
			if err := validateName(key.Name); err != nil {
				return err
			}
		case FieldVoiceID:
			if strings.TrimSpace(key.VoiceID) == "" {
				return ErrEmptyVoiceID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
