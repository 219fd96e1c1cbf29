// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Srejith/namemybaby/internal/adapter"
	"github.com/Srejith/namemybaby/internal/extractor"
	"github.com/Srejith/namemybaby/internal/logger"
	"github.com/Srejith/namemybaby/internal/store"
	"github.com/Srejith/namemybaby/internal/validators"
	"github.com/Srejith/namemybaby/models"
)

// Fixed prompts sent to the flow service.
const (
	PromptBoyNames  = "Provide me with name suggestions for my baby boy"
	PromptGirlNames = "Provide me with name suggestions for my baby girl"
	PromptIdeas     = "Provide me with creative ideas to name my child"
)

const (
	msgAllDuplicates   = "All generated names already exist in the generated names list. No new names were added."
	msgSomeDuplicates  = "%d duplicate name(s) were skipped. Only unique names were added to the generated names list."
	userIDPromptSuffix = ". User ID: %d"
)

type generationService struct {
	flow        adapter.FlowAdapter
	names       store.NameRepository
	preferences store.PreferencesRepository
	validator   validators.Validator
	now         func() time.Time

	logger *logger.Logger
}

func NewGenerationService(
	flow adapter.FlowAdapter,
	names store.NameRepository,
	preferences store.PreferencesRepository,
	logger *logger.Logger,
) GenerationService {
	return &generationService{
		flow:        flow,
		names:       names,
		preferences: preferences,
		validator:   validators.NewNameValidator(),
		now:         time.Now,
		logger:      logger,
	}
}

// Chat forwards the message unchanged apart from the user suffix and returns
// whatever text the flow produced. An unparseable reply is returned raw.
func (s *generationService) Chat(ctx context.Context, userID int64, req models.ChatRequest) (models.ChatResponse, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.ChatResponse{}, err
	}

	reply, err := s.run(ctx, userID, req.Message, req.SessionID, req.Endpoint)
	if err != nil {
		return models.ChatResponse{}, err
	}

	return models.ChatResponse{Message: reply.Text, SessionID: reply.SessionID}, nil
}

// RequestNames asks for names, extracts them and stores the new ones in the
// generated bucket.
func (s *generationService) RequestNames(ctx context.Context, userID int64, req models.GenerateNamesRequest) (models.GenerateNamesResponse, error) {
	req.Prompt = strings.TrimSpace(req.Prompt)
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.GenerateNamesResponse{}, err
	}

	gender := req.Gender
	if gender == "" {
		gender = extractor.DetectGender(req.Prompt)
	}

	return s.requestNames(ctx, userID, req.Prompt, gender, req.SessionID)
}

// RequestNamesFromPreferences builds the prompts from the stored baby gender.
// When the gender is unknown both prompts run in one session and the results
// are merged.
func (s *generationService) RequestNamesFromPreferences(ctx context.Context, userID int64) (models.GenerateNamesResponse, error) {
	log := logger.FromContext(ctx)

	prefs, err := s.preferences.Load(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*generationService.RequestNamesFromPreferences").Msg("loading preferences failed")
		return models.GenerateNamesResponse{}, err
	}

	type genderedPrompt struct {
		prompt string
		gender models.Gender
	}

	var prompts []genderedPrompt
	switch models.Gender(prefs.BabyGender) {
	case models.GenderBoy:
		prompts = []genderedPrompt{{PromptBoyNames, models.GenderBoy}}
	case models.GenderGirl:
		prompts = []genderedPrompt{{PromptGirlNames, models.GenderGirl}}
	default:
		prompts = []genderedPrompt{
			{PromptBoyNames, models.GenderBoy},
			{PromptGirlNames, models.GenderGirl},
		}
	}

	result := models.GenerateNamesResponse{Names: []models.NameItem{}}
	var lastErr error
	for _, p := range prompts {
		resp, err := s.requestNames(ctx, userID, p.prompt, p.gender, result.SessionID)
		if err != nil {
			// an empty extraction for one gender does not fail the other
			if len(prompts) > 1 && errors.Is(err, ErrNoNamesFound) {
				lastErr = err
				continue
			}
			return models.GenerateNamesResponse{}, err
		}
		result.Names = append(result.Names, resp.Names...)
		result.Skipped += resp.Skipped
		result.SessionID = resp.SessionID
	}

	if len(result.Names) == 0 && result.Skipped == 0 && lastErr != nil {
		return models.GenerateNamesResponse{}, lastErr
	}

	result.Message = duplicatesMessage(len(result.Names), result.Skipped)
	return result, nil
}

// RequestIdeas asks for naming ideas. Ideas are not persisted.
func (s *generationService) RequestIdeas(ctx context.Context, userID int64, req models.GenerateIdeasRequest) (models.GenerateIdeasResponse, error) {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		prompt = PromptIdeas
	}

	reply, err := s.run(ctx, userID, prompt, req.SessionID, "")
	if err != nil {
		return models.GenerateIdeasResponse{}, err
	}

	ideas := extractor.Ideas(reply.Text)
	if len(ideas) == 0 {
		logger.FromContext(ctx).Warn().Str("func", "*generationService.RequestIdeas").
			Str("reply_kind", reply.Kind.String()).
			Msg("no ideas extracted from flow reply")
		return models.GenerateIdeasResponse{}, ErrNoIdeasFound
	}

	return models.GenerateIdeasResponse{Ideas: ideas, SessionID: reply.SessionID}, nil
}

func (s *generationService) requestNames(ctx context.Context, userID int64, prompt string, gender models.Gender, sessionID string) (models.GenerateNamesResponse, error) {
	log := logger.FromContext(ctx)

	reply, err := s.run(ctx, userID, prompt, sessionID, "")
	if err != nil {
		return models.GenerateNamesResponse{}, err
	}

	items := extractor.Names(reply.Text)
	if len(items) == 0 {
		log.Warn().Str("func", "*generationService.requestNames").
			Str("reply_kind", reply.Kind.String()).
			Msg("no names extracted from flow reply")
		return models.GenerateNamesResponse{}, ErrNoNamesFound
	}

	result, err := s.names.AddBatch(ctx, models.BucketGenerated, userID, items, gender)
	if err != nil {
		log.Err(err).Str("func", "*generationService.requestNames").Msg("storing generated names failed")
		return models.GenerateNamesResponse{}, err
	}

	log.Debug().Str("func", "*generationService.requestNames").
		Int("extracted", len(items)).
		Int("inserted", len(result.Names)).
		Int("skipped", result.Skipped).
		Msg("generated names stored")

	return models.GenerateNamesResponse{
		Names:     result.Names,
		Skipped:   result.Skipped,
		SessionID: reply.SessionID,
		Message:   duplicatesMessage(len(result.Names), result.Skipped),
	}, nil
}

// run sends prompt with the user suffix. A new session id is created when
// sessionID is empty.
func (s *generationService) run(ctx context.Context, userID int64, prompt, sessionID, endpoint string) (models.FlowReply, error) {
	if sessionID == "" {
		sessionID = models.NewSessionID(s.now())
	}

	reply, err := s.flow.Run(ctx, models.FlowRequest{
		Message:   prompt + fmt.Sprintf(userIDPromptSuffix, userID),
		SessionID: sessionID,
		UserID:    userID,
		Endpoint:  endpoint,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*generationService.run").Msg("flow run failed")
		return models.FlowReply{}, err
	}

	if reply.SessionID == "" {
		reply.SessionID = sessionID
	}
	return reply, nil
}

func duplicatesMessage(inserted, skipped int) string {
	switch {
	case skipped == 0:
		return ""
	case inserted == 0:
		return msgAllDuplicates
	default:
		return fmt.Sprintf(msgSomeDuplicates, skipped)
	}
}
