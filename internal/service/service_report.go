// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/Srejith/namemybaby/internal/adapter"
	"github.com/Srejith/namemybaby/internal/logger"
	"github.com/Srejith/namemybaby/internal/store"
	"github.com/Srejith/namemybaby/internal/validators"
	"github.com/Srejith/namemybaby/models"
)

const promptEtymology = "What is the etymology and meaning of the name %s?"

type reportService struct {
	flow      adapter.FlowAdapter
	reports   store.ReportRepository
	validator validators.Validator
	policy    *bluemonday.Policy
	now       func() time.Time

	logger *logger.Logger
}

func NewReportService(flow adapter.FlowAdapter, reports store.ReportRepository, logger *logger.Logger) ReportService {
	return &reportService{
		flow:      flow,
		reports:   reports,
		validator: validators.NewNameValidator(),
		policy:    bluemonday.UGCPolicy(),
		now:       time.Now,
		logger:    logger,
	}
}

// Generate asks the flow for the etymology of name and stores the sanitized
// reply, replacing an older report of the same name.
func (s *reportService) Generate(ctx context.Context, userID int64, name string) (models.NameReport, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if err := s.validator.Validate(ctx, models.NameItem{Name: name}, validators.FieldName); err != nil {
		return models.NameReport{}, err
	}

	prompt := fmt.Sprintf(promptEtymology, name) + fmt.Sprintf(userIDPromptSuffix, userID)
	reply, err := s.flow.Run(ctx, models.FlowRequest{
		Message:   prompt,
		SessionID: models.NewSessionID(s.now()),
		UserID:    userID,
	})
	if err != nil {
		log.Err(err).Str("func", "*reportService.Generate").Msg("flow run failed")
		return models.NameReport{}, err
	}

	content := strings.TrimSpace(s.policy.Sanitize(reply.Text))
	if !reply.Parsed() || content == "" {
		log.Warn().Str("func", "*reportService.Generate").
			Str("reply_kind", reply.Kind.String()).
			Msg("flow reply carries no report text")
		return models.NameReport{}, ErrEmptyFlowReply
	}

	return s.upsert(ctx, userID, name, content)
}

// Save stores a report written by the client. The content is sanitized the
// same way generated reports are.
func (s *reportService) Save(ctx context.Context, userID int64, req models.SaveReportRequest) (models.NameReport, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.ReportContent = s.policy.Sanitize(req.ReportContent)
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.NameReport{}, err
	}

	return s.upsert(ctx, userID, req.Name, req.ReportContent)
}

func (s *reportService) List(ctx context.Context, userID int64) ([]models.NameReport, error) {
	reports, err := s.reports.List(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reportService.List").Msg("listing reports failed")
		return nil, err
	}
	return reports, nil
}

func (s *reportService) GetByName(ctx context.Context, userID int64, name string) (models.NameReport, error) {
	return s.reports.GetByName(ctx, userID, strings.TrimSpace(name))
}

func (s *reportService) GetByID(ctx context.Context, userID int64, id string) (models.NameReport, error) {
	return s.reports.GetByID(ctx, userID, id)
}

func (s *reportService) Delete(ctx context.Context, userID int64, id string) error {
	if err := s.reports.Delete(ctx, userID, id); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*reportService.Delete").Str("id", id).Msg("deleting report failed")
		return err
	}
	return nil
}

func (s *reportService) upsert(ctx context.Context, userID int64, name, content string) (models.NameReport, error) {
	report, err := s.reports.Upsert(ctx, userID, name, content)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reportService.upsert").Str("name", name).Msg("storing report failed")
		return models.NameReport{}, err
	}
	return report, nil
}
