// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/Srejith/namemybaby/internal/logger"
	"github.com/Srejith/namemybaby/internal/store"
	"github.com/Srejith/namemybaby/models"
)

type nameService struct {
	names store.NameRepository

	logger *logger.Logger
}

// NewNameService returns a NameService over the bucket repository. Input is
// expected to be validated by the caller, see NewNameValidationService.
func NewNameService(names store.NameRepository, logger *logger.Logger) NameService {
	return &nameService{names: names, logger: logger}
}

func (s *nameService) List(ctx context.Context, bucket models.Bucket, userID int64) ([]models.NameItem, error) {
	items, err := s.names.List(ctx, bucket, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*nameService.List").Str("bucket", string(bucket)).Msg("listing names failed")
		return nil, err
	}
	return items, nil
}

func (s *nameService) Add(ctx context.Context, bucket models.Bucket, userID int64, item models.NameItem) (models.NameItem, error) {
	added, err := s.names.Add(ctx, bucket, userID, item)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*nameService.Add").Str("bucket", string(bucket)).Msg("adding name failed")
		return models.NameItem{}, err
	}
	return added, nil
}

func (s *nameService) AddBatch(ctx context.Context, bucket models.Bucket, userID int64, req models.BatchAddRequest) (models.BatchAddResult, error) {
	result, err := s.names.AddBatch(ctx, bucket, userID, req.Names, req.Gender)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*nameService.AddBatch").Str("bucket", string(bucket)).Msg("adding names failed")
		return models.BatchAddResult{}, err
	}
	return result, nil
}

func (s *nameService) Delete(ctx context.Context, bucket models.Bucket, userID int64, id string) error {
	if err := s.names.Delete(ctx, bucket, userID, id); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*nameService.Delete").Str("bucket", string(bucket)).Str("id", id).Msg("deleting name failed")
		return err
	}
	return nil
}

func (s *nameService) Move(ctx context.Context, req models.MoveRequest) (models.NameItem, error) {
	log := logger.FromContext(ctx)

	moved, err := s.names.Move(ctx, req)
	if err != nil {
		log.Warn().Err(err).Str("func", "*nameService.Move").
			Str("from", string(req.From)).
			Str("to", string(req.To)).
			Str("id", req.ID).
			Msg("moving name failed")
		return models.NameItem{}, err
	}

	log.Debug().Str("func", "*nameService.Move").
		Str("from", string(req.From)).
		Str("to", string(req.To)).
		Str("new_id", moved.ID).
		Msg("name moved")
	return moved, nil
}
