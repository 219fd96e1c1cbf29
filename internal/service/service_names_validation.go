// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/Srejith/namemybaby/internal/validators"
	"github.com/Srejith/namemybaby/models"
)

// NameValidationService validates requests before handing them to the
// wrapped NameService.
type NameValidationService struct {
	inner     NameService
	validator validators.Validator
}

func NewNameValidationService() NameServiceWrapper {
	return &NameValidationService{
		validator: validators.NewNameValidator(),
	}
}

func (v *NameValidationService) Wrap(inner NameService) NameService {
	v.inner = inner
	return v
}

func (v *NameValidationService) List(ctx context.Context, bucket models.Bucket, userID int64) ([]models.NameItem, error) {
	if err := v.validator.Validate(ctx, bucket); err != nil {
		return nil, err
	}

	return v.inner.List(ctx, bucket, userID)
}

func (v *NameValidationService) Add(ctx context.Context, bucket models.Bucket, userID int64, item models.NameItem) (models.NameItem, error) {
	if err := v.validator.Validate(ctx, bucket); err != nil {
		return models.NameItem{}, err
	}
	if err := v.validator.Validate(ctx, item); err != nil {
		return models.NameItem{}, fmt.Errorf("error during name validation before saving: %w", err)
	}

	return v.inner.Add(ctx, bucket, userID, item)
}

func (v *NameValidationService) AddBatch(ctx context.Context, bucket models.Bucket, userID int64, req models.BatchAddRequest) (models.BatchAddResult, error) {
	if err := v.validator.Validate(ctx, bucket); err != nil {
		return models.BatchAddResult{}, err
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.BatchAddResult{}, fmt.Errorf("error during names validation before saving: %w", err)
	}

	return v.inner.AddBatch(ctx, bucket, userID, req)
}

func (v *NameValidationService) Delete(ctx context.Context, bucket models.Bucket, userID int64, id string) error {
	if err := v.validator.Validate(ctx, bucket); err != nil {
		return err
	}

	return v.inner.Delete(ctx, bucket, userID, id)
}

func (v *NameValidationService) Move(ctx context.Context, req models.MoveRequest) (models.NameItem, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.NameItem{}, fmt.Errorf("error during move validation: %w", err)
	}

	return v.inner.Move(ctx, req)
}
