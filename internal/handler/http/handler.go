// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/Srejith/namemybaby/internal/config"
	"github.com/Srejith/namemybaby/internal/logger"
	"github.com/Srejith/namemybaby/internal/service"
)

type Handler struct {
	services *service.Services
	limiter  *RateLimiter

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. Rate limits of the routes that call
// paid upstream services come from cfg.
func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		limiter:  NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, keyByUserOrIP),
		logger:   logger,
	}
}
