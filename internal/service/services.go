// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/Srejith/namemybaby/internal/adapter"
	"github.com/Srejith/namemybaby/internal/config"
	"github.com/Srejith/namemybaby/internal/logger"
	"github.com/Srejith/namemybaby/internal/store"
	"github.com/Srejith/namemybaby/internal/workers"
)

// Services aggregates every service used by the transport layer.
type Services struct {
	AppInfoService     AppInfoService
	AuthService        AuthService
	NameService        NameService
	PreferencesService PreferencesService
	GenerationService  GenerationService
	ReportService      ReportService
	VoiceService       VoiceService
}

// Adapters holds the upstream clients the services call.
type Adapters struct {
	Flow  adapter.FlowAdapter
	Voice adapter.VoiceAdapter
}

// NewServices wires the services over storages and the upstream adapters.
// Audio cache writes are handed to scheduler.
func NewServices(storages *store.Storages, adapters Adapters, scheduler workers.Scheduler, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, storages, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	nameService := NewNameValidationService().Wrap(NewNameService(storages.NameRepository, logger))

	return &Services{
		AppInfoService:     appInfoService,
		AuthService:        NewAuthService(storages.UserRepository, cfg.App, logger),
		NameService:        nameService,
		PreferencesService: NewPreferencesService(storages.PreferencesRepository, logger),
		GenerationService:  NewGenerationService(adapters.Flow, storages.NameRepository, storages.PreferencesRepository, logger),
		ReportService:      NewReportService(adapters.Flow, storages.ReportRepository, logger),
		VoiceService:       NewVoiceService(adapters.Voice, storages.VoiceAudioRepository, storages.RecordingRepository, scheduler, logger),
	}, nil
}
