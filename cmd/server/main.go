// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/Srejith/namemybaby/internal/adapter"
	"github.com/Srejith/namemybaby/internal/config"
	"github.com/Srejith/namemybaby/internal/handler"
	"github.com/Srejith/namemybaby/internal/logger"
	"github.com/Srejith/namemybaby/internal/server"
	"github.com/Srejith/namemybaby/internal/service"
	"github.com/Srejith/namemybaby/internal/store"
	"github.com/Srejith/namemybaby/internal/workers"
	"github.com/Srejith/namemybaby/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("namemybaby-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.LogLevel != "" {
		if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
			log.Warn().Err(err).Msg("invalid log level, keeping debug")
		}
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	flow, err := adapter.NewFlowAdapter(cfg.Flow, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating flow adapter")
	}
	voice := adapter.NewElevenLabsAdapter(cfg.Voice, log)

	cacheWriter := workers.NewCacheWriter(cfg.Workers, log)
	background := workers.NewWorkers(cacheWriter)
	background.Run()

	services, err := service.NewServices(storages, service.Adapters{Flow: flow, Voice: voice}, cacheWriter, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log,
		background.Stop,
		func() {
			if err := storages.Close(); err != nil {
				log.Error().Err(err).Msg("error closing storages")
			}
		},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
