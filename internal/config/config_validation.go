// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
)

// Default values applied by [StructuredConfig.applyDefaults].
const (
	DefaultTokenIssuer       = "namemybaby"
	DefaultTokenDuration     = 24 * time.Hour
	DefaultLogLevel          = "debug"
	DefaultMaxOpenConns      = 10
	DefaultRateLimitRPS      = 1
	DefaultRateLimitBurst    = 5
	DefaultFlowEndpoint      = "/api/v1/run"
	DefaultScriptURL         = "http://localhost:8000"
	DefaultOllamaURL         = "http://localhost:11434"
	DefaultOllamaModel       = "llama3.2"
	DefaultUpstreamTimeout   = 60 * time.Second
	DefaultVoiceBaseURL      = "https://api.elevenlabs.io"
	DefaultVoiceModelID      = "eleven_multilingual_v2"
	DefaultStability         = 0.5
	DefaultSimilarityBoost   = 0.75
	DefaultCacheWriters      = 2
	DefaultCacheQueueSize    = 64
	DefaultCacheWriteTimeout = 15 * time.Second
)

func (cfg *StructuredConfig) applyDefaults() {
	setDefault(&cfg.App.TokenIssuer, DefaultTokenIssuer)
	setDefault(&cfg.App.TokenDuration, DefaultTokenDuration)
	setDefault(&cfg.App.LogLevel, DefaultLogLevel)

	setDefault(&cfg.Storage.DB.MaxOpenConns, DefaultMaxOpenConns)

	setDefault(&cfg.Server.RateLimitRPS, DefaultRateLimitRPS)
	setDefault(&cfg.Server.RateLimitBurst, DefaultRateLimitBurst)

	setDefault(&cfg.Flow.Backend, FlowBackendLangflow)
	setDefault(&cfg.Flow.Endpoint, DefaultFlowEndpoint)
	setDefault(&cfg.Flow.ScriptURL, DefaultScriptURL)
	setDefault(&cfg.Flow.OllamaURL, DefaultOllamaURL)
	setDefault(&cfg.Flow.OllamaModel, DefaultOllamaModel)
	setDefault(&cfg.Flow.Timeout, DefaultUpstreamTimeout)
	if cfg.Flow.UseScript {
		cfg.Flow.Backend = FlowBackendScript
	}

	setDefault(&cfg.Voice.BaseURL, DefaultVoiceBaseURL)
	setDefault(&cfg.Voice.ModelID, DefaultVoiceModelID)
	stability, similarityBoost := cfg.Voice.Settings()
	cfg.Voice.Stability, cfg.Voice.SimilarityBoost = &stability, &similarityBoost
	setDefault(&cfg.Voice.Timeout, DefaultUpstreamTimeout)

	setDefault(&cfg.Workers.CacheWriters, DefaultCacheWriters)
	setDefault(&cfg.Workers.CacheQueueSize, DefaultCacheQueueSize)
	setDefault(&cfg.Workers.CacheWriteTimeout, DefaultCacheWriteTimeout)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}

// validate checks that the final merged [StructuredConfig] can start the
// server. Missing upstream URLs and keys are not fatal: the affected
// endpoints answer with a configuration error instead.
func (cfg *StructuredConfig) validate() error {
	if !SupportedDSN(cfg.Storage.DB.DSN) {
		return fmt.Errorf("%w: database DSN must start with postgres://, sqlite:// or file:", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: no server address given", ErrInvalidServerConfigs)
	}

	switch cfg.Flow.Backend {
	case FlowBackendLangflow, FlowBackendScript, FlowBackendOllama:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidFlowConfigs, cfg.Flow.Backend)
	}

	return nil
}

// SupportedDSN reports whether dsn selects one of the supported drivers.
func SupportedDSN(dsn string) bool {
	return IsPostgresDSN(dsn) || IsSQLiteDSN(dsn)
}

// IsPostgresDSN reports whether dsn is a PostgreSQL URL.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// IsSQLiteDSN reports whether dsn points to an SQLite database.
func IsSQLiteDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "sqlite://") || strings.HasPrefix(dsn, "file:")
}
