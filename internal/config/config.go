// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the
// namemybaby server. It is populated by merging values from a .env file,
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, the application version and the log level.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout and rate limit settings for the
	// HTTP and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Flow holds the settings of the conversational flow service used for
	// name, idea and report generation.
	Flow Flow `envPrefix:"FLOW_"`

	// Voice holds the settings of the speech synthesis provider.
	Voice Voice `envPrefix:"VOICE_"`

	// Workers holds configuration of the background audio cache writers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the .env file loaded before environment variables are
	// parsed. A missing file is not an error.
	DotEnvPath string `env:"DOTENV"`

	// ElevenLabsAPIKey is the unprefixed provider key. It fills Voice.APIKey
	// when VOICE_ELEVENLABS_API_KEY is not set.
	ElevenLabsAPIKey string `env:"ELEVENLABS_API_KEY"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration of the storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver by its scheme:
	//   - postgres:// or postgresql:// opens PostgreSQL through pgx;
	//   - sqlite:// or file: opens an embedded SQLite database.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns limits the size of the connection pool.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server ("host:port").
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimitRPS is the per-user token refill rate of the routes that call
	// paid upstream services.
	// Env: SERVER_RATE_LIMIT_RPS
	RateLimitRPS float64 `env:"RATE_LIMIT_RPS"`

	// RateLimitBurst is the per-user burst size of those routes.
	// Env: SERVER_RATE_LIMIT_BURST
	RateLimitBurst int `env:"RATE_LIMIT_BURST"`
}

// Flow configures the conversational flow service.
type Flow struct {
	// Backend selects the implementation: "langflow", "script" or "ollama".
	// Env: FLOW_BACKEND
	Backend string `env:"BACKEND"`

	// URL is the base URL of the hosted flow server.
	// Env: FLOW_URL
	URL string `env:"URL"`

	// Endpoint is the run path appended to URL.
	// Env: FLOW_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// APIKey is sent as a bearer token and as x-api-key.
	// Env: FLOW_API_KEY
	APIKey string `env:"API_KEY"`

	// UseScript switches to the local script server regardless of Backend.
	// Env: FLOW_USE_SCRIPT
	UseScript bool `env:"USE_SCRIPT"`

	// ScriptURL is the base URL of the local script server.
	// Env: FLOW_SCRIPT_URL
	ScriptURL string `env:"SCRIPT_URL"`

	// OllamaURL is the address of the Ollama server for the "ollama" backend.
	// Env: FLOW_OLLAMA_URL
	OllamaURL string `env:"OLLAMA_URL"`

	// OllamaModel is the model used by the "ollama" backend.
	// Env: FLOW_OLLAMA_MODEL
	OllamaModel string `env:"OLLAMA_MODEL"`

	// Timeout bounds a single upstream call.
	// Env: FLOW_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Voice configures the speech synthesis provider.
type Voice struct {
	// APIKey is sent in the xi-api-key header.
	// Env: VOICE_ELEVENLABS_API_KEY, or ELEVENLABS_API_KEY
	APIKey string `env:"ELEVENLABS_API_KEY"`

	// BaseURL of the provider API.
	// Env: VOICE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// ModelID is the synthesis model.
	// Env: VOICE_MODEL_ID
	ModelID string `env:"MODEL_ID"`

	// Stability and SimilarityBoost are sent as voice_settings. Nil means
	// unset, so an explicit 0 is kept.
	// Env: VOICE_STABILITY, VOICE_SIMILARITY_BOOST
	Stability       *float64 `env:"STABILITY"`
	SimilarityBoost *float64 `env:"SIMILARITY_BOOST"`

	// Timeout bounds a single upstream call.
	// Env: VOICE_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Workers configures the background writers that persist audio after it was
// returned to the client.
type Workers struct {
	// CacheWriters is the number of writer goroutines.
	// Env: WORKERS_CACHE_WRITERS
	CacheWriters int `env:"CACHE_WRITERS"`

	// CacheQueueSize is the capacity of the pending write queue.
	// Env: WORKERS_CACHE_QUEUE_SIZE
	CacheQueueSize int `env:"CACHE_QUEUE_SIZE"`

	// CacheWriteTimeout bounds a single write.
	// Env: WORKERS_CACHE_WRITE_TIMEOUT
	CacheWriteTimeout time.Duration `env:"CACHE_WRITE_TIMEOUT"`
}

// Settings returns the voice_settings values, falling back to the defaults
// for unset fields.
func (v Voice) Settings() (stability, similarityBoost float64) {
	stability, similarityBoost = DefaultStability, DefaultSimilarityBoost
	if v.Stability != nil {
		stability = *v.Stability
	}
	if v.SimilarityBoost != nil {
		similarityBoost = *v.SimilarityBoost
	}

	return stability, similarityBoost
}

// Flow backends.
const (
	FlowBackendLangflow = "langflow"
	FlowBackendScript   = "script"
	FlowBackendOllama   = "ollama"
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. .env file and environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
