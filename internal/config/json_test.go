// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "config.json")
	jsonBody := `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"token_duration": "1h",
			"log_level": "info"
		},
		"server": {
			"http_address": "localhost:8080",
			"grpc_address": "localhost:9090",
			"request_timeout": "30s",
			"rate_limit_rps": 3,
			"rate_limit_burst": 6
		},
		"storage": {
			"db": { "dsn": "sqlite://names.db", "max_open_conns": 4 }
		},
		"flow": {
			"backend": "ollama",
			"url": "http://langflow:7860",
			"ollama_model": "llama3.2",
			"timeout": "1m"
		},
		"voice": {
			"elevenlabs_api_key": "xi-key",
			"stability": 0.3
		},
		"workers": {
			"cache_writers": 4,
			"cache_write_timeout": "10s"
		}
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "info", cfg.App.LogLevel)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.InDelta(t, 3.0, cfg.Server.RateLimitRPS, 1e-9)
	assert.Equal(t, 6, cfg.Server.RateLimitBurst)

	assert.Equal(t, "sqlite://names.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 4, cfg.Storage.DB.MaxOpenConns)

	assert.Equal(t, FlowBackendOllama, cfg.Flow.Backend)
	assert.Equal(t, "http://langflow:7860", cfg.Flow.URL)
	assert.Equal(t, "llama3.2", cfg.Flow.OllamaModel)
	assert.Equal(t, time.Minute, cfg.Flow.Timeout)

	assert.Equal(t, "xi-key", cfg.Voice.APIKey)
	require.NotNil(t, cfg.Voice.Stability)
	assert.InDelta(t, 0.3, *cfg.Voice.Stability, 1e-9)
	assert.Nil(t, cfg.Voice.SimilarityBoost)

	assert.Equal(t, 4, cfg.Workers.CacheWriters)
	assert.Equal(t, 10*time.Second, cfg.Workers.CacheWriteTimeout)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app": `), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app": {"token_duration": "soon"}}`), 0o600))

	_, err := parseJSON(p)

	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{name: "string", input: `"90s"`, want: 90 * time.Second},
		{name: "nanoseconds", input: `1000`, want: time.Microsecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(2 * time.Minute))

	require.NoError(t, err)
	assert.JSONEq(t, `"2m0s"`, string(b))
}
