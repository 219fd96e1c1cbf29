// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
		LogLevel      string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		RateLimitRPS   float64  `json:"rate_limit_rps"`
		RateLimitBurst int      `json:"rate_limit_burst"`
	} `json:"server,omitempty"`

	Flow struct {
		Backend     string   `json:"backend"`
		URL         string   `json:"url"`
		Endpoint    string   `json:"endpoint"`
		APIKey      string   `json:"api_key"`
		UseScript   bool     `json:"use_script"`
		ScriptURL   string   `json:"script_url"`
		OllamaURL   string   `json:"ollama_url"`
		OllamaModel string   `json:"ollama_model"`
		Timeout     Duration `json:"timeout"`
	} `json:"flow,omitempty"`

	Voice struct {
		APIKey          string   `json:"elevenlabs_api_key"`
		BaseURL         string   `json:"base_url"`
		ModelID         string   `json:"model_id"`
		Stability       *float64 `json:"stability"`
		SimilarityBoost *float64 `json:"similarity_boost"`
		Timeout         Duration `json:"timeout"`
	} `json:"voice,omitempty"`

	Workers struct {
		CacheWriters      int      `json:"cache_writers"`
		CacheQueueSize    int      `json:"cache_queue_size"`
		CacheWriteTimeout Duration `json:"cache_write_timeout"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Version:       jsonCfg.App.Version,
			LogLevel:      jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			RateLimitRPS:   jsonCfg.Server.RateLimitRPS,
			RateLimitBurst: jsonCfg.Server.RateLimitBurst,
		},
		Flow: Flow{
			Backend:     jsonCfg.Flow.Backend,
			URL:         jsonCfg.Flow.URL,
			Endpoint:    jsonCfg.Flow.Endpoint,
			APIKey:      jsonCfg.Flow.APIKey,
			UseScript:   jsonCfg.Flow.UseScript,
			ScriptURL:   jsonCfg.Flow.ScriptURL,
			OllamaURL:   jsonCfg.Flow.OllamaURL,
			OllamaModel: jsonCfg.Flow.OllamaModel,
			Timeout:     time.Duration(jsonCfg.Flow.Timeout),
		},
		Voice: Voice{
			APIKey:          jsonCfg.Voice.APIKey,
			BaseURL:         jsonCfg.Voice.BaseURL,
			ModelID:         jsonCfg.Voice.ModelID,
			Stability:       jsonCfg.Voice.Stability,
			SimilarityBoost: jsonCfg.Voice.SimilarityBoost,
			Timeout:         time.Duration(jsonCfg.Voice.Timeout),
		},
		Workers: Workers{
			CacheWriters:      jsonCfg.Workers.CacheWriters,
			CacheQueueSize:    jsonCfg.Workers.CacheQueueSize,
			CacheWriteTimeout: time.Duration(jsonCfg.Workers.CacheWriteTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
