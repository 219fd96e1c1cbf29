// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Srejith/namemybaby/internal/config"
	"github.com/Srejith/namemybaby/internal/logger"
	"github.com/Srejith/namemybaby/internal/utils"
	"github.com/Srejith/namemybaby/models"
)

// scriptEndpoint is the run path of the local script server. It is not
// configurable.
const scriptEndpoint = "/api/v1/run"

type httpFlowAdapter struct {
	client *utils.HTTPClient

	endpoint  string
	apiKey    string
	useScript bool
	now       func() time.Time

	logger *logger.Logger
}

// flowRunRequest is the body accepted by both the hosted flow server and the
// local script server.
type flowRunRequest struct {
	Message    string `json:"message"`
	SessionID  string `json:"session_id"`
	InputType  string `json:"input_type"`
	OutputType string `json:"output_type"`
	InputValue string `json:"input_value"`
	UserID     *int64 `json:"user_id"`
}

// NewFlowAdapter builds the [FlowAdapter] selected by cfg.Backend.
//
// For the hosted backend an empty URL is accepted: every call then fails with
// [ErrFlowNotConfigured], so the rest of the API keeps working without a flow
// server.
func NewFlowAdapter(cfg config.Flow, log *logger.Logger) (FlowAdapter, error) {
	backend := cfg.Backend
	if cfg.UseScript {
		backend = config.FlowBackendScript
	}

	switch backend {
	case config.FlowBackendOllama:
		return NewOllamaFlowAdapter(cfg, log)
	case config.FlowBackendScript:
		baseURL, err := normalizeBaseURL(cfg.ScriptURL)
		if err != nil {
			return nil, fmt.Errorf("invalid flow script url: %w", err)
		}
		return &httpFlowAdapter{
			client:    utils.NewHTTPClient(baseURL, cfg.Timeout),
			endpoint:  scriptEndpoint,
			useScript: true,
			now:       time.Now,
			logger:    log,
		}, nil
	case config.FlowBackendLangflow, "":
		if strings.TrimSpace(cfg.URL) == "" {
			return &unconfiguredFlowAdapter{}, nil
		}
		baseURL, err := normalizeBaseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid flow url: %w", err)
		}
		return &httpFlowAdapter{
			client:   utils.NewHTTPClient(baseURL, cfg.Timeout),
			endpoint: cfg.Endpoint,
			apiKey:   cfg.APIKey,
			now:      time.Now,
			logger:   log,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFlowBackend, backend)
	}
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Run implements [FlowAdapter].
func (a *httpFlowAdapter) Run(ctx context.Context, req models.FlowRequest) (models.FlowReply, error) {
	log := logger.FromContext(ctx)

	endpoint, err := a.resolveEndpoint(req.Endpoint)
	if err != nil {
		return models.FlowReply{}, err
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = models.NewSessionID(a.now())
	}

	body := flowRunRequest{
		Message:    req.Message,
		SessionID:  sessionID,
		InputType:  "chat",
		OutputType: "chat",
		InputValue: req.Message,
	}
	if req.UserID != 0 {
		userID := req.UserID
		body.UserID = &userID
	}

	r := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if a.apiKey != "" && !a.useScript {
		r.SetHeader("Authorization", "Bearer "+a.apiKey)
		r.SetHeader("x-api-key", a.apiKey)
	}

	resp, err := r.Post(endpoint)
	if err != nil {
		log.Err(err).Str("func", "*httpFlowAdapter.Run").Str("endpoint", endpoint).Msg("flow request failed")
		return models.FlowReply{}, mapTransportError(ctx, serviceLangflow, err)
	}
	if err = mapHTTPError(serviceLangflow, resp); err != nil {
		log.Error().Str("func", "*httpFlowAdapter.Run").
			Int("status", resp.StatusCode()).
			Str("body", utils.Preview(string(resp.Body()), 200)).
			Msg("flow server returned an error")
		return models.FlowReply{}, err
	}

	reply := parseFlowReply(resp.Body())
	if reply.SessionID == "" {
		reply.SessionID = sessionID
	}
	if !reply.Parsed() {
		log.Warn().Str("func", "*httpFlowAdapter.Run").
			Str("body", utils.Preview(reply.Text, 200)).
			Msg("no text field found in flow reply")
	}

	return reply, nil
}

func (a *httpFlowAdapter) resolveEndpoint(override string) (string, error) {
	if a.useScript || override == "" {
		return a.endpoint, nil
	}
	if !strings.HasPrefix(override, "/") || strings.HasPrefix(override, "//") || strings.Contains(override, "://") {
		return "", ErrInvalidEndpoint
	}

	return override, nil
}

type unconfiguredFlowAdapter struct{}

func (unconfiguredFlowAdapter) Run(context.Context, models.FlowRequest) (models.FlowReply, error) {
	return models.FlowReply{}, ErrFlowNotConfigured
}
