// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/ollama/ollama/api"

	"github.com/Srejith/namemybaby/internal/config"
	"github.com/Srejith/namemybaby/internal/logger"
	"github.com/Srejith/namemybaby/models"
)

const serviceOllama = "Ollama"

// maxSessionMessages bounds the history kept per session. Older messages are
// dropped in pairs so the history always starts with a user message.
const maxSessionMessages = 20

// Sessions idle for sessionTTL are evicted, and at most maxSessions are kept.
const (
	sessionTTL  = 30 * time.Minute
	maxSessions = 1024
)

const ollamaSystemPrompt = `You are the assistant of Name My Baby, an application that helps parents find a name for their child.
When asked for names, answer with the phrase "Here you go" followed by a numbered list where every line has the form
"1. Name: <name> Inspiration: <one sentence>".
When asked for ideas, answer with "Here you go on ideas for your baby" followed by a numbered list of ideas.
When asked about the meaning of a name, describe its etymology, meaning, origin and cultural significance.
Politely decline questions that are not about naming a baby.`

type ollamaSession struct {
	messages []api.Message
	lastSeen time.Time
}

// ollamaFlowAdapter runs the flow in-process against an Ollama server. It
// keeps the conversation of every session in memory, the same way the local
// script server does.
type ollamaFlowAdapter struct {
	client *api.Client
	model  string
	now    func() time.Time

	mu       sync.Mutex
	sessions map[string]*ollamaSession

	logger *logger.Logger
}

// NewOllamaFlowAdapter builds the "ollama" flow backend.
func NewOllamaFlowAdapter(cfg config.Flow, log *logger.Logger) (FlowAdapter, error) {
	base, err := normalizeBaseURL(cfg.OllamaURL)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama url: %w", err)
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama url: %w", err)
	}

	return &ollamaFlowAdapter{
		client:   api.NewClient(parsed, &http.Client{Timeout: cfg.Timeout}),
		model:    cfg.OllamaModel,
		now:      time.Now,
		sessions: make(map[string]*ollamaSession),
		logger:   log,
	}, nil
}

// Run implements [FlowAdapter].
func (a *ollamaFlowAdapter) Run(ctx context.Context, req models.FlowRequest) (models.FlowReply, error) {
	log := logger.FromContext(ctx)

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = models.NewSessionID(a.now())
	}

	userMessage := api.Message{Role: "user", Content: req.Message}
	messages := append([]api.Message{{Role: "system", Content: ollamaSystemPrompt}}, a.history(sessionID)...)
	messages = append(messages, userMessage)

	stream := false
	chatReq := &api.ChatRequest{
		Model:    a.model,
		Messages: messages,
		Stream:   &stream,
	}

	var reply strings.Builder
	err := a.client.Chat(ctx, chatReq, func(resp api.ChatResponse) error {
		reply.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*ollamaFlowAdapter.Run").Str("model", a.model).Msg("ollama chat failed")

		var statusErr api.StatusError
		if errors.As(err, &statusErr) {
			return models.FlowReply{}, &UpstreamError{
				Service:    serviceOllama,
				StatusCode: statusErr.StatusCode,
				Body:       statusErr.ErrorMessage,
			}
		}
		return models.FlowReply{}, mapTransportError(ctx, serviceOllama, err)
	}

	text := reply.String()
	a.remember(sessionID, userMessage, api.Message{Role: "assistant", Content: text})

	return models.FlowReply{Kind: models.FlowReplyLocal, Text: text, SessionID: sessionID}, nil
}

func (a *ollamaFlowAdapter) history(sessionID string) []api.Message {
	now := a.now()

	a.mu.Lock()
	defer a.mu.Unlock()

	s, ok := a.sessions[sessionID]
	if !ok || now.Sub(s.lastSeen) >= sessionTTL {
		return nil
	}
	return append([]api.Message(nil), s.messages...)
}

func (a *ollamaFlowAdapter) remember(sessionID string, messages ...api.Message) {
	now := a.now()

	a.mu.Lock()
	defer a.mu.Unlock()

	s, ok := a.sessions[sessionID]
	if !ok {
		a.evict(now)
		s = &ollamaSession{}
		a.sessions[sessionID] = s
	}

	s.messages = append(s.messages, messages...)
	for len(s.messages) > maxSessionMessages {
		s.messages = s.messages[2:]
	}
	s.lastSeen = now
}

// evict drops idle sessions, then the least recently used one while the map
// is full. The caller holds a.mu.
func (a *ollamaFlowAdapter) evict(now time.Time) {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, s := range a.sessions {
		if now.Sub(s.lastSeen) >= sessionTTL {
			delete(a.sessions, id)
			continue
		}
		if oldestID == "" || s.lastSeen.Before(oldest) {
			oldestID, oldest = id, s.lastSeen
		}
	}

	if len(a.sessions) >= maxSessions {
		delete(a.sessions, oldestID)
	}
}
