// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"time"
)

// NewSessionID returns the session id used when a caller did not supply one.
func NewSessionID(now time.Time) string {
	return "session-" + strconv.FormatInt(now.UnixMilli(), 10)
}

// FlowRequest is a single prompt sent to the flow service.
type FlowRequest struct {
	// Message is the prompt as it is sent upstream, user suffix included.
	Message string

	// SessionID groups prompts into one conversation. Empty means a new
	// session is created.
	SessionID string

	UserID int64

	// Endpoint overrides the configured run endpoint path.
	Endpoint string
}

// FlowReplyKind tells where in the upstream reply the text was found.
type FlowReplyKind int

const (
	FlowReplyUnparseable FlowReplyKind = iota
	// outputs[0].outputs[0].outputs.message(.message)
	FlowReplyOutputsMessage
	// outputs[0].outputs[0].message(.message)
	FlowReplyInnerMessage
	// outputs[0].outputs[0].text
	FlowReplyInnerText
	// output.message, output.text or output as a string
	FlowReplyOutput
	// message, text or data.message|text|output at the top level
	FlowReplyTopLevel
	// reply produced by an in-process model
	FlowReplyLocal
)

var flowReplyKindNames = map[FlowReplyKind]string{
	FlowReplyUnparseable:    "unparseable",
	FlowReplyOutputsMessage: "outputs_message",
	FlowReplyInnerMessage:   "inner_message",
	FlowReplyInnerText:      "inner_text",
	FlowReplyOutput:         "output",
	FlowReplyTopLevel:       "top_level",
	FlowReplyLocal:          "local",
}

func (k FlowReplyKind) String() string {
	if name, ok := flowReplyKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// FlowReply is the parsed reply of the flow service. For the unparseable
// variant Text holds the raw reply body.
type FlowReply struct {
	Kind      FlowReplyKind
	Text      string
	SessionID string
}

// Parsed reports whether a text field was located in the reply.
func (r FlowReply) Parsed() bool {
	return r.Kind != FlowReplyUnparseable
}

// ChatRequest is the body of the raw flow proxy endpoint.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId,omitempty"`
	Endpoint  string `json:"endpoint,omitempty"`
}

// ChatResponse is the reply of the raw flow proxy endpoint.
type ChatResponse struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

// GenerateNamesRequest asks the flow service for name suggestions.
type GenerateNamesRequest struct {
	Prompt    string `json:"prompt"`
	Gender    Gender `json:"gender,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

// GenerateNamesResponse holds the names that were added to the generated
// bucket. Skipped counts extracted names that already existed.
type GenerateNamesResponse struct {
	Names     []NameItem `json:"names"`
	Skipped   int        `json:"skipped"`
	SessionID string     `json:"sessionId"`
	Message   string     `json:"message,omitempty"`
}

// GenerateIdeasRequest asks the flow service for naming ideas. An empty
// prompt uses the default ideas prompt.
type GenerateIdeasRequest struct {
	Prompt    string `json:"prompt,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

// GenerateIdeasResponse holds extracted ideas.
type GenerateIdeasResponse struct {
	Ideas     []string `json:"ideas"`
	SessionID string   `json:"sessionId"`
	Message   string   `json:"message,omitempty"`
}
