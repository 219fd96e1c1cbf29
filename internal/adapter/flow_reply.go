// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"strings"

	"github.com/Srejith/namemybaby/models"
)

// parseFlowReply locates the reply text in a flow server response. The
// response shape depends on how the flow is built, so known locations are
// probed in order and the first non-empty string wins. When none matches the
// reply is unparseable and carries the raw body.
func parseFlowReply(body []byte) models.FlowReply {
	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		return models.FlowReply{Kind: models.FlowReplyUnparseable, Text: string(body)}
	}

	reply := probeFlowReply(data)
	if sessionID, ok := nonEmptyString(data["session_id"]); ok {
		reply.SessionID = sessionID
	}
	if !reply.Parsed() {
		reply.Text = strings.TrimSpace(string(body))
	}

	return reply
}

func probeFlowReply(data map[string]any) models.FlowReply {
	if first, ok := firstObject(data["outputs"]); ok {
		if inner, ok := firstObject(first["outputs"]); ok {
			if outputs, ok := inner["outputs"].(map[string]any); ok {
				if text, ok := messageText(outputs["message"]); ok {
					return models.FlowReply{Kind: models.FlowReplyOutputsMessage, Text: text}
				}
			}
			if text, ok := messageText(inner["message"]); ok {
				return models.FlowReply{Kind: models.FlowReplyInnerMessage, Text: text}
			}
			if text, ok := nonEmptyString(inner["text"]); ok {
				return models.FlowReply{Kind: models.FlowReplyInnerText, Text: text}
			}
		}
		if text, ok := textField(first); ok {
			return models.FlowReply{Kind: models.FlowReplyOutput, Text: text}
		}
	}

	switch output := data["output"].(type) {
	case map[string]any:
		if text, ok := textField(output); ok {
			return models.FlowReply{Kind: models.FlowReplyOutput, Text: text}
		}
	case string:
		if output != "" {
			return models.FlowReply{Kind: models.FlowReplyOutput, Text: output}
		}
	}

	if text, ok := textField(data); ok {
		return models.FlowReply{Kind: models.FlowReplyTopLevel, Text: text}
	}
	if nested, ok := data["data"].(map[string]any); ok {
		if text, ok := textField(nested); ok {
			return models.FlowReply{Kind: models.FlowReplyTopLevel, Text: text}
		}
		if text, ok := nonEmptyString(nested["output"]); ok {
			return models.FlowReply{Kind: models.FlowReplyTopLevel, Text: text}
		}
	}

	return models.FlowReply{Kind: models.FlowReplyUnparseable}
}

func firstObject(v any) (map[string]any, bool) {
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return nil, false
	}
	obj, ok := list[0].(map[string]any)
	return obj, ok
}

// messageText accepts a message given either as a string or as an object
// with a string "message" (or "text") field.
func messageText(v any) (string, bool) {
	switch m := v.(type) {
	case string:
		return nonEmptyString(m)
	case map[string]any:
		if text, ok := nonEmptyString(m["message"]); ok {
			return text, true
		}
		return nonEmptyString(m["text"])
	default:
		return "", false
	}
}

func textField(obj map[string]any) (string, bool) {
	if text, ok := nonEmptyString(obj["message"]); ok {
		return text, true
	}
	return nonEmptyString(obj["text"])
}

func nonEmptyString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
